package domain

// Company is the publishing entity behind campaigns. Each owner identity
// holds exactly one company.
type Company struct {
	ID       int64
	OwnerID  int64
	Name     string
	CRNumber string
}
