package domain

import "time"

// InvestmentStatus is the settlement state of an investment. Pledged is the
// only mutable state; Collected and Returned are final.
type InvestmentStatus string

const (
	InvestmentPledged   InvestmentStatus = "Pledged"
	InvestmentCollected InvestmentStatus = "Collected"
	InvestmentReturned  InvestmentStatus = "Returned"
)

// Investment is a confirmed monetary commitment by an investor to a
// campaign. At most one investment exists per (investor, campaign) pair.
// Rows are created only after the checkout provider reports the payment
// as paid.
type Investment struct {
	ID         int64
	InvestorID int64
	CampaignID int64
	Amount     int64
	Status     InvestmentStatus
	CreatedAt  time.Time
}
