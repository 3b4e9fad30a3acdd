package domain

import "time"

// CampaignStatus is the lifecycle state of a funding campaign. Transitions
// only move forward: PendingApproval -> InProcess -> (InPulse <-> InProcess)
// -> Completed | Failed. Completed and Failed are terminal.
type CampaignStatus string

const (
	CampaignPendingApproval CampaignStatus = "Pending Approval"
	CampaignInProcess       CampaignStatus = "In Process"
	CampaignInPulse         CampaignStatus = "In Pulse"
	CampaignCompleted       CampaignStatus = "Completed"
	CampaignFailed          CampaignStatus = "Failed"
)

// Terminal reports whether no further transition is allowed from s.
func (s CampaignStatus) Terminal() bool {
	return s == CampaignCompleted || s == CampaignFailed
}

// CampaignCategory classifies a campaign for listing filters.
type CampaignCategory string

const (
	CategoryTechnology     CampaignCategory = "Technology"
	CategoryFoodBeverage   CampaignCategory = "Food & Beverage"
	CategoryRetail         CampaignCategory = "Retail"
	CategoryHealthWellness CampaignCategory = "Health & Wellness"
	CategoryArtsCulture    CampaignCategory = "Arts & Culture"
	CategoryOther          CampaignCategory = "Other"
)

// ValidCategory reports whether c is one of the known categories.
func ValidCategory(c CampaignCategory) bool {
	switch c {
	case CategoryTechnology, CategoryFoodBeverage, CategoryRetail,
		CategoryHealthWellness, CategoryArtsCulture, CategoryOther:
		return true
	}
	return false
}

// Campaign represents a funding campaign published by a company.
// Goal and invested amounts are stored in integer currency units (BD).
type Campaign struct {
	ID          int64
	CompanyID   int64
	Name        string
	Description string
	Goal        int64
	Deadline    time.Time
	Category    CampaignCategory
	IsApproved  bool
	Status      CampaignStatus
	RevealDate  *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Visible reports whether the campaign may appear in public listings.
// Owners always see their own campaigns regardless of this.
func (c *Campaign) Visible() bool {
	return c.IsApproved && (c.Status == CampaignInProcess || c.Status == CampaignInPulse)
}

// Open reports whether the campaign currently accepts pledges.
func (c *Campaign) Open() bool {
	return c.IsApproved && c.Status == CampaignInProcess
}

// Expired reports whether the campaign's deadline has passed as of today.
func (c *Campaign) Expired(today time.Time) bool {
	return c.Deadline.Before(today)
}
