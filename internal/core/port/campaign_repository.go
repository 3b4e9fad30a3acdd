package port

import (
	"context"
	"time"

	"hayyakom/internal/core/domain"
)

// CampaignFilter narrows public campaign listings. Query matches campaign
// or company names case-insensitively; an empty filter matches everything.
type CampaignFilter struct {
	Query    string
	Category domain.CampaignCategory
}

// CampaignRepository is the persistence port for the campaign registry.
// Guarded transitions (Approve, PromoteToPulse, ReturnFromPulse) lock the
// campaign row and fail with ErrInvalidTransition when the campaign is not
// in the required source state.
type CampaignRepository interface {
	// Create persists a new campaign and fills ID, CreatedAt and UpdatedAt.
	Create(ctx context.Context, c *domain.Campaign) error
	// GetByID returns the campaign or nil when it does not exist.
	GetByID(ctx context.Context, id int64) (*domain.Campaign, error)
	// ListVisible returns approved campaigns in InProcess or InPulse matching
	// the filter, ordered by deadline descending.
	ListVisible(ctx context.Context, f CampaignFilter) ([]domain.Campaign, error)
	// ListByCompany returns all campaigns of a company regardless of status.
	ListByCompany(ctx context.Context, companyID int64) ([]domain.Campaign, error)
	// ListInPulse returns campaigns promoted into the pulse whose reveal date
	// is at or before the given day.
	ListInPulse(ctx context.Context, revealOnOrBefore time.Time) ([]domain.Campaign, error)
	// UpdateDetails changes the owner-editable attributes of a campaign.
	UpdateDetails(ctx context.Context, id int64, name, description string, category domain.CampaignCategory) error
	// Approve marks the campaign approved and moves PendingApproval -> InProcess.
	Approve(ctx context.Context, id int64) error
	// PromoteToPulse moves InProcess -> InPulse and records the reveal date.
	PromoteToPulse(ctx context.Context, id int64, reveal time.Time) error
	// ReturnFromPulse moves InPulse -> InProcess and clears the reveal date.
	ReturnFromPulse(ctx context.Context, id int64) error
}

// CompanyRepository is the persistence port for publishing companies.
type CompanyRepository interface {
	// Create persists a new company and fills its ID.
	Create(ctx context.Context, c *domain.Company) error
	// GetByID returns the company or nil when it does not exist.
	GetByID(ctx context.Context, id int64) (*domain.Company, error)
	// GetByOwner returns the owner's company or nil when none exists.
	GetByOwner(ctx context.Context, ownerID int64) (*domain.Company, error)
	// HasInvestedFunds reports whether any campaign of the company holds
	// pledged or collected investments.
	HasInvestedFunds(ctx context.Context, companyID int64) (bool, error)
	// Delete removes the company and, via cascade, its campaigns.
	Delete(ctx context.Context, id int64) error
}
