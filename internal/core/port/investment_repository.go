package port

import (
	"context"
	"time"

	"hayyakom/internal/core/domain"
)

// ConfirmOutcome reports the result of recording a paid pledge intent.
type ConfirmOutcome struct {
	Investment domain.Investment
	// AlreadyRecorded is set when an investment for the (investor, campaign)
	// pair existed before this call. Confirmation is idempotent.
	AlreadyRecorded bool
	// GoalReached is set when this confirmation filled the goal and the
	// campaign was completed immediately.
	GoalReached bool
	// Campaign is the post-confirmation campaign state.
	Campaign domain.Campaign
	// OwnerID is the identity of the campaign's company owner, for the
	// pledge-received notification.
	OwnerID int64
}

// InvestmentRepository is the persistence port for the investment ledger.
type InvestmentRepository interface {
	// GetByInvestorAndCampaign returns the investor's investment on the
	// campaign, or nil when none exists.
	GetByInvestorAndCampaign(ctx context.Context, investorID, campaignID int64) (*domain.Investment, error)
	// TotalInvested sums pledged and collected amounts for the campaign.
	// Returned investments are excluded.
	TotalInvested(ctx context.Context, campaignID int64) (int64, error)
	// ListByCampaign returns all investments of a campaign.
	ListByCampaign(ctx context.Context, campaignID int64) ([]domain.Investment, error)
	// CreateIntent persists a pending pledge intent prior to the checkout
	// redirect.
	CreateIntent(ctx context.Context, intent *domain.PledgeIntent) error
	// GetIntent returns the intent for a token, or nil when unknown.
	GetIntent(ctx context.Context, token string) (*domain.PledgeIntent, error)
	// Confirm records the investment for a paid intent as one atomic unit: it
	// locks the campaign row, re-runs the acceptance policy against the
	// current total, inserts the investment, marks the intent consumed and
	// completes the campaign when the goal is reached. A concurrent or
	// repeated confirmation yields AlreadyRecorded instead of a duplicate.
	Confirm(ctx context.Context, intent domain.PledgeIntent, policy domain.PledgePolicy) (*ConfirmOutcome, error)
}

// SettledInvestment identifies one finalized investment of a settled
// campaign, for the notification fan-out.
type SettledInvestment struct {
	InvestorID int64
	Amount     int64
}

// CampaignSettlement is the result of resolving one expired campaign.
type CampaignSettlement struct {
	Campaign    domain.Campaign
	Succeeded   bool
	Investments []SettledInvestment
}

// SettlementRepository is the persistence port for the batch settlement job.
type SettlementRepository interface {
	// ListExpiredUnresolved returns ids of campaigns still InProcess whose
	// deadline lies strictly before the given day.
	ListExpiredUnresolved(ctx context.Context, today time.Time) ([]int64, error)
	// SettleCampaign resolves one expired campaign as a single transaction:
	// the campaign row is locked, success or failure is decided from the
	// invested total, every pledged investment is finalized and the campaign
	// status updated. It returns nil when the campaign was resolved by a
	// concurrent path in the meantime (idempotent no-op).
	SettleCampaign(ctx context.Context, campaignID int64, today time.Time) (*CampaignSettlement, error)
}
