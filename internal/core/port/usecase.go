package port

import (
	"context"
	"time"

	"hayyakom/internal/core/domain"
)

// CreateCampaignInput carries owner-supplied attributes for a new campaign.
// The caller's identity is explicit; there is no ambient request user.
type CreateCampaignInput struct {
	OwnerID     int64
	Name        string
	Description string
	Goal        int64
	Deadline    time.Time
	Category    domain.CampaignCategory
}

// UpdateCampaignInput carries the owner-editable attributes of a campaign.
type UpdateCampaignInput struct {
	OwnerID     int64
	CampaignID  int64
	Name        string
	Description string
	Category    domain.CampaignCategory
}

// CampaignDetail is the read model for a single campaign view.
type CampaignDetail struct {
	Campaign      domain.Campaign
	TotalInvested int64
	Progress      float64
	// ViewerInvested is set when the requesting user already holds an
	// investment on this campaign.
	ViewerInvested bool
}

// CampaignRegistry owns campaign entities, their status transitions and the
// owner-facing roadmap. It is the primary port for everything except pledge
// money movement.
type CampaignRegistry interface {
	RegisterCompany(ctx context.Context, ownerID int64, name, crNumber string) (*domain.Company, error)
	GetCompany(ctx context.Context, ownerID int64) (*domain.Company, error)
	// DeleteCompany removes the owner's company unless any of its campaigns
	// holds invested funds.
	DeleteCompany(ctx context.Context, ownerID int64) error

	// Create validates attributes and produces a PendingApproval campaign.
	Create(ctx context.Context, in CreateCampaignInput) (*domain.Campaign, error)
	// Get returns the detail view. Unapproved campaigns are hidden from
	// everyone but their owner.
	Get(ctx context.Context, viewerID, campaignID int64) (*CampaignDetail, error)
	ListPublic(ctx context.Context, f CampaignFilter) ([]domain.Campaign, error)
	ListOwned(ctx context.Context, ownerID int64) ([]domain.Campaign, error)
	// ListPulse returns the campaigns revealed in the current weekly cycle.
	ListPulse(ctx context.Context) ([]domain.Campaign, error)
	Update(ctx context.Context, in UpdateCampaignInput) error

	// Approve is admin-only: marks the campaign approved, opens it for
	// investment and notifies the owner.
	Approve(ctx context.Context, campaignID int64) error
	// PromoteToPulse is admin-only: schedules the campaign for the next
	// weekly pulse cycle and returns it with the reveal date set.
	PromoteToPulse(ctx context.Context, campaignID int64) (*domain.Campaign, error)
	// ReturnFromPulse is admin-only: moves a pulse campaign back to the open
	// funding state.
	ReturnFromPulse(ctx context.Context, campaignID int64) error

	AddMilestone(ctx context.Context, ownerID, campaignID int64, title string, targetDate time.Time) (*domain.Milestone, error)
	ListMilestones(ctx context.Context, viewerID, campaignID int64) ([]domain.Milestone, error)
	// CompleteMilestone flags the milestone done and fans a notification out
	// to every investor of the campaign.
	CompleteMilestone(ctx context.Context, ownerID, milestoneID int64) error
}

// PledgeResponse is returned when a pledge intent has been accepted and a
// checkout session opened.
type PledgeResponse struct {
	Token       string
	RedirectURL string
}

// ConfirmResponse is the result of a pledge confirmation callback.
type ConfirmResponse struct {
	Investment domain.Investment
	// AlreadyRecorded indicates an idempotent repeat of a confirmation.
	AlreadyRecorded bool
	// CampaignCompleted indicates the confirmation filled the goal.
	CampaignCompleted bool
}

// InvestmentLedger owns investments and enforces the pledge-acceptance
// policy. Pledging is a two-phase protocol: SubmitPledge opens a checkout
// session and records a pending intent; ConfirmPledge records the
// investment once the provider reports the session paid.
type InvestmentLedger interface {
	SubmitPledge(ctx context.Context, investorID, campaignID, amount int64) (*PledgeResponse, error)
	ConfirmPledge(ctx context.Context, investorID int64, token string) (*ConfirmResponse, error)
	ListCampaignInvestments(ctx context.Context, ownerID, campaignID int64) ([]domain.Investment, error)
}

// SettlementSummary reports the counts of one settlement run.
type SettlementSummary struct {
	Scanned   int
	Completed int
	Failed    int
	Errored   int
}

// SettlementRunner resolves expired campaigns in batch.
type SettlementRunner interface {
	Run(ctx context.Context) (*SettlementSummary, error)
}
