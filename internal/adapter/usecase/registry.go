package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"hayyakom/internal/core/domain"
	"hayyakom/internal/core/port"
)

// Registry implements port.CampaignRegistry. It owns campaign lifecycle
// transitions, visibility rules, companies and roadmaps, and emits owner
// and investor notifications as side effects of transitions.
type Registry struct {
	campaigns   port.CampaignRepository
	companies   port.CompanyRepository
	investments port.InvestmentRepository
	milestones  port.MilestoneRepository
	sink        port.NotificationSink
	logger      *slog.Logger

	// pulseDay is the weekday on which a new weekly pulse cycle starts.
	pulseDay time.Weekday
	now      func() time.Time
}

// NewRegistry creates the registry usecase. pulseDay determines the weekly
// cycle boundary used by PromoteToPulse and ListPulse.
func NewRegistry(
	campaigns port.CampaignRepository,
	companies port.CompanyRepository,
	investments port.InvestmentRepository,
	milestones port.MilestoneRepository,
	sink port.NotificationSink,
	pulseDay time.Weekday,
	logger *slog.Logger,
) *Registry {
	return &Registry{
		campaigns:   campaigns,
		companies:   companies,
		investments: investments,
		milestones:  milestones,
		sink:        sink,
		logger:      logger,
		pulseDay:    pulseDay,
		now:         time.Now,
	}
}

// today returns the current UTC calendar day.
func (r *Registry) today() time.Time {
	y, m, d := r.now().UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func (r *Registry) RegisterCompany(ctx context.Context, ownerID int64, name, crNumber string) (*domain.Company, error) {
	if strings.TrimSpace(name) == "" {
		return nil, port.ValidationError{Field: "name", Reason: "must not be empty"}
	}
	if strings.TrimSpace(crNumber) == "" {
		return nil, port.ValidationError{Field: "cr_number", Reason: "must not be empty"}
	}
	existing, err := r.companies.GetByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, port.ErrCompanyExists
	}
	c := &domain.Company{OwnerID: ownerID, Name: name, CRNumber: crNumber}
	if err := r.companies.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (r *Registry) GetCompany(ctx context.Context, ownerID int64) (*domain.Company, error) {
	c, err := r.companies.GetByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, port.ErrNotFound
	}
	return c, nil
}

func (r *Registry) DeleteCompany(ctx context.Context, ownerID int64) error {
	c, err := r.companies.GetByOwner(ctx, ownerID)
	if err != nil {
		return err
	}
	if c == nil {
		return port.ErrNotFound
	}
	funded, err := r.companies.HasInvestedFunds(ctx, c.ID)
	if err != nil {
		return err
	}
	if funded {
		return port.ErrCompanyHasFunds
	}
	return r.companies.Delete(ctx, c.ID)
}

func (r *Registry) Create(ctx context.Context, in port.CreateCampaignInput) (*domain.Campaign, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, port.ValidationError{Field: "name", Reason: "must not be empty"}
	}
	if in.Goal <= 0 {
		return nil, port.ValidationError{Field: "goal", Reason: "must be positive"}
	}
	if !in.Deadline.After(r.today()) {
		return nil, port.ValidationError{Field: "deadline", Reason: "must be in the future"}
	}
	category := in.Category
	if category == "" {
		category = domain.CategoryOther
	}
	if !domain.ValidCategory(category) {
		return nil, port.ValidationError{Field: "category", Reason: "unknown category"}
	}
	company, err := r.companies.GetByOwner(ctx, in.OwnerID)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, port.ValidationError{Field: "company", Reason: "owner has no registered company"}
	}
	c := &domain.Campaign{
		CompanyID:   company.ID,
		Name:        in.Name,
		Description: in.Description,
		Goal:        in.Goal,
		Deadline:    in.Deadline,
		Category:    category,
		IsApproved:  false,
		Status:      domain.CampaignPendingApproval,
	}
	if err := r.campaigns.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (r *Registry) Get(ctx context.Context, viewerID, campaignID int64) (*port.CampaignDetail, error) {
	c, err := r.campaigns.GetByID(ctx, campaignID)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, port.ErrNotFound
	}
	if !c.IsApproved {
		owned, err := r.ownsCampaign(ctx, viewerID, c)
		if err != nil {
			return nil, err
		}
		// unapproved campaigns are indistinguishable from missing ones
		if !owned {
			return nil, port.ErrNotFound
		}
	}
	total, err := r.investments.TotalInvested(ctx, campaignID)
	if err != nil {
		return nil, err
	}
	detail := &port.CampaignDetail{Campaign: *c, TotalInvested: total}
	if c.Goal > 0 {
		detail.Progress = float64(total) / float64(c.Goal) * 100
	}
	if viewerID != 0 {
		inv, err := r.investments.GetByInvestorAndCampaign(ctx, viewerID, campaignID)
		if err != nil {
			return nil, err
		}
		detail.ViewerInvested = inv != nil
	}
	return detail, nil
}

func (r *Registry) ListPublic(ctx context.Context, f port.CampaignFilter) ([]domain.Campaign, error) {
	if f.Category != "" && !domain.ValidCategory(f.Category) {
		return nil, port.ValidationError{Field: "category", Reason: "unknown category"}
	}
	return r.campaigns.ListVisible(ctx, f)
}

func (r *Registry) ListOwned(ctx context.Context, ownerID int64) ([]domain.Campaign, error) {
	company, err := r.companies.GetByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return []domain.Campaign{}, nil
	}
	return r.campaigns.ListByCompany(ctx, company.ID)
}

func (r *Registry) ListPulse(ctx context.Context) ([]domain.Campaign, error) {
	return r.campaigns.ListInPulse(ctx, r.today())
}

func (r *Registry) Update(ctx context.Context, in port.UpdateCampaignInput) error {
	if strings.TrimSpace(in.Name) == "" {
		return port.ValidationError{Field: "name", Reason: "must not be empty"}
	}
	if !domain.ValidCategory(in.Category) {
		return port.ValidationError{Field: "category", Reason: "unknown category"}
	}
	if _, err := r.requireOwnedCampaign(ctx, in.OwnerID, in.CampaignID); err != nil {
		return err
	}
	return r.campaigns.UpdateDetails(ctx, in.CampaignID, in.Name, in.Description, in.Category)
}

func (r *Registry) Approve(ctx context.Context, campaignID int64) error {
	if err := r.campaigns.Approve(ctx, campaignID); err != nil {
		return err
	}
	c, err := r.campaigns.GetByID(ctx, campaignID)
	if err != nil || c == nil {
		return err
	}
	company, err := r.companies.GetByID(ctx, c.CompanyID)
	if err != nil || company == nil {
		return err
	}
	r.emit(ctx, company.OwnerID,
		fmt.Sprintf("Congratulations! Your campaign '%s' has been approved.", c.Name),
		&c.ID)
	return nil
}

func (r *Registry) PromoteToPulse(ctx context.Context, campaignID int64) (*domain.Campaign, error) {
	reveal := domain.NextCycleDate(r.today(), r.pulseDay)
	if err := r.campaigns.PromoteToPulse(ctx, campaignID, reveal); err != nil {
		return nil, err
	}
	c, err := r.campaigns.GetByID(ctx, campaignID)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, port.ErrNotFound
	}
	return c, nil
}

func (r *Registry) ReturnFromPulse(ctx context.Context, campaignID int64) error {
	return r.campaigns.ReturnFromPulse(ctx, campaignID)
}

func (r *Registry) AddMilestone(ctx context.Context, ownerID, campaignID int64, title string, targetDate time.Time) (*domain.Milestone, error) {
	if strings.TrimSpace(title) == "" {
		return nil, port.ValidationError{Field: "title", Reason: "must not be empty"}
	}
	if _, err := r.requireOwnedCampaign(ctx, ownerID, campaignID); err != nil {
		return nil, err
	}
	m := &domain.Milestone{CampaignID: campaignID, Title: title, TargetDate: targetDate}
	if err := r.milestones.Create(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

func (r *Registry) ListMilestones(ctx context.Context, viewerID, campaignID int64) ([]domain.Milestone, error) {
	c, err := r.campaigns.GetByID(ctx, campaignID)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, port.ErrNotFound
	}
	if !c.IsApproved {
		owned, err := r.ownsCampaign(ctx, viewerID, c)
		if err != nil {
			return nil, err
		}
		if !owned {
			return nil, port.ErrNotFound
		}
	}
	return r.milestones.ListByCampaign(ctx, campaignID)
}

func (r *Registry) CompleteMilestone(ctx context.Context, ownerID, milestoneID int64) error {
	m, err := r.milestones.GetByID(ctx, milestoneID)
	if err != nil {
		return err
	}
	if m == nil {
		return port.ErrNotFound
	}
	c, err := r.requireOwnedCampaign(ctx, ownerID, m.CampaignID)
	if err != nil {
		return err
	}
	if err := r.milestones.MarkComplete(ctx, milestoneID); err != nil {
		return err
	}
	investments, err := r.investments.ListByCampaign(ctx, m.CampaignID)
	if err != nil {
		return err
	}
	msg := fmt.Sprintf("A milestone has been completed for '%s': %s", c.Name, m.Title)
	for _, inv := range investments {
		r.emit(ctx, inv.InvestorID, msg, &c.ID)
	}
	return nil
}

// requireOwnedCampaign loads the campaign and verifies the caller owns its
// company. Missing campaigns map to ErrNotFound, foreign ones to
// ErrForbidden.
func (r *Registry) requireOwnedCampaign(ctx context.Context, ownerID, campaignID int64) (*domain.Campaign, error) {
	c, err := r.campaigns.GetByID(ctx, campaignID)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, port.ErrNotFound
	}
	owned, err := r.ownsCampaign(ctx, ownerID, c)
	if err != nil {
		return nil, err
	}
	if !owned {
		return nil, port.ErrForbidden
	}
	return c, nil
}

func (r *Registry) ownsCampaign(ctx context.Context, userID int64, c *domain.Campaign) (bool, error) {
	company, err := r.companies.GetByID(ctx, c.CompanyID)
	if err != nil {
		return false, err
	}
	return company != nil && company.OwnerID == userID, nil
}

// emit sends a notification and logs failures; delivery is fire-and-forget.
func (r *Registry) emit(ctx context.Context, userID int64, message string, campaignID *int64) {
	if err := r.sink.Emit(ctx, userID, message, campaignID); err != nil {
		r.logger.Error("notification emit failed",
			slog.Int64("user_id", userID), slog.Any("error", err))
	}
}
