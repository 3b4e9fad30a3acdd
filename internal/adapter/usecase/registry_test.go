package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"

	"hayyakom/internal/core/domain"
	"hayyakom/internal/core/port"
	"hayyakom/internal/core/port/mocks"
)

type registryMocks struct {
	campaigns   *mocks.MockCampaignRepository
	companies   *mocks.MockCompanyRepository
	investments *mocks.MockInvestmentRepository
	milestones  *mocks.MockMilestoneRepository
	sink        *mocks.MockNotificationSink
}

func newTestRegistry(t *testing.T) (*Registry, registryMocks) {
	m := registryMocks{
		campaigns:   mocks.NewMockCampaignRepository(t),
		companies:   mocks.NewMockCompanyRepository(t),
		investments: mocks.NewMockInvestmentRepository(t),
		milestones:  mocks.NewMockMilestoneRepository(t),
		sink:        mocks.NewMockNotificationSink(t),
	}
	r := NewRegistry(m.campaigns, m.companies, m.investments, m.milestones, m.sink, time.Sunday, discardLogger())
	r.now = func() time.Time { return time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC) }
	return r, m
}

func TestCreateCampaign(t *testing.T) {
	r, m := newTestRegistry(t)

	m.companies.EXPECT().GetByOwner(mock.Anything, int64(42)).
		Return(&domain.Company{ID: 7, OwnerID: 42, Name: "Acme"}, nil)
	m.campaigns.EXPECT().Create(mock.Anything, mock.AnythingOfType("*domain.Campaign")).
		Run(func(ctx context.Context, c *domain.Campaign) { c.ID = 1 }).
		Return(nil)

	c, err := r.Create(context.Background(), port.CreateCampaignInput{
		OwnerID:  42,
		Name:     "Solar Farm",
		Goal:     10000,
		Deadline: time.Date(2026, 12, 1, 0, 0, 0, 0, time.UTC),
		Category: domain.CategoryTechnology,
	})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if c.Status != domain.CampaignPendingApproval || c.IsApproved {
		t.Fatalf("new campaign must await approval, got %+v", c)
	}
	if c.CompanyID != 7 {
		t.Fatalf("expected company 7, got %d", c.CompanyID)
	}
}

func TestCreateCampaignValidation(t *testing.T) {
	r, m := newTestRegistry(t)

	// owner without a registered company is checked after field validation
	m.companies.EXPECT().GetByOwner(mock.Anything, int64(42)).Return(nil, nil).Maybe()

	tests := []struct {
		name string
		in   port.CreateCampaignInput
	}{
		{"empty name", port.CreateCampaignInput{OwnerID: 42, Goal: 1000, Deadline: time.Date(2027, 1, 1, 0, 0, 0, 0, time.UTC)}},
		{"zero goal", port.CreateCampaignInput{OwnerID: 42, Name: "x", Deadline: time.Date(2027, 1, 1, 0, 0, 0, 0, time.UTC)}},
		{"past deadline", port.CreateCampaignInput{OwnerID: 42, Name: "x", Goal: 1000, Deadline: time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)}},
		{"deadline today", port.CreateCampaignInput{OwnerID: 42, Name: "x", Goal: 1000, Deadline: time.Date(2026, 8, 29, 0, 0, 0, 0, time.UTC)}},
		{"unknown category", port.CreateCampaignInput{OwnerID: 42, Name: "x", Goal: 1000, Deadline: time.Date(2027, 1, 1, 0, 0, 0, 0, time.UTC), Category: "Gadgets"}},
		{"no company", port.CreateCampaignInput{OwnerID: 42, Name: "x", Goal: 1000, Deadline: time.Date(2027, 1, 1, 0, 0, 0, 0, time.UTC)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := r.Create(context.Background(), tt.in)
			var verr port.ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("Create = %v, want ValidationError", err)
			}
		})
	}
}

func TestGetHidesUnapprovedFromStrangers(t *testing.T) {
	r, m := newTestRegistry(t)

	c := &domain.Campaign{ID: 1, CompanyID: 7, Name: "Solar Farm", Goal: 10000, Status: domain.CampaignPendingApproval}
	m.campaigns.EXPECT().GetByID(mock.Anything, int64(1)).Return(c, nil)
	m.companies.EXPECT().GetByID(mock.Anything, int64(7)).
		Return(&domain.Company{ID: 7, OwnerID: 42}, nil)

	// a stranger cannot tell an unapproved campaign from a missing one
	if _, err := r.Get(context.Background(), 99, 1); !errors.Is(err, port.ErrNotFound) {
		t.Fatalf("Get = %v, want ErrNotFound", err)
	}
}

func TestGetComputesProgress(t *testing.T) {
	r, m := newTestRegistry(t)

	c := &domain.Campaign{ID: 1, CompanyID: 7, Name: "Solar Farm", Goal: 10000, IsApproved: true, Status: domain.CampaignInProcess}
	m.campaigns.EXPECT().GetByID(mock.Anything, int64(1)).Return(c, nil)
	m.investments.EXPECT().TotalInvested(mock.Anything, int64(1)).Return(int64(2500), nil)
	m.investments.EXPECT().GetByInvestorAndCampaign(mock.Anything, int64(10), int64(1)).
		Return(&domain.Investment{ID: 3, InvestorID: 10, CampaignID: 1, Amount: 2500}, nil)

	detail, err := r.Get(context.Background(), 10, 1)
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if detail.Progress != 25 {
		t.Fatalf("expected 25%% progress, got %v", detail.Progress)
	}
	if !detail.ViewerInvested {
		t.Fatal("expected ViewerInvested to be set")
	}
}

func TestApproveNotifiesOwner(t *testing.T) {
	r, m := newTestRegistry(t)

	c := &domain.Campaign{ID: 1, CompanyID: 7, Name: "Solar Farm", IsApproved: true, Status: domain.CampaignInProcess}
	m.campaigns.EXPECT().Approve(mock.Anything, int64(1)).Return(nil)
	m.campaigns.EXPECT().GetByID(mock.Anything, int64(1)).Return(c, nil)
	m.companies.EXPECT().GetByID(mock.Anything, int64(7)).
		Return(&domain.Company{ID: 7, OwnerID: 42}, nil)
	m.sink.EXPECT().Emit(mock.Anything, int64(42), mock.MatchedBy(func(msg string) bool {
		return strings.Contains(msg, "has been approved")
	}), mock.Anything).Return(nil)

	if err := r.Approve(context.Background(), 1); err != nil {
		t.Fatalf("Approve error: %v", err)
	}
}

func TestApprovePropagatesInvalidTransition(t *testing.T) {
	r, m := newTestRegistry(t)

	m.campaigns.EXPECT().Approve(mock.Anything, int64(1)).Return(port.ErrInvalidTransition)

	if err := r.Approve(context.Background(), 1); !errors.Is(err, port.ErrInvalidTransition) {
		t.Fatalf("Approve = %v, want ErrInvalidTransition", err)
	}
}

// Promotion schedules the reveal for the next pulse cycle boundary;
// 2026-08-29 is a Saturday, so the next Sunday is 2026-08-30.
func TestPromoteToPulseRevealDate(t *testing.T) {
	r, m := newTestRegistry(t)

	reveal := time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC)
	c := &domain.Campaign{ID: 1, CompanyID: 7, Status: domain.CampaignInPulse, RevealDate: &reveal}
	m.campaigns.EXPECT().PromoteToPulse(mock.Anything, int64(1), reveal).Return(nil)
	m.campaigns.EXPECT().GetByID(mock.Anything, int64(1)).Return(c, nil)

	got, err := r.PromoteToPulse(context.Background(), 1)
	if err != nil {
		t.Fatalf("PromoteToPulse error: %v", err)
	}
	if got.Status != domain.CampaignInPulse {
		t.Fatalf("expected InPulse, got %q", got.Status)
	}
}

func TestDeleteCompanyGuardsInvestedFunds(t *testing.T) {
	r, m := newTestRegistry(t)

	m.companies.EXPECT().GetByOwner(mock.Anything, int64(42)).
		Return(&domain.Company{ID: 7, OwnerID: 42}, nil)
	m.companies.EXPECT().HasInvestedFunds(mock.Anything, int64(7)).Return(true, nil)

	if err := r.DeleteCompany(context.Background(), 42); !errors.Is(err, port.ErrCompanyHasFunds) {
		t.Fatalf("DeleteCompany = %v, want ErrCompanyHasFunds", err)
	}
}

func TestRegisterCompanyRejectsSecond(t *testing.T) {
	r, m := newTestRegistry(t)

	m.companies.EXPECT().GetByOwner(mock.Anything, int64(42)).
		Return(&domain.Company{ID: 7, OwnerID: 42}, nil)

	if _, err := r.RegisterCompany(context.Background(), 42, "Acme II", "CR-2"); !errors.Is(err, port.ErrCompanyExists) {
		t.Fatalf("RegisterCompany = %v, want ErrCompanyExists", err)
	}
}

func TestCompleteMilestoneFansOut(t *testing.T) {
	r, m := newTestRegistry(t)

	milestone := &domain.Milestone{ID: 3, CampaignID: 1, Title: "First prototype"}
	campaign := &domain.Campaign{ID: 1, CompanyID: 7, Name: "Solar Farm", IsApproved: true, Status: domain.CampaignInProcess}

	m.milestones.EXPECT().GetByID(mock.Anything, int64(3)).Return(milestone, nil)
	m.campaigns.EXPECT().GetByID(mock.Anything, int64(1)).Return(campaign, nil)
	m.companies.EXPECT().GetByID(mock.Anything, int64(7)).
		Return(&domain.Company{ID: 7, OwnerID: 42}, nil)
	m.milestones.EXPECT().MarkComplete(mock.Anything, int64(3)).Return(nil)
	m.investments.EXPECT().ListByCampaign(mock.Anything, int64(1)).Return([]domain.Investment{
		{ID: 1, InvestorID: 10, CampaignID: 1, Amount: 2000},
		{ID: 2, InvestorID: 11, CampaignID: 1, Amount: 3000},
	}, nil)
	m.sink.EXPECT().Emit(mock.Anything, int64(10), mock.AnythingOfType("string"), mock.Anything).Return(nil)
	m.sink.EXPECT().Emit(mock.Anything, int64(11), mock.AnythingOfType("string"), mock.Anything).Return(nil)

	if err := r.CompleteMilestone(context.Background(), 42, 3); err != nil {
		t.Fatalf("CompleteMilestone error: %v", err)
	}
}

func TestCompleteMilestoneForeignOwner(t *testing.T) {
	r, m := newTestRegistry(t)

	milestone := &domain.Milestone{ID: 3, CampaignID: 1, Title: "First prototype"}
	campaign := &domain.Campaign{ID: 1, CompanyID: 7, Name: "Solar Farm"}

	m.milestones.EXPECT().GetByID(mock.Anything, int64(3)).Return(milestone, nil)
	m.campaigns.EXPECT().GetByID(mock.Anything, int64(1)).Return(campaign, nil)
	m.companies.EXPECT().GetByID(mock.Anything, int64(7)).
		Return(&domain.Company{ID: 7, OwnerID: 42}, nil)

	if err := r.CompleteMilestone(context.Background(), 99, 3); !errors.Is(err, port.ErrForbidden) {
		t.Fatalf("CompleteMilestone = %v, want ErrForbidden", err)
	}
}
