package usecase

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"hayyakom/internal/core/domain"
	"hayyakom/internal/core/port"
	"hayyakom/internal/core/port/mocks"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

var testPolicy = domain.PledgePolicy{MinAmount: 2000, MaxAmount: 5000}

func newTestLedger(t *testing.T) (*Ledger, *mocks.MockInvestmentRepository, *mocks.MockCampaignRepository, *mocks.MockCheckoutProvider, *mocks.MockNotificationSink) {
	investments := mocks.NewMockInvestmentRepository(t)
	campaigns := mocks.NewMockCampaignRepository(t)
	companies := mocks.NewMockCompanyRepository(t)
	checkout := mocks.NewMockCheckoutProvider(t)
	sink := mocks.NewMockNotificationSink(t)

	l := NewLedger(investments, campaigns, companies, checkout, sink,
		testPolicy, decimal.RequireFromString("2.65265"), "usd", discardLogger())
	return l, investments, campaigns, checkout, sink
}

func openCampaign(id, goal int64) *domain.Campaign {
	return &domain.Campaign{
		ID:         id,
		CompanyID:  7,
		Name:       "Solar Farm",
		Goal:       goal,
		IsApproved: true,
		Status:     domain.CampaignInProcess,
	}
}

func TestSubmitPledge(t *testing.T) {
	l, investments, campaigns, checkout, _ := newTestLedger(t)

	campaigns.EXPECT().GetByID(mock.Anything, int64(1)).Return(openCampaign(1, 10000), nil)
	investments.EXPECT().GetByInvestorAndCampaign(mock.Anything, int64(42), int64(1)).Return(nil, nil)
	investments.EXPECT().TotalInvested(mock.Anything, int64(1)).Return(int64(0), nil)

	// 3000 BD at 2.65265 -> 795795 cents, fractional cents truncated
	checkout.EXPECT().
		CreatePaymentIntent(mock.Anything, "Investment in: Solar Farm", int64(795795), "usd", mock.AnythingOfType("string")).
		Return(&port.CheckoutSession{Ref: "cs_123", RedirectURL: "https://checkout.example/cs_123"}, nil)
	investments.EXPECT().CreateIntent(mock.Anything, mock.AnythingOfType("*domain.PledgeIntent")).Return(nil)

	resp, err := l.SubmitPledge(context.Background(), 42, 1, 3000)
	if err != nil {
		t.Fatalf("SubmitPledge error: %v", err)
	}
	if resp.Token == "" {
		t.Fatal("expected a pledge token")
	}
	if resp.RedirectURL != "https://checkout.example/cs_123" {
		t.Fatalf("unexpected redirect URL %q", resp.RedirectURL)
	}
}

func TestSubmitPledgeOutOfRange(t *testing.T) {
	for _, amount := range []int64{1500, 6000} {
		l, investments, campaigns, _, _ := newTestLedger(t)

		campaigns.EXPECT().GetByID(mock.Anything, int64(1)).Return(openCampaign(1, 10000), nil)
		investments.EXPECT().GetByInvestorAndCampaign(mock.Anything, int64(42), int64(1)).Return(nil, nil)
		investments.EXPECT().TotalInvested(mock.Anything, int64(1)).Return(int64(0), nil)

		_, err := l.SubmitPledge(context.Background(), 42, 1, amount)
		if !errors.Is(err, domain.ErrAmountOutOfPolicyRange) {
			t.Fatalf("SubmitPledge(%d) = %v, want ErrAmountOutOfPolicyRange", amount, err)
		}
	}
}

// A remaining goal below the policy floor only accepts the exact closing
// amount: goal 10000 with 9000 already pledged takes 1000, nothing else.
func TestSubmitPledgeClosingAmount(t *testing.T) {
	l, investments, campaigns, _, _ := newTestLedger(t)

	campaigns.EXPECT().GetByID(mock.Anything, int64(1)).Return(openCampaign(1, 10000), nil)
	investments.EXPECT().GetByInvestorAndCampaign(mock.Anything, int64(42), int64(1)).Return(nil, nil)
	investments.EXPECT().TotalInvested(mock.Anything, int64(1)).Return(int64(9000), nil)

	_, err := l.SubmitPledge(context.Background(), 42, 1, 500)
	if !errors.Is(err, domain.ErrMustMatchRemainingExactly) {
		t.Fatalf("SubmitPledge(500) = %v, want ErrMustMatchRemainingExactly", err)
	}
}

func TestSubmitPledgeDuplicate(t *testing.T) {
	l, investments, campaigns, _, _ := newTestLedger(t)

	campaigns.EXPECT().GetByID(mock.Anything, int64(1)).Return(openCampaign(1, 10000), nil)
	investments.EXPECT().GetByInvestorAndCampaign(mock.Anything, int64(42), int64(1)).
		Return(&domain.Investment{ID: 9, InvestorID: 42, CampaignID: 1, Amount: 2500}, nil)

	_, err := l.SubmitPledge(context.Background(), 42, 1, 3000)
	if !errors.Is(err, domain.ErrDuplicatePledge) {
		t.Fatalf("SubmitPledge = %v, want ErrDuplicatePledge", err)
	}
}

func TestSubmitPledgeNotOpen(t *testing.T) {
	l, investments, campaigns, _, _ := newTestLedger(t)

	c := openCampaign(1, 10000)
	c.Status = domain.CampaignPendingApproval
	c.IsApproved = false
	campaigns.EXPECT().GetByID(mock.Anything, int64(1)).Return(c, nil)
	investments.EXPECT().GetByInvestorAndCampaign(mock.Anything, int64(42), int64(1)).Return(nil, nil)

	_, err := l.SubmitPledge(context.Background(), 42, 1, 3000)
	if !errors.Is(err, domain.ErrCampaignNotOpen) {
		t.Fatalf("SubmitPledge = %v, want ErrCampaignNotOpen", err)
	}
}

func TestSubmitPledgeCheckoutDown(t *testing.T) {
	l, investments, campaigns, checkout, _ := newTestLedger(t)

	campaigns.EXPECT().GetByID(mock.Anything, int64(1)).Return(openCampaign(1, 10000), nil)
	investments.EXPECT().GetByInvestorAndCampaign(mock.Anything, int64(42), int64(1)).Return(nil, nil)
	investments.EXPECT().TotalInvested(mock.Anything, int64(1)).Return(int64(0), nil)
	checkout.EXPECT().
		CreatePaymentIntent(mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(nil, errors.New("connection refused"))

	_, err := l.SubmitPledge(context.Background(), 42, 1, 3000)
	if !errors.Is(err, port.ErrCheckoutUnavailable) {
		t.Fatalf("SubmitPledge = %v, want ErrCheckoutUnavailable", err)
	}
}

func TestConfirmPledge(t *testing.T) {
	l, investments, _, checkout, sink := newTestLedger(t)

	intent := &domain.PledgeIntent{
		Token:      "tok-1",
		InvestorID: 42,
		CampaignID: 1,
		Amount:     3000,
		SessionRef: "cs_123",
	}
	investments.EXPECT().GetIntent(mock.Anything, "tok-1").Return(intent, nil)
	investments.EXPECT().GetByInvestorAndCampaign(mock.Anything, int64(42), int64(1)).Return(nil, nil)
	checkout.EXPECT().GetPaymentStatus(mock.Anything, "cs_123").Return(port.PaymentPaid, nil)
	investments.EXPECT().Confirm(mock.Anything, *intent, testPolicy).Return(&port.ConfirmOutcome{
		Investment: domain.Investment{ID: 5, InvestorID: 42, CampaignID: 1, Amount: 3000, Status: domain.InvestmentPledged},
		Campaign:   *openCampaign(1, 10000),
		OwnerID:    77,
	}, nil)
	// owner and investor both get notified
	sink.EXPECT().Emit(mock.Anything, int64(77), mock.AnythingOfType("string"), mock.Anything).Return(nil)
	sink.EXPECT().Emit(mock.Anything, int64(42), mock.AnythingOfType("string"), mock.Anything).Return(nil)

	resp, err := l.ConfirmPledge(context.Background(), 42, "tok-1")
	if err != nil {
		t.Fatalf("ConfirmPledge error: %v", err)
	}
	if resp.AlreadyRecorded || resp.CampaignCompleted {
		t.Fatalf("unexpected flags in %+v", resp)
	}
	if resp.Investment.ID != 5 {
		t.Fatalf("expected investment 5, got %d", resp.Investment.ID)
	}
}

func TestConfirmPledgeGoalReached(t *testing.T) {
	l, investments, _, checkout, sink := newTestLedger(t)

	intent := &domain.PledgeIntent{Token: "tok-1", InvestorID: 42, CampaignID: 1, Amount: 1000, SessionRef: "cs_123"}
	done := *openCampaign(1, 10000)
	done.Status = domain.CampaignCompleted

	investments.EXPECT().GetIntent(mock.Anything, "tok-1").Return(intent, nil)
	investments.EXPECT().GetByInvestorAndCampaign(mock.Anything, int64(42), int64(1)).Return(nil, nil)
	checkout.EXPECT().GetPaymentStatus(mock.Anything, "cs_123").Return(port.PaymentPaid, nil)
	investments.EXPECT().Confirm(mock.Anything, *intent, testPolicy).Return(&port.ConfirmOutcome{
		Investment:  domain.Investment{ID: 6, InvestorID: 42, CampaignID: 1, Amount: 1000, Status: domain.InvestmentPledged},
		GoalReached: true,
		Campaign:    done,
		OwnerID:     77,
	}, nil)
	sink.EXPECT().Emit(mock.Anything, mock.Anything, mock.AnythingOfType("string"), mock.Anything).Return(nil).Times(2)

	resp, err := l.ConfirmPledge(context.Background(), 42, "tok-1")
	if err != nil {
		t.Fatalf("ConfirmPledge error: %v", err)
	}
	if !resp.CampaignCompleted {
		t.Fatal("expected CampaignCompleted to be set")
	}
}

// A replayed confirm callback answers from the ledger without contacting the
// checkout provider again.
func TestConfirmPledgeIdempotent(t *testing.T) {
	l, investments, _, _, _ := newTestLedger(t)

	intent := &domain.PledgeIntent{Token: "tok-1", InvestorID: 42, CampaignID: 1, Amount: 3000, SessionRef: "cs_123", Consumed: true}
	existing := &domain.Investment{ID: 5, InvestorID: 42, CampaignID: 1, Amount: 3000, Status: domain.InvestmentPledged}

	investments.EXPECT().GetIntent(mock.Anything, "tok-1").Return(intent, nil)
	investments.EXPECT().GetByInvestorAndCampaign(mock.Anything, int64(42), int64(1)).Return(existing, nil)

	resp, err := l.ConfirmPledge(context.Background(), 42, "tok-1")
	if err != nil {
		t.Fatalf("ConfirmPledge error: %v", err)
	}
	if !resp.AlreadyRecorded {
		t.Fatal("expected AlreadyRecorded on replay")
	}
	if resp.Investment.ID != 5 {
		t.Fatalf("expected the recorded investment, got %+v", resp.Investment)
	}
}

func TestConfirmPledgeUnpaid(t *testing.T) {
	l, investments, _, checkout, _ := newTestLedger(t)

	intent := &domain.PledgeIntent{Token: "tok-1", InvestorID: 42, CampaignID: 1, Amount: 3000, SessionRef: "cs_123"}
	investments.EXPECT().GetIntent(mock.Anything, "tok-1").Return(intent, nil)
	investments.EXPECT().GetByInvestorAndCampaign(mock.Anything, int64(42), int64(1)).Return(nil, nil)
	checkout.EXPECT().GetPaymentStatus(mock.Anything, "cs_123").Return(port.PaymentUnpaid, nil)

	_, err := l.ConfirmPledge(context.Background(), 42, "tok-1")
	if !errors.Is(err, port.ErrPaymentNotCompleted) {
		t.Fatalf("ConfirmPledge = %v, want ErrPaymentNotCompleted", err)
	}
}

func TestConfirmPledgeForeignToken(t *testing.T) {
	l, investments, _, _, _ := newTestLedger(t)

	intent := &domain.PledgeIntent{Token: "tok-1", InvestorID: 42, CampaignID: 1, Amount: 3000, SessionRef: "cs_123"}
	investments.EXPECT().GetIntent(mock.Anything, "tok-1").Return(intent, nil)

	_, err := l.ConfirmPledge(context.Background(), 99, "tok-1")
	if !errors.Is(err, port.ErrForbidden) {
		t.Fatalf("ConfirmPledge = %v, want ErrForbidden", err)
	}
}
