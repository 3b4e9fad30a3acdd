package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"hayyakom/internal/core/domain"
	"hayyakom/internal/core/port"
	"hayyakom/internal/metrics"
)

// Ledger implements port.InvestmentLedger. Pledging is two-phased: the
// intent is validated against the acceptance policy and handed to the
// checkout provider, and the investment row is created only when the
// confirm callback finds the session paid. The policy is re-checked inside
// the confirming transaction, so concurrent pledges cannot jointly
// overshoot the goal.
type Ledger struct {
	investments port.InvestmentRepository
	campaigns   port.CampaignRepository
	companies   port.CompanyRepository
	checkout    port.CheckoutProvider
	sink        port.NotificationSink
	logger      *slog.Logger

	policy domain.PledgePolicy
	// rate converts domain currency units into the processor's currency;
	// minor units are truncated (round-down) for reproducibility.
	rate     decimal.Decimal
	currency string
}

// NewLedger creates the investment ledger usecase.
func NewLedger(
	investments port.InvestmentRepository,
	campaigns port.CampaignRepository,
	companies port.CompanyRepository,
	checkout port.CheckoutProvider,
	sink port.NotificationSink,
	policy domain.PledgePolicy,
	rate decimal.Decimal,
	currency string,
	logger *slog.Logger,
) *Ledger {
	return &Ledger{
		investments: investments,
		campaigns:   campaigns,
		companies:   companies,
		checkout:    checkout,
		sink:        sink,
		logger:      logger,
		policy:      policy,
		rate:        rate,
		currency:    currency,
	}
}

func (l *Ledger) SubmitPledge(ctx context.Context, investorID, campaignID, amount int64) (*port.PledgeResponse, error) {
	if amount <= 0 {
		return nil, port.ValidationError{Field: "amount", Reason: "must be positive"}
	}
	c, err := l.campaigns.GetByID(ctx, campaignID)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, port.ErrNotFound
	}
	existing, err := l.investments.GetByInvestorAndCampaign(ctx, investorID, campaignID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, l.reject(domain.ErrDuplicatePledge)
	}
	if !c.Open() {
		return nil, l.reject(domain.ErrCampaignNotOpen)
	}
	total, err := l.investments.TotalInvested(ctx, campaignID)
	if err != nil {
		return nil, err
	}
	if err := l.policy.Validate(amount, c.Goal-total); err != nil {
		return nil, l.reject(err)
	}

	token := uuid.NewString()
	session, err := l.checkout.CreatePaymentIntent(ctx,
		fmt.Sprintf("Investment in: %s", c.Name), l.minorUnits(amount), l.currency, token)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", port.ErrCheckoutUnavailable, err)
	}
	intent := &domain.PledgeIntent{
		Token:      token,
		InvestorID: investorID,
		CampaignID: campaignID,
		Amount:     amount,
		SessionRef: session.Ref,
	}
	if err := l.investments.CreateIntent(ctx, intent); err != nil {
		return nil, err
	}
	metrics.PledgesSubmittedTotal.Inc()
	return &port.PledgeResponse{Token: token, RedirectURL: session.RedirectURL}, nil
}

func (l *Ledger) ConfirmPledge(ctx context.Context, investorID int64, token string) (*port.ConfirmResponse, error) {
	if token == "" {
		return nil, port.ValidationError{Field: "token", Reason: "must not be empty"}
	}
	intent, err := l.investments.GetIntent(ctx, token)
	if err != nil {
		return nil, err
	}
	if intent == nil {
		return nil, port.ErrNotFound
	}
	if intent.InvestorID != investorID {
		return nil, port.ErrForbidden
	}

	// A replayed callback answers from the ledger without touching checkout.
	existing, err := l.investments.GetByInvestorAndCampaign(ctx, intent.InvestorID, intent.CampaignID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return &port.ConfirmResponse{Investment: *existing, AlreadyRecorded: true}, nil
	}

	status, err := l.checkout.GetPaymentStatus(ctx, intent.SessionRef)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", port.ErrCheckoutUnavailable, err)
	}
	if status != port.PaymentPaid {
		return nil, port.ErrPaymentNotCompleted
	}

	outcome, err := l.investments.Confirm(ctx, *intent, l.policy)
	if err != nil {
		return nil, err
	}
	if outcome.AlreadyRecorded {
		return &port.ConfirmResponse{Investment: outcome.Investment, AlreadyRecorded: true}, nil
	}

	metrics.InvestmentsConfirmedTotal.Inc()
	if outcome.GoalReached {
		metrics.CampaignsGoalReachedTotal.Inc()
	}
	l.emit(ctx, outcome.OwnerID,
		fmt.Sprintf("A new investment of %d BD was pledged to your campaign '%s'.",
			outcome.Investment.Amount, outcome.Campaign.Name),
		&outcome.Campaign.ID)
	l.emit(ctx, investorID,
		fmt.Sprintf("Thank you! Your investment of %d BD in '%s' has been confirmed.",
			outcome.Investment.Amount, outcome.Campaign.Name),
		&outcome.Campaign.ID)

	return &port.ConfirmResponse{
		Investment:        outcome.Investment,
		CampaignCompleted: outcome.GoalReached,
	}, nil
}

func (l *Ledger) ListCampaignInvestments(ctx context.Context, ownerID, campaignID int64) ([]domain.Investment, error) {
	c, err := l.campaigns.GetByID(ctx, campaignID)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, port.ErrNotFound
	}
	company, err := l.companies.GetByID(ctx, c.CompanyID)
	if err != nil {
		return nil, err
	}
	if company == nil || company.OwnerID != ownerID {
		return nil, port.ErrForbidden
	}
	return l.investments.ListByCampaign(ctx, campaignID)
}

// minorUnits converts a domain amount into processor minor units at the
// fixed exchange rate, truncating fractional cents.
func (l *Ledger) minorUnits(amount int64) int64 {
	return decimal.NewFromInt(amount).Mul(l.rate).Shift(2).Floor().IntPart()
}

// reject counts a policy rejection before returning it.
func (l *Ledger) reject(err error) error {
	metrics.PledgesRejectedTotal.WithLabelValues(rejectReason(err)).Inc()
	return err
}

func rejectReason(err error) string {
	switch {
	case errors.Is(err, domain.ErrDuplicatePledge):
		return "duplicate"
	case errors.Is(err, domain.ErrCampaignNotOpen):
		return "not_open"
	case errors.Is(err, domain.ErrExceedsRemainingGoal):
		return "exceeds_remaining"
	case errors.Is(err, domain.ErrMustMatchRemainingExactly):
		return "must_match_remaining"
	case errors.Is(err, domain.ErrAmountOutOfPolicyRange):
		return "out_of_range"
	default:
		return "other"
	}
}

// emit sends a notification and logs failures; delivery is fire-and-forget.
func (l *Ledger) emit(ctx context.Context, userID int64, message string, campaignID *int64) {
	if err := l.sink.Emit(ctx, userID, message, campaignID); err != nil {
		l.logger.Error("notification emit failed",
			slog.Int64("user_id", userID), slog.Any("error", err))
	}
}
