package domain

import (
	"errors"
	"time"
)

// Pledge policy violations. Surfaced to the pledging user as a rejected
// pledge; no state is mutated when any of these is returned.
var (
	ErrDuplicatePledge           = errors.New("investor already invested in this campaign")
	ErrCampaignNotOpen           = errors.New("campaign is not open for investment")
	ErrExceedsRemainingGoal      = errors.New("amount exceeds the remaining goal")
	ErrMustMatchRemainingExactly = errors.New("amount must match the remaining goal exactly")
	ErrAmountOutOfPolicyRange    = errors.New("amount is outside the allowed investment range")
)

// PledgePolicy bounds the amount a single investor may pledge. Amounts are
// in integer currency units.
type PledgePolicy struct {
	MinAmount int64
	MaxAmount int64
}

// Validate applies the acceptance rules for a pledge of amount against the
// campaign's remaining goal. When the remaining goal has dropped below the
// policy floor, only a closing pledge of exactly the remaining amount is
// accepted.
func (p PledgePolicy) Validate(amount, remaining int64) error {
	if amount <= 0 {
		return ErrAmountOutOfPolicyRange
	}
	if amount > remaining {
		return ErrExceedsRemainingGoal
	}
	if remaining < p.MinAmount {
		if amount != remaining {
			return ErrMustMatchRemainingExactly
		}
		return nil
	}
	if amount < p.MinAmount || amount > p.MaxAmount {
		return ErrAmountOutOfPolicyRange
	}
	return nil
}

// PledgeIntent is the pending half of the two-phase pledge protocol. It is
// written before the investor is redirected to checkout and consumed when
// the confirm callback records the investment. Abandoned checkouts leave
// the intent unconsumed and create no investment.
type PledgeIntent struct {
	Token      string
	InvestorID int64
	CampaignID int64
	Amount     int64
	SessionRef string
	Consumed   bool
	CreatedAt  time.Time
}
