package domain

import (
	"errors"
	"testing"
)

func TestPledgePolicyValidate(t *testing.T) {
	policy := PledgePolicy{MinAmount: 2000, MaxAmount: 5000}

	tests := []struct {
		name      string
		amount    int64
		remaining int64
		want      error
	}{
		{"below floor", 1500, 10000, ErrAmountOutOfPolicyRange},
		{"above ceiling", 6000, 10000, ErrAmountOutOfPolicyRange},
		{"at floor", 2000, 10000, nil},
		{"at ceiling", 5000, 10000, nil},
		{"inside range", 3000, 10000, nil},
		{"zero amount", 0, 10000, ErrAmountOutOfPolicyRange},
		{"negative amount", -100, 10000, ErrAmountOutOfPolicyRange},
		{"exceeds remaining", 4000, 3000, ErrExceedsRemainingGoal},
		// remaining below the floor: only an exact closing pledge is allowed,
		// even though it is below the normal minimum
		{"closing pledge accepted", 1000, 1000, nil},
		{"closing pledge must be exact", 500, 1000, ErrMustMatchRemainingExactly},
		{"closing pledge over remaining", 1500, 1000, ErrExceedsRemainingGoal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := policy.Validate(tt.amount, tt.remaining)
			if !errors.Is(err, tt.want) {
				t.Fatalf("Validate(%d, %d) = %v, want %v", tt.amount, tt.remaining, err, tt.want)
			}
		})
	}
}
