package domain

import (
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestNextCycleDate(t *testing.T) {
	tests := []struct {
		name  string
		today time.Time
		want  time.Time
	}{
		// 2026-08-23 is a Sunday
		{"on the target day", date(2026, 8, 23), date(2026, 8, 23)},
		{"day after target", date(2026, 8, 24), date(2026, 8, 30)},
		{"day before target", date(2026, 8, 29), date(2026, 8, 30)},
		{"mid week", date(2026, 8, 26), date(2026, 8, 30)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NextCycleDate(tt.today, time.Sunday)
			if !got.Equal(tt.want) {
				t.Fatalf("NextCycleDate(%v) = %v, want %v", tt.today, got, tt.want)
			}
		})
	}
}

func TestCurrentCycleStart(t *testing.T) {
	tests := []struct {
		name  string
		today time.Time
		want  time.Time
	}{
		{"on the target day", date(2026, 8, 23), date(2026, 8, 23)},
		{"day after target", date(2026, 8, 24), date(2026, 8, 23)},
		{"end of cycle", date(2026, 8, 29), date(2026, 8, 23)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CurrentCycleStart(tt.today, time.Sunday)
			if !got.Equal(tt.want) {
				t.Fatalf("CurrentCycleStart(%v) = %v, want %v", tt.today, got, tt.want)
			}
		})
	}
}

func TestCampaignOpen(t *testing.T) {
	c := &Campaign{IsApproved: true, Status: CampaignInProcess}
	if !c.Open() {
		t.Fatal("approved InProcess campaign should be open")
	}
	c.Status = CampaignInPulse
	if c.Open() {
		t.Fatal("InPulse campaign must not accept pledges")
	}
	if !c.Visible() {
		t.Fatal("InPulse campaign should still be publicly visible")
	}
	c.Status = CampaignInProcess
	c.IsApproved = false
	if c.Open() || c.Visible() {
		t.Fatal("unapproved campaign must be neither open nor visible")
	}
}
