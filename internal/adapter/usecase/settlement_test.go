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

func newTestSettler(t *testing.T) (*Settler, *mocks.MockSettlementRepository, *mocks.MockNotificationSink) {
	repo := mocks.NewMockSettlementRepository(t)
	sink := mocks.NewMockNotificationSink(t)
	s := NewSettler(repo, sink, discardLogger())
	s.now = func() time.Time { return time.Date(2026, 8, 29, 15, 30, 0, 0, time.UTC) }
	return s, repo, sink
}

func TestSettlementSuccess(t *testing.T) {
	s, repo, sink := newTestSettler(t)
	today := time.Date(2026, 8, 29, 0, 0, 0, 0, time.UTC)

	repo.EXPECT().ListExpiredUnresolved(mock.Anything, today).Return([]int64{1}, nil)
	repo.EXPECT().SettleCampaign(mock.Anything, int64(1), today).Return(&port.CampaignSettlement{
		Campaign:  domain.Campaign{ID: 1, Name: "Solar Farm", Goal: 5000, Status: domain.CampaignCompleted},
		Succeeded: true,
		Investments: []port.SettledInvestment{
			{InvestorID: 10, Amount: 4000},
			{InvestorID: 11, Amount: 2000},
		},
	}, nil)

	var messages []string
	sink.EXPECT().Emit(mock.Anything, mock.Anything, mock.AnythingOfType("string"), mock.Anything).
		Run(func(ctx context.Context, userID int64, message string, campaignID *int64) {
			messages = append(messages, message)
		}).
		Return(nil).Times(2)

	summary, err := s.Run(context.Background())
	if err != nil {
		t.Fatalf("Run error: %v", err)
	}
	if summary.Scanned != 1 || summary.Completed != 1 || summary.Failed != 0 || summary.Errored != 0 {
		t.Fatalf("unexpected summary %+v", summary)
	}
	if len(messages) != 2 {
		t.Fatalf("expected 2 notifications, got %d", len(messages))
	}
	for _, msg := range messages {
		if !strings.Contains(msg, "has been collected") {
			t.Fatalf("unexpected success message %q", msg)
		}
	}
}

func TestSettlementFailure(t *testing.T) {
	s, repo, sink := newTestSettler(t)
	today := time.Date(2026, 8, 29, 0, 0, 0, 0, time.UTC)

	repo.EXPECT().ListExpiredUnresolved(mock.Anything, today).Return([]int64{2}, nil)
	repo.EXPECT().SettleCampaign(mock.Anything, int64(2), today).Return(&port.CampaignSettlement{
		Campaign:    domain.Campaign{ID: 2, Name: "Night Market", Goal: 5000, Status: domain.CampaignFailed},
		Succeeded:   false,
		Investments: []port.SettledInvestment{{InvestorID: 10, Amount: 3000}},
	}, nil)
	sink.EXPECT().Emit(mock.Anything, int64(10), mock.MatchedBy(func(msg string) bool {
		return strings.Contains(msg, "marked as returned")
	}), mock.Anything).Return(nil)

	summary, err := s.Run(context.Background())
	if err != nil {
		t.Fatalf("Run error: %v", err)
	}
	if summary.Failed != 1 || summary.Completed != 0 {
		t.Fatalf("unexpected summary %+v", summary)
	}
}

// One campaign failing to settle must not abort the run; it is counted and
// the remaining campaigns are still processed.
func TestSettlementContinuesPastErrors(t *testing.T) {
	s, repo, sink := newTestSettler(t)
	today := time.Date(2026, 8, 29, 0, 0, 0, 0, time.UTC)

	repo.EXPECT().ListExpiredUnresolved(mock.Anything, today).Return([]int64{1, 2}, nil)
	repo.EXPECT().SettleCampaign(mock.Anything, int64(1), today).Return(nil, errors.New("serialization failure"))
	repo.EXPECT().SettleCampaign(mock.Anything, int64(2), today).Return(&port.CampaignSettlement{
		Campaign:    domain.Campaign{ID: 2, Name: "Night Market", Status: domain.CampaignFailed},
		Succeeded:   false,
		Investments: []port.SettledInvestment{{InvestorID: 10, Amount: 3000}},
	}, nil)
	sink.EXPECT().Emit(mock.Anything, int64(10), mock.AnythingOfType("string"), mock.Anything).Return(nil)

	summary, err := s.Run(context.Background())
	if err != nil {
		t.Fatalf("Run error: %v", err)
	}
	if summary.Errored != 1 || summary.Failed != 1 {
		t.Fatalf("unexpected summary %+v", summary)
	}
}

// A campaign resolved by a concurrent pledge between scan and lock yields a
// nil settlement and is silently skipped.
func TestSettlementSkipsConcurrentlyResolved(t *testing.T) {
	s, repo, _ := newTestSettler(t)
	today := time.Date(2026, 8, 29, 0, 0, 0, 0, time.UTC)

	repo.EXPECT().ListExpiredUnresolved(mock.Anything, today).Return([]int64{3}, nil)
	repo.EXPECT().SettleCampaign(mock.Anything, int64(3), today).Return(nil, nil)

	summary, err := s.Run(context.Background())
	if err != nil {
		t.Fatalf("Run error: %v", err)
	}
	if summary.Scanned != 1 || summary.Completed != 0 || summary.Failed != 0 || summary.Errored != 0 {
		t.Fatalf("unexpected summary %+v", summary)
	}
}

func TestSettlementScanFailureAborts(t *testing.T) {
	s, repo, _ := newTestSettler(t)

	repo.EXPECT().ListExpiredUnresolved(mock.Anything, mock.Anything).Return(nil, errors.New("connection refused"))

	if _, err := s.Run(context.Background()); err == nil {
		t.Fatal("expected the run to abort when the scan fails")
	}
}
