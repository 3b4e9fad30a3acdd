package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"hayyakom/internal/core/port"
	"hayyakom/internal/metrics"
)

// Settler implements port.SettlementRunner. Each expired campaign is
// resolved as its own transactional unit; a failure on one campaign is
// logged and counted, and the run continues with the next. Campaigns that
// fail to settle stay InProcess and are retried on the next run.
type Settler struct {
	repo   port.SettlementRepository
	sink   port.NotificationSink
	logger *slog.Logger
	now    func() time.Time
}

// NewSettler creates the settlement usecase.
func NewSettler(repo port.SettlementRepository, sink port.NotificationSink, logger *slog.Logger) *Settler {
	return &Settler{repo: repo, sink: sink, logger: logger, now: time.Now}
}

func (s *Settler) Run(ctx context.Context) (*port.SettlementSummary, error) {
	y, m, d := s.now().UTC().Date()
	today := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)

	ids, err := s.repo.ListExpiredUnresolved(ctx, today)
	if err != nil {
		return nil, fmt.Errorf("list expired campaigns: %w", err)
	}
	summary := &port.SettlementSummary{Scanned: len(ids)}
	s.logger.Info("settlement run started", slog.Int("expired", len(ids)))

	for _, id := range ids {
		res, err := s.repo.SettleCampaign(ctx, id, today)
		if err != nil {
			summary.Errored++
			metrics.SettlementErrorsTotal.Inc()
			s.logger.Error("campaign settlement failed, left for retry",
				slog.Int64("campaign_id", id), slog.Any("error", err))
			continue
		}
		if res == nil {
			// resolved by a concurrent pledge between scan and lock
			continue
		}
		if res.Succeeded {
			summary.Completed++
			metrics.SettlementCampaignsCompletedTotal.Inc()
		} else {
			summary.Failed++
			metrics.SettlementCampaignsFailedTotal.Inc()
		}
		s.notify(ctx, res)
	}

	s.logger.Info("settlement run finished",
		slog.Int("scanned", summary.Scanned),
		slog.Int("completed", summary.Completed),
		slog.Int("failed", summary.Failed),
		slog.Int("errored", summary.Errored))
	return summary, nil
}

// notify fans the resolution out to investors after the settling
// transaction has committed. Sink failures are logged, never fatal.
func (s *Settler) notify(ctx context.Context, res *port.CampaignSettlement) {
	name := res.Campaign.Name
	for _, inv := range res.Investments {
		var msg string
		if res.Succeeded {
			msg = fmt.Sprintf("Good news! The campaign '%s' was successful. Your investment of %d BD has been collected.", name, inv.Amount)
		} else {
			msg = fmt.Sprintf("The campaign '%s' did not meet its goal. Your investment of %d BD has been marked as returned.", name, inv.Amount)
		}
		if err := s.sink.Emit(ctx, inv.InvestorID, msg, &res.Campaign.ID); err != nil {
			s.logger.Error("notification emit failed",
				slog.Int64("user_id", inv.InvestorID), slog.Any("error", err))
		}
	}
}
