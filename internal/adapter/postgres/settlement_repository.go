package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"hayyakom/internal/core/domain"
	"hayyakom/internal/core/port"
)

// SettlementRepository implements port.SettlementRepository using pgxpool.
// SettleCampaign shares the campaign-row locking discipline with the
// pledge-confirmation path, so the batch job and live pledges never mutate
// the same campaign at once.
type SettlementRepository struct {
	pool *pgxpool.Pool
}

// NewSettlementRepository returns a new repository instance.
func NewSettlementRepository(pool *pgxpool.Pool) *SettlementRepository {
	return &SettlementRepository{pool: pool}
}

func (r *SettlementRepository) ListExpiredUnresolved(ctx context.Context, today time.Time) ([]int64, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id FROM campaigns WHERE status = $1 AND deadline < $2 ORDER BY id`,
		domain.CampaignInProcess, today)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (int64, error) {
		var id int64
		err := row.Scan(&id)
		return id, err
	})
}

// SettleCampaign resolves one expired campaign in a single transaction. It
// returns nil when the campaign no longer needs settling (already resolved
// by a goal-filling pledge, or gone).
func (r *SettlementRepository) SettleCampaign(ctx context.Context, campaignID int64, today time.Time) (res *port.CampaignSettlement, err error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.Serializable})
	if err != nil {
		return nil, err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			_ = tx.Commit(ctx)
		}
	}()

	var c domain.Campaign
	err = tx.QueryRow(ctx,
		`SELECT `+campaignColumns+` FROM campaigns WHERE id = $1 FOR UPDATE`, campaignID).
		Scan(&c.ID, &c.CompanyID, &c.Name, &c.Description, &c.Goal, &c.Deadline,
			&c.Category, &c.IsApproved, &c.Status, &c.RevealDate, &c.CreatedAt, &c.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		err = nil
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if c.Status != domain.CampaignInProcess || !c.Expired(today) {
		return nil, nil
	}

	var total int64
	err = tx.QueryRow(ctx,
		`SELECT COALESCE(SUM(amount), 0) FROM investments WHERE campaign_id = $1 AND status IN ($2, $3)`,
		campaignID, domain.InvestmentPledged, domain.InvestmentCollected).Scan(&total)
	if err != nil {
		return nil, err
	}

	succeeded := total >= c.Goal
	finalInvestment := domain.InvestmentReturned
	finalCampaign := domain.CampaignFailed
	if succeeded {
		finalInvestment = domain.InvestmentCollected
		finalCampaign = domain.CampaignCompleted
	}

	rows, err := tx.Query(ctx, `UPDATE investments SET status = $2
        WHERE campaign_id = $1 AND status = $3
        RETURNING investor_id, amount`,
		campaignID, finalInvestment, domain.InvestmentPledged)
	if err != nil {
		return nil, err
	}
	settled, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (port.SettledInvestment, error) {
		var si port.SettledInvestment
		err := row.Scan(&si.InvestorID, &si.Amount)
		return si, err
	})
	if err != nil {
		return nil, err
	}

	_, err = tx.Exec(ctx, `UPDATE campaigns SET status = $2, updated_at = now() WHERE id = $1`,
		campaignID, finalCampaign)
	if err != nil {
		return nil, err
	}
	c.Status = finalCampaign
	return &port.CampaignSettlement{Campaign: c, Succeeded: succeeded, Investments: settled}, nil
}
