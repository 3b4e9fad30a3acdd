package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"hayyakom/internal/core/domain"
	"hayyakom/internal/core/port"
)

const investmentColumns = `id, investor_id, campaign_id, amount, status, created_at`

// InvestmentRepository implements port.InvestmentRepository using pgxpool.
// Confirm runs as a serializable transaction with the campaign row locked,
// so the remaining-goal check and the investment insert form one atomic
// unit per campaign.
type InvestmentRepository struct {
	pool *pgxpool.Pool
}

// NewInvestmentRepository returns a new repository instance.
func NewInvestmentRepository(pool *pgxpool.Pool) *InvestmentRepository {
	return &InvestmentRepository{pool: pool}
}

func (r *InvestmentRepository) GetByInvestorAndCampaign(ctx context.Context, investorID, campaignID int64) (*domain.Investment, error) {
	var inv domain.Investment
	err := r.pool.QueryRow(ctx,
		`SELECT `+investmentColumns+` FROM investments WHERE investor_id = $1 AND campaign_id = $2`,
		investorID, campaignID).
		Scan(&inv.ID, &inv.InvestorID, &inv.CampaignID, &inv.Amount, &inv.Status, &inv.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &inv, nil
}

func (r *InvestmentRepository) TotalInvested(ctx context.Context, campaignID int64) (int64, error) {
	var total int64
	err := r.pool.QueryRow(ctx,
		`SELECT COALESCE(SUM(amount), 0) FROM investments WHERE campaign_id = $1 AND status IN ($2, $3)`,
		campaignID, domain.InvestmentPledged, domain.InvestmentCollected).Scan(&total)
	return total, err
}

func (r *InvestmentRepository) ListByCampaign(ctx context.Context, campaignID int64) ([]domain.Investment, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+investmentColumns+` FROM investments WHERE campaign_id = $1 ORDER BY created_at`,
		campaignID)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Investment, error) {
		var inv domain.Investment
		err := row.Scan(&inv.ID, &inv.InvestorID, &inv.CampaignID, &inv.Amount, &inv.Status, &inv.CreatedAt)
		return inv, err
	})
}

func (r *InvestmentRepository) CreateIntent(ctx context.Context, intent *domain.PledgeIntent) error {
	return r.pool.QueryRow(ctx, `INSERT INTO pledge_intents
    (token, investor_id, campaign_id, amount, session_ref, consumed, created_at)
VALUES ($1,$2,$3,$4,$5,false,now())
RETURNING created_at`,
		intent.Token, intent.InvestorID, intent.CampaignID, intent.Amount, intent.SessionRef).
		Scan(&intent.CreatedAt)
}

func (r *InvestmentRepository) GetIntent(ctx context.Context, token string) (*domain.PledgeIntent, error) {
	var intent domain.PledgeIntent
	err := r.pool.QueryRow(ctx,
		`SELECT token, investor_id, campaign_id, amount, session_ref, consumed, created_at
         FROM pledge_intents WHERE token = $1`, token).
		Scan(&intent.Token, &intent.InvestorID, &intent.CampaignID, &intent.Amount,
			&intent.SessionRef, &intent.Consumed, &intent.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &intent, nil
}

// Confirm records the investment for a paid intent. The campaign row is
// locked first; the duplicate check, the policy re-check against the live
// total, the insert and the goal short-circuit all happen under that lock.
func (r *InvestmentRepository) Confirm(ctx context.Context, intent domain.PledgeIntent, policy domain.PledgePolicy) (out *port.ConfirmOutcome, err error) {
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

	var (
		c       domain.Campaign
		ownerID int64
	)
	err = tx.QueryRow(ctx, `SELECT c.id, c.company_id, c.name, c.description, c.goal, c.deadline,
               c.category, c.is_approved, c.status, c.reveal_date, c.created_at, c.updated_at, co.owner_id
        FROM campaigns c
        JOIN companies co ON co.id = c.company_id
        WHERE c.id = $1 FOR UPDATE OF c`, intent.CampaignID).
		Scan(&c.ID, &c.CompanyID, &c.Name, &c.Description, &c.Goal, &c.Deadline,
			&c.Category, &c.IsApproved, &c.Status, &c.RevealDate, &c.CreatedAt, &c.UpdatedAt, &ownerID)
	if errors.Is(err, pgx.ErrNoRows) {
		err = port.ErrNotFound
		return nil, err
	}
	if err != nil {
		return nil, err
	}

	// a confirm replay or a concurrent confirm already holds the row lock
	// path; treat an existing investment as already recorded
	var existing domain.Investment
	scanErr := tx.QueryRow(ctx,
		`SELECT `+investmentColumns+` FROM investments WHERE investor_id = $1 AND campaign_id = $2`,
		intent.InvestorID, intent.CampaignID).
		Scan(&existing.ID, &existing.InvestorID, &existing.CampaignID, &existing.Amount, &existing.Status, &existing.CreatedAt)
	if scanErr == nil {
		return &port.ConfirmOutcome{Investment: existing, AlreadyRecorded: true, Campaign: c, OwnerID: ownerID}, nil
	}
	if !errors.Is(scanErr, pgx.ErrNoRows) {
		err = scanErr
		return nil, err
	}

	if !c.Open() {
		err = domain.ErrCampaignNotOpen
		return nil, err
	}
	var total int64
	err = tx.QueryRow(ctx,
		`SELECT COALESCE(SUM(amount), 0) FROM investments WHERE campaign_id = $1 AND status IN ($2, $3)`,
		intent.CampaignID, domain.InvestmentPledged, domain.InvestmentCollected).Scan(&total)
	if err != nil {
		return nil, err
	}
	if err = policy.Validate(intent.Amount, c.Goal-total); err != nil {
		return nil, err
	}

	inv := domain.Investment{
		InvestorID: intent.InvestorID,
		CampaignID: intent.CampaignID,
		Amount:     intent.Amount,
		Status:     domain.InvestmentPledged,
	}
	err = tx.QueryRow(ctx, `INSERT INTO investments (investor_id, campaign_id, amount, status, created_at)
VALUES ($1,$2,$3,$4,now()) RETURNING id, created_at`,
		inv.InvestorID, inv.CampaignID, inv.Amount, inv.Status).Scan(&inv.ID, &inv.CreatedAt)
	if err != nil {
		return nil, err
	}
	_, err = tx.Exec(ctx, `UPDATE pledge_intents SET consumed = true WHERE token = $1`, intent.Token)
	if err != nil {
		return nil, err
	}

	out = &port.ConfirmOutcome{Investment: inv, Campaign: c, OwnerID: ownerID}
	if total+inv.Amount >= c.Goal {
		// goal filled: complete immediately instead of waiting for settlement
		_, err = tx.Exec(ctx, `UPDATE campaigns SET status = $2, updated_at = now() WHERE id = $1`,
			c.ID, domain.CampaignCompleted)
		if err != nil {
			return nil, err
		}
		out.Campaign.Status = domain.CampaignCompleted
		out.GoalReached = true
	}
	return out, nil
}
