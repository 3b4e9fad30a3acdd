package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"hayyakom/internal/core/domain"
	"hayyakom/internal/core/port"
)

const campaignColumns = `id, company_id, name, description, goal, deadline, category, is_approved, status, reveal_date, created_at, updated_at`

// CampaignRepository implements port.CampaignRepository using pgxpool.
// Guarded transitions lock the campaign row before checking its state so
// they serialize with the pledge-confirmation and settlement paths.
type CampaignRepository struct {
	pool *pgxpool.Pool
}

// NewCampaignRepository returns a new repository instance.
func NewCampaignRepository(pool *pgxpool.Pool) *CampaignRepository {
	return &CampaignRepository{pool: pool}
}

func (r *CampaignRepository) Create(ctx context.Context, c *domain.Campaign) error {
	return r.pool.QueryRow(ctx, `INSERT INTO campaigns
    (company_id, name, description, goal, deadline, category, is_approved, status, created_at, updated_at)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,now(),now())
RETURNING id, created_at, updated_at`,
		c.CompanyID, c.Name, c.Description, c.Goal, c.Deadline, c.Category, c.IsApproved, c.Status).
		Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)
}

func (r *CampaignRepository) GetByID(ctx context.Context, id int64) (*domain.Campaign, error) {
	var c domain.Campaign
	err := r.pool.QueryRow(ctx,
		`SELECT `+campaignColumns+` FROM campaigns WHERE id = $1`, id).
		Scan(&c.ID, &c.CompanyID, &c.Name, &c.Description, &c.Goal, &c.Deadline,
			&c.Category, &c.IsApproved, &c.Status, &c.RevealDate, &c.CreatedAt, &c.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CampaignRepository) ListVisible(ctx context.Context, f port.CampaignFilter) ([]domain.Campaign, error) {
	query := `
        SELECT c.id, c.company_id, c.name, c.description, c.goal, c.deadline,
               c.category, c.is_approved, c.status, c.reveal_date, c.created_at, c.updated_at
        FROM campaigns c
        JOIN companies co ON co.id = c.company_id
        WHERE c.is_approved
          AND c.status IN ($1, $2)
          AND ($3 = '' OR c.name ILIKE '%' || $3 || '%' OR co.name ILIKE '%' || $3 || '%')
          AND ($4 = '' OR c.category = $4)
        ORDER BY c.deadline DESC`
	rows, err := r.pool.Query(ctx, query,
		domain.CampaignInProcess, domain.CampaignInPulse, f.Query, string(f.Category))
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, collectCampaign)
}

func (r *CampaignRepository) ListByCompany(ctx context.Context, companyID int64) ([]domain.Campaign, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+campaignColumns+` FROM campaigns WHERE company_id = $1 ORDER BY deadline DESC`,
		companyID)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, collectCampaign)
}

func (r *CampaignRepository) ListInPulse(ctx context.Context, revealOnOrBefore time.Time) ([]domain.Campaign, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+campaignColumns+` FROM campaigns
         WHERE status = $1 AND reveal_date <= $2 ORDER BY reveal_date DESC, id`,
		domain.CampaignInPulse, revealOnOrBefore)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, collectCampaign)
}

func (r *CampaignRepository) UpdateDetails(ctx context.Context, id int64, name, description string, category domain.CampaignCategory) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE campaigns SET name = $2, description = $3, category = $4, updated_at = now() WHERE id = $1`,
		id, name, description, category)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return port.ErrNotFound
	}
	return nil
}

func (r *CampaignRepository) Approve(ctx context.Context, id int64) error {
	return r.transition(ctx, id, domain.CampaignPendingApproval,
		`UPDATE campaigns SET is_approved = true, status = $2, updated_at = now() WHERE id = $1`,
		domain.CampaignInProcess)
}

func (r *CampaignRepository) PromoteToPulse(ctx context.Context, id int64, reveal time.Time) error {
	return r.transition(ctx, id, domain.CampaignInProcess,
		`UPDATE campaigns SET status = $2, reveal_date = $3, updated_at = now() WHERE id = $1`,
		domain.CampaignInPulse, reveal)
}

func (r *CampaignRepository) ReturnFromPulse(ctx context.Context, id int64) error {
	return r.transition(ctx, id, domain.CampaignInPulse,
		`UPDATE campaigns SET status = $2, reveal_date = NULL, updated_at = now() WHERE id = $1`,
		domain.CampaignInProcess)
}

// transition locks the campaign row, verifies its current status and applies
// the update. The update statement receives the campaign id as $1 followed
// by args.
func (r *CampaignRepository) transition(ctx context.Context, id int64, from domain.CampaignStatus, update string, args ...any) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			_ = tx.Commit(ctx)
		}
	}()
	var status domain.CampaignStatus
	err = tx.QueryRow(ctx, `SELECT status FROM campaigns WHERE id = $1 FOR UPDATE`, id).Scan(&status)
	if errors.Is(err, pgx.ErrNoRows) {
		err = port.ErrNotFound
		return err
	}
	if err != nil {
		return err
	}
	if status != from {
		err = fmt.Errorf("%w: campaign %d is %q, want %q", port.ErrInvalidTransition, id, status, from)
		return err
	}
	_, err = tx.Exec(ctx, update, append([]any{id}, args...)...)
	return err
}

func collectCampaign(row pgx.CollectableRow) (domain.Campaign, error) {
	var c domain.Campaign
	err := row.Scan(&c.ID, &c.CompanyID, &c.Name, &c.Description, &c.Goal, &c.Deadline,
		&c.Category, &c.IsApproved, &c.Status, &c.RevealDate, &c.CreatedAt, &c.UpdatedAt)
	return c, err
}
