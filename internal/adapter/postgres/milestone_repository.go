package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"hayyakom/internal/core/domain"
	"hayyakom/internal/core/port"
)

// MilestoneRepository implements port.MilestoneRepository using pgxpool.
type MilestoneRepository struct {
	pool *pgxpool.Pool
}

// NewMilestoneRepository returns a new repository instance.
func NewMilestoneRepository(pool *pgxpool.Pool) *MilestoneRepository {
	return &MilestoneRepository{pool: pool}
}

func (r *MilestoneRepository) Create(ctx context.Context, m *domain.Milestone) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO milestones (campaign_id, title, target_date, is_complete) VALUES ($1,$2,$3,false) RETURNING id`,
		m.CampaignID, m.Title, m.TargetDate).Scan(&m.ID)
}

func (r *MilestoneRepository) GetByID(ctx context.Context, id int64) (*domain.Milestone, error) {
	var m domain.Milestone
	err := r.pool.QueryRow(ctx,
		`SELECT id, campaign_id, title, target_date, is_complete FROM milestones WHERE id = $1`, id).
		Scan(&m.ID, &m.CampaignID, &m.Title, &m.TargetDate, &m.IsComplete)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *MilestoneRepository) ListByCampaign(ctx context.Context, campaignID int64) ([]domain.Milestone, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, campaign_id, title, target_date, is_complete FROM milestones
         WHERE campaign_id = $1 ORDER BY target_date`, campaignID)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Milestone, error) {
		var m domain.Milestone
		err := row.Scan(&m.ID, &m.CampaignID, &m.Title, &m.TargetDate, &m.IsComplete)
		return m, err
	})
}

func (r *MilestoneRepository) MarkComplete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `UPDATE milestones SET is_complete = true WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return port.ErrNotFound
	}
	return nil
}
