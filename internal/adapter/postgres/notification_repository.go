package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"hayyakom/internal/core/domain"
)

// NotificationRepository persists notifications. It implements both
// port.NotificationSink (writes) and port.NotificationRepository (reads):
// the "sink" of this deployment is the notifications table, which the user
// surface reads back.
type NotificationRepository struct {
	pool *pgxpool.Pool
}

// NewNotificationRepository returns a new repository instance.
func NewNotificationRepository(pool *pgxpool.Pool) *NotificationRepository {
	return &NotificationRepository{pool: pool}
}

func (r *NotificationRepository) Emit(ctx context.Context, userID int64, message string, campaignID *int64) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO notifications (user_id, message, is_read, campaign_id, created_at) VALUES ($1,$2,false,$3,now())`,
		userID, message, campaignID)
	return err
}

func (r *NotificationRepository) ListAndMarkRead(ctx context.Context, userID int64) (list []domain.Notification, err error) {
	tx, err := r.pool.Begin(ctx)
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

	rows, err := tx.Query(ctx,
		`SELECT id, user_id, message, is_read, campaign_id, created_at FROM notifications
         WHERE user_id = $1 ORDER BY created_at DESC`, userID)
	if err != nil {
		return nil, err
	}
	list, err = pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Notification, error) {
		var n domain.Notification
		err := row.Scan(&n.ID, &n.UserID, &n.Message, &n.IsRead, &n.CampaignID, &n.CreatedAt)
		return n, err
	})
	if err != nil {
		return nil, err
	}
	_, err = tx.Exec(ctx,
		`UPDATE notifications SET is_read = true WHERE user_id = $1 AND NOT is_read`, userID)
	return list, err
}
