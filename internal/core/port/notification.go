package port

import (
	"context"

	"hayyakom/internal/core/domain"
)

// NotificationSink receives discrete event messages for delivery.
// Fire-and-forget with at-least-once semantics: the core never depends on
// delivery confirmation, and emit failures must not fail the operation
// that produced them.
type NotificationSink interface {
	Emit(ctx context.Context, userID int64, message string, campaignID *int64) error
}

// NotificationRepository reads back persisted notifications for a user.
type NotificationRepository interface {
	// ListAndMarkRead returns the user's notifications newest first and
	// flags the unread ones as read.
	ListAndMarkRead(ctx context.Context, userID int64) ([]domain.Notification, error)
}
