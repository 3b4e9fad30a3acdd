package domain

import "time"

// Notification is a discrete message addressed to a user, optionally tied
// to a campaign. Delivery is at-least-once and fire-and-forget; nothing in
// the core depends on a notification having been read.
type Notification struct {
	ID         int64
	UserID     int64
	Message    string
	IsRead     bool
	CampaignID *int64
	CreatedAt  time.Time
}
