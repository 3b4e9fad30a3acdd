package port

import (
	"context"

	"hayyakom/internal/core/domain"
)

// MilestoneRepository is the persistence port for campaign roadmaps.
type MilestoneRepository interface {
	// Create persists a new milestone and fills its ID.
	Create(ctx context.Context, m *domain.Milestone) error
	// GetByID returns the milestone or nil when it does not exist.
	GetByID(ctx context.Context, id int64) (*domain.Milestone, error)
	// ListByCampaign returns milestones ordered by target date.
	ListByCampaign(ctx context.Context, campaignID int64) ([]domain.Milestone, error)
	// MarkComplete flags the milestone as completed.
	MarkComplete(ctx context.Context, id int64) error
}
