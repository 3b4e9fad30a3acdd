package domain

import "time"

// Milestone is an owner-managed roadmap entry for a campaign. Completing a
// milestone notifies every investor of the campaign. Milestones are owned
// by their campaign and deleted with it.
type Milestone struct {
	ID         int64
	CampaignID int64
	Title      string
	TargetDate time.Time
	IsComplete bool
}
