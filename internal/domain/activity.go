package domain

import "time"

// Activity is part of the persisted layout but no operation records one yet;
// the collection is only initialized to an empty array.
type Activity struct {
	ID          string       `json:"id"`
	Type        ActivityType `json:"type"`
	UserID      string       `json:"userId"`
	EntityID    string       `json:"entityId"`
	EntityType  string       `json:"entityType"`
	Description string       `json:"description"`
	CreatedAt   time.Time    `json:"createdAt"`
}

type ActivityType string

const (
	ActivityTaskCreated    ActivityType = "task_created"
	ActivityTaskUpdated    ActivityType = "task_updated"
	ActivityTaskCompleted  ActivityType = "task_completed"
	ActivityProjectCreated ActivityType = "project_created"
	ActivityTeamCreated    ActivityType = "team_created"
	ActivityMemberAdded    ActivityType = "member_added"
)
