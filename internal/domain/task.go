package domain

import (
	"encoding/json"
	"fmt"
	"time"
)

type Task struct {
	ID          string       `json:"id"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	ProjectID   string       `json:"projectId"`
	AssigneeID  string       `json:"assigneeId,omitempty"`
	Status      TaskStatus   `json:"status"`
	Priority    TaskPriority `json:"priority"`
	DueDate     *time.Time   `json:"dueDate,omitempty"`
	Tags        []string     `json:"tags"`
	CreatedAt   time.Time    `json:"createdAt"`
	UpdatedAt   time.Time    `json:"updatedAt"`
}

// UnmarshalJSON accepts the due dates written by the browser app, which stores
// the raw date input value.
func (t *Task) UnmarshalJSON(data []byte) error {
	type plain Task
	aux := struct {
		*plain
		DueDate json.RawMessage `json:"dueDate"`
	}{plain: (*plain)(t)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	due, err := ParseDueDate(aux.DueDate)
	if err != nil {
		return err
	}
	t.DueDate = due
	return nil
}

// ParseDueDate decodes a JSON due date. null and "" mean no due date; strings
// are either RFC 3339 or YYYY-MM-DD (midnight UTC).
func ParseDueDate(raw json.RawMessage) (*time.Time, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return nil, nil
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil, fmt.Errorf("dueDate: %w", err)
	}
	if s == "" {
		return nil, nil
	}
	for _, layout := range []string{time.RFC3339Nano, time.DateOnly} {
		if due, err := time.Parse(layout, s); err == nil {
			return &due, nil
		}
	}
	return nil, fmt.Errorf("dueDate: unsupported format %q", s)
}

type TaskStatus string

const (
	TaskTodo       TaskStatus = "todo"
	TaskInProgress TaskStatus = "in-progress"
	TaskReview     TaskStatus = "review"
	TaskDone       TaskStatus = "done"
)

// TaskStatuses lists the board columns in display order.
var TaskStatuses = []TaskStatus{TaskTodo, TaskInProgress, TaskReview, TaskDone}

func (s TaskStatus) Valid() bool {
	switch s {
	case TaskTodo, TaskInProgress, TaskReview, TaskDone:
		return true
	}
	return false
}

type TaskPriority string

const (
	PriorityLow    TaskPriority = "low"
	PriorityMedium TaskPriority = "medium"
	PriorityHigh   TaskPriority = "high"
	PriorityUrgent TaskPriority = "urgent"
)

func (p TaskPriority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent:
		return true
	}
	return false
}

// IsOverdue reports whether an unfinished task was due before the start of the
// day containing now (in now's location).
func (t *Task) IsOverdue(now time.Time) bool {
	if t.Status == TaskDone || t.DueDate == nil {
		return false
	}
	y, m, d := now.Date()
	startOfDay := time.Date(y, m, d, 0, 0, 0, 0, now.Location())
	return t.DueDate.Before(startOfDay)
}

type TaskInput struct {
	Title       string       `json:"title"`
	Description string       `json:"description"`
	ProjectID   string       `json:"projectId"`
	AssigneeID  string       `json:"assigneeId,omitempty"`
	Status      TaskStatus   `json:"status"`
	Priority    TaskPriority `json:"priority"`
	DueDate     *time.Time   `json:"dueDate,omitempty"`
	Tags        []string     `json:"tags"`
}

func (in *TaskInput) UnmarshalJSON(data []byte) error {
	type plain TaskInput
	aux := struct {
		*plain
		DueDate json.RawMessage `json:"dueDate"`
	}{plain: (*plain)(in)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	due, err := ParseDueDate(aux.DueDate)
	if err != nil {
		return err
	}
	in.DueDate = due
	return nil
}

// TaskPatch overwrites only the non-nil fields. AssigneeID pointing at ""
// unassigns; ClearDueDate removes the due date.
type TaskPatch struct {
	Title        *string
	Description  *string
	ProjectID    *string
	AssigneeID   *string
	Status       *TaskStatus
	Priority     *TaskPriority
	DueDate      *time.Time
	ClearDueDate bool
	Tags         *[]string
}

type TaskStats struct {
	Total      int `json:"total"`
	Todo       int `json:"todo"`
	InProgress int `json:"inProgress"`
	Review     int `json:"review"`
	Done       int `json:"done"`
	Overdue    int `json:"overdue"`
}
