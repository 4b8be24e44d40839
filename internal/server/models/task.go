package models

import "time"

// TaskPriority orders tasks within a day.
type TaskPriority string

const (
	PriorityHigh   TaskPriority = "high"
	PriorityMedium TaskPriority = "medium"
	PriorityLow    TaskPriority = "low"
)

func (p TaskPriority) Valid() bool {
	switch p {
	case PriorityHigh, PriorityMedium, PriorityLow:
		return true
	}
	return false
}

// TaskImages are the avatar illustrations a task may carry.
var TaskImages = []string{
	"https://avatar.iran.liara.run/public/45",
	"https://avatar.iran.liara.run/public/30",
	"https://avatar.iran.liara.run/public/48",
	"https://avatar.iran.liara.run/public/65",
}

// Task is a single to-do item owned by one account.
type Task struct {
	ID        string
	AccountID string
	Name      string
	Due       time.Time
	Priority  TaskPriority
	Mood      Mood
	Image     string
	CreatedAt time.Time
	UpdatedAt time.Time
}
