package model

import "time"

// Scope is the per-request user context assembled by the delivery
// layer. Now is the reference instant in the user's timezone; the core
// never reads a global clock.
type Scope struct {
	SessionID   string
	UserID      string
	AccessToken string
	Now         time.Time
}

// Task is a TickTick task in domain form. Dates are parsed so callers
// can filter by day without re-parsing wire strings.
type Task struct {
	ID         string
	ProjectID  string
	ParentID   string
	Title      string
	Content    string
	Priority   int
	Status     int
	DueDate    *time.Time
	StartDate  *time.Time
	RepeatFlag string
	Reminders  []string
	Items      []ChecklistItem
}

// ChecklistItem is a checklist entry inside a task.
type ChecklistItem struct {
	ID     string
	Title  string
	Status int
}

// Project is a TickTick project.
type Project struct {
	ID   string
	Name string
}

// Active reports whether the task is not completed.
func (t Task) Active() bool {
	return t.Status == 0
}

// DueOn reports whether the task is due on the same calendar day as day.
func (t Task) DueOn(day time.Time) bool {
	if t.DueDate == nil {
		return false
	}
	y1, m1, d1 := t.DueDate.Date()
	y2, m2, d2 := day.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// OverdueAt reports whether the task's due day is strictly before now's day.
func (t Task) OverdueAt(now time.Time) bool {
	if t.DueDate == nil {
		return false
	}
	due := time.Date(t.DueDate.Year(), t.DueDate.Month(), t.DueDate.Day(), 0, 0, 0, 0, now.Location())
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return due.Before(today)
}
