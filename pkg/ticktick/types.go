package ticktick

// Task priorities. The scale is not contiguous.
const (
	PriorityNone   = 0
	PriorityLow    = 1
	PriorityMedium = 3
	PriorityHigh   = 5
)

// Task statuses.
const (
	StatusActive    = 0
	StatusCompleted = 2
)

// Checklist item statuses.
const (
	ItemStatusActive    = 0
	ItemStatusCompleted = 1
)

// Task is a TickTick task.
type Task struct {
	ID         string          `json:"id"`
	ProjectID  string          `json:"projectId"`
	ParentID   string          `json:"parentId,omitempty"`
	Title      string          `json:"title"`
	Content    string          `json:"content,omitempty"`
	Priority   int             `json:"priority"`
	Status     int             `json:"status"`
	DueDate    string          `json:"dueDate,omitempty"`
	StartDate  string          `json:"startDate,omitempty"`
	RepeatFlag string          `json:"repeatFlag,omitempty"`
	Reminders  []string        `json:"reminders,omitempty"`
	Items      []ChecklistItem `json:"items,omitempty"`
	ChildIDs   []string        `json:"childIds,omitempty"`
	IsAllDay   bool            `json:"isAllDay,omitempty"`
	TimeZone   string          `json:"timeZone,omitempty"`
}

// ChecklistItem is a checklist entry inside a task.
type ChecklistItem struct {
	ID        string `json:"id,omitempty"`
	Title     string `json:"title"`
	Status    int    `json:"status"`
	SortOrder int64  `json:"sortOrder,omitempty"`
}

// Project is a TickTick project (task list).
type Project struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Kind string `json:"kind,omitempty"`
}

// TaskPayload is the body for task create and update calls. Pointer
// fields distinguish "leave unchanged" (nil) from "set to the zero
// value": a non-nil empty RepeatFlag clears the recurrence, a non-nil
// empty Reminders list removes all reminders.
type TaskPayload struct {
	ID         string           `json:"id,omitempty"`
	ProjectID  string           `json:"projectId,omitempty"`
	ParentID   string           `json:"parentId,omitempty"`
	Title      string           `json:"title,omitempty"`
	Content    string           `json:"content,omitempty"`
	Priority   *int             `json:"priority,omitempty"`
	DueDate    string           `json:"dueDate,omitempty"`
	StartDate  string           `json:"startDate,omitempty"`
	RepeatFlag *string          `json:"repeatFlag,omitempty"`
	Reminders  *[]string        `json:"reminders,omitempty"`
	Items      []ChecklistItem  `json:"items,omitempty"`
	TimeZone   string           `json:"timeZone,omitempty"`
}

// projectData is the GET /project/{id}/data response.
type projectData struct {
	Project Project `json:"project"`
	Tasks   []Task  `json:"tasks"`
}
