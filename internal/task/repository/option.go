package repository

// CreateTaskOptions holds the parameters for creating a task.
// Date strings are in the TickTick wire format.
type CreateTaskOptions struct {
	Title      string
	ProjectID  string // empty means the default inbox
	ParentID   string // non-empty creates a subtask
	StartDate  string
	DueDate    string
	Priority   int
	RepeatFlag string
	Reminders  []string
}

// UpdateTaskOptions holds the parameters for a partial task update.
// Nil pointers leave the attribute unchanged; a pointer to the zero
// value clears it (empty RepeatFlag removes the recurrence, empty
// Reminders removes all reminders).
type UpdateTaskOptions struct {
	ProjectID string
	TaskID    string

	Title      *string
	DueDate    *string
	Priority   *int
	RepeatFlag *string
	Reminders  *[]string
	Items      *[]ItemOption
}

// ItemOption is one checklist entry in an update.
type ItemOption struct {
	ID     string
	Title  string
	Status int
}
