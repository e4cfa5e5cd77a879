package task

import (
	"context"

	"alice-ticktick/internal/model"
)

// UseCase defines the business logic interface for the task domain.
// Every call carries the per-request Scope: the linked account's
// access token and the reference instant in the user's timezone.
type UseCase interface {
	// Create adds a task with the resolved dates, priority, recurrence
	// and reminder.
	Create(ctx context.Context, sc model.Scope, input CreateInput) (CreateOutput, error)

	// List returns active tasks due on the requested day.
	List(ctx context.Context, sc model.Scope, input ListInput) (ListOutput, error)

	// Overdue returns active tasks whose due day has passed.
	Overdue(ctx context.Context, sc model.Scope) (OverdueOutput, error)

	// Complete marks the best-matching active task as done.
	Complete(ctx context.Context, sc model.Scope, input CompleteInput) (CompleteOutput, error)

	// Search returns active tasks fuzzily matching the query, best first.
	Search(ctx context.Context, sc model.Scope, input SearchInput) (SearchOutput, error)

	// Edit applies date, priority, recurrence and reminder changes to
	// the best-matching task.
	Edit(ctx context.Context, sc model.Scope, input EditInput) (EditOutput, error)

	// RequestDelete finds the task to delete. The delivery layer parks
	// the result until the user confirms.
	RequestDelete(ctx context.Context, sc model.Scope, input DeleteInput) (DeleteOutput, error)

	// ConfirmDelete deletes a previously confirmed task.
	ConfirmDelete(ctx context.Context, sc model.Scope, input ConfirmDeleteInput) error

	// AddSubtask creates a child task under the best-matching parent.
	AddSubtask(ctx context.Context, sc model.Scope, input AddSubtaskInput) (AddSubtaskOutput, error)

	// ListSubtasks returns the children of the best-matching parent.
	ListSubtasks(ctx context.Context, sc model.Scope, input ListSubtasksInput) (ListSubtasksOutput, error)

	// AddChecklistItem appends an item to the task's checklist.
	AddChecklistItem(ctx context.Context, sc model.Scope, input AddChecklistItemInput) (AddChecklistItemOutput, error)

	// ShowChecklist returns the task's checklist items.
	ShowChecklist(ctx context.Context, sc model.Scope, input ShowChecklistInput) (ShowChecklistOutput, error)

	// CheckItem marks the best-matching checklist item as done.
	CheckItem(ctx context.Context, sc model.Scope, input CheckItemInput) (CheckItemOutput, error)

	// DeleteChecklistItem removes the best-matching checklist item.
	DeleteChecklistItem(ctx context.Context, sc model.Scope, input DeleteChecklistItemInput) (DeleteChecklistItemOutput, error)

	// AddReminder attaches a reminder trigger to the best-matching task.
	AddReminder(ctx context.Context, sc model.Scope, input AddReminderInput) (AddReminderOutput, error)
}
