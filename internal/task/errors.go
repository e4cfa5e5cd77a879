package task

import "errors"

// Domain-specific errors for the task package.
var (
	ErrNameRequired = errors.New("task name is required")
	ErrEmptyQuery   = errors.New("search query is empty")
	ErrTaskNotFound = errors.New("no matching task")
	ErrItemNotFound = errors.New("no matching checklist item")
	ErrNoChanges    = errors.New("nothing to change")
)
