package task

import (
	"time"

	"alice-ticktick/internal/model"
	"alice-ticktick/pkg/nlp"
)

// ChangeOp distinguishes "leave as is" from "remove" from "set" when
// editing an optional task attribute such as recurrence or reminder.
type ChangeOp int

const (
	ChangeKeep ChangeOp = iota
	ChangeRemove
	ChangeSet
)

// Change carries an edit to an optional task attribute. Value is only
// meaningful when Op is ChangeSet.
type Change struct {
	Op    ChangeOp
	Value string
}

func Keep() Change        { return Change{Op: ChangeKeep} }
func Remove() Change      { return Change{Op: ChangeRemove} }
func Set(v string) Change { return Change{Op: ChangeSet, Value: v} }

type CreateInput struct {
	Name     string
	Start    *nlp.Moment
	Due      *nlp.Moment
	Priority *nlp.Priority
	// Recurrence is an RRULE string, empty for none.
	Recurrence string
	// Reminder is an iCal TRIGGER string, empty for none.
	Reminder string
}

type CreateOutput struct {
	Task model.Task
}

type ListInput struct {
	// Day selects the calendar day; nil means today.
	Day *nlp.Moment
}

type ListOutput struct {
	Day   time.Time
	Tasks []model.Task
}

type OverdueOutput struct {
	Tasks []model.Task
}

type CompleteInput struct {
	Name string
}

type CompleteOutput struct {
	Task model.Task
}

type SearchInput struct {
	Query string
}

type SearchOutput struct {
	Tasks []model.Task
}

type EditInput struct {
	Name       string
	Due        *nlp.Moment
	Priority   *nlp.Priority
	Recurrence Change
	Reminder   Change
}

type EditOutput struct {
	Task model.Task
}

type DeleteInput struct {
	Name string
}

// DeleteOutput is the candidate task found for deletion. The actual
// delete happens in ConfirmDelete after the user says yes.
type DeleteOutput struct {
	Task model.Task
}

type ConfirmDeleteInput struct {
	ProjectID string
	TaskID    string
}

type AddSubtaskInput struct {
	ParentName string
	Name       string
}

type AddSubtaskOutput struct {
	Parent  model.Task
	Subtask model.Task
}

type ListSubtasksInput struct {
	ParentName string
}

type ListSubtasksOutput struct {
	Parent   model.Task
	Subtasks []model.Task
}

type AddChecklistItemInput struct {
	TaskName string
	ItemName string
}

type AddChecklistItemOutput struct {
	Task model.Task
	Item model.ChecklistItem
}

type ShowChecklistInput struct {
	TaskName string
}

type ShowChecklistOutput struct {
	Task  model.Task
	Items []model.ChecklistItem
}

type CheckItemInput struct {
	TaskName string
	ItemName string
}

type CheckItemOutput struct {
	Task model.Task
	Item model.ChecklistItem
}

type DeleteChecklistItemInput struct {
	TaskName string
	ItemName string
}

type DeleteChecklistItemOutput struct {
	Task model.Task
	Item model.ChecklistItem
}

type AddReminderInput struct {
	TaskName string
	// Trigger is an iCal TRIGGER string.
	Trigger string
}

type AddReminderOutput struct {
	Task model.Task
}
