// Package intent decodes Alice intent slots into typed inputs for the
// task usecase. Slot values arrive as raw JSON and are unmarshalled
// exactly once here, at the boundary.
package intent

import (
	"encoding/json"

	"alice-ticktick/internal/task"
	"alice-ticktick/pkg/alice"
	"alice-ticktick/pkg/nlp"
)

// Intent identifiers as declared in the skill's grammar.
const (
	CreateTask          = "create_task"
	ListTasks           = "list_tasks"
	OverdueTasks        = "overdue_tasks"
	CompleteTask        = "complete_task"
	SearchTask          = "search_task"
	EditTask            = "edit_task"
	DeleteTask          = "delete_task"
	AddSubtask          = "add_subtask"
	ListSubtasks        = "list_subtasks"
	AddChecklistItem    = "add_checklist_item"
	ShowChecklist       = "show_checklist"
	CheckItem           = "check_item"
	DeleteChecklistItem = "delete_checklist_item"
	AddReminder         = "add_reminder"
	Help                = "help"
)

// Built-in Yandex intents used for the delete confirmation dialog.
const (
	Confirm = "YANDEX.CONFIRM"
	Reject  = "YANDEX.REJECT"
)

type CreateTaskSlots struct {
	TaskName      string
	Date          *nlp.DateSpec
	Priority      string
	RecFreq       string
	RecInterval   int
	RecMonthday   int
	ReminderValue *int
	ReminderUnit  string
}

type ListTasksSlots struct {
	Date *nlp.DateSpec
}

type CompleteTaskSlots struct {
	TaskName string
}

type SearchTaskSlots struct {
	Query string
}

type EditTaskSlots struct {
	TaskName      string
	Date          *nlp.DateSpec
	Priority      string
	RecFreq       string
	RecInterval   int
	RecMonthday   int
	ReminderValue *int
	ReminderUnit  string
	// Remove names the attribute to clear: "повторение" or "напоминание".
	Remove string
}

type DeleteTaskSlots struct {
	TaskName string
}

type AddSubtaskSlots struct {
	ParentName  string
	SubtaskName string
}

type ListSubtasksSlots struct {
	TaskName string
}

type ChecklistSlots struct {
	TaskName string
	ItemName string
}

type AddReminderSlots struct {
	TaskName string
	Value    *int
	Unit     string
}

func ExtractCreateTask(in alice.Intent) CreateTaskSlots {
	return CreateTaskSlots{
		TaskName:      stringSlot(in, "task_name"),
		Date:          dateSlot(in, "date"),
		Priority:      stringSlot(in, "priority"),
		RecFreq:       stringSlot(in, "rec_freq"),
		RecInterval:   intSlotOr(in, "rec_interval", 0),
		RecMonthday:   intSlotOr(in, "rec_monthday", 0),
		ReminderValue: intSlot(in, "reminder_value"),
		ReminderUnit:  stringSlot(in, "reminder_unit"),
	}
}

func ExtractListTasks(in alice.Intent) ListTasksSlots {
	return ListTasksSlots{Date: dateSlot(in, "date")}
}

func ExtractCompleteTask(in alice.Intent) CompleteTaskSlots {
	return CompleteTaskSlots{TaskName: stringSlot(in, "task_name")}
}

func ExtractSearchTask(in alice.Intent) SearchTaskSlots {
	return SearchTaskSlots{Query: stringSlot(in, "query")}
}

func ExtractEditTask(in alice.Intent) EditTaskSlots {
	return EditTaskSlots{
		TaskName:      stringSlot(in, "task_name"),
		Date:          dateSlot(in, "date"),
		Priority:      stringSlot(in, "priority"),
		RecFreq:       stringSlot(in, "rec_freq"),
		RecInterval:   intSlotOr(in, "rec_interval", 0),
		RecMonthday:   intSlotOr(in, "rec_monthday", 0),
		ReminderValue: intSlot(in, "reminder_value"),
		ReminderUnit:  stringSlot(in, "reminder_unit"),
		Remove:        stringSlot(in, "remove"),
	}
}

func ExtractDeleteTask(in alice.Intent) DeleteTaskSlots {
	return DeleteTaskSlots{TaskName: stringSlot(in, "task_name")}
}

func ExtractAddSubtask(in alice.Intent) AddSubtaskSlots {
	return AddSubtaskSlots{
		ParentName:  stringSlot(in, "parent_name"),
		SubtaskName: stringSlot(in, "subtask_name"),
	}
}

func ExtractListSubtasks(in alice.Intent) ListSubtasksSlots {
	return ListSubtasksSlots{TaskName: stringSlot(in, "task_name")}
}

func ExtractChecklist(in alice.Intent) ChecklistSlots {
	return ChecklistSlots{
		TaskName: stringSlot(in, "task_name"),
		ItemName: stringSlot(in, "item_name"),
	}
}

func ExtractAddReminder(in alice.Intent) AddReminderSlots {
	return AddReminderSlots{
		TaskName: stringSlot(in, "task_name"),
		Value:    intSlot(in, "value"),
		Unit:     stringSlot(in, "unit"),
	}
}

// RecurrenceChange folds the recurrence slots of an edit into a
// three-state change for the usecase.
func (s EditTaskSlots) RecurrenceChange() task.Change {
	if s.Remove == "повторение" {
		return task.Remove()
	}
	if s.RecFreq == "" && s.RecMonthday == 0 {
		return task.Keep()
	}
	rrule := nlp.BuildRRule(s.RecFreq, s.RecInterval, s.RecMonthday)
	if rrule == "" {
		return task.Keep()
	}
	return task.Set(rrule)
}

// ReminderChange folds the reminder slots of an edit into a
// three-state change for the usecase.
func (s EditTaskSlots) ReminderChange() task.Change {
	if s.Remove == "напоминание" {
		return task.Remove()
	}
	if s.ReminderUnit == "" {
		return task.Keep()
	}
	trigger := nlp.BuildTrigger(s.ReminderValue, s.ReminderUnit)
	if trigger == "" {
		return task.Keep()
	}
	return task.Set(trigger)
}

func stringSlot(in alice.Intent, name string) string {
	slot, ok := in.Slots[name]
	if !ok || len(slot.Value) == 0 {
		return ""
	}
	var s string
	if err := json.Unmarshal(slot.Value, &s); err == nil {
		return s
	}
	return ""
}

func intSlot(in alice.Intent, name string) *int {
	slot, ok := in.Slots[name]
	if !ok || len(slot.Value) == 0 {
		return nil
	}
	var n int
	if err := json.Unmarshal(slot.Value, &n); err == nil {
		return &n
	}
	// Number slots sometimes arrive as floats.
	var f float64
	if err := json.Unmarshal(slot.Value, &f); err == nil {
		n = int(f)
		return &n
	}
	return nil
}

func intSlotOr(in alice.Intent, name string, def int) int {
	if p := intSlot(in, name); p != nil {
		return *p
	}
	return def
}

func dateSlot(in alice.Intent, name string) *nlp.DateSpec {
	slot, ok := in.Slots[name]
	if !ok || len(slot.Value) == 0 {
		return nil
	}
	var spec nlp.DateSpec
	if err := json.Unmarshal(slot.Value, &spec); err != nil {
		return nil
	}
	if spec.Empty() {
		return nil
	}
	return &spec
}
