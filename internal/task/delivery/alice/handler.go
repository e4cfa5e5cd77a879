package alice

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"alice-ticktick/internal/intent"
	"alice-ticktick/internal/model"
	"alice-ticktick/internal/session"
	"alice-ticktick/internal/task"
	"alice-ticktick/pkg/alice"
	"alice-ticktick/pkg/nlp"
	"alice-ticktick/pkg/ticktick"
)

// HandleWebhook is the Gin handler for Alice webhook requests. Alice
// treats any non-200 as a skill failure, so every outcome including
// internal errors answers 200 with a spoken text.
func (h *handler) HandleWebhook(c *gin.Context) {
	ctx := c.Request.Context()

	var req alice.WebhookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Errorf(ctx, "alice handler: failed to parse request: %v", err)
		c.JSON(http.StatusOK, alice.NewResponse(nil, textError))
		return
	}

	text := h.dispatch(ctx, &req)
	c.JSON(http.StatusOK, alice.NewResponse(&req, text))
}

func (h *handler) dispatch(ctx context.Context, req *alice.WebhookRequest) string {
	sc := h.scopeOf(req)

	if answer, done := h.resolvePendingDelete(ctx, sc, req); done {
		return answer
	}

	command := strings.TrimSpace(req.Request.Command)
	if req.Session.New && command == "" {
		return textGreeting
	}

	intents := req.Request.NLU.Intents
	if _, ok := intents[intent.Help]; ok {
		return textHelp
	}
	if len(intents) == 0 {
		if command == "" {
			return textGreeting
		}
		return textUnknown
	}

	// Everything below talks to TickTick on the user's behalf.
	if sc.AccessToken == "" {
		return textNeedAuth
	}

	switch {
	case has(intents, intent.CreateTask):
		return h.handleCreate(ctx, sc, req, intents[intent.CreateTask])
	case has(intents, intent.ListTasks):
		return h.handleList(ctx, sc, intents[intent.ListTasks])
	case has(intents, intent.OverdueTasks):
		return h.handleOverdue(ctx, sc)
	case has(intents, intent.CompleteTask):
		return h.handleComplete(ctx, sc, intents[intent.CompleteTask])
	case has(intents, intent.SearchTask):
		return h.handleSearch(ctx, sc, intents[intent.SearchTask])
	case has(intents, intent.EditTask):
		return h.handleEdit(ctx, sc, intents[intent.EditTask])
	case has(intents, intent.DeleteTask):
		return h.handleDelete(ctx, sc, intents[intent.DeleteTask])
	case has(intents, intent.AddSubtask):
		return h.handleAddSubtask(ctx, sc, intents[intent.AddSubtask])
	case has(intents, intent.ListSubtasks):
		return h.handleListSubtasks(ctx, sc, intents[intent.ListSubtasks])
	case has(intents, intent.AddChecklistItem):
		return h.handleAddChecklistItem(ctx, sc, intents[intent.AddChecklistItem])
	case has(intents, intent.ShowChecklist):
		return h.handleShowChecklist(ctx, sc, intents[intent.ShowChecklist])
	case has(intents, intent.CheckItem):
		return h.handleCheckItem(ctx, sc, intents[intent.CheckItem])
	case has(intents, intent.DeleteChecklistItem):
		return h.handleDeleteChecklistItem(ctx, sc, intents[intent.DeleteChecklistItem])
	case has(intents, intent.AddReminder):
		return h.handleAddReminder(ctx, sc, intents[intent.AddReminder])
	default:
		return textUnknown
	}
}

func has(intents map[string]alice.Intent, id string) bool {
	_, ok := intents[id]
	return ok
}

// scopeOf builds the per-request scope. The reference instant lives in
// the client's timezone so "завтра" means the user's tomorrow.
func (h *handler) scopeOf(req *alice.WebhookRequest) model.Scope {
	loc := h.defaultLoc
	if req.Meta.Timezone != "" {
		if l, err := time.LoadLocation(req.Meta.Timezone); err == nil {
			loc = l
		}
	}

	sc := model.Scope{
		SessionID: req.Session.SessionID,
		Now:       h.now().In(loc),
	}
	if req.Session.User != nil {
		sc.UserID = req.Session.User.UserID
		sc.AccessToken = req.Session.User.AccessToken
	}
	return sc
}

// resolvePendingDelete answers a parked delete confirmation. Any
// utterance other than yes/no drops the pending delete and lets the
// new command proceed.
func (h *handler) resolvePendingDelete(ctx context.Context, sc model.Scope, req *alice.WebhookRequest) (string, bool) {
	pending, ok := h.sessions.PendingDelete(sc.SessionID)
	if !ok {
		return "", false
	}

	intents := req.Request.NLU.Intents
	switch {
	case has(intents, intent.Confirm):
		h.sessions.Clear(sc.SessionID)
		if sc.AccessToken == "" {
			return textNeedAuth, true
		}
		err := h.uc.ConfirmDelete(ctx, sc, task.ConfirmDeleteInput{
			ProjectID: pending.ProjectID,
			TaskID:    pending.TaskID,
		})
		if err != nil {
			return h.errorText(ctx, err), true
		}
		return fmt.Sprintf("Удалила задачу «%s».", pending.Title), true
	case has(intents, intent.Reject):
		h.sessions.Clear(sc.SessionID)
		return textDeleteCancelled, true
	default:
		h.sessions.Clear(sc.SessionID)
		return "", false
	}
}

func (h *handler) handleCreate(ctx context.Context, sc model.Scope, req *alice.WebhookRequest, in alice.Intent) string {
	slots := intent.ExtractCreateTask(in)

	name := slots.TaskName
	var start, due *nlp.Moment

	// Entity extraction sees the whole utterance and beats slot filling
	// at ranges ("с семи до девяти") and date tokens glued to the name.
	ext := nlp.ExtractDates(req.Request.NLU.Tokens, req.Request.NLU.Entities, nlp.DefaultCommandTokens, sc.Now)
	switch {
	case ext.Start != nil:
		if ext.TaskName != "" {
			name = ext.TaskName
		}
		if ext.End != nil {
			start, due = ext.Start, ext.End
		} else {
			due = ext.Start
		}
	case slots.Date != nil:
		if m, err := nlp.Resolve(*slots.Date, sc.Now); err == nil {
			due = &m
		}
	}

	var priority *nlp.Priority
	if slots.Priority != "" {
		if p, ok := nlp.ParsePriority(slots.Priority); ok {
			priority = &p
		}
	}

	rrule := nlp.BuildRRule(slots.RecFreq, slots.RecInterval, slots.RecMonthday)
	var trigger string
	if slots.ReminderUnit != "" {
		trigger = nlp.BuildTrigger(slots.ReminderValue, slots.ReminderUnit)
	}

	out, err := h.uc.Create(ctx, sc, task.CreateInput{
		Name:       name,
		Start:      start,
		Due:        due,
		Priority:   priority,
		Recurrence: rrule,
		Reminder:   trigger,
	})
	if err != nil {
		return h.errorText(ctx, err)
	}

	return taskCreatedText(out.Task, createdSummary{
		Due:        due,
		Recurrence: rrule,
		Reminder:   trigger,
		Priority:   priority,
	}, sc.Now)
}

func (h *handler) handleList(ctx context.Context, sc model.Scope, in alice.Intent) string {
	slots := intent.ExtractListTasks(in)

	var day *nlp.Moment
	if slots.Date != nil {
		if m, err := nlp.Resolve(*slots.Date, sc.Now); err == nil {
			day = &m
		}
	}

	out, err := h.uc.List(ctx, sc, task.ListInput{Day: day})
	if err != nil {
		return h.errorText(ctx, err)
	}
	return taskListText(nlp.Moment{Time: out.Day}, out.Tasks, sc.Now)
}

func (h *handler) handleOverdue(ctx context.Context, sc model.Scope) string {
	out, err := h.uc.Overdue(ctx, sc)
	if err != nil {
		return h.errorText(ctx, err)
	}
	return overdueText(out.Tasks, sc.Now)
}

func (h *handler) handleComplete(ctx context.Context, sc model.Scope, in alice.Intent) string {
	slots := intent.ExtractCompleteTask(in)

	out, err := h.uc.Complete(ctx, sc, task.CompleteInput{Name: slots.TaskName})
	if err != nil {
		return h.errorText(ctx, err)
	}
	return fmt.Sprintf("Отметила задачу «%s» выполненной.", out.Task.Title)
}

func (h *handler) handleSearch(ctx context.Context, sc model.Scope, in alice.Intent) string {
	slots := intent.ExtractSearchTask(in)

	out, err := h.uc.Search(ctx, sc, task.SearchInput{Query: slots.Query})
	if err != nil {
		return h.errorText(ctx, err)
	}
	return searchResultText(out.Tasks, sc.Now)
}

func (h *handler) handleEdit(ctx context.Context, sc model.Scope, in alice.Intent) string {
	slots := intent.ExtractEditTask(in)

	input := task.EditInput{
		Name:       slots.TaskName,
		Recurrence: slots.RecurrenceChange(),
		Reminder:   slots.ReminderChange(),
	}
	if slots.Date != nil {
		if m, err := nlp.Resolve(*slots.Date, sc.Now); err == nil {
			input.Due = &m
		}
	}
	if slots.Priority != "" {
		if p, ok := nlp.ParsePriority(slots.Priority); ok {
			input.Priority = &p
		}
	}

	out, err := h.uc.Edit(ctx, sc, input)
	if err != nil {
		return h.errorText(ctx, err)
	}

	if input.Due != nil {
		return fmt.Sprintf("Перенесла задачу «%s» на %s.", out.Task.Title, formatDay(*input.Due, sc.Now))
	}
	return fmt.Sprintf("Изменила задачу «%s».", out.Task.Title)
}

func (h *handler) handleDelete(ctx context.Context, sc model.Scope, in alice.Intent) string {
	slots := intent.ExtractDeleteTask(in)

	out, err := h.uc.RequestDelete(ctx, sc, task.DeleteInput{Name: slots.TaskName})
	if err != nil {
		return h.errorText(ctx, err)
	}

	h.sessions.SetPendingDelete(sc.SessionID, session.PendingDelete{
		ProjectID: out.Task.ProjectID,
		TaskID:    out.Task.ID,
		Title:     out.Task.Title,
	})
	return fmt.Sprintf("Удалить задачу «%s»?", out.Task.Title)
}

func (h *handler) handleAddSubtask(ctx context.Context, sc model.Scope, in alice.Intent) string {
	slots := intent.ExtractAddSubtask(in)

	out, err := h.uc.AddSubtask(ctx, sc, task.AddSubtaskInput{
		ParentName: slots.ParentName,
		Name:       slots.SubtaskName,
	})
	if err != nil {
		return h.errorText(ctx, err)
	}
	return fmt.Sprintf("Добавила подзадачу «%s» к задаче «%s».", out.Subtask.Title, out.Parent.Title)
}

func (h *handler) handleListSubtasks(ctx context.Context, sc model.Scope, in alice.Intent) string {
	slots := intent.ExtractListSubtasks(in)

	out, err := h.uc.ListSubtasks(ctx, sc, task.ListSubtasksInput{ParentName: slots.TaskName})
	if err != nil {
		return h.errorText(ctx, err)
	}
	return subtaskListText(out.Parent, out.Subtasks, sc.Now)
}

func (h *handler) handleAddChecklistItem(ctx context.Context, sc model.Scope, in alice.Intent) string {
	slots := intent.ExtractChecklist(in)

	out, err := h.uc.AddChecklistItem(ctx, sc, task.AddChecklistItemInput{
		TaskName: slots.TaskName,
		ItemName: slots.ItemName,
	})
	if err != nil {
		return h.errorText(ctx, err)
	}
	return fmt.Sprintf("Добавила «%s» в список задачи «%s».", out.Item.Title, out.Task.Title)
}

func (h *handler) handleShowChecklist(ctx context.Context, sc model.Scope, in alice.Intent) string {
	slots := intent.ExtractChecklist(in)

	out, err := h.uc.ShowChecklist(ctx, sc, task.ShowChecklistInput{TaskName: slots.TaskName})
	if err != nil {
		return h.errorText(ctx, err)
	}
	return checklistText(out.Task, out.Items)
}

func (h *handler) handleCheckItem(ctx context.Context, sc model.Scope, in alice.Intent) string {
	slots := intent.ExtractChecklist(in)

	out, err := h.uc.CheckItem(ctx, sc, task.CheckItemInput{
		TaskName: slots.TaskName,
		ItemName: slots.ItemName,
	})
	if err != nil {
		return h.errorText(ctx, err)
	}
	return fmt.Sprintf("Отметила «%s» в списке задачи «%s».", out.Item.Title, out.Task.Title)
}

func (h *handler) handleDeleteChecklistItem(ctx context.Context, sc model.Scope, in alice.Intent) string {
	slots := intent.ExtractChecklist(in)

	out, err := h.uc.DeleteChecklistItem(ctx, sc, task.DeleteChecklistItemInput{
		TaskName: slots.TaskName,
		ItemName: slots.ItemName,
	})
	if err != nil {
		return h.errorText(ctx, err)
	}
	return fmt.Sprintf("Убрала «%s» из списка задачи «%s».", out.Item.Title, out.Task.Title)
}

func (h *handler) handleAddReminder(ctx context.Context, sc model.Scope, in alice.Intent) string {
	slots := intent.ExtractAddReminder(in)

	trigger := nlp.BuildTrigger(slots.Value, slots.Unit)
	if trigger == "" {
		return "Не поняла, за сколько напомнить. Скажите, например: «за полчаса»."
	}

	out, err := h.uc.AddReminder(ctx, sc, task.AddReminderInput{
		TaskName: slots.TaskName,
		Trigger:  trigger,
	})
	if err != nil {
		return h.errorText(ctx, err)
	}
	return fmt.Sprintf("Напомню о задаче «%s» %s.", out.Task.Title, nlp.FormatReminder(trigger))
}

// errorText maps domain and API errors to spoken answers. Unknown
// errors are logged and answered generically.
func (h *handler) errorText(ctx context.Context, err error) string {
	switch {
	case errors.Is(err, task.ErrNameRequired):
		return textNameRequired
	case errors.Is(err, task.ErrTaskNotFound):
		return textTaskNotFound
	case errors.Is(err, task.ErrItemNotFound):
		return textItemNotFound
	case errors.Is(err, task.ErrEmptyQuery):
		return "Скажите, какую задачу найти."
	case errors.Is(err, task.ErrNoChanges):
		return textNothingToChange
	case errors.Is(err, ticktick.ErrUnauthorized):
		return textNeedAuth
	default:
		h.l.Errorf(ctx, "alice handler: %v", err)
		return textError
	}
}
