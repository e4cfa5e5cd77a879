package usecase

import (
	"context"

	"alice-ticktick/internal/model"
	"alice-ticktick/internal/task"
	"alice-ticktick/internal/task/repository"
)

func (uc *implUseCase) Edit(ctx context.Context, sc model.Scope, input task.EditInput) (task.EditOutput, error) {
	t, err := uc.findTask(ctx, sc, input.Name)
	if err != nil {
		return task.EditOutput{}, err
	}

	opt := repository.UpdateTaskOptions{
		ProjectID: t.ProjectID,
		TaskID:    t.ID,
	}
	changed := false

	if input.Due != nil {
		due := input.Due.APIFormat()
		opt.DueDate = &due
		changed = true
	}
	if input.Priority != nil {
		p := int(*input.Priority)
		opt.Priority = &p
		changed = true
	}

	switch input.Recurrence.Op {
	case task.ChangeRemove:
		empty := ""
		opt.RepeatFlag = &empty
		changed = true
	case task.ChangeSet:
		rrule := input.Recurrence.Value
		opt.RepeatFlag = &rrule
		changed = true
	}

	switch input.Reminder.Op {
	case task.ChangeRemove:
		none := []string{}
		opt.Reminders = &none
		changed = true
	case task.ChangeSet:
		reminders := []string{input.Reminder.Value}
		opt.Reminders = &reminders
		changed = true
	}

	if !changed {
		return task.EditOutput{}, task.ErrNoChanges
	}

	updated, err := uc.repo.UpdateTask(ctx, sc.AccessToken, opt)
	if err != nil {
		return task.EditOutput{}, err
	}

	uc.l.Infof(ctx, "task usecase: edited task %s for user %s", t.ID, sc.UserID)
	return task.EditOutput{Task: updated}, nil
}
