package usecase

import (
	"context"

	"alice-ticktick/internal/model"
	"alice-ticktick/internal/task"
	"alice-ticktick/internal/task/repository"
)

func (uc *implUseCase) AddReminder(ctx context.Context, sc model.Scope, input task.AddReminderInput) (task.AddReminderOutput, error) {
	if input.Trigger == "" {
		return task.AddReminderOutput{}, task.ErrNoChanges
	}

	t, err := uc.findTask(ctx, sc, input.TaskName)
	if err != nil {
		return task.AddReminderOutput{}, err
	}

	reminders := t.Reminders
	for _, r := range reminders {
		if r == input.Trigger {
			// Already set; nothing to write.
			return task.AddReminderOutput{Task: t}, nil
		}
	}
	reminders = append(reminders, input.Trigger)

	updated, err := uc.repo.UpdateTask(ctx, sc.AccessToken, repository.UpdateTaskOptions{
		ProjectID: t.ProjectID,
		TaskID:    t.ID,
		Reminders: &reminders,
	})
	if err != nil {
		return task.AddReminderOutput{}, err
	}

	uc.l.Infof(ctx, "task usecase: added reminder to task %s", t.ID)
	return task.AddReminderOutput{Task: updated}, nil
}
