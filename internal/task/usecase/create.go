package usecase

import (
	"context"
	"strings"

	"alice-ticktick/internal/model"
	"alice-ticktick/internal/task"
	"alice-ticktick/internal/task/repository"
)

func (uc *implUseCase) Create(ctx context.Context, sc model.Scope, input task.CreateInput) (task.CreateOutput, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return task.CreateOutput{}, task.ErrNameRequired
	}

	opt := repository.CreateTaskOptions{
		Title:      name,
		RepeatFlag: input.Recurrence,
	}
	if input.Due != nil {
		opt.DueDate = input.Due.APIFormat()
	}
	if input.Start != nil {
		opt.StartDate = input.Start.APIFormat()
	}
	if input.Priority != nil {
		opt.Priority = int(*input.Priority)
	}
	if input.Reminder != "" {
		opt.Reminders = []string{input.Reminder}
	}

	created, err := uc.repo.CreateTask(ctx, sc.AccessToken, opt)
	if err != nil {
		return task.CreateOutput{}, err
	}

	uc.l.Infof(ctx, "task usecase: created task %s for user %s", created.ID, sc.UserID)
	return task.CreateOutput{Task: created}, nil
}
