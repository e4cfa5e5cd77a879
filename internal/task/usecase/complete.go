package usecase

import (
	"context"

	"alice-ticktick/internal/model"
	"alice-ticktick/internal/task"
)

func (uc *implUseCase) Complete(ctx context.Context, sc model.Scope, input task.CompleteInput) (task.CompleteOutput, error) {
	t, err := uc.findTask(ctx, sc, input.Name)
	if err != nil {
		return task.CompleteOutput{}, err
	}

	if err := uc.repo.CompleteTask(ctx, sc.AccessToken, t.ProjectID, t.ID); err != nil {
		return task.CompleteOutput{}, err
	}

	uc.l.Infof(ctx, "task usecase: completed task %s for user %s", t.ID, sc.UserID)
	return task.CompleteOutput{Task: t}, nil
}
