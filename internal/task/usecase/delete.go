package usecase

import (
	"context"

	"alice-ticktick/internal/model"
	"alice-ticktick/internal/task"
)

// RequestDelete only locates the task. Deletion is irreversible, so
// the dialog asks for confirmation before ConfirmDelete runs.
func (uc *implUseCase) RequestDelete(ctx context.Context, sc model.Scope, input task.DeleteInput) (task.DeleteOutput, error) {
	t, err := uc.findTask(ctx, sc, input.Name)
	if err != nil {
		return task.DeleteOutput{}, err
	}
	return task.DeleteOutput{Task: t}, nil
}

func (uc *implUseCase) ConfirmDelete(ctx context.Context, sc model.Scope, input task.ConfirmDeleteInput) error {
	if err := uc.repo.DeleteTask(ctx, sc.AccessToken, input.ProjectID, input.TaskID); err != nil {
		return err
	}
	uc.l.Infof(ctx, "task usecase: deleted task %s for user %s", input.TaskID, sc.UserID)
	return nil
}
