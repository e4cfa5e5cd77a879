package usecase

import (
	"context"
	"strings"

	"alice-ticktick/internal/model"
	"alice-ticktick/internal/task"
	"alice-ticktick/internal/task/repository"
	api "alice-ticktick/pkg/ticktick"
)

// Checklist mutations rewrite the whole items list: the API has no
// per-item endpoint.

func (uc *implUseCase) AddChecklistItem(ctx context.Context, sc model.Scope, input task.AddChecklistItemInput) (task.AddChecklistItemOutput, error) {
	name := strings.TrimSpace(input.ItemName)
	if name == "" {
		return task.AddChecklistItemOutput{}, task.ErrNameRequired
	}

	t, err := uc.findTask(ctx, sc, input.TaskName)
	if err != nil {
		return task.AddChecklistItemOutput{}, err
	}

	items := itemOptions(t.Items)
	items = append(items, repository.ItemOption{Title: name, Status: api.ItemStatusActive})

	updated, err := uc.updateItems(ctx, sc, t, items)
	if err != nil {
		return task.AddChecklistItemOutput{}, err
	}

	item := model.ChecklistItem{Title: name}
	for _, it := range updated.Items {
		if it.Title == name {
			item = it
		}
	}
	return task.AddChecklistItemOutput{Task: updated, Item: item}, nil
}

func (uc *implUseCase) ShowChecklist(ctx context.Context, sc model.Scope, input task.ShowChecklistInput) (task.ShowChecklistOutput, error) {
	t, err := uc.findTask(ctx, sc, input.TaskName)
	if err != nil {
		return task.ShowChecklistOutput{}, err
	}
	return task.ShowChecklistOutput{Task: t, Items: t.Items}, nil
}

func (uc *implUseCase) CheckItem(ctx context.Context, sc model.Scope, input task.CheckItemInput) (task.CheckItemOutput, error) {
	t, err := uc.findTask(ctx, sc, input.TaskName)
	if err != nil {
		return task.CheckItemOutput{}, err
	}

	idx, err := uc.findItem(t, input.ItemName)
	if err != nil {
		return task.CheckItemOutput{}, err
	}

	items := itemOptions(t.Items)
	items[idx].Status = api.ItemStatusCompleted

	updated, err := uc.updateItems(ctx, sc, t, items)
	if err != nil {
		return task.CheckItemOutput{}, err
	}

	checked := t.Items[idx]
	checked.Status = api.ItemStatusCompleted
	return task.CheckItemOutput{Task: updated, Item: checked}, nil
}

func (uc *implUseCase) DeleteChecklistItem(ctx context.Context, sc model.Scope, input task.DeleteChecklistItemInput) (task.DeleteChecklistItemOutput, error) {
	t, err := uc.findTask(ctx, sc, input.TaskName)
	if err != nil {
		return task.DeleteChecklistItemOutput{}, err
	}

	idx, err := uc.findItem(t, input.ItemName)
	if err != nil {
		return task.DeleteChecklistItemOutput{}, err
	}

	items := itemOptions(t.Items)
	items = append(items[:idx], items[idx+1:]...)

	updated, err := uc.updateItems(ctx, sc, t, items)
	if err != nil {
		return task.DeleteChecklistItemOutput{}, err
	}

	return task.DeleteChecklistItemOutput{Task: updated, Item: t.Items[idx]}, nil
}

func (uc *implUseCase) updateItems(ctx context.Context, sc model.Scope, t model.Task, items []repository.ItemOption) (model.Task, error) {
	updated, err := uc.repo.UpdateTask(ctx, sc.AccessToken, repository.UpdateTaskOptions{
		ProjectID: t.ProjectID,
		TaskID:    t.ID,
		Items:     &items,
	})
	if err != nil {
		return model.Task{}, err
	}
	uc.l.Infof(ctx, "task usecase: updated checklist of task %s", t.ID)
	return updated, nil
}

func itemOptions(items []model.ChecklistItem) []repository.ItemOption {
	opts := make([]repository.ItemOption, 0, len(items))
	for _, it := range items {
		opts = append(opts, repository.ItemOption{ID: it.ID, Title: it.Title, Status: it.Status})
	}
	return opts
}
