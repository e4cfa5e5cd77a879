package usecase

import (
	"context"
	"strings"

	"alice-ticktick/internal/model"
	"alice-ticktick/internal/task"
	"alice-ticktick/internal/task/repository"
)

func (uc *implUseCase) AddSubtask(ctx context.Context, sc model.Scope, input task.AddSubtaskInput) (task.AddSubtaskOutput, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return task.AddSubtaskOutput{}, task.ErrNameRequired
	}

	parent, err := uc.findTask(ctx, sc, input.ParentName)
	if err != nil {
		return task.AddSubtaskOutput{}, err
	}

	// A subtask must live in the parent's project or TickTick will not
	// link them.
	sub, err := uc.repo.CreateTask(ctx, sc.AccessToken, repository.CreateTaskOptions{
		Title:     name,
		ProjectID: parent.ProjectID,
		ParentID:  parent.ID,
	})
	if err != nil {
		return task.AddSubtaskOutput{}, err
	}

	uc.l.Infof(ctx, "task usecase: created subtask %s under %s", sub.ID, parent.ID)
	return task.AddSubtaskOutput{Parent: parent, Subtask: sub}, nil
}

func (uc *implUseCase) ListSubtasks(ctx context.Context, sc model.Scope, input task.ListSubtasksInput) (task.ListSubtasksOutput, error) {
	parent, err := uc.findTask(ctx, sc, input.ParentName)
	if err != nil {
		return task.ListSubtasksOutput{}, err
	}

	tasks, err := uc.repo.ListTasks(ctx, sc.AccessToken)
	if err != nil {
		return task.ListSubtasksOutput{}, err
	}

	children := make([]model.Task, 0)
	for _, t := range filterActive(tasks) {
		if t.ParentID == parent.ID {
			children = append(children, t)
		}
	}
	sortByDue(children)

	return task.ListSubtasksOutput{Parent: parent, Subtasks: children}, nil
}
