package usecase

import (
	"context"

	"alice-ticktick/internal/model"
	"alice-ticktick/internal/task"
)

func (uc *implUseCase) List(ctx context.Context, sc model.Scope, input task.ListInput) (task.ListOutput, error) {
	day := sc.Now
	if input.Day != nil {
		day = input.Day.Time
	}

	tasks, err := uc.repo.ListTasks(ctx, sc.AccessToken)
	if err != nil {
		return task.ListOutput{}, err
	}

	due := make([]model.Task, 0)
	for _, t := range filterActive(tasks) {
		if t.DueOn(day) {
			due = append(due, t)
		}
	}
	sortByDue(due)

	return task.ListOutput{Day: day, Tasks: due}, nil
}

func (uc *implUseCase) Overdue(ctx context.Context, sc model.Scope) (task.OverdueOutput, error) {
	tasks, err := uc.repo.ListTasks(ctx, sc.AccessToken)
	if err != nil {
		return task.OverdueOutput{}, err
	}

	overdue := make([]model.Task, 0)
	for _, t := range filterActive(tasks) {
		if t.OverdueAt(sc.Now) {
			overdue = append(overdue, t)
		}
	}
	sortByDue(overdue)

	return task.OverdueOutput{Tasks: overdue}, nil
}
