package ticktick

import (
	"context"
	"sync"

	"alice-ticktick/internal/model"
	"alice-ticktick/internal/task/repository"
	api "alice-ticktick/pkg/ticktick"
)

func (r *implRepository) ListProjects(ctx context.Context, token string) ([]model.Project, error) {
	if cached, ok := r.cache.projects.Get(token); ok {
		return cached, nil
	}

	raw, err := r.client.GetProjects(ctx, token)
	if err != nil {
		r.l.Errorf(ctx, "ticktick repository: failed to list projects: %v", err)
		return nil, err
	}

	projects := make([]model.Project, 0, len(raw))
	for _, p := range raw {
		projects = append(projects, projectToModel(p))
	}

	r.cache.projects.Add(token, projects)
	return projects, nil
}

// ListTasks fans out over all projects concurrently; the voice dialog
// has a tight latency budget and project counts are small.
func (r *implRepository) ListTasks(ctx context.Context, token string) ([]model.Task, error) {
	if cached, ok := r.cache.tasks.Get(token); ok {
		return cached, nil
	}

	projects, err := r.ListProjects(ctx, token)
	if err != nil {
		return nil, err
	}

	var (
		mu       sync.Mutex
		wg       sync.WaitGroup
		tasks    []model.Task
		firstErr error
	)
	for _, p := range projects {
		wg.Add(1)
		go func(projectID string) {
			defer wg.Done()
			raw, err := r.client.GetProjectTasks(ctx, token, projectID)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				if firstErr == nil {
					firstErr = err
				}
				return
			}
			for _, t := range raw {
				tasks = append(tasks, taskToModel(t))
			}
		}(p.ID)
	}
	wg.Wait()

	if firstErr != nil {
		r.l.Errorf(ctx, "ticktick repository: failed to list tasks: %v", firstErr)
		return nil, firstErr
	}

	r.cache.tasks.Add(token, tasks)
	return tasks, nil
}

func (r *implRepository) GetTask(ctx context.Context, token, projectID, taskID string) (model.Task, error) {
	raw, err := r.client.GetTask(ctx, token, projectID, taskID)
	if err != nil {
		return model.Task{}, err
	}
	return taskToModel(*raw), nil
}

func (r *implRepository) CreateTask(ctx context.Context, token string, opt repository.CreateTaskOptions) (model.Task, error) {
	payload := api.TaskPayload{
		Title:     opt.Title,
		ProjectID: opt.ProjectID,
		ParentID:  opt.ParentID,
		StartDate: opt.StartDate,
		DueDate:   opt.DueDate,
	}
	if opt.Priority != 0 {
		payload.Priority = &opt.Priority
	}
	if opt.RepeatFlag != "" {
		payload.RepeatFlag = &opt.RepeatFlag
	}
	if len(opt.Reminders) > 0 {
		payload.Reminders = &opt.Reminders
	}

	raw, err := r.client.CreateTask(ctx, token, payload)
	if err != nil {
		r.l.Errorf(ctx, "ticktick repository: failed to create task: %v", err)
		return model.Task{}, err
	}

	r.cache.invalidate(token)
	return taskToModel(*raw), nil
}

func (r *implRepository) UpdateTask(ctx context.Context, token string, opt repository.UpdateTaskOptions) (model.Task, error) {
	payload := api.TaskPayload{
		ID:         opt.TaskID,
		ProjectID:  opt.ProjectID,
		Priority:   opt.Priority,
		RepeatFlag: opt.RepeatFlag,
		Reminders:  opt.Reminders,
	}
	if opt.Title != nil {
		payload.Title = *opt.Title
	}
	if opt.DueDate != nil {
		payload.DueDate = *opt.DueDate
	}
	if opt.Items != nil {
		items := make([]api.ChecklistItem, 0, len(*opt.Items))
		for _, it := range *opt.Items {
			items = append(items, api.ChecklistItem{
				ID:     it.ID,
				Title:  it.Title,
				Status: it.Status,
			})
		}
		payload.Items = items
	}

	raw, err := r.client.UpdateTask(ctx, token, payload)
	if err != nil {
		r.l.Errorf(ctx, "ticktick repository: failed to update task %s: %v", opt.TaskID, err)
		return model.Task{}, err
	}

	r.cache.invalidate(token)
	return taskToModel(*raw), nil
}

func (r *implRepository) CompleteTask(ctx context.Context, token, projectID, taskID string) error {
	if err := r.client.CompleteTask(ctx, token, projectID, taskID); err != nil {
		r.l.Errorf(ctx, "ticktick repository: failed to complete task %s: %v", taskID, err)
		return err
	}
	r.cache.invalidate(token)
	return nil
}

func (r *implRepository) DeleteTask(ctx context.Context, token, projectID, taskID string) error {
	if err := r.client.DeleteTask(ctx, token, projectID, taskID); err != nil {
		r.l.Errorf(ctx, "ticktick repository: failed to delete task %s: %v", taskID, err)
		return err
	}
	r.cache.invalidate(token)
	return nil
}
