package usecase

import (
	"context"

	"alice-ticktick/internal/model"
	"alice-ticktick/internal/task/repository"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

// mockRepository records mutations and serves a fixed task list.
type mockRepository struct {
	projects []model.Project
	tasks    []model.Task
	err      error

	created   []repository.CreateTaskOptions
	updated   []repository.UpdateTaskOptions
	completed []string
	deleted   []string

	// createResult is returned from CreateTask when set.
	createResult *model.Task
	// updateResult is returned from UpdateTask when set.
	updateResult *model.Task
}

func (m *mockRepository) ListProjects(ctx context.Context, token string) ([]model.Project, error) {
	return m.projects, m.err
}

func (m *mockRepository) ListTasks(ctx context.Context, token string) ([]model.Task, error) {
	return m.tasks, m.err
}

func (m *mockRepository) GetTask(ctx context.Context, token, projectID, taskID string) (model.Task, error) {
	for _, t := range m.tasks {
		if t.ID == taskID {
			return t, nil
		}
	}
	return model.Task{}, m.err
}

func (m *mockRepository) CreateTask(ctx context.Context, token string, opt repository.CreateTaskOptions) (model.Task, error) {
	if m.err != nil {
		return model.Task{}, m.err
	}
	m.created = append(m.created, opt)
	if m.createResult != nil {
		return *m.createResult, nil
	}
	return model.Task{ID: "created", ProjectID: opt.ProjectID, ParentID: opt.ParentID, Title: opt.Title}, nil
}

func (m *mockRepository) UpdateTask(ctx context.Context, token string, opt repository.UpdateTaskOptions) (model.Task, error) {
	if m.err != nil {
		return model.Task{}, m.err
	}
	m.updated = append(m.updated, opt)
	if m.updateResult != nil {
		return *m.updateResult, nil
	}
	return model.Task{ID: opt.TaskID, ProjectID: opt.ProjectID}, nil
}

func (m *mockRepository) CompleteTask(ctx context.Context, token, projectID, taskID string) error {
	if m.err != nil {
		return m.err
	}
	m.completed = append(m.completed, taskID)
	return nil
}

func (m *mockRepository) DeleteTask(ctx context.Context, token, projectID, taskID string) error {
	if m.err != nil {
		return m.err
	}
	m.deleted = append(m.deleted, taskID)
	return nil
}

func newTestUseCase(repo *mockRepository) *implUseCase {
	uc := New(&mockLogger{}, repo)
	return uc.(*implUseCase)
}
