package repository

import (
	"context"

	"alice-ticktick/internal/model"
)

// TickTickRepository is the interface for TickTick data access. The
// token identifies the linked account and keys the read cache.
type TickTickRepository interface {
	ListProjects(ctx context.Context, token string) ([]model.Project, error)

	// ListTasks returns all tasks across all of the user's projects.
	ListTasks(ctx context.Context, token string) ([]model.Task, error)

	GetTask(ctx context.Context, token, projectID, taskID string) (model.Task, error)
	CreateTask(ctx context.Context, token string, opt CreateTaskOptions) (model.Task, error)
	UpdateTask(ctx context.Context, token string, opt UpdateTaskOptions) (model.Task, error)
	CompleteTask(ctx context.Context, token, projectID, taskID string) error
	DeleteTask(ctx context.Context, token, projectID, taskID string) error
}
