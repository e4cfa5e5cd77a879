// Package ticktick implements the task repository on the TickTick
// Open API, with a short-lived read cache in front of it.
package ticktick

import (
	"time"

	"alice-ticktick/internal/model"
	"alice-ticktick/internal/task/repository"
	pkgLog "alice-ticktick/pkg/log"
	api "alice-ticktick/pkg/ticktick"
)

type implRepository struct {
	client *api.Client
	cache  *cache
	l      pkgLog.Logger
}

// New creates a new TickTick repository. cacheTTL bounds how stale a
// read may be; mutations invalidate the affected user's cache.
func New(client *api.Client, cacheTTL time.Duration, l pkgLog.Logger) repository.TickTickRepository {
	return &implRepository{
		client: client,
		cache:  newCache(cacheTTL),
		l:      l,
	}
}

// wireTimeLayout is the timestamp format TickTick uses in task bodies.
const wireTimeLayout = "2006-01-02T15:04:05.000-0700"

func parseWireTime(s string) *time.Time {
	if s == "" {
		return nil
	}
	for _, layout := range []string{wireTimeLayout, time.RFC3339} {
		if t, err := time.Parse(layout, s); err == nil {
			return &t
		}
	}
	return nil
}

func taskToModel(t api.Task) model.Task {
	items := make([]model.ChecklistItem, 0, len(t.Items))
	for _, it := range t.Items {
		items = append(items, model.ChecklistItem{
			ID:     it.ID,
			Title:  it.Title,
			Status: it.Status,
		})
	}
	return model.Task{
		ID:         t.ID,
		ProjectID:  t.ProjectID,
		ParentID:   t.ParentID,
		Title:      t.Title,
		Content:    t.Content,
		Priority:   t.Priority,
		Status:     t.Status,
		DueDate:    parseWireTime(t.DueDate),
		StartDate:  parseWireTime(t.StartDate),
		RepeatFlag: t.RepeatFlag,
		Reminders:  t.Reminders,
		Items:      items,
	}
}

func projectToModel(p api.Project) model.Project {
	return model.Project{ID: p.ID, Name: p.Name}
}
