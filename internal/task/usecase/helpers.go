package usecase

import (
	"context"
	"sort"
	"strings"

	"alice-ticktick/internal/model"
	"alice-ticktick/internal/task"
	"alice-ticktick/pkg/nlp"
)

// findTask fuzzy-resolves a spoken name against the user's active
// tasks. Matching runs over titles; the match index maps back to the
// task because titles are not unique.
func (uc *implUseCase) findTask(ctx context.Context, sc model.Scope, name string) (model.Task, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return model.Task{}, task.ErrNameRequired
	}

	tasks, err := uc.repo.ListTasks(ctx, sc.AccessToken)
	if err != nil {
		return model.Task{}, err
	}

	active := filterActive(tasks)
	match, ok := nlp.FindBestMatchThreshold(name, titlesOf(active), uc.matchThreshold)
	if !ok {
		uc.l.Debugf(ctx, "task usecase: no match for %q among %d tasks", name, len(active))
		return model.Task{}, task.ErrTaskNotFound
	}

	return active[match.Index], nil
}

// findItem fuzzy-resolves a spoken name against a task's checklist.
// Returns the item's position in t.Items.
func (uc *implUseCase) findItem(t model.Task, name string) (int, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return 0, task.ErrNameRequired
	}

	titles := make([]string, 0, len(t.Items))
	for _, it := range t.Items {
		titles = append(titles, it.Title)
	}

	match, ok := nlp.FindBestMatchThreshold(name, titles, uc.matchThreshold)
	if !ok {
		return 0, task.ErrItemNotFound
	}
	return match.Index, nil
}

func filterActive(tasks []model.Task) []model.Task {
	active := make([]model.Task, 0, len(tasks))
	for _, t := range tasks {
		if t.Active() {
			active = append(active, t)
		}
	}
	return active
}

func titlesOf(tasks []model.Task) []string {
	titles := make([]string, 0, len(tasks))
	for _, t := range tasks {
		titles = append(titles, t.Title)
	}
	return titles
}

// sortByDue orders tasks by due date ascending, undated last, ties by
// title so voice output is stable.
func sortByDue(tasks []model.Task) {
	sort.SliceStable(tasks, func(i, j int) bool {
		a, b := tasks[i].DueDate, tasks[j].DueDate
		switch {
		case a == nil && b == nil:
			return tasks[i].Title < tasks[j].Title
		case a == nil:
			return false
		case b == nil:
			return true
		case a.Equal(*b):
			return tasks[i].Title < tasks[j].Title
		default:
			return a.Before(*b)
		}
	})
}
