package usecase

import (
	"context"
	"strings"

	"alice-ticktick/internal/model"
	"alice-ticktick/internal/task"
	"alice-ticktick/pkg/nlp"
)

// searchLimit caps how many matches a voice answer can usefully carry.
const searchLimit = 5

func (uc *implUseCase) Search(ctx context.Context, sc model.Scope, input task.SearchInput) (task.SearchOutput, error) {
	query := strings.TrimSpace(input.Query)
	if query == "" {
		return task.SearchOutput{}, task.ErrEmptyQuery
	}

	tasks, err := uc.repo.ListTasks(ctx, sc.AccessToken)
	if err != nil {
		return task.SearchOutput{}, err
	}

	active := filterActive(tasks)
	matches := nlp.FindMatches(query, titlesOf(active), searchLimit)

	found := make([]model.Task, 0, len(matches))
	for _, m := range matches {
		found = append(found, active[m.Index])
	}

	return task.SearchOutput{Tasks: found}, nil
}
