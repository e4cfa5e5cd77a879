package usecase

import (
	"alice-ticktick/internal/task"
	"alice-ticktick/internal/task/repository"
	pkgLog "alice-ticktick/pkg/log"
	"alice-ticktick/pkg/nlp"
)

type implUseCase struct {
	l              pkgLog.Logger
	repo           repository.TickTickRepository
	matchThreshold int
}

// New creates a new task UseCase instance.
func New(l pkgLog.Logger, repo repository.TickTickRepository) task.UseCase {
	return &implUseCase{
		l:              l,
		repo:           repo,
		matchThreshold: nlp.DefaultMatchThreshold,
	}
}
