// Package alice is the Yandex Dialogs delivery layer: it turns webhook
// requests into usecase calls and answers in Russian.
package alice

import (
	"time"

	"github.com/gin-gonic/gin"

	"alice-ticktick/internal/session"
	"alice-ticktick/internal/task"
	pkgLog "alice-ticktick/pkg/log"
)

// Handler is the interface for the Alice delivery handler.
type Handler interface {
	HandleWebhook(c *gin.Context)
}

type handler struct {
	l          pkgLog.Logger
	uc         task.UseCase
	sessions   *session.Store
	defaultLoc *time.Location
	now        func() time.Time
}

// New creates a new Alice delivery handler. timezone is the fallback
// location when the request carries no usable one.
func New(l pkgLog.Logger, uc task.UseCase, sessions *session.Store, timezone string) Handler {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		loc = time.UTC
	}
	return &handler{
		l:          l,
		uc:         uc,
		sessions:   sessions,
		defaultLoc: loc,
		now:        time.Now,
	}
}
