package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	aliceDelivery "alice-ticktick/internal/task/delivery/alice"
	"alice-ticktick/internal/middleware"
	"alice-ticktick/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	mw           middleware.Middleware
	aliceHandler aliceDelivery.Handler

	// webhookRateLimit is per client IP per minute; zero disables it.
	webhookRateLimit int
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	Middleware       middleware.Middleware
	AliceHandler     aliceDelivery.Handler
	WebhookRateLimit int
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:                logger,
		gin:              gin.New(),
		port:             cfg.Port,
		mode:             cfg.Mode,
		environment:      cfg.Environment,
		mw:               cfg.Middleware,
		aliceHandler:     cfg.AliceHandler,
		webhookRateLimit: cfg.WebhookRateLimit,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}
	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv *HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	return nil
}
