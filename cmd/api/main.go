package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"alice-ticktick/config"
	"alice-ticktick/internal/httpserver"
	"alice-ticktick/internal/middleware"
	"alice-ticktick/internal/session"
	aliceDelivery "alice-ticktick/internal/task/delivery/alice"
	tickRepo "alice-ticktick/internal/task/repository/ticktick"
	"alice-ticktick/internal/task/usecase"
	"alice-ticktick/pkg/log"
	"alice-ticktick/pkg/ticktick"
)

func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Alice TickTick skill...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Task domain
	tickClient := ticktick.NewClient(cfg.TickTick.BaseURL, cfg.TickTick.Timeout)
	taskRepo := tickRepo.New(tickClient, cfg.Cache.TTL, logger)
	taskUC := usecase.New(logger, taskRepo)

	sessions := session.NewStore(session.DefaultTTL)
	aliceHandler := aliceDelivery.New(logger, taskUC, sessions, cfg.NLP.Timezone)

	// 4. HTTP server
	mw := middleware.New(logger)
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:           logger,
		Port:             cfg.HTTPServer.Port,
		Mode:             cfg.HTTPServer.Mode,
		Environment:      cfg.Environment.Name,
		Middleware:       mw,
		AliceHandler:     aliceHandler,
		WebhookRateLimit: cfg.Webhook.RateLimitPerMin,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// In development an ngrok tunnel exposes the webhook; log the public
	// URL to paste into the Yandex Dialogs console.
	if cfg.Environment.Name != "production" {
		if publicURL, ngrokErr := detectNgrokURL(ctx, "http://ngrok:4040"); ngrokErr == nil {
			logger.Infof(ctx, "Webhook URL for Yandex Dialogs: %s/webhook/alice", publicURL)
		}
	}

	// 5. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
