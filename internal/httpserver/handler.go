package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"
)

func (srv *HTTPServer) mapHandlers() error {
	srv.registerMiddlewares()
	srv.registerSystemRoutes()
	srv.registerDomainRoutes()
	return nil
}

func (srv *HTTPServer) registerMiddlewares() {
	srv.gin.Use(gin.Recovery())
	srv.gin.Use(srv.mw.RequestID())
}

func (srv *HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)
}

func (srv *HTTPServer) registerDomainRoutes() {
	ctx := context.Background()

	if srv.aliceHandler != nil {
		srv.gin.POST("/webhook/alice",
			srv.mw.RateLimit(srv.webhookRateLimit),
			srv.aliceHandler.HandleWebhook,
		)
		srv.l.Infof(ctx, "Alice webhook route registered at POST /webhook/alice")
	} else {
		srv.l.Warnf(ctx, "Alice handler not configured, skipping webhook route")
	}
}
