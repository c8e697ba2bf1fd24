package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yanqian/comunidad/internal/domain/auth"
	"github.com/yanqian/comunidad/internal/infra/config"
	"github.com/yanqian/comunidad/pkg/metrics"
)

// NewRouter wires up the HTTP handlers and returns a configured server.
func NewRouter(cfg *config.Config, handler *Handler, authSvc auth.Service, logger *slog.Logger) *http.Server {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()
	router.Use(
		gin.Recovery(),
		requestLogger(logger),
		corsMiddleware(cfg.HTTP.AllowedOrigins),
		errorHandlingMiddleware(logger),
		rateLimitMiddleware(cfg.HTTP.RateLimit, logger),
	)

	router.GET("/healthz", handler.Health)
	if cfg.Metrics.Enabled {
		router.GET(cfg.Metrics.Path, gin.WrapH(metrics.Handler()))
	}

	api := router.Group("/api/v1")
	{
		api.GET("/readings", handler.ReadingSchedule)
		api.GET("/readings/today", handler.TodayReading)
		api.GET("/readings/:date", handler.ReadingForDate)

		api.GET("/scripture", handler.Passage)
		api.GET("/scripture/link", handler.PassageLink)

		api.GET("/activities", handler.Activities)
		api.GET("/activities/marked-dates", handler.MarkedDates)
		api.GET("/celebrations", handler.Celebrations)
		api.GET("/community", handler.Community)

		api.GET("/digests", handler.LatestDigests)
	}

	admin := api.Group("/admin")
	admin.Use(authMiddleware(authSvc))
	{
		admin.POST("/digests/run", handler.RunDigests)
		admin.POST("/feeds/refresh", handler.RefreshFeeds)
	}

	return &http.Server{
		Addr:           cfg.HTTP.Address,
		Handler:        router,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		MaxHeaderBytes: 1 << 20,
	}
}
