package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "adminconsole/api/swagger" // swagger docs
	"adminconsole/internal/config"
	"adminconsole/internal/export"
	"adminconsole/internal/handler"
	"adminconsole/internal/listing"
	"adminconsole/internal/metrics"
	"adminconsole/internal/middleware"
	"adminconsole/internal/session"
	"adminconsole/internal/websocket"
)

// @title           Admin Console API
// @version         1.0
// @description     Operator console over the users and roles API: searchable, sortable, paginated lists with selection, batch delete and export.
// @host            localhost:8081
// @BasePath        /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("Invalid configuration")
	}
	log := cfg.NewLogger()
	gin.SetMode(cfg.GinMode)

	// Metrics registry
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.New(reg)

	// Set up WebSocket Hub
	wsHub := websocket.NewHub(log)
	go wsHub.Run()

	// Per-operator workspaces (API client -> controllers -> services)
	registry := session.NewRegistry(session.Options{
		BaseURL:     cfg.API.BaseURL,
		Timeout:     cfg.API.Timeout,
		TTL:         cfg.Session.TTL,
		MaxSessions: cfg.Session.MaxSessions,
		DateLayout:  cfg.List.ExportDateLayout,
		List: listing.Options{
			PageSize:         cfg.List.PageSize,
			Scope:            cfg.Scope,
			BatchConcurrency: cfg.List.BatchConcurrency,
			CacheSize:        cfg.List.DeriveCacheSize,
			Encoders:         export.Encoders(export.Targets()),
			Metrics:          m,
		},
		Logger:    log,
		Publisher: wsHub,
		Gauge:     m,
	})
	auth := middleware.NewAuth(cfg.JWTSecret)

	// Set up Gin Router
	router := gin.New()
	router.Use(gin.Recovery(), middleware.RequestLogger(log), m.Middleware())

	// CORS configuration
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = cfg.CORSAllowedOrigins
	corsConfig.AllowCredentials = true
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization", "Accept", "X-Request-ID"}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.ExposeHeaders = []string{"Content-Disposition", "X-Request-ID"}
	router.Use(cors.New(corsConfig))

	// Swagger route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check and metrics
	handler.NewHealthHandler(registry, wsHub.Connections).RegisterRoutes(router)
	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg})))

	// WebSocket endpoint
	router.GET("/ws", func(c *gin.Context) {
		websocket.ServeWs(wsHub, c, auth)
	})

	// Console routes
	handler.RegisterConsoleRoutes(router.Group("/console", middleware.RequireOperator(auth)), registry, log)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.WithField("port", cfg.Port).Info("Server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Fatal("Server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.WithError(err).Error("Graceful shutdown failed")
	}
	wsHub.Stop()
}
