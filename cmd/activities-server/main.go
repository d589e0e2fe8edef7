// cmd/activities-server/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/anastasiia-melnyk-softserve/skills-getting-started-with-github-copilot/internal/api"
	"github.com/anastasiia-melnyk-softserve/skills-getting-started-with-github-copilot/internal/common/config"
	"github.com/anastasiia-melnyk-softserve/skills-getting-started-with-github-copilot/internal/common/logger"
	"github.com/anastasiia-melnyk-softserve/skills-getting-started-with-github-copilot/internal/common/observability"
	"github.com/anastasiia-melnyk-softserve/skills-getting-started-with-github-copilot/internal/registry"
	"github.com/anastasiia-melnyk-softserve/skills-getting-started-with-github-copilot/pkg/seed"
)

func main() {
	zapLog := logger.New("info", "console")

	cfg, err := config.Load()
	if err != nil {
		zapLog.Fatal("config load failed", zap.Error(err))
	}

	// Re-create the logger with the configured level and format.
	zapLog = logger.New(cfg.Logging.Level, cfg.Logging.Format)
	defer zapLog.Sync()
	log := logger.NewZapAdapter(zapLog)

	zapLog.Info("Starting activities server...",
		zap.String("name", cfg.App.Name),
		zap.String("environment", cfg.App.Environment),
	)

	obs := observability.New(cfg.App.Name)
	defer obs.Shutdown()

	// --- Activity Registry ---
	var reg *registry.Registry
	if cfg.Registry.SeedFile != "" {
		seedFile, err := seed.Load(cfg.Registry.SeedFile)
		if err != nil {
			zapLog.Fatal("seed file load failed", zap.Error(err))
		}
		reg = registry.NewFromSeed(seedFile, log)
		zapLog.Info("Registry seeded from file",
			zap.String("path", cfg.Registry.SeedFile),
			zap.Int("activities", len(seedFile.Activities)),
		)
	} else {
		reg = registry.New(log)
		zapLog.Info("Registry seeded with built-in activities")
	}

	// --- HTTP Server ---
	if cfg.App.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := api.NewRouter(cfg, reg, log, obs)

	srv := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      router,
		ReadTimeout:  config.GetDuration(cfg.Server.ReadTimeout),
		WriteTimeout: config.GetDuration(cfg.Server.WriteTimeout),
	}

	go func() {
		zapLog.Info("HTTP server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zapLog.Fatal("HTTP server failed", zap.Error(err))
		}
	}()

	// --- Graceful Shutdown ---
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	zapLog.Info("Shutdown signal received, stopping server...")
	shutdownCtx, cancel := context.WithTimeout(
		context.Background(), config.GetDuration(cfg.Server.ShutdownTimeout))
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		zapLog.Error("Server forced to shutdown", zap.Error(err))
	}

	zapLog.Info("Activities server stopped gracefully")
}
