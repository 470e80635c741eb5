package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"codeberg.org/awibi/medtech-api/internal/config"
	"codeberg.org/awibi/medtech-api/internal/logger"
	"github.com/gin-gonic/gin"
)

func main() {
	// load configuration from environment
	cfg, err := config.LoadEnvironmentVariables()
	if err != nil {
		logger.Fatal("failed to load configuration", "error", err)
	}

	// .env may have changed ENVIRONMENT or LOG_LEVEL after the logger's init
	logger.SetDefault(logger.New(os.Stdout, cfg.Environment, cfg.LogLevel))

	// keep gin's debug route dump off stdout unless explicitly requested
	if os.Getenv(gin.EnvGinMode) == "" {
		gin.SetMode(gin.ReleaseMode)
	}

	srv := NewServer(cfg)

	startup := logger.NewStartup(os.Stdout, cfg.Environment)

	// bind before serving so a busy port fails fast with exit code 1
	ln, err := srv.Start(startup)
	if err != nil {
		logger.FatalErr(err, "failed to bind listener", "addr", cfg.Addr())
	}

	go func() {
		if err := srv.Serve(ln); err != nil {
			logger.FatalErr(err, "server stopped unexpectedly")
		}
	}()

	// wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Debug("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.ErrorErr(err, "server forced to shutdown")
	}

	logger.Debug("server stopped")
}
