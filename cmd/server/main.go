package main

// @title           Shelfshare Books API
// @version         1.0
// @description     API for managing ISBN-keyed books in Shelfshare.

// @contact.name   Sina Niyavarzi
// @contact.email  sinaniya@gmail.com

// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT

// @host      localhost:8080
// @BasePath  /

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/snnyvrz/go-book-crud-gin/internal/config"
	"github.com/snnyvrz/go-book-crud-gin/internal/db"
)

const appVersion = "0.2.0"

func main() {
	startTime := time.Now()

	cfg := config.Load()

	logger := newLogger(cfg.LogLevel)
	slog.SetDefault(logger)

	gin.SetMode(cfg.GinMode)

	database, err := db.ConnectWithRetry(cfg)
	if err != nil {
		logger.Error("database unavailable", "error", err)
		os.Exit(1)
	}

	if err := db.Migrate(database); err != nil {
		logger.Error("migration failed", "error", err)
		_ = db.Close(database)
		os.Exit(1)
	}

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           newRouter(database, logger, startTime),
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("starting server", "addr", srv.Addr, "driver", cfg.DBDriver)
		serveErr <- srv.ListenAndServe()
	}()

	exitCode := 0
	select {
	case err := <-serveErr:
		if !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", "error", err)
			exitCode = 1
		}
	case <-ctx.Done():
		logger.Info("shutting down", "timeout", cfg.ShutdownTimeout)

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("graceful shutdown failed", "error", err)
			exitCode = 1
		}
		cancel()
	}
	stop()

	if err := db.Close(database); err != nil {
		logger.Error("closing database failed", "error", err)
		exitCode = 1
	}

	os.Exit(exitCode)
}

func newLogger(level string) *slog.Logger {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = slog.LevelInfo
	}
	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: lvl}))
}
