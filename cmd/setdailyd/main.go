package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/labstack/echo/v4"

	"github.com/randomtoy/setdaily/internal/adapters/daily"
	httpadapter "github.com/randomtoy/setdaily/internal/adapters/http"
	"github.com/randomtoy/setdaily/internal/adapters/seeded"
	"github.com/randomtoy/setdaily/internal/app"
	"github.com/randomtoy/setdaily/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel}))
	slog.SetDefault(logger)

	cal, err := daily.NewCalendar(cfg.Timezone, nil)
	if err != nil {
		logger.Error("failed to load calendar", "error", err)
		os.Exit(1)
	}

	svc := app.NewPuzzleService(cal, seeded.NewFactory(cfg.SeedSalt), logger, cfg.CacheDays)

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(httpadapter.RequestIDMiddleware())
	e.Use(httpadapter.LoggingMiddleware(logger))

	handler := httpadapter.NewHandler(svc)
	handler.Register(e)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Warm the cache so the first player of the day does not pay for the search.
	if p, err := svc.Today(ctx); err != nil {
		logger.Warn("failed to pre-generate today's puzzle", "error", err)
	} else {
		logger.Info("today's puzzle ready", "day", p.Day, "attempts", p.Attempts, "fallback", p.Fallback)
	}

	go func() {
		logger.Info("starting server", "addr", cfg.HTTPAddr, "timezone", cfg.Timezone)
		if err := e.Start(cfg.HTTPAddr); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown error", "error", err)
	}
}
