package main

import (
	"context"
	"embed"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"jeopardy/internal/app"
	"jeopardy/internal/config"
	httpTransport "jeopardy/internal/transport/http"
)

//go:embed web/*
var webFS embed.FS

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, stdout io.Writer) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger := newLogger(cfg, stdout)
	slog.SetDefault(logger)

	logger.Info("starting jeopardy host console",
		"env", cfg.Server.Env,
		"addr", cfg.GetAddr(),
	)

	controller := app.NewController(app.Options{
		MinPlayers: cfg.Game.MinPlayers,
		MaxPlayers: cfg.Game.MaxPlayers,
		Logger:     logger,
	})
	defer controller.Close()

	if cfg.Game.ClueSetPath != "" {
		if err := controller.LoadClueSetFile(cfg.Game.ClueSetPath); err != nil {
			return fmt.Errorf("preloading clue set: %w", err)
		}
	}

	server := httpTransport.NewServer(cfg, controller, logger, webFS)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return server.Start()
	})

	g.Go(func() error {
		<-gctx.Done()
		return server.Shutdown(context.Background())
	})

	if err := g.Wait(); err != nil {
		return err
	}
	logger.Info("server stopped")
	return nil
}

func newLogger(cfg *config.Config, w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: cfg.Logging.Level}
	if cfg.Logging.Format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}
