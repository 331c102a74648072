package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	log "github.com/charmbracelet/log"
	"github.com/gofiber/fiber/v2"

	"github.com/amirasaad/aifinance/infra/initializer"
	"github.com/amirasaad/aifinance/pkg/app"
	"github.com/amirasaad/aifinance/pkg/config"
	"github.com/amirasaad/aifinance/webapi"
)

// @title AI Finance Tracker API
// @version 1.0.0
// @description Transactions, LLM fraud screening and a document-grounded financial advisor
// @license.name MIT
// @host localhost:8080
// @BasePath /
func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(".env")
	if err != nil {
		return fmt.Errorf("failed to load application configuration: %w", err)
	}

	deps, cleanup, err := initializer.InitializeDependencies(ctx, cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize dependencies: %w", err)
	}
	defer cleanup()
	logger := deps.Logger

	a, err := app.New(deps, cfg)
	if err != nil {
		return fmt.Errorf("failed to build application: %w", err)
	}

	if cfg.Documents.IngestOnStartup {
		ingestOnStartup(ctx, a, logger)
	}

	fiberApp := webapi.SetupApp(a)
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("Starting server",
		"env", cfg.Env,
		"address", addr,
		"scheme", cfg.Server.Scheme,
	)
	return serve(ctx, fiberApp, addr, cfg.Server.ShutdownTimeout, logger)
}

// ingestOnStartup loads the knowledge base before serving. A failed run is
// logged and the server starts anyway; documents can be ingested later
// through the API or the CLI.
func ingestOnStartup(ctx context.Context, a *app.App, logger *slog.Logger) {
	res, err := a.IngestionService.Ingest(ctx, a.Deps.DocumentSource)
	if err != nil {
		logger.Warn("Startup ingestion failed", "error", err)
		return
	}
	logger.Info("Startup ingestion finished",
		"processed", res.Processed,
		"skipped", res.Skipped,
		"failed", res.Failed,
	)
}

// serve listens on addr until ctx is cancelled, then drains in-flight
// requests for at most timeout.
func serve(ctx context.Context, fiberApp *fiber.App, addr string, timeout time.Duration, logger *slog.Logger) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- fiberApp.Listen(addr)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("Shutting down server", "timeout", timeout)
	if err := fiberApp.ShutdownWithTimeout(timeout); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	if err := <-errCh; err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
