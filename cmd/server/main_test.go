package main

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServe_ShutsDownOnCancel(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	fiberApp := fiber.New(fiber.Config{DisableStartupMessage: true})
	fiberApp.Get("/", func(c *fiber.Ctx) error { return c.SendString("ok") })

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- serve(ctx, fiberApp, "127.0.0.1:0", time.Second, logger)
	}()

	time.Sleep(100 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}

func TestServe_ListenError(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	fiberApp := fiber.New(fiber.Config{DisableStartupMessage: true})

	err := serve(context.Background(), fiberApp, "not-an-address", time.Second, logger)
	assert.Error(t, err)
}
