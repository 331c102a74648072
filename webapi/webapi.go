// Package webapi provides the HTTP API of the finance tracker. It is
// organized into sub-packages per area:
// - transaction: transaction CRUD and summaries
// - fraud: fraud alert review
// - advisor: financial advice
// - document: knowledge base ingestion and search
package webapi

import (
	"context"
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/amirasaad/aifinance/pkg/app"
	"github.com/amirasaad/aifinance/pkg/service/ingestion"
	advisorweb "github.com/amirasaad/aifinance/webapi/advisor"
	"github.com/amirasaad/aifinance/webapi/common"
	documentweb "github.com/amirasaad/aifinance/webapi/document"
	fraudweb "github.com/amirasaad/aifinance/webapi/fraud"
	transactionweb "github.com/amirasaad/aifinance/webapi/transaction"
)

// SetupApp Initialize Fiber with custom configuration
func SetupApp(a *app.App) *fiber.App {
	fiberApp := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return common.ProblemDetailsJSON(c, "Internal Server Error", err)
		},
	})

	// Uses X-Forwarded-For when behind a proxy, then X-Real-IP, then the
	// direct IP.
	if rl := a.Config.RateLimit; rl != nil && rl.MaxRequests > 0 {
		fiberApp.Use(limiter.New(limiter.Config{
			Max:          rl.MaxRequests,
			Expiration:   rl.Window,
			KeyGenerator: clientIP,
			LimitReached: func(c *fiber.Ctx) error {
				return common.ProblemDetailsJSON(
					c,
					"Too Many Requests",
					errors.New("rate limit exceeded"),
					fiber.StatusTooManyRequests,
				)
			},
		}))
	}
	fiberApp.Use(recover.New())
	fiberApp.Use(logger.New())

	// Health check endpoint
	fiberApp.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("AI Finance Tracker API is running! 🚀")
	})

	transactionweb.Routes(fiberApp, a.TransactionService)
	fraudweb.Routes(fiberApp, a.FraudLifecycle)
	advisorweb.Routes(fiberApp, a.AdvisorService)
	documentweb.Routes(
		fiberApp,
		documentweb.IngesterFunc(func(ctx context.Context) (ingestion.Result, error) {
			return a.IngestionService.Ingest(ctx, a.Deps.DocumentSource)
		}),
		a.RetrievalService,
	)
	return fiberApp
}

func clientIP(c *fiber.Ctx) string {
	if forwardedFor := c.Get("X-Forwarded-For"); forwardedFor != "" {
		if i := strings.Index(forwardedFor, ","); i != -1 {
			return strings.TrimSpace(forwardedFor[:i])
		}
		return strings.TrimSpace(forwardedFor)
	}
	if realIP := c.Get("X-Real-IP"); realIP != "" {
		return realIP
	}
	return c.IP()
}
