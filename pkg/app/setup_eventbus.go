// Package app wires the services together and registers the event handlers.
package app

import (
	"github.com/amirasaad/aifinance/pkg/domain/events"
	handlercommon "github.com/amirasaad/aifinance/pkg/handler/common"
	"github.com/amirasaad/aifinance/pkg/handler/fraud"
)

// setupEventBus registers every subscriber with the bus. Subscribers are
// registered exactly once, here.
func (a *App) setupEventBus() {
	a.setupFraudHandlers()
}

func (a *App) setupFraudHandlers() {
	cfg := a.Config.Fraud
	handler := fraud.HandleTransactionCreated(
		a.Deps.Uow,
		a.FraudAnalyzer,
		a.FraudLifecycle,
		fraud.Config{
			Enabled:      cfg.Enabled,
			HistoryDays:  cfg.HistoryDays,
			HistoryLimit: cfg.HistoryLimit,
		},
		a.Deps.Logger,
	)
	// Disabled screening acknowledges events without recording them, so
	// their redeliveries are screened once detection is switched on.
	if cfg.Enabled {
		handler = handlercommon.WithIdempotency(
			handler,
			a.idempotency,
			fraud.TransactionKey,
			"HandleTransactionCreated",
			a.Deps.Logger,
		)
	}
	a.Deps.EventBus.Register(events.EventTypeTransactionCreated, handler)
}
