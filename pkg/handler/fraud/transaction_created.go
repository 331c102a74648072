// Package fraud holds the event handler that screens newly created
// transactions for fraud.
package fraud

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/amirasaad/aifinance/pkg/domain"
	"github.com/amirasaad/aifinance/pkg/domain/events"
	"github.com/amirasaad/aifinance/pkg/domain/fraud"
	"github.com/amirasaad/aifinance/pkg/dto"
	"github.com/amirasaad/aifinance/pkg/eventbus"
	"github.com/amirasaad/aifinance/pkg/handler/common"
	"github.com/amirasaad/aifinance/pkg/repository"
	txrepo "github.com/amirasaad/aifinance/pkg/repository/transaction"
)

// Analyzer scores a transaction against the user's recent history.
type Analyzer interface {
	Analyze(ctx context.Context, tx *dto.TransactionRead, history []*dto.TransactionRead) (fraud.Analysis, error)
}

// AlertCreator raises an alert for a transaction judged fraudulent.
type AlertCreator interface {
	CreateAlert(ctx context.Context, tx *dto.TransactionRead, analysis fraud.Analysis) (*dto.FraudAlertRead, error)
}

// Config controls fraud screening.
type Config struct {
	Enabled      bool
	HistoryDays  int
	HistoryLimit int
}

// HandleTransactionCreated returns the handler run for every TransactionCreated
// delivery. Any failure is returned so the transport can redeliver or
// dead-letter the event.
func HandleTransactionCreated(
	uow repository.UnitOfWork,
	analyzer Analyzer,
	alerts AlertCreator,
	cfg Config,
	logger *slog.Logger,
) eventbus.HandlerFunc {
	if cfg.HistoryDays <= 0 {
		cfg.HistoryDays = 30
	}
	if cfg.HistoryLimit <= 0 {
		cfg.HistoryLimit = 10
	}
	return func(ctx context.Context, e events.Event) error {
		log := logger.With(
			"handler", "HandleTransactionCreated",
			"event_type", e.Type(),
		)

		tce, ok := e.(*events.TransactionCreated)
		if !ok {
			log.Error("❌ [ERROR] Unexpected event type", "event", e)
			return fmt.Errorf("expected TransactionCreated event, got %T", e)
		}
		log = log.With("transaction_id", tce.TransactionID, "user_id", tce.UserID)

		if !cfg.Enabled {
			log.Debug("🚫 [SKIP] Fraud detection disabled")
			return nil
		}
		log.Info("🟢 [START] Processing transaction for fraud detection")

		fail := func(stage string, err error) error {
			log.Error("❌ [ERROR] Fraud detection failed", "stage", stage, "error", err)
			return fmt.Errorf("%w: %s for transaction %s: %w", domain.ErrFraudDetection, stage, tce.TransactionID, err)
		}

		repo, err := common.Repository[txrepo.Repository](uow)
		if err != nil {
			return fail("get transaction repository", err)
		}
		tx, err := repo.Get(ctx, tce.TransactionID)
		if err != nil {
			return fail("load transaction", err)
		}

		since := time.Now().UTC().AddDate(0, 0, -cfg.HistoryDays)
		recent, err := repo.ListRecentByUser(ctx, tx.UserID, since)
		if err != nil {
			return fail("load history", err)
		}
		history := make([]*dto.TransactionRead, 0, cfg.HistoryLimit)
		for _, h := range recent {
			if h.ID == tx.ID {
				continue
			}
			history = append(history, h)
			if len(history) == cfg.HistoryLimit {
				break
			}
		}

		analysis, err := analyzer.Analyze(ctx, tx, history)
		if err != nil {
			return fail("analyze", err)
		}
		log.Info("🔍 [ANALYZED] Transaction scored",
			"risk", analysis.Risk, "score", analysis.Score.StringFixed(2), "fraudulent", analysis.Fraudulent)

		if !analysis.Fraudulent {
			log.Info("✅ [SUCCESS] Transaction looks legitimate")
			return nil
		}

		alert, err := alerts.CreateAlert(ctx, tx, analysis)
		if err != nil {
			return fail("create alert", err)
		}
		log.Info("✅ [SUCCESS] Fraud alert raised", "alert_id", alert.ID)
		return nil
	}
}

// TransactionKey extracts the idempotency key of a TransactionCreated event.
func TransactionKey(e events.Event) string {
	if tce, ok := e.(*events.TransactionCreated); ok {
		return tce.TransactionID.String()
	}
	return ""
}
