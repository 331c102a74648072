package fraud

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/amirasaad/aifinance/pkg/cache"
	"github.com/amirasaad/aifinance/pkg/domain"
	"github.com/amirasaad/aifinance/pkg/domain/events"
	"github.com/amirasaad/aifinance/pkg/domain/fraud"
	"github.com/amirasaad/aifinance/pkg/dto"
	"github.com/amirasaad/aifinance/pkg/eventbus"
	"github.com/amirasaad/aifinance/pkg/repository"
	"github.com/google/uuid"
)

// Lifecycle creates fraud alerts and moves them through their statuses.
type Lifecycle struct {
	uow      repository.UnitOfWork
	bus      eventbus.Bus
	cache    cache.Cache
	cacheTTL time.Duration
	logger   *slog.Logger
	now      func() time.Time
}

// NewLifecycle creates a Lifecycle. c may be nil to disable caching.
func NewLifecycle(
	uow repository.UnitOfWork,
	bus eventbus.Bus,
	c cache.Cache,
	cacheTTL time.Duration,
	logger *slog.Logger,
) *Lifecycle {
	return &Lifecycle{
		uow:      uow,
		bus:      bus,
		cache:    c,
		cacheTTL: cacheTTL,
		logger:   logger,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// CreateAlert stores a PENDING alert for tx and publishes FraudDetected.
// A transaction has at most one alert: when one already exists it is
// returned as is and nothing is published.
func (l *Lifecycle) CreateAlert(
	ctx context.Context,
	tx *dto.TransactionRead,
	analysis fraud.Analysis,
) (*dto.FraudAlertRead, error) {
	logger := l.logger.With("method", "CreateAlert", "transaction_id", tx.ID, "user_id", tx.UserID)

	alert := fraud.NewAlert(tx.ID, tx.UserID, analysis.Score, analysis.Reason)
	alert.DetectedAt = l.now()

	var existing *dto.FraudAlertRead
	err := l.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := uow.FraudAlertRepository()
		if err != nil {
			return err
		}
		found, err := repo.GetByTransactionID(ctx, tx.ID)
		switch {
		case err == nil:
			existing = found
			return nil
		case !errors.Is(err, domain.ErrNotFound):
			return err
		}
		return repo.Create(ctx, dto.FraudAlertCreate{
			ID:            alert.ID,
			TransactionID: alert.TransactionID,
			UserID:        alert.UserID,
			FraudScore:    alert.Score,
			Reason:        alert.Reason,
			Status:        alert.Status.String(),
			DetectedAt:    alert.DetectedAt,
		})
	})
	if errors.Is(err, domain.ErrAlreadyExists) {
		// A concurrent delivery won the unique index.
		repo, rerr := l.uow.FraudAlertRepository()
		if rerr != nil {
			return nil, rerr
		}
		existing, err = repo.GetByTransactionID(ctx, tx.ID)
	}
	if err != nil {
		logger.Error("❌ [ERROR] Failed to store fraud alert", "error", err)
		return nil, err
	}
	if existing != nil {
		logger.Info("🔁 [SKIP] Fraud alert already exists for transaction", "alert_id", existing.ID)
		return existing, nil
	}

	logger.Warn("🚨 [FRAUD] Fraud detected for transaction", "alert_id", alert.ID, "score", alert.Score.StringFixed(2))
	l.invalidate(ctx, alert.UserID)

	evt := events.NewFraudDetected(
		alert.ID,
		alert.TransactionID,
		alert.UserID,
		alert.Score,
		alert.Reason,
		alert.DetectedAt,
	)
	if err := l.bus.Emit(ctx, evt); err != nil {
		logger.Error("❌ [ERROR] Failed to publish fraud detected event", "alert_id", alert.ID, "error", err)
		return nil, fmt.Errorf("%w: publish fraud detected event: %w", domain.ErrProcessing, err)
	}
	logger.Info("📢 [PUBLISHED] Fraud detected event", "alert_id", alert.ID, "event_id", evt.ID)
	return toRead(alert), nil
}

// UpdateStatus moves an alert to status. The alert row is locked for the
// duration of the change and the write only applies if the status is still
// the one that was checked.
func (l *Lifecycle) UpdateStatus(ctx context.Context, alertID uuid.UUID, status string) (*dto.FraudAlertRead, error) {
	logger := l.logger.With("method", "UpdateStatus", "alert_id", alertID, "status", status)

	next, err := fraud.ParseStatus(status)
	if err != nil {
		return nil, err
	}

	var updated *dto.FraudAlertRead
	err = l.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := uow.FraudAlertRepository()
		if err != nil {
			return err
		}
		current, err := repo.GetForUpdate(ctx, alertID)
		if err != nil {
			return err
		}
		from := fraud.AlertStatus(current.Status)
		if err := fraud.CheckTransition(from, next); err != nil {
			return err
		}
		resolvedAt := fraud.ResolvedAt(next, l.now())
		if err := repo.CompareAndSetStatus(ctx, alertID, from.String(), next.String(), resolvedAt); err != nil {
			return err
		}
		current.Status = next.String()
		current.ResolvedAt = resolvedAt
		updated = current
		return nil
	})
	if err != nil {
		logger.Warn("Alert status update rejected", "error", err)
		return nil, err
	}

	logger.Info("✅ [SUCCESS] Alert status updated", "user_id", updated.UserID)
	l.invalidate(ctx, updated.UserID)
	return updated, nil
}

// ListUserAlerts returns a user's alerts, newest first.
func (l *Lifecycle) ListUserAlerts(ctx context.Context, userID string) ([]*dto.FraudAlertRead, error) {
	return cache.GetOrLoad(ctx, l.cache, alertsKey(userID), l.cacheTTL,
		func(ctx context.Context) ([]*dto.FraudAlertRead, error) {
			repo, err := l.uow.FraudAlertRepository()
			if err != nil {
				return nil, err
			}
			alerts, err := repo.ListByUser(ctx, userID)
			if err != nil {
				return nil, err
			}
			if alerts == nil {
				alerts = []*dto.FraudAlertRead{}
			}
			return alerts, nil
		})
}

// ListUserAlertsByStatus returns a user's alerts in one status.
func (l *Lifecycle) ListUserAlertsByStatus(ctx context.Context, userID, status string) ([]*dto.FraudAlertRead, error) {
	st, err := fraud.ParseStatus(status)
	if err != nil {
		return nil, err
	}
	repo, err := l.uow.FraudAlertRepository()
	if err != nil {
		return nil, err
	}
	return repo.ListByUserAndStatus(ctx, userID, st.String())
}

// CountPending counts a user's alerts still waiting for review.
func (l *Lifecycle) CountPending(ctx context.Context, userID string) (int64, error) {
	repo, err := l.uow.FraudAlertRepository()
	if err != nil {
		return 0, err
	}
	return repo.CountByUserAndStatus(ctx, userID, fraud.StatusPending.String())
}

// GetAlert returns one alert.
func (l *Lifecycle) GetAlert(ctx context.Context, id uuid.UUID) (*dto.FraudAlertRead, error) {
	repo, err := l.uow.FraudAlertRepository()
	if err != nil {
		return nil, err
	}
	return repo.Get(ctx, id)
}

func (l *Lifecycle) invalidate(ctx context.Context, userID string) {
	if l.cache == nil {
		return
	}
	if err := l.cache.Delete(ctx, alertsKey(userID)); err != nil {
		l.logger.Warn("Failed to invalidate fraud alert cache", "user_id", userID, "error", err)
	}
}

func alertsKey(userID string) string {
	return cache.Key(cache.FraudAlerts, userID)
}

func toRead(a *fraud.Alert) *dto.FraudAlertRead {
	return &dto.FraudAlertRead{
		ID:            a.ID,
		TransactionID: a.TransactionID,
		UserID:        a.UserID,
		FraudScore:    a.Score,
		Reason:        a.Reason,
		Status:        a.Status.String(),
		DetectedAt:    a.DetectedAt,
		ResolvedAt:    a.ResolvedAt,
	}
}
