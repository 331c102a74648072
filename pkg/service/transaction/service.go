// Package transaction implements the command and query side of user
// transactions, including the financial summary used by the advisor.
package transaction

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/amirasaad/aifinance/pkg/cache"
	"github.com/amirasaad/aifinance/pkg/domain/events"
	"github.com/amirasaad/aifinance/pkg/domain/transaction"
	"github.com/amirasaad/aifinance/pkg/dto"
	"github.com/amirasaad/aifinance/pkg/eventbus"
	"github.com/amirasaad/aifinance/pkg/repository"
	"github.com/google/uuid"
)

// DefaultSummaryWindows are the summary windows always invalidated on writes.
var DefaultSummaryWindows = []int{30, 90}

// Service handles transaction commands and queries.
type Service struct {
	uow      repository.UnitOfWork
	bus      eventbus.Bus
	cache    cache.Cache
	cacheTTL time.Duration
	logger   *slog.Logger
	now      func() time.Time

	windowsMu sync.Mutex
	windows   map[int]struct{}
}

// New creates a transaction Service. c may be nil to disable caching.
func New(
	uow repository.UnitOfWork,
	bus eventbus.Bus,
	c cache.Cache,
	cacheTTL time.Duration,
	logger *slog.Logger,
) *Service {
	windows := make(map[int]struct{}, len(DefaultSummaryWindows))
	for _, d := range DefaultSummaryWindows {
		windows[d] = struct{}{}
	}
	return &Service{
		uow:      uow,
		bus:      bus,
		cache:    c,
		cacheTTL: cacheTTL,
		logger:   logger,
		now:      func() time.Time { return time.Now().UTC() },
		windows:  windows,
	}
}

// Create validates and stores a transaction, then announces it with a
// TransactionCreated event.
func (s *Service) Create(ctx context.Context, req dto.TransactionRequest) (*dto.TransactionRead, error) {
	logger := s.logger.With("method", "Create", "user_id", req.UserID)
	logger.Info("Creating transaction")

	txType, err := transaction.ParseType(req.TransactionType)
	if err != nil {
		return nil, err
	}
	tx, err := transaction.New(
		req.UserID,
		req.Amount,
		txType,
		req.Category,
		req.Description,
		req.Merchant,
		req.Location,
		req.TransactionDate,
	)
	if err != nil {
		logger.Warn("Transaction rejected", "error", err)
		return nil, err
	}

	var created *dto.TransactionRead
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := uow.TransactionRepository()
		if err != nil {
			return err
		}
		if err := repo.Create(ctx, dto.TransactionCreate{
			ID:              tx.ID,
			UserID:          tx.UserID,
			Amount:          tx.Amount,
			Category:        tx.Category,
			Description:     tx.Description,
			TransactionType: tx.Type.String(),
			TransactionDate: tx.TransactionDate,
			Merchant:        tx.Merchant,
			Location:        tx.Location,
		}); err != nil {
			return err
		}
		created, err = repo.Get(ctx, tx.ID)
		return err
	})
	if err != nil {
		logger.Error("Failed to persist transaction", "error", err)
		return nil, err
	}
	logger.Debug("Saved transaction", "transaction_id", created.ID)
	s.invalidateUser(ctx, created.UserID)

	evt := events.NewTransactionCreated(
		created.ID,
		created.UserID,
		created.Amount,
		events.WithTransactionDetails(created.Category, created.TransactionType, created.Merchant, created.Location),
		events.WithTransactionDate(created.TransactionDate),
	)
	if err := s.bus.Emit(ctx, evt); err != nil {
		// The row is committed; fraud screening for it is lost.
		logger.Error("Failed to publish transaction created event", "transaction_id", created.ID, "error", err)
	} else {
		logger.Info("Published transaction created event", "transaction_id", created.ID, "event_id", evt.ID)
	}
	return created, nil
}

// Update replaces the mutable fields of a transaction.
func (s *Service) Update(ctx context.Context, id uuid.UUID, req dto.TransactionRequest) (*dto.TransactionRead, error) {
	logger := s.logger.With("method", "Update", "transaction_id", id)
	logger.Info("Updating transaction")

	txType, err := transaction.ParseType(req.TransactionType)
	if err != nil {
		return nil, err
	}
	date := req.TransactionDate
	if date.IsZero() {
		date = s.now()
	}

	var updated *dto.TransactionRead
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := uow.TransactionRepository()
		if err != nil {
			return err
		}
		current, err := repo.Get(ctx, id)
		if err != nil {
			return err
		}
		if err := transaction.Validate(current.UserID, req.Amount, txType, date, s.now()); err != nil {
			return err
		}
		typ := txType.String()
		if err := repo.Update(ctx, id, dto.TransactionUpdate{
			Amount:          &req.Amount,
			Category:        &req.Category,
			Description:     &req.Description,
			TransactionType: &typ,
			TransactionDate: &date,
			Merchant:        &req.Merchant,
			Location:        &req.Location,
		}); err != nil {
			return err
		}
		updated, err = repo.Get(ctx, id)
		return err
	})
	if err != nil {
		logger.Error("Failed to update transaction", "error", err)
		return nil, err
	}
	s.invalidateTransaction(ctx, id)
	s.invalidateUser(ctx, updated.UserID)
	return updated, nil
}

// Delete removes a transaction.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	logger := s.logger.With("method", "Delete", "transaction_id", id)
	logger.Info("Deleting transaction")

	var userID string
	err := s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := uow.TransactionRepository()
		if err != nil {
			return err
		}
		current, err := repo.Get(ctx, id)
		if err != nil {
			return err
		}
		userID = current.UserID
		return repo.Delete(ctx, id)
	})
	if err != nil {
		logger.Error("Failed to delete transaction", "error", err)
		return err
	}
	s.invalidateTransaction(ctx, id)
	s.invalidateUser(ctx, userID)
	return nil
}

// Get returns one transaction, served from cache when possible.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*dto.TransactionRead, error) {
	return cache.GetOrLoad(ctx, s.cache, cache.Key(cache.Transactions, id), s.cacheTTL,
		func(ctx context.Context) (*dto.TransactionRead, error) {
			repo, err := s.uow.TransactionRepository()
			if err != nil {
				return nil, err
			}
			return repo.Get(ctx, id)
		})
}

// ListByUser returns a page of a user's transactions, newest first.
func (s *Service) ListByUser(ctx context.Context, userID string, limit, offset int) ([]*dto.TransactionRead, error) {
	repo, err := s.uow.TransactionRepository()
	if err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = 20
	}
	return repo.ListByUser(ctx, userID, limit, max(offset, 0))
}

// ListByDateRange returns a user's transactions dated within [from, to].
func (s *Service) ListByDateRange(ctx context.Context, userID string, from, to time.Time) ([]*dto.TransactionRead, error) {
	repo, err := s.uow.TransactionRepository()
	if err != nil {
		return nil, err
	}
	return repo.ListByUserBetween(ctx, userID, from, to)
}

// Recent returns a user's transactions of the last days, newest first.
func (s *Service) Recent(ctx context.Context, userID string, days int) ([]*dto.TransactionRead, error) {
	repo, err := s.uow.TransactionRepository()
	if err != nil {
		return nil, err
	}
	return repo.ListRecentByUser(ctx, userID, s.now().AddDate(0, 0, -days))
}

func (s *Service) invalidateTransaction(ctx context.Context, id uuid.UUID) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Delete(ctx, cache.Key(cache.Transactions, id)); err != nil {
		s.logger.Warn("Failed to invalidate transaction cache", "transaction_id", id, "error", err)
	}
}

func (s *Service) invalidateUser(ctx context.Context, userID string) {
	if s.cache == nil {
		return
	}
	s.windowsMu.Lock()
	keys := make([]string, 0, len(s.windows))
	for days := range s.windows {
		keys = append(keys, summaryKey(userID, days))
	}
	s.windowsMu.Unlock()
	if err := s.cache.Delete(ctx, keys...); err != nil {
		s.logger.Warn("Failed to invalidate user stats cache", "user_id", userID, "error", err)
	}
}

func summaryKey(userID string, days int) string {
	return cache.Key(cache.UserStats, userID, "summary", days)
}

func (s *Service) rememberWindow(days int) {
	s.windowsMu.Lock()
	s.windows[days] = struct{}{}
	s.windowsMu.Unlock()
}
