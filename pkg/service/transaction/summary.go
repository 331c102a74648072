package transaction

import (
	"context"
	"fmt"

	"github.com/amirasaad/aifinance/pkg/cache"
	"github.com/amirasaad/aifinance/pkg/domain"
	"github.com/amirasaad/aifinance/pkg/domain/transaction"
	"github.com/amirasaad/aifinance/pkg/dto"
	"github.com/shopspring/decimal"
)

// TopCategoryLimit caps the categories reported in a summary.
const TopCategoryLimit = 5

// Summarize aggregates a user's income, expenses and investments over the
// trailing window of days. Results are cached per user and window until the
// user's transactions change.
func (s *Service) Summarize(ctx context.Context, userID string, days int) (*dto.FinancialSummary, error) {
	if days <= 0 {
		return nil, fmt.Errorf("%w: summary window must be positive, got %d", domain.ErrValidation, days)
	}
	s.rememberWindow(days)
	return cache.GetOrLoad(ctx, s.cache, summaryKey(userID, days), s.cacheTTL,
		func(ctx context.Context) (*dto.FinancialSummary, error) {
			return s.summarize(ctx, userID, days)
		})
}

func (s *Service) summarize(ctx context.Context, userID string, days int) (*dto.FinancialSummary, error) {
	s.logger.Debug("Computing financial summary", "user_id", userID, "days", days)

	repo, err := s.uow.TransactionRepository()
	if err != nil {
		return nil, err
	}
	to := s.now()
	from := to.AddDate(0, 0, -days)

	totals, err := repo.SumByType(ctx, userID, from, to)
	if err != nil {
		return nil, err
	}
	stats, err := repo.CategoryStats(ctx, userID, from)
	if err != nil {
		return nil, err
	}
	if len(stats) > TopCategoryLimit {
		stats = stats[:TopCategoryLimit]
	}
	if stats == nil {
		stats = []dto.CategoryTotal{}
	}

	summary := &dto.FinancialSummary{
		UserID:          userID,
		PeriodDays:      days,
		Period:          fmt.Sprintf("%d days", days),
		TotalIncome:     decimal.Zero,
		TotalExpenses:   decimal.Zero,
		TotalInvestment: decimal.Zero,
		TopCategories:   stats,
	}
	for _, t := range totals {
		switch transaction.Type(t.TransactionType) {
		case transaction.TypeIncome:
			summary.TotalIncome = summary.TotalIncome.Add(t.Total)
		case transaction.TypeExpense:
			summary.TotalExpenses = summary.TotalExpenses.Add(t.Total)
		case transaction.TypeInvestment:
			summary.TotalInvestment = summary.TotalInvestment.Add(t.Total)
		}
	}
	summary.NetSavings = summary.TotalIncome.Sub(summary.TotalExpenses)
	return summary, nil
}
