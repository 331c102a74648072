// Package advisor answers natural-language finance questions using the
// user's own figures and the ingested knowledge base.
package advisor

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/amirasaad/aifinance/pkg/domain"
	"github.com/amirasaad/aifinance/pkg/dto"
	"github.com/amirasaad/aifinance/pkg/llm"
)

// Service produces financial advice.
type Service struct {
	contexts *ContextBuilder
	gateway  *llm.Gateway
	logger   *slog.Logger
	now      func() time.Time
}

// New creates an advisor Service.
func New(contexts *ContextBuilder, gateway *llm.Gateway, logger *slog.Logger) *Service {
	return &Service{
		contexts: contexts,
		gateway:  gateway,
		logger:   logger,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// GetAdvice answers q. Documents are reported only when document context
// was requested and found.
func (s *Service) GetAdvice(ctx context.Context, q dto.AdvisorQuery) (*dto.AdvisorResponse, error) {
	logger := s.logger.With("method", "GetAdvice", "user_id", q.UserID)
	logger.Info("Processing financial advice request")

	if strings.TrimSpace(q.UserID) == "" {
		return nil, fmt.Errorf("%w: user id is required", domain.ErrValidation)
	}
	if strings.TrimSpace(q.Query) == "" {
		return nil, fmt.Errorf("%w: query is required", domain.ErrValidation)
	}
	requested, err := llm.ParseProvider(q.Provider)
	if err != nil {
		return nil, err
	}
	provider, err := s.gateway.Resolve(requested)
	if err != nil {
		return nil, err
	}

	adviceCtx, err := s.contexts.Build(ctx, q.UserID, q.Query, q.IncludeDocumentContext)
	if err != nil {
		logger.Error("Failed to build advice context", "error", err)
		return nil, err
	}

	advice, err := s.gateway.GenerateAdvice(ctx, q.Query, adviceCtx.Text, provider)
	if err != nil {
		return nil, err
	}

	return &dto.AdvisorResponse{
		Advice:            advice,
		Provider:          provider.String(),
		RelevantDocuments: adviceCtx.Documents,
		GeneratedAt:       s.now(),
	}, nil
}
