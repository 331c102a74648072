package app

import (
	"fmt"
	"log/slog"

	"github.com/shopspring/decimal"

	"github.com/amirasaad/aifinance/pkg/cache"
	"github.com/amirasaad/aifinance/pkg/chunker"
	"github.com/amirasaad/aifinance/pkg/config"
	"github.com/amirasaad/aifinance/pkg/embedding"
	"github.com/amirasaad/aifinance/pkg/eventbus"
	handlercommon "github.com/amirasaad/aifinance/pkg/handler/common"
	"github.com/amirasaad/aifinance/pkg/llm"
	"github.com/amirasaad/aifinance/pkg/repository"
	docrepo "github.com/amirasaad/aifinance/pkg/repository/document"
	"github.com/amirasaad/aifinance/pkg/service/advisor"
	"github.com/amirasaad/aifinance/pkg/service/fraud"
	"github.com/amirasaad/aifinance/pkg/service/ingestion"
	"github.com/amirasaad/aifinance/pkg/service/retrieval"
	"github.com/amirasaad/aifinance/pkg/service/transaction"
)

// Deps contains the infrastructure the application services are built on.
type Deps struct {
	Uow            repository.UnitOfWork
	EventBus       eventbus.Bus
	Cache          cache.Cache
	// ProcessedKeys records handled events. Nil falls back to Cache.
	ProcessedKeys  cache.Cache
	Gateway        *llm.Gateway
	Embedder       embedding.Client
	DocumentStore  docrepo.Store
	DocumentSource docrepo.Source
	Extractors     map[string]docrepo.Extractor
	Logger         *slog.Logger
}

// App is the composition root. Every service is constructed once here and
// shared by the HTTP API, the CLI and the event handlers.
type App struct {
	Deps   *Deps
	Config *config.App

	TransactionService *transaction.Service
	FraudAnalyzer      *fraud.Analyzer
	FraudLifecycle     *fraud.Lifecycle
	RetrievalService   *retrieval.Service
	IngestionService   *ingestion.Service
	AdvisorService     *advisor.Service

	idempotency *handlercommon.IdempotencyTracker
}

// New builds the services and subscribes the event handlers to the bus.
func New(deps *Deps, cfg *config.App) (*App, error) {
	if deps.Logger == nil {
		deps.Logger = slog.Default()
	}
	split, err := chunker.New(cfg.Documents.ChunkSize, cfg.Documents.ChunkOverlap)
	if err != nil {
		return nil, fmt.Errorf("chunker: %w", err)
	}

	processed := deps.ProcessedKeys
	if processed == nil {
		processed = deps.Cache
	}
	app := &App{
		Deps:        deps,
		Config:      cfg,
		idempotency: handlercommon.NewIdempotencyTracker(processed, cfg.Fraud.DedupTTL),
	}
	logger := deps.Logger
	ttl := cfg.Cache.TTL

	app.TransactionService = transaction.New(deps.Uow, deps.EventBus, deps.Cache, ttl, logger)
	app.FraudAnalyzer = fraud.NewAnalyzer(deps.Gateway, decimal.NewFromFloat(cfg.Fraud.Threshold), logger)
	app.FraudLifecycle = fraud.NewLifecycle(deps.Uow, deps.EventBus, deps.Cache, ttl, logger)
	app.RetrievalService = retrieval.New(deps.Embedder, deps.DocumentStore, logger)
	app.IngestionService = ingestion.New(deps.DocumentStore, deps.Embedder, split, deps.Extractors, logger)
	app.AdvisorService = advisor.New(
		advisor.NewContextBuilder(
			app.TransactionService,
			app.RetrievalService,
			cfg.Advisor.SummaryDays,
			cfg.Advisor.MaxRelevantDocs,
		),
		deps.Gateway,
		logger,
	)

	app.setupEventBus()
	return app, nil
}
