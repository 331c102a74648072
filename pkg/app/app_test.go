package app

import (
	"context"
	"io"
	"log/slog"
	"reflect"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	infracache "github.com/amirasaad/aifinance/infra/cache"
	infraeventbus "github.com/amirasaad/aifinance/infra/eventbus"
	"github.com/amirasaad/aifinance/infra/vectorstore"
	"github.com/amirasaad/aifinance/internal/fixtures/mocks"
	"github.com/amirasaad/aifinance/pkg/config"
	"github.com/amirasaad/aifinance/pkg/domain"
	"github.com/amirasaad/aifinance/pkg/domain/events"
	"github.com/amirasaad/aifinance/pkg/dto"
	"github.com/amirasaad/aifinance/pkg/llm"
	"github.com/amirasaad/aifinance/pkg/repository"
)

func testConfig() *config.App {
	return &config.App{
		Cache:     &config.Cache{Driver: "memory", TTL: time.Minute, MaxSize: 10},
		Fraud:     &config.Fraud{Enabled: true, Threshold: 0.7, HistoryDays: 30, HistoryLimit: 10},
		Documents: &config.Documents{ChunkSize: 100, ChunkOverlap: 10},
		Advisor:   &config.Advisor{SummaryDays: 90, MaxRelevantDocs: 3},
	}
}

type pipeline struct {
	app       *App
	bus       *infraeventbus.MemoryEventBus
	completer *mocks.Completer
	alerts    *mocks.FraudAlertRepository
	processed *infracache.MemoryCache
	stored    map[uuid.UUID]*dto.TransactionRead
}

func newPipeline(t *testing.T) *pipeline {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	uow := mocks.NewUnitOfWork(t)
	txRepo := mocks.NewTransactionRepository(t)
	alerts := mocks.NewFraudAlertRepository(t)
	completer := mocks.NewCompleter(t)
	completer.EXPECT().Name().Return("ollama").Maybe()

	p := &pipeline{
		bus:       infraeventbus.NewWithMemory(logger),
		completer: completer,
		alerts:    alerts,
		processed: infracache.NewMemoryCache(100, time.Hour),
		stored:    map[uuid.UUID]*dto.TransactionRead{},
	}
	t.Cleanup(p.processed.Close)

	uow.EXPECT().
		Do(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, fn func(repository.UnitOfWork) error) error {
			return fn(uow)
		}).
		Maybe()
	uow.EXPECT().TransactionRepository().Return(txRepo, nil).Maybe()
	uow.EXPECT().FraudAlertRepository().Return(alerts, nil).Maybe()
	uow.EXPECT().GetRepository(mock.Anything).
		RunAndReturn(func(reflect.Type) (any, error) { return txRepo, nil }).
		Maybe()

	txRepo.EXPECT().Create(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, c dto.TransactionCreate) error {
			p.stored[c.ID] = &dto.TransactionRead{
				ID:              c.ID,
				UserID:          c.UserID,
				Amount:          c.Amount,
				Category:        c.Category,
				TransactionType: c.TransactionType,
				TransactionDate: c.TransactionDate,
				Merchant:        c.Merchant,
				Location:        c.Location,
			}
			return nil
		}).Maybe()
	txRepo.EXPECT().Get(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, id uuid.UUID) (*dto.TransactionRead, error) {
			if tx, ok := p.stored[id]; ok {
				return tx, nil
			}
			return nil, domain.ErrNotFound
		}).Maybe()
	txRepo.EXPECT().ListRecentByUser(mock.Anything, mock.Anything, mock.Anything).
		Return([]*dto.TransactionRead{}, nil).Maybe()

	gateway, err := llm.NewGateway(
		map[llm.Provider]llm.Completer{llm.ProviderOllama: completer},
		llm.ProviderOllama,
		llm.WithLogger(logger),
	)
	require.NoError(t, err)

	p.app, err = New(&Deps{
		Uow:           uow,
		EventBus:      p.bus,
		Gateway:       gateway,
		Embedder:      mocks.NewEmbeddingClient(t),
		DocumentStore: vectorstore.NewMemoryStore(3),
		ProcessedKeys: p.processed,
		Logger:        logger,
	}, testConfig())
	require.NoError(t, err)
	return p
}

func request() dto.TransactionRequest {
	return dto.TransactionRequest{
		UserID:          "u1",
		Amount:          decimal.NewFromInt(5000),
		Category:        "Electronics",
		TransactionType: "expense",
		TransactionDate: time.Now().UTC().Add(-time.Hour),
		Merchant:        "Unknown Store",
		Location:        "Lagos",
	}
}

func TestNew_BuildsServices(t *testing.T) {
	p := newPipeline(t)
	assert.NotNil(t, p.app.TransactionService)
	assert.NotNil(t, p.app.FraudAnalyzer)
	assert.NotNil(t, p.app.FraudLifecycle)
	assert.NotNil(t, p.app.RetrievalService)
	assert.NotNil(t, p.app.IngestionService)
	assert.NotNil(t, p.app.AdvisorService)
}

func TestNew_RejectsBadChunking(t *testing.T) {
	cfg := testConfig()
	cfg.Documents.ChunkOverlap = cfg.Documents.ChunkSize
	_, err := New(&Deps{Logger: slog.New(slog.NewTextHandler(io.Discard, nil))}, cfg)
	require.Error(t, err)
}

func TestFraudPipeline_RaisesAlertOnce(t *testing.T) {
	p := newPipeline(t)
	ctx := context.Background()

	p.completer.EXPECT().Complete(mock.Anything, "", mock.Anything).
		Return("HIGH|amount far exceeds average", nil).Once()
	p.alerts.EXPECT().GetByTransactionID(mock.Anything, mock.Anything).
		Return(nil, domain.ErrNotFound).Once()
	p.alerts.EXPECT().Create(mock.Anything, mock.Anything).Return(nil).Once()

	created, err := p.app.TransactionService.Create(ctx, request())
	require.NoError(t, err)

	published := p.bus.Published()
	require.Len(t, published, 2)
	tce, ok := published[0].(*events.TransactionCreated)
	require.True(t, ok)
	assert.Equal(t, created.ID, tce.TransactionID)

	fd, ok := published[1].(*events.FraudDetected)
	require.True(t, ok)
	assert.Equal(t, created.ID, fd.TransactionID)
	assert.Equal(t, "u1", fd.UserID)
	assert.True(t, fd.FraudScore.Equal(decimal.RequireFromString("0.9")))
	assert.Equal(t, "amount far exceeds average", fd.Reason)

	// A redelivery of the same transaction is acknowledged without a second analysis.
	require.NoError(t, p.bus.Emit(ctx, tce))
	assert.Len(t, p.bus.Published(), 3)
}

func TestFraudPipeline_LowRiskRaisesNothing(t *testing.T) {
	p := newPipeline(t)

	p.completer.EXPECT().Complete(mock.Anything, "", mock.Anything).
		Return("LOW|usual pattern", nil).Once()

	_, err := p.app.TransactionService.Create(context.Background(), request())
	require.NoError(t, err)

	published := p.bus.Published()
	require.Len(t, published, 1)
	assert.Equal(t, events.EventTypeTransactionCreated.String(), published[0].Type())
}

func TestFraudPipeline_Disabled(t *testing.T) {
	p := newPipeline(t)
	ctx := context.Background()
	cfg := testConfig()
	cfg.Fraud.Enabled = false

	deps := *p.app.Deps
	bus := infraeventbus.NewWithMemory(deps.Logger)
	deps.EventBus = bus
	app, err := New(&deps, cfg)
	require.NoError(t, err)

	created, err := app.TransactionService.Create(ctx, request())
	require.NoError(t, err)
	require.Len(t, bus.Published(), 1)

	seen, err := app.idempotency.Seen(ctx, created.ID.String())
	require.NoError(t, err)
	assert.False(t, seen, "skipped events are not recorded as processed")

	// Once screening is on, the redelivered event is analyzed.
	p.completer.EXPECT().Complete(mock.Anything, "", mock.Anything).
		Return("LOW|usual pattern", nil).Once()
	require.NoError(t, p.bus.Emit(ctx, bus.Published()[0]))
	seen, err = p.app.idempotency.Seen(ctx, created.ID.String())
	require.NoError(t, err)
	assert.True(t, seen)
}
