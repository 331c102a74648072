package initializer

import (
	"bytes"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	infraembedding "github.com/amirasaad/aifinance/infra/embedding"
	infraeventbus "github.com/amirasaad/aifinance/infra/eventbus"
	"github.com/amirasaad/aifinance/infra/vectorstore"
	"github.com/amirasaad/aifinance/pkg/config"
	"github.com/amirasaad/aifinance/pkg/domain/events"
	"github.com/amirasaad/aifinance/pkg/llm"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func aiConfig() *config.App {
	return &config.App{
		AI: &config.AI{
			DefaultProvider:   "OLLAMA",
			RequestTimeout:    time.Second,
			RequestsPerMinute: 60,
			OpenAI:            &config.OpenAI{BaseURL: "http://localhost:1"},
			Ollama:            &config.Ollama{BaseURL: "http://localhost:1"},
			Gemini:            &config.Gemini{},
		},
		Fraud:       &config.Fraud{Provider: "OLLAMA"},
		Embedding:   &config.Embedding{Provider: "OLLAMA", Dimensions: 4},
		VectorStore: &config.VectorStore{Driver: "memory"},
		Documents:   &config.Documents{Source: "local", Path: "./documents"},
	}
}

func TestInitEventBus_DefaultsToMemoryAsyncWhenNoExplicitDriver(t *testing.T) {
	cfg := &config.App{EventBus: &config.EventBus{Driver: ""}}

	bus, err := initEventBus(cfg, nil, discardLogger())
	require.NoError(t, err)
	require.IsType(t, &infraeventbus.MemoryAsyncEventBus{}, bus)
	require.NoError(t, bus.(*infraeventbus.MemoryAsyncEventBus).Close())
}

func TestInitEventBus_ExplicitRedisRequiresURL(t *testing.T) {
	cfg := &config.App{
		Redis:    &config.Redis{URL: ""},
		EventBus: &config.EventBus{Driver: "redis"},
	}

	_, err := initEventBus(cfg, nil, discardLogger())
	require.Error(t, err)
}

func TestInitEventBus_RedisConnectionErrorFallsBackToMemoryAsync(t *testing.T) {
	cfg := &config.App{
		Redis: &config.Redis{
			URL:         "redis://127.0.0.1:1/0",
			DialTimeout: 100 * time.Millisecond,
		},
		EventBus: &config.EventBus{Driver: "redis"},
	}

	bus, err := initEventBus(cfg, nil, discardLogger())
	require.NoError(t, err)
	require.IsType(t, &infraeventbus.MemoryAsyncEventBus{}, bus)
}

func TestInitEventBus_ExplicitKafkaRequiresBrokers(t *testing.T) {
	cfg := &config.App{
		EventBus: &config.EventBus{Driver: "kafka"},
		Kafka:    &config.Kafka{Brokers: " , "},
	}

	_, err := initEventBus(cfg, nil, discardLogger())
	require.Error(t, err)
}

func TestInitEventBus_KafkaConnectionErrorFallsBackToMemoryAsync(t *testing.T) {
	cfg := &config.App{
		EventBus: &config.EventBus{Driver: "kafka"},
		Kafka:    &config.Kafka{Brokers: "127.0.0.1:1", GroupID: "test"},
	}

	bus, err := initEventBus(cfg, nil, discardLogger())
	require.NoError(t, err)
	require.IsType(t, &infraeventbus.MemoryAsyncEventBus{}, bus)
}

func TestInitEventBus_UnknownDriver(t *testing.T) {
	cfg := &config.App{EventBus: &config.EventBus{Driver: "nats"}}
	_, err := initEventBus(cfg, nil, discardLogger())
	require.Error(t, err)
}

func TestTopicsFrom(t *testing.T) {
	topics := topicsFrom(&config.Topics{TransactionCreated: "tx-created"})
	assert.Equal(t, "tx-created", topics.For(events.EventTypeTransactionCreated))
	assert.Equal(t, "fraud-detected", topics.For(events.EventTypeFraudDetected))
}

func TestInitGateway(t *testing.T) {
	cfg := aiConfig()
	g, err := initGateway(cfg, nil, discardLogger())
	require.NoError(t, err)
	assert.Equal(t, llm.ProviderOllama, g.DefaultProvider())

	// OpenAI is only registered with a key.
	_, err = g.Resolve(llm.ProviderOpenAI)
	require.Error(t, err)

	cfg.AI.OpenAI.APIKey = "sk-test"
	cfg.AI.DefaultProvider = "openai"
	g, err = initGateway(cfg, nil, discardLogger())
	require.NoError(t, err)
	assert.Equal(t, llm.ProviderOpenAI, g.DefaultProvider())
}

func TestInitGateway_DefaultNotConfigured(t *testing.T) {
	cfg := aiConfig()
	cfg.AI.DefaultProvider = "GEMINI"
	_, err := initGateway(cfg, nil, discardLogger())
	require.Error(t, err)
}

func TestInitEmbedder(t *testing.T) {
	cfg := aiConfig()
	cfg.AI.Ollama.EmbeddingModel = "nomic-embed-text"
	e, model, err := initEmbedder(cfg, nil, discardLogger())
	require.NoError(t, err)
	assert.IsType(t, &infraembedding.OllamaClient{}, e)
	assert.Equal(t, 4, e.Dimensions())
	assert.Equal(t, "ollama/nomic-embed-text", model)

	cfg.Embedding.Provider = "OPENAI"
	_, _, err = initEmbedder(cfg, nil, discardLogger())
	require.Error(t, err)

	cfg.Embedding.Provider = "GEMINI"
	_, _, err = initEmbedder(cfg, nil, discardLogger())
	require.Error(t, err)
}

func TestInitDocumentStoreAndExtractors(t *testing.T) {
	cfg := aiConfig()
	assert.IsType(t, &vectorstore.MemoryStore{}, initDocumentStore(cfg, nil))

	extractors := initExtractors(cfg, nil, discardLogger())
	assert.Contains(t, extractors, ".txt")
	assert.NotContains(t, extractors, ".pdf")
}

func TestNewLogger_JSON(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(&buf, &config.Log{Format: "json", Level: 0})
	logger.Info("hello", "user_id", "u1")
	assert.Contains(t, buf.String(), `"user_id":"u1"`)
}
