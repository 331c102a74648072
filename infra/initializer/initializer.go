package initializer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"cloud.google.com/go/storage"
	"github.com/redis/go-redis/v9"
	"google.golang.org/genai"
	"gorm.io/gorm"

	"github.com/amirasaad/aifinance/infra"
	infracache "github.com/amirasaad/aifinance/infra/cache"
	infradocument "github.com/amirasaad/aifinance/infra/document"
	infraembedding "github.com/amirasaad/aifinance/infra/embedding"
	infraeventbus "github.com/amirasaad/aifinance/infra/eventbus"
	infrallm "github.com/amirasaad/aifinance/infra/llm"
	infrarepository "github.com/amirasaad/aifinance/infra/repository"
	docstore "github.com/amirasaad/aifinance/infra/repository/document"
	"github.com/amirasaad/aifinance/infra/vectorstore"
	"github.com/amirasaad/aifinance/pkg/app"
	"github.com/amirasaad/aifinance/pkg/cache"
	"github.com/amirasaad/aifinance/pkg/config"
	"github.com/amirasaad/aifinance/pkg/domain/events"
	"github.com/amirasaad/aifinance/pkg/embedding"
	"github.com/amirasaad/aifinance/pkg/eventbus"
	"github.com/amirasaad/aifinance/pkg/llm"
	docrepo "github.com/amirasaad/aifinance/pkg/repository/document"
)

// asyncBusCapacity bounds the in-process event queue.
const asyncBusCapacity = 256

// Cleanup releases what InitializeDependencies opened, in reverse order.
type Cleanup func()

type closers []func() error

func (c *closers) add(fn func() error) { *c = append(*c, fn) }

func (c closers) cleanup(logger *slog.Logger) Cleanup {
	return func() {
		for i := len(c) - 1; i >= 0; i-- {
			if err := c[i](); err != nil {
				logger.Warn("Failed to release resource", "error", err)
			}
		}
	}
}

// InitializeDependencies initializes all the application dependencies
func InitializeDependencies(ctx context.Context, cfg *config.App) (
	deps *app.Deps,
	cleanup Cleanup,
	err error,
) {
	logger := setupLogger(cfg.Log)
	deps = &app.Deps{Logger: logger}

	var res closers
	defer func() {
		if err != nil {
			res.cleanup(logger)()
		}
	}()

	// Database
	db, err := infra.NewDBConnection(ctx, cfg.DB, cfg.Env, logger)
	if err != nil {
		logger.Error("Failed to initialize database", "error", err)
		return nil, nil, err
	}
	if sqlDB, derr := db.DB(); derr == nil {
		res.add(sqlDB.Close)
	}
	usePgvector := strings.EqualFold(cfg.VectorStore.Driver, "postgres")
	if cfg.DB.AutoMigrate {
		if err = infra.Migrate(ctx, db, usePgvector); err != nil {
			return nil, nil, err
		}
		logger.Info("Database migrated", "pgvector", usePgvector)
	}
	deps.Uow = infrarepository.NewUoW(db)

	// Redis is shared by the cache and the event bus when either uses it.
	var rdb *redis.Client
	if strings.EqualFold(cfg.Cache.Driver, "redis") || strings.EqualFold(cfg.EventBus.Driver, "redis") {
		rdb, err = newRedisClient(cfg.Redis)
		if err != nil {
			return nil, nil, err
		}
		res.add(rdb.Close)
	}

	deps.Cache = initCache(cfg, rdb, logger, &res)
	deps.ProcessedKeys = initProcessedKeys(cfg, rdb, logger, &res)

	bus, err := initEventBus(cfg, rdb, logger)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize event bus: %w", err)
	}
	if c, ok := bus.(interface{ Close() error }); ok {
		res.add(c.Close)
	}
	deps.EventBus = bus

	// Model providers
	var gemini *genai.Client
	if cfg.AI.Gemini.APIKey != "" {
		gemini, err = infrallm.NewGeminiClient(ctx, cfg.AI.Gemini.APIKey)
		if err != nil {
			return nil, nil, err
		}
	}

	deps.Gateway, err = initGateway(cfg, gemini, logger)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize llm gateway: %w", err)
	}

	embedder, embeddingModel, err := initEmbedder(cfg, gemini, logger)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize embedding client: %w", err)
	}
	embedder = infraembedding.NewRateLimited(embedder, cfg.Embedding.RequestsPerMinute)
	deps.Embedder = infraembedding.NewCached(embedder, embeddingModel, deps.Cache, cfg.Embedding.CacheTTL, logger)

	deps.DocumentStore = initDocumentStore(cfg, db)
	deps.DocumentSource, err = initDocumentSource(ctx, cfg, &res)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize document source: %w", err)
	}
	deps.Extractors = initExtractors(cfg, gemini, logger)

	logger.Info("Dependencies initialized",
		"eventbus", fmt.Sprintf("%T", bus),
		"cache", cfg.Cache.Driver,
		"vector_store", cfg.VectorStore.Driver,
		"documents", cfg.Documents.Source,
		"default_provider", deps.Gateway.DefaultProvider(),
	)
	return deps, res.cleanup(logger), nil
}

func newRedisClient(cfg *config.Redis) (*redis.Client, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("invalid REDIS_URL: %w", err)
	}
	if cfg.PoolSize > 0 {
		opts.PoolSize = cfg.PoolSize
	}
	opts.DialTimeout = cfg.DialTimeout
	opts.ReadTimeout = cfg.ReadTimeout
	opts.WriteTimeout = cfg.WriteTimeout
	return redis.NewClient(opts), nil
}

func initCache(cfg *config.App, rdb *redis.Client, logger *slog.Logger, res *closers) cache.Cache {
	if strings.EqualFold(cfg.Cache.Driver, "redis") && rdb != nil {
		return infracache.NewRedisCache(rdb, cfg.Redis.KeyPrefix, cfg.Cache.TTL, logger)
	}
	mem := infracache.NewMemoryCache(cfg.Cache.MaxSize, cfg.Cache.TTL)
	res.add(func() error { mem.Close(); return nil })
	return mem
}

// initProcessedKeys keeps the idempotency record apart from the entity
// cache so neither evicts the other. With Redis available the record is
// shared by every consumer of the group.
func initProcessedKeys(cfg *config.App, rdb *redis.Client, logger *slog.Logger, res *closers) cache.Cache {
	ttl := cfg.Fraud.DedupTTL
	if rdb != nil {
		return infracache.NewRedisCache(rdb, cfg.Redis.KeyPrefix, ttl, logger)
	}
	mem := infracache.NewMemoryCache(cfg.Fraud.DedupMaxKeys, ttl)
	res.add(func() error { mem.Close(); return nil })
	return mem
}

func topicsFrom(cfg *config.Topics) infraeventbus.Topics {
	t := infraeventbus.Topics{}
	if cfg == nil {
		return t
	}
	if cfg.TransactionCreated != "" {
		t[events.EventTypeTransactionCreated] = cfg.TransactionCreated
	}
	if cfg.FraudDetected != "" {
		t[events.EventTypeFraudDetected] = cfg.FraudDetected
	}
	return t
}

// initEventBus builds the configured bus. A broker that cannot be reached at
// startup degrades to the in-process bus; missing broker settings are an
// error.
func initEventBus(cfg *config.App, rdb *redis.Client, logger *slog.Logger) (eventbus.Bus, error) {
	driver := ""
	if cfg.EventBus != nil {
		driver = strings.ToLower(strings.TrimSpace(cfg.EventBus.Driver))
	}

	switch driver {
	case "kafka":
		if cfg.Kafka == nil || len(cfg.Kafka.BrokerList()) == 0 {
			return nil, errors.New("kafka event bus requires KAFKA_BROKERS")
		}
		kcfg := &infraeventbus.KafkaConfig{
			GroupID:           cfg.Kafka.GroupID,
			Topics:            topicsFrom(cfg.Topics),
			Partitions:        cfg.Kafka.Partitions,
			ReplicationFactor: cfg.Kafka.ReplicationFactor,
			DeadLetter: infraeventbus.DeadLetterPolicy{
				RetryInterval: cfg.Kafka.DLQRetryInterval,
				BatchSize:     cfg.Kafka.DLQBatchSize,
				MaxAttempts:   cfg.Kafka.DLQMaxAttempts,
			},
			Security: infraeventbus.KafkaSecurity{
				SASLUsername: cfg.Kafka.SASLUsername,
				SASLPassword: cfg.Kafka.SASLPassword,
				TLS:          cfg.Kafka.TLSEnabled,
				CAFile:       cfg.Kafka.TLSCAFile,
				CertFile:     cfg.Kafka.TLSCertFile,
				KeyFile:      cfg.Kafka.TLSKeyFile,
				SkipVerify:   cfg.Kafka.TLSSkipVerify,
			},
		}

		bus, err := infraeventbus.NewWithKafka(cfg.Kafka.Brokers, logger, kcfg)
		if err != nil {
			logger.Warn("Kafka unavailable, falling back to in-memory event bus", "error", err)
			return infraeventbus.NewWithMemoryAsync(logger, asyncBusCapacity), nil
		}
		return bus, nil

	case "redis":
		if rdb == nil {
			if cfg.Redis == nil || cfg.Redis.URL == "" {
				return nil, errors.New("redis event bus requires REDIS_URL")
			}
			var err error
			if rdb, err = newRedisClient(cfg.Redis); err != nil {
				return nil, err
			}
		}
		group := "ai-finance-tracker"
		if cfg.Kafka != nil && cfg.Kafka.GroupID != "" {
			group = cfg.Kafka.GroupID
		}
		bus, err := infraeventbus.NewWithRedis(rdb, group, topicsFrom(cfg.Topics), logger)
		if err != nil {
			logger.Warn("Redis unavailable, falling back to in-memory event bus", "error", err)
			return infraeventbus.NewWithMemoryAsync(logger, asyncBusCapacity), nil
		}
		return bus, nil

	case "", "memory":
		return infraeventbus.NewWithMemoryAsync(logger, asyncBusCapacity), nil
	}
	return nil, fmt.Errorf("unknown event bus driver %q", driver)
}

// initGateway registers a completer for each provider that has credentials.
// Ollama needs none and is always available.
func initGateway(cfg *config.App, gemini *genai.Client, logger *slog.Logger) (*llm.Gateway, error) {
	ai := cfg.AI
	limit := func(c llm.Completer) llm.Completer {
		return infrallm.NewRateLimited(c, ai.RequestsPerMinute)
	}

	completers := map[llm.Provider]llm.Completer{
		llm.ProviderOllama: limit(infrallm.NewOllamaCompleter(ai.Ollama, ai.RequestTimeout, logger)),
	}
	if ai.OpenAI.APIKey != "" {
		completers[llm.ProviderOpenAI] = limit(infrallm.NewOpenAICompleter(ai.OpenAI, ai.RequestTimeout, logger))
	}
	if gemini != nil {
		completers[llm.ProviderGemini] = limit(infrallm.NewGeminiCompleter(gemini, ai.Gemini.ChatModel, logger))
	}

	def, err := llm.ParseProvider(ai.DefaultProvider)
	if err != nil {
		return nil, err
	}
	if def == "" {
		def = llm.ProviderOllama
	}
	opts := []llm.Option{llm.WithLogger(logger), llm.WithTimeout(ai.RequestTimeout)}
	if cfg.Fraud != nil {
		fp, err := llm.ParseProvider(cfg.Fraud.Provider)
		if err != nil {
			return nil, err
		}
		if fp != "" {
			opts = append(opts, llm.WithFraudProvider(fp))
		}
	}
	return llm.NewGateway(completers, def, opts...)
}

// initEmbedder returns the embedding client and the "provider/model" name
// that keys its cached vectors.
func initEmbedder(cfg *config.App, gemini *genai.Client, logger *slog.Logger) (embedding.Client, string, error) {
	p, err := llm.ParseProvider(cfg.Embedding.Provider)
	if err != nil {
		return nil, "", err
	}
	dims := cfg.Embedding.Dimensions
	timeout := cfg.AI.RequestTimeout

	switch p {
	case llm.ProviderOpenAI, "":
		if cfg.AI.OpenAI.APIKey == "" {
			return nil, "", errors.New("OPENAI embeddings require AI_OPENAI_API_KEY")
		}
		return infraembedding.NewOpenAIClient(cfg.AI.OpenAI, dims, timeout, logger),
			modelName(llm.ProviderOpenAI, cfg.AI.OpenAI.EmbeddingModel), nil
	case llm.ProviderOllama:
		return infraembedding.NewOllamaClient(cfg.AI.Ollama, dims, timeout, logger),
			modelName(p, cfg.AI.Ollama.EmbeddingModel), nil
	case llm.ProviderGemini:
		if gemini == nil {
			return nil, "", errors.New("GEMINI embeddings require AI_GEMINI_API_KEY")
		}
		return infraembedding.NewGeminiClient(gemini, cfg.AI.Gemini.EmbeddingModel, dims),
			modelName(p, cfg.AI.Gemini.EmbeddingModel), nil
	}
	return nil, "", fmt.Errorf("unsupported embedding provider %q", p)
}

func modelName(p llm.Provider, model string) string {
	return strings.ToLower(string(p)) + "/" + model
}

func initDocumentStore(cfg *config.App, db *gorm.DB) docrepo.Store {
	if strings.EqualFold(cfg.VectorStore.Driver, "memory") || db == nil {
		return vectorstore.NewMemoryStore(cfg.Embedding.Dimensions)
	}
	return docstore.New(db, cfg.Embedding.Dimensions)
}

func initDocumentSource(ctx context.Context, cfg *config.App, res *closers) (docrepo.Source, error) {
	if !strings.EqualFold(cfg.Documents.Source, "gcs") {
		return infradocument.NewLocalSource(cfg.Documents.Path), nil
	}
	client, err := storage.NewClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("create storage client: %w", err)
	}
	res.add(client.Close)
	return infradocument.NewGCSSource(client, cfg.Documents.Bucket, cfg.Documents.Prefix), nil
}

// initExtractors maps file extensions to extractors. PDFs are only
// supported when a Gemini key is configured.
func initExtractors(cfg *config.App, gemini *genai.Client, logger *slog.Logger) map[string]docrepo.Extractor {
	text := infradocument.TextExtractor{}
	extractors := map[string]docrepo.Extractor{
		".txt": text,
		".md":  text,
	}
	if gemini != nil {
		extractors[".pdf"] = infradocument.NewPDFExtractor(gemini, cfg.AI.Gemini.ChatModel)
	} else {
		logger.Warn("No Gemini key configured, PDF documents will be skipped")
	}
	return extractors
}
