package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// ErrInvalidConfig is returned when a loaded configuration is not usable.
var ErrInvalidConfig = errors.New("invalid configuration")

func Load(envFilePath ...string) (*App, error) {
	logger := slog.Default()
	logger.Info("Loading environment variables")

	if len(envFilePath) == 0 {
		logger.Debug("No environment file specified, trying default .env")
		if err := godotenv.Load(); err != nil {
			logger.Warn("No .env file found in current directory")
		}
		return loadFromEnv()
	}

	for _, path := range envFilePath {
		logger.Debug("Looking for environment file", "path", path)
		foundPath, err := FindEnvTest(path)
		if err != nil {
			logger.Debug("Environment file not found", "path", path, "error", err)
			continue
		}

		logger.Info("Loading environment from file", "path", foundPath)
		if err := godotenv.Load(foundPath); err != nil {
			logger.Error("Failed to load environment file", "path", foundPath, "error", err)
			continue
		}
		return loadFromEnv()
	}

	logger.Info("No valid environment files found, using default .env")
	if err := godotenv.Load(); err != nil {
		logger.Warn("No .env file found in current directory")
	}
	return loadFromEnv()
}

func loadFromEnv() (*App, error) {
	var cfg App
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger := slog.Default()
	logger.Info("App config loaded",
		"env", cfg.Env,
		"db", maskValue(cfg.DB.Url),
		"eventbus", cfg.EventBus.Driver,
		"cache", cfg.Cache.Driver,
		"cache_ttl", cfg.Cache.TTL,
		"vector_store", cfg.VectorStore.Driver,
		"documents_source", cfg.Documents.Source,
		"fraud_enabled", cfg.Fraud.Enabled,
		"fraud_threshold", cfg.Fraud.Threshold,
		"ai_default_provider", cfg.AI.DefaultProvider,
		"embedding_provider", cfg.Embedding.Provider,
		"openai_api_key", maskValue(cfg.AI.OpenAI.APIKey),
		"gemini_api_key", maskValue(cfg.AI.Gemini.APIKey),
	)
	return &cfg, nil
}

// Validate checks cross-field constraints envconfig cannot express.
func (c *App) Validate() error {
	var errs []error
	if c.Fraud.Threshold < 0 || c.Fraud.Threshold > 1 {
		errs = append(errs, fmt.Errorf("FRAUD_THRESHOLD must be within [0,1], got %v", c.Fraud.Threshold))
	}
	if c.Documents.ChunkSize <= 0 {
		errs = append(errs, fmt.Errorf("DOCUMENTS_CHUNK_SIZE must be positive, got %d", c.Documents.ChunkSize))
	}
	if c.Documents.ChunkOverlap < 0 || c.Documents.ChunkOverlap >= c.Documents.ChunkSize {
		errs = append(errs, fmt.Errorf(
			"DOCUMENTS_CHUNK_OVERLAP must be within [0,%d), got %d",
			c.Documents.ChunkSize, c.Documents.ChunkOverlap,
		))
	}
	if c.Cache.MaxSize <= 0 {
		errs = append(errs, fmt.Errorf("CACHE_MAX_SIZE must be positive, got %d", c.Cache.MaxSize))
	}
	if c.Embedding.Dimensions <= 0 {
		errs = append(errs, fmt.Errorf("EMBEDDING_DIMENSIONS must be positive, got %d", c.Embedding.Dimensions))
	}
	if !oneOf(c.EventBus.Driver, "memory", "kafka", "redis") {
		errs = append(errs, fmt.Errorf("unknown EVENTBUS_DRIVER %q", c.EventBus.Driver))
	}
	if !oneOf(c.Cache.Driver, "memory", "redis") {
		errs = append(errs, fmt.Errorf("unknown CACHE_DRIVER %q", c.Cache.Driver))
	}
	if !oneOf(c.VectorStore.Driver, "memory", "postgres") {
		errs = append(errs, fmt.Errorf("unknown VECTOR_STORE_DRIVER %q", c.VectorStore.Driver))
	}
	if !oneOf(c.Documents.Source, "local", "gcs") {
		errs = append(errs, fmt.Errorf("unknown DOCUMENTS_SOURCE %q", c.Documents.Source))
	}
	if c.Documents.Source == "gcs" && c.Documents.Bucket == "" {
		errs = append(errs, errors.New("DOCUMENTS_BUCKET is required for the gcs source"))
	}
	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrInvalidConfig, errors.Join(errs...))
}

// BrokerList splits the comma separated KAFKA_BROKERS value.
func (k *Kafka) BrokerList() []string {
	var out []string
	for _, b := range strings.Split(k.Brokers, ",") {
		if b = strings.TrimSpace(b); b != "" {
			out = append(out, b)
		}
	}
	return out
}

func oneOf(v string, allowed ...string) bool {
	for _, a := range allowed {
		if strings.EqualFold(v, a) {
			return true
		}
	}
	return false
}

func maskValue(key string) string {
	if len(key) <= 6 {
		return "****"
	}
	return key[:2] + "****" + key[len(key)-4:]
}
