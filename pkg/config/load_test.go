package config

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.Env)
	assert.InDelta(t, 0.7, cfg.Fraud.Threshold, 1e-9)
	assert.Equal(t, 30, cfg.Fraud.HistoryDays)
	assert.Equal(t, 10, cfg.Fraud.HistoryLimit)
	assert.Equal(t, 10*time.Minute, cfg.Cache.TTL)
	assert.Equal(t, 100, cfg.Cache.MaxSize)
	assert.Equal(t, 1000, cfg.Documents.ChunkSize)
	assert.Equal(t, 200, cfg.Documents.ChunkOverlap)
	assert.Equal(t, "OLLAMA", cfg.AI.DefaultProvider)
	assert.Equal(t, "transaction-created", cfg.Topics.TransactionCreated)
	assert.Equal(t, "fraud-detected", cfg.Topics.FraudDetected)
}

func TestLoad_FromFile(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	content := "FRAUD_THRESHOLD=0.85\nCACHE_MAX_SIZE=5\nKAFKA_BROKERS=a:9092, b:9092\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env.test"), []byte(content), 0o600))
	t.Cleanup(func() {
		_ = os.Unsetenv("FRAUD_THRESHOLD")
		_ = os.Unsetenv("CACHE_MAX_SIZE")
		_ = os.Unsetenv("KAFKA_BROKERS")
	})

	cfg, err := Load(".env.test")
	require.NoError(t, err)
	assert.InDelta(t, 0.85, cfg.Fraud.Threshold, 1e-9)
	assert.Equal(t, 5, cfg.Cache.MaxSize)
	assert.Equal(t, []string{"a:9092", "b:9092"}, cfg.Kafka.BrokerList())
}

func TestLoad_InvalidThreshold(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("FRAUD_THRESHOLD", "1.5")

	_, err := Load()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidConfig)
	assert.Contains(t, err.Error(), "FRAUD_THRESHOLD")
}

func TestLoad_OverlapMustBeSmallerThanSize(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("DOCUMENTS_CHUNK_SIZE", "100")
	t.Setenv("DOCUMENTS_CHUNK_OVERLAP", "100")

	_, err := Load()
	require.ErrorIs(t, err, ErrInvalidConfig)
}

func TestLoad_GCSRequiresBucket(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("DOCUMENTS_SOURCE", "gcs")

	_, err := Load()
	require.ErrorIs(t, err, ErrInvalidConfig)
}

func TestMaskValue(t *testing.T) {
	assert.Equal(t, "****", maskValue("short"))
	assert.Equal(t, "sk****cdef", maskValue("sk-123456abcdef"))
}

func TestFindEnvTest_WalksUp(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "a", "b")
	require.NoError(t, os.MkdirAll(nested, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, ".env.sample"), []byte("X=1\n"), 0o600))
	t.Chdir(nested)

	found, err := FindEnvTest(".env.sample")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, ".env.sample"), found)
}

func TestFindEnvTest_NotFound(t *testing.T) {
	root := t.TempDir()
	// A directory with the same name is not an env file.
	require.NoError(t, os.Mkdir(filepath.Join(root, ".env.missing"), 0o755))
	t.Chdir(root)

	_, err := FindEnvTest(".env.missing")
	assert.ErrorIs(t, err, fs.ErrNotExist)

	abs := filepath.Join(root, ".env.abs")
	require.NoError(t, os.WriteFile(abs, []byte("X=1\n"), 0o600))
	found, err := FindEnvTest(abs)
	require.NoError(t, err)
	assert.Equal(t, abs, found)
}
