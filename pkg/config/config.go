package config

import (
	"time"
)

type DB struct {
	Url                string        `envconfig:"URL"`
	AutoMigrate        bool          `envconfig:"AUTO_MIGRATE" default:"true"`
	MaxOpenConns       int           `envconfig:"MAX_OPEN_CONNS" default:"25"`
	ConnMaxLifetime    time.Duration `envconfig:"CONN_MAX_LIFETIME" default:"1h"`
	SlowQueryThreshold time.Duration `envconfig:"SLOW_QUERY_THRESHOLD" default:"200ms"`
}

type Redis struct {
	URL          string        `envconfig:"URL" default:"redis://localhost:6379/0"`
	KeyPrefix    string        `envconfig:"KEY_PREFIX" default:"aifinance:"`
	PoolSize     int           `envconfig:"POOL_SIZE" default:"10"`
	DialTimeout  time.Duration `envconfig:"DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"READ_TIMEOUT" default:"3s"`
	WriteTimeout time.Duration `envconfig:"WRITE_TIMEOUT" default:"3s"`
}

type Kafka struct {
	Brokers           string        `envconfig:"BROKERS" default:"localhost:9092"`
	GroupID           string        `envconfig:"GROUP_ID" default:"ai-finance-tracker"`
	Partitions        int           `envconfig:"PARTITIONS" default:"3"`
	ReplicationFactor int           `envconfig:"REPLICATION_FACTOR" default:"1"`
	DLQRetryInterval  time.Duration `envconfig:"DLQ_RETRY_INTERVAL" default:"5m"`
	DLQBatchSize      int           `envconfig:"DLQ_BATCH_SIZE" default:"10"`
	DLQMaxAttempts    int           `envconfig:"DLQ_MAX_ATTEMPTS" default:"5"`
	SASLUsername      string        `envconfig:"SASL_USERNAME"`
	SASLPassword      string        `envconfig:"SASL_PASSWORD"`
	TLSEnabled        bool          `envconfig:"TLS_ENABLED" default:"false"`
	TLSCAFile         string        `envconfig:"TLS_CA_FILE"`
	TLSCertFile       string        `envconfig:"TLS_CERT_FILE"`
	TLSKeyFile        string        `envconfig:"TLS_KEY_FILE"`
	TLSSkipVerify     bool          `envconfig:"TLS_SKIP_VERIFY" default:"false"`
}

type EventBus struct {
	Driver string `envconfig:"DRIVER" default:"memory"` // memory, kafka or redis
}

// Topics names the channels events travel on.
type Topics struct {
	TransactionCreated string `envconfig:"TRANSACTION_CREATED" default:"transaction-created"`
	FraudDetected      string `envconfig:"FRAUD_DETECTED" default:"fraud-detected"`
}

type Cache struct {
	Driver  string        `envconfig:"DRIVER" default:"memory"` // memory or redis
	TTL     time.Duration `envconfig:"TTL" default:"10m"`
	MaxSize int           `envconfig:"MAX_SIZE" default:"100"`
}

type Fraud struct {
	Enabled      bool          `envconfig:"ENABLED" default:"true"`
	Threshold    float64       `envconfig:"THRESHOLD" default:"0.7"`
	HistoryDays  int           `envconfig:"HISTORY_DAYS" default:"30"`
	HistoryLimit int           `envconfig:"HISTORY_LIMIT" default:"10"`
	Provider     string        `envconfig:"PROVIDER" default:"OLLAMA"`
	DedupTTL     time.Duration `envconfig:"DEDUP_TTL" default:"24h"`
	DedupMaxKeys int           `envconfig:"DEDUP_MAX_KEYS" default:"10000"`
}

type OpenAI struct {
	APIKey         string  `envconfig:"API_KEY"`
	BaseURL        string  `envconfig:"BASE_URL" default:"https://api.openai.com/v1"`
	ChatModel      string  `envconfig:"CHAT_MODEL" default:"gpt-4o-mini"`
	EmbeddingModel string  `envconfig:"EMBEDDING_MODEL" default:"text-embedding-3-small"`
	Temperature    float64 `envconfig:"TEMPERATURE" default:"0.7"`
}

type Ollama struct {
	BaseURL        string  `envconfig:"BASE_URL" default:"http://localhost:11434"`
	ChatModel      string  `envconfig:"CHAT_MODEL" default:"llama3.2"`
	EmbeddingModel string  `envconfig:"EMBEDDING_MODEL" default:"nomic-embed-text"`
	Temperature    float64 `envconfig:"TEMPERATURE" default:"0.7"`
}

type Gemini struct {
	APIKey         string `envconfig:"API_KEY"`
	ChatModel      string `envconfig:"CHAT_MODEL" default:"gemini-2.5-flash"`
	EmbeddingModel string `envconfig:"EMBEDDING_MODEL" default:"gemini-embedding-001"`
}

type AI struct {
	DefaultProvider   string        `envconfig:"DEFAULT_PROVIDER" default:"OLLAMA"`
	RequestTimeout    time.Duration `envconfig:"REQUEST_TIMEOUT" default:"60s"`
	RequestsPerMinute int           `envconfig:"REQUESTS_PER_MINUTE" default:"60"`
	OpenAI            *OpenAI       `envconfig:"OPENAI"`
	Ollama            *Ollama       `envconfig:"OLLAMA"`
	Gemini            *Gemini       `envconfig:"GEMINI"`
}

type Embedding struct {
	Provider          string        `envconfig:"PROVIDER" default:"OPENAI"` // OPENAI, OLLAMA or GEMINI
	Dimensions        int           `envconfig:"DIMENSIONS" default:"1536"`
	CacheTTL          time.Duration `envconfig:"CACHE_TTL" default:"1h"`
	RequestsPerMinute int           `envconfig:"REQUESTS_PER_MINUTE" default:"600"`
}

type Documents struct {
	Source          string `envconfig:"SOURCE" default:"local"` // local or gcs
	Path            string `envconfig:"PATH" default:"./documents"`
	Bucket          string `envconfig:"BUCKET"`
	Prefix          string `envconfig:"PREFIX" default:"documents/"`
	ChunkSize       int    `envconfig:"CHUNK_SIZE" default:"1000"`
	ChunkOverlap    int    `envconfig:"CHUNK_OVERLAP" default:"200"`
	IngestOnStartup bool   `envconfig:"INGEST_ON_STARTUP" default:"true"`
}

type VectorStore struct {
	Driver string `envconfig:"DRIVER" default:"postgres"` // postgres or memory
}

type Advisor struct {
	SummaryDays     int `envconfig:"SUMMARY_DAYS" default:"90"`
	MaxRelevantDocs int `envconfig:"MAX_RELEVANT_DOCS" default:"3"`
}

type RateLimit struct {
	MaxRequests int           `envconfig:"MAX_REQUESTS" default:"100"`
	Window      time.Duration `envconfig:"WINDOW" default:"1m"`
}

type Log struct {
	Level      int    `envconfig:"LEVEL" default:"0"`
	Format     string `envconfig:"FORMAT" default:"text"`
	TimeFormat string `envconfig:"TIME_FORMAT" default:"2006-01-02 15:04:05"`
	Prefix     string `envconfig:"PREFIX" default:"[aifinance]"`
}

type Server struct {
	Scheme          string        `envconfig:"SCHEME" default:"http"`
	Host            string        `envconfig:"HOST" default:"localhost"`
	Port            int           `envconfig:"PORT" default:"8080"`
	ShutdownTimeout time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"10s"`
}

type App struct {
	Env         string       `envconfig:"APP_ENV" default:"development"`
	Server      *Server      `envconfig:"SERVER"`
	Log         *Log         `envconfig:"LOG"`
	DB          *DB          `envconfig:"DATABASE"`
	Redis       *Redis       `envconfig:"REDIS"`
	Kafka       *Kafka       `envconfig:"KAFKA"`
	EventBus    *EventBus    `envconfig:"EVENTBUS"`
	Topics      *Topics      `envconfig:"TOPICS"`
	Cache       *Cache       `envconfig:"CACHE"`
	Fraud       *Fraud       `envconfig:"FRAUD"`
	AI          *AI          `envconfig:"AI"`
	Embedding   *Embedding   `envconfig:"EMBEDDING"`
	Documents   *Documents   `envconfig:"DOCUMENTS"`
	VectorStore *VectorStore `envconfig:"VECTOR_STORE"`
	Advisor     *Advisor     `envconfig:"ADVISOR"`
	RateLimit   *RateLimit   `envconfig:"RATE_LIMIT"`
}
