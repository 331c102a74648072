package infra

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/amirasaad/aifinance/infra/migrations"
	"github.com/amirasaad/aifinance/pkg/config"
)

// slogWriter routes gorm's query log into the application logger.
type slogWriter struct{ log *slog.Logger }

func (w slogWriter) Printf(format string, args ...any) {
	w.log.Debug(fmt.Sprintf(format, args...))
}

func gormLogger(appEnv string, slow time.Duration, log *slog.Logger) logger.Interface {
	level := logger.Warn
	if appEnv == "development" {
		level = logger.Info
	}
	return logger.New(slogWriter{log: log.With("component", "gorm")}, logger.Config{
		SlowThreshold:             slow,
		LogLevel:                  level,
		IgnoreRecordNotFoundError: true,
		Colorful:                  false,
	})
}

// NewDBConnection opens and pings the Postgres pool. Driver errors are
// translated so that unique violations surface as gorm.ErrDuplicatedKey.
func NewDBConnection(ctx context.Context, cnf *config.DB, appEnv string, log *slog.Logger) (*gorm.DB, error) {
	if cnf == nil || cnf.Url == "" {
		return nil, errors.New("DATABASE_URL is not set")
	}
	if log == nil {
		log = slog.Default()
	}

	db, err := gorm.Open(postgres.Open(cnf.Url), &gorm.Config{
		Logger:                 gormLogger(appEnv, cnf.SlowQueryThreshold, log),
		SkipDefaultTransaction: true,
		TranslateError:         true,
	})
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	pool, err := db.DB()
	if err != nil {
		return nil, err
	}
	if cnf.MaxOpenConns > 0 {
		pool.SetMaxOpenConns(cnf.MaxOpenConns)
		pool.SetMaxIdleConns(cnf.MaxOpenConns)
	}
	if cnf.ConnMaxLifetime > 0 {
		pool.SetConnMaxLifetime(cnf.ConnMaxLifetime)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := pool.PingContext(pingCtx); err != nil {
		_ = pool.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	return db, nil
}

// Migrate applies the embedded schema migrations. withVectors is false when
// chunks live outside Postgres and pgvector is not needed.
func Migrate(ctx context.Context, db *gorm.DB, withVectors bool) error {
	pool, err := db.DB()
	if err != nil {
		return err
	}
	return migrations.Up(ctx, pool, withVectors)
}
