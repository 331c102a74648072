// Package migrations holds the versioned Postgres schema and applies it
// with golang-migrate.
package migrations

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	migratepostgres "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

//go:embed sql/*.sql
var files embed.FS

const (
	// RelationalVersion creates the transaction and fraud alert tables.
	RelationalVersion uint = 1
	// VectorVersion adds pgvector and the document chunk table.
	VectorVersion uint = 2
)

// Up migrates db to VectorVersion when withVectors is set and to at least
// RelationalVersion otherwise. It never migrates down, so switching the
// vector store off keeps existing chunks.
func Up(ctx context.Context, db *sql.DB, withVectors bool) (err error) {
	conn, err := db.Conn(ctx)
	if err != nil {
		return fmt.Errorf("acquire migration connection: %w", err)
	}
	driver, err := migratepostgres.WithConnection(ctx, conn, &migratepostgres.Config{})
	if err != nil {
		_ = conn.Close()
		return fmt.Errorf("init migration driver: %w", err)
	}
	src, err := iofs.New(files, "sql")
	if err != nil {
		_ = driver.Close()
		return fmt.Errorf("load migrations: %w", err)
	}
	m, err := migrate.NewWithInstance("iofs", src, "postgres", driver)
	if err != nil {
		_ = src.Close()
		_ = driver.Close()
		return fmt.Errorf("init migrate: %w", err)
	}
	// Closes the source and the dedicated connection, not the pool.
	defer func() {
		srcErr, dbErr := m.Close()
		if err == nil {
			err = errors.Join(srcErr, dbErr)
		}
	}()

	target := VectorVersion
	if !withVectors {
		target = RelationalVersion
	}
	return migrateTo(m, target)
}

func migrateTo(m *migrate.Migrate, target uint) error {
	current, dirty, err := m.Version()
	switch {
	case errors.Is(err, migrate.ErrNilVersion):
	case err != nil:
		return fmt.Errorf("read schema version: %w", err)
	case dirty:
		return fmt.Errorf("schema version %d is dirty; fix it manually and force the version", current)
	case current >= target:
		return nil
	}
	if err := m.Migrate(target); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("migrate to version %d: %w", target, err)
	}
	return nil
}
