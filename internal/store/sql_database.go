// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Pavel Avdeyev

package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/avdeyev/studykeep/internal/config"
	"github.com/avdeyev/studykeep/internal/logger"
	"github.com/avdeyev/studykeep/migrations"
)

// DB wraps the shared *sql.DB connection together with the driver name,
// which selects the migration dialect at startup.
type DB struct {
	*sql.DB
	driver string
	logger *logger.Logger
}

// NewConnect opens a database connection for the configured driver.
func NewConnect(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	switch cfg.Driver {
	case "pgx":
		return NewConnectPostgres(ctx, cfg, log)
	case "sqlite3":
		return NewConnectSQLite(ctx, cfg, log)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}
}

// Migrate applies all pending schema migrations for the connection's driver.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.driver)
}
