// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Pavel Avdeyev

// Package migrations embeds the SQL schema migrations and applies them with
// goose. Separate migration sets are kept per backend because PostgreSQL and
// SQLite disagree on identity columns and timestamp types.
package migrations

import (
	"database/sql"
	"embed"
	"fmt"
	"io/fs"

	"github.com/pressly/goose/v3"
)

//go:embed postgres/*.sql sqlite3/*.sql
var embedMigrations embed.FS

// Migrate applies all pending migrations for the given driver
// ("pgx" or "sqlite3") to db.
func Migrate(db *sql.DB, driver string) error {
	var dir string
	switch driver {
	case "pgx":
		dir = "postgres"
	case "sqlite3":
		dir = "sqlite3"
	default:
		return fmt.Errorf("migration error: unsupported driver %q", driver)
	}

	sub, err := fs.Sub(embedMigrations, dir)
	if err != nil {
		return fmt.Errorf("migration error reading embedded migrations: %w", err)
	}
	goose.SetBaseFS(sub)

	if err := goose.SetDialect(driver); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	if err := goose.Up(db, "."); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}
