// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Pavel Avdeyev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// studykeep server. It aggregates all sub-configurations and is populated
// by merging values from environment variables, command-line flags, an
// optional JSON file, and built-in defaults.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// Auth holds token and credential settings.
	Auth Auth `envPrefix:"AUTH_"`

	// Storage holds configuration for the relational database and the
	// upload file store.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds network address and timeout settings for the HTTP server.
	Server Server `envPrefix:"SERVER_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged underneath the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Auth holds configuration values that control the token lifecycle.
type Auth struct {
	// TokenSignKey is the secret key used to sign and verify JWT tokens.
	// Must be kept confidential.
	// Env: AUTH_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim embedded in every issued JWT token.
	// It identifies the service that issued the token and is validated on
	// every authenticated request.
	// Env: AUTH_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration specifies how long a JWT token remains valid after
	// issuance (e.g. "1h", "30m").
	// Env: AUTH_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`
}

// Storage groups the configuration for all persistence backends used by
// the application.
type Storage struct {
	// DB holds the relational database connection settings.
	DB DB `envPrefix:"DB_"`

	// Uploads holds the file-system storage settings for uploaded resources.
	Uploads Uploads `envPrefix:"UPLOADS_"`
}

// DB holds the relational database connection settings.
type DB struct {
	// Driver selects the database backend: "pgx" for PostgreSQL or
	// "sqlite3" for an embedded SQLite file.
	// Env: STORAGE_DB_DRIVER
	Driver string `env:"DRIVER"`

	// DSN is the connection string for the selected driver: a PostgreSQL
	// URI for "pgx", or a file path for "sqlite3".
	// Env: STORAGE_DB_DSN
	DSN string `env:"DSN"`
}

// Uploads holds the settings of the upload file store. Resource rows keep
// file paths relative to Dir so the root can be relocated without touching
// the database.
type Uploads struct {
	// Dir is the root directory under which uploaded files are stored.
	// Env: STORAGE_UPLOADS_DIR
	Dir string `env:"DIR"`

	// MaxUploadSize is the largest accepted upload body in bytes.
	// Env: STORAGE_UPLOADS_MAX_SIZE
	MaxUploadSize int64 `env:"MAX_SIZE"`

	// AllowedExtensions lists the accepted upload file extensions,
	// lower-case, without the leading dot.
	// Env: STORAGE_UPLOADS_ALLOWED_EXTENSIONS (comma-separated)
	AllowedExtensions []string `env:"ALLOWED_EXTENSIONS"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "0.0.0.0:8080").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before the server cancels it (e.g. "30s", "1m").
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Built-in defaults applied after all explicit sources. The upload limits
// mirror the application's documented contract: 50 MiB request bodies and
// pdf files only.
func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		Auth: Auth{
			TokenIssuer:   "studykeep",
			TokenDuration: 24 * time.Hour,
		},
		Storage: Storage{
			DB: DB{
				Driver: "sqlite3",
				DSN:    "studykeep.db",
			},
			Uploads: Uploads{
				Dir:               "uploads",
				MaxUploadSize:     50 << 20,
				AllowedExtensions: []string{"pdf"},
			},
		},
		Server: Server{
			HTTPAddress:    "localhost:8080",
			RequestTimeout: 60 * time.Second,
		},
	}
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (first source to set a field wins):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Built-in defaults
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		withDefaults().
		build()
}
