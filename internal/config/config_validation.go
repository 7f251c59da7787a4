// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Pavel Avdeyev

package config

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or a sentinel error otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.Auth.TokenSignKey == "" || cfg.Auth.TokenIssuer == "" || cfg.Auth.TokenDuration == 0 {
		return ErrInvalidAuthConfigs
	}

	if cfg.Storage.DB.DSN == "" || !isSupportedDriver(cfg.Storage.DB.Driver) {
		return ErrInvalidStorageConfigs
	}

	if cfg.Storage.Uploads.Dir == "" || cfg.Storage.Uploads.MaxUploadSize <= 0 || len(cfg.Storage.Uploads.AllowedExtensions) == 0 {
		return ErrInvalidUploadConfigs
	}

	if cfg.Server.HTTPAddress == "" {
		return ErrInvalidServerConfigs
	}

	return nil
}

func isSupportedDriver(driver string) bool {
	return driver == "pgx" || driver == "sqlite3"
}
