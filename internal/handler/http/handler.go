// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Pavel Avdeyev

package http

import (
	"context"

	"github.com/avdeyev/studykeep/internal/config"
	"github.com/avdeyev/studykeep/internal/logger"
	"github.com/avdeyev/studykeep/internal/service"
)

// DBPinger reports database reachability for the health endpoint.
type DBPinger interface {
	PingContext(ctx context.Context) error
}

type Handler struct {
	services      *service.Services
	db            DBPinger
	uploadConfigs config.Uploads

	logger *logger.Logger
}

func NewHandler(services *service.Services, db DBPinger, uploadConfigs config.Uploads, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:      services,
		db:            db,
		uploadConfigs: uploadConfigs,
		logger:        logger,
	}
}
