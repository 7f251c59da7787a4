// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Pavel Avdeyev

package service

import (
	"github.com/avdeyev/studykeep/internal/config"
	"github.com/avdeyev/studykeep/internal/logger"
	"github.com/avdeyev/studykeep/internal/store"
)

// Services bundles every domain service behind one constructor so the
// handler layer receives a single dependency.
type Services struct {
	AuthService
	TopicService
	NoteService
	FlashcardService
	ResourceService
}

// NewServices wires all services over the given repositories and file
// storage.
func NewServices(configs *config.StructuredConfig, repositories *store.Repositories, files store.FileStorage, logger *logger.Logger) *Services {
	logger.Debug().Msg("creating services")

	return &Services{
		AuthService:      NewAuthService(configs.Auth, repositories.UserRepository, logger),
		TopicService:     NewTopicService(repositories.TopicRepository, files, logger),
		NoteService:      NewNoteService(repositories.NoteRepository, repositories.TopicRepository, logger),
		FlashcardService: NewFlashcardService(repositories.FlashcardRepository, repositories.TopicRepository, logger),
		ResourceService:  NewResourceService(configs.Storage.Uploads, repositories.ResourceRepository, repositories.TopicRepository, files, logger),
	}
}
