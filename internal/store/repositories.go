// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Pavel Avdeyev

package store

import (
	"github.com/avdeyev/studykeep/internal/logger"
)

// Repositories bundles every SQL-backed repository behind one constructor so
// the service layer receives a single dependency.
type Repositories struct {
	UserRepository
	TopicRepository
	NoteRepository
	FlashcardRepository
	ResourceRepository
}

// NewRepositories wires all repositories over a shared database handle.
func NewRepositories(db *DB, logger *logger.Logger) *Repositories {
	logger.Debug().Msg("creating repositories")

	return &Repositories{
		UserRepository:      NewUserRepository(db, logger),
		TopicRepository:     NewTopicRepository(db, logger),
		NoteRepository:      NewNoteRepository(db, logger),
		FlashcardRepository: NewFlashcardRepository(db, logger),
		ResourceRepository:  NewResourceRepository(db, logger),
	}
}
