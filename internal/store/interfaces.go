// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Pavel Avdeyev

package store

import (
	"context"
	"io"
	"time"

	"github.com/avdeyev/studykeep/models"
)

// UserRepository persists user accounts.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
}

// TopicRepository persists the two-level topic hierarchy. Every method is
// scoped by the owner's user id; rows belonging to other users behave as if
// they did not exist.
type TopicRepository interface {
	CreateTopic(ctx context.Context, topic models.Topic) (models.Topic, error)
	GetTopic(ctx context.Context, userID, topicID int64) (models.Topic, error)
	UpdateTopic(ctx context.Context, userID, topicID int64, update models.UpdateTopicRequest, updatedAt time.Time) (models.Topic, error)

	// DeleteTopicCascade removes the topic, its direct subtopics, and every
	// note, flashcard, and resource attached to any of them, in a single
	// transaction. It returns the deleted topic's parent id (nil for
	// top-level topics) and the relative file paths of all removed pdf
	// resources so the caller can unlink the physical files after commit.
	DeleteTopicCascade(ctx context.Context, userID, topicID int64) (parentTopicID *int64, filePaths []string, err error)

	ListTopLevelTopics(ctx context.Context, userID int64) ([]models.Topic, error)
	ListSubtopics(ctx context.Context, userID, topicID int64) ([]models.Topic, error)
}

// NoteRepository persists notes, scoped by owner.
type NoteRepository interface {
	CreateNote(ctx context.Context, note models.Note) (models.Note, error)
	GetNote(ctx context.Context, userID, noteID int64) (models.Note, error)
	UpdateNote(ctx context.Context, userID, noteID int64, update models.UpdateNoteRequest, updatedAt time.Time) (models.Note, error)
	DeleteNote(ctx context.Context, userID, noteID int64) error
	ListNotesByTopic(ctx context.Context, userID, topicID int64) ([]models.Note, error)
}

// FlashcardRepository persists flashcards, scoped by owner.
type FlashcardRepository interface {
	CreateFlashcard(ctx context.Context, card models.Flashcard) (models.Flashcard, error)
	GetFlashcard(ctx context.Context, userID, flashcardID int64) (models.Flashcard, error)
	UpdateFlashcard(ctx context.Context, userID, flashcardID int64, update models.UpdateFlashcardRequest, updatedAt time.Time) (models.Flashcard, error)
	DeleteFlashcard(ctx context.Context, userID, flashcardID int64) error
	ListFlashcardsByTopic(ctx context.Context, userID, topicID int64) ([]models.Flashcard, error)
}

// ResourceRepository persists resource metadata, scoped by owner. The
// physical files live in a FileStorage; keeping the two consistent is the
// resource service's job.
type ResourceRepository interface {
	CreateResource(ctx context.Context, resource models.Resource) (models.Resource, error)
	GetResource(ctx context.Context, userID, resourceID int64) (models.Resource, error)

	// UpdateResource writes back every mutable column of the given resource,
	// scoped by (ResourceID, UserID).
	UpdateResource(ctx context.Context, resource models.Resource) error

	DeleteResource(ctx context.Context, userID, resourceID int64) error
	ListResourcesByTopic(ctx context.Context, userID, topicID int64) ([]models.Resource, error)

	// ListAllFilePaths returns the stored file paths of every pdf resource
	// across all users. Used by the orphaned file cleaner.
	ListAllFilePaths(ctx context.Context) ([]string, error)
}

// StoredFileInfo describes one file found under the upload root.
type StoredFileInfo struct {
	// Path is relative to the upload root.
	Path    string
	ModTime time.Time
}

// FileStorage stores uploaded files under a configured root directory.
// All paths are relative to that root; implementations must reject any path
// that would escape it.
type FileStorage interface {
	// Save writes the contents of r to the given relative path, creating
	// intermediate directories as needed, and returns the number of bytes
	// written.
	Save(relPath string, r io.Reader) (int64, error)

	// Open returns a reader over the stored file.
	Open(relPath string) (io.ReadCloser, error)

	// Remove deletes the stored file.
	Remove(relPath string) error

	// Exists reports whether a file is present at the given relative path.
	Exists(relPath string) bool

	// List walks the upload root and returns every stored file.
	List() ([]StoredFileInfo, error)
}
