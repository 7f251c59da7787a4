// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Pavel Avdeyev

package service

import (
	"context"
	"io"
	"time"

	"github.com/avdeyev/studykeep/internal/store"
	"github.com/avdeyev/studykeep/models"
)

// Mock: store.UserRepository

type mockUserRepository struct {
	createUserFn      func(ctx context.Context, user models.User) (models.User, error)
	findUserByEmailFn func(ctx context.Context, email string) (models.User, error)
}

func (m *mockUserRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	if m.createUserFn != nil {
		return m.createUserFn(ctx, user)
	}
	return user, nil
}

func (m *mockUserRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	if m.findUserByEmailFn != nil {
		return m.findUserByEmailFn(ctx, email)
	}
	return models.User{}, store.ErrNoUserWasFound
}

// Mock: store.TopicRepository

type mockTopicRepository struct {
	createTopicFn        func(ctx context.Context, topic models.Topic) (models.Topic, error)
	getTopicFn           func(ctx context.Context, userID, topicID int64) (models.Topic, error)
	updateTopicFn        func(ctx context.Context, userID, topicID int64, update models.UpdateTopicRequest, updatedAt time.Time) (models.Topic, error)
	deleteTopicCascadeFn func(ctx context.Context, userID, topicID int64) (*int64, []string, error)
	listTopLevelFn       func(ctx context.Context, userID int64) ([]models.Topic, error)
	listSubtopicsFn      func(ctx context.Context, userID, topicID int64) ([]models.Topic, error)
}

func (m *mockTopicRepository) CreateTopic(ctx context.Context, topic models.Topic) (models.Topic, error) {
	if m.createTopicFn != nil {
		return m.createTopicFn(ctx, topic)
	}
	topic.TopicID = 1
	return topic, nil
}

func (m *mockTopicRepository) GetTopic(ctx context.Context, userID, topicID int64) (models.Topic, error) {
	if m.getTopicFn != nil {
		return m.getTopicFn(ctx, userID, topicID)
	}
	return models.Topic{TopicID: topicID, UserID: userID}, nil
}

func (m *mockTopicRepository) UpdateTopic(ctx context.Context, userID, topicID int64, update models.UpdateTopicRequest, updatedAt time.Time) (models.Topic, error) {
	if m.updateTopicFn != nil {
		return m.updateTopicFn(ctx, userID, topicID, update, updatedAt)
	}
	return models.Topic{TopicID: topicID, UserID: userID}, nil
}

func (m *mockTopicRepository) DeleteTopicCascade(ctx context.Context, userID, topicID int64) (*int64, []string, error) {
	if m.deleteTopicCascadeFn != nil {
		return m.deleteTopicCascadeFn(ctx, userID, topicID)
	}
	return nil, nil, nil
}

func (m *mockTopicRepository) ListTopLevelTopics(ctx context.Context, userID int64) ([]models.Topic, error) {
	if m.listTopLevelFn != nil {
		return m.listTopLevelFn(ctx, userID)
	}
	return nil, nil
}

func (m *mockTopicRepository) ListSubtopics(ctx context.Context, userID, topicID int64) ([]models.Topic, error) {
	if m.listSubtopicsFn != nil {
		return m.listSubtopicsFn(ctx, userID, topicID)
	}
	return nil, nil
}

// Mock: store.NoteRepository

type mockNoteRepository struct {
	createNoteFn func(ctx context.Context, note models.Note) (models.Note, error)
	getNoteFn    func(ctx context.Context, userID, noteID int64) (models.Note, error)
	updateNoteFn func(ctx context.Context, userID, noteID int64, update models.UpdateNoteRequest, updatedAt time.Time) (models.Note, error)
	deleteNoteFn func(ctx context.Context, userID, noteID int64) error
	listNotesFn  func(ctx context.Context, userID, topicID int64) ([]models.Note, error)
}

func (m *mockNoteRepository) CreateNote(ctx context.Context, note models.Note) (models.Note, error) {
	if m.createNoteFn != nil {
		return m.createNoteFn(ctx, note)
	}
	note.NoteID = 1
	return note, nil
}

func (m *mockNoteRepository) GetNote(ctx context.Context, userID, noteID int64) (models.Note, error) {
	if m.getNoteFn != nil {
		return m.getNoteFn(ctx, userID, noteID)
	}
	return models.Note{NoteID: noteID, UserID: userID}, nil
}

func (m *mockNoteRepository) UpdateNote(ctx context.Context, userID, noteID int64, update models.UpdateNoteRequest, updatedAt time.Time) (models.Note, error) {
	if m.updateNoteFn != nil {
		return m.updateNoteFn(ctx, userID, noteID, update, updatedAt)
	}
	return models.Note{NoteID: noteID, UserID: userID}, nil
}

func (m *mockNoteRepository) DeleteNote(ctx context.Context, userID, noteID int64) error {
	if m.deleteNoteFn != nil {
		return m.deleteNoteFn(ctx, userID, noteID)
	}
	return nil
}

func (m *mockNoteRepository) ListNotesByTopic(ctx context.Context, userID, topicID int64) ([]models.Note, error) {
	if m.listNotesFn != nil {
		return m.listNotesFn(ctx, userID, topicID)
	}
	return nil, nil
}

// Mock: store.FlashcardRepository

type mockFlashcardRepository struct {
	createFlashcardFn func(ctx context.Context, card models.Flashcard) (models.Flashcard, error)
	getFlashcardFn    func(ctx context.Context, userID, flashcardID int64) (models.Flashcard, error)
	updateFlashcardFn func(ctx context.Context, userID, flashcardID int64, update models.UpdateFlashcardRequest, updatedAt time.Time) (models.Flashcard, error)
	deleteFlashcardFn func(ctx context.Context, userID, flashcardID int64) error
	listFlashcardsFn  func(ctx context.Context, userID, topicID int64) ([]models.Flashcard, error)
}

func (m *mockFlashcardRepository) CreateFlashcard(ctx context.Context, card models.Flashcard) (models.Flashcard, error) {
	if m.createFlashcardFn != nil {
		return m.createFlashcardFn(ctx, card)
	}
	card.FlashcardID = 1
	return card, nil
}

func (m *mockFlashcardRepository) GetFlashcard(ctx context.Context, userID, flashcardID int64) (models.Flashcard, error) {
	if m.getFlashcardFn != nil {
		return m.getFlashcardFn(ctx, userID, flashcardID)
	}
	return models.Flashcard{FlashcardID: flashcardID, UserID: userID}, nil
}

func (m *mockFlashcardRepository) UpdateFlashcard(ctx context.Context, userID, flashcardID int64, update models.UpdateFlashcardRequest, updatedAt time.Time) (models.Flashcard, error) {
	if m.updateFlashcardFn != nil {
		return m.updateFlashcardFn(ctx, userID, flashcardID, update, updatedAt)
	}
	return models.Flashcard{FlashcardID: flashcardID, UserID: userID}, nil
}

func (m *mockFlashcardRepository) DeleteFlashcard(ctx context.Context, userID, flashcardID int64) error {
	if m.deleteFlashcardFn != nil {
		return m.deleteFlashcardFn(ctx, userID, flashcardID)
	}
	return nil
}

func (m *mockFlashcardRepository) ListFlashcardsByTopic(ctx context.Context, userID, topicID int64) ([]models.Flashcard, error) {
	if m.listFlashcardsFn != nil {
		return m.listFlashcardsFn(ctx, userID, topicID)
	}
	return nil, nil
}

// Mock: store.ResourceRepository

type mockResourceRepository struct {
	createResourceFn   func(ctx context.Context, resource models.Resource) (models.Resource, error)
	getResourceFn      func(ctx context.Context, userID, resourceID int64) (models.Resource, error)
	updateResourceFn   func(ctx context.Context, resource models.Resource) error
	deleteResourceFn   func(ctx context.Context, userID, resourceID int64) error
	listResourcesFn    func(ctx context.Context, userID, topicID int64) ([]models.Resource, error)
	listAllFilePathsFn func(ctx context.Context) ([]string, error)
}

func (m *mockResourceRepository) CreateResource(ctx context.Context, resource models.Resource) (models.Resource, error) {
	if m.createResourceFn != nil {
		return m.createResourceFn(ctx, resource)
	}
	resource.ResourceID = 1
	return resource, nil
}

func (m *mockResourceRepository) GetResource(ctx context.Context, userID, resourceID int64) (models.Resource, error) {
	if m.getResourceFn != nil {
		return m.getResourceFn(ctx, userID, resourceID)
	}
	return models.Resource{ResourceID: resourceID, UserID: userID}, nil
}

func (m *mockResourceRepository) UpdateResource(ctx context.Context, resource models.Resource) error {
	if m.updateResourceFn != nil {
		return m.updateResourceFn(ctx, resource)
	}
	return nil
}

func (m *mockResourceRepository) DeleteResource(ctx context.Context, userID, resourceID int64) error {
	if m.deleteResourceFn != nil {
		return m.deleteResourceFn(ctx, userID, resourceID)
	}
	return nil
}

func (m *mockResourceRepository) ListResourcesByTopic(ctx context.Context, userID, topicID int64) ([]models.Resource, error) {
	if m.listResourcesFn != nil {
		return m.listResourcesFn(ctx, userID, topicID)
	}
	return nil, nil
}

func (m *mockResourceRepository) ListAllFilePaths(ctx context.Context) ([]string, error) {
	if m.listAllFilePathsFn != nil {
		return m.listAllFilePathsFn(ctx)
	}
	return nil, nil
}

// Mock: store.FileStorage

type mockFileStorage struct {
	saveFn   func(relPath string, r io.Reader) (int64, error)
	openFn   func(relPath string) (io.ReadCloser, error)
	removeFn func(relPath string) error
	existsFn func(relPath string) bool
	listFn   func() ([]store.StoredFileInfo, error)

	removedPaths []string
}

func (m *mockFileStorage) Save(relPath string, r io.Reader) (int64, error) {
	if m.saveFn != nil {
		return m.saveFn(relPath, r)
	}
	return io.Copy(io.Discard, r)
}

func (m *mockFileStorage) Open(relPath string) (io.ReadCloser, error) {
	if m.openFn != nil {
		return m.openFn(relPath)
	}
	return nil, store.ErrFileNotFound
}

func (m *mockFileStorage) Remove(relPath string) error {
	m.removedPaths = append(m.removedPaths, relPath)
	if m.removeFn != nil {
		return m.removeFn(relPath)
	}
	return nil
}

func (m *mockFileStorage) Exists(relPath string) bool {
	if m.existsFn != nil {
		return m.existsFn(relPath)
	}
	return false
}

func (m *mockFileStorage) List() ([]store.StoredFileInfo, error) {
	if m.listFn != nil {
		return m.listFn()
	}
	return nil, nil
}
