// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Pavel Avdeyev

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/avdeyev/studykeep/internal/logger"
	"github.com/avdeyev/studykeep/internal/store"
	"github.com/avdeyev/studykeep/models"
)

type noteService struct {
	notes  store.NoteRepository
	topics store.TopicRepository
	logger *logger.Logger
}

// NewNoteService constructs a [NoteService].
func NewNoteService(notes store.NoteRepository, topics store.TopicRepository, logger *logger.Logger) NoteService {
	logger.Debug().Msg("creating note service")

	return &noteService{
		notes:  notes,
		topics: topics,
		logger: logger,
	}
}

// CreateNote attaches a new note to the given topic. The topic must exist
// and belong to the user.
func (s *noteService) CreateNote(ctx context.Context, userID int64, topicID int64, request *models.CreateNoteRequest) (*models.Note, error) {
	if request == nil || strings.TrimSpace(request.Title) == "" {
		return nil, fmt.Errorf("%w: note title is required", ErrValidation)
	}

	if err := s.checkTopicOwnership(ctx, userID, topicID); err != nil {
		return nil, err
	}

	now := time.Now()
	note := models.Note{
		Title:         strings.TrimSpace(request.Title),
		Content:       request.Content,
		IsAIGenerated: request.IsAIGenerated,
		UserID:        userID,
		TopicID:       topicID,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	created, err := s.notes.CreateNote(ctx, note)
	if err != nil {
		return nil, fmt.Errorf("error creating note: %w", err)
	}

	logger.FromContext(ctx).Info().
		Int64("note_id", created.NoteID).
		Int64("topic_id", topicID).
		Msg("note created")
	return &created, nil
}

// GetNote returns the note when it exists and belongs to the user.
func (s *noteService) GetNote(ctx context.Context, userID int64, noteID int64) (*models.Note, error) {
	note, err := s.notes.GetNote(ctx, userID, noteID)
	if err != nil {
		if errors.Is(err, store.ErrNoteNotFound) {
			return nil, fmt.Errorf("%w: note", ErrNotFound)
		}
		return nil, fmt.Errorf("error getting note: %w", err)
	}

	return &note, nil
}

// UpdateNote applies the non-nil fields of the request.
func (s *noteService) UpdateNote(ctx context.Context, userID int64, noteID int64, request *models.UpdateNoteRequest) (*models.Note, error) {
	if request == nil || (request.Title == nil && request.Content == nil) {
		return nil, fmt.Errorf("%w: nothing to update", ErrValidation)
	}

	if request.Title != nil {
		title := strings.TrimSpace(*request.Title)
		if title == "" {
			return nil, fmt.Errorf("%w: note title cannot be empty", ErrValidation)
		}
		request.Title = &title
	}

	updated, err := s.notes.UpdateNote(ctx, userID, noteID, *request, time.Now())
	if err != nil {
		if errors.Is(err, store.ErrNoteNotFound) {
			return nil, fmt.Errorf("%w: note", ErrNotFound)
		}
		return nil, fmt.Errorf("error updating note: %w", err)
	}

	return &updated, nil
}

// DeleteNote removes the note when it exists and belongs to the user.
func (s *noteService) DeleteNote(ctx context.Context, userID int64, noteID int64) error {
	if err := s.notes.DeleteNote(ctx, userID, noteID); err != nil {
		if errors.Is(err, store.ErrNoteNotFound) {
			return fmt.Errorf("%w: note", ErrNotFound)
		}
		return fmt.Errorf("error deleting note: %w", err)
	}

	return nil
}

// ListNotesByTopic returns the topic's notes, newest first. The topic must
// exist and belong to the user.
func (s *noteService) ListNotesByTopic(ctx context.Context, userID int64, topicID int64) ([]models.Note, error) {
	if err := s.checkTopicOwnership(ctx, userID, topicID); err != nil {
		return nil, err
	}

	notes, err := s.notes.ListNotesByTopic(ctx, userID, topicID)
	if err != nil {
		return nil, fmt.Errorf("error listing notes: %w", err)
	}

	return notes, nil
}

func (s *noteService) checkTopicOwnership(ctx context.Context, userID int64, topicID int64) error {
	if _, err := s.topics.GetTopic(ctx, userID, topicID); err != nil {
		if errors.Is(err, store.ErrTopicNotFound) {
			return fmt.Errorf("%w: topic", ErrNotFound)
		}
		return fmt.Errorf("error checking topic: %w", err)
	}
	return nil
}
