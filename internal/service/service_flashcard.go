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

type flashcardService struct {
	flashcards store.FlashcardRepository
	topics     store.TopicRepository
	logger     *logger.Logger
}

// NewFlashcardService constructs a [FlashcardService].
func NewFlashcardService(flashcards store.FlashcardRepository, topics store.TopicRepository, logger *logger.Logger) FlashcardService {
	logger.Debug().Msg("creating flashcard service")

	return &flashcardService{
		flashcards: flashcards,
		topics:     topics,
		logger:     logger,
	}
}

// CreateFlashcard attaches a new flashcard to the given topic. A zero
// difficulty falls back to the default; otherwise it must stay within the
// supported range.
func (s *flashcardService) CreateFlashcard(ctx context.Context, userID int64, topicID int64, request *models.CreateFlashcardRequest) (*models.Flashcard, error) {
	if request == nil || strings.TrimSpace(request.Question) == "" || strings.TrimSpace(request.Answer) == "" {
		return nil, fmt.Errorf("%w: flashcard question and answer are required", ErrValidation)
	}

	difficulty := request.Difficulty
	if difficulty == 0 {
		difficulty = models.DefaultDifficulty
	}
	if err := validateDifficulty(difficulty); err != nil {
		return nil, err
	}

	if err := s.checkTopicOwnership(ctx, userID, topicID); err != nil {
		return nil, err
	}

	now := time.Now()
	card := models.Flashcard{
		Question:   strings.TrimSpace(request.Question),
		Answer:     strings.TrimSpace(request.Answer),
		Difficulty: difficulty,
		UserID:     userID,
		TopicID:    topicID,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	created, err := s.flashcards.CreateFlashcard(ctx, card)
	if err != nil {
		return nil, fmt.Errorf("error creating flashcard: %w", err)
	}

	logger.FromContext(ctx).Info().
		Int64("flashcard_id", created.FlashcardID).
		Int64("topic_id", topicID).
		Msg("flashcard created")
	return &created, nil
}

// GetFlashcard returns the flashcard when it exists and belongs to the user.
func (s *flashcardService) GetFlashcard(ctx context.Context, userID int64, flashcardID int64) (*models.Flashcard, error) {
	card, err := s.flashcards.GetFlashcard(ctx, userID, flashcardID)
	if err != nil {
		if errors.Is(err, store.ErrFlashcardNotFound) {
			return nil, fmt.Errorf("%w: flashcard", ErrNotFound)
		}
		return nil, fmt.Errorf("error getting flashcard: %w", err)
	}

	return &card, nil
}

// UpdateFlashcard applies the non-nil fields of the request.
func (s *flashcardService) UpdateFlashcard(ctx context.Context, userID int64, flashcardID int64, request *models.UpdateFlashcardRequest) (*models.Flashcard, error) {
	if request == nil || (request.Question == nil && request.Answer == nil && request.Difficulty == nil &&
		request.LastReviewedAt == nil && request.NextReviewAt == nil) {
		return nil, fmt.Errorf("%w: nothing to update", ErrValidation)
	}

	if request.Question != nil {
		question := strings.TrimSpace(*request.Question)
		if question == "" {
			return nil, fmt.Errorf("%w: flashcard question cannot be empty", ErrValidation)
		}
		request.Question = &question
	}
	if request.Answer != nil {
		answer := strings.TrimSpace(*request.Answer)
		if answer == "" {
			return nil, fmt.Errorf("%w: flashcard answer cannot be empty", ErrValidation)
		}
		request.Answer = &answer
	}
	if request.Difficulty != nil {
		if err := validateDifficulty(*request.Difficulty); err != nil {
			return nil, err
		}
	}

	updated, err := s.flashcards.UpdateFlashcard(ctx, userID, flashcardID, *request, time.Now())
	if err != nil {
		if errors.Is(err, store.ErrFlashcardNotFound) {
			return nil, fmt.Errorf("%w: flashcard", ErrNotFound)
		}
		return nil, fmt.Errorf("error updating flashcard: %w", err)
	}

	return &updated, nil
}

// DeleteFlashcard removes the flashcard when it exists and belongs to the
// user.
func (s *flashcardService) DeleteFlashcard(ctx context.Context, userID int64, flashcardID int64) error {
	if err := s.flashcards.DeleteFlashcard(ctx, userID, flashcardID); err != nil {
		if errors.Is(err, store.ErrFlashcardNotFound) {
			return fmt.Errorf("%w: flashcard", ErrNotFound)
		}
		return fmt.Errorf("error deleting flashcard: %w", err)
	}

	return nil
}

// ListFlashcardsByTopic returns the topic's flashcards, newest first. The
// topic must exist and belong to the user.
func (s *flashcardService) ListFlashcardsByTopic(ctx context.Context, userID int64, topicID int64) ([]models.Flashcard, error) {
	if err := s.checkTopicOwnership(ctx, userID, topicID); err != nil {
		return nil, err
	}

	cards, err := s.flashcards.ListFlashcardsByTopic(ctx, userID, topicID)
	if err != nil {
		return nil, fmt.Errorf("error listing flashcards: %w", err)
	}

	return cards, nil
}

func (s *flashcardService) checkTopicOwnership(ctx context.Context, userID int64, topicID int64) error {
	if _, err := s.topics.GetTopic(ctx, userID, topicID); err != nil {
		if errors.Is(err, store.ErrTopicNotFound) {
			return fmt.Errorf("%w: topic", ErrNotFound)
		}
		return fmt.Errorf("error checking topic: %w", err)
	}
	return nil
}

func validateDifficulty(difficulty int) error {
	if difficulty < models.MinDifficulty || difficulty > models.MaxDifficulty {
		return fmt.Errorf("%w: difficulty must be between %d and %d",
			ErrValidation, models.MinDifficulty, models.MaxDifficulty)
	}
	return nil
}
