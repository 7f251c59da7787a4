// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Pavel Avdeyev

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/avdeyev/studykeep/internal/logger"
	"github.com/avdeyev/studykeep/internal/store"
	"github.com/avdeyev/studykeep/models"
)

type topicService struct {
	topics store.TopicRepository
	files  store.FileStorage
	logger *logger.Logger
}

// NewTopicService constructs a [TopicService]. The file storage is needed
// for cascade deletes, which must remove the files behind every PDF
// resource in the deleted subtree.
func NewTopicService(topics store.TopicRepository, files store.FileStorage, logger *logger.Logger) TopicService {
	logger.Debug().Msg("creating topic service")

	return &topicService{
		topics: topics,
		files:  files,
		logger: logger,
	}
}

// CreateTopic creates a topic for the given user. When the request carries a
// parent ID the parent must exist, belong to the same user and itself be a
// top-level topic; a parent that is already a subtopic yields
// [ErrInvalidHierarchy].
func (s *topicService) CreateTopic(ctx context.Context, userID int64, request *models.CreateTopicRequest) (*models.Topic, error) {
	if request == nil {
		return nil, fmt.Errorf("%w: empty request", ErrValidation)
	}

	name := strings.TrimSpace(request.Name)
	if err := validateTopicName(name); err != nil {
		return nil, err
	}

	if request.ParentTopicID != nil {
		parent, err := s.topics.GetTopic(ctx, userID, *request.ParentTopicID)
		if err != nil {
			if errors.Is(err, store.ErrTopicNotFound) {
				return nil, fmt.Errorf("%w: parent topic", ErrNotFound)
			}
			return nil, fmt.Errorf("error checking parent topic: %w", err)
		}
		if parent.IsSubtopic() {
			return nil, ErrInvalidHierarchy
		}
	}

	now := time.Now()
	topic := models.Topic{
		Name:          name,
		Description:   strings.TrimSpace(request.Description),
		UserID:        userID,
		ParentTopicID: request.ParentTopicID,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	created, err := s.topics.CreateTopic(ctx, topic)
	if err != nil {
		return nil, fmt.Errorf("error creating topic: %w", err)
	}

	logger.FromContext(ctx).Info().
		Int64("topic_id", created.TopicID).
		Bool("subtopic", created.IsSubtopic()).
		Msg("topic created")
	return &created, nil
}

// GetTopic returns the topic when it exists and belongs to the user.
func (s *topicService) GetTopic(ctx context.Context, userID int64, topicID int64) (*models.Topic, error) {
	topic, err := s.topics.GetTopic(ctx, userID, topicID)
	if err != nil {
		if errors.Is(err, store.ErrTopicNotFound) {
			return nil, fmt.Errorf("%w: topic", ErrNotFound)
		}
		return nil, fmt.Errorf("error getting topic: %w", err)
	}

	return &topic, nil
}

// UpdateTopic applies the non-nil fields of the request. The topic's place
// in the hierarchy cannot be changed after creation.
func (s *topicService) UpdateTopic(ctx context.Context, userID int64, topicID int64, request *models.UpdateTopicRequest) (*models.Topic, error) {
	if request == nil || (request.Name == nil && request.Description == nil) {
		return nil, fmt.Errorf("%w: nothing to update", ErrValidation)
	}

	if request.Name != nil {
		name := strings.TrimSpace(*request.Name)
		if err := validateTopicName(name); err != nil {
			return nil, err
		}
		request.Name = &name
	}
	if request.Description != nil {
		description := strings.TrimSpace(*request.Description)
		request.Description = &description
	}

	updated, err := s.topics.UpdateTopic(ctx, userID, topicID, *request, time.Now())
	if err != nil {
		if errors.Is(err, store.ErrTopicNotFound) {
			return nil, fmt.Errorf("%w: topic", ErrNotFound)
		}
		return nil, fmt.Errorf("error updating topic: %w", err)
	}

	return &updated, nil
}

// DeleteTopic removes the topic together with its subtopics and all notes,
// flashcards and resources attached to any of them. Database rows go in one
// transaction; the files behind deleted PDF resources are removed afterwards
// on a best-effort basis, so a missing file never fails the delete. Returns
// the parent topic ID, nil for a top-level topic.
func (s *topicService) DeleteTopic(ctx context.Context, userID int64, topicID int64) (*models.DeleteTopicResult, error) {
	parentTopicID, filePaths, err := s.topics.DeleteTopicCascade(ctx, userID, topicID)
	if err != nil {
		if errors.Is(err, store.ErrTopicNotFound) {
			return nil, fmt.Errorf("%w: topic", ErrNotFound)
		}
		return nil, fmt.Errorf("error deleting topic: %w", err)
	}

	log := logger.FromContext(ctx)
	for _, filePath := range filePaths {
		if err := s.files.Remove(filePath); err != nil && !errors.Is(err, store.ErrFileNotFound) {
			log.Warn().Err(err).Str("path", filePath).Msg("failed to remove file during topic delete")
		}
	}

	log.Info().
		Int64("topic_id", topicID).
		Int("files_removed", len(filePaths)).
		Msg("topic deleted")
	return &models.DeleteTopicResult{ParentTopicID: parentTopicID}, nil
}

// ListTopLevelTopics returns the user's top-level topics, newest first.
func (s *topicService) ListTopLevelTopics(ctx context.Context, userID int64) ([]models.Topic, error) {
	topics, err := s.topics.ListTopLevelTopics(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("error listing topics: %w", err)
	}

	return topics, nil
}

// ListSubtopics returns the children of the given topic, oldest first.
// The parent must exist and belong to the user.
func (s *topicService) ListSubtopics(ctx context.Context, userID int64, topicID int64) ([]models.Topic, error) {
	if _, err := s.topics.GetTopic(ctx, userID, topicID); err != nil {
		if errors.Is(err, store.ErrTopicNotFound) {
			return nil, fmt.Errorf("%w: topic", ErrNotFound)
		}
		return nil, fmt.Errorf("error checking topic: %w", err)
	}

	subtopics, err := s.topics.ListSubtopics(ctx, userID, topicID)
	if err != nil {
		return nil, fmt.Errorf("error listing subtopics: %w", err)
	}

	return subtopics, nil
}

func validateTopicName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: topic name is required", ErrValidation)
	}
	if utf8.RuneCountInString(name) > models.MaxTopicNameLength {
		return fmt.Errorf("%w: topic name exceeds %d characters", ErrValidation, models.MaxTopicNameLength)
	}
	return nil
}
