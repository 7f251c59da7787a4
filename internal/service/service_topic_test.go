// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Pavel Avdeyev

package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/avdeyev/studykeep/internal/logger"
	"github.com/avdeyev/studykeep/internal/store"
	"github.com/avdeyev/studykeep/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func int64Ptr(v int64) *int64 { return &v }

func TestCreateTopic_TopLevel(t *testing.T) {
	topics := &mockTopicRepository{
		createTopicFn: func(ctx context.Context, topic models.Topic) (models.Topic, error) {
			topic.TopicID = 1
			return topic, nil
		},
	}
	svc := NewTopicService(topics, &mockFileStorage{}, logger.Nop())

	topic, err := svc.CreateTopic(context.Background(), 7, &models.CreateTopicRequest{Name: "Biology"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), topic.TopicID)
	assert.Equal(t, int64(7), topic.UserID)
	assert.Nil(t, topic.ParentTopicID)
	assert.False(t, topic.CreatedAt.IsZero())
}

func TestCreateTopic_UnderTopLevelParent(t *testing.T) {
	topics := &mockTopicRepository{
		getTopicFn: func(ctx context.Context, userID, topicID int64) (models.Topic, error) {
			// Biology is a top-level topic
			return models.Topic{TopicID: topicID, UserID: userID, Name: "Biology"}, nil
		},
	}
	svc := NewTopicService(topics, &mockFileStorage{}, logger.Nop())

	topic, err := svc.CreateTopic(context.Background(), 7, &models.CreateTopicRequest{
		Name:          "Cells",
		ParentTopicID: int64Ptr(1),
	})
	require.NoError(t, err)
	require.NotNil(t, topic.ParentTopicID)
	assert.Equal(t, int64(1), *topic.ParentTopicID)
}

func TestCreateTopic_UnderSubtopicIsRejected(t *testing.T) {
	topics := &mockTopicRepository{
		getTopicFn: func(ctx context.Context, userID, topicID int64) (models.Topic, error) {
			// Cells already sits under Biology, a third level is not allowed
			return models.Topic{TopicID: topicID, UserID: userID, Name: "Cells", ParentTopicID: int64Ptr(1)}, nil
		},
	}
	svc := NewTopicService(topics, &mockFileStorage{}, logger.Nop())

	_, err := svc.CreateTopic(context.Background(), 7, &models.CreateTopicRequest{
		Name:          "Mitochondria",
		ParentTopicID: int64Ptr(2),
	})
	require.ErrorIs(t, err, ErrInvalidHierarchy)
}

func TestCreateTopic_UnknownParent(t *testing.T) {
	topics := &mockTopicRepository{
		getTopicFn: func(ctx context.Context, userID, topicID int64) (models.Topic, error) {
			return models.Topic{}, store.ErrTopicNotFound
		},
	}
	svc := NewTopicService(topics, &mockFileStorage{}, logger.Nop())

	_, err := svc.CreateTopic(context.Background(), 7, &models.CreateTopicRequest{
		Name:          "Cells",
		ParentTopicID: int64Ptr(999),
	})
	require.ErrorIs(t, err, ErrNotFound)
}

func TestCreateTopic_NameValidation(t *testing.T) {
	svc := NewTopicService(&mockTopicRepository{}, &mockFileStorage{}, logger.Nop())

	_, err := svc.CreateTopic(context.Background(), 7, &models.CreateTopicRequest{Name: "   "})
	require.ErrorIs(t, err, ErrValidation)

	_, err = svc.CreateTopic(context.Background(), 7, &models.CreateTopicRequest{
		Name: strings.Repeat("x", models.MaxTopicNameLength+1),
	})
	require.ErrorIs(t, err, ErrValidation)
}

func TestGetTopic_NotFoundForOtherUsers(t *testing.T) {
	topics := &mockTopicRepository{
		getTopicFn: func(ctx context.Context, userID, topicID int64) (models.Topic, error) {
			return models.Topic{}, store.ErrTopicNotFound
		},
	}
	svc := NewTopicService(topics, &mockFileStorage{}, logger.Nop())

	_, err := svc.GetTopic(context.Background(), 99, 42)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateTopic_NothingToUpdate(t *testing.T) {
	svc := NewTopicService(&mockTopicRepository{}, &mockFileStorage{}, logger.Nop())

	_, err := svc.UpdateTopic(context.Background(), 7, 42, &models.UpdateTopicRequest{})
	require.ErrorIs(t, err, ErrValidation)
}

func TestUpdateTopic_TrimsFields(t *testing.T) {
	var gotUpdate models.UpdateTopicRequest
	topics := &mockTopicRepository{
		updateTopicFn: func(ctx context.Context, userID, topicID int64, update models.UpdateTopicRequest, updatedAt time.Time) (models.Topic, error) {
			gotUpdate = update
			return models.Topic{TopicID: topicID}, nil
		},
	}
	svc := NewTopicService(topics, &mockFileStorage{}, logger.Nop())

	name := "  Genetics  "
	_, err := svc.UpdateTopic(context.Background(), 7, 42, &models.UpdateTopicRequest{Name: &name})
	require.NoError(t, err)
	require.NotNil(t, gotUpdate.Name)
	assert.Equal(t, "Genetics", *gotUpdate.Name)
}

func TestDeleteTopic_RemovesCascadedFiles(t *testing.T) {
	topics := &mockTopicRepository{
		deleteTopicCascadeFn: func(ctx context.Context, userID, topicID int64) (*int64, []string, error) {
			return int64Ptr(1), []string{"7/42/a.pdf", "7/42/b.pdf"}, nil
		},
	}
	files := &mockFileStorage{}
	svc := NewTopicService(topics, files, logger.Nop())

	result, err := svc.DeleteTopic(context.Background(), 7, 42)
	require.NoError(t, err)
	require.NotNil(t, result.ParentTopicID)
	assert.Equal(t, int64(1), *result.ParentTopicID)
	assert.Equal(t, []string{"7/42/a.pdf", "7/42/b.pdf"}, files.removedPaths)
}

func TestDeleteTopic_MissingFileDoesNotFailDelete(t *testing.T) {
	topics := &mockTopicRepository{
		deleteTopicCascadeFn: func(ctx context.Context, userID, topicID int64) (*int64, []string, error) {
			return nil, []string{"7/42/gone.pdf"}, nil
		},
	}
	files := &mockFileStorage{
		removeFn: func(relPath string) error { return store.ErrFileNotFound },
	}
	svc := NewTopicService(topics, files, logger.Nop())

	result, err := svc.DeleteTopic(context.Background(), 7, 42)
	require.NoError(t, err)
	assert.Nil(t, result.ParentTopicID)
}

func TestDeleteTopic_UnknownTopic(t *testing.T) {
	topics := &mockTopicRepository{
		deleteTopicCascadeFn: func(ctx context.Context, userID, topicID int64) (*int64, []string, error) {
			return nil, nil, store.ErrTopicNotFound
		},
	}
	svc := NewTopicService(topics, &mockFileStorage{}, logger.Nop())

	_, err := svc.DeleteTopic(context.Background(), 7, 42)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestListSubtopics_ChecksParentOwnership(t *testing.T) {
	topics := &mockTopicRepository{
		getTopicFn: func(ctx context.Context, userID, topicID int64) (models.Topic, error) {
			return models.Topic{}, store.ErrTopicNotFound
		},
	}
	svc := NewTopicService(topics, &mockFileStorage{}, logger.Nop())

	_, err := svc.ListSubtopics(context.Background(), 99, 42)
	require.ErrorIs(t, err, ErrNotFound)
}
