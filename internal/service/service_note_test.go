// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Pavel Avdeyev

package service

import (
	"context"
	"testing"
	"time"

	"github.com/avdeyev/studykeep/internal/logger"
	"github.com/avdeyev/studykeep/internal/store"
	"github.com/avdeyev/studykeep/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateNote_Success(t *testing.T) {
	notes := &mockNoteRepository{
		createNoteFn: func(ctx context.Context, note models.Note) (models.Note, error) {
			note.NoteID = 1
			return note, nil
		},
	}
	svc := NewNoteService(notes, &mockTopicRepository{}, logger.Nop())

	note, err := svc.CreateNote(context.Background(), 7, 42, &models.CreateNoteRequest{
		Title:   "  Photosynthesis  ",
		Content: "Light reactions happen in the thylakoid membrane.",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), note.NoteID)
	assert.Equal(t, "Photosynthesis", note.Title)
	assert.Equal(t, int64(7), note.UserID)
	assert.Equal(t, int64(42), note.TopicID)
}

func TestCreateNote_EmptyTitle(t *testing.T) {
	svc := NewNoteService(&mockNoteRepository{}, &mockTopicRepository{}, logger.Nop())

	_, err := svc.CreateNote(context.Background(), 7, 42, &models.CreateNoteRequest{Title: "   "})
	require.ErrorIs(t, err, ErrValidation)
}

func TestCreateNote_UnknownTopic(t *testing.T) {
	topics := &mockTopicRepository{
		getTopicFn: func(ctx context.Context, userID, topicID int64) (models.Topic, error) {
			return models.Topic{}, store.ErrTopicNotFound
		},
	}
	svc := NewNoteService(&mockNoteRepository{}, topics, logger.Nop())

	_, err := svc.CreateNote(context.Background(), 7, 42, &models.CreateNoteRequest{Title: "Photosynthesis"})
	require.ErrorIs(t, err, ErrNotFound)
}

func TestGetNote_NotFound(t *testing.T) {
	notes := &mockNoteRepository{
		getNoteFn: func(ctx context.Context, userID, noteID int64) (models.Note, error) {
			return models.Note{}, store.ErrNoteNotFound
		},
	}
	svc := NewNoteService(notes, &mockTopicRepository{}, logger.Nop())

	_, err := svc.GetNote(context.Background(), 7, 42)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateNote_EmptyTitleRejected(t *testing.T) {
	svc := NewNoteService(&mockNoteRepository{}, &mockTopicRepository{}, logger.Nop())

	title := "   "
	_, err := svc.UpdateNote(context.Background(), 7, 42, &models.UpdateNoteRequest{Title: &title})
	require.ErrorIs(t, err, ErrValidation)
}

func TestUpdateNote_ContentOnly(t *testing.T) {
	var gotUpdate models.UpdateNoteRequest
	notes := &mockNoteRepository{
		updateNoteFn: func(ctx context.Context, userID, noteID int64, update models.UpdateNoteRequest, updatedAt time.Time) (models.Note, error) {
			gotUpdate = update
			return models.Note{NoteID: noteID}, nil
		},
	}
	svc := NewNoteService(notes, &mockTopicRepository{}, logger.Nop())

	content := "Updated content."
	_, err := svc.UpdateNote(context.Background(), 7, 42, &models.UpdateNoteRequest{Content: &content})
	require.NoError(t, err)
	assert.Nil(t, gotUpdate.Title)
	require.NotNil(t, gotUpdate.Content)
	assert.Equal(t, content, *gotUpdate.Content)
}

func TestDeleteNote_NotFound(t *testing.T) {
	notes := &mockNoteRepository{
		deleteNoteFn: func(ctx context.Context, userID, noteID int64) error {
			return store.ErrNoteNotFound
		},
	}
	svc := NewNoteService(notes, &mockTopicRepository{}, logger.Nop())

	err := svc.DeleteNote(context.Background(), 7, 42)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestListNotesByTopic_ChecksTopicOwnership(t *testing.T) {
	topics := &mockTopicRepository{
		getTopicFn: func(ctx context.Context, userID, topicID int64) (models.Topic, error) {
			return models.Topic{}, store.ErrTopicNotFound
		},
	}
	listCalled := false
	notes := &mockNoteRepository{
		listNotesFn: func(ctx context.Context, userID, topicID int64) ([]models.Note, error) {
			listCalled = true
			return nil, nil
		},
	}
	svc := NewNoteService(notes, topics, logger.Nop())

	_, err := svc.ListNotesByTopic(context.Background(), 99, 42)
	require.ErrorIs(t, err, ErrNotFound)
	assert.False(t, listCalled)
}
