// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Pavel Avdeyev

package service

import (
	"context"
	"io"

	"github.com/avdeyev/studykeep/models"
)

// AuthService registers users, verifies credentials and issues tokens.
type AuthService interface {
	Register(ctx context.Context, request *models.RegisterRequest) (*models.User, error)
	Login(ctx context.Context, request *models.LoginRequest) (*models.User, error)
	CreateToken(user *models.User) (*models.Token, error)
	ParseToken(tokenString string) (int64, error)
}

// TopicService manages the two-level topic hierarchy. Every operation is
// scoped to the calling user; touching another user's topic reports
// [ErrNotFound].
type TopicService interface {
	CreateTopic(ctx context.Context, userID int64, request *models.CreateTopicRequest) (*models.Topic, error)
	GetTopic(ctx context.Context, userID int64, topicID int64) (*models.Topic, error)
	UpdateTopic(ctx context.Context, userID int64, topicID int64, request *models.UpdateTopicRequest) (*models.Topic, error)
	DeleteTopic(ctx context.Context, userID int64, topicID int64) (*models.DeleteTopicResult, error)
	ListTopLevelTopics(ctx context.Context, userID int64) ([]models.Topic, error)
	ListSubtopics(ctx context.Context, userID int64, topicID int64) ([]models.Topic, error)
}

// NoteService manages notes attached to topics.
type NoteService interface {
	CreateNote(ctx context.Context, userID int64, topicID int64, request *models.CreateNoteRequest) (*models.Note, error)
	GetNote(ctx context.Context, userID int64, noteID int64) (*models.Note, error)
	UpdateNote(ctx context.Context, userID int64, noteID int64, request *models.UpdateNoteRequest) (*models.Note, error)
	DeleteNote(ctx context.Context, userID int64, noteID int64) error
	ListNotesByTopic(ctx context.Context, userID int64, topicID int64) ([]models.Note, error)
}

// FlashcardService manages flashcards attached to topics.
type FlashcardService interface {
	CreateFlashcard(ctx context.Context, userID int64, topicID int64, request *models.CreateFlashcardRequest) (*models.Flashcard, error)
	GetFlashcard(ctx context.Context, userID int64, flashcardID int64) (*models.Flashcard, error)
	UpdateFlashcard(ctx context.Context, userID int64, flashcardID int64, request *models.UpdateFlashcardRequest) (*models.Flashcard, error)
	DeleteFlashcard(ctx context.Context, userID int64, flashcardID int64) error
	ListFlashcardsByTopic(ctx context.Context, userID int64, topicID int64) ([]models.Flashcard, error)
}

// ResourceService manages link and PDF resources, including the stored
// files behind PDF resources.
type ResourceService interface {
	CreateLinkResource(ctx context.Context, userID int64, topicID int64, request *models.CreateLinkResourceRequest) (*models.Resource, error)
	CreateFileResource(ctx context.Context, userID int64, topicID int64, title string, filename string, file io.Reader) (*models.Resource, error)
	GetResource(ctx context.Context, userID int64, resourceID int64) (*models.Resource, error)
	UpdateResource(ctx context.Context, userID int64, resourceID int64, request *models.UpdateResourceRequest) (*models.Resource, error)
	DeleteResource(ctx context.Context, userID int64, resourceID int64) error
	DownloadResource(ctx context.Context, userID int64, resourceID int64) (*models.Resource, io.ReadCloser, error)
	ListResourcesByTopic(ctx context.Context, userID int64, topicID int64) ([]models.Resource, error)
}
