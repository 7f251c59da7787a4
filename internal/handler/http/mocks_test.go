// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Pavel Avdeyev

package http

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/avdeyev/studykeep/internal/config"
	"github.com/avdeyev/studykeep/internal/logger"
	"github.com/avdeyev/studykeep/internal/service"
	"github.com/avdeyev/studykeep/models"
)

// Mock: service.AuthService

type mockAuthService struct {
	registerFn    func(ctx context.Context, request *models.RegisterRequest) (*models.User, error)
	loginFn       func(ctx context.Context, request *models.LoginRequest) (*models.User, error)
	createTokenFn func(user *models.User) (*models.Token, error)
	parseTokenFn  func(tokenString string) (int64, error)
}

func (m *mockAuthService) Register(ctx context.Context, request *models.RegisterRequest) (*models.User, error) {
	if m.registerFn != nil {
		return m.registerFn(ctx, request)
	}
	return &models.User{UserID: 7, Username: request.Username, Email: request.Email}, nil
}

func (m *mockAuthService) Login(ctx context.Context, request *models.LoginRequest) (*models.User, error) {
	if m.loginFn != nil {
		return m.loginFn(ctx, request)
	}
	return &models.User{UserID: 7, Email: request.Email}, nil
}

func (m *mockAuthService) CreateToken(user *models.User) (*models.Token, error) {
	if m.createTokenFn != nil {
		return m.createTokenFn(user)
	}
	return &models.Token{SignedString: "signed.jwt.token"}, nil
}

func (m *mockAuthService) ParseToken(tokenString string) (int64, error) {
	if m.parseTokenFn != nil {
		return m.parseTokenFn(tokenString)
	}
	return 7, nil
}

// Mock: service.TopicService

type mockTopicService struct {
	createTopicFn  func(ctx context.Context, userID int64, request *models.CreateTopicRequest) (*models.Topic, error)
	getTopicFn     func(ctx context.Context, userID, topicID int64) (*models.Topic, error)
	updateTopicFn  func(ctx context.Context, userID, topicID int64, request *models.UpdateTopicRequest) (*models.Topic, error)
	deleteTopicFn  func(ctx context.Context, userID, topicID int64) (*models.DeleteTopicResult, error)
	listTopLevelFn func(ctx context.Context, userID int64) ([]models.Topic, error)
	listSubFn      func(ctx context.Context, userID, topicID int64) ([]models.Topic, error)
}

func (m *mockTopicService) CreateTopic(ctx context.Context, userID int64, request *models.CreateTopicRequest) (*models.Topic, error) {
	if m.createTopicFn != nil {
		return m.createTopicFn(ctx, userID, request)
	}
	return &models.Topic{TopicID: 1, Name: request.Name, UserID: userID}, nil
}

func (m *mockTopicService) GetTopic(ctx context.Context, userID, topicID int64) (*models.Topic, error) {
	if m.getTopicFn != nil {
		return m.getTopicFn(ctx, userID, topicID)
	}
	return &models.Topic{TopicID: topicID, UserID: userID}, nil
}

func (m *mockTopicService) UpdateTopic(ctx context.Context, userID, topicID int64, request *models.UpdateTopicRequest) (*models.Topic, error) {
	if m.updateTopicFn != nil {
		return m.updateTopicFn(ctx, userID, topicID, request)
	}
	return &models.Topic{TopicID: topicID, UserID: userID}, nil
}

func (m *mockTopicService) DeleteTopic(ctx context.Context, userID, topicID int64) (*models.DeleteTopicResult, error) {
	if m.deleteTopicFn != nil {
		return m.deleteTopicFn(ctx, userID, topicID)
	}
	return &models.DeleteTopicResult{}, nil
}

func (m *mockTopicService) ListTopLevelTopics(ctx context.Context, userID int64) ([]models.Topic, error) {
	if m.listTopLevelFn != nil {
		return m.listTopLevelFn(ctx, userID)
	}
	return nil, nil
}

func (m *mockTopicService) ListSubtopics(ctx context.Context, userID, topicID int64) ([]models.Topic, error) {
	if m.listSubFn != nil {
		return m.listSubFn(ctx, userID, topicID)
	}
	return nil, nil
}

// Mock: service.NoteService

type mockNoteService struct {
	createNoteFn func(ctx context.Context, userID, topicID int64, request *models.CreateNoteRequest) (*models.Note, error)
	getNoteFn    func(ctx context.Context, userID, noteID int64) (*models.Note, error)
	updateNoteFn func(ctx context.Context, userID, noteID int64, request *models.UpdateNoteRequest) (*models.Note, error)
	deleteNoteFn func(ctx context.Context, userID, noteID int64) error
	listNotesFn  func(ctx context.Context, userID, topicID int64) ([]models.Note, error)
}

func (m *mockNoteService) CreateNote(ctx context.Context, userID, topicID int64, request *models.CreateNoteRequest) (*models.Note, error) {
	if m.createNoteFn != nil {
		return m.createNoteFn(ctx, userID, topicID, request)
	}
	return &models.Note{NoteID: 1, Title: request.Title, UserID: userID, TopicID: topicID}, nil
}

func (m *mockNoteService) GetNote(ctx context.Context, userID, noteID int64) (*models.Note, error) {
	if m.getNoteFn != nil {
		return m.getNoteFn(ctx, userID, noteID)
	}
	return &models.Note{NoteID: noteID, UserID: userID}, nil
}

func (m *mockNoteService) UpdateNote(ctx context.Context, userID, noteID int64, request *models.UpdateNoteRequest) (*models.Note, error) {
	if m.updateNoteFn != nil {
		return m.updateNoteFn(ctx, userID, noteID, request)
	}
	return &models.Note{NoteID: noteID, UserID: userID}, nil
}

func (m *mockNoteService) DeleteNote(ctx context.Context, userID, noteID int64) error {
	if m.deleteNoteFn != nil {
		return m.deleteNoteFn(ctx, userID, noteID)
	}
	return nil
}

func (m *mockNoteService) ListNotesByTopic(ctx context.Context, userID, topicID int64) ([]models.Note, error) {
	if m.listNotesFn != nil {
		return m.listNotesFn(ctx, userID, topicID)
	}
	return nil, nil
}

// Mock: service.FlashcardService

type mockFlashcardService struct {
	createFlashcardFn func(ctx context.Context, userID, topicID int64, request *models.CreateFlashcardRequest) (*models.Flashcard, error)
	getFlashcardFn    func(ctx context.Context, userID, flashcardID int64) (*models.Flashcard, error)
	updateFlashcardFn func(ctx context.Context, userID, flashcardID int64, request *models.UpdateFlashcardRequest) (*models.Flashcard, error)
	deleteFlashcardFn func(ctx context.Context, userID, flashcardID int64) error
	listFlashcardsFn  func(ctx context.Context, userID, topicID int64) ([]models.Flashcard, error)
}

func (m *mockFlashcardService) CreateFlashcard(ctx context.Context, userID, topicID int64, request *models.CreateFlashcardRequest) (*models.Flashcard, error) {
	if m.createFlashcardFn != nil {
		return m.createFlashcardFn(ctx, userID, topicID, request)
	}
	return &models.Flashcard{FlashcardID: 1, Question: request.Question, UserID: userID, TopicID: topicID}, nil
}

func (m *mockFlashcardService) GetFlashcard(ctx context.Context, userID, flashcardID int64) (*models.Flashcard, error) {
	if m.getFlashcardFn != nil {
		return m.getFlashcardFn(ctx, userID, flashcardID)
	}
	return &models.Flashcard{FlashcardID: flashcardID, UserID: userID}, nil
}

func (m *mockFlashcardService) UpdateFlashcard(ctx context.Context, userID, flashcardID int64, request *models.UpdateFlashcardRequest) (*models.Flashcard, error) {
	if m.updateFlashcardFn != nil {
		return m.updateFlashcardFn(ctx, userID, flashcardID, request)
	}
	return &models.Flashcard{FlashcardID: flashcardID, UserID: userID}, nil
}

func (m *mockFlashcardService) DeleteFlashcard(ctx context.Context, userID, flashcardID int64) error {
	if m.deleteFlashcardFn != nil {
		return m.deleteFlashcardFn(ctx, userID, flashcardID)
	}
	return nil
}

func (m *mockFlashcardService) ListFlashcardsByTopic(ctx context.Context, userID, topicID int64) ([]models.Flashcard, error) {
	if m.listFlashcardsFn != nil {
		return m.listFlashcardsFn(ctx, userID, topicID)
	}
	return nil, nil
}

// Mock: service.ResourceService

type mockResourceService struct {
	createLinkFn  func(ctx context.Context, userID, topicID int64, request *models.CreateLinkResourceRequest) (*models.Resource, error)
	createFileFn  func(ctx context.Context, userID, topicID int64, title, filename string, file io.Reader) (*models.Resource, error)
	getResourceFn func(ctx context.Context, userID, resourceID int64) (*models.Resource, error)
	updateFn      func(ctx context.Context, userID, resourceID int64, request *models.UpdateResourceRequest) (*models.Resource, error)
	deleteFn      func(ctx context.Context, userID, resourceID int64) error
	downloadFn    func(ctx context.Context, userID, resourceID int64) (*models.Resource, io.ReadCloser, error)
	listByTopicFn func(ctx context.Context, userID, topicID int64) ([]models.Resource, error)
}

func (m *mockResourceService) CreateLinkResource(ctx context.Context, userID, topicID int64, request *models.CreateLinkResourceRequest) (*models.Resource, error) {
	if m.createLinkFn != nil {
		return m.createLinkFn(ctx, userID, topicID, request)
	}
	return &models.Resource{ResourceID: 1, Title: request.Title, Type: models.ResourceTypeLink, URL: request.URL}, nil
}

func (m *mockResourceService) CreateFileResource(ctx context.Context, userID, topicID int64, title, filename string, file io.Reader) (*models.Resource, error) {
	if m.createFileFn != nil {
		return m.createFileFn(ctx, userID, topicID, title, filename, file)
	}
	written, err := io.Copy(io.Discard, file)
	if err != nil {
		return nil, err
	}
	return &models.Resource{
		ResourceID:       1,
		Title:            title,
		Type:             models.ResourceTypePDF,
		FileSize:         written,
		OriginalFilename: filename,
	}, nil
}

func (m *mockResourceService) GetResource(ctx context.Context, userID, resourceID int64) (*models.Resource, error) {
	if m.getResourceFn != nil {
		return m.getResourceFn(ctx, userID, resourceID)
	}
	return &models.Resource{ResourceID: resourceID, UserID: userID}, nil
}

func (m *mockResourceService) UpdateResource(ctx context.Context, userID, resourceID int64, request *models.UpdateResourceRequest) (*models.Resource, error) {
	if m.updateFn != nil {
		return m.updateFn(ctx, userID, resourceID, request)
	}
	return &models.Resource{ResourceID: resourceID, UserID: userID}, nil
}

func (m *mockResourceService) DeleteResource(ctx context.Context, userID, resourceID int64) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, userID, resourceID)
	}
	return nil
}

func (m *mockResourceService) DownloadResource(ctx context.Context, userID, resourceID int64) (*models.Resource, io.ReadCloser, error) {
	if m.downloadFn != nil {
		return m.downloadFn(ctx, userID, resourceID)
	}
	return nil, nil, errors.New("download not configured")
}

func (m *mockResourceService) ListResourcesByTopic(ctx context.Context, userID, topicID int64) ([]models.Resource, error) {
	if m.listByTopicFn != nil {
		return m.listByTopicFn(ctx, userID, topicID)
	}
	return nil, nil
}

// Mock: DBPinger

type mockDBPinger struct {
	pingFn func(ctx context.Context) error
}

func (m *mockDBPinger) PingContext(ctx context.Context) error {
	if m.pingFn != nil {
		return m.pingFn(ctx)
	}
	return nil
}

// Helpers

func testHandlerUploadConfigs() config.Uploads {
	return config.Uploads{
		Dir:               "uploads",
		MaxUploadSize:     1 << 20,
		AllowedExtensions: []string{"pdf"},
	}
}

// newTestHandler builds a Handler over mock services. Nil mocks default to
// permissive implementations with user ID 7.
func newTestHandler(t *testing.T, services *service.Services) *Handler {
	t.Helper()

	if services == nil {
		services = &service.Services{}
	}
	if services.AuthService == nil {
		services.AuthService = &mockAuthService{}
	}
	if services.TopicService == nil {
		services.TopicService = &mockTopicService{}
	}
	if services.NoteService == nil {
		services.NoteService = &mockNoteService{}
	}
	if services.FlashcardService == nil {
		services.FlashcardService = &mockFlashcardService{}
	}
	if services.ResourceService == nil {
		services.ResourceService = &mockResourceService{}
	}

	return NewHandler(services, &mockDBPinger{}, testHandlerUploadConfigs(), logger.Nop())
}

// serve routes the request through the full router, including middlewares.
func serve(h *Handler, req *http.Request) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	h.Init().ServeHTTP(rr, req)
	return rr
}

// authedRequest builds a request carrying a bearer token accepted by the
// default auth mock.
func authedRequest(method, target string, body io.Reader) *http.Request {
	req := httptest.NewRequest(method, target, body)
	req.Header.Set("Authorization", "Bearer test-token")
	return req
}
