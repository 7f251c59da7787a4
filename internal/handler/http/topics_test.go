// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Pavel Avdeyev

package http

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"testing"

	"github.com/avdeyev/studykeep/internal/service"
	"github.com/avdeyev/studykeep/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateTopicHandler_Success(t *testing.T) {
	topics := &mockTopicService{
		createTopicFn: func(ctx context.Context, userID int64, request *models.CreateTopicRequest) (*models.Topic, error) {
			require.Equal(t, int64(7), userID)
			return &models.Topic{TopicID: 1, Name: request.Name, UserID: userID}, nil
		},
	}
	h := newTestHandler(t, &service.Services{TopicService: topics})

	body := jsonBody(t, models.CreateTopicRequest{Name: "Biology"})
	rr := serve(h, authedRequest(http.MethodPost, "/api/topics", body))

	assert.Equal(t, http.StatusCreated, rr.Code)

	var topic models.Topic
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &topic))
	assert.Equal(t, "Biology", topic.Name)
}

func TestCreateTopicHandler_InvalidHierarchy(t *testing.T) {
	topics := &mockTopicService{
		createTopicFn: func(ctx context.Context, userID int64, request *models.CreateTopicRequest) (*models.Topic, error) {
			return nil, service.ErrInvalidHierarchy
		},
	}
	h := newTestHandler(t, &service.Services{TopicService: topics})

	parentID := int64(2)
	body := jsonBody(t, models.CreateTopicRequest{Name: "Too deep", ParentTopicID: &parentID})
	rr := serve(h, authedRequest(http.MethodPost, "/api/topics", body))

	assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)
}

func TestGetTopicHandler_NotFound(t *testing.T) {
	topics := &mockTopicService{
		getTopicFn: func(ctx context.Context, userID, topicID int64) (*models.Topic, error) {
			return nil, fmt.Errorf("%w: topic", service.ErrNotFound)
		},
	}
	h := newTestHandler(t, &service.Services{TopicService: topics})

	rr := serve(h, authedRequest(http.MethodGet, "/api/topics/42", nil))
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestGetTopicHandler_InvalidID(t *testing.T) {
	h := newTestHandler(t, nil)

	for _, target := range []string{"/api/topics/abc", "/api/topics/0", "/api/topics/-1"} {
		rr := serve(h, authedRequest(http.MethodGet, target, nil))
		assert.Equal(t, http.StatusBadRequest, rr.Code, "target %s", target)
	}
}

func TestUpdateTopicHandler_PatchAndPut(t *testing.T) {
	topics := &mockTopicService{
		updateTopicFn: func(ctx context.Context, userID, topicID int64, request *models.UpdateTopicRequest) (*models.Topic, error) {
			return &models.Topic{TopicID: topicID, Name: *request.Name, UserID: userID}, nil
		},
	}
	h := newTestHandler(t, &service.Services{TopicService: topics})

	for _, method := range []string{http.MethodPut, http.MethodPatch} {
		name := "Genetics"
		body := jsonBody(t, models.UpdateTopicRequest{Name: &name})
		rr := serve(h, authedRequest(method, "/api/topics/42", body))
		assert.Equal(t, http.StatusOK, rr.Code, "method %s", method)
	}
}

func TestDeleteTopicHandler_ReturnsParentID(t *testing.T) {
	parentID := int64(1)
	topics := &mockTopicService{
		deleteTopicFn: func(ctx context.Context, userID, topicID int64) (*models.DeleteTopicResult, error) {
			return &models.DeleteTopicResult{ParentTopicID: &parentID}, nil
		},
	}
	h := newTestHandler(t, &service.Services{TopicService: topics})

	rr := serve(h, authedRequest(http.MethodDelete, "/api/topics/42", nil))
	assert.Equal(t, http.StatusOK, rr.Code)

	var result models.DeleteTopicResult
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &result))
	require.NotNil(t, result.ParentTopicID)
	assert.Equal(t, int64(1), *result.ParentTopicID)
}

func TestListTopLevelTopicsHandler(t *testing.T) {
	topics := &mockTopicService{
		listTopLevelFn: func(ctx context.Context, userID int64) ([]models.Topic, error) {
			return []models.Topic{
				{TopicID: 2, Name: "Chemistry", UserID: userID},
				{TopicID: 1, Name: "Biology", UserID: userID},
			}, nil
		},
	}
	h := newTestHandler(t, &service.Services{TopicService: topics})

	rr := serve(h, authedRequest(http.MethodGet, "/api/topics", nil))
	assert.Equal(t, http.StatusOK, rr.Code)

	var listed []models.Topic
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &listed))
	require.Len(t, listed, 2)
	assert.Equal(t, "Chemistry", listed[0].Name)
}

func TestListSubtopicsHandler(t *testing.T) {
	topics := &mockTopicService{
		listSubFn: func(ctx context.Context, userID, topicID int64) ([]models.Topic, error) {
			parent := topicID
			return []models.Topic{{TopicID: 5, Name: "Cells", UserID: userID, ParentTopicID: &parent}}, nil
		},
	}
	h := newTestHandler(t, &service.Services{TopicService: topics})

	rr := serve(h, authedRequest(http.MethodGet, "/api/topics/42/subtopics", nil))
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "Cells")
}

func TestUpdateTopicHandler_InvalidJSON(t *testing.T) {
	h := newTestHandler(t, nil)

	rr := serve(h, authedRequest(http.MethodPut, "/api/topics/42", strings.NewReader("{broken")))
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}
