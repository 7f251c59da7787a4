// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Pavel Avdeyev

package http

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/avdeyev/studykeep/internal/service"
	"github.com/stretchr/testify/assert"
)

func TestStatusFromError_TableTest(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"validation", service.ErrValidation, http.StatusBadRequest},
		{"unsupported file type", service.ErrUnsupportedFileType, http.StatusBadRequest},
		{"invalid credentials", service.ErrInvalidCredentials, http.StatusUnauthorized},
		{"invalid auth token", service.ErrInvalidAuthToken, http.StatusUnauthorized},
		{"not found", service.ErrNotFound, http.StatusNotFound},
		{"email taken", service.ErrEmailTaken, http.StatusConflict},
		{"invalid hierarchy", service.ErrInvalidHierarchy, http.StatusUnprocessableEntity},
		{"storage", service.ErrStorage, http.StatusInternalServerError},
		{"unknown error", errors.New("boom"), http.StatusInternalServerError},
		{"wrapped not found", fmt.Errorf("%w: topic", service.ErrNotFound), http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantStatus, statusFromError(tt.err))
		})
	}
}

func TestRespondError_HidesInternalDetails(t *testing.T) {
	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/test", nil)

	respondError(rr, req, errors.New("pq: connection refused on 10.0.0.5"))

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.NotContains(t, rr.Body.String(), "10.0.0.5")
	assert.Equal(t, http.StatusText(http.StatusInternalServerError), strings.TrimSpace(rr.Body.String()))
}

func TestRespondError_SurfacesClientErrors(t *testing.T) {
	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/test", nil)

	respondError(rr, req, fmt.Errorf("%w: topic name is required", service.ErrValidation))

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "topic name is required")
}
