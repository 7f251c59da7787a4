// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Pavel Avdeyev

package http

import (
	"errors"
	"net/http"

	"github.com/avdeyev/studykeep/internal/logger"
	"github.com/avdeyev/studykeep/internal/service"
)

var errorStatusMap = map[error]int{
	service.ErrValidation:          http.StatusBadRequest,
	service.ErrUnsupportedFileType: http.StatusBadRequest,
	service.ErrInvalidCredentials:  http.StatusUnauthorized,
	service.ErrInvalidAuthToken:    http.StatusUnauthorized,
	service.ErrNotFound:            http.StatusNotFound,
	service.ErrEmailTaken:          http.StatusConflict,
	service.ErrInvalidHierarchy:    http.StatusUnprocessableEntity,
	service.ErrStorage:             http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// respondError translates a service error into an HTTP status. Internal
// errors are logged in full but reported to the client only by status text,
// everything else surfaces its message.
func respondError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)

	status := statusFromError(err)
	if status == http.StatusInternalServerError {
		log.Err(err).Msg("request failed")
		http.Error(w, http.StatusText(status), status)
		return
	}

	log.Debug().Err(err).Int("status", status).Msg("request rejected")
	http.Error(w, err.Error(), status)
}
