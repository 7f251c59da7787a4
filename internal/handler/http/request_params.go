// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Pavel Avdeyev

package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/avdeyev/studykeep/internal/utils"
	"github.com/go-chi/chi/v5"
)

var errNoUserInContext = errors.New("no authenticated user in request context")

// userIDFromRequest returns the authenticated user's ID placed in the
// context by the auth middleware.
func userIDFromRequest(r *http.Request) (int64, error) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		return 0, errNoUserInContext
	}
	return userID, nil
}

// pathID parses the named chi URL parameter as a positive int64.
func pathID(r *http.Request, name string) (int64, error) {
	raw := chi.URLParam(r, name)

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, errors.New("invalid " + name + " path parameter")
	}
	return id, nil
}
