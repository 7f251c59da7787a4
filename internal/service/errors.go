// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Pavel Avdeyev

package service

import "errors"

// Domain errors returned by services. Handlers translate these into HTTP
// status codes; everything not listed here maps to an internal error.
var (
	// ErrValidation marks requests with malformed or missing fields.
	ErrValidation = errors.New("validation failed")

	// ErrInvalidCredentials is returned on login when the email is unknown
	// or the password does not match. The two cases are deliberately
	// indistinguishable.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrEmailTaken is returned on registration when the email is already
	// in use.
	ErrEmailTaken = errors.New("email already registered")

	// ErrNotFound is returned when the requested entity does not exist or
	// belongs to another user.
	ErrNotFound = errors.New("not found")

	// ErrInvalidHierarchy is returned when a topic operation would create a
	// hierarchy deeper than two levels.
	ErrInvalidHierarchy = errors.New("subtopics cannot have children")

	// ErrStorage is returned when a file operation fails in a way that
	// prevents the request from completing.
	ErrStorage = errors.New("file storage failure")

	// ErrUnsupportedFileType is returned when an uploaded file's extension
	// is not in the allow-list.
	ErrUnsupportedFileType = errors.New("unsupported file type")

	// ErrInvalidAuthToken is returned when a bearer token fails
	// verification.
	ErrInvalidAuthToken = errors.New("invalid auth token")
)
