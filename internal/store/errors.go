// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Pavel Avdeyev

package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
//
// Every "not found" sentinel covers both genuinely absent rows and rows owned
// by a different user; repositories never distinguish the two, so callers
// cannot leak the existence of other users' data.
var (
	// ErrEmailAlreadyExists is returned when an attempt to register a new user
	// fails because a user with the same email already exists in the database.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrNoUserWasFound is returned when a query expected to match at least one
	// user record produces an empty result set.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrTopicNotFound is returned when a query or mutation targets a topic
	// (identified by topic_id and user_id) that does not exist.
	ErrTopicNotFound = errors.New("topic was not found")

	// ErrNoteNotFound is returned when a query or mutation targets a note
	// (identified by note_id and user_id) that does not exist.
	ErrNoteNotFound = errors.New("note was not found")

	// ErrFlashcardNotFound is returned when a query or mutation targets a
	// flashcard (identified by flashcard_id and user_id) that does not exist.
	ErrFlashcardNotFound = errors.New("flashcard was not found")

	// ErrResourceNotFound is returned when a query or mutation targets a
	// resource (identified by resource_id and user_id) that does not exist.
	ErrResourceNotFound = errors.New("resource was not found")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. invalid argument count or unsupported type).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommittingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommittingTransaction = errors.New("failed to commit transaction")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrScanningRow is returned when scanning column values from a single
	// result row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")
)
