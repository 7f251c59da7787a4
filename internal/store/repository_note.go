// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Pavel Avdeyev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/avdeyev/studykeep/internal/logger"
	"github.com/avdeyev/studykeep/models"
)

// noteRepository is the SQL-backed implementation of [NoteRepository].
type noteRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewNoteRepository constructs a [NoteRepository] backed by the provided
// database connection and logger.
func NewNoteRepository(db *DB, logger *logger.Logger) NoteRepository {
	logger.Debug().Msg("creating note repository")
	return &noteRepository{
		db:     db,
		logger: logger,
	}
}

func scanNote(row rowScanner) (models.Note, error) {
	var note models.Note

	err := row.Scan(
		&note.NoteID,
		&note.Title,
		&note.Content,
		&note.IsAIGenerated,
		&note.UserID,
		&note.TopicID,
		&note.CreatedAt,
		&note.UpdatedAt,
	)
	if err != nil {
		return models.Note{}, err
	}

	return note, nil
}

// CreateNote persists a new note row and returns the canonical database
// representation with the server-assigned NoteID.
func (r *noteRepository) CreateNote(ctx context.Context, note models.Note) (models.Note, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertNoteQuery(note)
	if err != nil {
		log.Err(err).Str("func", "*noteRepository.CreateNote").Msg("failed to build insert query")
		return models.Note{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	created, err := scanNote(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		log.Err(err).
			Str("func", "*noteRepository.CreateNote").
			Int64("user_id", note.UserID).
			Int64("topic_id", note.TopicID).
			Msg("error inserting note")
		return models.Note{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return created, nil
}

// GetNote retrieves a single note scoped by (noteID, userID).
// Returns [ErrNoteNotFound] when no such row exists for this owner.
func (r *noteRepository) GetNote(ctx context.Context, userID, noteID int64) (models.Note, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectNoteQuery(userID, noteID)
	if err != nil {
		log.Err(err).Str("func", "*noteRepository.GetNote").Msg("failed to build select query")
		return models.Note{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	note, err := scanNote(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Note{}, ErrNoteNotFound
		}

		log.Err(err).
			Str("func", "*noteRepository.GetNote").
			Int64("user_id", userID).
			Int64("note_id", noteID).
			Msg("error scanning note row")
		return models.Note{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return note, nil
}

// UpdateNote applies a partial update scoped by (noteID, userID) and returns
// the updated row. Returns [ErrNoteNotFound] when no row matches.
func (r *noteRepository) UpdateNote(ctx context.Context, userID, noteID int64, update models.UpdateNoteRequest, updatedAt time.Time) (models.Note, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateNoteQuery(userID, noteID, update, updatedAt)
	if err != nil {
		log.Err(err).Str("func", "*noteRepository.UpdateNote").Msg("failed to build update query")
		return models.Note{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	note, err := scanNote(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Note{}, ErrNoteNotFound
		}

		log.Err(err).
			Str("func", "*noteRepository.UpdateNote").
			Int64("user_id", userID).
			Int64("note_id", noteID).
			Msg("error executing update")
		return models.Note{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return note, nil
}

// DeleteNote removes the note scoped by (noteID, userID).
// Returns [ErrNoteNotFound] when no row matches.
func (r *noteRepository) DeleteNote(ctx context.Context, userID, noteID int64) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteNoteQuery(userID, noteID)
	if err != nil {
		log.Err(err).Str("func", "*noteRepository.DeleteNote").Msg("failed to build delete query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "*noteRepository.DeleteNote").
			Int64("user_id", userID).
			Int64("note_id", noteID).
			Msg("error executing delete")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrNoteNotFound
	}

	return nil
}

// ListNotesByTopic returns every note attached to the given topic owned by
// userID, newest first.
func (r *noteRepository) ListNotesByTopic(ctx context.Context, userID, topicID int64) ([]models.Note, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListNotesByTopicQuery(userID, topicID)
	if err != nil {
		log.Err(err).Str("func", "*noteRepository.ListNotesByTopic").Msg("failed to build select query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "*noteRepository.ListNotesByTopic").
			Int64("user_id", userID).
			Int64("topic_id", topicID).
			Msg("error executing notes query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	notes := make([]models.Note, 0, 16)
	for rows.Next() {
		note, err := scanNote(rows)
		if err != nil {
			log.Err(err).Str("func", "*noteRepository.ListNotesByTopic").Msg("error scanning note row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		notes = append(notes, note)
	}
	if err := rows.Err(); err != nil {
		log.Err(err).Str("func", "*noteRepository.ListNotesByTopic").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return notes, nil
}
