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

// flashcardRepository is the SQL-backed implementation of
// [FlashcardRepository]. It mirrors the note repository's shape; the only
// extra columns are the difficulty rating and the two optional review
// timestamps.
type flashcardRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewFlashcardRepository constructs a [FlashcardRepository] backed by the
// provided database connection and logger.
func NewFlashcardRepository(db *DB, logger *logger.Logger) FlashcardRepository {
	logger.Debug().Msg("creating flashcard repository")
	return &flashcardRepository{
		db:     db,
		logger: logger,
	}
}

func scanFlashcard(row rowScanner) (models.Flashcard, error) {
	var card models.Flashcard

	err := row.Scan(
		&card.FlashcardID,
		&card.Question,
		&card.Answer,
		&card.Difficulty,
		&card.LastReviewedAt,
		&card.NextReviewAt,
		&card.UserID,
		&card.TopicID,
		&card.CreatedAt,
		&card.UpdatedAt,
	)
	if err != nil {
		return models.Flashcard{}, err
	}

	return card, nil
}

// CreateFlashcard persists a new flashcard row and returns the canonical
// database representation with the server-assigned FlashcardID.
func (r *flashcardRepository) CreateFlashcard(ctx context.Context, card models.Flashcard) (models.Flashcard, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertFlashcardQuery(card)
	if err != nil {
		log.Err(err).Str("func", "*flashcardRepository.CreateFlashcard").Msg("failed to build insert query")
		return models.Flashcard{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	created, err := scanFlashcard(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		log.Err(err).
			Str("func", "*flashcardRepository.CreateFlashcard").
			Int64("user_id", card.UserID).
			Int64("topic_id", card.TopicID).
			Msg("error inserting flashcard")
		return models.Flashcard{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return created, nil
}

// GetFlashcard retrieves a single flashcard scoped by (flashcardID, userID).
// Returns [ErrFlashcardNotFound] when no such row exists for this owner.
func (r *flashcardRepository) GetFlashcard(ctx context.Context, userID, flashcardID int64) (models.Flashcard, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectFlashcardQuery(userID, flashcardID)
	if err != nil {
		log.Err(err).Str("func", "*flashcardRepository.GetFlashcard").Msg("failed to build select query")
		return models.Flashcard{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	card, err := scanFlashcard(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Flashcard{}, ErrFlashcardNotFound
		}

		log.Err(err).
			Str("func", "*flashcardRepository.GetFlashcard").
			Int64("user_id", userID).
			Int64("flashcard_id", flashcardID).
			Msg("error scanning flashcard row")
		return models.Flashcard{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return card, nil
}

// UpdateFlashcard applies a partial update scoped by (flashcardID, userID)
// and returns the updated row. Returns [ErrFlashcardNotFound] when no row
// matches.
func (r *flashcardRepository) UpdateFlashcard(ctx context.Context, userID, flashcardID int64, update models.UpdateFlashcardRequest, updatedAt time.Time) (models.Flashcard, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateFlashcardQuery(userID, flashcardID, update, updatedAt)
	if err != nil {
		log.Err(err).Str("func", "*flashcardRepository.UpdateFlashcard").Msg("failed to build update query")
		return models.Flashcard{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	card, err := scanFlashcard(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Flashcard{}, ErrFlashcardNotFound
		}

		log.Err(err).
			Str("func", "*flashcardRepository.UpdateFlashcard").
			Int64("user_id", userID).
			Int64("flashcard_id", flashcardID).
			Msg("error executing update")
		return models.Flashcard{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return card, nil
}

// DeleteFlashcard removes the flashcard scoped by (flashcardID, userID).
// Returns [ErrFlashcardNotFound] when no row matches.
func (r *flashcardRepository) DeleteFlashcard(ctx context.Context, userID, flashcardID int64) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteFlashcardQuery(userID, flashcardID)
	if err != nil {
		log.Err(err).Str("func", "*flashcardRepository.DeleteFlashcard").Msg("failed to build delete query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "*flashcardRepository.DeleteFlashcard").
			Int64("user_id", userID).
			Int64("flashcard_id", flashcardID).
			Msg("error executing delete")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrFlashcardNotFound
	}

	return nil
}

// ListFlashcardsByTopic returns every flashcard attached to the given topic
// owned by userID, newest first.
func (r *flashcardRepository) ListFlashcardsByTopic(ctx context.Context, userID, topicID int64) ([]models.Flashcard, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListFlashcardsByTopicQuery(userID, topicID)
	if err != nil {
		log.Err(err).Str("func", "*flashcardRepository.ListFlashcardsByTopic").Msg("failed to build select query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "*flashcardRepository.ListFlashcardsByTopic").
			Int64("user_id", userID).
			Int64("topic_id", topicID).
			Msg("error executing flashcards query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	cards := make([]models.Flashcard, 0, 16)
	for rows.Next() {
		card, err := scanFlashcard(rows)
		if err != nil {
			log.Err(err).Str("func", "*flashcardRepository.ListFlashcardsByTopic").Msg("error scanning flashcard row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		cards = append(cards, card)
	}
	if err := rows.Err(); err != nil {
		log.Err(err).Str("func", "*flashcardRepository.ListFlashcardsByTopic").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return cards, nil
}
