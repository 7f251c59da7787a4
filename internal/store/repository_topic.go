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

// topicRepository is the SQL-backed implementation of [TopicRepository].
// It executes all topic CRUD operations against the "topics" table, every
// one of them scoped by (topic_id, user_id) so that rows owned by other
// users are indistinguishable from rows that do not exist.
type topicRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewTopicRepository constructs a [TopicRepository] backed by the provided
// database connection and logger.
func NewTopicRepository(db *DB, logger *logger.Logger) TopicRepository {
	logger.Debug().Msg("creating topic repository")
	return &topicRepository{
		db:     db,
		logger: logger,
	}
}

// rowScanner covers *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanTopic(row rowScanner) (models.Topic, error) {
	var topic models.Topic
	var description sql.NullString

	err := row.Scan(
		&topic.TopicID,
		&topic.Name,
		&description,
		&topic.UserID,
		&topic.ParentTopicID,
		&topic.CreatedAt,
		&topic.UpdatedAt,
	)
	if err != nil {
		return models.Topic{}, err
	}

	topic.Description = description.String
	return topic, nil
}

// CreateTopic persists a new topic row and returns the canonical database
// representation with the server-assigned TopicID.
func (r *topicRepository) CreateTopic(ctx context.Context, topic models.Topic) (models.Topic, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertTopicQuery(topic)
	if err != nil {
		log.Err(err).Str("func", "*topicRepository.CreateTopic").Msg("failed to build insert query")
		return models.Topic{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	created, err := scanTopic(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		log.Err(err).
			Str("func", "*topicRepository.CreateTopic").
			Int64("user_id", topic.UserID).
			Msg("error inserting topic")
		return models.Topic{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return created, nil
}

// GetTopic retrieves a single topic scoped by (topicID, userID).
// Returns [ErrTopicNotFound] when no such row exists for this owner.
func (r *topicRepository) GetTopic(ctx context.Context, userID, topicID int64) (models.Topic, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectTopicQuery(userID, topicID)
	if err != nil {
		log.Err(err).Str("func", "*topicRepository.GetTopic").Msg("failed to build select query")
		return models.Topic{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	topic, err := scanTopic(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Topic{}, ErrTopicNotFound
		}

		log.Err(err).
			Str("func", "*topicRepository.GetTopic").
			Int64("user_id", userID).
			Int64("topic_id", topicID).
			Msg("error scanning topic row")
		return models.Topic{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return topic, nil
}

// UpdateTopic applies a partial update to the topic scoped by
// (topicID, userID) and returns the updated row. Omitted request fields
// retain their previous values; updated_at is always set to updatedAt.
//
// Returns [ErrTopicNotFound] when no row matches.
func (r *topicRepository) UpdateTopic(ctx context.Context, userID, topicID int64, update models.UpdateTopicRequest, updatedAt time.Time) (models.Topic, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateTopicQuery(userID, topicID, update, updatedAt)
	if err != nil {
		log.Err(err).Str("func", "*topicRepository.UpdateTopic").Msg("failed to build update query")
		return models.Topic{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	topic, err := scanTopic(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Topic{}, ErrTopicNotFound
		}

		log.Err(err).
			Str("func", "*topicRepository.UpdateTopic").
			Int64("user_id", userID).
			Int64("topic_id", topicID).
			Msg("error executing update")
		return models.Topic{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return topic, nil
}

// DeleteTopicCascade removes the topic, its direct subtopics, and all
// content rows attached to any of them inside one transaction, so a failure
// at any step leaves the database untouched.
//
// The relative file paths of cascaded pdf resources are collected before
// deletion and handed back to the caller; physical file removal happens
// outside the transaction and is best-effort by design.
func (r *topicRepository) DeleteTopicCascade(ctx context.Context, userID, topicID int64) (*int64, []string, error) {
	log := logger.FromContext(ctx)

	topic, err := r.GetTopic(ctx, userID, topicID)
	if err != nil {
		return nil, nil, err
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*topicRepository.DeleteTopicCascade").Msg("failed to begin transaction")
		return nil, nil, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	topicIDs, err := r.collectCascadeTopicIDs(ctx, tx, userID, topicID)
	if err != nil {
		return nil, nil, err
	}

	filePaths, err := r.collectCascadeFilePaths(ctx, tx, userID, topicIDs)
	if err != nil {
		return nil, nil, err
	}

	for _, table := range []string{models.Note{}.TableName(), models.Flashcard{}.TableName(), models.Resource{}.TableName()} {
		query, args, err := buildCascadeDeleteContentQuery(table, userID, topicIDs)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}

		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			log.Err(err).
				Str("func", "*topicRepository.DeleteTopicCascade").
				Str("table", table).
				Int64("topic_id", topicID).
				Msg("error deleting cascaded content rows")
			return nil, nil, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
	}

	query, args, err := buildCascadeDeleteTopicsQuery(userID, topicIDs)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "*topicRepository.DeleteTopicCascade").
			Int64("topic_id", topicID).
			Msg("error deleting topic rows")
		return nil, nil, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if err := tx.Commit(); err != nil {
		log.Err(err).Str("func", "*topicRepository.DeleteTopicCascade").Msg("failed to commit transaction")
		return nil, nil, fmt.Errorf("%w: %w", ErrCommittingTransaction, err)
	}

	return topic.ParentTopicID, filePaths, nil
}

// collectCascadeTopicIDs returns the ids of the topic itself plus all of its
// direct subtopics. The hierarchy is at most two levels deep, so one query
// covers the whole subtree.
func (r *topicRepository) collectCascadeTopicIDs(ctx context.Context, tx *sql.Tx, userID, topicID int64) ([]int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectSubtopicIDsQuery(userID, topicID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := tx.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "*topicRepository.collectCascadeTopicIDs").
			Int64("topic_id", topicID).
			Msg("error selecting subtopic ids")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	topicIDs := []int64{topicID}
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		topicIDs = append(topicIDs, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return topicIDs, nil
}

// collectCascadeFilePaths gathers the stored file paths of every pdf
// resource attached to the given topics.
func (r *topicRepository) collectCascadeFilePaths(ctx context.Context, tx *sql.Tx, userID int64, topicIDs []int64) ([]string, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectCascadeFilePathsQuery(userID, topicIDs)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := tx.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "*topicRepository.collectCascadeFilePaths").
			Int64("user_id", userID).
			Msg("error selecting cascaded file paths")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var filePaths []string
	for rows.Next() {
		var path string
		if err := rows.Scan(&path); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		filePaths = append(filePaths, path)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return filePaths, nil
}

// ListTopLevelTopics returns every topic owned by userID that has no parent,
// newest first. Topics created in the same instant are ordered by id
// descending so the listing is deterministic across calls.
func (r *topicRepository) ListTopLevelTopics(ctx context.Context, userID int64) ([]models.Topic, error) {
	query, args, err := buildListTopLevelTopicsQuery(userID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.queryTopics(ctx, query, args...)
}

// ListSubtopics returns every direct subtopic of the given topic owned by
// userID, in a stable per-call order.
func (r *topicRepository) ListSubtopics(ctx context.Context, userID, topicID int64) ([]models.Topic, error) {
	query, args, err := buildListSubtopicsQuery(userID, topicID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.queryTopics(ctx, query, args...)
}

func (r *topicRepository) queryTopics(ctx context.Context, query string, args ...any) ([]models.Topic, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*topicRepository.queryTopics").Msg("error executing topics query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	topics := make([]models.Topic, 0, 16)
	for rows.Next() {
		topic, err := scanTopic(rows)
		if err != nil {
			log.Err(err).Str("func", "*topicRepository.queryTopics").Msg("error scanning topic row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		topics = append(topics, topic)
	}
	if err := rows.Err(); err != nil {
		log.Err(err).Str("func", "*topicRepository.queryTopics").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return topics, nil
}
