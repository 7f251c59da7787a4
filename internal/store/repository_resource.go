// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Pavel Avdeyev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/avdeyev/studykeep/internal/logger"
	"github.com/avdeyev/studykeep/models"
)

// resourceRepository is the SQL-backed implementation of
// [ResourceRepository]. It manages only the metadata rows; the physical
// files referenced by file_path belong to the [FileStorage] and are
// coordinated by the resource service.
type resourceRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewResourceRepository constructs a [ResourceRepository] backed by the
// provided database connection and logger.
func NewResourceRepository(db *DB, logger *logger.Logger) ResourceRepository {
	logger.Debug().Msg("creating resource repository")
	return &resourceRepository{
		db:     db,
		logger: logger,
	}
}

func scanResource(row rowScanner) (models.Resource, error) {
	var resource models.Resource
	var resourceType string
	var url, filePath, originalFilename sql.NullString
	var fileSize sql.NullInt64

	err := row.Scan(
		&resource.ResourceID,
		&resource.Title,
		&resourceType,
		&url,
		&filePath,
		&fileSize,
		&originalFilename,
		&resource.UserID,
		&resource.TopicID,
		&resource.CreatedAt,
		&resource.UpdatedAt,
	)
	if err != nil {
		return models.Resource{}, err
	}

	resource.Type = models.ResourceType(resourceType)
	resource.URL = url.String
	resource.FilePath = filePath.String
	resource.FileSize = fileSize.Int64
	resource.OriginalFilename = originalFilename.String

	return resource, nil
}

// CreateResource persists a new resource row and returns the canonical
// database representation with the server-assigned ResourceID.
func (r *resourceRepository) CreateResource(ctx context.Context, resource models.Resource) (models.Resource, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertResourceQuery(resource)
	if err != nil {
		log.Err(err).Str("func", "*resourceRepository.CreateResource").Msg("failed to build insert query")
		return models.Resource{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	created, err := scanResource(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		log.Err(err).
			Str("func", "*resourceRepository.CreateResource").
			Int64("user_id", resource.UserID).
			Int64("topic_id", resource.TopicID).
			Str("resource_type", string(resource.Type)).
			Msg("error inserting resource")
		return models.Resource{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return created, nil
}

// GetResource retrieves a single resource scoped by (resourceID, userID).
// Returns [ErrResourceNotFound] when no such row exists for this owner.
func (r *resourceRepository) GetResource(ctx context.Context, userID, resourceID int64) (models.Resource, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectResourceQuery(userID, resourceID)
	if err != nil {
		log.Err(err).Str("func", "*resourceRepository.GetResource").Msg("failed to build select query")
		return models.Resource{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	resource, err := scanResource(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Resource{}, ErrResourceNotFound
		}

		log.Err(err).
			Str("func", "*resourceRepository.GetResource").
			Int64("user_id", userID).
			Int64("resource_id", resourceID).
			Msg("error scanning resource row")
		return models.Resource{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return resource, nil
}

// UpdateResource writes back every mutable column of the given resource,
// scoped by (ResourceID, UserID). Returns [ErrResourceNotFound] when no row
// matches.
func (r *resourceRepository) UpdateResource(ctx context.Context, resource models.Resource) error {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateResourceQuery(resource)
	if err != nil {
		log.Err(err).Str("func", "*resourceRepository.UpdateResource").Msg("failed to build update query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "*resourceRepository.UpdateResource").
			Int64("user_id", resource.UserID).
			Int64("resource_id", resource.ResourceID).
			Msg("error executing update")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrResourceNotFound
	}

	return nil
}

// DeleteResource removes the metadata row scoped by (resourceID, userID).
// Returns [ErrResourceNotFound] when no row matches.
func (r *resourceRepository) DeleteResource(ctx context.Context, userID, resourceID int64) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteResourceQuery(userID, resourceID)
	if err != nil {
		log.Err(err).Str("func", "*resourceRepository.DeleteResource").Msg("failed to build delete query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "*resourceRepository.DeleteResource").
			Int64("user_id", userID).
			Int64("resource_id", resourceID).
			Msg("error executing delete")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrResourceNotFound
	}

	return nil
}

// ListResourcesByTopic returns every resource attached to the given topic
// owned by userID, newest first.
func (r *resourceRepository) ListResourcesByTopic(ctx context.Context, userID, topicID int64) ([]models.Resource, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListResourcesByTopicQuery(userID, topicID)
	if err != nil {
		log.Err(err).Str("func", "*resourceRepository.ListResourcesByTopic").Msg("failed to build select query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "*resourceRepository.ListResourcesByTopic").
			Int64("user_id", userID).
			Int64("topic_id", topicID).
			Msg("error executing resources query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	resources := make([]models.Resource, 0, 16)
	for rows.Next() {
		resource, err := scanResource(rows)
		if err != nil {
			log.Err(err).Str("func", "*resourceRepository.ListResourcesByTopic").Msg("error scanning resource row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		resources = append(resources, resource)
	}
	if err := rows.Err(); err != nil {
		log.Err(err).Str("func", "*resourceRepository.ListResourcesByTopic").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return resources, nil
}

// ListAllFilePaths returns the stored file paths of every pdf resource
// across all users.
func (r *resourceRepository) ListAllFilePaths(ctx context.Context) ([]string, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectAllFilePathsQuery()
	if err != nil {
		log.Err(err).Str("func", "*resourceRepository.ListAllFilePaths").Msg("failed to build select query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*resourceRepository.ListAllFilePaths").Msg("error executing file paths query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	paths := make([]string, 0, 64)
	for rows.Next() {
		var path string
		if err := rows.Scan(&path); err != nil {
			log.Err(err).Str("func", "*resourceRepository.ListAllFilePaths").Msg("error scanning file path row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		paths = append(paths, path)
	}
	if err := rows.Err(); err != nil {
		log.Err(err).Str("func", "*resourceRepository.ListAllFilePaths").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return paths, nil
}
