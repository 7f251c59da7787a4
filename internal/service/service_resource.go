// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Pavel Avdeyev

package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/avdeyev/studykeep/internal/config"
	"github.com/avdeyev/studykeep/internal/logger"
	"github.com/avdeyev/studykeep/internal/store"
	"github.com/avdeyev/studykeep/models"
)

// storedFileTimeLayout is the timestamp suffix appended to stored file
// names so repeated uploads of the same file never collide.
const storedFileTimeLayout = "20060102_150405"

type resourceService struct {
	uploadConfigs config.Uploads
	resources     store.ResourceRepository
	topics        store.TopicRepository
	files         store.FileStorage
	logger        *logger.Logger
}

// NewResourceService constructs a [ResourceService]. Resource rows and the
// files behind pdf resources are kept consistent here: the database row is
// the source of truth, file cleanup is best effort.
func NewResourceService(
	uploadConfigs config.Uploads,
	resources store.ResourceRepository,
	topics store.TopicRepository,
	files store.FileStorage,
	logger *logger.Logger,
) ResourceService {
	logger.Debug().Msg("creating resource service")

	return &resourceService{
		uploadConfigs: uploadConfigs,
		resources:     resources,
		topics:        topics,
		files:         files,
		logger:        logger,
	}
}

// CreateLinkResource attaches an external URL to the given topic.
func (s *resourceService) CreateLinkResource(ctx context.Context, userID int64, topicID int64, request *models.CreateLinkResourceRequest) (*models.Resource, error) {
	if request == nil || strings.TrimSpace(request.Title) == "" {
		return nil, fmt.Errorf("%w: resource title is required", ErrValidation)
	}
	linkURL := strings.TrimSpace(request.URL)
	if err := validateLinkURL(linkURL); err != nil {
		return nil, err
	}

	if err := s.checkTopicOwnership(ctx, userID, topicID); err != nil {
		return nil, err
	}

	now := time.Now()
	resource := models.Resource{
		Title:     strings.TrimSpace(request.Title),
		Type:      models.ResourceTypeLink,
		URL:       linkURL,
		UserID:    userID,
		TopicID:   topicID,
		CreatedAt: now,
		UpdatedAt: now,
	}

	created, err := s.resources.CreateResource(ctx, resource)
	if err != nil {
		return nil, fmt.Errorf("error creating link resource: %w", err)
	}

	logger.FromContext(ctx).Info().
		Int64("resource_id", created.ResourceID).
		Int64("topic_id", topicID).
		Msg("link resource created")
	return &created, nil
}

// CreateFileResource stores the uploaded file under the upload root and
// records a pdf resource pointing at it. The stored path embeds the owner,
// the topic and an upload timestamp, so repeated uploads of the same
// filename never overwrite each other. A failed write aborts the whole
// operation; a failed insert removes the already written file.
func (s *resourceService) CreateFileResource(ctx context.Context, userID int64, topicID int64, title string, filename string, file io.Reader) (*models.Resource, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, fmt.Errorf("%w: resource title is required", ErrValidation)
	}
	filename = strings.TrimSpace(filename)
	if filename == "" {
		return nil, fmt.Errorf("%w: filename is required", ErrValidation)
	}
	if err := s.checkFileExtension(filename); err != nil {
		return nil, err
	}

	if err := s.checkTopicOwnership(ctx, userID, topicID); err != nil {
		return nil, err
	}

	now := time.Now()
	relPath := buildStoredFilePath(userID, topicID, filename, now)

	written, err := s.files.Save(relPath, file)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrStorage, err)
	}

	resource := models.Resource{
		Title:            title,
		Type:             models.ResourceTypePDF,
		FilePath:         relPath,
		FileSize:         written,
		OriginalFilename: filename,
		UserID:           userID,
		TopicID:          topicID,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	created, err := s.resources.CreateResource(ctx, resource)
	if err != nil {
		if removeErr := s.files.Remove(relPath); removeErr != nil {
			logger.FromContext(ctx).Warn().Err(removeErr).Str("path", relPath).
				Msg("failed to remove orphaned upload")
		}
		return nil, fmt.Errorf("error creating file resource: %w", err)
	}

	logger.FromContext(ctx).Info().
		Int64("resource_id", created.ResourceID).
		Int64("topic_id", topicID).
		Int64("size", written).
		Msg("file resource created")
	return &created, nil
}

// GetResource returns the resource when it exists and belongs to the user.
func (s *resourceService) GetResource(ctx context.Context, userID int64, resourceID int64) (*models.Resource, error) {
	resource, err := s.resources.GetResource(ctx, userID, resourceID)
	if err != nil {
		if errors.Is(err, store.ErrResourceNotFound) {
			return nil, fmt.Errorf("%w: resource", ErrNotFound)
		}
		return nil, fmt.Errorf("error getting resource: %w", err)
	}

	return &resource, nil
}

// UpdateResource applies the non-nil fields of the request. Fields that do
// not apply to the resource's type change nothing: a url sent for a pdf
// resource and a replacement file sent for a link resource are ignored.
// The resource type itself never changes.
func (s *resourceService) UpdateResource(ctx context.Context, userID int64, resourceID int64, request *models.UpdateResourceRequest) (*models.Resource, error) {
	if request == nil || (request.Title == nil && request.URL == nil && request.NewFile == nil) {
		return nil, fmt.Errorf("%w: nothing to update", ErrValidation)
	}

	resource, err := s.resources.GetResource(ctx, userID, resourceID)
	if err != nil {
		if errors.Is(err, store.ErrResourceNotFound) {
			return nil, fmt.Errorf("%w: resource", ErrNotFound)
		}
		return nil, fmt.Errorf("error getting resource: %w", err)
	}

	if request.Title != nil {
		title := strings.TrimSpace(*request.Title)
		if title == "" {
			return nil, fmt.Errorf("%w: resource title cannot be empty", ErrValidation)
		}
		resource.Title = title
	}
	if request.URL != nil && resource.IsLink() {
		linkURL := strings.TrimSpace(*request.URL)
		if err := validateLinkURL(linkURL); err != nil {
			return nil, err
		}
		resource.URL = linkURL
	}

	now := time.Now()
	if request.NewFile != nil && resource.IsPDF() {
		if err := s.replaceStoredFile(ctx, &resource, request.NewFilename, request.NewFile, now); err != nil {
			return nil, err
		}
	}
	resource.UpdatedAt = now

	if err := s.resources.UpdateResource(ctx, resource); err != nil {
		if errors.Is(err, store.ErrResourceNotFound) {
			return nil, fmt.Errorf("%w: resource", ErrNotFound)
		}
		return nil, fmt.Errorf("error updating resource: %w", err)
	}

	return &resource, nil
}

// replaceStoredFile swaps the file behind a pdf resource. The replacement
// goes through the same extension check and path derivation as an upload;
// the old file is unlinked best effort before the new one is written, so a
// file that refuses to go away never blocks the replacement.
func (s *resourceService) replaceStoredFile(ctx context.Context, resource *models.Resource, filename string, file io.Reader, now time.Time) error {
	filename = strings.TrimSpace(filename)
	if filename == "" {
		return fmt.Errorf("%w: filename is required", ErrValidation)
	}
	if err := s.checkFileExtension(filename); err != nil {
		return err
	}

	if resource.FilePath != "" {
		if err := s.files.Remove(resource.FilePath); err != nil && !errors.Is(err, store.ErrFileNotFound) {
			logger.FromContext(ctx).Warn().Err(err).Str("path", resource.FilePath).
				Msg("failed to remove replaced file")
		}
	}

	relPath := buildStoredFilePath(resource.UserID, resource.TopicID, filename, now)
	written, err := s.files.Save(relPath, file)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrStorage, err)
	}

	resource.FilePath = relPath
	resource.FileSize = written
	resource.OriginalFilename = filename
	return nil
}

// DeleteResource removes the resource row and, for pdf resources, unlinks
// the stored file afterwards. A file that is already gone does not fail the
// delete.
func (s *resourceService) DeleteResource(ctx context.Context, userID int64, resourceID int64) error {
	resource, err := s.resources.GetResource(ctx, userID, resourceID)
	if err != nil {
		if errors.Is(err, store.ErrResourceNotFound) {
			return fmt.Errorf("%w: resource", ErrNotFound)
		}
		return fmt.Errorf("error getting resource: %w", err)
	}

	if err := s.resources.DeleteResource(ctx, userID, resourceID); err != nil {
		if errors.Is(err, store.ErrResourceNotFound) {
			return fmt.Errorf("%w: resource", ErrNotFound)
		}
		return fmt.Errorf("error deleting resource: %w", err)
	}

	if resource.IsPDF() && resource.FilePath != "" {
		if err := s.files.Remove(resource.FilePath); err != nil && !errors.Is(err, store.ErrFileNotFound) {
			logger.FromContext(ctx).Warn().Err(err).Str("path", resource.FilePath).
				Msg("failed to remove file during resource delete")
		}
	}

	return nil
}

// DownloadResource opens the stored file behind a pdf resource. The caller
// owns the returned reader and must close it.
func (s *resourceService) DownloadResource(ctx context.Context, userID int64, resourceID int64) (*models.Resource, io.ReadCloser, error) {
	resource, err := s.resources.GetResource(ctx, userID, resourceID)
	if err != nil {
		if errors.Is(err, store.ErrResourceNotFound) {
			return nil, nil, fmt.Errorf("%w: resource", ErrNotFound)
		}
		return nil, nil, fmt.Errorf("error getting resource: %w", err)
	}

	if !resource.IsPDF() || resource.FilePath == "" {
		return nil, nil, fmt.Errorf("%w: resource has no downloadable file", ErrNotFound)
	}

	file, err := s.files.Open(resource.FilePath)
	if err != nil {
		if errors.Is(err, store.ErrFileNotFound) {
			return nil, nil, fmt.Errorf("%w: stored file is missing", ErrStorage)
		}
		return nil, nil, fmt.Errorf("%w: %w", ErrStorage, err)
	}

	return &resource, file, nil
}

// ListResourcesByTopic returns the topic's resources, newest first. The
// topic must exist and belong to the user.
func (s *resourceService) ListResourcesByTopic(ctx context.Context, userID int64, topicID int64) ([]models.Resource, error) {
	if err := s.checkTopicOwnership(ctx, userID, topicID); err != nil {
		return nil, err
	}

	resources, err := s.resources.ListResourcesByTopic(ctx, userID, topicID)
	if err != nil {
		return nil, fmt.Errorf("error listing resources: %w", err)
	}

	return resources, nil
}

func (s *resourceService) checkTopicOwnership(ctx context.Context, userID int64, topicID int64) error {
	if _, err := s.topics.GetTopic(ctx, userID, topicID); err != nil {
		if errors.Is(err, store.ErrTopicNotFound) {
			return fmt.Errorf("%w: topic", ErrNotFound)
		}
		return fmt.Errorf("error checking topic: %w", err)
	}
	return nil
}

func (s *resourceService) checkFileExtension(filename string) error {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(filename)), ".")
	for _, allowed := range s.uploadConfigs.AllowedExtensions {
		if ext == strings.ToLower(allowed) {
			return nil
		}
	}

	return fmt.Errorf("%w: %q (allowed: %s)",
		ErrUnsupportedFileType, ext, strings.Join(s.uploadConfigs.AllowedExtensions, ", "))
}

// buildStoredFilePath derives the relative storage path for an upload:
// "<ownerID>/<topicID>/<base>_<timestamp><ext>". The base name keeps only
// letters, digits, dots, dashes and underscores.
func buildStoredFilePath(userID, topicID int64, filename string, uploadedAt time.Time) string {
	ext := strings.ToLower(filepath.Ext(filename))
	base := sanitizeFilenameBase(strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename)))

	storedName := fmt.Sprintf("%s_%s%s", base, uploadedAt.Format(storedFileTimeLayout), ext)
	return path.Join(
		fmt.Sprintf("%d", userID),
		fmt.Sprintf("%d", topicID),
		storedName,
	)
}

func sanitizeFilenameBase(base string) string {
	var b strings.Builder
	for _, r := range base {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '.', r == '-', r == '_':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}

	if b.Len() == 0 {
		return "upload"
	}
	return b.String()
}

func validateLinkURL(linkURL string) error {
	if linkURL == "" {
		return fmt.Errorf("%w: resource url is required", ErrValidation)
	}

	parsed, err := url.Parse(linkURL)
	if err != nil || (parsed.Scheme != "http" && parsed.Scheme != "https") || parsed.Host == "" {
		return fmt.Errorf("%w: resource url must be a valid http(s) address", ErrValidation)
	}

	return nil
}
