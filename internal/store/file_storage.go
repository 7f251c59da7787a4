// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Pavel Avdeyev

package store

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/avdeyev/studykeep/internal/logger"
)

// ErrPathEscapesRoot is returned when a relative path would resolve outside
// the configured upload root.
var ErrPathEscapesRoot = errors.New("file path escapes storage root")

// ErrFileNotFound is returned by Open and Remove when no file exists at the
// given relative path.
var ErrFileNotFound = errors.New("stored file not found")

// fileStorage is the local-filesystem implementation of [FileStorage].
// Every stored file lives under root; the relative paths recorded in
// resource rows are resolved against it on each call, so moving the root
// only requires a configuration change.
type fileStorage struct {
	root   string
	logger *logger.Logger
}

// NewFileStorage constructs a [FileStorage] rooted at the given directory,
// creating it if necessary.
func NewFileStorage(root string, logger *logger.Logger) (FileStorage, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("error creating upload root %q: %w", root, err)
	}

	logger.Debug().Str("root", root).Msg("creating file storage")
	return &fileStorage{
		root:   root,
		logger: logger,
	}, nil
}

// resolve turns a stored relative path into an absolute one, rejecting any
// path that would leave the root.
func (s *fileStorage) resolve(relPath string) (string, error) {
	cleaned := filepath.Clean(filepath.FromSlash(relPath))
	if cleaned == "." || strings.HasPrefix(cleaned, "..") || filepath.IsAbs(cleaned) {
		return "", ErrPathEscapesRoot
	}

	return filepath.Join(s.root, cleaned), nil
}

// Save writes the contents of r to relPath under the storage root, creating
// intermediate directories as needed, and returns the number of bytes
// written. A partially written file is removed on copy failure so a failed
// upload never leaves garbage behind.
func (s *fileStorage) Save(relPath string, r io.Reader) (int64, error) {
	fullPath, err := s.resolve(relPath)
	if err != nil {
		return 0, err
	}

	if err := os.MkdirAll(filepath.Dir(fullPath), 0o755); err != nil {
		return 0, fmt.Errorf("error creating upload directory: %w", err)
	}

	f, err := os.Create(fullPath)
	if err != nil {
		return 0, fmt.Errorf("error creating file %q: %w", relPath, err)
	}

	written, err := io.Copy(f, r)
	if closeErr := f.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		if removeErr := os.Remove(fullPath); removeErr != nil {
			s.logger.Warn().Err(removeErr).Str("path", relPath).Msg("failed to clean up partial upload")
		}
		return 0, fmt.Errorf("error writing file %q: %w", relPath, err)
	}

	return written, nil
}

// Open returns a reader over the stored file.
// Returns [ErrFileNotFound] when nothing exists at relPath.
func (s *fileStorage) Open(relPath string) (io.ReadCloser, error) {
	fullPath, err := s.resolve(relPath)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(fullPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrFileNotFound
		}
		return nil, fmt.Errorf("error opening file %q: %w", relPath, err)
	}

	return f, nil
}

// Remove deletes the stored file.
// Returns [ErrFileNotFound] when nothing exists at relPath.
func (s *fileStorage) Remove(relPath string) error {
	fullPath, err := s.resolve(relPath)
	if err != nil {
		return err
	}

	if err := os.Remove(fullPath); err != nil {
		if os.IsNotExist(err) {
			return ErrFileNotFound
		}
		return fmt.Errorf("error removing file %q: %w", relPath, err)
	}

	return nil
}

// List walks the upload root and returns every stored file with its path
// relative to the root.
func (s *fileStorage) List() ([]StoredFileInfo, error) {
	var files []StoredFileInfo

	err := filepath.WalkDir(s.root, func(fullPath string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		relPath, err := filepath.Rel(s.root, fullPath)
		if err != nil {
			return err
		}
		info, err := d.Info()
		if err != nil {
			return err
		}

		files = append(files, StoredFileInfo{
			Path:    filepath.ToSlash(relPath),
			ModTime: info.ModTime(),
		})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("error walking upload root: %w", err)
	}

	return files, nil
}

// Exists reports whether a file is present at relPath.
func (s *fileStorage) Exists(relPath string) bool {
	fullPath, err := s.resolve(relPath)
	if err != nil {
		return false
	}

	info, err := os.Stat(fullPath)
	return err == nil && !info.IsDir()
}
