// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Pavel Avdeyev

package store

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/avdeyev/studykeep/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestFileStorage(t *testing.T) (FileStorage, string) {
	t.Helper()

	root := t.TempDir()
	fs, err := NewFileStorage(root, logger.Nop())
	require.NoError(t, err)

	return fs, root
}

func TestFileStorage_SaveAndOpenRoundTrip(t *testing.T) {
	fs, root := newTestFileStorage(t)

	content := "pdf bytes go here"
	written, err := fs.Save("7/42/notes_20260830_120000.pdf", strings.NewReader(content))
	require.NoError(t, err)
	require.Equal(t, int64(len(content)), written)

	// intermediate directories were created under the root
	_, err = os.Stat(filepath.Join(root, "7", "42", "notes_20260830_120000.pdf"))
	require.NoError(t, err)

	f, err := fs.Open("7/42/notes_20260830_120000.pdf")
	require.NoError(t, err)
	defer f.Close()

	got, err := io.ReadAll(f)
	require.NoError(t, err)
	assert.Equal(t, content, string(got))
}

func TestFileStorage_RejectsEscapingPaths(t *testing.T) {
	fs, _ := newTestFileStorage(t)

	for _, path := range []string{
		"../outside.pdf",
		"7/../../outside.pdf",
		"/etc/passwd",
		".",
	} {
		_, err := fs.Save(path, strings.NewReader("x"))
		assert.ErrorIs(t, err, ErrPathEscapesRoot, "path %q should be rejected", path)
	}
}

func TestFileStorage_OpenMissingFile(t *testing.T) {
	fs, _ := newTestFileStorage(t)

	_, err := fs.Open("7/42/missing.pdf")
	require.ErrorIs(t, err, ErrFileNotFound)
}

func TestFileStorage_RemoveMissingFile(t *testing.T) {
	fs, _ := newTestFileStorage(t)

	err := fs.Remove("7/42/missing.pdf")
	require.ErrorIs(t, err, ErrFileNotFound)
}

func TestFileStorage_RemoveAndExists(t *testing.T) {
	fs, _ := newTestFileStorage(t)

	_, err := fs.Save("7/42/doc.pdf", strings.NewReader("content"))
	require.NoError(t, err)
	require.True(t, fs.Exists("7/42/doc.pdf"))

	require.NoError(t, fs.Remove("7/42/doc.pdf"))
	require.False(t, fs.Exists("7/42/doc.pdf"))
}

func TestFileStorage_ListReturnsStoredFiles(t *testing.T) {
	fs, _ := newTestFileStorage(t)

	_, err := fs.Save("7/42/a.pdf", strings.NewReader("a"))
	require.NoError(t, err)
	_, err = fs.Save("8/50/b.pdf", strings.NewReader("b"))
	require.NoError(t, err)

	files, err := fs.List()
	require.NoError(t, err)
	require.Len(t, files, 2)

	paths := []string{files[0].Path, files[1].Path}
	assert.Contains(t, paths, "7/42/a.pdf")
	assert.Contains(t, paths, "8/50/b.pdf")
	assert.False(t, files[0].ModTime.IsZero())
}

func TestFileStorage_SaveFailureLeavesNoPartialFile(t *testing.T) {
	fs, root := newTestFileStorage(t)

	failing := io.MultiReader(strings.NewReader("partial"), errReader{})
	_, err := fs.Save("7/42/broken.pdf", failing)
	require.Error(t, err)

	_, statErr := os.Stat(filepath.Join(root, "7", "42", "broken.pdf"))
	assert.True(t, os.IsNotExist(statErr), "partial file should have been removed")
}

type errReader struct{}

func (errReader) Read([]byte) (int, error) {
	return 0, errors.New("stream broke")
}
