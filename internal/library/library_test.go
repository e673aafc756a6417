// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

package library

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpen(t *testing.T) {
	root := newLibraryRoot(t, map[string]string{
		"x1.cfg": "IOADDRESS 12\n",
	})

	lib, err := Open(testLayout(root), ScanOptions{})
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(root, "Library"), lib.Dir())
	assert.Equal(t, filepath.Join(root, "Library", "components"), lib.ComponentsDir())
	assert.Equal(t, filepath.Join(root, "Library", "PC_Based.cfg"), lib.BaseTemplate())

	entries, err := lib.Scan()
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "X1", entries[0].DisplayName)

	path, ok, err := lib.Find("X1")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, filepath.Join(root, "Library", "components", "x1.cfg"), path)
}

func TestOpen_MissingLibrary(t *testing.T) {
	_, err := Open(testLayout(t.TempDir()), ScanOptions{})
	assert.True(t, errors.Is(err, ErrLibraryNotFound), "got %v", err)
}

func TestOpen_MissingComponents(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "Library"), 0o750))

	_, err := Open(testLayout(root), ScanOptions{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrLibraryNotFound))
	assert.Contains(t, err.Error(), "components")
}

func TestOpen_DoesNotRequireBaseTemplate(t *testing.T) {
	root := newLibraryRoot(t, nil)
	require.NoError(t, os.Remove(filepath.Join(root, "Library", "PC_Based.cfg")))

	_, err := Open(testLayout(root), ScanOptions{})
	assert.NoError(t, err)
}
