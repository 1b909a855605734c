package delegate

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveBaseDir(t *testing.T) {
	t.Parallel()

	dir, err := ResolveBaseDir()

	require.NoError(t, err)
	assert.DirExists(t, dir)
	assert.True(t, filepath.IsAbs(dir))
}

func TestEnter_MissingDir(t *testing.T) {
	err := Enter(filepath.Join(t.TempDir(), "nope"))

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDirectoryResolution)
}

func TestLocate(t *testing.T) {
	t.Parallel()

	t.Run("executable file is found", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		path := filepath.Join(dir, "create-module")
		require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"), 0o755))

		got, err := Locate(dir, "create-module")

		require.NoError(t, err)
		assert.Equal(t, path, got)
	})

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()

		_, err := Locate(t.TempDir(), "create-module")

		require.Error(t, err)
		assert.ErrorIs(t, err, ErrDelegateNotFound)
	})

	t.Run("file without execute bit", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, "create-module"), []byte("#!/bin/sh\n"), 0o644))

		_, err := Locate(dir, "create-module")

		require.Error(t, err)
		assert.ErrorIs(t, err, ErrDelegateNotFound)
		assert.Contains(t, err.Error(), "not executable")
	})

	t.Run("directory with the delegate's name", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		require.NoError(t, os.Mkdir(filepath.Join(dir, "create-module"), 0o755))

		_, err := Locate(dir, "create-module")

		require.Error(t, err)
		assert.ErrorIs(t, err, ErrDelegateNotFound)
		assert.Contains(t, err.Error(), "is a directory")
	})

	t.Run("never searches PATH", func(t *testing.T) {
		t.Parallel()

		// sh exists on PATH but not in the temp dir, so lookup must fail.
		_, err := Locate(t.TempDir(), "sh")

		require.Error(t, err)
		assert.ErrorIs(t, err, ErrDelegateNotFound)
	})
}
