package fileutils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileExists(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "data.xlsx")
	require.NoError(t, os.WriteFile(file, []byte("content"), 0600))

	assert.True(t, FileExists(file))
	assert.False(t, FileExists(filepath.Join(dir, "missing.xlsx")))
	assert.False(t, FileExists(dir), "directories are not files")
}

func TestDirectoryExists(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "data.xlsx")
	require.NoError(t, os.WriteFile(file, []byte("content"), 0600))

	assert.True(t, DirectoryExists(dir))
	assert.False(t, DirectoryExists(filepath.Join(dir, "missing")))
	assert.False(t, DirectoryExists(file), "files are not directories")
}

func TestEnsureDirectoryExists(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "reports", "2024")

	require.NoError(t, EnsureDirectoryExists(dir))
	assert.True(t, DirectoryExists(dir))

	// Idempotent on an existing directory.
	require.NoError(t, EnsureDirectoryExists(dir))
}

func TestRemoveIfExists(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "stale.xlsx")
	require.NoError(t, os.WriteFile(file, []byte("old"), 0600))

	require.NoError(t, RemoveIfExists(file))
	assert.False(t, FileExists(file))

	// A missing file is not an error.
	require.NoError(t, RemoveIfExists(file))
}

func TestAbsolute(t *testing.T) {
	abs, err := Absolute("some/relative/path.xlsx")
	require.NoError(t, err)
	assert.True(t, filepath.IsAbs(abs))
}
