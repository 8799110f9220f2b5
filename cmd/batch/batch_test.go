package batch

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/agabrys/equateplus-portfolio-details-enhancer/internal/fileutils"
	"github.com/agabrys/equateplus-portfolio-details-enhancer/internal/logging"
	"github.com/agabrys/equateplus-portfolio-details-enhancer/internal/report"
	"github.com/agabrys/equateplus-portfolio-details-enhancer/internal/reporterror"
)

func TestResolveOutputDir(t *testing.T) {
	t.Run("empty means per-input directories", func(t *testing.T) {
		dir, err := resolveOutputDir("", 3)
		require.NoError(t, err)
		assert.Equal(t, "", dir)
	})

	t.Run("existing directory is used as-is", func(t *testing.T) {
		existing := t.TempDir()
		dir, err := resolveOutputDir(existing, 2)
		require.NoError(t, err)
		assert.Equal(t, existing, dir)
	})

	t.Run("missing directory is created", func(t *testing.T) {
		target := filepath.Join(t.TempDir(), "reports")
		dir, err := resolveOutputDir(target, 2)
		require.NoError(t, err)
		assert.Equal(t, target, dir)
		assert.True(t, fileutils.DirectoryExists(target))
	})

	t.Run("existing file is rejected", func(t *testing.T) {
		file := filepath.Join(t.TempDir(), "report.xlsx")
		require.NoError(t, os.WriteFile(file, []byte("x"), 0600))

		_, err := resolveOutputDir(file, 2)
		var invalidErr *reporterror.InvalidOutputError
		require.ErrorAs(t, err, &invalidErr)
	})

	t.Run("file-looking path is rejected", func(t *testing.T) {
		_, err := resolveOutputDir(filepath.Join(t.TempDir(), "single.xlsx"), 2)
		var invalidErr *reporterror.InvalidOutputError
		require.ErrorAs(t, err, &invalidErr)
	})
}

func TestWriteManifest(t *testing.T) {
	dir := t.TempDir()
	results := []report.Result{
		{InputFile: "/in/a.xlsx", OutputFile: "/out/Enhanced-a.xlsx"},
		{InputFile: "/in/b.xlsx", OutputFile: "/out/Enhanced-b.xlsx"},
	}

	require.NoError(t, writeManifest(dir, results, &logging.MockLogger{}))

	data, err := os.ReadFile(filepath.Join(dir, manifestName))
	require.NoError(t, err)

	var loaded []report.Result
	require.NoError(t, yaml.Unmarshal(data, &loaded))
	assert.Equal(t, results, loaded)
}
