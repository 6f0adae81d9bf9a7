package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, err := Load(New(), "")
	require.NoError(t, err)
	assert.Equal(t, ".", cfg.OutputDirectory)
	assert.Equal(t, []string{".pyi", ".py"}, cfg.Extensions)
	assert.True(t, cfg.RespectGitignore)
	assert.False(t, cfg.Log.JSON)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.toml")
	content := `output_directory = "out"
extensions = ["PYI"]
respect_gitignore = false

[log]
json = true
level = "debug"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(New(), path)
	require.NoError(t, err)
	assert.Equal(t, "out", cfg.OutputDirectory)
	assert.Equal(t, []string{".pyi"}, cfg.Extensions)
	assert.False(t, cfg.RespectGitignore)
	assert.True(t, cfg.Log.JSON)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoadDefaultFileInWorkingDirectory(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, DefaultFile), []byte("output_directory = \"specs\"\n"), 0o644))
	chdir(t, dir)

	cfg, err := Load(New(), "")
	require.NoError(t, err)
	assert.Equal(t, "specs", cfg.OutputDirectory)
}

func TestLoadEnvironmentOverridesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "c.toml")
	require.NoError(t, os.WriteFile(path, []byte("[log]\nlevel = \"warn\"\n"), 0o644))
	t.Setenv("TYPESHED2SPEC_LOG_LEVEL", "error")
	t.Setenv("TYPESHED2SPEC_OUTPUT_DIRECTORY", "env-out")

	cfg, err := Load(New(), path)
	require.NoError(t, err)
	assert.Equal(t, "error", cfg.Log.Level)
	assert.Equal(t, "env-out", cfg.OutputDirectory)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(New(), filepath.Join(t.TempDir(), "absent.toml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "absent.toml")
}

func TestNormalizeExtensions(t *testing.T) {
	t.Parallel()
	assert.Equal(t, []string{".pyi", ".py"}, normalizeExtensions([]string{"pyi", " .PY ", ""}))
}

// chdir changes the working directory for the duration of the test.
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(prev) })
}
