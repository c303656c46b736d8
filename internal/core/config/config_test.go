package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("missing config file returns defaults", func(t *testing.T) {
		dataDir := t.TempDir()

		cfg, err := Load(filepath.Join(dataDir, "nope.yml"), dataDir)
		require.NoError(t, err)

		assert.Equal(t, filepath.Join(dataDir, "tasks.json"), cfg.TaskFile)
		assert.Equal(t, filepath.Join(dataDir, "tracker.log"), cfg.Log.File)
		assert.Equal(t, "info", cfg.Log.Level)
		assert.Equal(t, 5, cfg.Recent)
		assert.True(t, cfg.SaveAfterMutation())
	})

	t.Run("empty path returns defaults", func(t *testing.T) {
		dataDir := t.TempDir()

		cfg, err := Load("", dataDir)
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(dataDir, "tasks.json"), cfg.TaskFile)
	})

	t.Run("values from file override defaults", func(t *testing.T) {
		dir := t.TempDir()
		configPath := filepath.Join(dir, "config.yml")
		content := `
task_file: /var/lib/tracker/tasks.json
auto_save: false
recent: 10
log:
  level: debug
`
		require.NoError(t, os.WriteFile(configPath, []byte(content), 0o644))

		cfg, err := Load(configPath, dir)
		require.NoError(t, err)

		assert.Equal(t, "/var/lib/tracker/tasks.json", cfg.TaskFile)
		assert.False(t, cfg.SaveAfterMutation())
		assert.Equal(t, 10, cfg.Recent)
		assert.Equal(t, "debug", cfg.Log.Level)
		// Unset values still fall back to defaults.
		assert.Equal(t, filepath.Join(dir, "tracker.log"), cfg.Log.File)
	})

	t.Run("relative task file resolves against the data dir", func(t *testing.T) {
		dir := t.TempDir()
		configPath := filepath.Join(dir, "config.yml")
		require.NoError(t, os.WriteFile(configPath, []byte("task_file: my-tasks.json\n"), 0o644))

		cfg, err := Load(configPath, dir)
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(dir, "my-tasks.json"), cfg.TaskFile)
	})

	t.Run("invalid yaml fails", func(t *testing.T) {
		dir := t.TempDir()
		configPath := filepath.Join(dir, "config.yml")
		require.NoError(t, os.WriteFile(configPath, []byte("recent: [not a number"), 0o644))

		_, err := Load(configPath, dir)
		assert.Error(t, err)
	})

	t.Run("unknown log level fails validation", func(t *testing.T) {
		dir := t.TempDir()
		configPath := filepath.Join(dir, "config.yml")
		require.NoError(t, os.WriteFile(configPath, []byte("log:\n  level: loud\n"), 0o644))

		_, err := Load(configPath, dir)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unknown log level")
	})

	t.Run("negative recent fails validation", func(t *testing.T) {
		dir := t.TempDir()
		configPath := filepath.Join(dir, "config.yml")
		require.NoError(t, os.WriteFile(configPath, []byte("recent: -1\n"), 0o644))

		_, err := Load(configPath, dir)
		assert.Error(t, err)
	})
}

func TestValidate(t *testing.T) {
	t.Run("relative task file without data dir", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.TaskFile = "tasks.json"
		cfg.Log.Level = "info"

		err := cfg.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "data directory")
	})

	t.Run("relative task file with data dir is fine", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.DataDir = "/tmp/tracker"
		cfg.TaskFile = "tasks.json"
		cfg.Log.Level = "info"

		assert.NoError(t, cfg.Validate())
	})
}
