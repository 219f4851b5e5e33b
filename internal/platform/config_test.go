package platform_test

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/taskflow/internal/platform"
	"github.com/aretw0/taskflow/pkg/adapters/fs"
)

func writeConfig(t *testing.T, dir, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, platform.ConfigFile), []byte(content), 0644))
}

func TestLoadConfig(t *testing.T) {
	t.Run("Missing File", func(t *testing.T) {
		cfg, err := platform.LoadConfig(t.TempDir())
		require.NoError(t, err)
		assert.Equal(t, platform.Config{}, cfg)
		assert.Empty(t, cfg.Options())
	})

	t.Run("All Fields", func(t *testing.T) {
		dir := t.TempDir()
		writeConfig(t, dir, "file: tasks.yaml\nadapter: fs\nread_only: true\nlog_level: debug\ndev_safety: false\n")

		cfg, err := platform.LoadConfig(dir)
		require.NoError(t, err)
		assert.Equal(t, "tasks.yaml", cfg.File)
		assert.Equal(t, "fs", cfg.Adapter)
		require.NotNil(t, cfg.ReadOnly)
		assert.True(t, *cfg.ReadOnly)
		require.NotNil(t, cfg.DevSafety)
		assert.False(t, *cfg.DevSafety)
		assert.Len(t, cfg.Options(), 4)
	})

	t.Run("Invalid YAML", func(t *testing.T) {
		dir := t.TempDir()
		writeConfig(t, dir, "file: [unterminated\n")
		_, err := platform.LoadConfig(dir)
		assert.Error(t, err)
	})

	t.Run("Invalid Log Level", func(t *testing.T) {
		dir := t.TempDir()
		writeConfig(t, dir, "log_level: loud\n")
		_, err := platform.LoadConfig(dir)
		assert.Error(t, err)
	})
}

func TestConfigOptions_Apply(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "file: tasks.yml\n")

	cfg, err := platform.LoadConfig(dir)
	require.NoError(t, err)

	store, err := platform.Init(dir, cfg.Options()...)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "tasks.yml"), store.(*fs.Store).Filename())

	// later options override the file
	store, err = platform.Init(dir, append(cfg.Options(), platform.WithFile("other.json"))...)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "other.json"), store.(*fs.Store).Filename())
}

func TestParseLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug": slog.LevelDebug,
		"INFO":  slog.LevelInfo,
		"warn":  slog.LevelWarn,
		"Error": slog.LevelError,
	}
	for in, want := range tests {
		got, err := platform.ParseLevel(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := platform.ParseLevel("verbose")
	assert.Error(t, err)
}
