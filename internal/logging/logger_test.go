package logging

import (
	"os"
	"path/filepath"
	"testing"

	"parley/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resetState(t *testing.T) {
	t.Helper()
	Close()
	t.Cleanup(func() {
		Close()
		ReloadConfig(config.LoggingConfig{})
	})
}

func readCategoryLog(t *testing.T, dir string, cat Category) string {
	t.Helper()
	matches, err := filepath.Glob(filepath.Join(dir, "logs", "*_"+string(cat)+".log"))
	require.NoError(t, err)
	require.Len(t, matches, 1)
	data, err := os.ReadFile(matches[0])
	require.NoError(t, err)
	return string(data)
}

func TestDisabledIsNoOp(t *testing.T) {
	resetState(t)
	dir := t.TempDir()

	require.NoError(t, Initialize(dir, config.LoggingConfig{DebugMode: false}))
	Get(CategoryUI).Info("should not appear")

	_, err := os.Stat(filepath.Join(dir, "logs"))
	assert.True(t, os.IsNotExist(err), "logs dir must not be created when disabled")
}

func TestWritesToCategoryFile(t *testing.T) {
	resetState(t)
	dir := t.TempDir()

	require.NoError(t, Initialize(dir, config.LoggingConfig{DebugMode: true, Level: "info"}))
	Get(CategoryUI).Info("palette opened with %d options", 7)
	Close()

	content := readCategoryLog(t, dir, CategoryUI)
	assert.Contains(t, content, "[INFO] palette opened with 7 options")
}

func TestLevelFiltering(t *testing.T) {
	resetState(t)
	dir := t.TempDir()

	require.NoError(t, Initialize(dir, config.LoggingConfig{DebugMode: true, Level: "warn"}))
	l := Get(CategorySession)
	l.Debug("debug line")
	l.Info("info line")
	l.Warn("warn line")
	l.Error("error line")
	Close()

	content := readCategoryLog(t, dir, CategorySession)
	assert.NotContains(t, content, "debug line")
	assert.NotContains(t, content, "info line")
	assert.Contains(t, content, "[WARN] warn line")
	assert.Contains(t, content, "[ERROR] error line")
}

func TestCategoryFiltering(t *testing.T) {
	resetState(t)
	dir := t.TempDir()

	require.NoError(t, Initialize(dir, config.LoggingConfig{
		DebugMode:  true,
		Level:      "debug",
		Categories: map[string]bool{"notify": false},
	}))

	assert.False(t, IsCategoryEnabled(CategoryNotify))
	assert.True(t, IsCategoryEnabled(CategoryUI), "unlisted categories default to enabled")

	// Disabled category gets a no-op logger; no file is created.
	Get(CategoryNotify).Error("dropped")
	matches, err := filepath.Glob(filepath.Join(dir, "logs", "*_notify.log"))
	require.NoError(t, err)
	assert.Empty(t, matches)
}

func TestReloadConfigTakesEffect(t *testing.T) {
	resetState(t)
	dir := t.TempDir()

	require.NoError(t, Initialize(dir, config.LoggingConfig{DebugMode: true, Level: "error"}))
	l := Get(CategoryConfig)
	l.Info("before reload")

	ReloadConfig(config.LoggingConfig{DebugMode: true, Level: "info"})
	l.Info("after reload")
	Close()

	content := readCategoryLog(t, dir, CategoryConfig)
	assert.NotContains(t, content, "before reload")
	assert.Contains(t, content, "after reload")
}

func TestInitializeRequiresBaseDir(t *testing.T) {
	resetState(t)
	assert.Error(t, Initialize("", config.LoggingConfig{}))
}
