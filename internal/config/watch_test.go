package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func writeConfig(t *testing.T, path, theme string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte("ui:\n  theme: "+theme+"\n"), 0644))
}

func TestWatcherDeliversReload(t *testing.T) {
	clearEnv(t)

	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	writeConfig(t, path, "light")

	w, err := NewWatcher(path, nil)
	require.NoError(t, err)
	require.NoError(t, w.Start(context.Background()))
	defer w.Stop()

	writeConfig(t, path, "dark")

	select {
	case cfg := <-w.Updates():
		assert.Equal(t, "dark", cfg.UI.Theme)
	case <-time.After(5 * time.Second):
		t.Fatal("no reload delivered")
	}
}

func TestWatcherDropsInvalidReload(t *testing.T) {
	clearEnv(t)

	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	writeConfig(t, path, "light")

	w, err := NewWatcher(path, nil)
	require.NoError(t, err)
	require.NoError(t, w.Start(context.Background()))
	defer w.Stop()

	writeConfig(t, path, "neon") // fails validation

	select {
	case cfg := <-w.Updates():
		t.Fatalf("invalid config delivered: %+v", cfg)
	case <-time.After(1 * time.Second):
		// Expected: rejected reloads are dropped.
	}
}

func TestWatcherIgnoresSiblingFiles(t *testing.T) {
	clearEnv(t)

	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	writeConfig(t, path, "light")

	w, err := NewWatcher(path, nil)
	require.NoError(t, err)
	require.NoError(t, w.Start(context.Background()))
	defer w.Stop()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.yaml"), []byte("x: 1\n"), 0644))

	select {
	case <-w.Updates():
		t.Fatal("sibling file write must not trigger a reload")
	case <-time.After(1 * time.Second):
	}
}

func TestWatcherStopIdempotent(t *testing.T) {
	w, err := NewWatcher(filepath.Join(t.TempDir(), "config.yaml"), nil)
	require.NoError(t, err)
	require.NoError(t, w.Start(context.Background()))

	w.Stop()
	w.Stop()
}

func TestWatcherStopsOnContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	w, err := NewWatcher(filepath.Join(t.TempDir(), "config.yaml"), nil)
	require.NoError(t, err)
	require.NoError(t, w.Start(ctx))

	cancel()
	// Stop still cleans up the fsnotify watcher itself.
	w.Stop()
}
