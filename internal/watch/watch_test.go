package watch

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileWatcherReportsChanges(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "beam.json")
	other := filepath.Join(dir, "notes.txt")
	require.NoError(t, os.WriteFile(target, []byte("{}"), 0o644))

	fw, err := NewFileWatcher(nil, 20*time.Millisecond, target)
	require.NoError(t, err)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	fw.Start(ctx)

	require.NoError(t, os.WriteFile(other, []byte("x"), 0o644))
	require.NoError(t, os.WriteFile(target, []byte(`{"spans": []}`), 0o644))
	require.NoError(t, os.WriteFile(target, []byte(`{"spans": [], "supports": []}`), 0o644))

	select {
	case got := <-fw.Events():
		abs, _ := filepath.Abs(target)
		assert.Equal(t, abs, got)
	case <-time.After(5 * time.Second):
		t.Fatal("no change event")
	}

	cancel()
	for range fw.Events() {
	}
}

func TestRunStopsWithContext(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "frame.yaml")
	require.NoError(t, os.WriteFile(target, []byte("nodes: []\n"), 0o644))

	ctx, cancel := context.WithCancel(context.Background())
	calls := make(chan struct{}, 8)
	done := make(chan error, 1)
	go func() {
		done <- Run(ctx, nil, target, func() error {
			calls <- struct{}{}
			return nil
		})
	}()

	select {
	case <-calls:
	case <-time.After(5 * time.Second):
		t.Fatal("initial run did not happen")
	}

	require.NoError(t, os.WriteFile(target, []byte("nodes: [a]\n"), 0o644))
	select {
	case <-calls:
	case <-time.After(5 * time.Second):
		t.Fatal("change did not trigger a rerun")
	}

	cancel()
	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}
