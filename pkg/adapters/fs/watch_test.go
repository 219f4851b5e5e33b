package fs_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/taskflow/pkg/adapters/fs"
	"github.com/aretw0/taskflow/pkg/core"
)

func waitForEvent(t *testing.T, events <-chan core.Event, ctx context.Context) core.Event {
	t.Helper()
	select {
	case e, ok := <-events:
		require.True(t, ok, "events channel closed early")
		return e
	case <-ctx.Done():
		t.Fatal("Timed out waiting for event")
		return core.Event{}
	}
}

func TestWatch_TaskFileChange(t *testing.T) {
	store, _ := setupStore(t)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	events, err := store.Watch(ctx, "")
	require.NoError(t, err)

	// naive readiness wait
	time.Sleep(100 * time.Millisecond)

	// a second handle on the same root, as another process would have
	other := fs.NewStore(fs.Config{Path: store.Path})
	require.NoError(t, other.Save(ctx, sampleTasks()))

	e := waitForEvent(t, events, ctx)
	assert.Equal(t, fs.DefaultFile, e.ID)
	assert.Contains(t, []core.EventType{core.EventCreate, core.EventModify}, e.Type)
}

func TestWatch_IgnoresOtherFiles(t *testing.T) {
	store, root := setupStore(t)
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	events, err := store.Watch(ctx, "")
	require.NoError(t, err)
	time.Sleep(100 * time.Millisecond)

	require.NoError(t, os.WriteFile(filepath.Join(root, "notes.txt"), []byte("hi"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(root, fs.DefaultFile), []byte("[]\n"), 0644))

	e := waitForEvent(t, events, ctx)
	assert.Equal(t, fs.DefaultFile, e.ID, "only the task file should be reported")
}

func TestWatch_GlobPattern(t *testing.T) {
	store, root := setupStore(t)
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	events, err := store.Watch(ctx, "*.yaml")
	require.NoError(t, err)
	time.Sleep(100 * time.Millisecond)

	require.NoError(t, os.WriteFile(filepath.Join(root, "config.yaml"), []byte("file: tasks.json\n"), 0644))

	e := waitForEvent(t, events, ctx)
	assert.Equal(t, "config.yaml", e.ID)
}

func TestWatch_InvalidPattern(t *testing.T) {
	store, _ := setupStore(t)

	_, err := store.Watch(context.Background(), "[")
	assert.Error(t, err)
}

func TestWatch_ClosesOnCancel(t *testing.T) {
	store, _ := setupStore(t)
	ctx, cancel := context.WithCancel(context.Background())

	events, err := store.Watch(ctx, "")
	require.NoError(t, err)
	cancel()

	deadline := time.After(2 * time.Second)
	for {
		select {
		case _, ok := <-events:
			if !ok {
				return
			}
		case <-deadline:
			t.Fatal("events channel was not closed after cancel")
		}
	}
}
