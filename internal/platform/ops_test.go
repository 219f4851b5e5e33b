package platform_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/taskflow/internal/platform"
	"github.com/aretw0/taskflow/pkg/adapters/fs"
	"github.com/aretw0/taskflow/pkg/adapters/memory"
	"github.com/aretw0/taskflow/pkg/core"
)

func TestInit(t *testing.T) {
	t.Run("AutoInit Creates Directory", func(t *testing.T) {
		root := filepath.Join(t.TempDir(), "store")

		store, err := platform.Init(root, platform.WithForceTemp(true))
		require.NoError(t, err)

		fsStore, ok := store.(*fs.Store)
		require.True(t, ok, "expected fs store, got %T", store)
		assert.Equal(t, root, fsStore.Path)

		info, err := os.Stat(root)
		require.NoError(t, err)
		assert.True(t, info.IsDir())
	})

	t.Run("AutoInit=false Fails if Directory Missing", func(t *testing.T) {
		root := filepath.Join(t.TempDir(), "missing")

		_, err := platform.Init(root, platform.WithAutoInit(false), platform.WithMustExist(true), platform.WithForceTemp(true))
		assert.Error(t, err)
	})

	t.Run("Read Only Does Not Create", func(t *testing.T) {
		root := filepath.Join(t.TempDir(), "missing")

		_, err := platform.Init(root, platform.WithReadOnly(true))
		assert.Error(t, err)
		_, statErr := os.Stat(root)
		assert.True(t, os.IsNotExist(statErr))
	})

	t.Run("Custom File", func(t *testing.T) {
		root := t.TempDir()

		store, err := platform.Init(root, platform.WithFile("tasks.yaml"))
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(root, "tasks.yaml"), store.(*fs.Store).Filename())
	})

	t.Run("Unsupported File Format", func(t *testing.T) {
		_, err := platform.Init(t.TempDir(), platform.WithFile("tasks.ini"))
		assert.Error(t, err)
	})

	t.Run("Custom Serializer", func(t *testing.T) {
		_, err := platform.Init(t.TempDir(), platform.WithFile("tasks.ini"), platform.WithSerializer(".ini", fs.JSONSerializer{}))
		assert.NoError(t, err)
	})

	t.Run("Memory Adapter", func(t *testing.T) {
		store, err := platform.Init("", platform.WithAdapter("memory"))
		require.NoError(t, err)
		assert.IsType(t, &memory.Store{}, store)
	})

	t.Run("Memory Adapter Read Only", func(t *testing.T) {
		store, err := platform.Init("", platform.WithAdapter("memory"), platform.WithReadOnly(true))
		require.NoError(t, err)
		err = store.Save(context.Background(), nil)
		assert.True(t, errors.Is(err, core.ErrReadOnly))
	})

	t.Run("Unknown Adapter", func(t *testing.T) {
		_, err := platform.Init("", platform.WithAdapter("s3"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unknown adapter")
	})

	t.Run("Injected Store", func(t *testing.T) {
		injected := memory.New()
		store, err := platform.Init("ignored", platform.WithStore(injected), platform.WithAdapter("s3"))
		require.NoError(t, err)
		assert.Same(t, injected, store)
	})
}
