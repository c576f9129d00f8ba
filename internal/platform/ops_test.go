package platform_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/arty"
	"github.com/aretw0/arty/pkg/adapters/fs"
)

func TestInit(t *testing.T) {
	t.Run("Defaults To Filesystem JSON", func(t *testing.T) {
		repo, err := arty.Init()
		require.NoError(t, err)

		fsRepo, ok := repo.(*fs.Repository)
		require.True(t, ok, "expected fs repository, got %T", repo)

		state := fsRepo.State().(fs.RepositoryState)
		assert.Equal(t, "json", state.Format)
		assert.Equal(t, fs.DefaultSidecarName, state.SidecarName)
		assert.False(t, state.Locking)
	})

	t.Run("Options Reach The Adapter", func(t *testing.T) {
		repo, err := arty.Init(
			arty.WithFormat("YAML"),
			arty.WithLocking(true),
			arty.WithSidecarName(".gallery"),
		)
		require.NoError(t, err)

		state := repo.(*fs.Repository).State().(fs.RepositoryState)
		assert.Equal(t, "yaml", state.Format)
		assert.Equal(t, ".gallery", state.SidecarName)
		assert.True(t, state.Locking)
	})

	t.Run("Custom Serializer Wins Over Format", func(t *testing.T) {
		repo, err := arty.Init(arty.WithFormat("json"), arty.WithSerializer(fs.NewYAMLSerializer()))
		require.NoError(t, err)
		assert.Equal(t, "yaml", repo.(*fs.Repository).State().(fs.RepositoryState).Format)
	})

	t.Run("Unknown Format", func(t *testing.T) {
		_, err := arty.Init(arty.WithFormat("xml"))
		assert.Error(t, err)
	})

	t.Run("Invalid Serializer Type", func(t *testing.T) {
		_, err := arty.Init(arty.WithSerializer("not a serializer"))
		assert.Error(t, err)
	})

	t.Run("Sidecar Name With Separator", func(t *testing.T) {
		_, err := arty.Init(arty.WithSidecarName("nested/.collection"))
		assert.Error(t, err)
	})

	t.Run("Unknown Adapter", func(t *testing.T) {
		_, err := arty.Init(arty.WithAdapter("s3"))
		assert.Error(t, err)
	})

	t.Run("Injected Repository", func(t *testing.T) {
		injected := fs.NewRepository(fs.Config{})
		repo, err := arty.Init(arty.WithRepository(injected), arty.WithAdapter("s3"))
		require.NoError(t, err)
		assert.Same(t, injected, repo)
	})
}
