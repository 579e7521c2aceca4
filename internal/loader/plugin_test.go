package loader_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vk/modfactory/internal/loader"
)

func TestPluginSource_IgnoresLogicalNames(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "modfactory"), []byte("x"), 0644))

	src := &loader.PluginSource{Dirs: []string{dir}}
	_, err := src.Open(testCtx(), "modfactory")
	require.Error(t, err)
	require.True(t, errors.Is(err, loader.ErrLibraryNotFound))
}

func TestPluginSource_MissingLibrary(t *testing.T) {
	t.Parallel()

	src := &loader.PluginSource{Dirs: []string{t.TempDir()}}
	_, err := src.Open(testCtx(), "libmodfactory-mock.so")
	require.Error(t, err)
	require.True(t, errors.Is(err, loader.ErrLibraryNotFound))
}

func TestPluginSource_InvalidLibrary(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "libbroken.so"), []byte("not a shared object"), 0644))

	src := &loader.PluginSource{Dirs: []string{dir}}
	_, err := src.Open(testCtx(), "libbroken.so")
	require.Error(t, err)
	require.False(t, errors.Is(err, loader.ErrLibraryNotFound))
}

func TestPluginSource_InvalidLibraryDegradesToNop(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "libbroken.so"), []byte("not a shared object"), 0644))

	cache := loader.NewCache(&loader.PluginSource{Dirs: []string{dir}})
	f := cache.Acquire(testCtx(), "libbroken.so")
	require.Nil(t, f.AttemptCreate("Foo", "IFoo"))
}

func TestPluginSource_Libraries(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	for _, name := range []string{"liba.so", "libb.dylib", "c.dll", "readme.txt"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("x"), 0644))
	}

	src := &loader.PluginSource{Dirs: []string{dir, filepath.Join(dir, "missing")}}
	libs, err := src.Libraries()
	require.NoError(t, err)
	require.ElementsMatch(t, []string{
		filepath.Join(dir, "liba.so"),
		filepath.Join(dir, "libb.dylib"),
		filepath.Join(dir, "c.dll"),
	}, libs)
}
