package workspace

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromPaths(t *testing.T) {
	a, b := t.TempDir(), t.TempDir()
	w, err := FromPaths(a, b)
	require.NoError(t, err)
	assert.Len(t, w.Storages(), 2)
	assert.Equal(t, filepath.Base(a), w.Roots[0].Name)

	s, ok := w.Storage(1)
	require.True(t, ok)
	assert.Equal(t, w.Paths()[1], s.BasePath())
	_, ok = w.Storage(2)
	assert.False(t, ok)
}

func TestFromPathsRequiresRoots(t *testing.T) {
	_, err := FromPaths()
	assert.ErrorIs(t, err, ErrNoRoots)
}

func TestLoadList(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, "photos"), 0o755))
	file := filepath.Join(dir, "workspace.yaml")
	require.NoError(t, os.WriteFile(file, []byte("- name: Photos\n  path: photos\n"), 0o644))

	w, err := Load(file)
	require.NoError(t, err)
	require.Len(t, w.Roots, 1)
	assert.Equal(t, "Photos", w.Roots[0].Name)
	assert.Equal(t, filepath.Join(dir, "photos"), w.Roots[0].Path)
}

func TestLoadDocument(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "workspace.yaml")
	require.NoError(t, os.WriteFile(file, []byte("roots:\n  - path: .\n"), 0o644))

	w, err := Load(file)
	require.NoError(t, err)
	assert.Len(t, w.Storages(), 1)
}

func TestLoadMissingDirectory(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "workspace.yaml")
	require.NoError(t, os.WriteFile(file, []byte("- path: gone\n"), 0o644))

	_, err := Load(file)
	assert.Error(t, err)
}
