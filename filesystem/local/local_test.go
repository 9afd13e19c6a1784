package local

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oarkflow/listingfilter/filesystem"
)

func fixture(t *testing.T) *Storage {
	t.Helper()
	root := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(root, "docs"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "readme.txt"), []byte("hello"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "cat.png"), []byte("\x89PNG\r\n\x1a\n"), 0o644))
	s, err := NewStorage(root)
	require.NoError(t, err)
	return s
}

func TestListDirOrdersDirsFirst(t *testing.T) {
	s := fixture(t)
	infos, err := s.ListDir("")
	require.NoError(t, err)
	require.Len(t, infos, 3)
	assert.Equal(t, "docs", infos[0].Name)
	assert.True(t, infos[0].IsDir)
	assert.Equal(t, "cat.png", infos[1].Name)
	assert.Equal(t, "readme.txt", infos[2].Name)
	assert.EqualValues(t, 5, infos[2].Size)
}

func TestReadFile(t *testing.T) {
	s := fixture(t)
	data, mimeType, err := s.ReadFile("readme.txt")
	require.NoError(t, err)
	assert.Equal(t, "hello", string(data))
	assert.Contains(t, mimeType, "text/plain")

	_, mimeType, err = s.ReadFile("cat.png")
	require.NoError(t, err)
	assert.Equal(t, "image/png", mimeType)
}

func TestPathsOutsideRootAreRejected(t *testing.T) {
	s := fixture(t)
	_, err := s.ListDir("../")
	assert.ErrorIs(t, err, filesystem.ErrOutsideRoot)
	_, _, err = s.ReadFile("docs/../../etc/passwd")
	assert.ErrorIs(t, err, filesystem.ErrOutsideRoot)
}

func TestNewStorageRejectsFiles(t *testing.T) {
	s := fixture(t)
	_, err := NewStorage(filepath.Join(s.BasePath(), "readme.txt"))
	assert.Error(t, err)
	_, err = NewStorage(filepath.Join(s.BasePath(), "missing"))
	assert.Error(t, err)
}
