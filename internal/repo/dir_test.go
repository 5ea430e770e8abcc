package repo

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourname/file_storage_lite/internal/models"
)

func TestDirStore_SaveOpenOverwrite(t *testing.T) {
	ctx := context.Background()
	root := filepath.Join(t.TempDir(), "storage")
	s, err := NewDirStore(root)
	require.NoError(t, err)

	n, err := s.Save(ctx, "a.txt", strings.NewReader("hello"))
	require.NoError(t, err)
	assert.Equal(t, int64(5), n)

	n, err = s.Save(ctx, "a.txt", strings.NewReader("bye"))
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)

	rc, size, err := s.Open(ctx, "a.txt")
	require.NoError(t, err)
	defer rc.Close()
	got, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, "bye", string(got))
	assert.Equal(t, int64(3), size)

	usage, err := s.Usage(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.Usage{Files: 1, Bytes: 3}, usage)
}

func TestDirStore_SaveRecreatesMissingDir(t *testing.T) {
	root := filepath.Join(t.TempDir(), "storage")
	s, err := NewDirStore(root)
	require.NoError(t, err)
	require.NoError(t, os.RemoveAll(root))

	_, err = s.Save(context.Background(), "x.bin", strings.NewReader("x"))
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(root, "x.bin"))
}

func TestDirStore_ListSkipsDirectories(t *testing.T) {
	root := t.TempDir()
	s, err := NewDirStore(root)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(root, "a.txt"), []byte("a"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "b.txt"), []byte("bb"), 0o644))
	require.NoError(t, os.Mkdir(filepath.Join(root, "nested"), 0o755))

	files, err := s.List(context.Background())
	require.NoError(t, err)
	assert.ElementsMatch(t, []models.StoredFile{{Name: "a.txt", Size: 1}, {Name: "b.txt", Size: 2}}, files)

	_, _, err = s.Open(context.Background(), "nested")
	assert.True(t, errors.Is(err, models.ErrNotFound))
}

func TestDirStore_ListMissingDirIsEmpty(t *testing.T) {
	root := filepath.Join(t.TempDir(), "storage")
	s, err := NewDirStore(root)
	require.NoError(t, err)
	require.NoError(t, os.RemoveAll(root))

	files, err := s.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, files)

	usage, err := s.Usage(context.Background())
	require.NoError(t, err)
	assert.Equal(t, models.Usage{}, usage)
}

func TestDirStore_OpenMissing(t *testing.T) {
	s, err := NewDirStore(t.TempDir())
	require.NoError(t, err)

	_, _, err = s.Open(context.Background(), "missing.txt")
	require.Error(t, err)
	assert.True(t, errors.Is(err, models.ErrNotFound))
	assert.Equal(t, "File 'missing.txt' not found", err.Error())
}

func TestDirStore_RejectsEscapingNames(t *testing.T) {
	s, err := NewDirStore(t.TempDir())
	require.NoError(t, err)

	for _, name := range []string{"", ".", "..", "../x", "a/b"} {
		_, err := s.Save(context.Background(), name, strings.NewReader("x"))
		assert.True(t, errors.Is(err, models.ErrInvalidName), name)
	}
}
