package repo

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourname/file_storage_lite/internal/models"
)

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	_, err := s.Save(ctx, "a", strings.NewReader("abcd"))
	require.NoError(t, err)
	_, err = s.Save(ctx, "b", strings.NewReader("xy"))
	require.NoError(t, err)

	rc, size, err := s.Open(ctx, "a")
	require.NoError(t, err)
	b, _ := io.ReadAll(rc)
	assert.Equal(t, "abcd", string(b))
	assert.Equal(t, int64(4), size)

	usage, err := s.Usage(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.Usage{Files: 2, Bytes: 6}, usage)

	_, _, err = s.Open(ctx, "c")
	assert.True(t, errors.Is(err, models.ErrNotFound))
}
