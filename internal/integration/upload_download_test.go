package integration

import (
	"bytes"
	"context"
	"crypto/sha256"
	"errors"
	"fmt"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourname/file_storage_lite/internal/app/resthttp"
	"github.com/yourname/file_storage_lite/internal/config"
	"github.com/yourname/file_storage_lite/internal/logging"
	"github.com/yourname/file_storage_lite/pkg/storageclient"
	"github.com/yourname/file_storage_lite/pkg/storageproto"
)

func newClient(t *testing.T) (storageclient.Client, *bytes.Buffer) {
	t.Helper()

	cfg := config.Default()
	cfg.StorageDir = filepath.Join(t.TempDir(), "storage")
	h, _, err := resthttp.NewServer(cfg, logging.Discard())
	require.NoError(t, err)

	rest := httptest.NewServer(h)
	t.Cleanup(rest.Close)

	var progress bytes.Buffer
	return storageclient.New(rest.URL, storageclient.Options{Progress: &progress}), &progress
}

func Test_UploadDownload_Integrity(t *testing.T) {
	ctx := context.Background()
	cli, progress := newClient(t)
	require.NoError(t, cli.Health(ctx))

	payload := bytes.Repeat([]byte{0xA1, 0xB2, 0xC3, 0xD4}, 1<<18) // ~1MB
	want := sha256.Sum256(payload)

	res, err := cli.Upload(ctx, "blob.bin", bytes.NewReader(payload), int64(len(payload)))
	require.NoError(t, err)
	assert.Equal(t, "blob.bin", res.Filename)
	assert.Equal(t, int64(len(payload)), res.Size)

	var got bytes.Buffer
	n, err := cli.Download(ctx, "blob.bin", &got)
	require.NoError(t, err)
	assert.Equal(t, int64(len(payload)), n)
	assert.Equal(t, want, sha256.Sum256(got.Bytes()))

	assert.Contains(t, progress.String(), "Uploading blob.bin")
	assert.Contains(t, progress.String(), "Downloading blob.bin")
}

func Test_ListAndMetrics_AfterDistinctUploads(t *testing.T) {
	ctx := context.Background()
	cli, _ := newClient(t)

	const n = 5
	var names []string
	var total int64
	for i := 0; i < n; i++ {
		name := fmt.Sprintf("file_%d.txt", i)
		content := bytes.Repeat([]byte("x"), i+1)
		_, err := cli.Upload(ctx, name, bytes.NewReader(content), int64(len(content)))
		require.NoError(t, err)
		names = append(names, name)
		total += int64(len(content))
	}

	list, err := cli.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, n, list.Count)
	assert.ElementsMatch(t, names, list.Files)

	m, err := cli.Metrics(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(n), m.FilesStoredTotal)
	assert.Equal(t, n, m.FilesCurrent)
	assert.Equal(t, total, m.TotalStorageBytes)
}

func Test_DownloadMissing(t *testing.T) {
	cli, _ := newClient(t)

	_, err := cli.Download(context.Background(), "x", &bytes.Buffer{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, storageproto.ErrNotFound))
	assert.Equal(t, "File 'x' not found", err.Error())
}

func Test_FilenameWithSpaces(t *testing.T) {
	ctx := context.Background()
	cli, _ := newClient(t)

	_, err := cli.Upload(ctx, "my report.txt", bytes.NewReader([]byte("abc")), 3)
	require.NoError(t, err)

	var got bytes.Buffer
	_, err = cli.Download(ctx, "my report.txt", &got)
	require.NoError(t, err)
	assert.Equal(t, "abc", got.String())
}
