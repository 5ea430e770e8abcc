package storageclient

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourname/file_storage_lite/pkg/storageproto"
)

func TestDownloadNotFoundIsCheckableOutsideModule(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", storageproto.ContentTypeJSON)
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"detail":"File 'x' not found"}`))
	}))
	t.Cleanup(srv.Close)

	cli := New(srv.URL, Options{})
	_, err := cli.Download(context.Background(), "x", &bytes.Buffer{})
	require.Error(t, err)

	var nf *storageproto.NotFoundError
	assert.True(t, errors.Is(err, storageproto.ErrNotFound))
	require.True(t, errors.As(err, &nf))
	assert.Equal(t, "x", nf.Name)
}

func TestDownloadServerErrorCarriesDetail(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"detail":"disk full"}`))
	}))
	t.Cleanup(srv.Close)

	_, err := New(srv.URL, Options{}).Download(context.Background(), "x", &bytes.Buffer{})
	require.Error(t, err)
	assert.False(t, errors.Is(err, storageproto.ErrNotFound))
	assert.Contains(t, err.Error(), "disk full")
}
