package httperrors

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourname/file_storage_lite/internal/models"
	"github.com/yourname/file_storage_lite/pkg/storageproto"
)

func TestWrite(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantDetail string
	}{
		{
			name:       "not found",
			err:        &models.NotFoundError{Name: "x"},
			wantStatus: http.StatusNotFound,
			wantDetail: "File 'x' not found",
		},
		{
			name:       "invalid name",
			err:        fmt.Errorf("%w: %q", models.ErrInvalidName, ".."),
			wantStatus: http.StatusBadRequest,
			wantDetail: `invalid file name: ".."`,
		},
		{
			name:       "io error",
			err:        errors.New("disk full"),
			wantStatus: http.StatusInternalServerError,
			wantDetail: "disk full",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			Write(rec, tt.err)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, storageproto.ContentTypeJSON, rec.Header().Get("Content-Type"))

			var body storageproto.ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.wantDetail, body.Detail)
		})
	}
}
