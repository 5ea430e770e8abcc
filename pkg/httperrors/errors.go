package httperrors

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/yourname/file_storage_lite/internal/models"
	"github.com/yourname/file_storage_lite/pkg/storageproto"
)

// Write переводит доменную ошибку в HTTP-статус и JSON-тело {"detail": "..."}.
func Write(w http.ResponseWriter, err error) {
	WriteStatus(w, Status(err), err.Error())
}

// Status возвращает HTTP-статус для ошибки.
func Status(err error) int {
	switch {
	case errors.Is(err, models.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, models.ErrInvalidName):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// WriteStatus пишет JSON-ошибку с произвольным статусом.
func WriteStatus(w http.ResponseWriter, status int, detail string) {
	w.Header().Set("Content-Type", storageproto.ContentTypeJSON)
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(storageproto.ErrorResponse{Detail: detail})
}
