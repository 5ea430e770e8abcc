package filesvc

import (
	"context"
	"errors"
	"io"

	"github.com/yourname/file_storage_lite/internal/models"
)

// Retrieve открывает файл по имени. Для отсутствующего (или недопустимого) имени
// возвращается *models.NotFoundError.
func (s *Files) Retrieve(ctx context.Context, name string) (io.ReadCloser, int64, error) {
	rc, size, err := s.Storage.Open(ctx, name)
	if errors.Is(err, models.ErrInvalidName) {
		return nil, 0, &models.NotFoundError{Name: name}
	}
	if err != nil {
		return nil, 0, err
	}

	s.Log.WithField("filename", name).Debug("file retrieved")
	return rc, size, nil
}
