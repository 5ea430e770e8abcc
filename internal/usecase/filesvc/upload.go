package filesvc

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/yourname/file_storage_lite/internal/models"
)

// Upload сохраняет содержимое под клиентским именем. Файл с тем же именем перезаписывается.
func (s *Files) Upload(ctx context.Context, name string, r io.Reader) (models.UploadResult, error) {
	clean, err := CleanName(name)
	if err != nil {
		return models.UploadResult{}, err
	}

	size, err := s.Storage.Save(ctx, clean, r)
	if err != nil {
		return models.UploadResult{}, fmt.Errorf("store %s: %w", clean, err)
	}

	s.storedTotal.Inc()
	s.Log.WithFields(logrus.Fields{"filename": clean, "size": size}).Info("file stored")

	return models.UploadResult{Filename: clean, Size: size}, nil
}

// CleanName оставляет от клиентского имени только последний сегмент пути.
// Пробелы в имени сохраняются; отклоняется лишь имя, состоящее из одних пробелов.
func CleanName(name string) (string, error) {
	name = strings.ReplaceAll(name, `\`, "/")
	base := path.Base(name)
	if strings.TrimSpace(name) == "" || base == "." || base == ".." || base == "/" {
		return "", fmt.Errorf("%w: %q", models.ErrInvalidName, name)
	}

	return base, nil
}
