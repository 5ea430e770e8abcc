package filesvc

import (
	"context"

	"github.com/yourname/file_storage_lite/internal/models"
)

// Metrics сканирует каталог на каждый вызов и дополняет результат счётчиком загрузок.
func (s *Files) Metrics(ctx context.Context) (models.Metrics, error) {
	usage, err := s.Storage.Usage(ctx)
	if err != nil {
		return models.Metrics{}, err
	}

	return models.NewMetrics(s.storedTotal.Load(), usage), nil
}
