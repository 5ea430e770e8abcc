package filesvc

import (
	"context"
	"io"

	"github.com/sirupsen/logrus"
	"go.uber.org/atomic"

	"github.com/yourname/file_storage_lite/internal/models"
)

type (
	// FileStorage — плоское хранилище файлов, ключ — имя файла.
	FileStorage interface {
		Save(ctx context.Context, name string, r io.Reader) (int64, error)
		List(ctx context.Context) ([]models.StoredFile, error)
		Open(ctx context.Context, name string) (io.ReadCloser, int64, error)
		Usage(ctx context.Context) (models.Usage, error)
	}

	// Service объединяет операции по загрузке, выдаче файлов и сбору метрик.
	Service interface {
		Upload(ctx context.Context, name string, r io.Reader) (models.UploadResult, error)
		List(ctx context.Context) ([]string, error)
		Retrieve(ctx context.Context, name string) (io.ReadCloser, int64, error)
		Metrics(ctx context.Context) (models.Metrics, error)
	}
)

type Deps struct {
	Storage FileStorage
	Log     logrus.FieldLogger
}

// Files хранит состояние сервиса: счётчик загрузок живёт столько же, сколько процесс.
type Files struct {
	Deps
	storedTotal atomic.Int64
}

// New конструирует сервис с заданными зависимостями.
func New(deps Deps) *Files {
	if deps.Log == nil {
		deps.Log = logrus.StandardLogger()
	}
	return &Files{Deps: deps}
}

var _ Service = (*Files)(nil)

// StoredTotal возвращает число успешных загрузок с момента старта.
func (s *Files) StoredTotal() int64 {
	return s.storedTotal.Load()
}
