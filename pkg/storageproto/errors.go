package storageproto

import (
	"errors"
	"fmt"
)

// ErrNotFound — запрошенного файла нет в хранилище (HTTP 404).
var ErrNotFound = errors.New("file not found")

// NotFoundError сообщает об отсутствии файла с конкретным именем.
// Текст ошибки совпадает с detail ответа 404.
type NotFoundError struct {
	Name string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("File '%s' not found", e.Name)
}

// Is позволяет сравнивать ошибку с ErrNotFound через errors.Is.
func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}
