package models

import (
	"errors"

	"github.com/yourname/file_storage_lite/pkg/storageproto"
)

var (
	// ErrNotFound совпадает с storageproto.ErrNotFound, чтобы клиенты вне модуля проверяли ту же ошибку.
	ErrNotFound    = storageproto.ErrNotFound
	ErrInvalidName = errors.New("invalid file name")
)

// NotFoundError сообщает об отсутствии файла с конкретным именем.
type NotFoundError = storageproto.NotFoundError
