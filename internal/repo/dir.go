package repo

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/yourname/file_storage_lite/internal/models"
)

// DirStore хранит файлы плоско в одном каталоге: имя файла и есть ключ.
type DirStore struct {
	root string
}

// NewDirStore создаёт хранилище поверх каталога root, создавая его при необходимости.
func NewDirStore(root string) (*DirStore, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("create storage dir: %w", err)
	}

	return &DirStore{root: root}, nil
}

// Root возвращает путь к каталогу хранения.
func (s *DirStore) Root() string {
	return s.root
}

// Save записывает содержимое под именем name, молча перезаписывая существующий файл.
func (s *DirStore) Save(ctx context.Context, name string, r io.Reader) (int64, error) {
	path, err := s.path(name)
	if err != nil {
		return 0, err
	}
	if err = ctx.Err(); err != nil {
		return 0, err
	}

	// Каталог могли удалить после старта — создаём заново.
	if err = os.MkdirAll(s.root, 0o755); err != nil {
		return 0, fmt.Errorf("create storage dir: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return 0, err
	}

	n, err := io.Copy(f, r)
	closeErr := f.Close()
	if err != nil {
		return n, fmt.Errorf("write %s: %w", name, err)
	}
	if closeErr != nil {
		return n, closeErr
	}

	return n, nil
}

// List возвращает обычные файлы каталога в порядке ReadDir.
func (s *DirStore) List(ctx context.Context) ([]models.StoredFile, error) {
	entries, err := os.ReadDir(s.root)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []models.StoredFile{}, nil
		}
		return nil, err
	}

	files := make([]models.StoredFile, 0, len(entries))
	for _, e := range entries {
		if err = ctx.Err(); err != nil {
			return nil, err
		}
		if !e.Type().IsRegular() {
			continue
		}

		info, err := e.Info()
		if err != nil {
			// файл могли удалить между ReadDir и Info
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return nil, err
		}
		files = append(files, models.StoredFile{Name: e.Name(), Size: info.Size()})
	}

	return files, nil
}

// Open открывает файл на чтение и возвращает его размер.
func (s *DirStore) Open(_ context.Context, name string) (io.ReadCloser, int64, error) {
	path, err := s.path(name)
	if err != nil {
		return nil, 0, err
	}

	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, 0, &models.NotFoundError{Name: name}
		}
		return nil, 0, err
	}

	info, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return nil, 0, err
	}
	if !info.Mode().IsRegular() {
		_ = f.Close()
		return nil, 0, &models.NotFoundError{Name: name}
	}

	return f, info.Size(), nil
}

// Usage считает количество и суммарный размер файлов прямо по диску, без кеша.
func (s *DirStore) Usage(ctx context.Context) (models.Usage, error) {
	files, err := s.List(ctx)
	if err != nil {
		return models.Usage{}, err
	}

	var usage models.Usage
	for _, f := range files {
		usage.Files++
		usage.Bytes += f.Size
	}

	return usage, nil
}

// path строит путь внутри root и не даёт выйти за пределы каталога.
func (s *DirStore) path(name string) (string, error) {
	if name == "" || name == "." || name == ".." || filepath.Base(name) != name {
		return "", fmt.Errorf("%w: %q", models.ErrInvalidName, name)
	}

	return filepath.Join(s.root, name), nil
}
