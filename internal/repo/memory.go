package repo

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/yourname/file_storage_lite/internal/models"
)

// MemoryStore хранит файлы только в оперативной памяти; удобно для тестов.
type MemoryStore struct {
	mu    sync.RWMutex
	files map[string][]byte
}

// NewMemoryStore создаёт пустое in-memory хранилище.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{files: map[string][]byte{}}
}

// Save записывает (или перезаписывает) содержимое файла целиком.
func (s *MemoryStore) Save(_ context.Context, name string, r io.Reader) (int64, error) {
	if name == "" {
		return 0, fmt.Errorf("%w: %q", models.ErrInvalidName, name)
	}

	b, err := io.ReadAll(r)
	if err != nil {
		return 0, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.files[name] = b
	return int64(len(b)), nil
}

// List возвращает все файлы без гарантии порядка.
func (s *MemoryStore) List(_ context.Context) ([]models.StoredFile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.StoredFile, 0, len(s.files))
	for name, b := range s.files {
		out = append(out, models.StoredFile{Name: name, Size: int64(len(b))})
	}
	return out, nil
}

// Open возвращает копию содержимого файла по имени или NotFoundError.
func (s *MemoryStore) Open(_ context.Context, name string) (io.ReadCloser, int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	b, ok := s.files[name]
	if !ok {
		return nil, 0, &models.NotFoundError{Name: name}
	}
	cp := append([]byte(nil), b...)
	return io.NopCloser(bytes.NewReader(cp)), int64(len(cp)), nil
}

func (s *MemoryStore) Usage(_ context.Context) (models.Usage, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var usage models.Usage
	for _, b := range s.files {
		usage.Files++
		usage.Bytes += int64(len(b))
	}
	return usage, nil
}
