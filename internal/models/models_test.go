package models

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotFoundError(t *testing.T) {
	err := fmt.Errorf("open: %w", &NotFoundError{Name: "x"})

	assert.True(t, errors.Is(err, ErrNotFound))
	assert.False(t, errors.Is(err, ErrInvalidName))
	assert.Equal(t, "File 'x' not found", (&NotFoundError{Name: "x"}).Error())
}

func TestBytesToMB(t *testing.T) {
	assert.Equal(t, 0.0, BytesToMB(4))
	assert.Equal(t, 1.0, BytesToMB(1<<20))
	assert.Equal(t, 1.5, BytesToMB(3<<19))
	assert.Equal(t, 0.01, BytesToMB(10486))
}

func TestNewMetrics(t *testing.T) {
	m := NewMetrics(3, Usage{Files: 2, Bytes: 2 << 20})

	assert.Equal(t, Metrics{
		FilesStoredTotal:  3,
		FilesCurrent:      2,
		TotalStorageBytes: 2 << 20,
		TotalStorageMB:    2.0,
	}, m)
}
