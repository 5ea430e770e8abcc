package models

import "math"

const bytesPerMB = 1024 * 1024

// StoredFile описывает файл, лежащий в каталоге хранения.
type StoredFile struct {
	Name string `json:"filename"`
	Size int64  `json:"size"`
}

// UploadResult возвращается после успешной загрузки.
type UploadResult struct {
	Filename string `json:"filename"`
	Size     int64  `json:"size"`
}

// Usage — агрегат по текущему содержимому каталога.
type Usage struct {
	Files int
	Bytes int64
}

// Metrics — снимок статистики на момент запроса.
type Metrics struct {
	FilesStoredTotal  int64   `json:"files_stored_total"`
	FilesCurrent      int     `json:"files_current"`
	TotalStorageBytes int64   `json:"total_storage_bytes"`
	TotalStorageMB    float64 `json:"total_storage_mb"`
}

// NewMetrics собирает снимок из счётчика загрузок и текущего использования диска.
func NewMetrics(storedTotal int64, usage Usage) Metrics {
	return Metrics{
		FilesStoredTotal:  storedTotal,
		FilesCurrent:      usage.Files,
		TotalStorageBytes: usage.Bytes,
		TotalStorageMB:    BytesToMB(usage.Bytes),
	}
}

// BytesToMB переводит байты в мегабайты с округлением до двух знаков.
func BytesToMB(n int64) float64 {
	return math.Round(float64(n)/bytesPerMB*100) / 100
}
