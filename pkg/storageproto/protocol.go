// Package storageproto описывает HTTP-протокол файлового хранилища: пути, заголовки и тела ответов.
package storageproto

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Пути REST API.
const (
	PathRoot       = "/"
	PathFiles      = "/files"
	PathFile       = "/files/{filename}"
	PathMetrics    = "/metrics"
	PathPrometheus = "/metrics/prometheus"
	PathHealth     = "/health"

	FormFieldFile    = "file"
	HeaderRequestID  = "X-Request-ID"
	ServiceTitle     = "File Storage API"
	ContentTypeJSON  = "application/json"
	ContentTypeBytes = "application/octet-stream"
)

// Endpoints перечисляет эндпоинты, которые отдаёт GET /.
var Endpoints = []string{
	"GET /",
	"POST /files",
	"GET /files",
	"GET /files/{filename}",
	"GET /metrics",
	"GET /health",
}

// RootResponse — тело ответа GET /.
type RootResponse struct {
	Message   string   `json:"message"`
	Endpoints []string `json:"endpoints"`
}

// UploadResponse — тело ответа POST /files.
type UploadResponse struct {
	Filename string `json:"filename"`
	Size     int64  `json:"size"`
}

// ListResponse — тело ответа GET /files.
type ListResponse struct {
	Files []string `json:"files"`
	Count int      `json:"count"`
}

// MetricsResponse — тело ответа GET /metrics.
type MetricsResponse struct {
	FilesStoredTotal  int64   `json:"files_stored_total"`
	FilesCurrent      int     `json:"files_current"`
	TotalStorageBytes int64   `json:"total_storage_bytes"`
	TotalStorageMB    float64 `json:"total_storage_mb"`
}

// HealthResponse — тело ответа GET /health.
type HealthResponse struct {
	Status string `json:"status"`
}

// ErrorResponse — тело любого ответа с ошибкой.
type ErrorResponse struct {
	Detail string `json:"detail"`
}

// ContentDisposition формирует заголовок для выдачи файла как вложения (RFC 6266).
// Для имён вне ASCII добавляется filename*=UTF-8''..., а filename содержит ASCII-замену.
func ContentDisposition(filename string) string {
	if isASCII(filename) {
		return fmt.Sprintf("attachment; filename=%q", filename)
	}

	return fmt.Sprintf("attachment; filename=%q; filename*=UTF-8''%s", asciiFallback(filename), encodeExtValue(filename))
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= utf8.RuneSelf || s[i] < 0x20 || s[i] == 0x7f {
			return false
		}
	}
	return true
}

func asciiFallback(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r < utf8.RuneSelf && r >= 0x20 && r != 0x7f {
			b.WriteRune(r)
			continue
		}
		b.WriteByte('_')
	}
	return b.String()
}

// encodeExtValue кодирует значение по RFC 5987: всё, кроме attr-char, в %XX.
func encodeExtValue(s string) string {
	const hex = "0123456789ABCDEF"

	var b strings.Builder
	for i := 0; i < len(s); i++ {
		c := s[i]
		if isAttrChar(c) {
			b.WriteByte(c)
			continue
		}
		b.WriteByte('%')
		b.WriteByte(hex[c>>4])
		b.WriteByte(hex[c&0x0f])
	}
	return b.String()
}

func isAttrChar(c byte) bool {
	switch {
	case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
		return true
	}
	return strings.IndexByte("!#$&+-.^_`|~", c) >= 0
}
