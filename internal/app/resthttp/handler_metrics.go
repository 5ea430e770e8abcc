package resthttp

import (
	"net/http"

	"github.com/yourname/file_storage_lite/pkg/httperrors"
	"github.com/yourname/file_storage_lite/pkg/storageproto"
)

// metrics отдаёт статистику использования, посчитанную на момент запроса.
func (s *Server) metrics(w http.ResponseWriter, r *http.Request) {
	m, err := s.FilesService.Metrics(r.Context())
	if err != nil {
		httperrors.Write(w, err)
		return
	}

	writeJSON(w, storageproto.MetricsResponse{
		FilesStoredTotal:  m.FilesStoredTotal,
		FilesCurrent:      m.FilesCurrent,
		TotalStorageBytes: m.TotalStorageBytes,
		TotalStorageMB:    m.TotalStorageMB,
	})
}
