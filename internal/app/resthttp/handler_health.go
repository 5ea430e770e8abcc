package resthttp

import (
	"net/http"

	"github.com/yourname/file_storage_lite/pkg/storageproto"
)

func (s *Server) health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, storageproto.HealthResponse{Status: "healthy"})
}
