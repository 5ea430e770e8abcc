package resthttp

import (
	"net/http"

	"github.com/yourname/file_storage_lite/pkg/storageproto"
)

// root перечисляет доступные эндпоинты.
func (s *Server) root(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, storageproto.RootResponse{
		Message:   storageproto.ServiceTitle,
		Endpoints: storageproto.Endpoints,
	})
}
