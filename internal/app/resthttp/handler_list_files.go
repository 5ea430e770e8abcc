package resthttp

import (
	"net/http"

	"github.com/yourname/file_storage_lite/pkg/httperrors"
	"github.com/yourname/file_storage_lite/pkg/storageproto"
)

func (s *Server) listFiles(w http.ResponseWriter, r *http.Request) {
	names, err := s.FilesService.List(r.Context())
	if err != nil {
		httperrors.Write(w, err)
		return
	}

	writeJSON(w, storageproto.ListResponse{
		Files: names,
		Count: len(names),
	})
}
