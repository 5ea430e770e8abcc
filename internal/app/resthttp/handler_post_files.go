package resthttp

import (
	"fmt"
	"net/http"

	"github.com/yourname/file_storage_lite/pkg/httperrors"
	"github.com/yourname/file_storage_lite/pkg/storageproto"
)

// postFiles принимает multipart-поле "file" и делегирует сохранение сервису файлов.
func (s *Server) postFiles(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(s.Cfg.UploadMemoryBytes()); err != nil {
		httperrors.Write(w, fmt.Errorf("parse multipart form: %w", err))
		return
	}
	defer func() { _ = r.MultipartForm.RemoveAll() }()

	file, header, err := r.FormFile(storageproto.FormFieldFile)
	if err != nil {
		httperrors.Write(w, fmt.Errorf("form field %q: %w", storageproto.FormFieldFile, err))
		return
	}
	defer file.Close()

	res, err := s.FilesService.Upload(r.Context(), header.Filename, file)
	if err != nil {
		httperrors.Write(w, err)
		return
	}

	writeJSON(w, storageproto.UploadResponse{
		Filename: res.Filename,
		Size:     res.Size,
	})
}
