package resthttp

import (
	"io"
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"

	"github.com/yourname/file_storage_lite/internal/models"
	"github.com/yourname/file_storage_lite/pkg/httperrors"
	"github.com/yourname/file_storage_lite/pkg/storageproto"
)

// getFile отдаёт содержимое файла как вложение.
func (s *Server) getFile(w http.ResponseWriter, r *http.Request) {
	name, err := fileNameParam(r)
	if err != nil {
		httperrors.Write(w, err)
		return
	}

	rc, size, err := s.FilesService.Retrieve(r.Context(), name)
	if err != nil {
		httperrors.Write(w, err)
		return
	}
	defer rc.Close()

	w.Header().Set("Content-Type", storageproto.ContentTypeBytes)
	w.Header().Set("Content-Length", strconv.FormatInt(size, 10))
	w.Header().Set("Content-Disposition", storageproto.ContentDisposition(name))

	// Заголовки уже отправлены, поэтому ошибку копирования можно только залогировать.
	if _, err = io.Copy(w, rc); err != nil {
		s.Log.WithFields(logrus.Fields{"filename": name, "error": err}).Warn("file stream interrupted")
	}
}

// fileNameParam достаёт имя файла из пути. Если клиент экранировал путь не так, как Go,
// выставлен RawPath, и chi отдаёт сегмент ещё закодированным.
func fileNameParam(r *http.Request) (string, error) {
	raw := chi.URLParam(r, "filename")
	if r.URL.RawPath == "" {
		return raw, nil
	}

	name, err := url.PathUnescape(raw)
	if err != nil {
		return "", &models.NotFoundError{Name: raw}
	}
	return name, nil
}
