package storageclient

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"

	"github.com/yourname/file_storage_lite/pkg/storageproto"
)

type Client interface {
	// Upload Положить файл в хранилище под именем name
	Upload(ctx context.Context, name string, r io.Reader, size int64) (storageproto.UploadResponse, error)
	// List Список имён файлов в хранилище
	List(ctx context.Context) (storageproto.ListResponse, error)
	// Download Достать файл из хранилища и записать в w
	Download(ctx context.Context, name string, w io.Writer) (int64, error)
	// Metrics Статистика использования хранилища
	Metrics(ctx context.Context) (storageproto.MetricsResponse, error)
	// Health Проверка доступности сервиса
	Health(ctx context.Context) error
}

// Options настраивает клиента. Progress == nil отключает индикатор выполнения.
type Options struct {
	HTTPClient *http.Client
	Progress   io.Writer
}

type httpClient struct {
	base     string
	c        *http.Client
	progress io.Writer
}

// New создаёт HTTP-клиент для сервиса, расположенного по baseURL.
func New(baseURL string, opts Options) Client {
	c := opts.HTTPClient
	if c == nil {
		c = &http.Client{}
	}

	return &httpClient{
		base:     strings.TrimRight(baseURL, "/"),
		c:        c,
		progress: opts.Progress,
	}
}

// Upload стримит содержимое multipart-формой, не буферизуя файл целиком.
func (h *httpClient) Upload(ctx context.Context, name string, r io.Reader, size int64) (storageproto.UploadResponse, error) {
	bar := newProgressBar(h.progress, fmt.Sprintf("Uploading %s", name), size)
	body := io.TeeReader(r, progressWriter{bar: bar})

	pr, pw := io.Pipe()
	mw := multipart.NewWriter(pw)
	go func() {
		fw, err := mw.CreateFormFile(storageproto.FormFieldFile, name)
		if err != nil {
			_ = pw.CloseWithError(err)
			return
		}
		if _, err = io.Copy(fw, body); err != nil {
			_ = pw.CloseWithError(err)
			return
		}
		_ = pw.CloseWithError(mw.Close())
	}()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, h.base+storageproto.PathFiles, pr)
	if err != nil {
		_ = pr.CloseWithError(err)
		bar.Fail(err)
		return storageproto.UploadResponse{}, err
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	var out storageproto.UploadResponse
	if err = h.doJSON(req, &out); err != nil {
		_ = pr.CloseWithError(err)
		bar.Fail(err)
		return storageproto.UploadResponse{}, err
	}

	bar.Finish()
	return out, nil
}

// List возвращает перечень файлов.
func (h *httpClient) List(ctx context.Context) (storageproto.ListResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, h.base+storageproto.PathFiles, nil)
	if err != nil {
		return storageproto.ListResponse{}, err
	}

	var out storageproto.ListResponse
	if err = h.doJSON(req, &out); err != nil {
		return storageproto.ListResponse{}, err
	}
	return out, nil
}

// Download скачивает файл. Для отсутствующего файла возвращается *storageproto.NotFoundError,
// проверяемая через errors.Is(err, storageproto.ErrNotFound).
func (h *httpClient) Download(ctx context.Context, name string, w io.Writer) (int64, error) {
	u := h.base + storageproto.PathFiles + "/" + url.PathEscape(name)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return 0, err
	}

	resp, err := h.c.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return 0, &storageproto.NotFoundError{Name: name}
	}
	if resp.StatusCode != http.StatusOK {
		return 0, responseError(resp)
	}

	bar := newProgressBar(h.progress, fmt.Sprintf("Downloading %s", name), resp.ContentLength)
	bar.render(true, "")
	body := newProgressReadCloser(resp.Body, bar)

	return io.Copy(w, body)
}

// Metrics запрашивает текущую статистику.
func (h *httpClient) Metrics(ctx context.Context) (storageproto.MetricsResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, h.base+storageproto.PathMetrics, nil)
	if err != nil {
		return storageproto.MetricsResponse{}, err
	}

	var out storageproto.MetricsResponse
	if err = h.doJSON(req, &out); err != nil {
		return storageproto.MetricsResponse{}, err
	}
	return out, nil
}

func (h *httpClient) Health(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, h.base+storageproto.PathHealth, nil)
	if err != nil {
		return err
	}

	var out storageproto.HealthResponse
	return h.doJSON(req, &out)
}

func (h *httpClient) doJSON(req *http.Request, out any) error {
	resp, err := h.c.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return responseError(resp)
	}

	return json.NewDecoder(resp.Body).Decode(out)
}

// responseError достаёт detail из JSON-ошибки сервиса, если он есть.
func responseError(resp *http.Response) error {
	var body storageproto.ErrorResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, 64<<10)).Decode(&body); err == nil && body.Detail != "" {
		return fmt.Errorf("%s %s: %s: %s", resp.Request.Method, resp.Request.URL.Path, resp.Status, body.Detail)
	}
	return fmt.Errorf("%s %s: %s", resp.Request.Method, resp.Request.URL.Path, resp.Status)
}
