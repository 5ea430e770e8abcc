package resthttp

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"

	"github.com/yourname/file_storage_lite/internal/config"
	"github.com/yourname/file_storage_lite/internal/repo"
	"github.com/yourname/file_storage_lite/internal/usecase/filesvc"
	"github.com/yourname/file_storage_lite/pkg/storageproto"
)

// Server serves the file storage REST API on top of a flat storage directory.
type Server struct {
	FilesService filesvc.Service
	Cfg          *config.Config
	Log          logrus.FieldLogger
	Registry     *prometheus.Registry
}

// NewServer конструктор: поднимает хранилище в cfg.StorageDir и регистрирует маршруты.
func NewServer(cfg *config.Config, log logrus.FieldLogger) (http.Handler, *Server, error) {
	store, err := repo.NewDirStore(cfg.StorageDir)
	if err != nil {
		return nil, nil, err
	}

	files := filesvc.New(filesvc.Deps{
		Storage: store,
		Log:     log,
	})

	srv, err := newServer(cfg, log, files)
	if err != nil {
		return nil, nil, err
	}

	return srv.routes(), srv, nil
}

func newServer(cfg *config.Config, log logrus.FieldLogger, files filesvc.Service) (*Server, error) {
	reg := prometheus.NewRegistry()
	if err := reg.Register(newMetricsCollector(files, log)); err != nil {
		return nil, err
	}

	return &Server{
		FilesService: files,
		Cfg:          cfg,
		Log:          log,
		Registry:     reg,
	}, nil
}

// routes регистрирует обработчики файлов, метрик и health-check'а.
func (s *Server) routes() http.Handler {
	rtr := chi.NewRouter()
	rtr.Use(requestLogger(s.Log))
	rtr.Use(middleware.Recoverer)

	rtr.Get(storageproto.PathRoot, s.root)
	rtr.Post(storageproto.PathFiles, s.postFiles)
	rtr.Get(storageproto.PathFiles, s.listFiles)
	rtr.Get(storageproto.PathFile, s.getFile)
	rtr.Get(storageproto.PathMetrics, s.metrics)
	rtr.Get(storageproto.PathHealth, s.health)
	rtr.Method(http.MethodGet, storageproto.PathPrometheus, promhttp.HandlerFor(s.Registry, promhttp.HandlerOpts{}))

	return rtr
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", storageproto.ContentTypeJSON)
	_ = json.NewEncoder(w).Encode(v)
}
