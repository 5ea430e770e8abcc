package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/yourname/file_storage_lite/internal/app/resthttp"
	"github.com/yourname/file_storage_lite/internal/config"
	"github.com/yourname/file_storage_lite/internal/logging"
)

// main инициализирует HTTP-сервис хранения файлов и обеспечивает корректное завершение по сигналу.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	logger, err := logging.New(os.Stderr, cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		log.Fatal(err)
	}

	handler, _, err := resthttp.NewServer(cfg, logger)
	if err != nil {
		logger.WithError(err).Fatal("init server")
	}

	server := &http.Server{
		Addr:              cfg.ListenAddr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	eg, egCtx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		logger.WithField("storage_dir", cfg.StorageDir).Infof("STORAGE listening on %s", cfg.ListenAddr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	// Сценарий graceful shutdown при получении SIGTERM/SIGINT или падении сервера.
	eg.Go(func() error {
		<-egCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout())
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		logger.Info("STORAGE stopped")
		return nil
	})

	if err := eg.Wait(); err != nil {
		logger.WithError(err).Fatal("STORAGE exited with error")
	}
}
