package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cmlabs-hris/xls-import-go/internal/config"
	appHTTP "github.com/cmlabs-hris/xls-import-go/internal/handler/http"
	"github.com/cmlabs-hris/xls-import-go/internal/pkg/logger"
	"github.com/cmlabs-hris/xls-import-go/internal/pkg/storage"
	"github.com/cmlabs-hris/xls-import-go/internal/service/file"
	"github.com/cmlabs-hris/xls-import-go/internal/service/importing"
	"github.com/cmlabs-hris/xls-import-go/internal/service/yearly"
)

const (
	appName    = "xls-import"
	appVersion = "v1.0.0"
)

func main() {
	if err := run(); err != nil {
		slog.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log := logger.New(os.Stdout, logger.Options{
		App:     appName,
		Version: appVersion,
		Env:     cfg.App.Env,
		Level:   cfg.App.LogLevel,
	})
	slog.SetDefault(log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	connectCtx, cancel := context.WithTimeout(ctx, 15*time.Second)
	st, err := openStore(connectCtx, cfg)
	cancel()
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := st.close(closeCtx); err != nil {
			slog.Error("failed to close store", "error", err)
		}
	}()

	fileStorage, err := storage.NewLocalStorage(cfg.Storage.BasePath)
	if err != nil {
		return fmt.Errorf("init storage: %w", err)
	}
	fileService := file.NewFileService(fileStorage)

	importService := importing.NewImportService(
		st.tx,
		st.importRepo,
		st.employeeRepo,
		st.attendanceRepo,
		st.shiftRepo,
		fileService,
		importing.NewNormalizer(importing.WithLogger(log)),
	)
	yearService := yearly.NewYearService(st.employeeRepo, st.attendanceRepo, st.shiftRepo)

	webHandler, err := appHTTP.NewWebHandler(cfg.App.ExportYear)
	if err != nil {
		return fmt.Errorf("init web handler: %w", err)
	}

	router := appHTTP.NewRouter(
		appHTTP.RouterOptions{
			Logger:         log,
			AllowedOrigins: cfg.CORS.AllowedOrigins,
			ImportKey:      cfg.Import.Key,
			MaxUploadSize:  cfg.Import.MaxUploadSize,
		},
		appHTTP.NewImportHandler(importService, cfg.Import.MaxUploadSize),
		appHTTP.NewYearHandler(yearService),
		webHandler,
	)

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("server running", "addr", server.Addr, "store", cfg.Store.Driver)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	slog.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}
