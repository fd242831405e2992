package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/Gokulvemuri/job-application-manager/internal/database"
	"github.com/Gokulvemuri/job-application-manager/internal/logger"
	"github.com/Gokulvemuri/job-application-manager/internal/server"
)

const shutdownTimeout = 5 * time.Second

// @title Job Application Manager API
// @version 1.0
// @description CRUD API for tracking job applications.
// @BasePath /
func main() {
	log, err := logger.FromEnv()
	if err != nil {
		panic(err)
	}
	defer func() { _ = log.Sync() }()

	if err := run(log); err != nil {
		log.Fatal("server stopped", zap.Error(err))
	}
}

func run(log *zap.Logger) error {
	dbConfig, err := database.ConfigFromEnv()
	if err != nil {
		return err
	}
	db, err := database.NewDBInstance(dbConfig)
	if err != nil {
		return err
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Warn("close database", zap.Error(err))
		}
	}()

	cfg, err := server.ConfigFromEnv()
	if err != nil {
		return err
	}
	srv := server.New(cfg, db, log).HTTPServer()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		log.Info("Server started on port", zap.Int("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down gracefully, press Ctrl+C again to force")
	stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}

	log.Info("server exited")
	return nil
}
