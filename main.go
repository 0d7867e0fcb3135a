package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"socialmedia/config"
	"socialmedia/database"
	"socialmedia/handlers"
	"socialmedia/logger"
	"socialmedia/repositories"
	"socialmedia/routes"
	"socialmedia/service"

	"github.com/sirupsen/logrus"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("Failed to load configuration: %v", err)
	}

	logCloser := logger.InitLogger(cfg.LogLevel, cfg.LogFile)
	defer logCloser.Close()

	if err := run(cfg); err != nil {
		logrus.WithError(err).Error("server stopped with error")
		logCloser.Close()
		os.Exit(1)
	}
}

func run(cfg config.Config) error {
	db, err := database.New(cfg.DBDriver, cfg.DatabaseURL)
	if err != nil {
		return err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	if cfg.AutoMigrate {
		if err := database.Migrate(db); err != nil {
			return err
		}
	}
	if cfg.HashPasswords {
		logrus.Info("password hashing enabled")
	}

	svc := service.New(
		repositories.NewAccountRepository(db, cfg.HashPasswords),
		repositories.NewMessageRepository(db),
	)
	router := routes.SetupRoutes(handlers.NewHandler(svc), handlers.NewSystemHandler(sqlDB.PingContext))

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logrus.WithFields(logrus.Fields{"addr": cfg.Addr(), "driver": cfg.DBDriver}).Info("Server running")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		logrus.Info("Server stopped")
		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
