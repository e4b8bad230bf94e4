package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"depositbri/config"
	"depositbri/internal/database"
	"depositbri/internal/logging"
	"depositbri/internal/router"

	"gorm.io/gorm"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("config", "error", err)
		os.Exit(1)
	}
	logger := logging.New(&cfg.Log)

	db, err := database.NewDB(&cfg.Database)
	if err != nil {
		fatal(logger, "database", err)
	}
	if err := prepare(logger, cfg, db); err != nil {
		fatal(logger, "prepare database", err)
	}
	// `server migrate` stops after schema and seed data are in place.
	if len(os.Args) > 1 && os.Args[1] == "migrate" {
		logger.Info("migration and bootstrap completed")
		return
	}

	engine := router.Setup(cfg, db, router.Deps{Logger: logger})
	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      engine,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}
	go func() {
		logger.Info("server listening", "addr", srv.Addr, "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			fatal(logger, "listen", err)
		}
	}()
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		fatal(logger, "server shutdown", err)
	}
	logger.Info("server stopped")
}

func prepare(logger *slog.Logger, cfg *config.Config, db *gorm.DB) error {
	if cfg.Database.AutoMigrate {
		if err := database.AutoMigrate(db); err != nil {
			return err
		}
		logger.Info("schema migrated")
	}
	_, err := database.Bootstrap(db, &cfg.Bank)
	return err
}

func fatal(logger *slog.Logger, msg string, err error) {
	logger.Error(msg, "error", err)
	os.Exit(1)
}
