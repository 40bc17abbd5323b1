package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	pg "petclinic/internal/adapters/storage/postgres"
	"petclinic/internal/config"
	"petclinic/internal/platform/logger"
	"petclinic/internal/router"
)

// @title PetClinic API
// @version 1.0
// @description Dueños, mascotas, visitas y veterinarios de la clínica.
// @BasePath /
func main() {
	// .env es opcional (dev local)
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		logger.NewFromEnv().Error("invalid config", map[string]any{"err": err})
		os.Exit(1)
	}

	log := logger.New(logger.Options{
		Level:  logger.ParseLevel(cfg.LogLevel),
		Format: logger.ParseFormat(cfg.LogFormat),
		App:    cfg.AppName,
	})

	if err := run(cfg, log); err != nil {
		log.Error("server stopped", map[string]any{"err": err})
		os.Exit(1)
	}
}

func run(cfg config.Config, log logger.Logger) error {
	var db *sql.DB
	if cfg.UsesPostgres() {
		opened, err := pg.Open(cfg.DatabaseDSN)
		if err != nil {
			return err
		}
		defer opened.Close()
		db = opened

		if cfg.DBMigrate {
			if err := pg.Migrate(cfg.DatabaseDSN); err != nil {
				return err
			}
			log.Info("migrations applied", nil)
		}
	}

	h, err := router.NewRouter(router.Options{
		DB:                db,
		ServiceEndpoint:   cfg.ServiceEndpoint,
		PetServiceTimeout: cfg.PetServiceTimeout,
		Logger:            log,
		SeedDemoData:      cfg.SeedDemoData,
	})
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      h,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		log.Info("starting server", map[string]any{"addr": srv.Addr, "service_endpoint": cfg.ServiceEndpoint})
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

	log.Info("shutting down", nil)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	return srv.Shutdown(shutdownCtx)
}
