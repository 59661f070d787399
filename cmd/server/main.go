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

	"github.com/showcase/catalog-api/app/config"
	"github.com/showcase/catalog-api/app/logging"
	"github.com/showcase/catalog-api/app/server"
	"github.com/showcase/catalog-api/app/upload"
	"github.com/showcase/catalog-api/models"
	"go.uber.org/zap"
	"gorm.io/gorm/logger"
)

func main() {
	cfg := config.Load()

	zl, err := logging.Init(cfg.Logger)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer func() { _ = zl.Sync() }()

	for _, w := range cfg.Warnings {
		zap.S().Warn(w)
	}

	db, err := models.Open(cfg.DatabaseURL, logging.Gorm(logger.Warn))
	if err != nil {
		zap.S().Fatalf("database: %v", err)
	}
	defer func() { _ = models.Close(db) }()
	zap.S().Infof("database connection successful, type: %s", db.Dialector.Name())

	if err := models.Migrate(db); err != nil {
		zap.S().Fatalf("migrate: %v", err)
	}

	if cfg.AutoSeed {
		created, err := models.NewProductsRepository(db).Seed(context.Background(), models.SampleProducts())
		if err != nil {
			zap.S().Errorf("auto seed failed: %v", err)
		} else if created > 0 {
			zap.S().Infof("auto seed created %d products", created)
		}
	}

	uploader, err := upload.New(cfg)
	if err != nil {
		zap.S().Fatalf("upload: %v", err)
	}

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           server.NewRouter(cfg, db, uploader),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		zap.S().Infof("%s listening on %s (%s)", cfg.ServiceName, srv.Addr, cfg.Env)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zap.S().Fatalf("server: %v", err)
		}
	}()

	<-ctx.Done()
	zap.S().Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		zap.S().Errorf("shutdown: %v", err)
	}
}
