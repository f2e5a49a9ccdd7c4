package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/LeonardoLujan/gamified-savings-app/internal/config"
	"github.com/LeonardoLujan/gamified-savings-app/internal/repository/ocr"
	"github.com/LeonardoLujan/gamified-savings-app/internal/repository/password"
	"github.com/LeonardoLujan/gamified-savings-app/internal/repository/pg"
	"github.com/LeonardoLujan/gamified-savings-app/internal/service"
	"github.com/LeonardoLujan/gamified-savings-app/pgk/logger"

	httpController "github.com/LeonardoLujan/gamified-savings-app/internal/controller/http"
)

func Run(cfg config.Config, lg *zap.SugaredLogger) error {
	storage, err := pg.New(cfg.DatabaseURI, lg)
	if err != nil {
		return err
	}

	vision := ocr.New(cfg.VisionAPIURL, cfg.VisionAPIKey)
	passwords := password.New(cfg.PassCost)

	s := service.New(storage, passwords, vision, storage, lg, cfg.TokenLifetime, cfg.SecretKey)

	router := chi.NewRouter()
	router.Use(logger.LoggingMiddleware(lg))
	router.Use(middleware.Recoverer)

	handlers := httpController.New(s, storage, lg)
	router = httpController.InitRoutes(router, handlers, cfg.SecretKey)

	storage.RunRewardStateWatcher(cfg.WatchInterval)

	srv := &http.Server{
		Addr:    cfg.RunAddress,
		Handler: router,
	}

	signalCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	lg.Infof("starting server on %s", cfg.RunAddress)

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			lg.Fatalf("server ListenAndServe error: %v", err)
		}
	}()

	<-signalCtx.Done()
	lg.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutdown (server) error: %v", err)
	}

	storage.StopRewardStateWatcher()

	if err := storage.Shutdown(); err != nil {
		return fmt.Errorf("shutdown (repo) error: %v", err)
	}

	lg.Info("server shutdown success")
	return nil
}
