// Package padangtourguide собирает приложение: хранилище, миграции, кеш,
// сервисы, маршруты и HTTP-сервер.
package padangtourguide

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi"

	"github.com/agummds/PadangTourGuide/internal/cache"
	"github.com/agummds/PadangTourGuide/internal/config"
	"github.com/agummds/PadangTourGuide/internal/lib/jwt"
	"github.com/agummds/PadangTourGuide/internal/migrations"
	authservice "github.com/agummds/PadangTourGuide/internal/services/auth"
	favouriteservice "github.com/agummds/PadangTourGuide/internal/services/favourite"
	wisataservice "github.com/agummds/PadangTourGuide/internal/services/wisata"
	"github.com/agummds/PadangTourGuide/internal/storage/repository"
)

type App struct {
	server *http.Server
	logger *slog.Logger
	db     *repository.Storage
	cache  cache.Cache
}

func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	db, err := repository.New(cfg.StorageConnectionString)
	if err != nil {
		return nil, err
	}
	if err = migrations.Run(db.DB, cfg.MigrationsPath); err != nil {
		return nil, err
	}

	cacheRedis, err := cache.InitServer(ctx, cfg.RedisConnection)
	if err != nil {
		return nil, err
	}

	jwtMaker := jwt.NewJWTMaker(cfg.JWTSecretKey, cfg.TokenTTL)

	authService := authservice.NewAuthService(db, jwtMaker)
	favouriteService := favouriteservice.NewFavouriteService(db, db, cacheRedis, logger)
	wisataService := wisataservice.NewWisataService(db, logger)

	router := chi.NewRouter()

	RegisterRoutes(router, logger, jwtMaker, authService, favouriteService, wisataService)

	srv := &http.Server{
		Addr:         cfg.AddressHTTP,
		Handler:      router,
		ReadTimeout:  cfg.TimeoutHTTP,
		WriteTimeout: cfg.TimeoutHTTP,
		IdleTimeout:  cfg.IdleTimeout,
	}

	return &App{
		server: srv,
		logger: logger,
		db:     db,
		cache:  *cacheRedis,
	}, nil
}

func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("HTTP server starting on", slog.String("address", a.server.Addr))
		err := a.server.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			errCh <- nil
		} else {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		timeoutCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		a.logger.Info("shutting down HTTP server gracefully")
		err := a.server.Shutdown(timeoutCtx)
		a.db.DB.Close()
		return err
	}
}
