// Package padangtourguide предоставляет маршруты для основного приложения.
package padangtourguide

import (
	"log/slog"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/agummds/PadangTourGuide/internal/http/handlers/auth/adminlogin"
	"github.com/agummds/PadangTourGuide/internal/http/handlers/auth/changepassword"
	"github.com/agummds/PadangTourGuide/internal/http/handlers/auth/createaccount"
	"github.com/agummds/PadangTourGuide/internal/http/handlers/auth/createadmin"
	"github.com/agummds/PadangTourGuide/internal/http/handlers/auth/login"
	"github.com/agummds/PadangTourGuide/internal/http/handlers/auth/logout"
	eventcreate "github.com/agummds/PadangTourGuide/internal/http/handlers/event/create"
	eventlist "github.com/agummds/PadangTourGuide/internal/http/handlers/event/list"
	favouriteadd "github.com/agummds/PadangTourGuide/internal/http/handlers/favourite/add"
	favouritelist "github.com/agummds/PadangTourGuide/internal/http/handlers/favourite/list"
	favouriteremove "github.com/agummds/PadangTourGuide/internal/http/handlers/favourite/remove"
	ulasancreate "github.com/agummds/PadangTourGuide/internal/http/handlers/ulasan/create"
	ulasanlist "github.com/agummds/PadangTourGuide/internal/http/handlers/ulasan/list"
	userlist "github.com/agummds/PadangTourGuide/internal/http/handlers/user/list"
	wisatacreate "github.com/agummds/PadangTourGuide/internal/http/handlers/wisata/create"
	wisatalist "github.com/agummds/PadangTourGuide/internal/http/handlers/wisata/list"
	wisataread "github.com/agummds/PadangTourGuide/internal/http/handlers/wisata/read"
	wisataremove "github.com/agummds/PadangTourGuide/internal/http/handlers/wisata/remove"
	"github.com/agummds/PadangTourGuide/internal/http/middlewarectx"
	"github.com/agummds/PadangTourGuide/internal/lib/jwt"
	authservice "github.com/agummds/PadangTourGuide/internal/services/auth"
	favouriteservice "github.com/agummds/PadangTourGuide/internal/services/favourite"
	wisataservice "github.com/agummds/PadangTourGuide/internal/services/wisata"
)

// RegisterRoutes регистрирует все маршруты приложения.
func RegisterRoutes(r chi.Router, logger *slog.Logger, jwtMaker jwt.Maker,
	authService *authservice.AuthService,
	favouriteService *favouriteservice.FavouriteService,
	wisataService *wisataservice.WisataService) {
	// Глобальные middleware
	r.Use(
		middleware.RequestID,
		middleware.Logger,
		middleware.Recoverer,
		middleware.URLFormat,
	)

	// Открытые конечные точки
	r.Post("/create-account", createaccount.New(logger, authService).ServeHTTP)
	r.Post("/login", login.New(logger, authService).ServeHTTP)
	r.Post("/admin-login", adminlogin.New(logger, authService).ServeHTTP)
	// Первый админ создается без токена, дальше — только действующим админом
	r.Post("/create-admin", createadmin.New(logger, authService).ServeHTTP)

	r.Get("/tempat-wisata", wisatalist.New(logger, wisataService).ServeHTTP)
	r.Get("/tempat-wisata/{id}", wisataread.New(logger, wisataService).ServeHTTP)
	r.Get("/events", eventlist.New(logger, wisataService).ServeHTTP)
	r.Get("/ulasan", ulasanlist.New(logger, wisataService).ServeHTTP)

	// Группа с JWT аутентификацией
	r.Group(func(r chi.Router) {
		r.Use(middlewarectx.JWTMiddleware(jwtMaker, logger))
		r.Use(middlewarectx.RateLimitMiddleware(logger))
		r.Post("/add-favorite", favouriteadd.New(logger, favouriteService).ServeHTTP)
		r.Get("/favorites", favouritelist.New(logger, favouriteService).ServeHTTP)
		r.Delete("/remove-favorite", favouriteremove.New(logger, favouriteService).ServeHTTP)
		r.Post("/ganti-password", changepassword.New(logger, authService).ServeHTTP)
		r.Post("/logout", logout.New(logger).ServeHTTP)
		r.Post("/ulasan", ulasancreate.New(logger, wisataService).ServeHTTP)
	})

	// Группа только для администраторов
	r.Group(func(r chi.Router) {
		r.Use(middlewarectx.JWTMiddleware(jwtMaker, logger))
		r.Use(middlewarectx.AdminOnlyMiddleware(logger))
		r.Get("/get-user", userlist.New(logger, authService).ServeHTTP)
		r.Post("/tempat-wisata", wisatacreate.New(logger, wisataService).ServeHTTP)
		r.Delete("/tempat-wisata/{id}", wisataremove.New(logger, wisataService).ServeHTTP)
		r.Post("/events", eventcreate.New(logger, wisataService).ServeHTTP)
	})

	r.Handle("/metrics", promhttp.Handler())
	// Swagger docs endpoint
	r.Get("/docs/*", httpSwagger.WrapHandler)
}
