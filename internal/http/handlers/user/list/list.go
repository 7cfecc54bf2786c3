// Package list реализует HTTP-обработчик выдачи списка пользователей.
//
// Маршрут доступен только администраторам (гейт в middleware). Хэши
// паролей в ответ не попадают. Пустой список — это 404, исторический
// контракт клиента.
package list

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/agummds/PadangTourGuide/internal/http/response"
	"github.com/agummds/PadangTourGuide/internal/lib/sl"
	"github.com/agummds/PadangTourGuide/internal/models"
)

// Service описывает интерфейс выдачи пользователей.
type Service interface {
	ListUsers(ctx context.Context) ([]*models.User, error)
}

// Handler обрабатывает HTTP-запросы списка пользователей.
type Handler struct {
	log     *slog.Logger
	service Service
}

// New создает новый экземпляр Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.user.list"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	users, err := h.service.ListUsers(r.Context())
	if err != nil {
		log.Error("failed to list users", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, response.Err(err.Error()))
		return
	}
	if len(users) == 0 {
		log.Info("no users found")
		render.Status(r, http.StatusNotFound)
		render.JSON(w, r, response.Err("tidak ada pengguna"))
		return
	}

	render.JSON(w, r, response.OKWithData("daftar pengguna", map[string]any{
		"users": users,
	}))
}
