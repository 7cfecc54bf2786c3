// Package list реализует HTTP-обработчик выдачи избранного пользователя.
//
// Список отдается с развернутыми данными мест. Пустое избранное — это
// 200 и пустой массив, а не 404: чтение без побочных эффектов.
package list

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/agummds/PadangTourGuide/internal/http/middlewarectx"
	"github.com/agummds/PadangTourGuide/internal/http/response"
	"github.com/agummds/PadangTourGuide/internal/lib/sl"
	"github.com/agummds/PadangTourGuide/internal/models"
)

// Service описывает интерфейс выдачи избранного.
type Service interface {
	List(ctx context.Context, userUID string) ([]*models.FavouriteExpanded, error)
}

// Handler обрабатывает HTTP-запросы списка избранного.
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
	const op = "handlers.favourite.list"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	userUID, ok := r.Context().Value(middlewarectx.UserUID).(string)
	if !ok || userUID == "" {
		log.Error("user identification missing in context")
		render.Status(r, http.StatusUnauthorized)
		render.JSON(w, r, response.Err("unauthorized"))
		return
	}

	favourites, err := h.service.List(r.Context(), userUID)
	if err != nil {
		log.Error("failed to list favourites", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, response.Err(err.Error()))
		return
	}

	render.JSON(w, r, response.OKWithData("daftar favorit", map[string]any{
		"favorites": favourites,
	}))
}
