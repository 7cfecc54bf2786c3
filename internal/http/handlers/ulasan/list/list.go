// Package list реализует HTTP-обработчик выдачи отзывов.
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

// Service описывает интерфейс выдачи отзывов.
type Service interface {
	ListUlasan(ctx context.Context) ([]*models.UlasanRating, error)
}

// Handler обрабатывает HTTP-запросы списка отзывов.
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
	const op = "handlers.ulasan.list"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	ulasan, err := h.service.ListUlasan(r.Context())
	if err != nil {
		log.Error("failed to list ulasan", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, response.Err(err.Error()))
		return
	}
	if ulasan == nil {
		ulasan = []*models.UlasanRating{}
	}

	render.JSON(w, r, response.OKWithData("daftar ulasan", map[string]any{
		"ulasan": ulasan,
	}))
}
