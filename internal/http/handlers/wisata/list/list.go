// Package list реализует HTTP-обработчик выдачи каталога мест.
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

// Service описывает интерфейс выдачи каталога.
type Service interface {
	ListTempatWisata(ctx context.Context) ([]*models.TempatWisata, error)
}

// Handler обрабатывает HTTP-запросы списка мест.
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
	const op = "handlers.wisata.list"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	tempat, err := h.service.ListTempatWisata(r.Context())
	if err != nil {
		log.Error("failed to list tempat wisata", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, response.Err(err.Error()))
		return
	}
	if tempat == nil {
		tempat = []*models.TempatWisata{}
	}

	render.JSON(w, r, response.OKWithData("daftar tempat wisata", map[string]any{
		"tempatWisata": tempat,
	}))
}
