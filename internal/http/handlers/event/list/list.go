// Package list реализует HTTP-обработчик выдачи локальных событий.
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

// Service описывает интерфейс выдачи событий.
type Service interface {
	ListEvents(ctx context.Context) ([]*models.EventLokal, error)
}

// Handler обрабатывает HTTP-запросы списка событий.
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
	const op = "handlers.event.list"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	events, err := h.service.ListEvents(r.Context())
	if err != nil {
		log.Error("failed to list events", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, response.Err(err.Error()))
		return
	}
	if events == nil {
		events = []*models.EventLokal{}
	}

	render.JSON(w, r, response.OKWithData("daftar event", map[string]any{
		"events": events,
	}))
}
