// Package read реализует HTTP-обработчик выдачи одного места по ID.
package read

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/agummds/PadangTourGuide/internal/http/response"
	"github.com/agummds/PadangTourGuide/internal/lib/sl"
	"github.com/agummds/PadangTourGuide/internal/models"
	"github.com/agummds/PadangTourGuide/internal/storage/repository"
)

// Service описывает интерфейс выдачи места.
type Service interface {
	GetTempatWisata(ctx context.Context, uid string) (*models.TempatWisata, error)
}

// Handler обрабатывает HTTP-запросы чтения места.
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
	const op = "handlers.wisata.read"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	uid := chi.URLParam(r, "id")
	if uid == "" {
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, response.Err("id tempat wisata wajib diisi"))
		return
	}

	tempat, err := h.service.GetTempatWisata(r.Context(), uid)
	if errors.Is(err, repository.ErrNotFound) {
		log.Info("tempat wisata not found", slog.String("id", uid))
		render.Status(r, http.StatusNotFound)
		render.JSON(w, r, response.Err("tempat wisata tidak ditemukan"))
		return
	}
	if err != nil {
		log.Error("failed to get tempat wisata", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, response.Err(err.Error()))
		return
	}

	render.JSON(w, r, response.OKWithData("detail tempat wisata", tempat))
}
