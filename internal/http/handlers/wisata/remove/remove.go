// Package remove реализует HTTP-обработчик удаления места из каталога.
//
// Маршрут доступен только администраторам. Записи избранного,
// ссылающиеся на место, удаляются каскадом на уровне БД.
package remove

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
	"github.com/agummds/PadangTourGuide/internal/storage/repository"
)

// Service описывает интерфейс удаления места.
type Service interface {
	RemoveTempatWisata(ctx context.Context, uid string) error
}

// Handler обрабатывает HTTP-запросы удаления места.
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
	const op = "handlers.wisata.remove"

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

	err := h.service.RemoveTempatWisata(r.Context(), uid)
	if errors.Is(err, repository.ErrNotFound) {
		log.Info("tempat wisata not found", slog.String("id", uid))
		render.Status(r, http.StatusNotFound)
		render.JSON(w, r, response.Err("tempat wisata tidak ditemukan"))
		return
	}
	if err != nil {
		log.Error("failed to remove tempat wisata", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, response.Err(err.Error()))
		return
	}

	log.Info("tempat wisata removed", slog.String("id", uid))
	render.JSON(w, r, response.OK("tempat wisata berhasil dihapus"))
}
