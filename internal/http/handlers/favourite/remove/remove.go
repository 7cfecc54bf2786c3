// Package remove реализует HTTP-обработчик удаления места из избранного.
//
// Удаление несуществующей пары — явный 404, а не тихий успех.
package remove

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/agummds/PadangTourGuide/internal/http/middlewarectx"
	"github.com/agummds/PadangTourGuide/internal/http/response"
	"github.com/agummds/PadangTourGuide/internal/lib/sl"
	"github.com/agummds/PadangTourGuide/internal/storage/repository"
)

// Request — структура входных данных удаления из избранного.
type Request struct {
	TempatWisataID string `json:"tempatWisataId" validate:"required,uuid4"`
}

// Service описывает интерфейс бизнес-логики избранного.
type Service interface {
	Remove(ctx context.Context, userUID, tempatWisataUID string) error
}

// Handler обрабатывает HTTP-запросы удаления из избранного.
type Handler struct {
	log      *slog.Logger
	service  Service
	validate *validator.Validate
}

// New создает новый экземпляр Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:      log,
		service:  service,
		validate: validator.New(),
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.favourite.remove"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("failed to decode request body", sl.Err(err))
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, response.Err("invalid request body"))
		return
	}

	if err := h.validate.Struct(req); err != nil {
		log.Error("validation failed", sl.Err(err))
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, response.ValidationError(err.(validator.ValidationErrors)))
		return
	}

	userUID, ok := r.Context().Value(middlewarectx.UserUID).(string)
	if !ok || userUID == "" {
		log.Error("user identification missing in context")
		render.Status(r, http.StatusUnauthorized)
		render.JSON(w, r, response.Err("unauthorized"))
		return
	}

	err := h.service.Remove(r.Context(), userUID, req.TempatWisataID)
	if errors.Is(err, repository.ErrNotFound) {
		log.Error("favourite not found", slog.String("tempat", req.TempatWisataID))
		render.Status(r, http.StatusNotFound)
		render.JSON(w, r, response.Err("favorit tidak ditemukan"))
		return
	}
	if err != nil {
		log.Error("failed to remove favourite", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, response.Err(err.Error()))
		return
	}

	log.Info("favourite removed", slog.String("tempat", req.TempatWisataID))
	render.JSON(w, r, response.OK("berhasil dihapus dari favorit"))
}
