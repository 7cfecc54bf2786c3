// Package create реализует HTTP-обработчик добавления локального события.
//
// Маршрут доступен только администраторам.
package create

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/agummds/PadangTourGuide/internal/http/response"
	"github.com/agummds/PadangTourGuide/internal/lib/sl"
	"github.com/agummds/PadangTourGuide/internal/models"
)

// Request — структура входных данных создания события.
type Request struct {
	EventName    string `json:"eventName" validate:"required"`
	TentangEvent string `json:"tentangEvent" validate:"required"`
	ImageURL     string `json:"imageUrl" validate:"omitempty,url"`
}

// Service описывает интерфейс бизнес-логики событий.
type Service interface {
	CreateEvent(ctx context.Context, event models.EventLokal) (string, error)
}

// Handler обрабатывает HTTP-запросы создания события.
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
	const op = "handlers.event.create"

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

	uid, err := h.service.CreateEvent(r.Context(), models.EventLokal{
		EventName:    req.EventName,
		TentangEvent: req.TentangEvent,
		ImageURL:     req.ImageURL,
	})
	if err != nil {
		log.Error("failed to create event", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, response.Err(err.Error()))
		return
	}

	log.Info("event created", slog.String("id", uid))
	render.Status(r, http.StatusCreated)
	render.JSON(w, r, response.OKWithData("event berhasil dibuat", map[string]any{
		"id": uid,
	}))
}
