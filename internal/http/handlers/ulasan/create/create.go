// Package create реализует HTTP-обработчик добавления отзыва с оценкой.
//
// Имя автора берется из токена, клиент его не передает.
package create

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/agummds/PadangTourGuide/internal/http/middlewarectx"
	"github.com/agummds/PadangTourGuide/internal/http/response"
	"github.com/agummds/PadangTourGuide/internal/lib/sl"
	"github.com/agummds/PadangTourGuide/internal/models"
)

// Request — структура входных данных создания отзыва.
type Request struct {
	Ulasan string `json:"Ulasan" validate:"required"`
	Rating int    `json:"Rating" validate:"required,min=1,max=5"`
}

// Service описывает интерфейс бизнес-логики отзывов.
type Service interface {
	CreateUlasan(ctx context.Context, ulasan models.UlasanRating) (string, error)
}

// Handler обрабатывает HTTP-запросы создания отзыва.
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
	const op = "handlers.ulasan.create"

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

	email, ok := r.Context().Value(middlewarectx.Email).(string)
	if !ok || email == "" {
		log.Error("user identification missing in context")
		render.Status(r, http.StatusUnauthorized)
		render.JSON(w, r, response.Err("unauthorized"))
		return
	}

	uid, err := h.service.CreateUlasan(r.Context(), models.UlasanRating{
		UserName: email,
		Ulasan:   req.Ulasan,
		Rating:   req.Rating,
	})
	if err != nil {
		log.Error("failed to create ulasan", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, response.Err(err.Error()))
		return
	}

	log.Info("ulasan created", slog.String("id", uid))
	render.Status(r, http.StatusCreated)
	render.JSON(w, r, response.OKWithData("ulasan berhasil dibuat", map[string]any{
		"id": uid,
	}))
}
