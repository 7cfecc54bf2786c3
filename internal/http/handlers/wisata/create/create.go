// Package create реализует HTTP-обработчик добавления туристического места.
//
// Маршрут доступен только администраторам. Название места уникально,
// дубликат — 400.
package create

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/agummds/PadangTourGuide/internal/http/response"
	"github.com/agummds/PadangTourGuide/internal/lib/sl"
	"github.com/agummds/PadangTourGuide/internal/models"
	"github.com/agummds/PadangTourGuide/internal/storage/repository"
)

// Request — структура входных данных создания места.
type Request struct {
	NamaTempat string                       `json:"namaTempat" validate:"required"`
	ImageURL   string                       `json:"imageUrl" validate:"omitempty,url"`
	Alamat     []string                     `json:"alamat"`
	JamOperasi map[string]models.JamOperasi `json:"jamOperasi"`
}

// Service описывает интерфейс бизнес-логики каталога.
type Service interface {
	CreateTempatWisata(ctx context.Context, tempat models.TempatWisata) (string, error)
}

// Handler обрабатывает HTTP-запросы создания места.
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

// ServeHTTP godoc
// @Summary Создать туристическое место
// @Description Добавляет место в каталог. Доступно только администраторам.
// @Tags TempatWisata
// @Accept  json
// @Produce  json
// @Param request body Request true "Данные туристического места"
// @Success 201 {object} response.Response "Место создано"
// @Failure 400 {object} response.Response "Некорректные данные или дубликат названия"
// @Failure 403 {object} response.Response "Доступ запрещен"
// @Security BearerAuth
// @Router /tempat-wisata [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.wisata.create"

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

	uid, err := h.service.CreateTempatWisata(r.Context(), models.TempatWisata{
		NamaTempat: req.NamaTempat,
		ImageURL:   req.ImageURL,
		Alamat:     req.Alamat,
		JamOperasi: req.JamOperasi,
	})
	if errors.Is(err, repository.ErrAlreadyExists) {
		log.Error("tempat wisata already exists", slog.String("nama", req.NamaTempat))
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, response.Err("nama tempat sudah digunakan"))
		return
	}
	if err != nil {
		log.Error("failed to create tempat wisata", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, response.Err(err.Error()))
		return
	}

	log.Info("tempat wisata created", slog.String("id", uid))
	render.Status(r, http.StatusCreated)
	render.JSON(w, r, response.OKWithData("tempat wisata berhasil dibuat", map[string]any{
		"id": uid,
	}))
}
