// Package add реализует HTTP-обработчик добавления места в избранное.
//
// Несуществующее место — 404; повторное добавление той же пары — 400,
// дубликат записи не создается.
package add

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

// Request — структура входных данных добавления в избранное.
type Request struct {
	TempatWisataID string `json:"tempatWisataId" validate:"required,uuid4"`
}

// Service описывает интерфейс бизнес-логики избранного.
type Service interface {
	Add(ctx context.Context, userUID, tempatWisataUID string) (string, error)
}

// Handler обрабатывает HTTP-запросы добавления в избранное.
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
// @Summary Добавить место в избранное
// @Description Создает связь пользователь—место. Пара уникальна.
// @Tags Favourites
// @Accept  json
// @Produce  json
// @Param request body Request true "Идентификатор туристического места"
// @Success 200 {object} response.Response "Место добавлено в избранное"
// @Failure 400 {object} response.Response "Некорректные данные или дубликат"
// @Failure 404 {object} response.Response "Место не найдено"
// @Router /add-favorite [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.favourite.add"

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

	uid, err := h.service.Add(r.Context(), userUID, req.TempatWisataID)
	if errors.Is(err, repository.ErrNotFound) {
		log.Error("tempat wisata not found", slog.String("tempat", req.TempatWisataID))
		render.Status(r, http.StatusNotFound)
		render.JSON(w, r, response.Err("tempat wisata tidak ditemukan"))
		return
	}
	if errors.Is(err, repository.ErrAlreadyExists) {
		log.Error("favourite already exists", slog.String("tempat", req.TempatWisataID))
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, response.Err("tempat wisata sudah ada di favorit"))
		return
	}
	if err != nil {
		log.Error("failed to add favourite", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, response.Err(err.Error()))
		return
	}

	log.Info("favourite added", slog.String("id", uid))
	render.JSON(w, r, response.OKWithData("berhasil ditambahkan ke favorit", map[string]any{
		"id": uid,
	}))
}
