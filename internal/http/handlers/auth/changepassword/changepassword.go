// Package changepassword реализует HTTP-обработчик смены пароля.
//
// Требуется доказательство старого пароля; несоответствие — это 400,
// а не внутренняя ошибка.
package changepassword

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
	authservice "github.com/agummds/PadangTourGuide/internal/services/auth"
)

// Request — структура входных данных для смены пароля.
type Request struct {
	PasswordLama string `json:"passwordLama" validate:"required"`
	PasswordBaru string `json:"passwordBaru" validate:"required,min=6"`
}

// Service описывает интерфейс бизнес-логики смены пароля.
type Service interface {
	ChangePassword(ctx context.Context, userUID, oldPassword, newPassword string) error
}

// Handler обрабатывает HTTP-запросы смены пароля.
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
	const op = "handlers.auth.changepassword"

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

	err := h.service.ChangePassword(r.Context(), userUID, req.PasswordLama, req.PasswordBaru)
	if errors.Is(err, authservice.ErrInvalidCredentials) {
		log.Error("old password mismatch")
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, response.Err("password lama tidak sesuai"))
		return
	}
	if err != nil {
		log.Error("change password failed", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, response.Err(err.Error()))
		return
	}

	log.Info("password changed", slog.String("user", userUID))
	render.JSON(w, r, response.OK("password berhasil diganti"))
}
