// Package createaccount реализует HTTP-обработчик регистрации пользователей.
//
// Обработчик декодирует JSON, валидирует поля, делегирует регистрацию
// сервису аутентификации и возвращает сводку пользователя вместе с
// токеном доступа. Дубликат email — это конфликт, вторая запись не
// создается никогда.
package createaccount

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

// Request — структура входных данных для регистрации.
type Request struct {
	FullName string `json:"fullName" validate:"required"`
	PhoneNum string `json:"PhoneNum" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// Service описывает интерфейс бизнес-логики регистрации.
type Service interface {
	Register(ctx context.Context, fullName, phoneNum, email, rawPassword string) (*models.User, string, error)
}

// Handler обрабатывает HTTP-запросы регистрации.
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
// @Summary Регистрация пользователя
// @Description Создает учетную запись с ролью user и возвращает токен доступа.
// @Tags Auth
// @Accept  json
// @Produce  json
// @Param request body Request true "Данные новой учетной записи"
// @Success 201 {object} response.Response "Учетная запись создана"
// @Failure 400 {object} response.Response "Некорректные данные или email занят"
// @Failure 500 {object} response.Response "Внутренняя ошибка сервера"
// @Router /create-account [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.auth.createaccount"

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

	user, token, err := h.service.Register(r.Context(), req.FullName, req.PhoneNum, req.Email, req.Password)
	if errors.Is(err, repository.ErrAlreadyExists) {
		log.Error("email already in use", slog.String("email", req.Email))
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, response.Err("email sudah digunakan"))
		return
	}
	if err != nil {
		log.Error("registration failed", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, response.Err(err.Error()))
		return
	}

	log.Info("user registered", slog.String("email", user.Email))
	render.Status(r, http.StatusCreated)
	render.JSON(w, r, response.OKWithData("registrasi berhasil", map[string]any{
		"user":        user,
		"accessToken": token,
	}))
}
