// Package createadmin реализует HTTP-обработчик создания администраторов.
//
// Маршрут с условной аутентификацией: пока администраторов нет, вызов
// разрешен без токена (bootstrap первого администратора); дальше токен
// обязателен и создавать учетные записи может только действующий admin.
// Поэтому обработчик сам извлекает токен из заголовка, не полагаясь на
// JWTMiddleware.
package createadmin

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/agummds/PadangTourGuide/internal/http/response"
	"github.com/agummds/PadangTourGuide/internal/lib/sl"
	"github.com/agummds/PadangTourGuide/internal/models"
	authservice "github.com/agummds/PadangTourGuide/internal/services/auth"
	"github.com/agummds/PadangTourGuide/internal/storage/repository"
)

// Request — структура входных данных для создания администратора.
// Role обязательна, когда администратор уже существует; при bootstrap
// она игнорируется и принудительно ставится admin.
type Request struct {
	FullName string `json:"fullName" validate:"required"`
	PhoneNum string `json:"PhoneNum" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Role     string `json:"role" validate:"omitempty,oneof=user admin"`
}

// Service описывает интерфейс политики создания администратора.
type Service interface {
	CreateAdmin(ctx context.Context, rawToken string, params authservice.CreateAdminParams) (*models.User, error)
}

// Handler обрабатывает HTTP-запросы создания администратора.
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
	const op = "handlers.auth.createadmin"

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

	rawToken := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
	if rawToken == r.Header.Get("Authorization") {
		// Заголовка нет или он не в форме Bearer.
		rawToken = ""
	}

	user, err := h.service.CreateAdmin(r.Context(), rawToken, authservice.CreateAdminParams{
		FullName: req.FullName,
		PhoneNum: req.PhoneNum,
		Email:    req.Email,
		Password: req.Password,
		Role:     req.Role,
	})
	switch {
	case errors.Is(err, authservice.ErrAuthRequired):
		log.Error("create-admin without valid token while admin exists")
		render.Status(r, http.StatusUnauthorized)
		render.JSON(w, r, response.Err("authentication required"))
		return
	case errors.Is(err, authservice.ErrNotAdmin):
		log.Error("create-admin by non-admin caller")
		render.Status(r, http.StatusForbidden)
		render.JSON(w, r, response.Err("akses ditolak, hanya admin yang diizinkan"))
		return
	case errors.Is(err, authservice.ErrInvalidRole):
		log.Error("create-admin with missing or unknown target role")
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, response.Err("role harus user atau admin"))
		return
	case errors.Is(err, repository.ErrAlreadyExists):
		log.Error("email already in use", slog.String("email", req.Email))
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, response.Err("email sudah digunakan"))
		return
	case err != nil:
		log.Error("create-admin failed", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, response.Err(err.Error()))
		return
	}

	log.Info("admin account created", slog.String("email", user.Email), slog.String("role", user.Role))
	render.Status(r, http.StatusCreated)
	render.JSON(w, r, response.OKWithData("admin berhasil dibuat", map[string]any{
		"user": user,
	}))
}
