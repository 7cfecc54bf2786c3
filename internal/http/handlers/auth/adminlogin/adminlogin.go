// Package adminlogin реализует HTTP-обработчик входа администраторов.
//
// От обычного входа отличается только дополнительной проверкой роли:
// валидные учетные данные не-администратора дают 403.
package adminlogin

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
	authservice "github.com/agummds/PadangTourGuide/internal/services/auth"
)

// Request — структура входных данных для входа администратора.
type Request struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Service описывает интерфейс бизнес-логики входа администратора.
type Service interface {
	AdminLogin(ctx context.Context, email, rawPassword string) (*models.User, string, error)
}

// Handler обрабатывает HTTP-запросы входа администратора.
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
	const op = "handlers.auth.adminlogin"

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

	user, token, err := h.service.AdminLogin(r.Context(), req.Email, req.Password)
	if errors.Is(err, authservice.ErrInvalidCredentials) {
		log.Error("invalid credentials", slog.String("email", req.Email))
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, response.Err("email atau password salah"))
		return
	}
	if errors.Is(err, authservice.ErrNotAdmin) {
		log.Error("non-admin attempted admin login", slog.String("email", req.Email))
		render.Status(r, http.StatusForbidden)
		render.JSON(w, r, response.Err("akses ditolak, hanya admin yang diizinkan"))
		return
	}
	if err != nil {
		log.Error("admin login failed", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, response.Err(err.Error()))
		return
	}

	log.Info("admin login success", slog.String("email", user.Email))
	render.JSON(w, r, response.OKWithData("login berhasil", map[string]any{
		"user":        user,
		"accessToken": token,
	}))
}
