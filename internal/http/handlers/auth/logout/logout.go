// Package logout реализует HTTP-обработчик выхода.
//
// Токены stateless и списка отзыва нет, поэтому на сервере ничего не
// меняется: клиент просто выбрасывает токен, срок жизни — единственный
// механизм прекращения сессии.
package logout

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/agummds/PadangTourGuide/internal/http/middlewarectx"
	"github.com/agummds/PadangTourGuide/internal/http/response"
)

// Handler обрабатывает HTTP-запросы выхода.
type Handler struct {
	log *slog.Logger
}

// New создает новый экземпляр Handler.
func New(log *slog.Logger) *Handler {
	return &Handler{log: log}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.auth.logout"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	userUID, _ := r.Context().Value(middlewarectx.UserUID).(string)
	log.Info("user logged out", slog.String("user", userUID))
	render.JSON(w, r, response.OK("logout berhasil"))
}
