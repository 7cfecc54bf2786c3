package middlewarectx

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/agummds/PadangTourGuide/internal/http/response"
	"github.com/agummds/PadangTourGuide/internal/models"
)

// AdminOnlyMiddleware пускает дальше только запросы с ролью admin
// в контексте. Несовпадение роли дает 403, обработчик не вызывается.
//
// Ставится строго после JWTMiddleware, иначе роли в контексте нет.
func AdminOnlyMiddleware(log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			const op = "middlewarectx.AdminOnlyMiddleware"

			log := log.With(
				slog.String("op", op),
				slog.String("request_id", middleware.GetReqID(r.Context())),
			)

			role, ok := r.Context().Value(Role).(string)
			if !ok || role == "" {
				log.Error("role missing in request context")
				w.WriteHeader(http.StatusUnauthorized)
				return
			}
			if role != models.RoleAdmin {
				log.Error("access denied for non-admin role", slog.String("role", role))
				render.Status(r, http.StatusForbidden)
				render.JSON(w, r, response.Err("akses ditolak, hanya admin yang diizinkan"))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
