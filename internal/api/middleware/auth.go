package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-StudioBooking/internal/api/handlers"
	"github.com/m04kA/SMC-StudioBooking/internal/service/catalog"
	"github.com/m04kA/SMC-StudioBooking/internal/session"
)

// HeaderUserID заголовок с ID пользователя
const HeaderUserID = "X-User-ID"

const (
	msgMissingUserID = "отсутствует заголовок X-User-ID"
	msgUnknownUser   = "пользователь не найден"
)

// Auth кладет в контекст сессию пользователя из заголовка X-User-ID.
// Запросы без заголовка или с неизвестным пользователем получают 401.
func Auth(users UserDirectory, logger Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userID := strings.TrimSpace(r.Header.Get(HeaderUserID))
			if userID == "" {
				logger.Warn("Auth: missing %s header: %s %s", HeaderUserID, r.Method, r.URL.Path)
				handlers.RespondUnauthorized(w, msgMissingUserID)
				return
			}

			user, err := users.GetUser(r.Context(), userID)
			if err != nil {
				if errors.Is(err, catalog.ErrUserNotFound) {
					logger.Warn("Auth: unknown user id=%s", userID)
					handlers.RespondUnauthorized(w, msgUnknownUser)
					return
				}
				logger.Error("Auth: failed to get user id=%s: %v", userID, err)
				handlers.RespondInternalError(w)
				return
			}

			ctx := session.WithSession(r.Context(), session.Anonymous().Login(*user))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetUserID возвращает ID пользователя из сессии запроса
func GetUserID(ctx context.Context) (string, bool) {
	s := session.FromContext(ctx)
	if !s.IsAuthenticated() {
		return "", false
	}
	return s.UserID(), true
}
