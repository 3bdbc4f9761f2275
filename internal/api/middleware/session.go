package middleware

import (
	"context"
	"net/http"

	"github.com/m04kA/SMC-AdminConsole/internal/api/handlers"
	"github.com/m04kA/SMC-AdminConsole/internal/domain"
	"github.com/m04kA/SMC-AdminConsole/internal/service/session"
)

type contextKey string

const sessionKey contextKey = "session"

const msgLoading = "loading"

// Gate шлюз сессии
type Gate interface {
	Authorize(required *domain.Role) session.Access
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RequireSession пропускает запрос только при подходящей сессии.
// Пока сессия восстанавливается - 503, без сессии или с чужой ролью - редирект,
// защищённый обработчик при этом не вызывается.
func RequireSession(gate Gate, required *domain.Role, logger Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			access := gate.Authorize(required)

			switch access.Decision {
			case session.DecisionPending:
				w.Header().Set("Retry-After", "1")
				handlers.RespondServiceUnavailable(w, msgLoading)
				return

			case session.DecisionDeny:
				if access.Session != nil {
					logger.Warn("%s %s - Role %s denied, redirecting to %s",
						r.Method, r.URL.Path, access.Session.Role, access.RedirectTo)
				}
				http.Redirect(w, r, access.RedirectTo, http.StatusFound)
				return
			}

			ctx := context.WithValue(r.Context(), sessionKey, access.Session)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetSession извлекает сессию, положенную RequireSession
func GetSession(ctx context.Context) (*domain.Session, bool) {
	s, ok := ctx.Value(sessionKey).(*domain.Session)
	return s, ok && s != nil
}

// WithSession кладёт сессию в контекст
func WithSession(ctx context.Context, s *domain.Session) context.Context {
	return context.WithValue(ctx, sessionKey, s)
}
