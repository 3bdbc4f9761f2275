package get_navigation

import (
	"net/http"

	"github.com/m04kA/SMC-AdminConsole/internal/api/handlers"
	"github.com/m04kA/SMC-AdminConsole/internal/api/middleware"
	"github.com/m04kA/SMC-AdminConsole/internal/domain"
)

const msgNotAuthenticated = "not authenticated"

type Handler struct {
	logger Logger
}

func NewHandler(logger Logger) *Handler {
	return &Handler{logger: logger}
}

// Handle GET /dashboard, GET /dashboard/navigation
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	s, ok := middleware.GetSession(r.Context())
	if !ok {
		h.logger.Warn("GET /dashboard/navigation - Missing session")
		handlers.RespondUnauthorized(w, msgNotAuthenticated)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromDomain(s, domain.NavigationFor(s.Role)))
}
