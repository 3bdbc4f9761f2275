package login_view

import (
	"net/http"

	"github.com/m04kA/SMC-AdminConsole/internal/api/handlers"
	"github.com/m04kA/SMC-AdminConsole/internal/domain"
	"github.com/m04kA/SMC-AdminConsole/internal/service/session"
)

type Handler struct {
	gate SessionGate
}

func NewHandler(gate SessionGate) *Handler {
	return &Handler{gate: gate}
}

// Handle GET /login
// Экран входа доступен всегда; вошедшему оператору подсказывается переход на главную
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	v := h.gate.View()

	resp := LoginViewResponse{
		Authenticated: v.State == session.StateAuthenticated,
		State:         v.State.String(),
		Error:         v.LastError,
	}
	if resp.Authenticated {
		resp.RedirectTo = domain.PathDashboard
	}

	handlers.RespondJSON(w, http.StatusOK, resp)
}
