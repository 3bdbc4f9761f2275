package get_session

import (
	"net/http"

	"github.com/m04kA/SMC-AdminConsole/internal/api/handlers"
	"github.com/m04kA/SMC-AdminConsole/internal/service/session"
)

const msgLoading = "loading"

type Handler struct {
	gate   SessionGate
	logger Logger
}

func NewHandler(gate SessionGate, logger Logger) *Handler {
	return &Handler{
		gate:   gate,
		logger: logger,
	}
}

// Handle GET /api/v1/auth/session
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	v := h.gate.View()
	if v.State == session.StateUnknown {
		w.Header().Set("Retry-After", "1")
		handlers.RespondServiceUnavailable(w, msgLoading)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromSessionView(v))
}
