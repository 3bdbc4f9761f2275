package logout

import (
	"net/http"
)

type Handler struct {
	gate   SessionGate
	view   BookingsView
	logger Logger
}

func NewHandler(gate SessionGate, view BookingsView, logger Logger) *Handler {
	return &Handler{
		gate:   gate,
		view:   view,
		logger: logger,
	}
}

// Handle POST /api/v1/auth/logout
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	h.gate.Logout(r.Context())
	h.view.Reset()

	h.logger.Info("POST /auth/logout - Session cleared")
	w.WriteHeader(http.StatusNoContent)
}
