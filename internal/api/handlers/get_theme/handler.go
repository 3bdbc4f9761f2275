package get_theme

import (
	"net/http"

	"github.com/m04kA/SMC-AdminConsole/internal/api/handlers"
)

type Handler struct {
	service PreferencesService
	logger  Logger
}

func NewHandler(service PreferencesService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/preferences/theme
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	theme, err := h.service.Theme(r.Context())
	if err != nil {
		h.logger.Error("GET /preferences/theme - Failed to read theme: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, ThemeResponse{Theme: string(theme)})
}
