package update_theme

import (
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/m04kA/SMC-AdminConsole/internal/api/handlers"
	"github.com/m04kA/SMC-AdminConsole/internal/domain"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidTheme       = "theme must be light or dark"
)

type Handler struct {
	service  PreferencesService
	validate *validator.Validate
	logger   Logger
}

func NewHandler(service PreferencesService, logger Logger) *Handler {
	return &Handler{
		service:  service,
		validate: validator.New(),
		logger:   logger,
	}
}

// Handle PUT /api/v1/preferences/theme
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req UpdateThemeRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /preferences/theme - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := h.validate.Struct(req); err != nil || (!req.Toggle && req.Theme == "") {
		h.logger.Warn("PUT /preferences/theme - Validation failed: theme=%q, toggle=%t", req.Theme, req.Toggle)
		handlers.RespondBadRequest(w, msgInvalidTheme)
		return
	}

	var (
		theme domain.Theme
		err   error
	)
	if req.Toggle {
		theme, err = h.service.ToggleTheme(r.Context())
	} else {
		theme, err = h.service.SetTheme(r.Context(), domain.Theme(req.Theme))
	}
	if err != nil {
		h.logger.Error("PUT /preferences/theme - Failed to save theme: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("PUT /preferences/theme - Theme set: %s", theme)
	handlers.RespondJSON(w, http.StatusOK, ThemeResponse{Theme: string(theme)})
}
