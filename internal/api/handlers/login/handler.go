package login

import (
	"errors"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/m04kA/SMC-AdminConsole/internal/api/handlers"
	"github.com/m04kA/SMC-AdminConsole/internal/integrations/backendapi"
	"github.com/m04kA/SMC-AdminConsole/internal/service/session"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidCredentials = "email and password are required"
	msgRoleNotAllowed     = "this account cannot use the console"
	msgBackendUnavailable = "login service is unavailable, try again"
)

type Handler struct {
	gate     SessionGate
	validate *validator.Validate
	logger   Logger
}

func NewHandler(gate SessionGate, logger Logger) *Handler {
	return &Handler{
		gate:     gate,
		validate: validator.New(),
		logger:   logger,
	}
}

// Handle POST /api/v1/auth/login
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /auth/login - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	req.Email = strings.TrimSpace(req.Email)

	if err := h.validate.Struct(req); err != nil {
		h.logger.Warn("POST /auth/login - Validation failed: %v", err)
		handlers.RespondBadRequest(w, msgInvalidCredentials)
		return
	}

	s, err := h.gate.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		var apiErr *backendapi.APIError
		switch {
		case errors.As(err, &apiErr) && apiErr.Status < http.StatusInternalServerError:
			// Сообщение сервера показывается без изменений
			h.logger.Warn("POST /auth/login - Rejected: email=%s, status=%d", req.Email, apiErr.Status)
			handlers.RespondError(w, apiErr.Status, apiErr.Message)

		case errors.As(err, &apiErr):
			h.logger.Error("POST /auth/login - Backend failed: email=%s, status=%d, error=%v", req.Email, apiErr.Status, err)
			handlers.RespondBadGateway(w, apiErr.Message)

		case errors.Is(err, session.ErrInvalidProfile):
			h.logger.Warn("POST /auth/login - Role not allowed: email=%s, error=%v", req.Email, err)
			handlers.RespondForbidden(w, msgRoleNotAllowed)

		default:
			h.logger.Error("POST /auth/login - Failed to login: email=%s, error=%v", req.Email, err)
			handlers.RespondBadGateway(w, msgBackendUnavailable)
		}
		return
	}

	h.logger.Info("POST /auth/login - Logged in: user_id=%s, role=%s", s.UserID, s.Role)
	handlers.RespondJSON(w, http.StatusOK, FromDomainSession(s))
}
