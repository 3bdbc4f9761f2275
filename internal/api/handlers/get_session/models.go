package get_session

import (
	"time"

	"github.com/m04kA/SMC-AdminConsole/internal/domain"
	"github.com/m04kA/SMC-AdminConsole/internal/service/session"
)

// SessionUser HTTP response model
type SessionUser struct {
	UserID      string  `json:"userId"`
	Email       string  `json:"email"`
	DisplayName string  `json:"name"`
	Role        string  `json:"role"`
	BranchID    *string `json:"branchId,omitempty"`
}

// SessionResponse HTTP response model
type SessionResponse struct {
	State         string       `json:"state"`
	Authenticated bool         `json:"authenticated"`
	IsAdmin       bool         `json:"isAdmin"`
	User          *SessionUser `json:"user,omitempty"`
	ExpiresAt     *string      `json:"expiresAt,omitempty"`
	Error         string       `json:"error,omitempty"`
}

// FromSessionView конвертирует снимок сессии в HTTP response
func FromSessionView(v session.View) *SessionResponse {
	resp := &SessionResponse{
		State:         v.State.String(),
		Authenticated: v.State == session.StateAuthenticated,
		Error:         v.LastError,
	}
	if v.Session != nil {
		resp.IsAdmin = v.Session.Role == domain.RoleAdmin
		resp.User = &SessionUser{
			UserID:      v.Session.UserID,
			Email:       v.Session.Email,
			DisplayName: v.Session.DisplayName,
			Role:        string(v.Session.Role),
			BranchID:    v.Session.BranchID,
		}
	}
	if v.ExpiresAt != nil {
		exp := v.ExpiresAt.Format(time.RFC3339)
		resp.ExpiresAt = &exp
	}
	return resp
}
