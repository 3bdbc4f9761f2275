package login

import (
	"github.com/m04kA/SMC-AdminConsole/internal/domain"
)

// LoginRequest HTTP request model
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// SessionResponse HTTP response model
type SessionResponse struct {
	UserID      string  `json:"userId"`
	Email       string  `json:"email"`
	DisplayName string  `json:"name"`
	Role        string  `json:"role"`
	BranchID    *string `json:"branchId,omitempty"`
	RedirectTo  string  `json:"redirectTo"`
}

// FromDomainSession конвертирует сессию в HTTP response
func FromDomainSession(s *domain.Session) *SessionResponse {
	return &SessionResponse{
		UserID:      s.UserID,
		Email:       s.Email,
		DisplayName: s.DisplayName,
		Role:        string(s.Role),
		BranchID:    s.BranchID,
		RedirectTo:  domain.PathDashboard,
	}
}
