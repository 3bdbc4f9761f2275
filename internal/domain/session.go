package domain

import "errors"

// Role роль оператора консоли
type Role string

const (
	RoleAdmin    Role = "admin"
	RoleEmployee Role = "employee"
)

var (
	// ErrInvalidRole возвращается, когда профиль пришёл с неизвестной ролью
	ErrInvalidRole = errors.New("session: invalid role")

	// ErrBranchMismatch возвращается при нарушении правила "branchId есть только у сотрудника"
	ErrBranchMismatch = errors.New("session: branch must be set only for employees")
)

// IsValid проверяет, что роль известна
func (r Role) IsValid() bool {
	return r == RoleAdmin || r == RoleEmployee
}

// UserProfile профиль пользователя, как его возвращает API
type UserProfile struct {
	ID       string
	Email    string
	Name     string
	Role     Role
	BranchID *string
}

// Session аутентифицированный оператор консоли
type Session struct {
	UserID      string
	Email       string
	DisplayName string
	Role        Role
	BranchID    *string // только для сотрудника
}

// NewSession строит сессию из профиля.
// У администратора филиал отбрасывается, сотрудник без филиала допускается:
// отсутствие филиала - проблема аккаунта, она всплывает при оформлении бронирования.
func NewSession(p UserProfile) (*Session, error) {
	if !p.Role.IsValid() {
		return nil, ErrInvalidRole
	}

	s := &Session{
		UserID:      p.ID,
		Email:       p.Email,
		DisplayName: p.Name,
		Role:        p.Role,
	}
	if p.Role == RoleEmployee && p.BranchID != nil && *p.BranchID != "" {
		branchID := *p.BranchID
		s.BranchID = &branchID
	}

	return s, nil
}

// Validate проверяет инварианты сессии
func (s *Session) Validate() error {
	if !s.Role.IsValid() {
		return ErrInvalidRole
	}
	if s.Role == RoleAdmin && s.BranchID != nil {
		return ErrBranchMismatch
	}
	return nil
}

// IsAdmin returns true if the operator may act across branches
func (s *Session) IsAdmin() bool {
	return s.Role == RoleAdmin
}

// AssignedBranch возвращает филиал сотрудника
func (s *Session) AssignedBranch() (string, bool) {
	if s.BranchID == nil || *s.BranchID == "" {
		return "", false
	}
	return *s.BranchID, true
}

// HasRole проверяет соответствие требуемой роли (nil - любая роль)
func (s *Session) HasRole(required *Role) bool {
	if required == nil {
		return true
	}
	return s.Role == *required
}
