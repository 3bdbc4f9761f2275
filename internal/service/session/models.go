package session

import (
	"time"

	"github.com/m04kA/SMC-AdminConsole/internal/domain"
)

// State состояние шлюза
type State int

const (
	StateUnknown State = iota
	StateAnonymous
	StateAuthenticated
)

func (s State) String() string {
	switch s {
	case StateAnonymous:
		return "anonymous"
	case StateAuthenticated:
		return "authenticated"
	default:
		return "unknown"
	}
}

// Decision результат проверки доступа к представлению
type Decision int

const (
	// DecisionPending сессия ещё восстанавливается, проверять роль рано
	DecisionPending Decision = iota
	DecisionAllow
	DecisionDeny
)

// DenyPolicy куда отправлять пользователя с неподходящей ролью
type DenyPolicy string

const (
	DenyToLogin DenyPolicy = "login"
	DenyToHome  DenyPolicy = "home"
)

// Access решение шлюза
type Access struct {
	Decision   Decision
	RedirectTo string
	Session    *domain.Session
}

// View снимок сессии для отображения
type View struct {
	State     State
	Session   *domain.Session
	ExpiresAt *time.Time
	LastError string
}
