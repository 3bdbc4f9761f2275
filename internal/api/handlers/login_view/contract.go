package login_view

import (
	"github.com/m04kA/SMC-AdminConsole/internal/service/session"
)

type SessionGate interface {
	View() session.View
}
