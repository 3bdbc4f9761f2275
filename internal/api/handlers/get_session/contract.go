package get_session

import (
	"github.com/m04kA/SMC-AdminConsole/internal/service/session"
)

type SessionGate interface {
	View() session.View
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
