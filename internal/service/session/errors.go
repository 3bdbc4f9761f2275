package session

import "errors"

var (
	// ErrInvalidProfile возвращается, когда API вернул профиль с неизвестной ролью
	ErrInvalidProfile = errors.New("session: user profile is not usable")

	// ErrNotAuthenticated возвращается, когда операция требует входа
	ErrNotAuthenticated = errors.New("session: not authenticated")
)
