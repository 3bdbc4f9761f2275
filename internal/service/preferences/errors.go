package preferences

import "errors"

var (
	// ErrInvalidTheme возвращается при неизвестном значении темы
	ErrInvalidTheme = errors.New("theme must be light or dark")

	// ErrInternal возвращается при ошибках хранилища
	ErrInternal = errors.New("preferences: internal error")
)
