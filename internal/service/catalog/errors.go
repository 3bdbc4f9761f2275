package catalog

import "errors"

var (
	// ErrNoSession возвращается, когда справочники запрошены без сессии
	ErrNoSession = errors.New("catalog: no session")

	// ErrInternal возвращается при ошибках загрузки справочников
	ErrInternal = errors.New("catalog: internal error")
)
