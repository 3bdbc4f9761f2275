package state

import "errors"

var (
	// ErrNotFound возвращается, когда ключ отсутствует
	ErrNotFound = errors.New("state.store: key not found")

	// ErrEmptyKey возвращается при пустом ключе
	ErrEmptyKey = errors.New("state.store: empty key")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("state.store: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения запроса к хранилищу
	ErrExecQuery = errors.New("state.store: failed to execute query")
)
