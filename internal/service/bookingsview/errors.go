package bookingsview

import "errors"

var (
	// ErrNoSession возвращается, когда список запрошен без сессии
	ErrNoSession = errors.New("bookings view: no session")

	// ErrBranchNotAssigned у сотрудника нет филиала, список не может быть ограничен
	ErrBranchNotAssigned = errors.New("your branch is not set, contact admin")

	// ErrInvalidTimeRange начало периода позже конца
	ErrInvalidTimeRange = errors.New("start date is after end date")

	// ErrStaleResponse ответ пришёл после более нового и был отброшен
	ErrStaleResponse = errors.New("bookings view: stale response discarded")

	// ErrInternal возвращается при ошибках загрузки списка
	ErrInternal = errors.New("bookings view: internal error")
)
