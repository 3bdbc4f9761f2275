package create_booking

import (
	"github.com/m04kA/SMC-AdminConsole/internal/domain"
)

// Response результат успешного оформления
type Response struct {
	Booking      domain.Booking // Бронирование, подтверждённое API
	ItemsTotal   float64        // Сумма строк на момент отправки
	PaymentTotal float64        // Сумма оплаты на момент отправки
}

// QuoteLine расчёт одной строки черновика
type QuoteLine struct {
	ProductID   string
	ProductName string
	IsDefault   bool
	Quantity    float64
	UnitPrice   *float64 // nil, если цена ещё не определена
	LineTotal   float64
}

// Quote живой расчёт черновика для формы
type Quote struct {
	Lines        []QuoteLine
	ItemsTotal   float64
	PaymentTotal float64
	Difference   float64 // PaymentTotal - ItemsTotal
	Reconciled   bool
	CanSubmit    bool
	Problem      string // Первое нарушенное правило, если CanSubmit = false
	BranchID     string // Филиал, в котором будет создано бронирование
}
