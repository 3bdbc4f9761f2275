package domain

import "time"

// PaymentMode способ оплаты, вычисленный сервером
type PaymentMode string

const (
	PaymentModeCash  PaymentMode = "CASH"
	PaymentModeUPI   PaymentMode = "UPI"
	PaymentModeSplit PaymentMode = "SPLIT"
)

// LineDraft строка черновика бронирования.
// Значения вводятся в форме, поэтому цена хранится строкой и разбирается при расчёте.
type LineDraft struct {
	ProductID string
	Quantity  float64
	UnitPrice string // учитывается только для продукта со свободной ценой
}

// BookingDraft черновик бронирования до отправки
type BookingDraft struct {
	FullName   string
	Phone      string
	Email      string
	ArtistName string
	Birthday   string // YYYY-MM-DD
	Size       *float64
	BranchID   string // выбирает администратор, у сотрудника берётся из сессии
	Items      []LineDraft
	CashAmount string
	UPIAmount  string
}

// BookingItemPayload строка бронирования в запросе к API
type BookingItemPayload struct {
	ProductID string
	Quantity  int
	UnitPrice *float64 // только для продукта со свободной ценой
}

// BookingPayload нормализованный запрос на создание бронирования
type BookingPayload struct {
	Phone      string
	FullName   string
	ArtistName string
	BranchID   string
	Email      *string
	Size       *float64
	Birthday   string
	Items      []BookingItemPayload
	CashAmount float64
	UPIAmount  float64
}

// BookingItem строка подтверждённого бронирования
type BookingItem struct {
	ProductID   string
	ProductName string
	Quantity    int
	UnitPrice   float64
	LineTotal   float64
}

// BookingPayment оплата подтверждённого бронирования
type BookingPayment struct {
	CashAmount  float64
	UPIAmount   float64
	TotalAmount float64
	PaymentMode PaymentMode
}

// Booking бронирование, подтверждённое сервером (только чтение)
type Booking struct {
	ID            string
	BookingNumber string
	Phone         string
	FullName      string
	ArtistName    string
	Email         *string
	Size          *float64
	Birthday      *string
	BranchID      string
	BranchName    string
	Items         []BookingItem
	Payment       *BookingPayment
	CreatedAt     *time.Time
}

// ItemsTotal сумма строк по данным сервера
func (b *Booking) ItemsTotal() float64 {
	total := 0.0
	for _, item := range b.Items {
		total += item.LineTotal
	}
	return total
}

// BookingsFilter фильтр списка бронирований
type BookingsFilter struct {
	BranchID  *string    // для сотрудника всегда его филиал
	StartDate *time.Time // начало периода (опционально)
	EndDate   *time.Time // конец периода (опционально)
	Page      int
	Limit     int
}

// BookingsPage страница списка бронирований
type BookingsPage struct {
	Bookings []Booking
	Count    int
	Total    int
	Page     int
	Limit    int
}
