package bookingsview

import (
	"time"

	"github.com/m04kA/SMC-AdminConsole/internal/domain"
)

// Snapshot копия состояния списка для отображения
type Snapshot struct {
	Bookings  []domain.Booking
	Total     int
	Page      int
	Limit     int
	Filter    domain.BookingsFilter // фильтр, с которым получены строки
	Loading   bool                  // есть незавершённые запросы
	Error     string                // сообщение последней неудачной загрузки
	UpdatedAt *time.Time
}
