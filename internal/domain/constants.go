package domain

// PaymentEpsilon допуск сверки оплаты с суммой строк.
// Оплата должна закрывать счёт полностью, допуск покрывает только шум float64.
const PaymentEpsilon = 0.001

// Pagination defaults
const (
	DefaultPage          = 1
	DefaultLimit         = 10
	DefaultBookingsLimit = 20
	MaxBookingsLimit     = 100
)

// Ключи клиентского состояния
const (
	StateKeyAuthToken = "auth_token"
	StateKeyTheme     = "theme"
)

// Theme тема интерфейса
type Theme string

const (
	ThemeLight   Theme = "light"
	ThemeDark    Theme = "dark"
	DefaultTheme       = ThemeDark
)

// IsValid проверяет значение темы
func (t Theme) IsValid() bool {
	return t == ThemeLight || t == ThemeDark
}

// Пути представлений консоли
const (
	PathLogin     = "/login"
	PathDashboard = "/dashboard"
)

// Time format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
)
