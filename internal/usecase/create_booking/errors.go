package create_booking

import (
	"errors"
)

var (
	// ErrMissingRequiredFields не заполнены имя, телефон, мастер или дата рождения
	ErrMissingRequiredFields = errors.New("fill in all required fields")

	// ErrBranchNotSelected администратор не выбрал филиал из каталога
	ErrBranchNotSelected = errors.New("select a branch")

	// ErrBranchNotAssigned у сотрудника нет филиала - проблема аккаунта
	ErrBranchNotAssigned = errors.New("your branch is not set, contact admin")

	// ErrNoItems в черновике нет строк
	ErrNoItems = errors.New("add at least one item")

	// ErrInvalidLineItem строка ссылается на неизвестный продукт или количество не целое >= 1
	ErrInvalidLineItem = errors.New("every item needs a valid product and a whole quantity of at least 1")

	// ErrInvalidCustomItem продукт со свободной ценой: количество не 1 или цена не > 0
	ErrInvalidCustomItem = errors.New("custom service needs quantity 1 and a price greater than 0")

	// ErrInvalidPaymentAmount сумма наличными или UPI не число >= 0
	ErrInvalidPaymentAmount = errors.New("cash and UPI amounts must be numbers of 0 or more")

	// ErrNoPayment обе суммы оплаты нулевые
	ErrNoPayment = errors.New("enter a cash or UPI amount")

	// ErrPaymentMismatch оплата не сходится с суммой строк
	ErrPaymentMismatch = errors.New("payment total does not match items total")

	// ErrNotAuthenticated оформление без сессии
	ErrNotAuthenticated = errors.New("create_booking: not authenticated")

	// ErrCatalogUnavailable не удалось загрузить каталог
	ErrCatalogUnavailable = errors.New("create_booking: catalog unavailable")

	// ErrSubmitFailed API отклонил бронирование или не ответил
	ErrSubmitFailed = errors.New("create_booking: submission failed")
)

// validationRules порядок проверок и их имена для метрик
var validationRules = []struct {
	err  error
	name string
}{
	{ErrMissingRequiredFields, "required_fields"},
	{ErrBranchNotSelected, "branch"},
	{ErrBranchNotAssigned, "branch"},
	{ErrNoItems, "items_present"},
	{ErrInvalidLineItem, "line_item"},
	{ErrInvalidCustomItem, "custom_item"},
	{ErrInvalidPaymentAmount, "payment_amounts"},
	{ErrNoPayment, "payment_present"},
	{ErrPaymentMismatch, "reconciliation"},
}

// IsValidationError проверяет, что ошибка - локальная ошибка формы
func IsValidationError(err error) bool {
	return RuleOf(err) != ""
}

// RuleOf имя нарушенного правила или пустая строка
func RuleOf(err error) string {
	for _, r := range validationRules {
		if errors.Is(err, r.err) {
			return r.name
		}
	}
	return ""
}
