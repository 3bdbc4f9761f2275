package create_booking

import (
	"math"
	"strconv"
	"strings"

	"github.com/m04kA/SMC-AdminConsole/internal/domain"
)

// ParseAmount разбирает число из поля формы.
// Пустое или некорректное значение - NaN, а не 0: ноль нельзя отличить от незаполненного поля.
func ParseAmount(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return math.NaN()
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return math.NaN()
	}
	return v
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func finiteOrZero(v float64) float64 {
	if !isFinite(v) {
		return 0
	}
	return v
}

// ResolveUnitPrice цена единицы строки.
// Для продукта со свободной ценой - введённое значение, для остальных - basePrice из каталога,
// введённое значение игнорируется. Неизвестный продукт - NaN.
func ResolveUnitPrice(line domain.LineDraft, catalog *domain.Catalog) float64 {
	product, ok := catalog.FindProduct(line.ProductID)
	if !ok {
		return math.NaN()
	}
	if product.IsDefault {
		return ParseAmount(line.UnitPrice)
	}
	return product.BasePrice
}

// effectiveQuantity количество, участвующее в расчёте: у продукта со свободной ценой всегда 1
func effectiveQuantity(line domain.LineDraft, product *domain.Product) float64 {
	if product.IsDefault {
		return 1
	}
	return line.Quantity
}

// LineTotal сумма строки; строка в некорректном промежуточном состоянии даёт 0
func LineTotal(line domain.LineDraft, catalog *domain.Catalog) float64 {
	product, ok := catalog.FindProduct(line.ProductID)
	if !ok {
		return 0
	}

	quantity := effectiveQuantity(line, product)
	price := ResolveUnitPrice(line, catalog)

	if !isFinite(quantity) || quantity < 1 || !isFinite(price) || price < 0 {
		return 0
	}
	return quantity * price
}

// ItemsTotal сумма всех строк
func ItemsTotal(draft domain.BookingDraft, catalog *domain.Catalog) float64 {
	total := 0.0
	for _, line := range draft.Items {
		total += LineTotal(line, catalog)
	}
	return total
}

// PaymentTotal сумма наличных и UPI для отображения (нечисловые значения считаются нулём)
func PaymentTotal(draft domain.BookingDraft) float64 {
	return finiteOrZero(ParseAmount(draft.CashAmount)) + finiteOrZero(ParseAmount(draft.UPIAmount))
}

// IsReconciled оплата сходится с суммой строк в пределах domain.PaymentEpsilon
func IsReconciled(paymentTotal, itemsTotal float64) bool {
	return math.Abs(paymentTotal-itemsTotal) <= domain.PaymentEpsilon
}

// SetQuantity меняет количество в строке i; для продукта со свободной ценой количество остаётся 1
func SetQuantity(draft domain.BookingDraft, i int, quantity float64, catalog *domain.Catalog) domain.BookingDraft {
	if i < 0 || i >= len(draft.Items) {
		return draft
	}

	out := cloneDraft(draft)
	if product, ok := catalog.FindProduct(out.Items[i].ProductID); ok && product.IsDefault {
		quantity = 1
	}
	out.Items[i].Quantity = quantity
	return out
}

// NormalizeDraft закрепляет количество 1 у всех строк с продуктом со свободной ценой
func NormalizeDraft(draft domain.BookingDraft, catalog *domain.Catalog) domain.BookingDraft {
	out := cloneDraft(draft)
	for i := range out.Items {
		if product, ok := catalog.FindProduct(out.Items[i].ProductID); ok && product.IsDefault {
			out.Items[i].Quantity = 1
		}
	}
	return out
}

func cloneDraft(draft domain.BookingDraft) domain.BookingDraft {
	out := draft
	out.Items = make([]domain.LineDraft, len(draft.Items))
	copy(out.Items, draft.Items)
	return out
}
