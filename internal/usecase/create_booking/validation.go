package create_booking

import (
	"fmt"
	"math"
	"strings"

	"github.com/m04kA/SMC-AdminConsole/internal/domain"
	"github.com/m04kA/SMC-AdminConsole/pkg/ptr"
)

// ValidateForSubmit проверяет черновик перед отправкой.
// Правила проверяются строго по порядку, первая ошибка прерывает проверку.
// Возвращает филиал, в котором будет создано бронирование.
func ValidateForSubmit(draft domain.BookingDraft, s *domain.Session, catalog *domain.Catalog) (string, error) {
	// 1. Обязательные поля клиента
	if err := validateRequiredFields(draft); err != nil {
		return "", err
	}

	// 2. Филиал
	branchID, err := resolveBranch(draft, s, catalog)
	if err != nil {
		return "", err
	}

	// 3. Хотя бы одна строка
	if len(draft.Items) == 0 {
		return "", ErrNoItems
	}

	// 4. Каждая строка - известный продукт и целое количество >= 1
	for i, line := range draft.Items {
		if _, ok := catalog.FindProduct(line.ProductID); !ok {
			return "", fmt.Errorf("%w (item %d: unknown product)", ErrInvalidLineItem, i+1)
		}
		if !isWholeQuantity(line.Quantity) {
			return "", fmt.Errorf("%w (item %d)", ErrInvalidLineItem, i+1)
		}
	}

	// 5. Продукт со свободной ценой: ровно 1 и цена > 0
	for i, line := range draft.Items {
		product, _ := catalog.FindProduct(line.ProductID)
		if !product.IsDefault {
			continue
		}
		if line.Quantity != 1 {
			return "", fmt.Errorf("%w (item %d: quantity must be 1)", ErrInvalidCustomItem, i+1)
		}
		price := ParseAmount(line.UnitPrice)
		if !isFinite(price) || price <= 0 {
			return "", fmt.Errorf("%w (item %d)", ErrInvalidCustomItem, i+1)
		}
	}

	// 6. Суммы оплаты - конечные числа >= 0
	cash := ParseAmount(draft.CashAmount)
	upi := ParseAmount(draft.UPIAmount)
	if !isFinite(cash) || cash < 0 || !isFinite(upi) || upi < 0 {
		return "", ErrInvalidPaymentAmount
	}

	// 7. Хотя бы одна сумма > 0
	if cash <= 0 && upi <= 0 {
		return "", ErrNoPayment
	}

	// 8. Сверка с суммой строк
	itemsTotal := ItemsTotal(draft, catalog)
	paymentTotal := cash + upi
	if !IsReconciled(paymentTotal, itemsTotal) {
		return "", fmt.Errorf("%w: payment %.2f, items %.2f", ErrPaymentMismatch, paymentTotal, itemsTotal)
	}

	return branchID, nil
}

// BuildPayload нормализует проверенный черновик в запрос к API.
// Цена передаётся только для продукта со свободной ценой, остальные цены определяет сервер.
func BuildPayload(draft domain.BookingDraft, branchID string, catalog *domain.Catalog) domain.BookingPayload {
	items := make([]domain.BookingItemPayload, 0, len(draft.Items))
	for _, line := range draft.Items {
		item := domain.BookingItemPayload{
			ProductID: line.ProductID,
			Quantity:  int(line.Quantity),
		}
		if product, ok := catalog.FindProduct(line.ProductID); ok && product.IsDefault {
			item.Quantity = 1
			item.UnitPrice = ptr.Ptr(ParseAmount(line.UnitPrice))
		}
		items = append(items, item)
	}

	payload := domain.BookingPayload{
		Phone:      strings.TrimSpace(draft.Phone),
		FullName:   strings.TrimSpace(draft.FullName),
		ArtistName: strings.TrimSpace(draft.ArtistName),
		BranchID:   branchID,
		Size:       draft.Size,
		Birthday:   strings.TrimSpace(draft.Birthday),
		Items:      items,
		CashAmount: ParseAmount(draft.CashAmount),
		UPIAmount:  ParseAmount(draft.UPIAmount),
	}
	if email := strings.TrimSpace(draft.Email); email != "" {
		payload.Email = &email
	}

	return payload
}

func validateRequiredFields(draft domain.BookingDraft) error {
	var missing []string
	if strings.TrimSpace(draft.FullName) == "" {
		missing = append(missing, "name")
	}
	if strings.TrimSpace(draft.Phone) == "" {
		missing = append(missing, "phone")
	}
	if strings.TrimSpace(draft.ArtistName) == "" {
		missing = append(missing, "artist")
	}
	if strings.TrimSpace(draft.Birthday) == "" {
		missing = append(missing, "birthday")
	}

	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", ErrMissingRequiredFields, strings.Join(missing, ", "))
	}
	return nil
}

// resolveBranch администратор выбирает филиал из каталога, сотрудник работает в своём
func resolveBranch(draft domain.BookingDraft, s *domain.Session, catalog *domain.Catalog) (string, error) {
	if s.IsAdmin() {
		branchID := strings.TrimSpace(draft.BranchID)
		if branchID == "" || !catalog.HasBranch(branchID) {
			return "", ErrBranchNotSelected
		}
		return branchID, nil
	}

	branchID, ok := s.AssignedBranch()
	if !ok {
		return "", ErrBranchNotAssigned
	}
	return branchID, nil
}

func isWholeQuantity(q float64) bool {
	return isFinite(q) && q >= 1 && q == math.Trunc(q)
}
