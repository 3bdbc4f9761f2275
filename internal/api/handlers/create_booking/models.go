package create_booking

import (
	"strings"
	"time"

	"github.com/m04kA/SMC-AdminConsole/internal/api/handlers"
	"github.com/m04kA/SMC-AdminConsole/internal/domain"
	createBooking "github.com/m04kA/SMC-AdminConsole/internal/usecase/create_booking"
)

// DraftItemRequest строка черновика как её присылает форма
type DraftItemRequest struct {
	ProductID string          `json:"productId"`
	Quantity  handlers.Amount `json:"quantity"`
	UnitPrice handlers.Amount `json:"unitPrice"`
}

// DraftRequest HTTP request model черновика бронирования.
// Числовые поля принимаются числом или строкой, проверку делает use case.
type DraftRequest struct {
	FullName   string             `json:"fullName"`
	Phone      string             `json:"phone"`
	Email      string             `json:"email"`
	ArtistName string             `json:"artistName"`
	Birthday   string             `json:"birthday"` // "1995-04-12"
	Size       *float64           `json:"size,omitempty"`
	BranchID   string             `json:"branchId"`
	Items      []DraftItemRequest `json:"items"`
	CashAmount handlers.Amount    `json:"cashAmount"`
	UPIAmount  handlers.Amount    `json:"upiAmount"`
}

// ToDomainDraft конвертирует HTTP запрос в черновик
func (r *DraftRequest) ToDomainDraft() domain.BookingDraft {
	items := make([]domain.LineDraft, 0, len(r.Items))
	for _, it := range r.Items {
		items = append(items, domain.LineDraft{
			ProductID: strings.TrimSpace(it.ProductID),
			Quantity:  createBooking.ParseAmount(it.Quantity.String()),
			UnitPrice: it.UnitPrice.String(),
		})
	}

	return domain.BookingDraft{
		FullName:   r.FullName,
		Phone:      r.Phone,
		Email:      r.Email,
		ArtistName: r.ArtistName,
		Birthday:   r.Birthday,
		Size:       r.Size,
		BranchID:   r.BranchID,
		Items:      items,
		CashAmount: r.CashAmount.String(),
		UPIAmount:  r.UPIAmount.String(),
	}
}

type BookingItemResponse struct {
	ProductID   string  `json:"productId"`
	ProductName string  `json:"productName,omitempty"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unitPrice"`
	LineTotal   float64 `json:"lineTotal"`
}

type PaymentResponse struct {
	CashAmount  float64 `json:"cashAmount"`
	UPIAmount   float64 `json:"upiAmount"`
	TotalAmount float64 `json:"totalAmount"`
	PaymentMode string  `json:"paymentMode"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID            string                `json:"id"`
	BookingNumber string                `json:"bookingNumber"`
	FullName      string                `json:"fullName"`
	Phone         string                `json:"phone"`
	Email         *string               `json:"email,omitempty"`
	ArtistName    string                `json:"artistName"`
	Birthday      *string               `json:"birthday,omitempty"`
	Size          *float64              `json:"size,omitempty"`
	BranchID      string                `json:"branchId"`
	BranchName    string                `json:"branchName,omitempty"`
	Items         []BookingItemResponse `json:"items"`
	Payment       *PaymentResponse      `json:"payment,omitempty"`
	ItemsTotal    float64               `json:"itemsTotal"`
	CreatedAt     *string               `json:"createdAt,omitempty"`
}

// FromDomainBooking конвертирует бронирование в HTTP response
func FromDomainBooking(b domain.Booking) *BookingResponse {
	resp := &BookingResponse{
		ID:            b.ID,
		BookingNumber: b.BookingNumber,
		FullName:      b.FullName,
		Phone:         b.Phone,
		Email:         b.Email,
		ArtistName:    b.ArtistName,
		Birthday:      b.Birthday,
		Size:          b.Size,
		BranchID:      b.BranchID,
		BranchName:    b.BranchName,
		Items:         make([]BookingItemResponse, 0, len(b.Items)),
		ItemsTotal:    b.ItemsTotal(),
	}
	for _, it := range b.Items {
		resp.Items = append(resp.Items, BookingItemResponse{
			ProductID:   it.ProductID,
			ProductName: it.ProductName,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
			LineTotal:   it.LineTotal,
		})
	}
	if b.Payment != nil {
		resp.Payment = &PaymentResponse{
			CashAmount:  b.Payment.CashAmount,
			UPIAmount:   b.Payment.UPIAmount,
			TotalAmount: b.Payment.TotalAmount,
			PaymentMode: string(b.Payment.PaymentMode),
		}
	}
	if b.CreatedAt != nil {
		created := b.CreatedAt.Format(time.RFC3339)
		resp.CreatedAt = &created
	}
	return resp
}
