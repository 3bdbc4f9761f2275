package backendapi

import (
	"bytes"
	"time"

	jsoniter "github.com/json-iterator/go"

	"github.com/m04kA/SMC-AdminConsole/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// envelope общий формат ответа API
type envelope struct {
	Message string              `json:"message"`
	Data    jsoniter.RawMessage `json:"data"`
}

// ref ссылка, которую API отдаёт либо строкой ID, либо вложенным объектом
type ref struct {
	ID   string
	Name string
}

func (r *ref) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		return nil
	}
	if b[0] == '"' {
		return json.Unmarshal(b, &r.ID)
	}

	var obj struct {
		MongoID string `json:"_id"`
		ID      string `json:"id"`
		Name    string `json:"name"`
	}
	if err := json.Unmarshal(b, &obj); err != nil {
		return err
	}
	r.ID = firstNonEmpty(obj.MongoID, obj.ID)
	r.Name = obj.Name
	return nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string  `json:"token"`
	User  userDTO `json:"user"`
}

// userDTO профиль пользователя: API отдаёт то _id, то id, то name, то fullName
type userDTO struct {
	MongoID  string  `json:"_id"`
	ID       string  `json:"id"`
	Email    string  `json:"email"`
	Name     string  `json:"name"`
	FullName string  `json:"fullName"`
	Role     string  `json:"role"`
	BranchID *string `json:"branchId"`
}

func (u *userDTO) toDomain() domain.UserProfile {
	return domain.UserProfile{
		ID:       firstNonEmpty(u.MongoID, u.ID),
		Email:    u.Email,
		Name:     firstNonEmpty(u.Name, u.FullName),
		Role:     domain.Role(u.Role),
		BranchID: u.BranchID,
	}
}

type productDTO struct {
	ID        string  `json:"_id"`
	Name      string  `json:"name"`
	BasePrice float64 `json:"basePrice"`
	IsDefault bool    `json:"isDefault"`
	IsActive  bool    `json:"isActive"`
}

type productsResponse struct {
	Products []productDTO `json:"products"`
	Count    int          `json:"count"`
}

type branchDTO struct {
	ID            string `json:"_id"`
	Name          string `json:"name"`
	Address       string `json:"address"`
	BranchNumber  string `json:"branchNumber"`
	EmployeeCount int    `json:"employeeCount"`
}

type branchesResponse struct {
	Count    int         `json:"count"`
	Branches []branchDTO `json:"branches"`
}

type bookingItemRequest struct {
	ProductID string   `json:"productId"`
	Quantity  int      `json:"quantity"`
	UnitPrice *float64 `json:"unitPrice,omitempty"`
}

type paymentRequest struct {
	CashAmount float64 `json:"cashAmount"`
	UPIAmount  float64 `json:"upiAmount"`
}

type createBookingRequest struct {
	Phone      string               `json:"phone"`
	FullName   string               `json:"fullName"`
	ArtistName string               `json:"artistName"`
	BranchID   string               `json:"branchId"`
	Email      *string              `json:"email,omitempty"`
	Size       *float64             `json:"size,omitempty"`
	Birthday   string               `json:"birthday"`
	Items      []bookingItemRequest `json:"items"`
	Payment    paymentRequest       `json:"payment"`
}

func fromDomainPayload(p domain.BookingPayload) createBookingRequest {
	items := make([]bookingItemRequest, 0, len(p.Items))
	for _, it := range p.Items {
		items = append(items, bookingItemRequest{
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
			UnitPrice: it.UnitPrice,
		})
	}

	return createBookingRequest{
		Phone:      p.Phone,
		FullName:   p.FullName,
		ArtistName: p.ArtistName,
		BranchID:   p.BranchID,
		Email:      p.Email,
		Size:       p.Size,
		Birthday:   p.Birthday,
		Items:      items,
		Payment: paymentRequest{
			CashAmount: p.CashAmount,
			UPIAmount:  p.UPIAmount,
		},
	}
}

type bookingItemDTO struct {
	ProductID   ref     `json:"productId"`
	ProductName string  `json:"productName"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unitPrice"`
	LineTotal   float64 `json:"lineTotal"`
}

type bookingPaymentDTO struct {
	CashAmount  float64 `json:"cashAmount"`
	UPIAmount   float64 `json:"upiAmount"`
	TotalAmount float64 `json:"totalAmount"`
	PaymentMode string  `json:"paymentMode"`
}

type bookingDTO struct {
	ID            string             `json:"_id"`
	BookingNumber string             `json:"bookingNumber"`
	Phone         string             `json:"phone"`
	FullName      string             `json:"fullName"`
	ArtistName    string             `json:"artistName"`
	Email         *string            `json:"email"`
	Size          *float64           `json:"size"`
	Birthday      *string            `json:"birthday"`
	BranchID      ref                `json:"branchId"`
	Items         []bookingItemDTO   `json:"items"`
	Payment       *bookingPaymentDTO `json:"payment"`
	CreatedAt     *time.Time         `json:"createdAt"`
}

func (b *bookingDTO) toDomain() domain.Booking {
	items := make([]domain.BookingItem, 0, len(b.Items))
	for _, it := range b.Items {
		name := it.ProductName
		if name == "" {
			name = it.ProductID.Name
		}
		items = append(items, domain.BookingItem{
			ProductID:   it.ProductID.ID,
			ProductName: name,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
			LineTotal:   it.LineTotal,
		})
	}

	booking := domain.Booking{
		ID:            b.ID,
		BookingNumber: b.BookingNumber,
		Phone:         b.Phone,
		FullName:      b.FullName,
		ArtistName:    b.ArtistName,
		Email:         b.Email,
		Size:          b.Size,
		Birthday:      b.Birthday,
		BranchID:      b.BranchID.ID,
		BranchName:    b.BranchID.Name,
		Items:         items,
		CreatedAt:     b.CreatedAt,
	}

	if b.Payment != nil {
		booking.Payment = &domain.BookingPayment{
			CashAmount:  b.Payment.CashAmount,
			UPIAmount:   b.Payment.UPIAmount,
			TotalAmount: b.Payment.TotalAmount,
			PaymentMode: domain.PaymentMode(b.Payment.PaymentMode),
		}
	}

	return booking
}

type bookingsResponse struct {
	Count    *int         `json:"count"`
	Total    *int         `json:"total"`
	Page     *int         `json:"page"`
	Limit    *int         `json:"limit"`
	Bookings []bookingDTO `json:"bookings"`
}

// Health состояние API
type Health struct {
	Database struct {
		Status string `json:"status"`
		Name   string `json:"name"`
		Host   string `json:"host"`
	} `json:"database"`
	Server struct {
		Uptime      float64 `json:"uptime"`
		Environment string  `json:"environment"`
		Timestamp   string  `json:"timestamp"`
	} `json:"server"`
}
