package quote_booking

import (
	"math"

	createBooking "github.com/m04kA/SMC-AdminConsole/internal/usecase/create_booking"
)

type QuoteLineResponse struct {
	ProductID   string   `json:"productId"`
	ProductName string   `json:"productName,omitempty"`
	IsDefault   bool     `json:"isDefault"`
	Quantity    float64  `json:"quantity"`
	UnitPrice   *float64 `json:"unitPrice"`
	LineTotal   float64  `json:"lineTotal"`
}

// QuoteResponse живой расчёт формы
type QuoteResponse struct {
	Lines        []QuoteLineResponse `json:"lines"`
	ItemsTotal   float64             `json:"itemsTotal"`
	PaymentTotal float64             `json:"paymentTotal"`
	Difference   float64             `json:"difference"`
	Reconciled   bool                `json:"reconciled"`
	CanSubmit    bool                `json:"canSubmit"`
	Problem      string              `json:"problem,omitempty"`
	BranchID     string              `json:"branchId,omitempty"`
}

func FromUseCaseQuote(q *createBooking.Quote) *QuoteResponse {
	resp := &QuoteResponse{
		Lines:        make([]QuoteLineResponse, 0, len(q.Lines)),
		ItemsTotal:   q.ItemsTotal,
		PaymentTotal: q.PaymentTotal,
		Difference:   q.Difference,
		Reconciled:   q.Reconciled,
		CanSubmit:    q.CanSubmit,
		Problem:      q.Problem,
		BranchID:     q.BranchID,
	}
	for _, l := range q.Lines {
		resp.Lines = append(resp.Lines, QuoteLineResponse{
			ProductID:   l.ProductID,
			ProductName: l.ProductName,
			IsDefault:   l.IsDefault,
			Quantity:    finiteOrZero(l.Quantity),
			UnitPrice:   l.UnitPrice,
			LineTotal:   l.LineTotal,
		})
	}
	return resp
}

// JSON не умеет NaN: незаполненное количество отдаётся нулём
func finiteOrZero(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}
