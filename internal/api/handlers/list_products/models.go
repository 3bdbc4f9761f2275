package list_products

import (
	"github.com/m04kA/SMC-AdminConsole/internal/domain"
)

type ProductResponse struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	BasePrice float64 `json:"basePrice"`
	IsDefault bool    `json:"isDefault"`
	IsActive  bool    `json:"isActive"`
}

func FromDomain(products []domain.Product) []ProductResponse {
	out := make([]ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, ProductResponse{
			ID:        p.ID,
			Name:      p.Name,
			BasePrice: p.BasePrice,
			IsDefault: p.IsDefault,
			IsActive:  p.IsActive,
		})
	}
	return out
}
