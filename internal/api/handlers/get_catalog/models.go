package get_catalog

import (
	"github.com/m04kA/SMC-AdminConsole/internal/domain"
)

type ProductResponse struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	BasePrice float64 `json:"basePrice"`
	IsDefault bool    `json:"isDefault"`
}

type BranchResponse struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Address      string `json:"address,omitempty"`
	BranchNumber string `json:"branchNumber,omitempty"`
}

// CatalogResponse справочники для формы бронирования
type CatalogResponse struct {
	Products         []ProductResponse `json:"products"`
	Branches         []BranchResponse  `json:"branches"`
	DefaultProductID *string           `json:"defaultProductId,omitempty"`
	AssignedBranchID *string           `json:"assignedBranchId,omitempty"`
}

func FromDomain(c *domain.Catalog, s *domain.Session) *CatalogResponse {
	resp := &CatalogResponse{
		Products: make([]ProductResponse, 0, len(c.Products)),
		Branches: make([]BranchResponse, 0, len(c.Branches)),
	}
	for _, p := range c.Products {
		resp.Products = append(resp.Products, ProductResponse{
			ID:        p.ID,
			Name:      p.Name,
			BasePrice: p.BasePrice,
			IsDefault: p.IsDefault,
		})
	}
	for _, b := range c.Branches {
		resp.Branches = append(resp.Branches, BranchResponse{
			ID:           b.ID,
			Name:         b.Name,
			Address:      b.Address,
			BranchNumber: b.BranchNumber,
		})
	}
	if p, ok := c.DefaultProduct(); ok {
		id := p.ID
		resp.DefaultProductID = &id
	}
	if branchID, ok := s.AssignedBranch(); ok {
		resp.AssignedBranchID = &branchID
	}
	return resp
}
