package get_navigation

import (
	"github.com/m04kA/SMC-AdminConsole/internal/domain"
)

type NavItem struct {
	Label string `json:"label"`
	Href  string `json:"href"`
}

// NavigationResponse HTTP response model
type NavigationResponse struct {
	DisplayName string    `json:"name"`
	Role        string    `json:"role"`
	Items       []NavItem `json:"items"`
}

func FromDomain(s *domain.Session, items []domain.NavItem) *NavigationResponse {
	resp := &NavigationResponse{
		DisplayName: s.DisplayName,
		Role:        string(s.Role),
		Items:       make([]NavItem, 0, len(items)),
	}
	for _, it := range items {
		resp.Items = append(resp.Items, NavItem{Label: it.Label, Href: it.Href})
	}
	return resp
}
