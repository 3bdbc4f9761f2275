package list_products

import (
	"net/http"

	"github.com/m04kA/SMC-AdminConsole/internal/api/handlers"
)

const msgProductsUnavailable = "could not load products"

type Handler struct {
	service CatalogService
	logger  Logger
}

func NewHandler(service CatalogService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/products (только администратор)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	products, err := h.service.AllProducts(r.Context())
	if err != nil {
		h.logger.Error("GET /products - Failed to list products: %v", err)
		handlers.RespondBadGateway(w, msgProductsUnavailable)
		return
	}

	h.logger.Info("GET /products - Products retrieved: count=%d", len(products))
	handlers.RespondJSON(w, http.StatusOK, FromDomain(products))
}
