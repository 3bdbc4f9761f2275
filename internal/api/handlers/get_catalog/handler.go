package get_catalog

import (
	"net/http"

	"github.com/m04kA/SMC-AdminConsole/internal/api/handlers"
	"github.com/m04kA/SMC-AdminConsole/internal/api/middleware"
)

const (
	msgNotAuthenticated   = "not authenticated"
	msgCatalogUnavailable = "could not load products and branches"
)

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

// Handle GET /api/v1/catalog
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	s, ok := middleware.GetSession(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgNotAuthenticated)
		return
	}

	catalog, err := h.service.Load(r.Context(), s)
	if err != nil {
		h.logger.Error("GET /catalog - Failed to load catalog: user_id=%s, error=%v", s.UserID, err)
		handlers.RespondBadGateway(w, msgCatalogUnavailable)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromDomain(catalog, s))
}
