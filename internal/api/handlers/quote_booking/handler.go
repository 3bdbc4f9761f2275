package quote_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-AdminConsole/internal/api/handlers"
	createBookingHandler "github.com/m04kA/SMC-AdminConsole/internal/api/handlers/create_booking"
	createBooking "github.com/m04kA/SMC-AdminConsole/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgNotAuthenticated   = "not authenticated"
	msgCatalogUnavailable = "could not load products and branches"
)

type Handler struct {
	useCase QuoteUseCase
	logger  Logger
}

func NewHandler(useCase QuoteUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings/quote
// Пересчёт черновика без отправки: суммы, сверка оплаты и первое нарушенное правило
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req createBookingHandler.DraftRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings/quote - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	quote, err := h.useCase.Quote(r.Context(), req.ToDomainDraft())
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrNotAuthenticated):
			handlers.RespondUnauthorized(w, msgNotAuthenticated)
		default:
			h.logger.Error("POST /bookings/quote - Failed to quote: %v", err)
			handlers.RespondBadGateway(w, msgCatalogUnavailable)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseQuote(quote))
}
