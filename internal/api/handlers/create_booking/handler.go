package create_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-AdminConsole/internal/api/handlers"
	"github.com/m04kA/SMC-AdminConsole/internal/integrations/backendapi"
	createBooking "github.com/m04kA/SMC-AdminConsole/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgNotAuthenticated   = "not authenticated"
	msgCatalogUnavailable = "could not load products and branches"
	msgSubmitFailed       = "could not create booking, try again"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req DraftRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToDomainDraft())
	if err != nil {
		var apiErr *backendapi.APIError
		switch {
		case createBooking.IsValidationError(err):
			// Локальная ошибка формы, запрос в API не отправлялся
			h.logger.Warn("POST /bookings - Validation failed: rule=%s", createBooking.RuleOf(err))
			handlers.RespondUnprocessable(w, err.Error())

		case errors.Is(err, createBooking.ErrNotAuthenticated):
			handlers.RespondUnauthorized(w, msgNotAuthenticated)

		case errors.Is(err, createBooking.ErrCatalogUnavailable):
			h.logger.Error("POST /bookings - Catalog unavailable: %v", err)
			handlers.RespondBadGateway(w, msgCatalogUnavailable)

		case errors.As(err, &apiErr):
			// Отказ сервера показывается его собственным сообщением
			h.logger.Warn("POST /bookings - Rejected by API: status=%d, message=%s", apiErr.Status, apiErr.Message)
			status := http.StatusBadGateway
			if apiErr.Status >= 400 && apiErr.Status < 500 {
				status = apiErr.Status
			}
			handlers.RespondError(w, status, apiErr.Message)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: %v", err)
			handlers.RespondBadGateway(w, msgSubmitFailed)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%s, number=%s",
		result.Booking.ID, result.Booking.BookingNumber)
	handlers.RespondJSON(w, http.StatusCreated, FromDomainBooking(result.Booking))
}
