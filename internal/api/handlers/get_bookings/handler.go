package get_bookings

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-AdminConsole/internal/api/handlers"
	"github.com/m04kA/SMC-AdminConsole/internal/api/middleware"
	"github.com/m04kA/SMC-AdminConsole/internal/service/bookingsview"
)

const (
	msgNotAuthenticated = "not authenticated"
	msgInvalidParams    = "invalid query parameters"
)

type Handler struct {
	view   BookingsView
	logger Logger
}

func NewHandler(view BookingsView, logger Logger) *Handler {
	return &Handler{
		view:   view,
		logger: logger,
	}
}

// Handle GET /api/v1/bookings
// Query params: branchId (только администратор), startDate, endDate, page, limit
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	s, ok := middleware.GetSession(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgNotAuthenticated)
		return
	}

	q := r.URL.Query()
	filter, err := ToFilter(q.Get("branchId"), q.Get("startDate"), q.Get("endDate"), q.Get("page"), q.Get("limit"))
	if err != nil {
		h.logger.Warn("GET /bookings - Invalid parameters: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	snapshot, err := h.view.Refresh(r.Context(), s, filter)
	if err != nil {
		switch {
		case errors.Is(err, bookingsview.ErrStaleResponse):
			// Отображается более новый ответ
			resp := FromSnapshot(snapshot)
			resp.Stale = true
			handlers.RespondJSON(w, http.StatusOK, resp)

		case errors.Is(err, bookingsview.ErrInvalidTimeRange):
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, bookingsview.ErrBranchNotAssigned):
			h.logger.Warn("GET /bookings - Employee without branch: user_id=%s", s.UserID)
			handlers.RespondUnprocessable(w, err.Error())

		default:
			h.logger.Error("GET /bookings - Failed to refresh: user_id=%s, error=%v", s.UserID, err)
			handlers.RespondJSON(w, http.StatusBadGateway, FromSnapshot(snapshot))
		}
		return
	}

	h.logger.Info("GET /bookings - Bookings retrieved: user_id=%s, count=%d", s.UserID, len(snapshot.Bookings))
	handlers.RespondJSON(w, http.StatusOK, FromSnapshot(snapshot))
}
