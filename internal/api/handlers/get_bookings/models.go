package get_bookings

import (
	"fmt"
	"strconv"
	"time"

	createBookingHandler "github.com/m04kA/SMC-AdminConsole/internal/api/handlers/create_booking"
	"github.com/m04kA/SMC-AdminConsole/internal/domain"
	"github.com/m04kA/SMC-AdminConsole/internal/service/bookingsview"
)

// ToFilter формирует фильтр из query параметров
func ToFilter(branchIDStr, startDateStr, endDateStr, pageStr, limitStr string) (domain.BookingsFilter, error) {
	var filter domain.BookingsFilter

	if branchIDStr != "" {
		filter.BranchID = &branchIDStr
	}

	if startDateStr != "" {
		start, err := time.Parse(domain.DateFormat, startDateStr)
		if err != nil {
			return filter, fmt.Errorf("invalid startDate: %w", err)
		}
		filter.StartDate = &start
	}

	if endDateStr != "" {
		end, err := time.Parse(domain.DateFormat, endDateStr)
		if err != nil {
			return filter, fmt.Errorf("invalid endDate: %w", err)
		}
		filter.EndDate = &end
	}

	if pageStr != "" {
		page, err := strconv.Atoi(pageStr)
		if err != nil {
			return filter, fmt.Errorf("invalid page: %w", err)
		}
		filter.Page = page
	}

	if limitStr != "" {
		limit, err := strconv.Atoi(limitStr)
		if err != nil {
			return filter, fmt.Errorf("invalid limit: %w", err)
		}
		filter.Limit = limit
	}

	return filter, nil
}

type FilterResponse struct {
	BranchID  *string `json:"branchId,omitempty"`
	StartDate *string `json:"startDate,omitempty"`
	EndDate   *string `json:"endDate,omitempty"`
}

// BookingsResponse HTTP response model
type BookingsResponse struct {
	Bookings  []*createBookingHandler.BookingResponse `json:"bookings"`
	Total     int                                     `json:"total"`
	Page      int                                     `json:"page"`
	Limit     int                                     `json:"limit"`
	Filter    FilterResponse                          `json:"filter"`
	Loading   bool                                    `json:"loading"`
	Stale     bool                                    `json:"stale,omitempty"`
	Error     string                                  `json:"error,omitempty"`
	UpdatedAt *string                                 `json:"updatedAt,omitempty"`
}

func FromSnapshot(s bookingsview.Snapshot) *BookingsResponse {
	resp := &BookingsResponse{
		Bookings: make([]*createBookingHandler.BookingResponse, 0, len(s.Bookings)),
		Total:    s.Total,
		Page:     s.Page,
		Limit:    s.Limit,
		Filter:   FilterResponse{BranchID: s.Filter.BranchID},
		Loading:  s.Loading,
		Error:    s.Error,
	}
	for _, b := range s.Bookings {
		resp.Bookings = append(resp.Bookings, createBookingHandler.FromDomainBooking(b))
	}
	if s.Filter.StartDate != nil {
		v := s.Filter.StartDate.Format(domain.DateFormat)
		resp.Filter.StartDate = &v
	}
	if s.Filter.EndDate != nil {
		v := s.Filter.EndDate.Format(domain.DateFormat)
		resp.Filter.EndDate = &v
	}
	if s.UpdatedAt != nil {
		v := s.UpdatedAt.Format(time.RFC3339)
		resp.UpdatedAt = &v
	}
	return resp
}
