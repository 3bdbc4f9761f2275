package get_bookings

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AdminConsole/internal/domain"
	"github.com/m04kA/SMC-AdminConsole/internal/service/bookingsview"
	"github.com/m04kA/SMC-AdminConsole/pkg/ptr"
)

func TestToFilter(t *testing.T) {
	filter, err := ToFilter("b1", "2026-05-01", "2026-05-31", "2", "50")
	require.NoError(t, err)

	assert.Equal(t, "b1", ptr.Deref(filter.BranchID))
	assert.Equal(t, time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC), *filter.StartDate)
	assert.Equal(t, time.Date(2026, 5, 31, 0, 0, 0, 0, time.UTC), *filter.EndDate)
	assert.Equal(t, 2, filter.Page)
	assert.Equal(t, 50, filter.Limit)

	empty, err := ToFilter("", "", "", "", "")
	require.NoError(t, err)
	assert.Equal(t, domain.BookingsFilter{}, empty)

	_, err = ToFilter("", "01/05/2026", "", "", "")
	assert.Error(t, err)

	_, err = ToFilter("", "", "", "two", "")
	assert.Error(t, err)
}

func TestFromSnapshot(t *testing.T) {
	start := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)
	resp := FromSnapshot(bookingsview.Snapshot{
		Bookings: []domain.Booking{{
			ID:    "bk1",
			Items: []domain.BookingItem{{ProductID: "p1", Quantity: 2, UnitPrice: 200, LineTotal: 400}},
		}},
		Total:   7,
		Page:    1,
		Limit:   20,
		Filter:  domain.BookingsFilter{BranchID: ptr.Ptr("b1"), StartDate: &start},
		Loading: true,
	})

	require.Len(t, resp.Bookings, 1)
	assert.Equal(t, 400.0, resp.Bookings[0].ItemsTotal)
	assert.Equal(t, 7, resp.Total)
	assert.True(t, resp.Loading)
	assert.Equal(t, "2026-05-01", ptr.Deref(resp.Filter.StartDate))
	assert.Nil(t, resp.Filter.EndDate)
	assert.Nil(t, resp.UpdatedAt)
}
