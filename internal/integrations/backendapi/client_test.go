package backendapi

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AdminConsole/internal/domain"
	"github.com/m04kA/SMC-AdminConsole/internal/infra/storage/state"
	"github.com/m04kA/SMC-AdminConsole/pkg/logger"
	"github.com/m04kA/SMC-AdminConsole/pkg/ptr"
	"github.com/m04kA/SMC-AdminConsole/pkg/requestid"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *state.MemoryStore) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	store := state.NewMemoryStore()
	return NewClient(srv.URL, 2*time.Second, store, logger.NewNop()), store
}

func TestLogin_PersistsTokenAndNormalizesProfile(t *testing.T) {
	client, store := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/auth/login", r.URL.Path)
		assert.Empty(t, r.Header.Get("Authorization"))
		assert.NotEmpty(t, r.Header.Get("X-Request-ID"))

		body, _ := io.ReadAll(r.Body)
		assert.JSONEq(t, `{"email":"a@b.c","password":"secret"}`, string(body))

		_, _ = w.Write([]byte(`{"message":"ok","data":{"token":"tok-1","user":{"_id":"u1","fullName":"Ann","email":"a@b.c","role":"admin"}}}`))
	})

	profile, err := client.Login(context.Background(), "a@b.c", "secret")
	require.NoError(t, err)
	assert.Equal(t, "u1", profile.ID)
	assert.Equal(t, "Ann", profile.Name)
	assert.Equal(t, domain.RoleAdmin, profile.Role)

	stored, err := store.Get(context.Background(), domain.StateKeyAuthToken)
	require.NoError(t, err)
	assert.Equal(t, "tok-1", stored)
}

func TestRequest_AttachesBearerAndAppliesRollingRenewal(t *testing.T) {
	calls := 0
	client, store := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		switch calls {
		case 1:
			assert.Equal(t, "Bearer old", r.Header.Get("Authorization"))
			w.Header().Set("X-New-Token", "new")
		default:
			assert.Equal(t, "Bearer new", r.Header.Get("Authorization"))
		}
		_, _ = w.Write([]byte(`{"message":"ok","data":{"products":[{"_id":"p1","name":"Custom","basePrice":0,"isDefault":true,"isActive":true}]}}`))
	})
	require.NoError(t, store.Set(context.Background(), domain.StateKeyAuthToken, "old"))

	products, err := client.ListProducts(context.Background())
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.True(t, products[0].IsDefault)

	stored, _ := store.Get(context.Background(), domain.StateKeyAuthToken)
	assert.Equal(t, "new", stored)

	_, err = client.ListProducts(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, calls)
}

func TestRequest_ErrorUsesServerMessage(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"message":"Product is inactive","data":null}`))
	})

	_, err := client.ListBranches(context.Background())
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.Status)
	assert.Equal(t, "Product is inactive", err.Error())
}

func TestRequest_ErrorWithoutMessageFallsBackToStatus(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte(`<html>bad gateway</html>`))
	})

	_, err := client.ListBranches(context.Background())
	require.Error(t, err)
	assert.Equal(t, "HTTP 502", err.Error())
}

func TestRequest_UnauthorizedDropsCredential(t *testing.T) {
	client, store := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"message":"Token expired","data":null}`))
	})
	require.NoError(t, store.Set(context.Background(), domain.StateKeyAuthToken, "stale"))

	invalidated := false
	client.OnUnauthorized(func() { invalidated = true })

	_, err := client.CurrentUser(context.Background())
	require.Error(t, err)
	assert.True(t, IsUnauthorized(err))
	assert.True(t, invalidated)

	_, err = store.Get(context.Background(), domain.StateKeyAuthToken)
	assert.ErrorIs(t, err, state.ErrNotFound)

	_, ok := client.Token(context.Background())
	assert.False(t, ok)
}

func TestRequest_UnauthorizedWithoutTokenDoesNotFireHook(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"message":"Invalid credentials","data":null}`))
	})

	invalidated := false
	client.OnUnauthorized(func() { invalidated = true })

	_, err := client.Login(context.Background(), "a@b.c", "wrong")
	require.Error(t, err)
	assert.Equal(t, "Invalid credentials", err.Error())
	assert.False(t, invalidated)
}

func TestRequest_TransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	client := NewClient(srv.URL, time.Second, state.NewMemoryStore(), logger.NewNop())
	_, err := client.ListProducts(context.Background())
	assert.ErrorIs(t, err, ErrTransport)
}

func TestCreateBooking_SendsPayloadAndDecodesBooking(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		assert.JSONEq(t, `{
			"phone":"9876543210","fullName":"Jane","artistName":"Max","branchId":"b1",
			"birthday":"1990-01-02",
			"items":[{"productId":"p1","quantity":1,"unitPrice":500},{"productId":"p2","quantity":4}],
			"payment":{"cashAmount":1300,"upiAmount":0}
		}`, string(body))

		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"message":"created","data":{
			"_id":"bk1","bookingNumber":"BK-0001","phone":"9876543210","fullName":"Jane","artistName":"Max",
			"branchId":{"_id":"b1","name":"Central","branchNumber":"01"},
			"items":[
				{"productId":{"_id":"p1","name":"Custom"},"quantity":1,"unitPrice":500,"lineTotal":500},
				{"productId":"p2","productName":"Small","quantity":4,"unitPrice":200,"lineTotal":800}
			],
			"payment":{"cashAmount":1300,"upiAmount":0,"totalAmount":1300,"paymentMode":"CASH"},
			"createdAt":"2026-10-17T10:00:00.000Z"
		}}`))
	})

	booking, err := client.CreateBooking(context.Background(), domain.BookingPayload{
		Phone:      "9876543210",
		FullName:   "Jane",
		ArtistName: "Max",
		BranchID:   "b1",
		Birthday:   "1990-01-02",
		Items: []domain.BookingItemPayload{
			{ProductID: "p1", Quantity: 1, UnitPrice: ptr.Ptr(500.0)},
			{ProductID: "p2", Quantity: 4},
		},
		CashAmount: 1300,
	})
	require.NoError(t, err)

	assert.Equal(t, "BK-0001", booking.BookingNumber)
	assert.Equal(t, "b1", booking.BranchID)
	assert.Equal(t, "Central", booking.BranchName)
	require.Len(t, booking.Items, 2)
	assert.Equal(t, "Custom", booking.Items[0].ProductName)
	assert.Equal(t, "p2", booking.Items[1].ProductID)
	assert.InDelta(t, 1300.0, booking.ItemsTotal(), 1e-9)
	require.NotNil(t, booking.Payment)
	assert.Equal(t, domain.PaymentModeCash, booking.Payment.PaymentMode)
	require.NotNil(t, booking.CreatedAt)
}

func TestListBookings_QueryAndDefaults(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "b1", r.URL.Query().Get("branchId"))
		assert.Equal(t, "2026-10-01", r.URL.Query().Get("startDate"))
		assert.Equal(t, "2", r.URL.Query().Get("page"))
		assert.Empty(t, r.URL.Query().Get("endDate"))
		_, _ = w.Write([]byte(`{"message":"ok","data":null}`))
	})

	start := time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC)
	page, err := client.ListBookings(context.Background(), domain.BookingsFilter{
		BranchID:  ptr.Ptr("b1"),
		StartDate: &start,
		Page:      2,
	})
	require.NoError(t, err)
	assert.Empty(t, page.Bookings)
	assert.Equal(t, 1, page.Page)
	assert.Equal(t, 10, page.Limit)
}

func TestTokenExpiry(t *testing.T) {
	exp := time.Now().Add(time.Hour).Truncate(time.Second)
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"exp": exp.Unix()}).
		SignedString([]byte("any-secret"))
	require.NoError(t, err)

	got, ok := TokenExpiry(token)
	require.True(t, ok)
	assert.True(t, got.Equal(exp))

	_, ok = TokenExpiry("opaque-token")
	assert.False(t, ok)
}

func TestRequest_ForwardsInboundRequestID(t *testing.T) {
	var seen []string
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		seen = append(seen, r.Header.Get("X-Request-ID"))
		_, _ = w.Write([]byte(`{"message":"ok","data":{"products":[],"count":0}}`))
	})

	ctx := requestid.WithID(context.Background(), "req-42")
	_, err := client.ListProducts(ctx)
	require.NoError(t, err)

	_, err = client.ListProducts(context.Background())
	require.NoError(t, err)

	require.Len(t, seen, 2)
	assert.Equal(t, "req-42", seen[0])
	assert.NotEmpty(t, seen[1])
	assert.NotEqual(t, "req-42", seen[1])
}
