package login

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AdminConsole/internal/infra/storage/state"
	"github.com/m04kA/SMC-AdminConsole/internal/integrations/backendapi"
	"github.com/m04kA/SMC-AdminConsole/internal/service/session"
	"github.com/m04kA/SMC-AdminConsole/pkg/logger"
)

func newGate(t *testing.T, backend http.HandlerFunc) *session.Gate {
	t.Helper()

	srv := httptest.NewServer(backend)
	t.Cleanup(srv.Close)

	client := backendapi.NewClient(srv.URL, time.Second, state.NewMemoryStore(), logger.NewNop())
	gate := session.NewGate(client, session.DenyToLogin, logger.NewNop())
	client.OnUnauthorized(gate.Invalidate)
	gate.Restore(context.Background())
	return gate
}

func postLogin(h *Handler, body string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", strings.NewReader(body))
	h.Handle(rec, req)
	return rec
}

// Отказ сервера: сессия остаётся анонимной, сообщение сервера передаётся без изменений
func TestHandle_RejectedPasswordKeepsServerMessage(t *testing.T) {
	gate := newGate(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"message":"Invalid email or password","data":null}`))
	})
	h := NewHandler(gate, logger.NewNop())

	rec := postLogin(h, `{"email":"admin@studio.in","password":"wrong"}`)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"message":"Invalid email or password"}`, rec.Body.String())
	assert.Equal(t, session.StateAnonymous, gate.State())
	assert.Equal(t, "Invalid email or password", gate.LastError())
}

func TestHandle_Success(t *testing.T) {
	gate := newGate(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/auth/login":
			_, _ = w.Write([]byte(`{"message":"ok","data":{"token":"tkn","user":{"_id":"a1","name":"Admin","email":"admin@studio.in","role":"admin"}}}`))
		case "/api/auth/me":
			assert.Equal(t, "Bearer tkn", r.Header.Get("Authorization"))
			_, _ = w.Write([]byte(`{"message":"ok","data":{"_id":"a1","name":"Admin","email":"admin@studio.in","role":"admin"}}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	})
	h := NewHandler(gate, logger.NewNop())

	rec := postLogin(h, `{"email":" admin@studio.in ","password":"secret"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"userId":"a1","email":"admin@studio.in","name":"Admin","role":"admin","redirectTo":"/dashboard"}`, rec.Body.String())
	assert.Equal(t, session.StateAuthenticated, gate.State())
}

func TestHandle_BadInput(t *testing.T) {
	calls := 0
	gate := newGate(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusInternalServerError)
	})
	h := NewHandler(gate, logger.NewNop())

	tests := []struct {
		name string
		body string
	}{
		{name: "malformed json", body: `{"email":`},
		{name: "missing password", body: `{"email":"admin@studio.in"}`},
		{name: "not an email", body: `{"email":"admin","password":"x"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := postLogin(h, tt.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
	assert.Equal(t, 0, calls)
}

func TestHandle_BackendStatusMapping(t *testing.T) {
	tests := []struct {
		name       string
		status     int
		message    string
		wantStatus int
	}{
		{name: "client error passed through", status: http.StatusTooManyRequests, message: "Too many attempts", wantStatus: http.StatusTooManyRequests},
		{name: "server error is a gateway failure", status: http.StatusInternalServerError, message: "Database unavailable", wantStatus: http.StatusBadGateway},
		{name: "unavailable is a gateway failure", status: http.StatusServiceUnavailable, message: "Maintenance", wantStatus: http.StatusBadGateway},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gate := newGate(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(`{"message":"` + tt.message + `","data":null}`))
			})
			h := NewHandler(gate, logger.NewNop())

			rec := postLogin(h, `{"email":"admin@studio.in","password":"secret"}`)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.JSONEq(t, `{"message":"`+tt.message+`"}`, rec.Body.String())
			assert.Equal(t, session.StateAnonymous, gate.State())
		})
	}
}
