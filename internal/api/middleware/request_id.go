package middleware

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-AdminConsole/pkg/requestid"
)

const headerRequestID = requestid.Header

// RequestID проставляет X-Request-ID, если клиент его не передал, и кладёт его в контекст
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(headerRequestID)
		if id == "" {
			id = uuid.NewString()
			r.Header.Set(headerRequestID, id)
		}
		w.Header().Set(headerRequestID, id)
		next.ServeHTTP(w, r.WithContext(requestid.WithID(r.Context(), id)))
	})
}
