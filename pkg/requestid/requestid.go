package requestid

import (
	"context"

	"github.com/google/uuid"
)

// Header заголовок, в котором идентификатор запроса передаётся между сервисами
const Header = "X-Request-ID"

type contextKey struct{}

// WithID кладёт идентификатор запроса в контекст
func WithID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, contextKey{}, id)
}

// FromContext возвращает идентификатор запроса из контекста или пустую строку
func FromContext(ctx context.Context) string {
	id, _ := ctx.Value(contextKey{}).(string)
	return id
}

// Ensure возвращает идентификатор из контекста, а если его нет - новый
func Ensure(ctx context.Context) string {
	if id := FromContext(ctx); id != "" {
		return id
	}
	return uuid.NewString()
}
