package context

import (
	"context"

	"coderr/internal/domain/entity"

	"github.com/labstack/echo/v4"
)

// KeyCaller is the key for storing the resolved caller.
const KeyCaller ContextKey = "caller"

// SetCaller stores the caller in both echo.Context and the request context.
func SetCaller(c echo.Context, caller entity.Caller) {
	c.Set(string(KeyCaller), caller)

	req := c.Request()
	c.SetRequest(req.WithContext(WithCaller(req.Context(), caller)))
}

// GetCaller returns the caller resolved by the auth middleware, or anonymous.
func GetCaller(c echo.Context) entity.Caller {
	if caller, ok := c.Get(string(KeyCaller)).(entity.Caller); ok {
		return caller
	}

	return GetCallerFromContext(c.Request().Context())
}

// WithCaller returns a new context carrying the caller.
func WithCaller(ctx context.Context, caller entity.Caller) context.Context {
	return context.WithValue(ctx, KeyCaller, caller)
}

// GetCallerFromContext returns anonymous when no caller was stored.
func GetCallerFromContext(ctx context.Context) entity.Caller {
	if caller, ok := ctx.Value(KeyCaller).(entity.Caller); ok {
		return caller
	}

	return entity.Anonymous()
}
