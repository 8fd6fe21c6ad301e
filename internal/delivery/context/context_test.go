package context

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"coderr/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestCaller_RoundTrip(t *testing.T) {
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

	assert.False(t, GetCaller(c).IsAuthenticated())

	caller := entity.NewCaller(&entity.Profile{ID: 3, Role: entity.RoleBusiness})
	SetCaller(c, caller)

	assert.Equal(t, caller, GetCaller(c))
	assert.Equal(t, caller, GetCallerFromContext(c.Request().Context()))
}

func TestGetCallerFromContext_Anonymous(t *testing.T) {
	assert.Equal(t, entity.Anonymous(), GetCallerFromContext(context.Background()))
}

func TestRequestIDAndLogger(t *testing.T) {
	ctx := context.Background()
	assert.Empty(t, GetRequestIDFromContext(ctx))
	assert.Nil(t, GetLogger(ctx))

	fallback := slog.Default()
	assert.Same(t, fallback, GetLoggerOrDefault(ctx, fallback))

	scoped := slog.New(slog.DiscardHandler)
	ctx = WithLogger(WithRequestID(ctx, "req-9"), scoped)

	assert.Equal(t, "req-9", GetRequestIDFromContext(ctx))
	assert.Same(t, scoped, GetLoggerOrDefault(ctx, fallback))
}
