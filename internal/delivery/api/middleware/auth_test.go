package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	deliverycontext "coderr/internal/delivery/context"
	"coderr/internal/domain/entity"
	domainerrors "coderr/internal/domain/errors"
	"coderr/internal/domain/policy"
	"coderr/internal/domain/service"
	"coderr/internal/errors"
	mockService "coderr/internal/mocks/service"
	mockUsecase "coderr/internal/mocks/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newAuthContext(authHeader string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/orders/", nil)
	if authHeader != "" {
		req.Header.Set(echo.HeaderAuthorization, authHeader)
	}
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func captureCaller(seen *entity.Caller) echo.HandlerFunc {
	return func(c echo.Context) error {
		*seen = deliverycontext.GetCaller(c)

		return c.NoContent(http.StatusOK)
	}
}

func TestAuthMiddleware_Identify_Anonymous(t *testing.T) {
	tokenSvc := mockService.NewMockTokenService(t)
	identity := mockUsecase.NewMockIdentityUsecase(t)
	m := NewAuthMiddleware(tokenSvc, identity, policy.NewAuthorizer())

	c, _ := newAuthContext("")
	var seen entity.Caller
	require.NoError(t, m.Identify(captureCaller(&seen))(c))

	assert.False(t, seen.IsAuthenticated())
}

func TestAuthMiddleware_Identify_ResolvesCaller(t *testing.T) {
	for _, header := range []string{"Bearer good-token", "Token good-token", "bearer good-token"} {
		t.Run(header, func(t *testing.T) {
			tokenSvc := mockService.NewMockTokenService(t)
			identity := mockUsecase.NewMockIdentityUsecase(t)
			m := NewAuthMiddleware(tokenSvc, identity, policy.NewAuthorizer())

			profile := &entity.Profile{ID: 11, UserID: 4, Role: entity.RoleBusiness}
			tokenSvc.EXPECT().ValidateToken("good-token").Return(&service.Claims{AccountID: 4, Type: "access"}, nil)
			identity.EXPECT().Resolve(mock.Anything, mock.MatchedBy(func(id *uint) bool {
				return id != nil && *id == 4
			})).Return(entity.NewCaller(profile), nil)

			c, _ := newAuthContext(header)
			var seen entity.Caller
			require.NoError(t, m.Identify(captureCaller(&seen))(c))

			assert.Equal(t, uint(11), seen.ProfileID())
			assert.Equal(t, entity.RoleBusiness, seen.Role())
			assert.Equal(t, uint(11), deliverycontext.GetCallerFromContext(c.Request().Context()).ProfileID())
		})
	}
}

func TestAuthMiddleware_Identify_Rejections(t *testing.T) {
	t.Run("unsupported scheme", func(t *testing.T) {
		m := NewAuthMiddleware(mockService.NewMockTokenService(t), mockUsecase.NewMockIdentityUsecase(t), policy.NewAuthorizer())

		c, _ := newAuthContext("Basic Zm9vOmJhcg==")
		err := m.Identify(func(echo.Context) error {
			t.Fatal("next must not run")

			return nil
		})(c)

		assert.ErrorIs(t, err, domainerrors.ErrInvalidToken)
	})

	t.Run("invalid token", func(t *testing.T) {
		tokenSvc := mockService.NewMockTokenService(t)
		m := NewAuthMiddleware(tokenSvc, mockUsecase.NewMockIdentityUsecase(t), policy.NewAuthorizer())
		tokenSvc.EXPECT().ValidateToken("expired").Return(nil, errors.New("token is expired"))

		c, _ := newAuthContext("Bearer expired")
		err := m.Identify(func(echo.Context) error { return nil })(c)

		assert.ErrorIs(t, err, domainerrors.ErrInvalidToken)
	})

	t.Run("identity store failure", func(t *testing.T) {
		tokenSvc := mockService.NewMockTokenService(t)
		identity := mockUsecase.NewMockIdentityUsecase(t)
		m := NewAuthMiddleware(tokenSvc, identity, policy.NewAuthorizer())
		tokenSvc.EXPECT().ValidateToken("t").Return(&service.Claims{AccountID: 2}, nil)
		identity.EXPECT().Resolve(mock.Anything, mock.Anything).Return(entity.Anonymous(), errors.New("connection refused"))

		c, _ := newAuthContext("Bearer t")
		err := m.Identify(func(echo.Context) error { return nil })(c)

		require.Error(t, err)
		assert.Equal(t, domainerrors.KindFatal, domainerrors.KindOf(err))
	})
}

func TestAuthMiddleware_Require(t *testing.T) {
	tests := []struct {
		name     string
		caller   entity.Caller
		resource policy.Resource
		action   policy.Action
		wantErr  error
	}{
		{
			name:     "anonymous order listing",
			caller:   entity.Anonymous(),
			resource: policy.ResourceOrder,
			action:   policy.ActionRead,
			wantErr:  domainerrors.ErrUnauthorized,
		},
		{
			name:     "customer creating an offer",
			caller:   entity.NewCaller(&entity.Profile{ID: 4, Role: entity.RoleCustomer}),
			resource: policy.ResourceOffer,
			action:   policy.ActionCreate,
			wantErr:  domainerrors.ErrNotBusinessUser,
		},
		{
			name:     "customer listing own orders",
			caller:   entity.NewCaller(&entity.Profile{ID: 4, Role: entity.RoleCustomer}),
			resource: policy.ResourceOrder,
			action:   policy.ActionRead,
		},
		{
			name:     "anonymous offer listing",
			caller:   entity.Anonymous(),
			resource: policy.ResourceOffer,
			action:   policy.ActionRead,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewAuthMiddleware(mockService.NewMockTokenService(t), mockUsecase.NewMockIdentityUsecase(t), policy.NewAuthorizer())
			c, _ := newAuthContext("")
			deliverycontext.SetCaller(c, tt.caller)

			called := false
			err := m.Require(tt.resource, tt.action)(func(echo.Context) error {
				called = true

				return nil
			})(c)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.False(t, called)

				return
			}
			require.NoError(t, err)
			assert.True(t, called)
		})
	}
}
