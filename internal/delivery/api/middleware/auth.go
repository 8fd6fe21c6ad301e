package middleware

import (
	"strings"

	deliverycontext "coderr/internal/delivery/context"
	"coderr/internal/domain/entity"
	domainerrors "coderr/internal/domain/errors"
	"coderr/internal/domain/policy"
	"coderr/internal/domain/service"
	"coderr/internal/errors"
	"coderr/internal/usecase"

	"github.com/labstack/echo/v4"
)

// Accepted Authorization schemes. "Token" is kept for clients of the previous API.
var authSchemes = []string{"Bearer ", "Token "}

// AuthMiddleware resolves the caller of every request from its access token
// and gates routes on the permission table.
type AuthMiddleware struct {
	tokenSvc   service.TokenService
	identity   usecase.IdentityUsecase
	authorizer policy.Authorizer
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService, identity usecase.IdentityUsecase, authorizer policy.Authorizer) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc, identity: identity, authorizer: authorizer}
}

// Identify stores the resolved caller on the context. Requests without an
// Authorization header continue as anonymous; a malformed or invalid token is
// rejected even on public endpoints.
func (m *AuthMiddleware) Identify(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			deliverycontext.SetCaller(c, entity.Anonymous())

			return next(c)
		}

		tokenString, ok := bearerToken(authHeader)
		if !ok {
			return domainerrors.ErrInvalidToken.WithDetails("unsupported authorization scheme")
		}

		claims, err := m.tokenSvc.ValidateToken(tokenString)
		if err != nil {
			return domainerrors.ErrInvalidToken
		}

		accountID := claims.AccountID
		caller, err := m.identity.Resolve(c.Request().Context(), &accountID)
		if err != nil {
			return errors.Wrap(err, "failed to resolve caller")
		}

		deliverycontext.SetCaller(c, caller)

		return next(c)
	}
}

// Require is a middleware factory that runs the instance-free permission check
// for resource and action before the handler parses anything. Ownership checks
// still happen in the use cases once the target is loaded.
// It must be used AFTER the Identify middleware.
func (m *AuthMiddleware) Require(resource policy.Resource, action policy.Action) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if err := m.authorizer.Authorize(deliverycontext.GetCaller(c), resource, action, nil); err != nil {
				return err
			}

			return next(c)
		}
	}
}

func bearerToken(header string) (string, bool) {
	for _, scheme := range authSchemes {
		if len(header) > len(scheme) && strings.EqualFold(header[:len(scheme)], scheme) {
			return strings.TrimSpace(header[len(scheme):]), true
		}
	}

	return "", false
}
