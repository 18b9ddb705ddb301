package middleware

import (
	"log/slog"
	"strings"

	"github.com/labstack/echo/v4"

	"user-api/app/domain"
	"user-api/app/port"
	apperrors "user-api/app/utils/errors"
)

// identityKey is the echo context key for the authenticated identity
const identityKey = "auth_identity"

// AuthMiddleware provides bearer-token authentication
type AuthMiddleware struct {
	tokens port.TokenService
	logger *slog.Logger
}

// NewAuthMiddleware creates a new auth middleware
func NewAuthMiddleware(tokens port.TokenService, logger *slog.Logger) *AuthMiddleware {
	return &AuthMiddleware{
		tokens: tokens,
		logger: logger,
	}
}

// RequireAuth rejects requests without a valid bearer token. On success the
// derived request identity is attached to the context for the handler.
func (m *AuthMiddleware) RequireAuth() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
			if !strings.HasPrefix(authHeader, "Bearer ") {
				return apperrors.ErrTokenRequired
			}

			claim, err := m.tokens.Verify(strings.TrimPrefix(authHeader, "Bearer "))
			if err != nil {
				m.logger.Debug("token verification failed", "error", err)
				return apperrors.ErrTokenInvalid
			}

			c.Set(identityKey, domain.IdentityFromClaim(claim))
			return next(c)
		}
	}
}

// CurrentIdentity returns the authenticated identity attached by
// RequireAuth, or nil on unauthenticated routes
func CurrentIdentity(c echo.Context) *domain.Identity {
	if identity, ok := c.Get(identityKey).(*domain.Identity); ok {
		return identity
	}
	return nil
}
