package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"user-api/app/token"
	apperrors "user-api/app/utils/errors"
)

func newTestAuthMiddleware() (*AuthMiddleware, *token.JWTService) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	tokens := token.NewJWTService(token.JWTConfig{
		Secret: "auth-middleware-test-secret",
		TTL:    time.Hour,
	})
	return NewAuthMiddleware(tokens, logger), tokens
}

func invokeAuth(t *testing.T, m *AuthMiddleware, authHeader string) (echo.Context, error) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/users", nil)
	if authHeader != "" {
		req.Header.Set(echo.HeaderAuthorization, authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := m.RequireAuth()(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	return c, handler(c)
}

func TestRequireAuth_MissingHeader(t *testing.T) {
	m, _ := newTestAuthMiddleware()

	_, err := invokeAuth(t, m, "")
	require.Error(t, err)
	assert.True(t, apperrors.HasCode(err, apperrors.ErrCodeTokenRequired))
}

func TestRequireAuth_NonBearerScheme(t *testing.T) {
	m, _ := newTestAuthMiddleware()

	_, err := invokeAuth(t, m, "Basic dXNlcjpwYXNz")
	require.Error(t, err)
	assert.True(t, apperrors.HasCode(err, apperrors.ErrCodeTokenRequired))
}

func TestRequireAuth_InvalidToken(t *testing.T) {
	m, _ := newTestAuthMiddleware()

	_, err := invokeAuth(t, m, "Bearer not-a-real-token")
	require.Error(t, err)
	assert.True(t, apperrors.HasCode(err, apperrors.ErrCodeTokenInvalid))
}

func TestRequireAuth_WrongSecret(t *testing.T) {
	m, _ := newTestAuthMiddleware()
	other := token.NewJWTService(token.JWTConfig{Secret: "a-different-secret", TTL: time.Hour})

	tokenStr, err := other.Issue("user-123", "test@example.com")
	require.NoError(t, err)

	_, err = invokeAuth(t, m, "Bearer "+tokenStr)
	require.Error(t, err)
	assert.True(t, apperrors.HasCode(err, apperrors.ErrCodeTokenInvalid))
}

func TestRequireAuth_ValidTokenAttachesIdentity(t *testing.T) {
	m, tokens := newTestAuthMiddleware()

	tokenStr, err := tokens.Issue("user-123", "test@example.com")
	require.NoError(t, err)

	c, err := invokeAuth(t, m, "Bearer "+tokenStr)
	require.NoError(t, err)

	identity := CurrentIdentity(c)
	require.NotNil(t, identity)
	assert.Equal(t, "user-123", identity.ID)
	assert.Equal(t, "test@example.com", identity.Email)
	assert.Equal(t, "test", identity.Name) // local part of the email
}

func TestCurrentIdentity_Unauthenticated(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	c := e.NewContext(req, httptest.NewRecorder())

	assert.Nil(t, CurrentIdentity(c))
}
