package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "user-api/app/utils/errors"
	validatorutil "user-api/app/utils/validator"
)

type loginBody struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func loginSchema() Schema {
	return Schema{
		Body: func() interface{} { return new(loginBody) },
	}
}

func invokeValidate(t *testing.T, schema Schema, method, path, body string, paramNames []string, paramValues []string) (echo.Context, bool, error) {
	t.Helper()
	e := echo.New()

	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames(paramNames...)
	c.SetParamValues(paramValues...)

	reached := false
	handler := Validate(validatorutil.New(), schema)(func(c echo.Context) error {
		reached = true
		return c.NoContent(http.StatusOK)
	})
	err := handler(c)
	return c, reached, err
}

func TestValidate_ValidBodyReachesHandler(t *testing.T) {
	c, reached, err := invokeValidate(t, loginSchema(), http.MethodPost, "/api/auth/login",
		`{"email":"test@example.com","password":"password123"}`, nil, nil)
	require.NoError(t, err)
	assert.True(t, reached)

	body := BoundBody[loginBody](c)
	require.NotNil(t, body)
	assert.Equal(t, "test@example.com", body.Email)
	assert.Equal(t, "password123", body.Password)
}

func TestValidate_AggregatesBodyErrors(t *testing.T) {
	_, reached, err := invokeValidate(t, loginSchema(), http.MethodPost, "/api/auth/login",
		`{"email":"not-an-email","password":""}`, nil, nil)
	require.Error(t, err)
	assert.False(t, reached)

	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.ErrCodeValidationFailed, appErr.Code)
	assert.Contains(t, appErr.Fields, "email")
	assert.Contains(t, appErr.Fields, "password")
}

func TestValidate_MalformedJSON(t *testing.T) {
	_, reached, err := invokeValidate(t, loginSchema(), http.MethodPost, "/api/auth/login",
		`{"email": `, nil, nil)
	require.Error(t, err)
	assert.False(t, reached)

	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, []string{"body must be valid JSON"}, appErr.Fields["body"])
}

func TestValidate_ParamRules(t *testing.T) {
	schema := Schema{Params: map[string]string{"id": "required"}}

	_, reached, err := invokeValidate(t, schema, http.MethodGet, "/api/users/", "", []string{"id"}, []string{""})
	require.Error(t, err)
	assert.False(t, reached)

	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, []string{"id is required"}, appErr.Fields["id"])

	_, reached, err = invokeValidate(t, schema, http.MethodGet, "/api/users/abc", "", []string{"id"}, []string{"abc"})
	require.NoError(t, err)
	assert.True(t, reached)
}

func TestValidate_BodyAndParamErrorsCombined(t *testing.T) {
	schema := Schema{
		Body:   func() interface{} { return new(loginBody) },
		Params: map[string]string{"id": "required"},
	}

	_, _, err := invokeValidate(t, schema, http.MethodPut, "/api/users/",
		`{"email":"bad","password":""}`, []string{"id"}, []string{""})
	require.Error(t, err)

	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Contains(t, appErr.Fields, "email")
	assert.Contains(t, appErr.Fields, "password")
	assert.Contains(t, appErr.Fields, "id")
}

func TestBoundBody_NoSchema(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	c := e.NewContext(req, httptest.NewRecorder())

	assert.Nil(t, BoundBody[loginBody](c))
}
