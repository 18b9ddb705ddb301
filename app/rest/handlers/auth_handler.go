package handlers

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"user-api/app/port"
	"user-api/app/rest/middleware"
)

// AuthHandler handles authentication HTTP requests
type AuthHandler struct {
	authUsecase port.AuthUsecase
	logger      *slog.Logger
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authUsecase port.AuthUsecase, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		authUsecase: authUsecase,
		logger:      logger,
	}
}

// LoginRequest is the login request body
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// RegisterRequest is the registration request body
type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Name     string `json:"name" validate:"required,min=2"`
}

// LoginSchema declares validation for the login route
func LoginSchema() middleware.Schema {
	return middleware.Schema{
		Body: func() interface{} { return &LoginRequest{} },
	}
}

// RegisterSchema declares validation for the register route
func RegisterSchema() middleware.Schema {
	return middleware.Schema{
		Body: func() interface{} { return &RegisterRequest{} },
	}
}

// Login authenticates a user and returns the public identity plus a token
func (h *AuthHandler) Login(c echo.Context) error {
	req := middleware.BoundBody[LoginRequest](c)

	result, err := h.authUsecase.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return err
	}

	return SendSuccess(c, http.StatusOK, MsgLoginSuccess, result)
}

// Register creates a new user and signs them in
func (h *AuthHandler) Register(c echo.Context) error {
	req := middleware.BoundBody[RegisterRequest](c)

	result, err := h.authUsecase.Register(c.Request().Context(), req.Email, req.Password, req.Name)
	if err != nil {
		return err
	}

	return SendSuccess(c, http.StatusCreated, MsgRegisterSuccess, result)
}

// Logout acknowledges a logout. Tokens are stateless, so there is no
// server-side state to invalidate; clients discard the token.
func (h *AuthHandler) Logout(c echo.Context) error {
	if identity := middleware.CurrentIdentity(c); identity != nil {
		h.logger.Info("user logged out", "user_id", identity.ID)
	}
	return SendSuccess(c, http.StatusOK, MsgLogoutSuccess, nil)
}
