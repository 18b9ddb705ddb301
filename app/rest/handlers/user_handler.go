package handlers

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"user-api/app/domain"
	"user-api/app/port"
	"user-api/app/rest/middleware"
)

// UserHandler handles user management HTTP requests
type UserHandler struct {
	userUsecase port.UserUsecase
	logger      *slog.Logger
}

// NewUserHandler creates a new user handler
func NewUserHandler(userUsecase port.UserUsecase, logger *slog.Logger) *UserHandler {
	return &UserHandler{
		userUsecase: userUsecase,
		logger:      logger,
	}
}

// CreateUserRequest is the create-user request body
type CreateUserRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Name     string `json:"name" validate:"required,min=2"`
}

// UpdateUserRequest is the update-user request body; all fields optional
type UpdateUserRequest struct {
	Name  *string `json:"name" validate:"omitempty,min=2"`
	Email *string `json:"email" validate:"omitempty,email"`
}

// CreateUserSchema declares validation for the create route
func CreateUserSchema() middleware.Schema {
	return middleware.Schema{
		Body: func() interface{} { return &CreateUserRequest{} },
	}
}

// UpdateUserSchema declares validation for the update route
func UpdateUserSchema() middleware.Schema {
	return middleware.Schema{
		Body:   func() interface{} { return &UpdateUserRequest{} },
		Params: map[string]string{"id": "required"},
	}
}

// UserIDSchema declares validation for routes keyed by user id
func UserIDSchema() middleware.Schema {
	return middleware.Schema{
		Params: map[string]string{"id": "required"},
	}
}

// ListUsers returns all users
func (h *UserHandler) ListUsers(c echo.Context) error {
	users, err := h.userUsecase.ListUsers(c.Request().Context())
	if err != nil {
		return err
	}
	return SendSuccess(c, http.StatusOK, MsgUsersFetched, users)
}

// GetUserByID returns a single user
func (h *UserHandler) GetUserByID(c echo.Context) error {
	user, err := h.userUsecase.GetUserByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return SendSuccess(c, http.StatusOK, MsgUserFetched, user)
}

// CreateUser creates a new user
func (h *UserHandler) CreateUser(c echo.Context) error {
	req := middleware.BoundBody[CreateUserRequest](c)

	user, err := h.userUsecase.CreateUser(c.Request().Context(), req.Email, req.Password, req.Name)
	if err != nil {
		return err
	}
	return SendSuccess(c, http.StatusCreated, MsgUserCreated, user)
}

// UpdateUser updates a user's name and/or email
func (h *UserHandler) UpdateUser(c echo.Context) error {
	req := middleware.BoundBody[UpdateUserRequest](c)

	update := domain.UserUpdate{
		Name:  req.Name,
		Email: req.Email,
	}

	user, err := h.userUsecase.UpdateUser(c.Request().Context(), c.Param("id"), update)
	if err != nil {
		return err
	}
	return SendSuccess(c, http.StatusOK, MsgUserUpdated, user)
}

// DeleteUser removes a user
func (h *UserHandler) DeleteUser(c echo.Context) error {
	if err := h.userUsecase.DeleteUser(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return SendSuccess(c, http.StatusOK, MsgUserDeleted, nil)
}
