package handlers

import (
	"github.com/labstack/echo/v4"
)

// Response is the uniform envelope for every API response. Success
// responses never populate Errors; error responses never populate Data.
type Response struct {
	Success bool                `json:"success"`
	Message string              `json:"message"`
	Data    interface{}         `json:"data,omitempty"`
	Errors  map[string][]string `json:"errors,omitempty"`
}

// SendSuccess writes a success envelope
func SendSuccess(c echo.Context, statusCode int, message string, data interface{}) error {
	return c.JSON(statusCode, Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// SendError writes an error envelope
func SendError(c echo.Context, statusCode int, message string, errors map[string][]string) error {
	return c.JSON(statusCode, Response{
		Success: false,
		Message: message,
		Errors:  errors,
	})
}
