package rest

import (
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"user-api/app/port"
	"user-api/app/rest/handlers"
	custommw "user-api/app/rest/middleware"
	validatorutil "user-api/app/utils/validator"
)

// RouterConfig holds router configuration
type RouterConfig struct {
	Logger       *slog.Logger
	AuthUsecase  port.AuthUsecase
	UserUsecase  port.UserUsecase
	TokenService port.TokenService
	Validator    *validatorutil.Validator
	DB           handlers.Pinger
	CORSOrigin   string
	IsProduction bool
}

// NewRouter creates and configures the Echo router
func NewRouter(config RouterConfig) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = NewHTTPErrorHandler(config.Logger, config.IsProduction)

	// Create handlers
	authHandler := handlers.NewAuthHandler(config.AuthUsecase, config.Logger)
	userHandler := handlers.NewUserHandler(config.UserUsecase, config.Logger)
	healthHandler := handlers.NewHealthHandler(config.DB, config.Logger)

	// Create middleware
	authMiddleware := custommw.NewAuthMiddleware(config.TokenService, config.Logger)
	rateLimiter := custommw.NewRateLimiter()
	v := config.Validator

	// Global middleware
	e.Use(echomw.Recover())
	e.Use(echomw.RequestIDWithConfig(echomw.RequestIDConfig{
		Generator: func() string { return uuid.New().String() },
	}))
	e.Use(custommw.RequestLogger(config.Logger))
	e.Use(custommw.NewCORSMiddleware(config.CORSOrigin))
	e.Use(custommw.SecurityHeaders())
	e.Use(rateLimiter.RateLimit())

	// Root and health endpoints (no auth required)
	e.GET("/", welcome)
	e.GET("/health", healthHandler.HealthCheck)
	e.GET("/health/ready", healthHandler.ReadinessCheck)

	api := e.Group("/api")

	// Authentication endpoints
	auth := api.Group("/auth")
	auth.POST("/login", authHandler.Login, custommw.Validate(v, handlers.LoginSchema()))
	auth.POST("/register", authHandler.Register, custommw.Validate(v, handlers.RegisterSchema()))
	auth.POST("/logout", authHandler.Logout, authMiddleware.RequireAuth())

	// User endpoints (protected). On routes that declare both, validation
	// runs before authentication so field errors surface first.
	users := api.Group("/users")
	users.GET("", userHandler.ListUsers, authMiddleware.RequireAuth())
	users.POST("", userHandler.CreateUser, custommw.Validate(v, handlers.CreateUserSchema()), authMiddleware.RequireAuth())
	users.GET("/:id", userHandler.GetUserByID, custommw.Validate(v, handlers.UserIDSchema()), authMiddleware.RequireAuth())
	users.PUT("/:id", userHandler.UpdateUser, custommw.Validate(v, handlers.UpdateUserSchema()), authMiddleware.RequireAuth())
	users.DELETE("/:id", userHandler.DeleteUser, custommw.Validate(v, handlers.UserIDSchema()), authMiddleware.RequireAuth())

	return e
}

// welcome describes the API surface for the curious
func welcome(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "Welcome to User API",
		"version": "1.0.0",
		"endpoints": map[string]string{
			"health": "/health",
			"api":    "/api",
		},
	})
}
