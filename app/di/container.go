package di

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/labstack/echo/v4"

	"user-api/app/config"
	"user-api/app/driver/mongodb"
	"user-api/app/port"
	"user-api/app/rest"
	"user-api/app/token"
	"user-api/app/usecase"
	"user-api/app/utils/security"
	validatorutil "user-api/app/utils/validator"
)

// Container holds all dependencies for the application
type Container struct {
	Config *config.Config
	Logger *slog.Logger

	// Drivers
	DB *mongodb.DB

	// Services
	TokenService port.TokenService
	Hasher       port.PasswordHasher
	Validator    *validatorutil.Validator

	// Repositories
	UserRepository port.UserRepository

	// Usecases
	AuthUsecase port.AuthUsecase
	UserUsecase port.UserUsecase
}

// NewContainer creates and initializes a new dependency injection container
func NewContainer(cfg *config.Config, logger *slog.Logger) (*Container, error) {
	container := &Container{
		Config: cfg,
		Logger: logger,
	}

	// Initialize drivers
	var err error
	container.DB, err = mongodb.NewConnection(cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	// Initialize services
	container.TokenService = token.NewJWTService(token.JWTConfig{
		Secret: cfg.JWTSecret,
		TTL:    cfg.JWTExpiry,
	})
	container.Hasher = security.NewBcryptHasher(cfg.BcryptCost)
	container.Validator = validatorutil.New()

	// Initialize repositories
	container.UserRepository = mongodb.NewUserRepository(container.DB, logger)

	// Initialize usecases
	container.AuthUsecase = usecase.NewAuthUsecase(container.UserRepository, container.Hasher, container.TokenService, logger)
	container.UserUsecase = usecase.NewUserUsecase(container.UserRepository, container.Hasher, logger)

	logger.Info("container initialized with full dependency stack")

	return container, nil
}

// CreateRouter creates and returns a fully configured Echo router
func (c *Container) CreateRouter() *echo.Echo {
	return rest.NewRouter(rest.RouterConfig{
		Logger:       c.Logger,
		AuthUsecase:  c.AuthUsecase,
		UserUsecase:  c.UserUsecase,
		TokenService: c.TokenService,
		Validator:    c.Validator,
		DB:           c.DB,
		CORSOrigin:   c.Config.CORSOrigin,
		IsProduction: c.Config.IsProduction(),
	})
}

// Close releases the container's resources
func (c *Container) Close(ctx context.Context) error {
	if c.DB != nil {
		return c.DB.Close(ctx)
	}
	return nil
}
