package port

import (
	"context"

	"user-api/app/domain"
)

// UserRepository defines the persistence contract for user documents.
// Implementations return domain error values (user not found, user exists)
// so callers never have to inspect driver-specific errors.
type UserRepository interface {
	// FindByEmail looks up a user by normalized email
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	// FindByID looks up a user by id. A malformed id is reported the same
	// way as a missing document.
	FindByID(ctx context.Context, id string) (*domain.User, error)
	// FindAll returns all users
	FindAll(ctx context.Context) ([]*domain.User, error)
	// Insert persists a new user and fills in its id
	Insert(ctx context.Context, user *domain.User) error
	// Update applies the non-nil fields of the update and returns the
	// updated user
	Update(ctx context.Context, id string, update domain.UserUpdate) (*domain.User, error)
	// Delete removes a user by id
	Delete(ctx context.Context, id string) error
}

// UserUsecase defines user management operations
type UserUsecase interface {
	ListUsers(ctx context.Context) ([]*domain.PublicUser, error)
	GetUserByID(ctx context.Context, id string) (*domain.PublicUser, error)
	CreateUser(ctx context.Context, email, password, name string) (*domain.PublicUser, error)
	UpdateUser(ctx context.Context, id string, update domain.UserUpdate) (*domain.PublicUser, error)
	DeleteUser(ctx context.Context, id string) error
}
