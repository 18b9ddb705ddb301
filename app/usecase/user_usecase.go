package usecase

import (
	"context"
	"log/slog"

	"user-api/app/domain"
	"user-api/app/port"
	apperrors "user-api/app/utils/errors"
)

// UserUsecase handles the user resource CRUD operations.
// Implements port.UserUsecase.
type UserUsecase struct {
	repo   port.UserRepository
	hasher port.PasswordHasher
	logger *slog.Logger
}

// NewUserUsecase creates a new user usecase
func NewUserUsecase(repo port.UserRepository, hasher port.PasswordHasher, logger *slog.Logger) *UserUsecase {
	return &UserUsecase{
		repo:   repo,
		hasher: hasher,
		logger: logger,
	}
}

// ListUsers returns all users without their password digests
func (u *UserUsecase) ListUsers(ctx context.Context) ([]*domain.PublicUser, error) {
	users, err := u.repo.FindAll(ctx)
	if err != nil {
		return nil, apperrors.NewDatabaseError(err)
	}

	result := make([]*domain.PublicUser, 0, len(users))
	for _, user := range users {
		result = append(result, user.Public())
	}
	return result, nil
}

// GetUserByID returns a single user without the password digest
func (u *UserUsecase) GetUserByID(ctx context.Context, id string) (*domain.PublicUser, error) {
	user, err := u.repo.FindByID(ctx, id)
	if err != nil {
		if apperrors.HasCode(err, apperrors.ErrCodeUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.NewDatabaseError(err)
	}
	return user.Public(), nil
}

// CreateUser creates a new user with a hashed password
func (u *UserUsecase) CreateUser(ctx context.Context, email, password, name string) (*domain.PublicUser, error) {
	email = domain.NormalizeEmail(email)

	_, err := u.repo.FindByEmail(ctx, email)
	if err == nil {
		return nil, apperrors.ErrUserExists
	}
	if !apperrors.HasCode(err, apperrors.ErrCodeUserNotFound) {
		return nil, apperrors.NewDatabaseError(err)
	}

	digest, err := u.hasher.Hash(ctx, password)
	if err != nil {
		return nil, apperrors.NewInternalError(err)
	}

	user, err := domain.NewUser(email, digest, name)
	if err != nil {
		return nil, apperrors.ErrInvalidInput.WithCause(err)
	}

	if err := u.repo.Insert(ctx, user); err != nil {
		if apperrors.HasCode(err, apperrors.ErrCodeUserExists) {
			return nil, apperrors.ErrUserExists
		}
		return nil, apperrors.NewDatabaseError(err)
	}

	u.logger.Info("user created", "user_id", user.ID)

	return user.Public(), nil
}

// UpdateUser applies the provided optional fields to a user
func (u *UserUsecase) UpdateUser(ctx context.Context, id string, update domain.UserUpdate) (*domain.PublicUser, error) {
	if update.Email != nil {
		normalized := domain.NormalizeEmail(*update.Email)
		update.Email = &normalized
	}

	user, err := u.repo.Update(ctx, id, update)
	if err != nil {
		switch {
		case apperrors.HasCode(err, apperrors.ErrCodeUserNotFound):
			return nil, apperrors.ErrUserNotFound
		case apperrors.HasCode(err, apperrors.ErrCodeUserExists):
			return nil, apperrors.ErrUserExists
		default:
			return nil, apperrors.NewDatabaseError(err)
		}
	}

	u.logger.Info("user updated", "user_id", user.ID)

	return user.Public(), nil
}

// DeleteUser removes a user by id
func (u *UserUsecase) DeleteUser(ctx context.Context, id string) error {
	if err := u.repo.Delete(ctx, id); err != nil {
		if apperrors.HasCode(err, apperrors.ErrCodeUserNotFound) {
			return apperrors.ErrUserNotFound
		}
		return apperrors.NewDatabaseError(err)
	}

	u.logger.Info("user deleted", "user_id", id)

	return nil
}
