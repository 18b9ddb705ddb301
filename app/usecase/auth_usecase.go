package usecase

import (
	"context"
	"log/slog"

	"user-api/app/domain"
	"user-api/app/port"
	apperrors "user-api/app/utils/errors"
)

// AuthUsecase orchestrates login and registration.
// Implements port.AuthUsecase.
type AuthUsecase struct {
	repo   port.UserRepository
	hasher port.PasswordHasher
	tokens port.TokenService
	logger *slog.Logger
}

// NewAuthUsecase creates a new auth usecase
func NewAuthUsecase(repo port.UserRepository, hasher port.PasswordHasher, tokens port.TokenService, logger *slog.Logger) *AuthUsecase {
	return &AuthUsecase{
		repo:   repo,
		hasher: hasher,
		tokens: tokens,
		logger: logger,
	}
}

// Login authenticates a user by email and password. An unknown email and a
// wrong password both produce the same invalid-credentials error so the
// response never reveals whether the account exists.
func (u *AuthUsecase) Login(ctx context.Context, email, password string) (*domain.AuthResult, error) {
	email = domain.NormalizeEmail(email)

	user, err := u.repo.FindByEmail(ctx, email)
	if err != nil {
		if apperrors.HasCode(err, apperrors.ErrCodeUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, apperrors.NewDatabaseError(err)
	}

	if !u.hasher.Verify(ctx, password, user.PasswordHash) {
		return nil, apperrors.ErrInvalidCredentials
	}

	token, err := u.tokens.Issue(user.ID, user.Email)
	if err != nil {
		return nil, apperrors.NewInternalError(err)
	}

	u.logger.Info("user logged in", "user_id", user.ID)

	return &domain.AuthResult{
		User:  user.Public(),
		Token: token,
	}, nil
}

// Register creates a new user and signs them in. The email uniqueness
// pre-check and the unique index can race under concurrent registration;
// a duplicate-key insert maps to the same user-exists error as the
// pre-check, never an internal error.
func (u *AuthUsecase) Register(ctx context.Context, email, password, name string) (*domain.AuthResult, error) {
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

	token, err := u.tokens.Issue(user.ID, user.Email)
	if err != nil {
		return nil, apperrors.NewInternalError(err)
	}

	u.logger.Info("user registered", "user_id", user.ID)

	return &domain.AuthResult{
		User:  user.Public(),
		Token: token,
	}, nil
}
