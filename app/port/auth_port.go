package port

import (
	"context"

	"user-api/app/domain"
)

// AuthUsecase defines authentication operations
type AuthUsecase interface {
	// Login authenticates a user by email and password
	Login(ctx context.Context, email, password string) (*domain.AuthResult, error)
	// Register creates a new user and signs them in
	Register(ctx context.Context, email, password, name string) (*domain.AuthResult, error)
}

// TokenService issues and verifies signed identity tokens
type TokenService interface {
	// Issue creates a signed, time-limited token for the given user
	Issue(userID, email string) (string, error)
	// Verify checks signature and expiry and returns the decoded claim
	Verify(tokenString string) (*domain.IdentityClaim, error)
}

// PasswordHasher is the one-way credential transform
type PasswordHasher interface {
	// Hash produces a salted digest of the plaintext
	Hash(ctx context.Context, password string) (string, error)
	// Verify reports whether the plaintext matches the digest.
	// A malformed digest yields false, never an error.
	Verify(ctx context.Context, password, digest string) bool
}
