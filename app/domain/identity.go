package domain

import (
	"strings"
	"time"
)

// IdentityClaim is the decoded payload of a verified token
type IdentityClaim struct {
	UserID    string
	Email     string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// Identity is the request-scoped identity derived from a verified claim.
// It exists only for the lifetime of a request and is never persisted.
type Identity struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

// IdentityFromClaim derives a request identity from a verified claim.
// The display name is the local part of the email address.
func IdentityFromClaim(claim *IdentityClaim) *Identity {
	name := claim.Email
	if at := strings.Index(claim.Email, "@"); at >= 0 {
		name = claim.Email[:at]
	}
	return &Identity{
		ID:    claim.UserID,
		Email: claim.Email,
		Name:  name,
	}
}

// AuthResult is returned by login and register: the public user plus the
// issued token
type AuthResult struct {
	User  *PublicUser `json:"user"`
	Token string      `json:"token"`
}
