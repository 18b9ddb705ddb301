package token

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"user-api/app/domain"
)

// JWTConfig holds JWT signing configuration
type JWTConfig struct {
	Secret string
	TTL    time.Duration
}

// identityClaims represents the JWT claims carried by an issued token
type identityClaims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// JWTService issues and verifies HS256-signed identity tokens.
// Verification is a pure function of (token, secret, current time): there
// is no revocation state, so logout is purely client-side token discard.
// Implements port.TokenService.
type JWTService struct {
	cfg JWTConfig
}

// NewJWTService creates a new JWT token service
func NewJWTService(cfg JWTConfig) *JWTService {
	return &JWTService{cfg: cfg}
}

// Issue generates a signed token carrying the user id and email
func (s *JWTService) Issue(userID, email string) (string, error) {
	now := time.Now()
	claims := identityClaims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.cfg.TTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.Secret))
}

// Verify checks the token signature and expiry and returns the decoded
// claim. Expiry is exact: a token whose expiry equals the current instant
// is already invalid, and no leeway compensates for clock skew.
func (s *JWTService) Verify(tokenString string) (*domain.IdentityClaim, error) {
	claims := &identityClaims{}
	parsed, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		return []byte(s.cfg.Secret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithExpirationRequired())
	if err != nil {
		return nil, fmt.Errorf("verify token: %w", err)
	}
	if !parsed.Valid {
		return nil, fmt.Errorf("verify token: token is not valid")
	}

	claim := &domain.IdentityClaim{
		UserID:    claims.Subject,
		Email:     claims.Email,
		ExpiresAt: claims.ExpiresAt.Time,
	}
	if claims.IssuedAt != nil {
		claim.IssuedAt = claims.IssuedAt.Time
	}
	return claim, nil
}
