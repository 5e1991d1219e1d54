// Package token issues and verifies the stateless bearer tokens used by the API.
package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/ahmetcoskunkizilkaya/bmi-backend/internal/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Lifetime is how long an issued token stays valid.
const Lifetime = 2 * time.Hour

// Algorithm is the only signing method accepted.
var Algorithm = jwt.SigningMethodHS256.Alg()

// ErrInvalidToken covers every rejection: missing, malformed, expired,
// signed with another secret or algorithm.
var ErrInvalidToken = errors.New("invalid or expired token")

// Claims is the signed payload. ID is the user's primary key.
type Claims struct {
	ID    uint   `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	jwt.RegisteredClaims
}

type Issuer struct {
	secret []byte
	now    func() time.Time
}

func NewIssuer(secret string) *Issuer {
	return &Issuer{secret: []byte(secret), now: time.Now}
}

// Secret returns the HMAC key, for middleware that verifies tokens itself.
func (i *Issuer) Secret() []byte {
	return i.secret
}

func (i *Issuer) Create(user *models.User) (string, error) {
	now := i.now()
	claims := Claims{
		ID:    user.ID,
		Email: user.Email,
		Name:  user.Name,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(Lifetime)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

func (i *Issuer) Verify(raw string) (*Claims, error) {
	if raw == "" {
		return nil, ErrInvalidToken
	}

	claims := &Claims{}
	_, err := jwt.ParseWithClaims(raw, claims,
		func(*jwt.Token) (interface{}, error) { return i.secret, nil },
		jwt.WithValidMethods([]string{Algorithm}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(i.now),
	)
	if err != nil {
		return nil, ErrInvalidToken
	}
	if err := claims.Check(); err != nil {
		return nil, err
	}
	return claims, nil
}

// Check enforces what a signature check alone does not: an expiry must be
// present and the id must name a user. The HTTP middleware applies it after
// jwtware has verified the signature.
func (c *Claims) Check() error {
	if c.ID == 0 || c.ExpiresAt == nil {
		return ErrInvalidToken
	}
	return nil
}
