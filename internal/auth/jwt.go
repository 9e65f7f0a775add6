// Package auth issues and verifies the signed session tokens of the admin panel.
//
// There is no server-side session: every authenticated page embeds a token and
// every request carrying a valid one gets a freshly rotated token back.
package auth

import (
	"errors"
	"fmt"
	"time"

	"penguinadmin/internal/core/domain/model/kernel"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// DefaultTTL is the session lifetime when none is configured.
const DefaultTTL = 30 * time.Minute

var (
	ErrInvalidToken = errors.New("invalid session token")
	ErrEmptySecret  = errors.New("jwt secret must not be empty")
)

// Identity is who a token speaks for.
type Identity struct {
	AdminID kernel.UUID
	Email   string
	Role    string
}

// Claims is the token payload. The registered ID carries a unique jti so that
// two tokens minted in the same second still differ.
type Claims struct {
	AdminID string `json:"admin_id"`
	Email   string `json:"email"`
	Role    string `json:"role"`
	jwt.RegisteredClaims
}

// Identity converts verified claims back to an Identity.
func (c *Claims) Identity() (Identity, error) {
	id, err := kernel.UUIDFromString(c.AdminID)
	if err != nil {
		return Identity{}, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}
	return Identity{AdminID: id, Email: c.Email, Role: c.Role}, nil
}

// Manager signs tokens with HS256.
type Manager struct {
	secret []byte
	ttl    time.Duration
	clock  kernel.Clock
}

func NewManager(secret string, ttl time.Duration, clock kernel.Clock) (*Manager, error) {
	if secret == "" {
		return nil, ErrEmptySecret
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	if clock == nil {
		clock = kernel.SystemClock{}
	}
	return &Manager{secret: []byte(secret), ttl: ttl, clock: clock}, nil
}

func (m *Manager) TTL() time.Duration {
	return m.ttl
}

// Issue mints a new token for who.
func (m *Manager) Issue(who Identity) (string, error) {
	if err := who.AdminID.Validate(); err != nil {
		return "", err
	}

	now := m.clock.Now()
	claims := Claims{
		AdminID: who.AdminID.String(),
		Email:   who.Email,
		Role:    who.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("sign session token: %w", err)
	}
	return signed, nil
}

// Verify checks signature, algorithm and expiry. Every failure wraps ErrInvalidToken.
func (m *Manager) Verify(raw string) (*Claims, error) {
	if raw == "" {
		return nil, ErrInvalidToken
	}

	token, err := jwt.ParseWithClaims(raw, &Claims{}, func(*jwt.Token) (any, error) {
		return m.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(m.clock.Now),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// Rotate verifies raw and mints a replacement for the same identity.
func (m *Manager) Rotate(raw string) (string, Identity, error) {
	claims, err := m.Verify(raw)
	if err != nil {
		return "", Identity{}, err
	}

	who, err := claims.Identity()
	if err != nil {
		return "", Identity{}, err
	}

	fresh, err := m.Issue(who)
	if err != nil {
		return "", Identity{}, err
	}
	return fresh, who, nil
}
