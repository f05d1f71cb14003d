// Package auth is the identity capability consumed by the favorites
// surface: login, logout and a current-user lookup. Sessions are
// issued as signed JWTs and tracked in memory so logout revokes them.
package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	// ErrUnauthorized is returned for missing, malformed, revoked or
	// otherwise unusable session tokens.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrSessionExpired is returned for well-formed tokens past their
	// expiry.
	ErrSessionExpired = errors.New("session expired")
)

// User is the signed-in identity. The core only cares that one is
// present; Name is display-only.
type User struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type sessionClaims struct {
	Name string `json:"name"`
	jwt.RegisteredClaims
}

// Provider issues and validates session tokens.
type Provider struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time

	mu       sync.Mutex
	sessions map[string]User
}

// NewProvider creates an identity provider signing sessions with the
// given secret.
func NewProvider(secret string, ttl time.Duration) *Provider {
	return &Provider{
		secret:   []byte(secret),
		ttl:      ttl,
		now:      time.Now,
		sessions: make(map[string]User),
	}
}

// Login starts a session for the given display name and returns the
// bearer token. Fails on a blank name.
func (p *Provider) Login(ctx context.Context, name string) (string, *User, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", nil, fmt.Errorf("%w: username is required", ErrUnauthorized)
	}

	user := User{ID: uuid.NewString(), Name: name}
	now := p.now()
	claims := sessionClaims{
		Name: name,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(p.ttl)),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(p.secret)
	if err != nil {
		return "", nil, fmt.Errorf("failed to sign session token: %w", err)
	}

	p.mu.Lock()
	p.sessions[user.ID] = user
	p.mu.Unlock()

	return token, &user, nil
}

// Logout revokes the session behind the token. Revoking an unknown or
// invalid token fails with ErrUnauthorized.
func (p *Provider) Logout(ctx context.Context, token string) error {
	user, err := p.CurrentUser(token)
	if err != nil {
		return err
	}

	p.mu.Lock()
	delete(p.sessions, user.ID)
	p.mu.Unlock()
	return nil
}

// CurrentUser validates the token and returns the signed-in user, or
// ErrUnauthorized / ErrSessionExpired.
func (p *Provider) CurrentUser(token string) (*User, error) {
	parsed, err := jwt.ParseWithClaims(token, &sessionClaims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return p.secret, nil
	}, jwt.WithTimeFunc(func() time.Time { return p.now() }))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrSessionExpired
		}
		return nil, fmt.Errorf("%w: %v", ErrUnauthorized, err)
	}

	claims, ok := parsed.Claims.(*sessionClaims)
	if !ok {
		return nil, ErrUnauthorized
	}

	p.mu.Lock()
	user, live := p.sessions[claims.Subject]
	p.mu.Unlock()
	if !live {
		return nil, fmt.Errorf("%w: session revoked", ErrUnauthorized)
	}
	return &user, nil
}
