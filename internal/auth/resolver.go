package auth

import (
	"context"
	"errors"
	"fmt"

	"medapp-server/internal/models"
)

var (
	// ErrUnauthorized is the only failure a caller of Resolve sees.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrInvalidCredentials covers both an unknown email and a wrong password.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// UserLookup loads users by identity.
type UserLookup interface {
	FindByID(ctx context.Context, id uint) (*models.User, error)
}

// Resolver turns a bearer token into the authenticated user. Nothing is
// cached: every call verifies the token and reloads the user.
type Resolver struct {
	tokens *TokenService
	users  UserLookup
}

// NewResolver creates a Resolver.
func NewResolver(tokens *TokenService, users UserLookup) *Resolver {
	return &Resolver{tokens: tokens, users: users}
}

// Resolve returns the user named by token. Every failure wraps ErrUnauthorized.
func (r *Resolver) Resolve(ctx context.Context, token string) (*models.User, error) {
	id, err := r.tokens.Verify(token)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnauthorized, err)
	}

	user, err := r.users.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%w: load user %d: %w", ErrUnauthorized, id, err)
	}
	if user == nil {
		return nil, fmt.Errorf("%w: user %d not found", ErrUnauthorized, id)
	}
	return user, nil
}
