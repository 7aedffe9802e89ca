// Package identity talks to the external identity provider. The provider owns
// accounts and credentials; the shop only verifies tokens and mirrors a few
// profile fields locally.
package identity

import (
	"context"
	"errors"
)

var (
	ErrInvalidToken    = errors.New("identity token is invalid or expired")
	ErrAccountNotFound = errors.New("identity account not found")
)

// Identity is the verified subject behind a bearer token.
type Identity struct {
	UserID   string `json:"user_id"`
	Email    string `json:"email"`
	Name     string `json:"name"`
	PhotoURL string `json:"photo_url"`
}

type Verifier interface {
	Verify(ctx context.Context, token string) (*Identity, error)
}

// Accounts covers the administrative operations the shop performs against
// provider-owned accounts.
type Accounts interface {
	DeleteAccount(ctx context.Context, userID string) error
	UpdateName(ctx context.Context, userID, name string) error
	UpdatePhoto(ctx context.Context, userID, photoURL string) error
}
