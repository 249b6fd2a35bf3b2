// Package auth resolves bearer credentials against the hosted auth provider.
package auth

import (
	"context"

	"voyago/config"
)

// Identity is a resolved end-user reference derived from a bearer credential.
type Identity struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

// TokenVerifier resolves an opaque bearer credential to an identity. A
// missing, malformed or provider-rejected credential returns
// fault.ErrUnauthorized.
type TokenVerifier interface {
	Verify(ctx context.Context, token string) (*Identity, error)
}

// Provisioner wraps the provider's admin API: account creation for signup
// and role metadata updates for the designated admin.
type Provisioner interface {
	CreateUser(ctx context.Context, email, password, name, role string) (*Identity, error)
	SetRole(ctx context.Context, userID, name, role string) error
}

// Provider bundles both sides of the auth integration.
type Provider interface {
	TokenVerifier
	Provisioner
}

// NewProvider builds the auth provider selected by configuration. The
// firebase mode talks to the hosted provider; local mode verifies tokens
// minted by this service and is meant for development.
func NewProvider(ctx context.Context) (Provider, error) {
	if config.AppConfig.AuthMode == "firebase" {
		return NewFirebaseProvider(ctx)
	}
	return NewLocalProvider(), nil
}
