// File: services/auth/local.go
package auth

import (
	"context"

	"voyago/services/fault"
	"voyago/utils"

	"github.com/google/uuid"
)

// LocalProvider verifies HS256 tokens minted by this service. Development
// stand-in for the hosted provider; accounts exist only as profiles.
type LocalProvider struct{}

func NewLocalProvider() *LocalProvider {
	return &LocalProvider{}
}

func (p *LocalProvider) Verify(ctx context.Context, token string) (*Identity, error) {
	if token == "" {
		return nil, fault.ErrUnauthorized
	}
	sub, email, name, err := utils.ExtractClaimsFromToken(token)
	if err != nil {
		return nil, fault.ErrUnauthorized
	}
	return &Identity{ID: sub, Email: email, Name: name}, nil
}

func (p *LocalProvider) CreateUser(ctx context.Context, email, password, name, role string) (*Identity, error) {
	return &Identity{ID: uuid.NewString(), Email: email, Name: name}, nil
}

// SetRole is a no-op: local identities carry no provider-side metadata.
func (p *LocalProvider) SetRole(ctx context.Context, userID, name, role string) error {
	return nil
}
