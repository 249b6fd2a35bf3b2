// File: services/auth/firebase.go
package auth

import (
	"context"
	"fmt"

	"voyago/config"
	"voyago/services/fault"
	"voyago/utils"

	firebase "firebase.google.com/go/v4"
	firebaseauth "firebase.google.com/go/v4/auth"
	"go.uber.org/zap"
	"google.golang.org/api/option"
)

// FirebaseProvider resolves ID tokens through the Firebase Auth service.
type FirebaseProvider struct {
	client *firebaseauth.Client
}

// NewFirebaseProvider initializes the Firebase app from the configured
// service account file and returns the auth-backed provider.
func NewFirebaseProvider(ctx context.Context) (*FirebaseProvider, error) {
	opt := option.WithCredentialsFile(config.AppConfig.FirebaseCredentialsFile)
	app, err := firebase.NewApp(ctx, nil, opt)
	if err != nil {
		return nil, fmt.Errorf("firebase: error initializing app: %w", err)
	}
	client, err := app.Auth(ctx)
	if err != nil {
		return nil, fmt.Errorf("firebase: error getting Auth client: %w", err)
	}
	return &FirebaseProvider{client: client}, nil
}

func (p *FirebaseProvider) Verify(ctx context.Context, token string) (*Identity, error) {
	if token == "" {
		return nil, fault.ErrUnauthorized
	}
	decoded, err := p.client.VerifyIDToken(ctx, token)
	if err != nil {
		utils.GetLogger().Warn("Firebase rejected token", zap.Error(err))
		return nil, fault.ErrUnauthorized
	}
	identity := &Identity{ID: decoded.UID}
	if email, ok := decoded.Claims["email"].(string); ok {
		identity.Email = email
	}
	if name, ok := decoded.Claims["name"].(string); ok {
		identity.Name = name
	}
	return identity, nil
}

func (p *FirebaseProvider) CreateUser(ctx context.Context, email, password, name, role string) (*Identity, error) {
	params := (&firebaseauth.UserToCreate{}).
		Email(email).
		Password(password).
		DisplayName(name).
		// Confirm the email up front since no mail server is configured.
		EmailVerified(true)
	record, err := p.client.CreateUser(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("firebase: failed to create user: %w", err)
	}
	if err := p.client.SetCustomUserClaims(ctx, record.UID, map[string]interface{}{"role": role}); err != nil {
		return nil, fmt.Errorf("firebase: failed to set role claim: %w", err)
	}
	return &Identity{ID: record.UID, Email: email, Name: name}, nil
}

func (p *FirebaseProvider) SetRole(ctx context.Context, userID, name, role string) error {
	claims := map[string]interface{}{"role": role, "name": name}
	if err := p.client.SetCustomUserClaims(ctx, userID, claims); err != nil {
		return fmt.Errorf("firebase: failed to update role claim: %w", err)
	}
	return nil
}
