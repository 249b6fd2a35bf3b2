// Package profile implements the application-level user records and the
// user/admin role split on top of the resolved identity.
package profile

import (
	"context"
	"fmt"
	"strings"
	"time"

	"voyago/database/repository"
	"voyago/models"
	"voyago/services/auth"
	"voyago/services/fault"
	"voyago/utils"

	"go.uber.org/zap"
)

// SyncResult reports what SyncProfile did for an identity.
type SyncResult struct {
	Profile   *models.UserProfile `json:"profile"`
	Synced    bool                `json:"synced"`
	AutoFixed bool                `json:"autoFixed,omitempty"`
}

type ProfileService interface {
	// SyncProfile returns the profile for the identity, creating it on first
	// authenticated request. The designated admin email converges to the
	// admin role no matter what the stored record says.
	SyncProfile(ctx context.Context, identity *auth.Identity) (*SyncResult, error)
	// FixAdminRole promotes the caller to admin. Only the designated admin
	// email may call it; everyone else gets fault.ErrForbidden.
	FixAdminRole(ctx context.Context, identity *auth.Identity) (*models.UserProfile, error)
	GetProfile(ctx context.Context, userID string) (*models.UserProfile, error)
	GetAllProfiles(ctx context.Context) ([]models.UserProfile, error)
	// Signup creates an account with the auth provider and its profile.
	Signup(ctx context.Context, email, password, name string) (*models.UserProfile, error)
	// SetupAdmin seeds the designated admin account once; later calls are
	// no-ops.
	SetupAdmin(ctx context.Context) (created bool, err error)
}

// DefaultProfileService is the production implementation.
type DefaultProfileService struct {
	Repo        repository.ProfileRepository
	Provisioner auth.Provisioner

	// The single identity granted the admin role automatically.
	AdminEmail    string
	AdminName     string
	AdminPassword string
}

func (s *DefaultProfileService) isDesignatedAdmin(email string) bool {
	return email != "" && email == s.AdminEmail
}

func (s *DefaultProfileService) SyncProfile(ctx context.Context, identity *auth.Identity) (*SyncResult, error) {
	logger := utils.GetLogger()

	existing, err := s.Repo.GetByID(ctx, identity.ID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", fault.ErrStoreUnavailable, err)
	}

	if existing != nil {
		if s.isDesignatedAdmin(identity.Email) && existing.Role != models.RoleAdmin {
			// Self-healing role correction for the designated admin.
			existing.Role = models.RoleAdmin
			existing.Name = s.AdminName
			if err := s.Repo.Save(ctx, existing); err != nil {
				return nil, fmt.Errorf("%w: %v", fault.ErrStoreUnavailable, err)
			}
			logger.Info("Auto-fixed admin role", zap.String("userID", identity.ID))
			return &SyncResult{Profile: existing, Synced: false, AutoFixed: true}, nil
		}
		return &SyncResult{Profile: existing, Synced: false}, nil
	}

	isAdmin := s.isDesignatedAdmin(identity.Email)
	name := identity.Name
	if isAdmin {
		name = s.AdminName
	} else if name == "" {
		// Fall back to the local part of the email like the client does.
		if at := strings.Index(identity.Email, "@"); at > 0 {
			name = identity.Email[:at]
		} else {
			name = "User"
		}
	}

	profile := &models.UserProfile{
		ID:        identity.ID,
		Email:     identity.Email,
		Name:      name,
		Role:      models.RoleUser,
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
	}
	if isAdmin {
		profile.Role = models.RoleAdmin
	}

	if err := s.Repo.Save(ctx, profile); err != nil {
		return nil, fmt.Errorf("%w: %v", fault.ErrStoreUnavailable, err)
	}
	if isAdmin {
		if err := s.Repo.MarkAdminSetupComplete(ctx); err != nil {
			return nil, fmt.Errorf("%w: %v", fault.ErrStoreUnavailable, err)
		}
	}
	logger.Debug("Created profile", zap.String("userID", profile.ID), zap.String("role", profile.Role))
	return &SyncResult{Profile: profile, Synced: true}, nil
}

func (s *DefaultProfileService) FixAdminRole(ctx context.Context, identity *auth.Identity) (*models.UserProfile, error) {
	if !s.isDesignatedAdmin(identity.Email) {
		return nil, fault.ErrForbidden
	}

	// Keep the provider's role metadata in line with the profile.
	if err := s.Provisioner.SetRole(ctx, identity.ID, s.AdminName, models.RoleAdmin); err != nil {
		return nil, fmt.Errorf("failed to update provider metadata: %w", err)
	}

	profile := &models.UserProfile{
		ID:        identity.ID,
		Email:     identity.Email,
		Name:      s.AdminName,
		Role:      models.RoleAdmin,
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
	}
	if err := s.Repo.Save(ctx, profile); err != nil {
		return nil, fmt.Errorf("%w: %v", fault.ErrStoreUnavailable, err)
	}
	if err := s.Repo.MarkAdminSetupComplete(ctx); err != nil {
		return nil, fmt.Errorf("%w: %v", fault.ErrStoreUnavailable, err)
	}
	return profile, nil
}

func (s *DefaultProfileService) GetProfile(ctx context.Context, userID string) (*models.UserProfile, error) {
	profile, err := s.Repo.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", fault.ErrStoreUnavailable, err)
	}
	if profile == nil {
		return nil, fault.ErrNotFound
	}
	return profile, nil
}

func (s *DefaultProfileService) GetAllProfiles(ctx context.Context) ([]models.UserProfile, error) {
	profiles, err := s.Repo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", fault.ErrStoreUnavailable, err)
	}
	return profiles, nil
}

func (s *DefaultProfileService) Signup(ctx context.Context, email, password, name string) (*models.UserProfile, error) {
	if email == "" || password == "" {
		return nil, fmt.Errorf("%w: email and password are required", fault.ErrValidation)
	}

	identity, err := s.Provisioner.CreateUser(ctx, email, password, name, models.RoleUser)
	if err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	profile := &models.UserProfile{
		ID:        identity.ID,
		Email:     email,
		Name:      name,
		Role:      models.RoleUser,
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
	}
	if err := s.Repo.Save(ctx, profile); err != nil {
		return nil, fmt.Errorf("%w: %v", fault.ErrStoreUnavailable, err)
	}
	return profile, nil
}

func (s *DefaultProfileService) SetupAdmin(ctx context.Context) (bool, error) {
	done, err := s.Repo.IsAdminSetupComplete(ctx)
	if err != nil {
		return false, fmt.Errorf("%w: %v", fault.ErrStoreUnavailable, err)
	}
	if done {
		return false, nil
	}

	identity, err := s.Provisioner.CreateUser(ctx, s.AdminEmail, s.AdminPassword, s.AdminName, models.RoleAdmin)
	if err != nil {
		return false, fmt.Errorf("failed to create admin: %w", err)
	}

	profile := &models.UserProfile{
		ID:        identity.ID,
		Email:     s.AdminEmail,
		Name:      s.AdminName,
		Role:      models.RoleAdmin,
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
	}
	if err := s.Repo.Save(ctx, profile); err != nil {
		return false, fmt.Errorf("%w: %v", fault.ErrStoreUnavailable, err)
	}
	if err := s.Repo.MarkAdminSetupComplete(ctx); err != nil {
		return false, fmt.Errorf("%w: %v", fault.ErrStoreUnavailable, err)
	}
	utils.GetLogger().Info("Seeded designated admin", zap.String("userID", profile.ID))
	return true, nil
}
