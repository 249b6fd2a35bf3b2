// File: database/repository/profile.go
package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"voyago/database"
	"voyago/models"
)

// ProfileRepository persists user profiles keyed by identity id.
type ProfileRepository interface {
	GetByID(ctx context.Context, id string) (*models.UserProfile, error)
	Save(ctx context.Context, profile *models.UserProfile) error
	GetAll(ctx context.Context) ([]models.UserProfile, error)
	IsAdminSetupComplete(ctx context.Context) (bool, error)
	MarkAdminSetupComplete(ctx context.Context) error
}

// KVProfileRepo is the key-value backed implementation.
type KVProfileRepo struct {
	store database.Store
}

// NewKVProfileRepo creates a profile repository over the given store.
func NewKVProfileRepo(store database.Store) *KVProfileRepo {
	return &KVProfileRepo{store: store}
}

// GetByID returns the profile for the id, or (nil, nil) when absent.
func (r *KVProfileRepo) GetByID(ctx context.Context, id string) (*models.UserProfile, error) {
	raw, err := r.store.Get(ctx, profileKeyPrefix+id)
	if errors.Is(err, database.ErrKeyNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch profile %s: %w", id, err)
	}
	var profile models.UserProfile
	if err := json.Unmarshal(raw, &profile); err != nil {
		return nil, fmt.Errorf("failed to decode profile %s: %w", id, err)
	}
	return &profile, nil
}

func (r *KVProfileRepo) Save(ctx context.Context, profile *models.UserProfile) error {
	raw, err := json.Marshal(profile)
	if err != nil {
		return fmt.Errorf("failed to encode profile %s: %w", profile.ID, err)
	}
	if err := r.store.Set(ctx, profileKeyPrefix+profile.ID, raw); err != nil {
		return fmt.Errorf("failed to save profile %s: %w", profile.ID, err)
	}
	return nil
}

func (r *KVProfileRepo) GetAll(ctx context.Context) ([]models.UserProfile, error) {
	raws, err := r.store.GetByPrefix(ctx, profileKeyPrefix)
	if err != nil {
		return nil, fmt.Errorf("failed to scan profiles: %w", err)
	}
	profiles := make([]models.UserProfile, 0, len(raws))
	for _, raw := range raws {
		var profile models.UserProfile
		if err := json.Unmarshal(raw, &profile); err != nil {
			return nil, fmt.Errorf("failed to decode profile: %w", err)
		}
		profiles = append(profiles, profile)
	}
	return profiles, nil
}

func (r *KVProfileRepo) IsAdminSetupComplete(ctx context.Context) (bool, error) {
	_, err := r.store.Get(ctx, adminSetupCompleteKey)
	if errors.Is(err, database.ErrKeyNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to read admin setup marker: %w", err)
	}
	return true, nil
}

func (r *KVProfileRepo) MarkAdminSetupComplete(ctx context.Context) error {
	if err := r.store.Set(ctx, adminSetupCompleteKey, []byte("true")); err != nil {
		return fmt.Errorf("failed to write admin setup marker: %w", err)
	}
	return nil
}
