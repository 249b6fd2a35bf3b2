// File: database/repository/destination.go
package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"voyago/database"
	"voyago/models"
)

// DestinationRepository persists catalog records keyed by destination id.
type DestinationRepository interface {
	GetByID(ctx context.Context, id string) (*models.Destination, error)
	Save(ctx context.Context, dest *models.Destination) error
	// Delete is idempotent: removing an absent id is not an error.
	Delete(ctx context.Context, id string) error
	GetAll(ctx context.Context) ([]models.Destination, error)
	IsSeeded(ctx context.Context) (bool, error)
	MarkSeeded(ctx context.Context) error
}

// KVDestinationRepo is the key-value backed implementation.
type KVDestinationRepo struct {
	store database.Store
}

// NewKVDestinationRepo creates a destination repository over the given store.
func NewKVDestinationRepo(store database.Store) *KVDestinationRepo {
	return &KVDestinationRepo{store: store}
}

// GetByID returns the destination for the id, or (nil, nil) when absent.
func (r *KVDestinationRepo) GetByID(ctx context.Context, id string) (*models.Destination, error) {
	raw, err := r.store.Get(ctx, destinationKeyPrefix+id)
	if errors.Is(err, database.ErrKeyNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch destination %s: %w", id, err)
	}
	var dest models.Destination
	if err := json.Unmarshal(raw, &dest); err != nil {
		return nil, fmt.Errorf("failed to decode destination %s: %w", id, err)
	}
	return &dest, nil
}

func (r *KVDestinationRepo) Save(ctx context.Context, dest *models.Destination) error {
	raw, err := json.Marshal(dest)
	if err != nil {
		return fmt.Errorf("failed to encode destination %s: %w", dest.ID, err)
	}
	if err := r.store.Set(ctx, destinationKeyPrefix+dest.ID, raw); err != nil {
		return fmt.Errorf("failed to save destination %s: %w", dest.ID, err)
	}
	return nil
}

func (r *KVDestinationRepo) Delete(ctx context.Context, id string) error {
	if err := r.store.Delete(ctx, destinationKeyPrefix+id); err != nil {
		return fmt.Errorf("failed to delete destination %s: %w", id, err)
	}
	return nil
}

func (r *KVDestinationRepo) GetAll(ctx context.Context) ([]models.Destination, error) {
	raws, err := r.store.GetByPrefix(ctx, destinationKeyPrefix)
	if err != nil {
		return nil, fmt.Errorf("failed to scan destinations: %w", err)
	}
	dests := make([]models.Destination, 0, len(raws))
	for _, raw := range raws {
		var dest models.Destination
		if err := json.Unmarshal(raw, &dest); err != nil {
			return nil, fmt.Errorf("failed to decode destination: %w", err)
		}
		dests = append(dests, dest)
	}
	return dests, nil
}

func (r *KVDestinationRepo) IsSeeded(ctx context.Context) (bool, error) {
	_, err := r.store.Get(ctx, destinationsSeededKey)
	if errors.Is(err, database.ErrKeyNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to read seed marker: %w", err)
	}
	return true, nil
}

func (r *KVDestinationRepo) MarkSeeded(ctx context.Context) error {
	if err := r.store.Set(ctx, destinationsSeededKey, []byte("true")); err != nil {
		return fmt.Errorf("failed to write seed marker: %w", err)
	}
	return nil
}
