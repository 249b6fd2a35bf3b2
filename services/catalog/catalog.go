// Package catalog implements the destination catalog: public reads,
// admin-gated writes.
package catalog

import (
	"context"
	"fmt"
	"time"

	"voyago/database/repository"
	"voyago/models"
	"voyago/services/fault"
	"voyago/utils"

	"go.uber.org/zap"
)

type CatalogService interface {
	// List returns every destination; filtering happens client-side.
	List(ctx context.Context) ([]models.Destination, error)
	Get(ctx context.Context, id string) (*models.Destination, error)
	// Create stores the submitted fields verbatim under a time-based id.
	Create(ctx context.Context, dest models.Destination) (*models.Destination, error)
	// Delete is unconditional; an absent id still succeeds.
	Delete(ctx context.Context, id string) error
	// Seed loads the sample catalog once; later calls are no-ops.
	Seed(ctx context.Context) (seeded bool, err error)
}

// DefaultCatalogService is the production implementation.
type DefaultCatalogService struct {
	Repo repository.DestinationRepository
}

func (s *DefaultCatalogService) List(ctx context.Context) ([]models.Destination, error) {
	dests, err := s.Repo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", fault.ErrStoreUnavailable, err)
	}
	return dests, nil
}

func (s *DefaultCatalogService) Get(ctx context.Context, id string) (*models.Destination, error) {
	dest, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", fault.ErrStoreUnavailable, err)
	}
	if dest == nil {
		return nil, fault.ErrNotFound
	}
	return dest, nil
}

func (s *DefaultCatalogService) Create(ctx context.Context, dest models.Destination) (*models.Destination, error) {
	now := time.Now()
	dest.ID = fmt.Sprintf("dest_%d", now.UnixMilli())
	dest.CreatedAt = now.UTC().Format(time.RFC3339)

	if err := s.Repo.Save(ctx, &dest); err != nil {
		return nil, fmt.Errorf("%w: %v", fault.ErrStoreUnavailable, err)
	}
	utils.GetLogger().Info("Created destination", zap.String("id", dest.ID), zap.String("name", dest.Name))
	return &dest, nil
}

func (s *DefaultCatalogService) Delete(ctx context.Context, id string) error {
	if err := s.Repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("%w: %v", fault.ErrStoreUnavailable, err)
	}
	utils.GetLogger().Info("Deleted destination", zap.String("id", id))
	return nil
}

func (s *DefaultCatalogService) Seed(ctx context.Context) (bool, error) {
	done, err := s.Repo.IsSeeded(ctx)
	if err != nil {
		return false, fmt.Errorf("%w: %v", fault.ErrStoreUnavailable, err)
	}
	if done {
		return false, nil
	}
	for i := range sampleDestinations {
		if err := s.Repo.Save(ctx, &sampleDestinations[i]); err != nil {
			return false, fmt.Errorf("%w: %v", fault.ErrStoreUnavailable, err)
		}
	}
	if err := s.Repo.MarkSeeded(ctx); err != nil {
		return false, fmt.Errorf("%w: %v", fault.ErrStoreUnavailable, err)
	}
	utils.GetLogger().Info("Seeded destination catalog", zap.Int("count", len(sampleDestinations)))
	return true, nil
}
