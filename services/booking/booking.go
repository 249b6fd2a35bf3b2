// Package booking records trips against the resolved identity and indexes
// them per user.
package booking

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

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type BookingService interface {
	// Create persists the submitted trip details for the identity. Bookings
	// are accepted unconditionally; no capacity is tracked.
	Create(ctx context.Context, identity *auth.Identity, input models.BookingInput) (*models.Booking, error)
	// ListMine returns the identity's bookings via the secondary index.
	ListMine(ctx context.Context, identity *auth.Identity) ([]models.Booking, error)
	// ListAll returns every booking, unordered. Admin route only.
	ListAll(ctx context.Context) ([]models.Booking, error)
}

// DefaultBookingService is the production implementation.
type DefaultBookingService struct {
	Repo repository.BookingRepository
}

// newBookingID builds a unique id from the creation timestamp and a random
// suffix. Collisions are treated as negligible, matching the id scheme the
// clients already parse.
func newBookingID(now time.Time) string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:9]
	return fmt.Sprintf("booking_%d_%s", now.UnixMilli(), suffix)
}

func (s *DefaultBookingService) Create(ctx context.Context, identity *auth.Identity, input models.BookingInput) (*models.Booking, error) {
	if identity == nil || identity.ID == "" {
		return nil, fault.ErrUnauthorized
	}

	now := time.Now()
	booking := &models.Booking{
		ID:           newBookingID(now),
		UserID:       identity.ID,
		BookingInput: input,
		Status:       models.BookingStatusConfirmed,
		CreatedAt:    now.UTC().Format(time.RFC3339),
	}

	if err := s.Repo.Create(ctx, booking); err != nil {
		return nil, fmt.Errorf("%w: %v", fault.ErrStoreUnavailable, err)
	}
	utils.GetLogger().Info("Created booking",
		zap.String("id", booking.ID),
		zap.String("userID", booking.UserID),
		zap.String("destinationID", booking.DestinationID))
	return booking, nil
}

func (s *DefaultBookingService) ListMine(ctx context.Context, identity *auth.Identity) ([]models.Booking, error) {
	if identity == nil || identity.ID == "" {
		return nil, fault.ErrUnauthorized
	}
	bookings, err := s.Repo.GetByUser(ctx, identity.ID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", fault.ErrStoreUnavailable, err)
	}
	return bookings, nil
}

func (s *DefaultBookingService) ListAll(ctx context.Context) ([]models.Booking, error) {
	bookings, err := s.Repo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", fault.ErrStoreUnavailable, err)
	}
	return bookings, nil
}
