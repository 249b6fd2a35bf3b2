// File: database/repository/booking.go
package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"voyago/database"
	"voyago/models"
)

// BookingRepository persists booking records and their per-user secondary
// index entries.
type BookingRepository interface {
	// Create writes the booking under its own id and an index entry
	// user_booking:<userId>:<bookingId> -> bookingId.
	Create(ctx context.Context, booking *models.Booking) error
	GetByID(ctx context.Context, id string) (*models.Booking, error)
	// GetByUser scans the index prefix and dereferences each entry. Order is
	// the scan's insertion order, not sorted.
	GetByUser(ctx context.Context, userID string) ([]models.Booking, error)
	GetAll(ctx context.Context) ([]models.Booking, error)
}

// KVBookingRepo is the key-value backed implementation.
type KVBookingRepo struct {
	store database.Store
}

// NewKVBookingRepo creates a booking repository over the given store.
func NewKVBookingRepo(store database.Store) *KVBookingRepo {
	return &KVBookingRepo{store: store}
}

func (r *KVBookingRepo) Create(ctx context.Context, booking *models.Booking) error {
	raw, err := json.Marshal(booking)
	if err != nil {
		return fmt.Errorf("failed to encode booking %s: %w", booking.ID, err)
	}
	if err := r.store.Set(ctx, bookingKeyPrefix+booking.ID, raw); err != nil {
		return fmt.Errorf("failed to save booking %s: %w", booking.ID, err)
	}
	indexKey := userBookingKeyPrefix + booking.UserID + ":" + booking.ID
	if err := r.store.Set(ctx, indexKey, []byte(booking.ID)); err != nil {
		return fmt.Errorf("failed to index booking %s: %w", booking.ID, err)
	}
	return nil
}

// GetByID returns the booking for the id, or (nil, nil) when absent.
func (r *KVBookingRepo) GetByID(ctx context.Context, id string) (*models.Booking, error) {
	raw, err := r.store.Get(ctx, bookingKeyPrefix+id)
	if errors.Is(err, database.ErrKeyNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch booking %s: %w", id, err)
	}
	var booking models.Booking
	if err := json.Unmarshal(raw, &booking); err != nil {
		return nil, fmt.Errorf("failed to decode booking %s: %w", id, err)
	}
	return &booking, nil
}

func (r *KVBookingRepo) GetByUser(ctx context.Context, userID string) ([]models.Booking, error) {
	prefix := userBookingKeyPrefix + userID + ":"
	keys, err := r.store.KeysByPrefix(ctx, prefix)
	if err != nil {
		return nil, fmt.Errorf("failed to scan booking index for %s: %w", userID, err)
	}
	bookings := make([]models.Booking, 0, len(keys))
	for _, key := range keys {
		id := strings.TrimPrefix(key, prefix)
		booking, err := r.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		// Index entries can outlive their record; skip dangling ones.
		if booking != nil {
			bookings = append(bookings, *booking)
		}
	}
	return bookings, nil
}

func (r *KVBookingRepo) GetAll(ctx context.Context) ([]models.Booking, error) {
	raws, err := r.store.GetByPrefix(ctx, bookingKeyPrefix)
	if err != nil {
		return nil, fmt.Errorf("failed to scan bookings: %w", err)
	}
	bookings := make([]models.Booking, 0, len(raws))
	for _, raw := range raws {
		var booking models.Booking
		if err := json.Unmarshal(raw, &booking); err != nil {
			return nil, fmt.Errorf("failed to decode booking: %w", err)
		}
		bookings = append(bookings, booking)
	}
	return bookings, nil
}
