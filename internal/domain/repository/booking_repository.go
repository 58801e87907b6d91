package repository

import (
	"context"

	"github.com/yatrarides/booking-api/internal/domain/entity"
)

// BookingRepository defines the interface for booking persistence.
type BookingRepository interface {
	// Create inserts a booking and fills in ID and CreatedAt.
	Create(ctx context.Context, b *entity.Booking) error
	// ListByUser returns every booking owned by the given user.
	ListByUser(ctx context.Context, userID int64) ([]entity.Booking, error)
}
