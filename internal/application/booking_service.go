package application

import (
	"context"

	"github.com/yatrarides/booking-api/internal/domain/entity"
	repo "github.com/yatrarides/booking-api/internal/domain/repository"
)

// BookingInput carries the client-supplied booking fields. Ownership
// and status are never part of it.
type BookingInput struct {
	CustomerName    string
	PickupLocation  string
	DropoffLocation string
	Phone           string
}

// BookingService enforces the ownership rule: bookings are created
// for and listed by the authenticated principal only.
type BookingService struct {
	Bookings repo.BookingRepository
}

func NewBookingService(bookings repo.BookingRepository) *BookingService {
	return &BookingService{Bookings: bookings}
}

// Create stores a booking owned by p. The owner id always comes from
// the principal, regardless of anything in the request body.
func (s *BookingService) Create(ctx context.Context, p Principal, in BookingInput) (*entity.Booking, error) {
	b := &entity.Booking{
		CustomerName:    in.CustomerName,
		PickupLocation:  in.PickupLocation,
		DropoffLocation: in.DropoffLocation,
		Phone:           in.Phone,
		Status:          entity.StatusPending,
		UserID:          p.UserID,
	}
	if err := s.Bookings.Create(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

// ListOwned returns every booking owned by p and nothing else.
func (s *BookingService) ListOwned(ctx context.Context, p Principal) ([]entity.Booking, error) {
	return s.Bookings.ListByUser(ctx, p.UserID)
}
