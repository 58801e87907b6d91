package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/yatrarides/booking-api/internal/domain/entity"
	"github.com/yatrarides/booking-api/internal/domain/repository"
)

type BookingRepository struct {
	pool *pgxpool.Pool
}

func NewBookingRepository(pool *pgxpool.Pool) *BookingRepository {
	return &BookingRepository{pool: pool}
}

func (r *BookingRepository) Create(ctx context.Context, b *entity.Booking) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO bookings (customer_name, pickup_location, dropoff_location, phone, status, user_id)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at
	`, b.CustomerName, b.PickupLocation, b.DropoffLocation, b.Phone, b.Status, b.UserID)

	return row.Scan(&b.ID, &b.CreatedAt)
}

func (r *BookingRepository) ListByUser(ctx context.Context, userID int64) ([]entity.Booking, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, customer_name, pickup_location, dropoff_location, phone, status, user_id, created_at
		FROM bookings
		WHERE user_id = $1
		ORDER BY created_at DESC
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]entity.Booking, 0)
	for rows.Next() {
		var b entity.Booking
		if err := rows.Scan(&b.ID, &b.CustomerName, &b.PickupLocation, &b.DropoffLocation,
			&b.Phone, &b.Status, &b.UserID, &b.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

var _ repository.BookingRepository = (*BookingRepository)(nil)
