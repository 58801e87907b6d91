package repository

import (
	"context"
	"errors"

	"github.com/yatrarides/booking-api/internal/domain/entity"
)

var (
	// ErrNotFound is returned when no row matches the predicate.
	ErrNotFound = errors.New("not found")
	// ErrDuplicateEmail is returned when an insert violates the unique
	// constraint on users.email. It is the only store error handlers
	// are allowed to special-case.
	ErrDuplicateEmail = errors.New("email already registered")
)

// UserRepository defines the interface for account persistence.
type UserRepository interface {
	// Create inserts an unverified user and fills in ID and CreatedAt.
	Create(ctx context.Context, u *entity.User) error
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	// ConsumeVerificationToken atomically marks the user matching both
	// email and the exact stored token as verified, clearing the token.
	// Returns ErrNotFound when no row matched (already consumed,
	// superseded, or unknown).
	ConsumeVerificationToken(ctx context.Context, email, token string) error
}
