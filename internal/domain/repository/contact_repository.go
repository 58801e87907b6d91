package repository

import (
	"context"

	"github.com/yatrarides/booking-api/internal/domain/entity"
)

// ContactRepository stores contact messages. Pass-through only.
type ContactRepository interface {
	Create(ctx context.Context, m *entity.ContactMessage) error
}
