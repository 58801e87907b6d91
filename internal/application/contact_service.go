package application

import (
	"context"

	"github.com/yatrarides/booking-api/internal/domain/entity"
	repo "github.com/yatrarides/booking-api/internal/domain/repository"
)

// ContactService stores contact messages from anonymous visitors.
type ContactService struct {
	Contacts repo.ContactRepository
}

func NewContactService(contacts repo.ContactRepository) *ContactService {
	return &ContactService{Contacts: contacts}
}

func (s *ContactService) Submit(ctx context.Context, name, email, message string) (*entity.ContactMessage, error) {
	m := &entity.ContactMessage{Name: name, Email: email, Message: message}
	if err := s.Contacts.Create(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}
