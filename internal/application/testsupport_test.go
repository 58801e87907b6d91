package application

import (
	"context"
	"errors"
	"io"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/yatrarides/booking-api/internal/domain/entity"
	repo "github.com/yatrarides/booking-api/internal/domain/repository"
)

// In-memory substitutes for the datastore and the mail transport.

type memUserRepo struct {
	mu    sync.Mutex
	seq   int64
	users map[string]*entity.User // keyed by email, exact match
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: make(map[string]*entity.User)}
}

func (r *memUserRepo) Create(_ context.Context, u *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[u.Email]; ok {
		return repo.ErrDuplicateEmail
	}
	r.seq++
	u.ID = r.seq
	u.CreatedAt = time.Now()
	cp := *u
	r.users[u.Email] = &cp
	return nil
}

func (r *memUserRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[email]
	if !ok {
		return nil, repo.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (r *memUserRepo) ConsumeVerificationToken(_ context.Context, email, token string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[email]
	if !ok || u.VerificationToken == nil || *u.VerificationToken != token {
		return repo.ErrNotFound
	}
	u.IsVerified = true
	u.VerificationToken = nil
	return nil
}

type memBookingRepo struct {
	mu       sync.Mutex
	seq      int64
	bookings []entity.Booking
}

func newMemBookingRepo() *memBookingRepo {
	return &memBookingRepo{}
}

func (r *memBookingRepo) Create(_ context.Context, b *entity.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	b.ID = r.seq
	b.CreatedAt = time.Now()
	r.bookings = append(r.bookings, *b)
	return nil
}

func (r *memBookingRepo) ListByUser(_ context.Context, userID int64) ([]entity.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]entity.Booking, 0)
	for _, b := range r.bookings {
		if b.UserID == userID {
			out = append(out, b)
		}
	}
	return out, nil
}

// failingUserReads simulates a datastore outage on reads.
type failingUserReads struct {
	repo.UserRepository
}

func (failingUserReads) GetByEmail(context.Context, string) (*entity.User, error) {
	return nil, errors.New("connection refused")
}

type fakeMailer struct {
	mu     sync.Mutex
	sent   map[string]string // email -> last token
	broken bool
}

func newFakeMailer() *fakeMailer {
	return &fakeMailer{sent: make(map[string]string)}
}

func (m *fakeMailer) SendVerification(_ context.Context, to, token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.broken {
		return errors.New("mail transport down")
	}
	m.sent[to] = token
	return nil
}

func (m *fakeMailer) lastToken(to string) string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.sent[to]
}

func quietLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}
