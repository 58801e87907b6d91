package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"github.com/yatrarides/booking-api/internal/application"
	"github.com/yatrarides/booking-api/internal/domain/entity"
	repo "github.com/yatrarides/booking-api/internal/domain/repository"
	handlers "github.com/yatrarides/booking-api/internal/interface/http"
	"github.com/yatrarides/booking-api/internal/router"
	"github.com/yatrarides/booking-api/internal/router/modules"
	"github.com/yatrarides/booking-api/pkg/helpers"
	"github.com/yatrarides/booking-api/pkg/validation"
)

const testSecret = "test-secret"

// In-memory stand-ins for the datastore and mail transport; the wiring
// is otherwise the production one.

type memUserRepo struct {
	mu    sync.Mutex
	seq   int64
	users map[string]*entity.User
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

type memContactRepo struct {
	mu       sync.Mutex
	seq      int64
	messages []entity.ContactMessage
}

func (r *memContactRepo) Create(_ context.Context, m *entity.ContactMessage) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	m.ID = r.seq
	m.CreatedAt = time.Now()
	r.messages = append(r.messages, *m)
	return nil
}

type fakeMailer struct {
	mu     sync.Mutex
	sent   map[string]string
	broken bool
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

type testServer struct {
	engine *gin.Engine
	mailer *fakeMailer
	tokens *helpers.TokenManager
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)
	validation.Init()

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	tokens := helpers.NewTokenManager(testSecret, time.Hour, 24*time.Hour)
	mailer := &fakeMailer{sent: make(map[string]string)}

	authSvc := application.NewAuthService(&memUserRepo{users: make(map[string]*entity.User)}, tokens, mailer, logger)
	bookingSvc := application.NewBookingService(&memBookingRepo{})
	contactSvc := application.NewContactService(&memContactRepo{})

	authHandler := handlers.NewAuthHandler(authSvc, logger, "localhost", false)
	bookingHandler := handlers.NewBookingHandler(bookingSvc, logger)
	contactHandler := handlers.NewContactHandler(contactSvc, logger)

	engine := gin.New()
	reg := router.NewRegistry(engine)
	reg.Add(modules.NewAuthModule(authHandler, nil))
	reg.Add(modules.NewBookingModule(bookingHandler, tokens))
	reg.Add(modules.NewContactModule(contactHandler, nil))
	reg.RegisterAll()

	return &testServer{engine: engine, mailer: mailer, tokens: tokens}
}

type envelope struct {
	Status  int             `json:"status"`
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   json.RawMessage `json:"error"`
}

func (s *testServer) do(t *testing.T, method, path string, body any, cookies ...*http.Cookie) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		rd = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, rd)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, c := range cookies {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()
	s.engine.ServeHTTP(w, req)

	var env envelope
	if w.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	}
	return w, env
}

// signupAndVerify walks an account through signup and verification.
func (s *testServer) signupAndVerify(t *testing.T, email, password string) {
	t.Helper()
	w, _ := s.do(t, http.MethodPost, "/api/signup", gin.H{"email": email, "password": password})
	require.Equal(t, http.StatusCreated, w.Code)

	token := s.mailer.lastToken(email)
	require.NotEmpty(t, token)
	w, _ = s.do(t, http.MethodGet, "/api/verify-email?token="+token, nil)
	require.Equal(t, http.StatusOK, w.Code)
}

// login returns the session cookie for an already verified account.
func (s *testServer) login(t *testing.T, email, password string) *http.Cookie {
	t.Helper()
	w, _ := s.do(t, http.MethodPost, "/api/login", gin.H{"email": email, "password": password})
	require.Equal(t, http.StatusOK, w.Code)
	for _, c := range w.Result().Cookies() {
		if c.Name == helpers.SessionCookieName {
			return c
		}
	}
	t.Fatal("session cookie not set")
	return nil
}
