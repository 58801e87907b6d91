package application

import (
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/yatrarides/booking-api/internal/domain/entity"
	repo "github.com/yatrarides/booking-api/internal/domain/repository"
	"github.com/yatrarides/booking-api/pkg/helpers"
)

// VerificationMailer sends the verification link for a freshly issued
// token. The outbound mail transport stays behind this interface so
// the core is testable without Mailgun.
type VerificationMailer interface {
	SendVerification(ctx context.Context, to, token string) error
}

// Principal is the identity attached to a request after successful
// session validation.
type Principal struct {
	UserID int64
	Email  string
}

// AuthService orchestrates signup, verification, login and session
// validation. All collaborators are injected.
type AuthService struct {
	Users  repo.UserRepository
	Tokens *helpers.TokenManager
	Mailer VerificationMailer
	Logger *logrus.Logger
}

func NewAuthService(users repo.UserRepository, tokens *helpers.TokenManager, mailer VerificationMailer, logger *logrus.Logger) *AuthService {
	return &AuthService{Users: users, Tokens: tokens, Mailer: mailer, Logger: logger}
}

// Signup creates an unverified account and mails the verification
// link. A mail transport failure is returned as-is (internal error to
// the caller); the account row is intentionally not rolled back, so
// the user stays unverified until an operator resends the link.
func (s *AuthService) Signup(ctx context.Context, email, password string) (*entity.User, error) {
	hash, err := helpers.HashPassword(password)
	if err != nil {
		return nil, err
	}

	token, _, err := s.Tokens.GenerateVerificationToken(email)
	if err != nil {
		return nil, err
	}

	u := &entity.User{
		Email:             email,
		PasswordHash:      hash,
		IsVerified:        false,
		VerificationToken: &token,
	}
	if err := s.Users.Create(ctx, u); err != nil {
		if errors.Is(err, repo.ErrDuplicateEmail) {
			return nil, ErrDuplicateEmail
		}
		return nil, err
	}

	if err := s.Mailer.SendVerification(ctx, email, token); err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("user_id", u.ID).Error("verification mail send failed; account left unverified")
		}
		return nil, err
	}

	return u, nil
}

// VerifyEmail consumes a verification token. The update matches both
// the email decoded from the token and the exact stored token, which
// makes verification single-use even while the signature itself is
// still valid.
func (s *AuthService) VerifyEmail(ctx context.Context, token string) error {
	claims, err := s.Tokens.ParseVerificationToken(token)
	if err != nil {
		return ErrInvalidToken
	}

	if err := s.Users.ConsumeVerificationToken(ctx, claims.Email, token); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return ErrInvalidToken
		}
		return err
	}
	return nil
}

// Login checks credentials and issues a session token. Unknown email
// and wrong password collapse into ErrInvalidCredentials; only the
// unverified state is reported distinctly.
func (s *AuthService) Login(ctx context.Context, email, password string) (*entity.User, string, time.Time, error) {
	u, err := s.Users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, "", time.Time{}, ErrInvalidCredentials
		}
		return nil, "", time.Time{}, err
	}
	if !u.IsVerified {
		return nil, "", time.Time{}, ErrEmailNotVerified
	}
	if !helpers.CompareHashAndPassword(u.PasswordHash, password) {
		return nil, "", time.Time{}, ErrInvalidCredentials
	}

	token, exp, err := s.Tokens.GenerateSessionToken(u.ID, u.Email)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("user_id", u.ID).Error("generate session token failed")
		}
		return nil, "", time.Time{}, err
	}
	return u, token, exp, nil
}

// CheckSession reports whether the given session token is valid. It
// never returns an error; an empty or invalid token is simply not a
// session.
func (s *AuthService) CheckSession(token string) (Principal, bool) {
	if token == "" {
		return Principal{}, false
	}
	claims, err := s.Tokens.ParseSessionToken(token)
	if err != nil {
		return Principal{}, false
	}
	return Principal{UserID: claims.UserID, Email: claims.Email}, true
}
