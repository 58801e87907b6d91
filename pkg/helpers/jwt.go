package helpers

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken is the single error returned for every token
// verification failure: bad signature, malformed structure, expired,
// or wrong purpose. Callers must not be able to tell these apart.
var ErrInvalidToken = errors.New("invalid token")

const (
	purposeSession = "session"
	purposeVerify  = "email_verify"
)

// TokenManager signs and verifies the two token kinds used by the
// service: session tokens and email-verification tokens. Both are
// HS256 over one process-wide secret; a purpose claim keeps one kind
// from standing in for the other.
type TokenManager struct {
	secret     []byte
	SessionTTL time.Duration
	VerifyTTL  time.Duration
}

func NewTokenManager(secret string, sessionTTL, verifyTTL time.Duration) *TokenManager {
	return &TokenManager{
		secret:     []byte(secret),
		SessionTTL: sessionTTL,
		VerifyTTL:  verifyTTL,
	}
}

// SessionClaims is the payload of a session token: the authenticated
// principal plus standard registered claims.
type SessionClaims struct {
	UserID  int64  `json:"uid"`
	Email   string `json:"email"`
	Purpose string `json:"purpose"`
	jwt.RegisteredClaims
}

// VerifyClaims is the payload of an email-verification token.
type VerifyClaims struct {
	Email   string `json:"email"`
	Purpose string `json:"purpose"`
	jwt.RegisteredClaims
}

func (m *TokenManager) GenerateSessionToken(userID int64, email string) (string, time.Time, error) {
	exp := time.Now().Add(m.SessionTTL)
	claims := &SessionClaims{
		UserID:  userID,
		Email:   email,
		Purpose: purposeSession,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(exp),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	s, err := t.SignedString(m.secret)
	return s, exp, err
}

func (m *TokenManager) GenerateVerificationToken(email string) (string, time.Time, error) {
	exp := time.Now().Add(m.VerifyTTL)
	claims := &VerifyClaims{
		Email:   email,
		Purpose: purposeVerify,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(exp),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	s, err := t.SignedString(m.secret)
	return s, exp, err
}

func (m *TokenManager) ParseSessionToken(tokenStr string) (*SessionClaims, error) {
	claims := &SessionClaims{}
	if err := m.parse(tokenStr, claims); err != nil {
		return nil, ErrInvalidToken
	}
	if claims.Purpose != purposeSession {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

func (m *TokenManager) ParseVerificationToken(tokenStr string) (*VerifyClaims, error) {
	claims := &VerifyClaims{}
	if err := m.parse(tokenStr, claims); err != nil {
		return nil, ErrInvalidToken
	}
	if claims.Purpose != purposeVerify {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

func (m *TokenManager) parse(tokenStr string, claims jwt.Claims) error {
	tkn, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return m.secret, nil
	})
	if err != nil {
		return err
	}
	if !tkn.Valid {
		return errors.New("invalid token")
	}
	return nil
}
