package entity

import (
	"time"
)

// User is the aggregate root for the account domain.
// PasswordHash holds a bcrypt digest and must never be logged or
// returned in API responses.
//
// Invariant: IsVerified == true implies VerificationToken == nil.
type User struct {
	ID                int64
	Email             string
	PasswordHash      string
	IsVerified        bool
	VerificationToken *string
	CreatedAt         time.Time
}
