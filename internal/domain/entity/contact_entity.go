package entity

import (
	"time"
)

// ContactMessage is a message left by an anonymous visitor.
// Stored as-is, no workflow attached.
type ContactMessage struct {
	ID        int64
	Name      string
	Email     string
	Message   string
	CreatedAt time.Time
}
