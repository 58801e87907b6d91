package entity

import (
	"time"
)

// StatusPending is the initial status of every new booking.
const StatusPending = "Pending"

// Booking is a ride request owned by exactly one account.
type Booking struct {
	ID              int64
	CustomerName    string
	PickupLocation  string
	DropoffLocation string
	Phone           string
	Status          string
	UserID          int64
	CreatedAt       time.Time
}
