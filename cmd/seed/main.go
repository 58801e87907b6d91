package main

import (
	"database/sql"
	"fmt"
	"log"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"github.com/yatrarides/booking-api/config"
	"github.com/yatrarides/booking-api/pkg/helpers"
)

// Seeds a verified demo account plus one booking for local development.
func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	db, err := sql.Open("pgx", cfg.PostgresDSN())
	if err != nil {
		log.Fatalf("failed to open db: %v", err)
	}
	defer func() { _ = db.Close() }()

	email := "demo@yatra.local"
	password := "password123"
	hash, err := helpers.HashPassword(password)
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}

	var id int64
	err = db.QueryRow(`
		INSERT INTO users (email, password_hash, is_verified, verification_token)
		VALUES ($1, $2, TRUE, NULL)
		ON CONFLICT (email) DO UPDATE SET is_verified = TRUE, verification_token = NULL
		RETURNING id
	`, email, hash).Scan(&id)
	if err != nil {
		log.Fatalf("failed to seed user: %v", err)
	}
	fmt.Printf("seeded user: id=%d email=%s password=%s\n", id, email, password)

	var bookingID int64
	err = db.QueryRow(`
		INSERT INTO bookings (customer_name, pickup_location, dropoff_location, phone, status, user_id)
		VALUES ('Demo Rider', 'Railway Station', 'City Centre', '+910000000000', 'Pending', $1)
		RETURNING id
	`, id).Scan(&bookingID)
	if err != nil {
		log.Fatalf("failed to seed booking: %v", err)
	}
	fmt.Printf("seeded booking: id=%d user_id=%d\n", bookingID, id)
}
