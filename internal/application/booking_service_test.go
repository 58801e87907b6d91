package application

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yatrarides/booking-api/internal/domain/entity"
)

func TestCreateBookingForcesOwnershipAndStatus(t *testing.T) {
	svc := NewBookingService(newMemBookingRepo())
	ctx := context.Background()

	b, err := svc.Create(ctx, Principal{UserID: 7, Email: "a@x.com"}, BookingInput{
		CustomerName:    "Sam",
		PickupLocation:  "Station",
		DropoffLocation: "Market",
		Phone:           "12345",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(7), b.UserID)
	assert.Equal(t, entity.StatusPending, b.Status)
	assert.NotZero(t, b.ID)
}

func TestListOwnedIsIsolatedPerUser(t *testing.T) {
	repo := newMemBookingRepo()
	svc := NewBookingService(repo)
	ctx := context.Background()

	alice := Principal{UserID: 1, Email: "alice@x.com"}
	bob := Principal{UserID: 2, Email: "bob@x.com"}

	_, err := svc.Create(ctx, alice, BookingInput{CustomerName: "Alice", PickupLocation: "A", DropoffLocation: "B", Phone: "1"})
	require.NoError(t, err)
	_, err = svc.Create(ctx, bob, BookingInput{CustomerName: "Bob", PickupLocation: "C", DropoffLocation: "D", Phone: "2"})
	require.NoError(t, err)
	_, err = svc.Create(ctx, bob, BookingInput{CustomerName: "Bob", PickupLocation: "E", DropoffLocation: "F", Phone: "2"})
	require.NoError(t, err)

	got, err := svc.ListOwned(ctx, alice)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, int64(1), got[0].UserID)

	got, err = svc.ListOwned(ctx, bob)
	require.NoError(t, err)
	require.Len(t, got, 2)
	for _, b := range got {
		assert.Equal(t, int64(2), b.UserID)
	}
}

func TestListOwnedEmpty(t *testing.T) {
	svc := NewBookingService(newMemBookingRepo())

	got, err := svc.ListOwned(context.Background(), Principal{UserID: 9})
	require.NoError(t, err)
	assert.Empty(t, got)
}
