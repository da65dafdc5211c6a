package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"excursion-booking/internal/entity"
)

func TestDashboardStatsEmpty(t *testing.T) {
	f := newFixture(t)

	stats, err := f.stats.DashboardStats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, &entity.DashboardStats{}, stats)
}

func TestDashboardStats(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.auth.Register(ctx, registerRequest())
	require.NoError(t, err)
	req := registerRequest()
	req.Email = "boris@example.com"
	_, err = f.auth.Register(ctx, req)
	require.NoError(t, err)

	// Admin accounts are excluded from the user count.
	require.NoError(t, f.users.Create(ctx, &entity.User{
		Name: "Admin", Email: "admin@example.com", Role: entity.RoleAdmin,
	}))

	excursion := f.addExcursion(t, "Old Town Walk", 500, 20)

	confirmed, err := f.booking.CreateBooking(ctx, principal(1, "Anna"), &CreateBookingRequest{ExcursionID: excursion.ID, Count: 2})
	require.NoError(t, err)
	require.NoError(t, f.booking.ConfirmBooking(ctx, confirmed.ID))

	_, err = f.booking.CreateBooking(ctx, principal(2, "Boris"), &CreateBookingRequest{ExcursionID: excursion.ID, Count: 1})
	require.NoError(t, err)

	rejected, err := f.booking.CreateBooking(ctx, principal(3, "Vera"), &CreateBookingRequest{ExcursionID: excursion.ID, Count: 4})
	require.NoError(t, err)
	require.NoError(t, f.booking.RejectBooking(ctx, rejected.ID))

	stats, err := f.stats.DashboardStats(ctx)
	require.NoError(t, err)

	assert.Equal(t, 1, stats.TotalExcursions)
	assert.Equal(t, 3, stats.TotalBookings)
	assert.Equal(t, 1, stats.Pending)
	assert.Equal(t, 1, stats.Confirmed)
	assert.Equal(t, 1, stats.Cancelled)
	assert.Equal(t, 2, stats.TotalUsers)

	// Revenue counts confirmed bookings only: 2 seats at 500 each.
	assert.Equal(t, 1000, stats.Revenue)
}
