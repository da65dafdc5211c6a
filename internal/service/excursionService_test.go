package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"excursion-booking/internal/entity"
)

func TestCreateExcursionStartsEmpty(t *testing.T) {
	f := newFixture(t)

	excursion, err := f.excursion.CreateExcursion(context.Background(), &SaveExcursionRequest{
		Title:      "Old Town Walk",
		Price:      500,
		SeatsTotal: 10,
	})
	require.NoError(t, err)
	assert.Equal(t, 0, excursion.SeatsBooked)
	assert.NotZero(t, excursion.ID)
}

func TestUpdateExcursionPreservesSeatsBooked(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	excursion := f.addExcursion(t, "Old Town Walk", 500, 10)
	_, err := f.booking.CreateBooking(ctx, principal(1, "Anna"), &CreateBookingRequest{ExcursionID: excursion.ID, Count: 4})
	require.NoError(t, err)

	updated, err := f.excursion.UpdateExcursion(ctx, excursion.ID, &SaveExcursionRequest{
		Title:      "Old Town Walk, extended",
		Price:      600,
		SeatsTotal: 8,
		Category:   "city",
	})
	require.NoError(t, err)
	assert.Equal(t, 4, updated.SeatsBooked)
	assert.Equal(t, 8, updated.SeatsTotal)
	assert.Equal(t, "Old Town Walk, extended", updated.Title)
}

// Shrinking capacity below what is already booked would break the seat
// invariant, so the edit is rejected.
func TestUpdateExcursionRejectsCapacityBelowBooked(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	excursion := f.addExcursion(t, "Old Town Walk", 500, 10)
	_, err := f.booking.CreateBooking(ctx, principal(1, "Anna"), &CreateBookingRequest{ExcursionID: excursion.ID, Count: 4})
	require.NoError(t, err)

	_, err = f.excursion.UpdateExcursion(ctx, excursion.ID, &SaveExcursionRequest{
		Title:      "Old Town Walk",
		Price:      500,
		SeatsTotal: 3,
		Category:   "city",
	})
	assert.ErrorIs(t, err, entity.ErrValidation)
}

func TestUpdateExcursionBlankImageKeepsPrevious(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	excursion, err := f.excursion.CreateExcursion(ctx, &SaveExcursionRequest{
		Title:      "Old Town Walk",
		Price:      500,
		SeatsTotal: 10,
		Image:      "/img/walk.jpg",
	})
	require.NoError(t, err)

	updated, err := f.excursion.UpdateExcursion(ctx, excursion.ID, &SaveExcursionRequest{
		Title:      "Old Town Walk",
		Price:      500,
		SeatsTotal: 10,
	})
	require.NoError(t, err)
	assert.Equal(t, "/img/walk.jpg", updated.Image)

	updated, err = f.excursion.UpdateExcursion(ctx, excursion.ID, &SaveExcursionRequest{
		Title:      "Old Town Walk",
		Price:      500,
		SeatsTotal: 10,
		Image:      "/img/new.jpg",
	})
	require.NoError(t, err)
	assert.Equal(t, "/img/new.jpg", updated.Image)
}

func TestDeleteExcursion(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	excursion := f.addExcursion(t, "Old Town Walk", 500, 10)

	require.NoError(t, f.excursion.DeleteExcursion(ctx, excursion.ID))

	_, err := f.catalog.GetExcursion(ctx, excursion.ID)
	assert.ErrorIs(t, err, entity.ErrExcursionNotFound)

	err = f.excursion.DeleteExcursion(ctx, excursion.ID)
	assert.ErrorIs(t, err, entity.ErrExcursionNotFound)
}
