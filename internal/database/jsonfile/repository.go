package repository

import (
	"context"

	"excursion-booking/internal/entity"
)

// Collection file names inside the data directory.
const (
	usersCollection      = "users"
	excursionsCollection = "excursions"
	bookingsCollection   = "bookings"
)

type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id int64) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	GetAll(ctx context.Context) ([]*entity.User, error)
}

type ExcursionRepository interface {
	Create(ctx context.Context, excursion *entity.Excursion) error
	GetByID(ctx context.Context, id int64) (*entity.Excursion, error)
	GetAll(ctx context.Context) ([]*entity.Excursion, error)

	// Update preserves the stored seat counter and rejects a seats_total
	// below it with ErrValidation, both inside the locked cycle.
	Update(ctx context.Context, excursion *entity.Excursion) error

	Delete(ctx context.Context, id int64) error

	// UpdateSeatsBooked overwrites the stored seat counter; used by the
	// audit worker when repair is enabled.
	UpdateSeatsBooked(ctx context.Context, id int64, seatsBooked int) error
}

type BookingRepository interface {
	// Create appends the booking and increments the excursion seat counter
	// in one locked cycle. The availability and duplicate-booking checks run
	// inside the same cycle, so a booking record is never persisted without
	// its seat reservation.
	Create(ctx context.Context, booking *entity.Booking) error

	// CancelForUser cancels the caller's booking and releases its seats,
	// floored at zero. Returns false without error when the booking does not
	// exist for that user or is already cancelled.
	CancelForUser(ctx context.Context, userID, bookingID int64) (bool, error)

	GetByID(ctx context.Context, id int64) (*entity.Booking, error)
	GetByUserID(ctx context.Context, userID int64) ([]*entity.Booking, error)
	GetAll(ctx context.Context) ([]*entity.Booking, error)

	// UpdateStatus moves the booking from one status to another. The check
	// runs inside the locked cycle, so a transition racing a cancel cannot
	// resurrect a cancelled booking. Returns ErrInvalidBookingStatus when
	// the stored status is not the expected one.
	UpdateStatus(ctx context.Context, id int64, from, to entity.BookingStatus) error
}

// nextID assigns monotonically increasing ids; unique because every
// assignment happens inside the store's exclusive cycle.
func nextID(ids []int64) int64 {
	var max int64
	for _, id := range ids {
		if id > max {
			max = id
		}
	}
	return max + 1
}
