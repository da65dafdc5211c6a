package repository

import (
	"context"

	"excursion-booking/internal/entity"
	"excursion-booking/pkg/jsondb"
)

type bookingRepository struct {
	store *jsondb.Store
}

func NewBookingRepository(store *jsondb.Store) BookingRepository {
	return &bookingRepository{store: store}
}

func (r *bookingRepository) Create(ctx context.Context, booking *entity.Booking) error {
	return r.store.Update(func(tx *jsondb.Tx) error {
		var excursions []*entity.Excursion
		if err := tx.Read(excursionsCollection, &excursions); err != nil {
			return err
		}

		var excursion *entity.Excursion
		for _, e := range excursions {
			if e.ID == booking.ExcursionID {
				excursion = e
				break
			}
		}
		if excursion == nil {
			return entity.ErrExcursionNotFound
		}

		if booking.Count < 1 || booking.Count > excursion.AvailableSeats() {
			return entity.ErrNotEnoughSeats
		}

		var bookings []*entity.Booking
		if err := tx.Read(bookingsCollection, &bookings); err != nil {
			return err
		}

		// At most one non-cancelled booking per (user, excursion) pair.
		for _, b := range bookings {
			if b.UserID == booking.UserID && b.ExcursionID == booking.ExcursionID && b.IsActive() {
				return entity.ErrBookingAlreadyExists
			}
		}

		ids := make([]int64, 0, len(bookings))
		for _, b := range bookings {
			ids = append(ids, b.ID)
		}
		booking.ID = nextID(ids)

		// The seat increment is persisted before the booking append, so a
		// booking record never exists without its reservation.
		excursion.SeatsBooked += booking.Count
		if err := tx.Write(excursionsCollection, excursions); err != nil {
			return err
		}

		bookings = append(bookings, booking)
		return tx.Write(bookingsCollection, bookings)
	})
}

func (r *bookingRepository) CancelForUser(ctx context.Context, userID, bookingID int64) (bool, error) {
	cancelled := false
	err := r.store.Update(func(tx *jsondb.Tx) error {
		var bookings []*entity.Booking
		if err := tx.Read(bookingsCollection, &bookings); err != nil {
			return err
		}

		var booking *entity.Booking
		for _, b := range bookings {
			if b.ID == bookingID && b.UserID == userID {
				booking = b
				break
			}
		}
		if booking == nil || booking.Status == entity.BookingStatusCancelled {
			return nil
		}

		booking.Status = entity.BookingStatusCancelled

		var excursions []*entity.Excursion
		if err := tx.Read(excursionsCollection, &excursions); err != nil {
			return err
		}
		for _, e := range excursions {
			if e.ID == booking.ExcursionID {
				// Floored at zero so the counter never goes negative even
				// when the stored state has drifted.
				e.SeatsBooked -= booking.Count
				if e.SeatsBooked < 0 {
					e.SeatsBooked = 0
				}
				break
			}
		}

		if err := tx.Write(excursionsCollection, excursions); err != nil {
			return err
		}
		if err := tx.Write(bookingsCollection, bookings); err != nil {
			return err
		}
		cancelled = true
		return nil
	})
	return cancelled, err
}

func (r *bookingRepository) GetByID(ctx context.Context, id int64) (*entity.Booking, error) {
	var bookings []*entity.Booking
	if err := r.store.View(bookingsCollection, &bookings); err != nil {
		return nil, err
	}
	for _, b := range bookings {
		if b.ID == id {
			return b, nil
		}
	}
	return nil, entity.ErrBookingNotFound
}

func (r *bookingRepository) GetByUserID(ctx context.Context, userID int64) ([]*entity.Booking, error) {
	var bookings []*entity.Booking
	if err := r.store.View(bookingsCollection, &bookings); err != nil {
		return nil, err
	}
	var result []*entity.Booking
	for _, b := range bookings {
		if b.UserID == userID {
			result = append(result, b)
		}
	}
	return result, nil
}

func (r *bookingRepository) GetAll(ctx context.Context) ([]*entity.Booking, error) {
	var bookings []*entity.Booking
	if err := r.store.View(bookingsCollection, &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}

// UpdateStatus rewrites the booking status only. The seat counter is not
// touched here: admin confirm reserves nothing new, and admin reject keeps
// the seats occupied (observed behavior of the lifecycle).
func (r *bookingRepository) UpdateStatus(ctx context.Context, id int64, from, to entity.BookingStatus) error {
	return r.store.Update(func(tx *jsondb.Tx) error {
		var bookings []*entity.Booking
		if err := tx.Read(bookingsCollection, &bookings); err != nil {
			return err
		}
		for _, b := range bookings {
			if b.ID == id {
				if b.Status != from {
					return entity.ErrInvalidBookingStatus
				}
				b.Status = to
				return tx.Write(bookingsCollection, bookings)
			}
		}
		return entity.ErrBookingNotFound
	})
}
