package repository

import (
	"context"
	"fmt"

	"excursion-booking/internal/entity"
	"excursion-booking/pkg/jsondb"
)

type excursionRepository struct {
	store *jsondb.Store
}

func NewExcursionRepository(store *jsondb.Store) ExcursionRepository {
	return &excursionRepository{store: store}
}

func (r *excursionRepository) Create(ctx context.Context, excursion *entity.Excursion) error {
	return r.store.Update(func(tx *jsondb.Tx) error {
		var excursions []*entity.Excursion
		if err := tx.Read(excursionsCollection, &excursions); err != nil {
			return err
		}

		ids := make([]int64, 0, len(excursions))
		for _, e := range excursions {
			ids = append(ids, e.ID)
		}
		excursion.ID = nextID(ids)

		excursions = append(excursions, excursion)
		return tx.Write(excursionsCollection, excursions)
	})
}

func (r *excursionRepository) GetByID(ctx context.Context, id int64) (*entity.Excursion, error) {
	var excursions []*entity.Excursion
	if err := r.store.View(excursionsCollection, &excursions); err != nil {
		return nil, err
	}
	for _, e := range excursions {
		if e.ID == id {
			return e, nil
		}
	}
	return nil, entity.ErrExcursionNotFound
}

func (r *excursionRepository) GetAll(ctx context.Context) ([]*entity.Excursion, error) {
	var excursions []*entity.Excursion
	if err := r.store.View(excursionsCollection, &excursions); err != nil {
		return nil, err
	}
	return excursions, nil
}

// Update rewrites the excursion but keeps the stored seat counter; bookings
// created while the edit was in flight are never lost. The capacity check
// runs against the stored counter inside the same locked cycle.
func (r *excursionRepository) Update(ctx context.Context, excursion *entity.Excursion) error {
	return r.store.Update(func(tx *jsondb.Tx) error {
		var excursions []*entity.Excursion
		if err := tx.Read(excursionsCollection, &excursions); err != nil {
			return err
		}
		for i, e := range excursions {
			if e.ID == excursion.ID {
				if excursion.SeatsTotal < e.SeatsBooked {
					return fmt.Errorf("%w: seats_total cannot drop below the %d already booked seats",
						entity.ErrValidation, e.SeatsBooked)
				}
				excursion.SeatsBooked = e.SeatsBooked
				excursions[i] = excursion
				return tx.Write(excursionsCollection, excursions)
			}
		}
		return entity.ErrExcursionNotFound
	})
}

// Delete removes the excursion only. Bookings referencing it survive; there
// is no cascade.
func (r *excursionRepository) Delete(ctx context.Context, id int64) error {
	return r.store.Update(func(tx *jsondb.Tx) error {
		var excursions []*entity.Excursion
		if err := tx.Read(excursionsCollection, &excursions); err != nil {
			return err
		}
		kept := excursions[:0]
		for _, e := range excursions {
			if e.ID != id {
				kept = append(kept, e)
			}
		}
		if len(kept) == len(excursions) {
			return entity.ErrExcursionNotFound
		}
		return tx.Write(excursionsCollection, kept)
	})
}

func (r *excursionRepository) UpdateSeatsBooked(ctx context.Context, id int64, seatsBooked int) error {
	return r.store.Update(func(tx *jsondb.Tx) error {
		var excursions []*entity.Excursion
		if err := tx.Read(excursionsCollection, &excursions); err != nil {
			return err
		}
		for _, e := range excursions {
			if e.ID == id {
				e.SeatsBooked = seatsBooked
				return tx.Write(excursionsCollection, excursions)
			}
		}
		return entity.ErrExcursionNotFound
	})
}
