package worker

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	repository "excursion-booking/internal/database/jsonfile"
)

// SeatAuditWorker periodically compares each excursion's stored seat
// counter with the sum over its non-cancelled bookings. Admin rejection
// keeps seats occupied, so drift between the two is an expected state;
// by default the worker only reports it. With repair enabled the counter
// is rewritten to the recomputed sum.
type SeatAuditWorker struct {
	excursionRepo repository.ExcursionRepository
	bookingRepo   repository.BookingRepository
	interval      time.Duration
	repair        bool
}

func NewSeatAuditWorker(
	excursionRepo repository.ExcursionRepository,
	bookingRepo repository.BookingRepository,
	interval time.Duration,
	repair bool,
) *SeatAuditWorker {
	return &SeatAuditWorker{
		excursionRepo: excursionRepo,
		bookingRepo:   bookingRepo,
		interval:      interval,
		repair:        repair,
	}
}

func (w *SeatAuditWorker) Start(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	logrus.Info("Seat audit worker started")

	for {
		select {
		case <-ctx.Done():
			logrus.Info("Seat audit worker stopped")
			return
		case <-ticker.C:
			w.audit(ctx)
		}
	}
}

func (w *SeatAuditWorker) audit(ctx context.Context) {
	bookings, err := w.bookingRepo.GetAll(ctx)
	if err != nil {
		logrus.Errorf("seat audit: failed to load bookings: %v", err)
		return
	}

	activeSeats := make(map[int64]int)
	for _, b := range bookings {
		if b.IsActive() {
			activeSeats[b.ExcursionID] += b.Count
		}
	}

	excursions, err := w.excursionRepo.GetAll(ctx)
	if err != nil {
		logrus.Errorf("seat audit: failed to load excursions: %v", err)
		return
	}

	drifted := 0
	for _, e := range excursions {
		expected := activeSeats[e.ID]
		if e.SeatsBooked == expected {
			continue
		}
		drifted++

		logrus.Warnf("seat audit: excursion %d has seats_booked=%d, active bookings hold %d",
			e.ID, e.SeatsBooked, expected)

		if !w.repair {
			continue
		}
		if err := w.excursionRepo.UpdateSeatsBooked(ctx, e.ID, expected); err != nil {
			logrus.Errorf("seat audit: failed to repair excursion %d: %v", e.ID, err)
			continue
		}
		logrus.Infof("seat audit: excursion %d repaired to seats_booked=%d", e.ID, expected)
	}

	if drifted == 0 {
		logrus.Debug("seat audit: no drift found")
	}
}
