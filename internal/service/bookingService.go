package service

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	repository "excursion-booking/internal/database/jsonfile"
	"excursion-booking/internal/entity"
)

// CreateBookingRequest carries the booking form fields. The excursion id
// comes from the URL, the user from the session principal.
type CreateBookingRequest struct {
	ExcursionID int64  `json:"-"`
	Count       int    `json:"count" binding:"required,min=1"`
	ChildName   string `json:"child_name"`
	Comment     string `json:"comment"`
}

type bookingService struct {
	bookingRepo   repository.BookingRepository
	excursionRepo repository.ExcursionRepository
}

func NewBookingService(
	bookingRepo repository.BookingRepository,
	excursionRepo repository.ExcursionRepository,
) BookingService {
	return &bookingService{
		bookingRepo:   bookingRepo,
		excursionRepo: excursionRepo,
	}
}

func (s *bookingService) CreateBooking(ctx context.Context, principal *entity.Principal, req *CreateBookingRequest) (*entity.Booking, error) {
	excursion, err := s.excursionRepo.GetByID(ctx, req.ExcursionID)
	if err != nil {
		return nil, err
	}

	booking := &entity.Booking{
		UserID:         principal.UserID,
		UserName:       principal.Name,
		ExcursionID:    excursion.ID,
		ExcursionTitle: excursion.Title,
		ExcursionDate:  excursion.Date,
		ExcursionPrice: excursion.Price,
		Count:          req.Count,
		TotalPrice:     excursion.Price * req.Count,
		ChildName:      req.ChildName,
		Comment:        req.Comment,
		Status:         entity.BookingStatusPending,
		CreatedAt:      entity.Now(),
	}

	// The repository re-checks availability and the one-active-booking rule
	// inside the locked write cycle.
	if err := s.bookingRepo.Create(ctx, booking); err != nil {
		return nil, err
	}

	logrus.Infof("booking created: id=%d excursion=%d user=%d count=%d",
		booking.ID, booking.ExcursionID, booking.UserID, booking.Count)
	return booking, nil
}

func (s *bookingService) CancelBooking(ctx context.Context, principal *entity.Principal, bookingID int64) (bool, error) {
	cancelled, err := s.bookingRepo.CancelForUser(ctx, principal.UserID, bookingID)
	if err != nil {
		return false, fmt.Errorf("failed to cancel booking: %w", err)
	}
	if cancelled {
		logrus.Infof("booking cancelled: id=%d user=%d", bookingID, principal.UserID)
	}
	return cancelled, nil
}

func (s *bookingService) UserBookings(ctx context.Context, principal *entity.Principal) ([]*entity.Booking, error) {
	bookings, err := s.bookingRepo.GetByUserID(ctx, principal.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load user bookings: %w", err)
	}
	return bookings, nil
}

// ConfirmBooking moves a pending booking to confirmed. Seats were already
// reserved at creation; confirmation changes status only. The pending gate
// lives in the repository's locked cycle.
func (s *bookingService) ConfirmBooking(ctx context.Context, bookingID int64) error {
	err := s.bookingRepo.UpdateStatus(ctx, bookingID, entity.BookingStatusPending, entity.BookingStatusConfirmed)
	if err != nil {
		return err
	}

	logrus.Infof("booking confirmed: id=%d", bookingID)
	return nil
}

// RejectBooking sets a pending booking to cancelled without releasing its
// seats. User-side cancellation frees seats, admin rejection does not;
// rejected bookings keep occupying inventory.
func (s *bookingService) RejectBooking(ctx context.Context, bookingID int64) error {
	err := s.bookingRepo.UpdateStatus(ctx, bookingID, entity.BookingStatusPending, entity.BookingStatusCancelled)
	if err != nil {
		return err
	}

	logrus.Infof("booking rejected: id=%d", bookingID)
	return nil
}

func (s *bookingService) AllBookings(ctx context.Context) ([]*entity.Booking, error) {
	bookings, err := s.bookingRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load bookings: %w", err)
	}
	return bookings, nil
}
