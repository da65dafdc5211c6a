package service

import (
	"context"

	"excursion-booking/internal/entity"
)

// AuthService establishes who the caller is. Session issuance lives in the
// transport layer; services only produce the principal.
type AuthService interface {
	Register(ctx context.Context, req *RegisterRequest) (*entity.Principal, error)
	Login(ctx context.Context, req *LoginRequest) (*entity.Principal, error)
	GetUser(ctx context.Context, id int64) (*entity.User, error)
}

// CatalogService covers the visitor-facing excursion views.
type CatalogService interface {
	Search(ctx context.Context, filter *CatalogFilter) (*CatalogPage, error)
	Featured(ctx context.Context, limit int) ([]*entity.ExcursionWithAvailability, error)
	GetExcursion(ctx context.Context, id int64) (*entity.ExcursionWithAvailability, error)
}

// ExcursionService covers the admin-side listing management.
type ExcursionService interface {
	CreateExcursion(ctx context.Context, req *SaveExcursionRequest) (*entity.Excursion, error)
	UpdateExcursion(ctx context.Context, id int64, req *SaveExcursionRequest) (*entity.Excursion, error)
	DeleteExcursion(ctx context.Context, id int64) error
}

// BookingService is the booking lifecycle: create, user cancel, admin
// confirm/reject.
type BookingService interface {
	CreateBooking(ctx context.Context, principal *entity.Principal, req *CreateBookingRequest) (*entity.Booking, error)

	// CancelBooking reports false when there was nothing to cancel; that is
	// not an error.
	CancelBooking(ctx context.Context, principal *entity.Principal, bookingID int64) (bool, error)

	UserBookings(ctx context.Context, principal *entity.Principal) ([]*entity.Booking, error)

	ConfirmBooking(ctx context.Context, bookingID int64) error
	RejectBooking(ctx context.Context, bookingID int64) error
	AllBookings(ctx context.Context) ([]*entity.Booking, error)
}

// StatsService aggregates the admin dashboard numbers.
type StatsService interface {
	DashboardStats(ctx context.Context) (*entity.DashboardStats, error)
}
