package service

import (
	"context"
	"fmt"

	repository "excursion-booking/internal/database/jsonfile"
	"excursion-booking/internal/entity"
)

type statsService struct {
	userRepo      repository.UserRepository
	excursionRepo repository.ExcursionRepository
	bookingRepo   repository.BookingRepository
}

func NewStatsService(
	userRepo repository.UserRepository,
	excursionRepo repository.ExcursionRepository,
	bookingRepo repository.BookingRepository,
) StatsService {
	return &statsService{
		userRepo:      userRepo,
		excursionRepo: excursionRepo,
		bookingRepo:   bookingRepo,
	}
}

func (s *statsService) DashboardStats(ctx context.Context) (*entity.DashboardStats, error) {
	excursions, err := s.excursionRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load excursions: %w", err)
	}
	bookings, err := s.bookingRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load bookings: %w", err)
	}
	users, err := s.userRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load users: %w", err)
	}

	stats := &entity.DashboardStats{
		TotalExcursions: len(excursions),
		TotalBookings:   len(bookings),
	}

	for _, b := range bookings {
		switch b.Status {
		case entity.BookingStatusPending:
			stats.Pending++
		case entity.BookingStatusConfirmed:
			stats.Confirmed++
			stats.Revenue += b.TotalPrice
		case entity.BookingStatusCancelled:
			stats.Cancelled++
		}
	}

	for _, u := range users {
		if u.Role != entity.RoleAdmin {
			stats.TotalUsers++
		}
	}

	return stats, nil
}
