package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	repository "excursion-booking/internal/database/jsonfile"
	"excursion-booking/internal/entity"
)

// SaveExcursionRequest is shared by create and edit. Malformed numeric
// input fails at binding time, before it reaches the service.
type SaveExcursionRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	Location    string `json:"location"`
	Date        string `json:"date"`
	Duration    string `json:"duration"`
	Price       int    `json:"price" binding:"min=0"`
	SeatsTotal  int    `json:"seats_total" binding:"required,min=1"`
	Image       string `json:"image"`
	AgeGroup    string `json:"age_group"`
	Category    string `json:"category"`
}

type excursionService struct {
	excursionRepo repository.ExcursionRepository
}

func NewExcursionService(excursionRepo repository.ExcursionRepository) ExcursionService {
	return &excursionService{excursionRepo: excursionRepo}
}

func (s *excursionService) CreateExcursion(ctx context.Context, req *SaveExcursionRequest) (*entity.Excursion, error) {
	excursion := &entity.Excursion{
		Title:       req.Title,
		Description: req.Description,
		Location:    req.Location,
		Date:        req.Date,
		Duration:    req.Duration,
		Price:       req.Price,
		SeatsTotal:  req.SeatsTotal,
		SeatsBooked: 0,
		Image:       req.Image,
		AgeGroup:    req.AgeGroup,
		Category:    req.Category,
	}

	if err := s.excursionRepo.Create(ctx, excursion); err != nil {
		return nil, fmt.Errorf("failed to create excursion: %w", err)
	}

	logrus.Infof("excursion created: id=%d title=%q", excursion.ID, excursion.Title)
	return excursion, nil
}

// UpdateExcursion never resets booked seats: the repository carries the
// stored counter over and validates the new capacity against it. A blank
// image keeps the previous one.
func (s *excursionService) UpdateExcursion(ctx context.Context, id int64, req *SaveExcursionRequest) (*entity.Excursion, error) {
	existing, err := s.excursionRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	updated := &entity.Excursion{
		ID:          existing.ID,
		Title:       req.Title,
		Description: req.Description,
		Location:    req.Location,
		Date:        req.Date,
		Duration:    req.Duration,
		Price:       req.Price,
		SeatsTotal:  req.SeatsTotal,
		Image:       existing.Image,
		AgeGroup:    req.AgeGroup,
		Category:    req.Category,
	}
	if img := strings.TrimSpace(req.Image); img != "" {
		updated.Image = img
	}

	if err := s.excursionRepo.Update(ctx, updated); err != nil {
		return nil, err
	}

	logrus.Infof("excursion updated: id=%d", updated.ID)
	return updated, nil
}

func (s *excursionService) DeleteExcursion(ctx context.Context, id int64) error {
	if err := s.excursionRepo.Delete(ctx, id); err != nil {
		return err
	}
	logrus.Infof("excursion deleted: id=%d", id)
	return nil
}
