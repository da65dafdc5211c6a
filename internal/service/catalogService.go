package service

import (
	"context"
	"fmt"
	"sort"
	"strings"

	repository "excursion-booking/internal/database/jsonfile"
	"excursion-booking/internal/entity"
)

// CatalogFilter composes with logical AND: exact category match plus
// case-insensitive substring match on title or description.
type CatalogFilter struct {
	Category string `form:"category"`
	Search   string `form:"search"`
}

// CatalogPage carries the filtered excursions together with the category
// set of the full, unfiltered collection (the UI filter options must not
// shrink when a filter is applied).
type CatalogPage struct {
	Excursions []*entity.ExcursionWithAvailability `json:"excursions"`
	Categories []string                            `json:"categories"`
}

type catalogService struct {
	excursionRepo repository.ExcursionRepository
}

func NewCatalogService(excursionRepo repository.ExcursionRepository) CatalogService {
	return &catalogService{excursionRepo: excursionRepo}
}

func (s *catalogService) Search(ctx context.Context, filter *CatalogFilter) (*CatalogPage, error) {
	excursions, err := s.excursionRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load excursions: %w", err)
	}

	search := strings.ToLower(strings.TrimSpace(filter.Search))

	page := &CatalogPage{
		Excursions: make([]*entity.ExcursionWithAvailability, 0, len(excursions)),
		Categories: distinctCategories(excursions),
	}

	for _, e := range excursions {
		if filter.Category != "" && e.Category != filter.Category {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(e.Title), search) &&
			!strings.Contains(strings.ToLower(e.Description), search) {
			continue
		}
		page.Excursions = append(page.Excursions, e.WithAvailability())
	}

	return page, nil
}

func (s *catalogService) Featured(ctx context.Context, limit int) ([]*entity.ExcursionWithAvailability, error) {
	excursions, err := s.excursionRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load excursions: %w", err)
	}

	if limit > 0 && len(excursions) > limit {
		excursions = excursions[:limit]
	}

	featured := make([]*entity.ExcursionWithAvailability, 0, len(excursions))
	for _, e := range excursions {
		featured = append(featured, e.WithAvailability())
	}
	return featured, nil
}

func (s *catalogService) GetExcursion(ctx context.Context, id int64) (*entity.ExcursionWithAvailability, error) {
	excursion, err := s.excursionRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return excursion.WithAvailability(), nil
}

func distinctCategories(excursions []*entity.Excursion) []string {
	seen := make(map[string]struct{})
	categories := make([]string, 0)
	for _, e := range excursions {
		if e.Category == "" {
			continue
		}
		if _, ok := seen[e.Category]; ok {
			continue
		}
		seen[e.Category] = struct{}{}
		categories = append(categories, e.Category)
	}
	sort.Strings(categories)
	return categories
}
