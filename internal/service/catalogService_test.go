package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"excursion-booking/internal/entity"
)

func seedCatalog(t *testing.T, f *fixture) {
	t.Helper()
	ctx := context.Background()
	seed := []struct {
		title, description, category string
	}{
		{"Old Town Walk", "Cobblestones and cathedrals", "city"},
		{"River Cruise", "Sunset on the water", "water"},
		{"Mountain Hike", "A day above the tree line", "nature"},
		{"Night City Lights", "The town after dark", "city"},
	}
	for _, s := range seed {
		_, err := f.excursion.CreateExcursion(ctx, &SaveExcursionRequest{
			Title:       s.title,
			Description: s.description,
			Category:    s.category,
			Price:       500,
			SeatsTotal:  10,
		})
		require.NoError(t, err)
	}
}

func titles(excursions []*entity.ExcursionWithAvailability) []string {
	out := make([]string, 0, len(excursions))
	for _, e := range excursions {
		out = append(out, e.Title)
	}
	return out
}

func TestSearchFilters(t *testing.T) {
	tests := []struct {
		name   string
		filter CatalogFilter
		want   []string
	}{
		{
			name:   "no filter returns everything in stored order",
			filter: CatalogFilter{},
			want:   []string{"Old Town Walk", "River Cruise", "Mountain Hike", "Night City Lights"},
		},
		{
			name:   "category exact match",
			filter: CatalogFilter{Category: "city"},
			want:   []string{"Old Town Walk", "Night City Lights"},
		},
		{
			name:   "search is case-insensitive over title",
			filter: CatalogFilter{Search: "cruise"},
			want:   []string{"River Cruise"},
		},
		{
			name:   "search matches description too",
			filter: CatalogFilter{Search: "tree line"},
			want:   []string{"Mountain Hike"},
		},
		{
			name:   "category and search compose with AND",
			filter: CatalogFilter{Category: "city", Search: "night"},
			want:   []string{"Night City Lights"},
		},
		{
			name:   "no matches",
			filter: CatalogFilter{Category: "water", Search: "cathedrals"},
			want:   []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			seedCatalog(t, f)

			page, err := f.catalog.Search(context.Background(), &tt.filter)
			require.NoError(t, err)
			assert.Equal(t, tt.want, titles(page.Excursions))
		})
	}
}

// Category options come from the full collection, sorted and deduplicated,
// regardless of the active filter.
func TestSearchCategoriesIgnoreFilter(t *testing.T) {
	f := newFixture(t)
	seedCatalog(t, f)

	page, err := f.catalog.Search(context.Background(), &CatalogFilter{Category: "water"})
	require.NoError(t, err)
	assert.Equal(t, []string{"city", "nature", "water"}, page.Categories)
}

func TestFeaturedLimit(t *testing.T) {
	f := newFixture(t)
	seedCatalog(t, f)

	featured, err := f.catalog.Featured(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, []string{"Old Town Walk", "River Cruise", "Mountain Hike"}, titles(featured))
}

func TestGetExcursionReportsAvailability(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	excursion := f.addExcursion(t, "Old Town Walk", 500, 5)
	_, err := f.booking.CreateBooking(ctx, principal(1, "Anna"), &CreateBookingRequest{ExcursionID: excursion.ID, Count: 2})
	require.NoError(t, err)

	got, err := f.catalog.GetExcursion(ctx, excursion.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, got.AvailableSeats)

	_, err = f.catalog.GetExcursion(ctx, 999)
	assert.ErrorIs(t, err, entity.ErrExcursionNotFound)
}
