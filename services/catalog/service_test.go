package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	listingRepo "parcelo/database/repository/listing"
	"parcelo/models"
)

func newTestService() *DefaultCatalogService {
	return &DefaultCatalogService{
		Repo:     listingRepo.NewMemoryListingRepo(listingRepo.SeedListings()),
		PageSize: 2,
	}
}

func TestSearch(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()

	t.Run("first page of the unfiltered catalog", func(t *testing.T) {
		result, err := svc.Search(ctx, Query{Page: 1})
		require.NoError(t, err)

		assert.Equal(t, []int{1, 2}, listingIDs(result.Items))
		assert.Equal(t, 3, result.Page.TotalPages)
		assert.Equal(t, 5, result.Page.TotalItems)
		assert.Equal(t, "", result.Query)
		assert.False(t, result.Filtered)
	})

	t.Run("last page holds the remainder", func(t *testing.T) {
		result, err := svc.Search(ctx, Query{Page: 3})
		require.NoError(t, err)

		assert.Equal(t, []int{5}, listingIDs(result.Items))
		assert.Equal(t, 3, result.Page.CurrentPage)
	})

	t.Run("out-of-range page clamps instead of failing", func(t *testing.T) {
		result, err := svc.Search(ctx, Query{Page: 50})
		require.NoError(t, err)

		assert.Equal(t, 3, result.Page.CurrentPage)
		assert.NotEmpty(t, result.Items)
	})

	t.Run("filtered search reports its canonical query", func(t *testing.T) {
		result, err := svc.Search(ctx, Query{Mode: models.SaleModeSale, Page: 1})
		require.NoError(t, err)

		assert.Equal(t, "mode=vente", result.Query)
		assert.True(t, result.Filtered)
		assert.Equal(t, 4, result.Page.TotalItems)
	})

	t.Run("search that matches nothing is still filtered", func(t *testing.T) {
		result, err := svc.Search(ctx, Query{Term: "введите", Page: 1})
		require.NoError(t, err)

		assert.Empty(t, result.Items)
		assert.True(t, result.Filtered)
		assert.Equal(t, 1, result.Page.TotalPages)
	})

	t.Run("sorted search paginates after ordering", func(t *testing.T) {
		result, err := svc.Search(ctx, Query{Sort: SortPriceAsc, Page: 1})
		require.NoError(t, err)

		assert.Equal(t, []int{1, 5}, listingIDs(result.Items))
	})
}

func TestSearchSeesInsertedListings(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()

	inserted, err := svc.Repo.Insert(models.Listing{
		Subject:    "TERRAIN NEUF - 90M²",
		Location:   "Casablanca, Oasis",
		Price:      models.Price{Value: 700000, Currency: "DH"},
		SaleStatus: models.SaleModeSale,
	})
	require.NoError(t, err)
	assert.Equal(t, 6, inserted.ID)

	result, err := svc.Search(ctx, Query{Page: 1})
	require.NoError(t, err)

	assert.Equal(t, 6, result.Page.TotalItems)
	assert.Equal(t, 6, result.Items[0].ID, "new listing leads the catalog")
}

func TestGetByID(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()

	listing, err := svc.GetByID(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, "Tanger, Malabata", listing.Location)

	_, err = svc.GetByID(ctx, 999)
	assert.ErrorIs(t, err, listingRepo.ErrListingNotFound)
}

func TestFeatured(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()

	all, err := svc.Featured(ctx, 0)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 3, 5}, listingIDs(all))

	capped, err := svc.Featured(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 3}, listingIDs(capped))
}

func TestSimilar(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()

	t.Run("shares a subject word", func(t *testing.T) {
		similar, err := svc.Similar(ctx, 2, 3)
		require.NoError(t, err)

		ids := listingIDs(similar)
		assert.NotContains(t, ids, 2, "never recommends the listing itself")
		assert.Contains(t, ids, 3, "terrain matches terrain")
	})

	t.Run("respects the cap", func(t *testing.T) {
		similar, err := svc.Similar(ctx, 2, 1)
		require.NoError(t, err)
		assert.Len(t, similar, 1)
	})

	t.Run("unknown reference listing", func(t *testing.T) {
		_, err := svc.Similar(ctx, 404, 3)
		assert.ErrorIs(t, err, listingRepo.ErrListingNotFound)
	})
}

func TestSimilarListingsHeuristic(t *testing.T) {
	listings := []models.Listing{
		{ID: 1, Subject: "VENTE VILLA MODERNE", Location: "Casablanca, Maarif"},
		{ID: 2, Subject: "STUDIO 30M²", Location: "Casablanca, Centre"},
		{ID: 3, Subject: "VILLA AVEC PISCINE", Location: "Marrakech, Hivernage"},
		{ID: 4, Subject: "LOT DE TERRAIN", Location: "Rabat, Agdal"},
	}

	similar := similarListings(listings, listings[0], 10)
	ids := listingIDs(similar)

	assert.Contains(t, ids, 2, "same city counts")
	assert.Contains(t, ids, 3, "shared subject word counts")
	assert.NotContains(t, ids, 4, "no city nor word in common")
	assert.NotContains(t, ids, 1)

	assert.Empty(t, similarListings(listings, listings[0], 0))
}
