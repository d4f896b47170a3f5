package catalog

import (
	"context"

	listingRepo "parcelo/database/repository/listing"
	"parcelo/models"
)

// SearchResult is one page of matching listings plus the metadata a client
// needs to render controls and keep its URL canonical.
type SearchResult struct {
	Items []models.Listing `json:"items"`
	Page  Page             `json:"page"`
	// Query is the canonical query-string form of the applied state.
	// Clients navigating should push this for filter changes and replace
	// for page changes.
	Query string `json:"query"`
	// Filtered tells an empty catalog apart from a search that matched
	// nothing; the latter needs an explicit "no results" affordance.
	Filtered bool `json:"filtered"`
}

// CatalogService is the listing query engine.
type CatalogService interface {
	Search(ctx context.Context, q Query) (*SearchResult, error)
	GetByID(ctx context.Context, id int) (*models.Listing, error)
	Featured(ctx context.Context, limit int) ([]models.Listing, error)
	Similar(ctx context.Context, id, limit int) ([]models.Listing, error)
}

// DefaultCatalogService is the production implementation.
type DefaultCatalogService struct {
	Repo         listingRepo.ListingRepository
	Cache        *SearchCache
	PageSize     int
	SiblingCount int
}
