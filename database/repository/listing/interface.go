package listingRepo

import (
	"errors"

	"parcelo/models"
)

// ErrListingNotFound is returned when an id is absent from the store.
// Callers render an explicit not-found state rather than failing the page.
var ErrListingNotFound = errors.New("listing not found")

// ListingRepository is the injectable listing store. The in-memory
// implementation seeded at startup is the canonical one; the Mongo
// implementation backs it with a database when DATABASE_URL is set.
type ListingRepository interface {
	// List returns every listing, newest submissions first, seed order
	// preserved behind them.
	List() ([]models.Listing, error)
	GetByID(id int) (*models.Listing, error)
	// Insert assigns the next id (max existing id + 1, never reused),
	// places the listing at the head of the collection, and returns the
	// stored record.
	Insert(l models.Listing) (models.Listing, error)
	MaxID() (int, error)
	Count() (int, error)
}
