package listingRepo

import (
	"sync"

	"parcelo/models"
)

// MemoryListingRepo holds the listing collection in process memory. It is
// seeded once at construction; the only mutation path is Insert, which
// prepends. Mutations do not survive a restart.
type MemoryListingRepo struct {
	mu       sync.RWMutex
	listings []models.Listing
}

// NewMemoryListingRepo creates a store pre-populated with the given seed.
// The seed slice is copied so the caller's data stays untouched.
func NewMemoryListingRepo(seed []models.Listing) *MemoryListingRepo {
	listings := make([]models.Listing, len(seed))
	copy(listings, seed)
	return &MemoryListingRepo{listings: listings}
}

func (r *MemoryListingRepo) List() ([]models.Listing, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.Listing, len(r.listings))
	copy(out, r.listings)
	return out, nil
}

func (r *MemoryListingRepo) GetByID(id int) (*models.Listing, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.listings {
		if r.listings[i].ID == id {
			l := r.listings[i]
			return &l, nil
		}
	}
	return nil, ErrListingNotFound
}

func (r *MemoryListingRepo) Insert(l models.Listing) (models.Listing, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	l.ID = r.maxIDLocked() + 1
	r.listings = append([]models.Listing{l}, r.listings...)
	return l, nil
}

func (r *MemoryListingRepo) MaxID() (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.maxIDLocked(), nil
}

func (r *MemoryListingRepo) Count() (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.listings), nil
}

func (r *MemoryListingRepo) maxIDLocked() int {
	max := 0
	for i := range r.listings {
		if r.listings[i].ID > max {
			max = r.listings[i].ID
		}
	}
	return max
}
