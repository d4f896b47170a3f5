package catalog

import (
	"sort"
	"time"

	"parcelo/models"
)

// SortOrder selects the catalog ordering. The default keeps source order
// (newest submissions first, then seed order).
type SortOrder string

const (
	SortDefault   SortOrder = ""
	SortPriceAsc  SortOrder = "price-asc"
	SortPriceDesc SortOrder = "price-desc"
	SortNewest    SortOrder = "newest"
)

// Sort orders listings in place. All orderings are stable: ties keep their
// relative source positions.
func Sort(listings []models.Listing, order SortOrder) {
	switch order {
	case SortPriceAsc:
		sort.SliceStable(listings, func(i, j int) bool {
			return listings[i].Price.Value < listings[j].Price.Value
		})
	case SortPriceDesc:
		sort.SliceStable(listings, func(i, j int) bool {
			return listings[i].Price.Value > listings[j].Price.Value
		})
	case SortNewest:
		sort.SliceStable(listings, func(i, j int) bool {
			ti, iok := parseCreatedAt(listings[i].CreatedAt)
			tj, jok := parseCreatedAt(listings[j].CreatedAt)
			if iok != jok {
				// Listings without a usable date sort last.
				return iok
			}
			return ti.After(tj)
		})
	}
}

func parseCreatedAt(s string) (time.Time, bool) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}
