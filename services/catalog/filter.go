package catalog

import (
	"strings"

	"parcelo/models"
)

// Filter returns the listings for which every active predicate holds,
// preserving source order. Inactive filters are skipped; an empty result is
// a valid outcome, not an error.
func Filter(listings []models.Listing, q Query) []models.Listing {
	out := make([]models.Listing, 0, len(listings))
	for _, l := range listings {
		if Matches(l, q) {
			out = append(out, l)
		}
	}
	return out
}

// Matches applies the active predicates of q to a single listing, AND-ed.
func Matches(l models.Listing, q Query) bool {
	if q.Term != "" && !matchesTerm(l, q.Term) {
		return false
	}
	if q.Type != "" && !matchesType(l, q.Type) {
		return false
	}
	if q.Location != "" && !containsFold(l.Location, q.Location) {
		return false
	}
	if !matchesMode(l, q.Mode) {
		return false
	}
	if q.Featured && !l.Featured {
		return false
	}
	return true
}

// matchesTerm checks the free-text term against subject, location and
// description. A missing description is treated as empty and never matches.
func matchesTerm(l models.Listing, term string) bool {
	return containsFold(l.Subject, term) ||
		containsFold(l.Location, term) ||
		containsFold(l.Description, term)
}

// matchesType is informal type tagging: there is no controlled vocabulary,
// a token like "villa" matches only where that literal word appears in the
// subject, description or amenity tags.
func matchesType(l models.Listing, typ string) bool {
	if containsFold(l.Subject, typ) || containsFold(l.Description, typ) {
		return true
	}
	for _, feature := range l.Features {
		if containsFold(feature, typ) {
			return true
		}
	}
	return false
}

// matchesMode buckets listings by sale status. Listings that never stated a
// mode sit on the rent side, matching how the marketplace has always
// displayed them.
func matchesMode(l models.Listing, mode models.SaleMode) bool {
	switch mode {
	case models.SaleModeSale:
		return l.SaleStatus == models.SaleModeSale
	case models.SaleModeRent:
		return l.SaleStatus != models.SaleModeSale
	default:
		return true
	}
}

func containsFold(haystack, needle string) bool {
	if needle == "" {
		return true
	}
	if haystack == "" {
		return false
	}
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}
