package catalog

import (
	"strings"

	"parcelo/models"
)

// similarListings is a named heuristic, not a scored recommender: a listing
// is similar when it shares the city or a meaningful subject word with the
// reference. Candidates keep catalog order and are capped at limit.
func similarListings(listings []models.Listing, ref models.Listing, limit int) []models.Listing {
	if limit <= 0 {
		return []models.Listing{}
	}

	city := strings.ToLower(strings.TrimSpace(ref.City()))
	refWords := subjectWords(ref.Subject)

	out := make([]models.Listing, 0, limit)
	for _, l := range listings {
		if l.ID == ref.ID {
			continue
		}
		if sameCity(l, city) || sharesWord(subjectWords(l.Subject), refWords) {
			out = append(out, l)
			if len(out) == limit {
				break
			}
		}
	}
	return out
}

func sameCity(l models.Listing, city string) bool {
	return city != "" && strings.ToLower(strings.TrimSpace(l.City())) == city
}

// subjectWords splits a subject into comparable tokens, dropping short
// connective words and bare measurements.
func subjectWords(subject string) map[string]struct{} {
	words := make(map[string]struct{})
	for _, w := range strings.Fields(strings.ToLower(subject)) {
		w = strings.Trim(w, "-–,.()")
		if len([]rune(w)) < 4 {
			continue
		}
		if strings.IndexFunc(w, func(r rune) bool { return r >= '0' && r <= '9' }) >= 0 {
			continue
		}
		words[w] = struct{}{}
	}
	return words
}

func sharesWord(a, b map[string]struct{}) bool {
	for w := range a {
		if _, ok := b[w]; ok {
			return true
		}
	}
	return false
}
