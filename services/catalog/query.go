package catalog

import (
	"net/url"
	"strconv"

	"parcelo/models"
)

// Query parameter names, shared with the browsing clients. Mode values keep
// the French route vocabulary of the marketplace ("vente" / "location").
const (
	paramTerm     = "query"
	paramType     = "type"
	paramLocation = "location"
	paramMode     = "mode"
	paramPage     = "page"
	paramFeatured = "featured"
	paramSort     = "sort"

	ModeSaleParam = "vente"
	ModeRentParam = "location"
)

// Query is the transient filter state of a catalog search. It is derived
// from URL query parameters on every request and never stored; the URL is
// the single source of truth so searches stay shareable and bookmarkable.
type Query struct {
	Term     string
	Type     string
	Location string
	Mode     models.SaleMode
	Featured bool
	Sort     SortOrder
	Page     int
}

// ParseQuery builds a Query from URL values. Absent keys take their
// defaults, unrecognized keys and values are ignored rather than rejected.
func ParseQuery(values url.Values) Query {
	q := Query{Page: 1}
	q.Term = values.Get(paramTerm)
	q.Type = values.Get(paramType)
	q.Location = values.Get(paramLocation)

	switch values.Get(paramMode) {
	case ModeSaleParam:
		q.Mode = models.SaleModeSale
	case ModeRentParam:
		q.Mode = models.SaleModeRent
	}

	if values.Get(paramFeatured) == "true" || values.Get(paramFeatured) == "1" {
		q.Featured = true
	}

	switch SortOrder(values.Get(paramSort)) {
	case SortPriceAsc, SortPriceDesc, SortNewest:
		q.Sort = SortOrder(values.Get(paramSort))
	}

	if page, err := strconv.Atoi(values.Get(paramPage)); err == nil && page > 1 {
		q.Page = page
	}
	return q
}

// Values serializes the query. Empty and default fields are omitted so the
// canonical "no filter" state encodes to an empty string.
func (q Query) Values() url.Values {
	values := url.Values{}
	if q.Term != "" {
		values.Set(paramTerm, q.Term)
	}
	if q.Type != "" {
		values.Set(paramType, q.Type)
	}
	if q.Location != "" {
		values.Set(paramLocation, q.Location)
	}
	switch q.Mode {
	case models.SaleModeSale:
		values.Set(paramMode, ModeSaleParam)
	case models.SaleModeRent:
		values.Set(paramMode, ModeRentParam)
	}
	if q.Featured {
		values.Set(paramFeatured, "true")
	}
	if q.Sort != SortDefault {
		values.Set(paramSort, string(q.Sort))
	}
	if q.Page > 1 {
		values.Set(paramPage, strconv.Itoa(q.Page))
	}
	return values
}

// Encode returns the canonical query-string form of the state.
func (q Query) Encode() string {
	return q.Values().Encode()
}

// Active reports whether any filter is engaged, letting callers tell an
// unfiltered catalog apart from a filtered-to-nothing result.
func (q Query) Active() bool {
	return q.Term != "" || q.Type != "" || q.Location != "" ||
		q.Mode != models.SaleModeUnspecified || q.Featured
}

// Changing any filter invalidates the meaning of the current page, so every
// filter mutator resets Page to 1. Only WithPage preserves the other fields.

func (q Query) WithTerm(term string) Query {
	q.Term = term
	q.Page = 1
	return q
}

func (q Query) WithType(t string) Query {
	q.Type = t
	q.Page = 1
	return q
}

func (q Query) WithLocation(location string) Query {
	q.Location = location
	q.Page = 1
	return q
}

func (q Query) WithMode(mode models.SaleMode) Query {
	q.Mode = mode
	q.Page = 1
	return q
}

func (q Query) WithFeatured(featured bool) Query {
	q.Featured = featured
	q.Page = 1
	return q
}

func (q Query) WithSort(sort SortOrder) Query {
	q.Sort = sort
	q.Page = 1
	return q
}

func (q Query) WithPage(page int) Query {
	if page < 1 {
		page = 1
	}
	q.Page = page
	return q
}
