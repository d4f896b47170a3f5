package catalog

import (
	"context"
	"fmt"

	"parcelo/models"
)

func (s *DefaultCatalogService) pageSize() int {
	if s.PageSize > 0 {
		return s.PageSize
	}
	return DefaultPageSize
}

func (s *DefaultCatalogService) siblingCount() int {
	if s.SiblingCount > 0 {
		return s.SiblingCount
	}
	return DefaultSiblingCount
}

// Search filters, sorts and paginates the catalog for the given query
// state. The same query always yields the same result for an unchanged
// store.
func (s *DefaultCatalogService) Search(ctx context.Context, q Query) (*SearchResult, error) {
	canonical := q.Encode()
	if cached, ok := s.Cache.Get(ctx, canonical); ok {
		return cached, nil
	}

	listings, err := s.Repo.List()
	if err != nil {
		return nil, fmt.Errorf("catalog search failed: %w", err)
	}

	matched := Filter(listings, q)
	Sort(matched, q.Sort)

	page := Paginate(len(matched), s.pageSize(), q.Page, s.siblingCount())
	result := SearchResult{
		Items:    matched[page.FirstIndex:page.LastIndexExclusive],
		Page:     page,
		Query:    canonical,
		Filtered: q.Active(),
	}

	s.Cache.Set(ctx, canonical, result)
	return &result, nil
}

func (s *DefaultCatalogService) GetByID(ctx context.Context, id int) (*models.Listing, error) {
	return s.Repo.GetByID(id)
}

// Featured returns the promoted listings for curated sections, capped at
// limit (unlimited when limit <= 0).
func (s *DefaultCatalogService) Featured(ctx context.Context, limit int) ([]models.Listing, error) {
	listings, err := s.Repo.List()
	if err != nil {
		return nil, fmt.Errorf("failed to load featured listings: %w", err)
	}

	out := make([]models.Listing, 0)
	for _, l := range listings {
		if !l.Featured {
			continue
		}
		out = append(out, l)
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out, nil
}

// Similar returns listings near the given one by the city/subject-word
// heuristic.
func (s *DefaultCatalogService) Similar(ctx context.Context, id, limit int) ([]models.Listing, error) {
	ref, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	listings, err := s.Repo.List()
	if err != nil {
		return nil, fmt.Errorf("failed to load similar listings: %w", err)
	}
	return similarListings(listings, *ref, limit), nil
}
