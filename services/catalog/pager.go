package catalog

// Pager defaults. Nine cards fill the three-column results grid.
const (
	DefaultPageSize     = 9
	DefaultSiblingCount = 1
)

// GapMarker stands in for a run of collapsed pages in a page sequence.
const GapMarker = -1

// Page is the pagination metadata for one slice of results.
type Page struct {
	CurrentPage        int   `json:"currentPage"`
	TotalPages         int   `json:"totalPages"`
	PageSize           int   `json:"pageSize"`
	TotalItems         int   `json:"totalItems"`
	FirstIndex         int   `json:"firstIndex"`
	LastIndexExclusive int   `json:"lastIndexExclusive"`
	// Sequence is the compact page-control display order; GapMarker (-1)
	// entries render as an ellipsis.
	Sequence []int `json:"sequence"`
}

// Paginate computes slice boundaries and the display sequence for a result
// set. There is always at least one page, even for zero items, so callers
// always have a "page 1" to render. Out-of-range requests clamp silently to
// the nearest boundary.
func Paginate(totalItems, pageSize, requestedPage, siblingCount int) Page {
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	if siblingCount < 0 {
		siblingCount = DefaultSiblingCount
	}

	totalPages := (totalItems + pageSize - 1) / pageSize
	if totalPages < 1 {
		totalPages = 1
	}

	currentPage := requestedPage
	if currentPage < 1 {
		currentPage = 1
	}
	if currentPage > totalPages {
		currentPage = totalPages
	}

	firstIndex := (currentPage - 1) * pageSize
	lastIndex := firstIndex + pageSize
	if lastIndex > totalItems {
		lastIndex = totalItems
	}
	if firstIndex > totalItems {
		firstIndex = totalItems
	}

	return Page{
		CurrentPage:        currentPage,
		TotalPages:         totalPages,
		PageSize:           pageSize,
		TotalItems:         totalItems,
		FirstIndex:         firstIndex,
		LastIndexExclusive: lastIndex,
		Sequence:           pageSequence(currentPage, totalPages, siblingCount),
	}
}

// pageSequence builds the compact display sequence: all pages when few,
// otherwise page 1 and the last page always, up to siblingCount pages on
// each side of the current one, and a single gap marker per collapsed side.
func pageSequence(currentPage, totalPages, siblingCount int) []int {
	if totalPages <= 5+siblingCount*2 {
		return pageRange(1, totalPages)
	}

	leftSibling := currentPage - siblingCount
	if leftSibling < 1 {
		leftSibling = 1
	}
	rightSibling := currentPage + siblingCount
	if rightSibling > totalPages {
		rightSibling = totalPages
	}

	showLeftGap := leftSibling > 2
	showRightGap := rightSibling < totalPages-1

	switch {
	case showLeftGap && showRightGap:
		seq := []int{1, GapMarker}
		seq = append(seq, pageRange(leftSibling, rightSibling)...)
		return append(seq, GapMarker, totalPages)
	case showRightGap:
		seq := pageRange(1, rightSibling)
		return append(seq, GapMarker, totalPages)
	case showLeftGap:
		seq := []int{1, GapMarker}
		return append(seq, pageRange(leftSibling, totalPages)...)
	default:
		return pageRange(1, totalPages)
	}
}

func pageRange(start, end int) []int {
	if end < start {
		return nil
	}
	pages := make([]int, 0, end-start+1)
	for p := start; p <= end; p++ {
		pages = append(pages, p)
	}
	return pages
}
