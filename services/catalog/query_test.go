package catalog

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"parcelo/models"
)

func TestParseQuery(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  Query
	}{
		{
			name:  "empty string yields defaults",
			query: "",
			want:  Query{Page: 1},
		},
		{
			name:  "all parameters",
			query: "query=terrain&type=villa&location=Agadir&mode=vente&featured=true&sort=price-asc&page=3",
			want: Query{
				Term:     "terrain",
				Type:     "villa",
				Location: "Agadir",
				Mode:     models.SaleModeSale,
				Featured: true,
				Sort:     SortPriceAsc,
				Page:     3,
			},
		},
		{
			name:  "rent mode uses the French route word",
			query: "mode=location",
			want:  Query{Mode: models.SaleModeRent, Page: 1},
		},
		{
			name:  "unknown mode value is ignored",
			query: "mode=achat",
			want:  Query{Page: 1},
		},
		{
			name:  "unknown keys are ignored",
			query: "utm_source=newsletter&foo=bar&query=casa",
			want:  Query{Term: "casa", Page: 1},
		},
		{
			name:  "non-numeric page falls back to one",
			query: "page=abc",
			want:  Query{Page: 1},
		},
		{
			name:  "page one is the default and not sticky",
			query: "page=1",
			want:  Query{Page: 1},
		},
		{
			name:  "negative page clamps to one",
			query: "page=-4",
			want:  Query{Page: 1},
		},
		{
			name:  "featured accepts numeric one",
			query: "featured=1",
			want:  Query{Featured: true, Page: 1},
		},
		{
			name:  "unknown sort value is ignored",
			query: "sort=shiniest-first",
			want:  Query{Page: 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			values, err := url.ParseQuery(tt.query)
			require.NoError(t, err)
			assert.Equal(t, tt.want, ParseQuery(values))
		})
	}
}

func TestQueryRoundTrip(t *testing.T) {
	queries := []Query{
		{Page: 1},
		{Term: "terrain agricole", Page: 1},
		{Mode: models.SaleModeRent, Featured: true, Page: 1},
		{Term: "casa", Type: "villa", Location: "Tanger", Mode: models.SaleModeSale, Sort: SortPriceDesc, Page: 7},
	}

	for _, q := range queries {
		parsed := ParseQuery(q.Values())
		assert.Equal(t, q, parsed, "encode then parse must restore the state")
	}
}

func TestQueryEncodeOmitsDefaults(t *testing.T) {
	assert.Equal(t, "", Query{Page: 1}.Encode(), "unfiltered state encodes empty")
	assert.Equal(t, "", Query{}.Encode())

	encoded := Query{Term: "casa", Page: 2}.Encode()
	assert.Contains(t, encoded, "query=casa")
	assert.Contains(t, encoded, "page=2")
	assert.NotContains(t, encoded, "mode=")
	assert.NotContains(t, encoded, "featured=")
}

func TestQueryMutators(t *testing.T) {
	base := Query{Term: "terrain", Page: 4}

	t.Run("filter changes reset the page", func(t *testing.T) {
		assert.Equal(t, 1, base.WithTerm("villa").Page)
		assert.Equal(t, 1, base.WithType("agricole").Page)
		assert.Equal(t, 1, base.WithLocation("Rabat").Page)
		assert.Equal(t, 1, base.WithMode(models.SaleModeRent).Page)
		assert.Equal(t, 1, base.WithFeatured(true).Page)
		assert.Equal(t, 1, base.WithSort(SortNewest).Page)
	})

	t.Run("page changes keep the filters", func(t *testing.T) {
		next := base.WithPage(5)
		assert.Equal(t, 5, next.Page)
		assert.Equal(t, "terrain", next.Term)

		assert.Equal(t, 1, base.WithPage(0).Page)
	})

	t.Run("mutators do not touch the receiver", func(t *testing.T) {
		_ = base.WithTerm("other")
		assert.Equal(t, "terrain", base.Term)
		assert.Equal(t, 4, base.Page)
	})
}
