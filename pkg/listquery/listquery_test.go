package listquery

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func names(items []Item) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.Name
	}
	return out
}

func TestSearchMatchesAnyEnabledField(t *testing.T) {
	items := []Item{
		{Name: "Chicharon", Municipality: "Santa Maria"},
		{Name: "Inipit", Description: "layered cake from Malolos"},
		{Name: "Gatas ng Kalabaw", Ingredients: []string{"carabao milk"}},
	}

	t.Run("empty query matches everything", func(t *testing.T) {
		assert.Len(t, Search(items, "  ", SearchFields{}), 3)
	})

	t.Run("name always searched, case-insensitive", func(t *testing.T) {
		got := Search(items, "chichaRON", SearchFields{})
		assert.Equal(t, []string{"Chicharon"}, names(got))
	})

	t.Run("disabled fields do not match", func(t *testing.T) {
		assert.Empty(t, Search(items, "malolos", SearchFields{}))
		assert.Empty(t, Search(items, "carabao", SearchFields{}))
	})

	t.Run("enabled fields match", func(t *testing.T) {
		got := Search(items, "malolos", SearchFields{Description: true})
		assert.Equal(t, []string{"Inipit"}, names(got))

		got = Search(items, "carabao", SearchFields{Ingredients: true})
		assert.Equal(t, []string{"Gatas ng Kalabaw"}, names(got))

		got = Search(items, "santa", SearchFields{Municipality: true})
		assert.Equal(t, []string{"Chicharon"}, names(got))
	})
}

func TestFilterConjunction(t *testing.T) {
	items := []Item{
		{Name: "A", Category: "kakanin", Price: 50, DietaryTags: []string{"vegan", "halal"}, SpiceLevel: "mild"},
		{Name: "B", Category: "kakanin", Price: 250, DietaryTags: []string{"vegan"}, SpiceLevel: "hot"},
		{Name: "C", Category: "main", Price: 500, SpiceLevel: "mild"},
	}

	t.Run("all means no constraint", func(t *testing.T) {
		got := Filter(items, Filters{Category: "all", Price: "all", Spice: "all"})
		assert.Len(t, got, 3)
	})

	t.Run("category exact match", func(t *testing.T) {
		got := Filter(items, Filters{Category: "kakanin"})
		assert.Equal(t, []string{"A", "B"}, names(got))
	})

	t.Run("price buckets", func(t *testing.T) {
		assert.Equal(t, []string{"A"}, names(Filter(items, Filters{Price: PriceBudget})))
		assert.Equal(t, []string{"B"}, names(Filter(items, Filters{Price: PriceMid})))
		assert.Equal(t, []string{"C"}, names(Filter(items, Filters{Price: PricePremium})))
	})

	t.Run("price bucket boundaries are inclusive for mid", func(t *testing.T) {
		edge := []Item{{Name: "lo", Price: 100}, {Name: "hi", Price: 300}, {Name: "out", Price: 301}}
		got := Filter(edge, Filters{Price: PriceMid})
		assert.Equal(t, []string{"lo", "hi"}, names(got))
	})

	t.Run("dietary tags are AND not OR", func(t *testing.T) {
		got := Filter(items, Filters{Tags: []string{"vegan", "halal"}})
		// B carries only vegan and must be excluded
		assert.Equal(t, []string{"A"}, names(got))
	})

	t.Run("predicates compose with AND", func(t *testing.T) {
		got := Filter(items, Filters{Category: "kakanin", Spice: "hot"})
		assert.Equal(t, []string{"B"}, names(got))
	})
}

func TestSortChains(t *testing.T) {
	t.Run("price_low breaks ties by name", func(t *testing.T) {
		items := []Item{
			{Name: "A", Price: 50},
			{Name: "B", Price: 50},
			{Name: "C", Price: 10},
		}
		got := Sort(items, SortPriceLow)
		assert.Equal(t, []string{"C", "A", "B"}, names(got))
	})

	t.Run("price_high descends", func(t *testing.T) {
		items := []Item{{Name: "A", Price: 50}, {Name: "B", Price: 200}}
		got := Sort(items, SortPriceHigh)
		assert.Equal(t, []string{"B", "A"}, names(got))
	})

	t.Run("popularity chain", func(t *testing.T) {
		items := []Item{
			{Name: "B", Popularity: 10, Rating: 4.0, RatingCount: 5},
			{Name: "A", Popularity: 10, Rating: 4.0, RatingCount: 5},
			{Name: "C", Popularity: 10, Rating: 4.5},
			{Name: "D", Popularity: 20},
		}
		got := Sort(items, SortPopularity)
		// popularity desc → rating desc → ratingCount desc → name asc
		assert.Equal(t, []string{"D", "C", "A", "B"}, names(got))
	})

	t.Run("rating chain", func(t *testing.T) {
		items := []Item{
			{Name: "A", Rating: 4.0, RatingCount: 10, Popularity: 1},
			{Name: "B", Rating: 4.0, RatingCount: 10, Popularity: 9},
			{Name: "C", Rating: 4.0, RatingCount: 20},
			{Name: "D", Rating: 4.8},
		}
		got := Sort(items, SortRating)
		assert.Equal(t, []string{"D", "C", "B", "A"}, names(got))
	})

	t.Run("name sort", func(t *testing.T) {
		items := []Item{{Name: "banana"}, {Name: "Apple"}}
		got := Sort(items, SortName)
		assert.Equal(t, []string{"Apple", "banana"}, names(got))
	})

	t.Run("input is not mutated", func(t *testing.T) {
		items := []Item{{Name: "B"}, {Name: "A"}}
		_ = Sort(items, SortName)
		assert.Equal(t, []string{"B", "A"}, names(items))
	})
}

func TestApplyRunsStagesInOrder(t *testing.T) {
	items := []Item{
		{Name: "Pancit Marilao", Category: "main", Price: 80},
		{Name: "Pancit Malolos", Category: "main", Price: 120},
		{Name: "Ensaymada", Category: "dessert", Price: 60},
	}

	got := Apply(items, Params{
		Query:   "pancit",
		Filters: Filters{Category: "main"},
		Sort:    SortPriceLow,
	})
	require.Len(t, got, 2)
	assert.Equal(t, []string{"Pancit Marilao", "Pancit Malolos"}, names(got))
}
