// Package listquery is the pure search → filter → sort pipeline behind
// every list view. It runs over an already-fetched snapshot and has no
// side effects, so callers can re-run it on every (debounced) keystroke.
package listquery

import (
	"sort"
	"strings"
)

// Item is the pipeline's view of a dish or restaurant.
type Item struct {
	ID           uint     `json:"id"`
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Ingredients  []string `json:"ingredients,omitempty"`
	Municipality string   `json:"municipality"`
	Category     string   `json:"category,omitempty"`
	DietaryTags  []string `json:"dietaryTags,omitempty"`
	SpiceLevel   string   `json:"spiceLevel,omitempty"`
	Price        int64    `json:"price"`
	Rating       float64  `json:"rating"`
	RatingCount  int      `json:"ratingCount"`
	Popularity   int      `json:"popularity"`
	Rank         *int     `json:"rank"`
	Featured     bool     `json:"featured"`
}

// SearchFields toggles which fields besides Name the query matches on.
type SearchFields struct {
	Description  bool
	Ingredients  bool
	Municipality bool
}

// Filters are AND-composed; zero values (or "all") mean no constraint.
type Filters struct {
	Category string
	Price    string   // budget | mid | premium
	Tags     []string // item must carry every selected tag
	Spice    string
}

const (
	SortPopularity = "popularity"
	SortRating     = "rating"
	SortName       = "name"
	SortPriceLow   = "price_low"
	SortPriceHigh  = "price_high"
)

const (
	PriceBudget  = "budget"  // price < 100
	PriceMid     = "mid"     // 100 <= price <= 300
	PricePremium = "premium" // price > 300
)

type Params struct {
	Query  string
	Fields SearchFields
	Filters
	Sort string
}

// Apply runs the three stages in order and returns a new slice; the
// input is never reordered or mutated.
func Apply(items []Item, p Params) []Item {
	out := Search(items, p.Query, p.Fields)
	out = Filter(out, p.Filters)
	return Sort(out, p.Sort)
}

// Search keeps items whose enabled fields contain the query as a
// case-insensitive substring. An empty query matches everything.
func Search(items []Item, query string, f SearchFields) []Item {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return append([]Item(nil), items...)
	}

	out := make([]Item, 0, len(items))
	for _, it := range items {
		if matches(it, q, f) {
			out = append(out, it)
		}
	}
	return out
}

func matches(it Item, q string, f SearchFields) bool {
	if strings.Contains(strings.ToLower(it.Name), q) {
		return true
	}
	if f.Description && strings.Contains(strings.ToLower(it.Description), q) {
		return true
	}
	if f.Ingredients {
		for _, ing := range it.Ingredients {
			if strings.Contains(strings.ToLower(ing), q) {
				return true
			}
		}
	}
	if f.Municipality && strings.Contains(strings.ToLower(it.Municipality), q) {
		return true
	}
	return false
}

// Filter keeps items passing every active predicate.
func Filter(items []Item, f Filters) []Item {
	out := make([]Item, 0, len(items))
	for _, it := range items {
		if passes(it, f) {
			out = append(out, it)
		}
	}
	return out
}

func passes(it Item, f Filters) bool {
	if active(f.Category) && !strings.EqualFold(it.Category, f.Category) {
		return false
	}
	if active(f.Price) && priceBucket(it.Price) != f.Price {
		return false
	}
	for _, want := range f.Tags {
		if !hasTag(it.DietaryTags, want) {
			return false
		}
	}
	if active(f.Spice) && !strings.EqualFold(it.SpiceLevel, f.Spice) {
		return false
	}
	return true
}

func active(v string) bool {
	return v != "" && !strings.EqualFold(v, "all")
}

func priceBucket(price int64) string {
	switch {
	case price < 100:
		return PriceBudget
	case price <= 300:
		return PriceMid
	default:
		return PricePremium
	}
}

func hasTag(tags []string, want string) bool {
	for _, t := range tags {
		if strings.EqualFold(t, want) {
			return true
		}
	}
	return false
}

// Sort orders a copy of items by the selected key. Every chain ends in
// ascending name order so equal primary keys still sort totally.
func Sort(items []Item, key string) []Item {
	out := append([]Item(nil), items...)
	sort.SliceStable(out, func(i, j int) bool {
		return less(out[i], out[j], key)
	})
	return out
}

func less(a, b Item, key string) bool {
	switch key {
	case SortPopularity:
		if a.Popularity != b.Popularity {
			return a.Popularity > b.Popularity
		}
		if a.Rating != b.Rating {
			return a.Rating > b.Rating
		}
		if a.RatingCount != b.RatingCount {
			return a.RatingCount > b.RatingCount
		}
	case SortRating:
		if a.Rating != b.Rating {
			return a.Rating > b.Rating
		}
		if a.RatingCount != b.RatingCount {
			return a.RatingCount > b.RatingCount
		}
		if a.Popularity != b.Popularity {
			return a.Popularity > b.Popularity
		}
	case SortPriceLow:
		if a.Price != b.Price {
			return a.Price < b.Price
		}
	case SortPriceHigh:
		if a.Price != b.Price {
			return a.Price > b.Price
		}
	}
	// name asc; fall back to raw bytes so the order stays total when
	// names differ only by case
	an, bn := strings.ToLower(a.Name), strings.ToLower(b.Name)
	if an != bn {
		return an < bn
	}
	return a.Name < b.Name
}
