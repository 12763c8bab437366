package listing

import (
	"sort"
	"strings"
)

// AllCategories disables category filtering.
const AllCategories = "All Categories"

type SortOrder string

const (
	SortNewest    SortOrder = "newest"
	SortPriceAsc  SortOrder = "price_asc"
	SortPriceDesc SortOrder = "price_desc"
	SortRating    SortOrder = "rating"
)

// Criteria selects and orders listings. Zero values match everything.
type Criteria struct {
	Category    string
	Subcategory string
	Search      string
	Sort        SortOrder
}

// ParseSort maps a query value onto a SortOrder, defaulting to newest.
func ParseSort(s string) SortOrder {
	switch SortOrder(strings.ToLower(strings.TrimSpace(s))) {
	case SortPriceAsc:
		return SortPriceAsc
	case SortPriceDesc:
		return SortPriceDesc
	case SortRating:
		return SortRating
	default:
		return SortNewest
	}
}

func isAll(v string) bool {
	v = strings.TrimSpace(v)
	return v == "" || strings.EqualFold(v, AllCategories)
}

// Matches reports whether l satisfies the criteria's predicates.
func (c Criteria) Matches(l Listing) bool {
	if !isAll(c.Category) && !strings.EqualFold(strings.TrimSpace(c.Category), l.Category) {
		return false
	}
	if !isAll(c.Subcategory) && !strings.EqualFold(strings.TrimSpace(c.Subcategory), l.Subcategory) {
		return false
	}
	if q := strings.ToLower(strings.TrimSpace(c.Search)); q != "" {
		if !strings.Contains(strings.ToLower(l.Title), q) && !strings.Contains(strings.ToLower(l.Description), q) {
			return false
		}
	}
	return true
}

// Filter returns the listings that match c, ordered by c.Sort. The input is
// not modified. Ties keep their input order.
func Filter(listings []Listing, c Criteria) []Listing {
	out := make([]Listing, 0, len(listings))
	for _, l := range listings {
		if c.Matches(l) {
			out = append(out, l)
		}
	}

	var less func(a, b Listing) bool
	switch ParseSort(string(c.Sort)) {
	case SortPriceAsc:
		less = func(a, b Listing) bool { return a.Price < b.Price }
	case SortPriceDesc:
		less = func(a, b Listing) bool { return a.Price > b.Price }
	case SortRating:
		less = func(a, b Listing) bool { return a.Rating > b.Rating }
	default:
		less = func(a, b Listing) bool { return a.CreatedAt.After(b.CreatedAt) }
	}
	sort.SliceStable(out, func(i, j int) bool { return less(out[i], out[j]) })
	return out
}
