// Package discovery derives display-ready listing sequences from a catalog
// snapshot: text search, category/type/price filtering, sorting, and
// distance ranking around a reference point.
//
// Everything here is a pure function of its inputs. Callers own the snapshot
// and the parameter value; nothing in this package keeps state between calls.
package discovery

// All is the sentinel meaning "no filtering on this dimension".
const All = "all"

// TypeFree selects free listings regardless of their listing type.
const TypeFree = "free"

type PriceRange string

const (
	PriceAll         PriceRange = "all"
	PriceUnder1000   PriceRange = "under-1000"
	Price1000To5000  PriceRange = "1000-5000"
	Price5000To25000 PriceRange = "5000-25000"
	PriceAbove25000  PriceRange = "above-25000"
)

type SortKey string

const (
	SortNewest    SortKey = "newest"
	SortOldest    SortKey = "oldest"
	SortPriceLow  SortKey = "price-low"
	SortPriceHigh SortKey = "price-high"
)

// Params is the full set of user-chosen browse controls.
type Params struct {
	Query      string
	Category   string
	Type       string
	PriceRange PriceRange
	Sort       SortKey
}

func DefaultParams() Params {
	return Params{
		Query:      "",
		Category:   All,
		Type:       All,
		PriceRange: PriceAll,
		Sort:       SortNewest,
	}
}

// Normalize fills unset fields with their defaults.
func (p Params) Normalize() Params {
	if p.Category == "" {
		p.Category = All
	}
	if p.Type == "" {
		p.Type = All
	}
	if p.PriceRange == "" {
		p.PriceRange = PriceAll
	}
	if p.Sort == "" {
		p.Sort = SortNewest
	}
	return p
}

func (r PriceRange) Valid() bool {
	switch r {
	case PriceAll, PriceUnder1000, Price1000To5000, Price5000To25000, PriceAbove25000:
		return true
	}
	return false
}

func (k SortKey) Valid() bool {
	switch k {
	case SortNewest, SortOldest, SortPriceLow, SortPriceHigh:
		return true
	}
	return false
}

// contains reports whether price falls in the bucket. Unknown buckets match
// everything.
func (r PriceRange) contains(price float64) bool {
	switch r {
	case PriceUnder1000:
		return price < 1000
	case Price1000To5000:
		return price >= 1000 && price <= 5000
	case Price5000To25000:
		return price >= 5000 && price <= 25000
	case PriceAbove25000:
		return price > 25000
	default:
		return true
	}
}
