package discovery

import (
	"sort"
	"strings"

	"golang.org/x/text/cases"

	"findhere/internal/domain/entity"
)

// Apply runs the browse pipeline: search, category, type and price filters in
// that order, then a stable sort. The input slice is left untouched.
func Apply(listings []*entity.Listing, params Params) []*entity.Listing {
	params = params.Normalize()

	out := make([]*entity.Listing, 0, len(listings))
	for _, l := range listings {
		if l != nil {
			out = append(out, l)
		}
	}

	out = filterBySearch(out, params.Query)
	out = filterByCategory(out, params.Category)
	out = filterByType(out, params.Type)
	out = filterByPrice(out, params.PriceRange)

	sortListings(out, params.Sort)
	return out
}

// EffectivePrice is the price used for bucketing and ordering. Free listings
// and listings without a price count as 0.
func EffectivePrice(l *entity.Listing) float64 {
	if l.IsFree || l.Price == nil {
		return 0
	}
	return *l.Price
}

func keep(listings []*entity.Listing, pred func(*entity.Listing) bool) []*entity.Listing {
	out := listings[:0:0]
	for _, l := range listings {
		if pred(l) {
			out = append(out, l)
		}
	}
	return out
}

func filterBySearch(listings []*entity.Listing, query string) []*entity.Listing {
	if query == "" {
		return listings
	}
	// Caser values are stateful; one per call keeps Apply safe to run concurrently.
	fold := cases.Fold()
	needle := fold.String(query)

	return keep(listings, func(l *entity.Listing) bool {
		if strings.Contains(fold.String(l.Title), needle) {
			return true
		}
		return l.Location != "" && strings.Contains(fold.String(l.Location), needle)
	})
}

func filterByCategory(listings []*entity.Listing, category string) []*entity.Listing {
	if category == All {
		return listings
	}
	return keep(listings, func(l *entity.Listing) bool {
		return l.CategoryID != nil && *l.CategoryID == category
	})
}

func filterByType(listings []*entity.Listing, listingType string) []*entity.Listing {
	switch listingType {
	case All:
		return listings
	case TypeFree:
		return keep(listings, func(l *entity.Listing) bool { return l.IsFree })
	default:
		return keep(listings, func(l *entity.Listing) bool { return l.ListingType == listingType })
	}
}

// filterByPrice is skipped for the whole working set as soon as one free
// listing is in it.
func filterByPrice(listings []*entity.Listing, priceRange PriceRange) []*entity.Listing {
	if priceRange == PriceAll || containsFree(listings) {
		return listings
	}
	return keep(listings, func(l *entity.Listing) bool {
		return priceRange.contains(EffectivePrice(l))
	})
}

func containsFree(listings []*entity.Listing) bool {
	for _, l := range listings {
		if l.IsFree {
			return true
		}
	}
	return false
}

func sortListings(listings []*entity.Listing, key SortKey) {
	var less func(a, b *entity.Listing) bool

	switch key {
	case SortPriceLow:
		less = func(a, b *entity.Listing) bool { return EffectivePrice(a) < EffectivePrice(b) }
	case SortPriceHigh:
		less = func(a, b *entity.Listing) bool { return EffectivePrice(a) > EffectivePrice(b) }
	case SortNewest:
		less = func(a, b *entity.Listing) bool { return a.CreatedAt.After(b.CreatedAt) }
	case SortOldest:
		less = func(a, b *entity.Listing) bool { return a.CreatedAt.Before(b.CreatedAt) }
	default:
		return
	}

	sort.SliceStable(listings, func(i, j int) bool {
		return less(listings[i], listings[j])
	})
}
