// Package selector derives the presentation views from slice state.
// Every function is pure and leaves its input untouched.
package selector

import (
	"sort"

	"sixcities/internal/model"
)

const (
	nearOffersLimit = 3
	reviewsLimit    = 10
)

// OffersForCity keeps offers in the given city, preserving source order.
func OffersForCity(offers []model.Offer, city model.City) []model.Offer {
	filtered := make([]model.Offer, 0, len(offers))
	for _, o := range offers {
		if o.City == city {
			filtered = append(filtered, o)
		}
	}
	return filtered
}

// SortOffers orders a copy of the list by the given kind. Popular keeps
// arrival order (the server's relevance ranking). All sorts are stable.
func SortOffers(offers []model.Offer, kind model.SortKind) []model.Offer {
	sorted := append([]model.Offer(nil), offers...)
	switch kind {
	case model.SortPriceAsc:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].Price < sorted[j].Price
		})
	case model.SortPriceDesc:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].Price > sorted[j].Price
		})
	case model.SortRatingDesc:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].Rating > sorted[j].Rating
		})
	}
	return sorted
}

// FavoritesCount is the badge number in the header.
func FavoritesCount(favorites []model.Offer) int {
	return len(favorites)
}

// NearOffersLimited keeps the first three near-offers for the map.
func NearOffersLimited(offers []model.Offer) []model.Offer {
	if len(offers) <= nearOffersLimit {
		return append([]model.Offer(nil), offers...)
	}
	return append([]model.Offer(nil), offers[:nearOffersLimit]...)
}

// SortedReviewsLimited orders reviews newest-first and keeps the ten
// most recent. The store already truncates on write; re-applying here
// is a no-op on normalized input.
func SortedReviewsLimited(reviews []model.Review) []model.Review {
	sorted := append([]model.Review(nil), reviews...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].ParsedDate().After(sorted[j].ParsedDate())
	})
	if len(sorted) > reviewsLimit {
		sorted = sorted[:reviewsLimit]
	}
	return sorted
}
