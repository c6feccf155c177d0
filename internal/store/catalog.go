package store

import "sixcities/internal/model"

// CatalogState holds the selected city and the full offer list.
type CatalogState struct {
	City    model.City
	Offers  []model.Offer
	Loading bool
	Err     string
}

func initialCatalog() CatalogState {
	return CatalogState{City: model.DefaultCity}
}

func reduceCatalog(prev CatalogState, action Action) CatalogState {
	switch a := action.(type) {
	case ChangeCity:
		prev.City = a.City
		return prev
	case OffersLoaded:
		prev.Offers = a.Offers
		return prev
	case SetOffersLoading:
		prev.Loading = a.Loading
		return prev
	case SetError:
		prev.Err = a.Message
		return prev
	case FavoriteStatusChanged:
		prev.Offers = patchFavorite(prev.Offers, a.Offer.ID, a.Status)
		return prev
	default:
		return prev
	}
}

// patchFavorite returns a copy with the matching offer's flag updated,
// or the original slice untouched when the ID is absent.
func patchFavorite(offers []model.Offer, id string, status bool) []model.Offer {
	for i := range offers {
		if offers[i].ID == id {
			next := append([]model.Offer(nil), offers...)
			next[i].IsFavorite = status
			return next
		}
	}
	return offers
}
