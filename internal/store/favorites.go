package store

import "sixcities/internal/model"

// FavoritesState holds the user's favorited offers, most recent first.
type FavoritesState struct {
	Favorites []model.Offer
	Loading   bool
}

func initialFavorites() FavoritesState {
	return FavoritesState{}
}

func reduceFavorites(prev FavoritesState, action Action) FavoritesState {
	switch a := action.(type) {
	case FavoritesLoaded:
		prev.Favorites = a.Offers
		return prev
	case SetFavoritesLoading:
		prev.Loading = a.Loading
		return prev
	case ClearFavorites:
		prev.Favorites = nil
		return prev
	case FavoriteStatusChanged:
		if a.Status {
			prev.Favorites = insertFavorite(prev.Favorites, a.Offer)
		} else {
			prev.Favorites = removeFavorite(prev.Favorites, a.Offer.ID)
		}
		return prev
	default:
		return prev
	}
}

// insertFavorite puts the offer at the front; an already-present entry
// is moved there rather than duplicated.
func insertFavorite(favorites []model.Offer, offer model.Offer) []model.Offer {
	offer.IsFavorite = true
	next := make([]model.Offer, 0, len(favorites)+1)
	next = append(next, offer)
	for _, f := range favorites {
		if f.ID != offer.ID {
			next = append(next, f)
		}
	}
	return next
}

func removeFavorite(favorites []model.Offer, id string) []model.Offer {
	next := make([]model.Offer, 0, len(favorites))
	for _, f := range favorites {
		if f.ID != id {
			next = append(next, f)
		}
	}
	return next
}
