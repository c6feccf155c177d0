package store

import "sixcities/internal/model"

// Action is the closed union of state updates. Every variant is folded
// by each slice: relevant ones change it, the rest leave it untouched.
type Action interface {
	isAction()
}

// Catalog actions.

type ChangeCity struct {
	City model.City
}

type OffersLoaded struct {
	Offers []model.Offer
}

type SetOffersLoading struct {
	Loading bool
}

// SetError records the user-facing error message. An empty message
// clears it.
type SetError struct {
	Message string
}

// Session actions.

type SetAuthorizationStatus struct {
	Status model.AuthorizationStatus
}

type SetUser struct {
	User *model.User
}

// Offer-detail actions. Generation ties a result to the navigation that
// requested it; the fold drops anything older than the latest reset.

type DetailReset struct {
	Generation uint64
}

type DetailLoaded struct {
	Generation uint64
	Offer      model.OfferDetails
}

type NearOffersLoaded struct {
	Generation uint64
	Offers     []model.Offer
}

type ReviewsLoaded struct {
	Generation uint64
	Reviews    []model.Review
}

type DetailNotFound struct {
	Generation uint64
}

type DetailLoadingFinished struct {
	Generation uint64
}

type SetCommentSending struct {
	Sending bool
}

// ReviewMerged folds one incoming review into the held collection,
// deduplicating by ID with the incoming entry winning.
type ReviewMerged struct {
	Review model.Review
}

// Favorites actions.

type FavoritesLoaded struct {
	Offers []model.Offer
}

type SetFavoritesLoading struct {
	Loading bool
}

type ClearFavorites struct{}

// FavoriteStatusChanged patches every denormalized copy of the offer:
// catalog list, current detail, near-offers and the favorites list.
type FavoriteStatusChanged struct {
	Offer  model.Offer
	Status bool
}

func (ChangeCity) isAction()             {}
func (OffersLoaded) isAction()           {}
func (SetOffersLoading) isAction()       {}
func (SetError) isAction()               {}
func (SetAuthorizationStatus) isAction() {}
func (SetUser) isAction()                {}
func (DetailReset) isAction()            {}
func (DetailLoaded) isAction()           {}
func (NearOffersLoaded) isAction()       {}
func (ReviewsLoaded) isAction()          {}
func (DetailNotFound) isAction()         {}
func (DetailLoadingFinished) isAction()  {}
func (SetCommentSending) isAction()      {}
func (ReviewMerged) isAction()           {}
func (FavoritesLoaded) isAction()        {}
func (SetFavoritesLoading) isAction()    {}
func (ClearFavorites) isAction()         {}
func (FavoriteStatusChanged) isAction()  {}
