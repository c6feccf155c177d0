// Package workflow implements the asynchronous operations that drive
// the state store: each one calls the API client, adapts the wire
// shapes and dispatches plain state updates. No workflow retries on
// its own; re-invocation is the only retry.
package workflow

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"sixcities/internal/adapter"
	"sixcities/internal/model"
	"sixcities/internal/store"
	"sixcities/internal/token"
	"sixcities/pkg/api"
)

// GenericErrorMessage is shown for any request failure a workflow does
// not map to something more specific.
const GenericErrorMessage = "Server is unavailable. Try again later."

// LoginErrorMessage overrides the generic one for failed sign-ins.
const LoginErrorMessage = "Failed to sign in. Check your credentials and try again."

// ErrNotAuthorized is returned by operations gated to signed-in
// sessions; callers should redirect to the login flow instead.
var ErrNotAuthorized = errors.New("not authorized")

// errOfferNotFound marks a 404 from the offer-detail request
// specifically; 404s from the sibling requests stay generic.
var errOfferNotFound = errors.New("offer not found")

type Workflows struct {
	api    *api.Client
	store  *store.Store
	tokens token.Store
	logger *zap.Logger
}

func New(apiClient *api.Client, st *store.Store, tokens token.Store, logger *zap.Logger) *Workflows {
	return &Workflows{
		api:    apiClient,
		store:  st,
		tokens: tokens,
		logger: logger,
	}
}

// ChangeCity switches the catalog selection. Synchronous.
func (w *Workflows) ChangeCity(city model.City) error {
	if !city.Valid() {
		return fmt.Errorf("%w: unknown city %q", ErrValidation, city)
	}
	w.store.Dispatch(store.ChangeCity{City: city})
	return nil
}

// FetchOffers replaces the catalog with the server's offer list. The
// loading flag is cleared no matter how the request ends.
func (w *Workflows) FetchOffers(ctx context.Context) error {
	w.store.Dispatch(store.SetOffersLoading{Loading: true})
	w.store.Dispatch(store.SetError{})
	defer w.store.Dispatch(store.SetOffersLoading{Loading: false})

	wireOffers, err := w.api.Offers(ctx)
	if err != nil {
		w.logger.Warn("fetch offers failed", zap.Error(err))
		w.store.Dispatch(store.SetError{Message: GenericErrorMessage})
		return fmt.Errorf("fetch offers: %w", err)
	}

	w.store.Dispatch(store.OffersLoaded{Offers: adapter.Offers(wireOffers)})
	return nil
}

// FetchFavorites replaces the favorites list. Callers are responsible
// for only invoking it with an authenticated session.
func (w *Workflows) FetchFavorites(ctx context.Context) error {
	w.store.Dispatch(store.SetFavoritesLoading{Loading: true})
	defer w.store.Dispatch(store.SetFavoritesLoading{Loading: false})

	wireOffers, err := w.api.Favorites(ctx)
	if err != nil {
		w.logger.Warn("fetch favorites failed", zap.Error(err))
		w.store.Dispatch(store.SetError{Message: GenericErrorMessage})
		return fmt.Errorf("fetch favorites: %w", err)
	}

	w.store.Dispatch(store.FavoritesLoaded{Offers: adapter.Offers(wireOffers)})
	return nil
}

// FetchOfferByID populates the detail slice from three parallel
// requests: the offer, its near-offers and its reviews. The join is
// fail-fast; on any failure this attempt's results are discarded.
// A superseding navigation bumps the generation, so a slow response
// from this one can no longer touch the slice.
func (w *Workflows) FetchOfferByID(ctx context.Context, id string) error {
	gen := w.store.NextDetailGeneration()
	w.store.Dispatch(store.DetailReset{Generation: gen})
	defer w.store.Dispatch(store.DetailLoadingFinished{Generation: gen})

	var (
		details api.OfferDetails
		near    []api.Offer
		reviews []api.Review
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		d, err := w.api.Offer(gctx, id)
		if err != nil {
			if api.IsNotFound(err) {
				return errOfferNotFound
			}
			return fmt.Errorf("fetch offer: %w", err)
		}
		details = d
		return nil
	})
	g.Go(func() error {
		n, err := w.api.NearbyOffers(gctx, id)
		if err != nil {
			return fmt.Errorf("fetch near offers: %w", err)
		}
		near = n
		return nil
	})
	g.Go(func() error {
		r, err := w.api.Comments(gctx, id)
		if err != nil {
			return fmt.Errorf("fetch reviews: %w", err)
		}
		reviews = r
		return nil
	})

	if err := g.Wait(); err != nil {
		if errors.Is(err, errOfferNotFound) {
			w.store.Dispatch(store.DetailNotFound{Generation: gen})
			return fmt.Errorf("offer %s: %w", id, err)
		}
		w.logger.Warn("fetch offer detail failed", zap.String("offer_id", id), zap.Error(err))
		w.store.Dispatch(store.SetError{Message: GenericErrorMessage})
		return err
	}

	w.store.Dispatch(store.DetailLoaded{Generation: gen, Offer: adapter.OfferDetails(details)})
	w.store.Dispatch(store.NearOffersLoaded{Generation: gen, Offers: adapter.Offers(near)})
	w.store.Dispatch(store.ReviewsLoaded{Generation: gen, Reviews: adapter.Reviews(reviews)})
	return nil
}

// CheckAuth resolves the authorization tri-state using the stored
// token. A rejected or missing token is the normal not-authenticated
// outcome, not an error.
func (w *Workflows) CheckAuth(ctx context.Context) error {
	wireUser, err := w.api.CheckAuth(ctx)
	if err != nil {
		w.logger.Info("session check rejected", zap.Error(err))
		w.store.Dispatch(store.SetAuthorizationStatus{Status: model.AuthNotAuthorized})
		w.store.Dispatch(store.SetUser{User: nil})
		return nil
	}

	user := adapter.User(wireUser)
	w.store.Dispatch(store.SetAuthorizationStatus{Status: model.AuthAuthorized})
	w.store.Dispatch(store.SetUser{User: &user})

	if err := w.FetchFavorites(ctx); err != nil {
		w.logger.Warn("favorites refresh after auth check failed", zap.Error(err))
	}
	return nil
}

// Login validates the credentials client-side, then signs in. A
// validation failure never reaches the network. Request failures are
// recorded in state and returned so the caller can stay on the form.
func (w *Workflows) Login(ctx context.Context, email, password string) error {
	if err := validateCredentials(email, password); err != nil {
		return err
	}

	wireUser, err := w.api.Login(ctx, email, password)
	if err != nil {
		w.logger.Warn("login failed", zap.Error(err))
		w.store.Dispatch(store.SetError{Message: LoginErrorMessage})
		return fmt.Errorf("login: %w", err)
	}

	if err := w.tokens.Set(ctx, wireUser.Token); err != nil {
		w.logger.Warn("token persist failed", zap.Error(err))
	}

	user := adapter.User(wireUser)
	w.store.Dispatch(store.SetAuthorizationStatus{Status: model.AuthAuthorized})
	w.store.Dispatch(store.SetUser{User: &user})
	w.store.Dispatch(store.SetError{})

	if err := w.FetchFavorites(ctx); err != nil {
		w.logger.Warn("favorites refresh after login failed", zap.Error(err))
	}
	return nil
}

// Logout clears the local session unconditionally; the server call is
// fire-and-forget. A client must not stay signed in just because the
// server was unreachable.
func (w *Workflows) Logout(ctx context.Context) error {
	if err := w.tokens.Clear(ctx); err != nil {
		w.logger.Warn("token clear failed", zap.Error(err))
	}

	w.store.Dispatch(store.SetAuthorizationStatus{Status: model.AuthNotAuthorized})
	w.store.Dispatch(store.SetUser{User: nil})
	w.store.Dispatch(store.ClearFavorites{})

	if err := w.api.Logout(ctx); err != nil {
		w.logger.Warn("server-side logout failed", zap.Error(err))
	}
	return nil
}

// ToggleFavorite flips the favorite status of one offer. Gated to
// authenticated sessions; the state change is applied only after the
// server confirms, so there is nothing to roll back on failure.
func (w *Workflows) ToggleFavorite(ctx context.Context, id string, status bool) error {
	if w.store.State().Session.Status != model.AuthAuthorized {
		return ErrNotAuthorized
	}

	wireOffer, err := w.api.SetFavorite(ctx, id, status)
	if err != nil {
		w.logger.Warn("toggle favorite failed", zap.String("offer_id", id), zap.Error(err))
		w.store.Dispatch(store.SetError{Message: GenericErrorMessage})
		return fmt.Errorf("toggle favorite: %w", err)
	}

	w.store.Dispatch(store.FavoriteStatusChanged{Offer: adapter.Offer(wireOffer), Status: status})
	return nil
}

// PostComment submits a review for the current offer. The server may
// answer with the created review alone or the whole updated list;
// single reviews are merged, lists replace. Failures are recorded and
// returned so the caller can keep the draft for a retry.
func (w *Workflows) PostComment(ctx context.Context, id, comment string, rating int) error {
	if err := validateComment(comment, rating); err != nil {
		return err
	}

	w.store.Dispatch(store.SetCommentSending{Sending: true})
	defer w.store.Dispatch(store.SetCommentSending{Sending: false})

	wireReviews, isList, err := w.api.PostComment(ctx, id, comment, rating)
	if err != nil {
		w.logger.Warn("post comment failed", zap.String("offer_id", id), zap.Error(err))
		w.store.Dispatch(store.SetError{Message: GenericErrorMessage})
		return fmt.Errorf("post comment: %w", err)
	}

	if isList {
		gen := w.store.State().Detail.Generation
		w.store.Dispatch(store.ReviewsLoaded{Generation: gen, Reviews: adapter.Reviews(wireReviews)})
		return nil
	}
	w.store.Dispatch(store.ReviewMerged{Review: adapter.Review(wireReviews[0])})
	return nil
}
