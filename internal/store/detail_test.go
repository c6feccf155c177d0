package store

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sixcities/internal/model"
)

func reviewOn(id, date string) model.Review {
	return model.Review{ID: id, Date: date, UserName: "u-" + id}
}

func TestReduceDetail_ResetClearsEverything(t *testing.T) {
	offer := model.OfferDetails{Offer: model.Offer{ID: "o1"}}
	prev := DetailState{
		Offer:      &offer,
		NearOffers: []model.Offer{{ID: "n1"}},
		Reviews:    []model.Review{reviewOn("r1", "2020-05-12T10:00:00.000Z")},
		NotFound:   true,
		Generation: 1,
	}

	next := reduceDetail(prev, DetailReset{Generation: 2})

	assert.Nil(t, next.Offer)
	assert.Empty(t, next.NearOffers)
	assert.Empty(t, next.Reviews)
	assert.True(t, next.Loading)
	assert.False(t, next.NotFound)
	assert.Equal(t, uint64(2), next.Generation)
}

func TestReduceDetail_StaleActionsDropped(t *testing.T) {
	state := reduceDetail(initialDetail(), DetailReset{Generation: 5})

	stale := []Action{
		DetailLoaded{Generation: 4, Offer: model.OfferDetails{Offer: model.Offer{ID: "stale"}}},
		NearOffersLoaded{Generation: 4, Offers: []model.Offer{{ID: "stale"}}},
		ReviewsLoaded{Generation: 4, Reviews: []model.Review{reviewOn("stale", "2020-01-01T00:00:00.000Z")}},
		DetailNotFound{Generation: 4},
		DetailLoadingFinished{Generation: 4},
	}
	for _, action := range stale {
		state = reduceDetail(state, action)
	}

	assert.Nil(t, state.Offer)
	assert.Empty(t, state.NearOffers)
	assert.Empty(t, state.Reviews)
	assert.False(t, state.NotFound)
	assert.True(t, state.Loading, "stale completion must not clear the newer navigation's loading flag")
}

func TestReduceDetail_CurrentGenerationApplies(t *testing.T) {
	state := reduceDetail(initialDetail(), DetailReset{Generation: 3})
	state = reduceDetail(state, DetailLoaded{Generation: 3, Offer: model.OfferDetails{Offer: model.Offer{ID: "o1"}}})
	state = reduceDetail(state, DetailLoadingFinished{Generation: 3})

	require.NotNil(t, state.Offer)
	assert.Equal(t, "o1", state.Offer.ID)
	assert.False(t, state.Loading)
}

func TestReduceDetail_NotFound(t *testing.T) {
	state := reduceDetail(initialDetail(), DetailReset{Generation: 1})
	state = reduceDetail(state, DetailNotFound{Generation: 1})
	assert.True(t, state.NotFound)
}

func TestReduceDetail_ReviewsLoadedSortsAndCaps(t *testing.T) {
	reviews := make([]model.Review, 0, 12)
	for i := 1; i <= 12; i++ {
		reviews = append(reviews, reviewOn(
			fmt.Sprintf("r%d", i),
			fmt.Sprintf("2024-01-%02dT00:00:00.000Z", i),
		))
	}

	state := reduceDetail(initialDetail(), DetailReset{Generation: 1})
	state = reduceDetail(state, ReviewsLoaded{Generation: 1, Reviews: reviews})

	require.Len(t, state.Reviews, 10)
	assert.Equal(t, "r12", state.Reviews[0].ID)
	assert.Equal(t, "r3", state.Reviews[9].ID)
}

func TestReduceDetail_NewestFirstOrdering(t *testing.T) {
	r1 := reviewOn("r1", "2020-05-12T00:00:00.000Z")
	r2 := reviewOn("r2", "2019-04-24T00:00:00.000Z")

	state := reduceDetail(initialDetail(), ReviewsLoaded{Reviews: []model.Review{r2, r1}})

	require.Len(t, state.Reviews, 2)
	assert.Equal(t, "r1", state.Reviews[0].ID)
	assert.Equal(t, "r2", state.Reviews[1].ID)
}

func TestReduceDetail_MergeReplacesById(t *testing.T) {
	existing := []model.Review{
		{ID: "x", Comment: "old text", Date: "2020-05-12T00:00:00.000Z"},
		{ID: "y", Comment: "other", Date: "2020-05-11T00:00:00.000Z"},
	}
	state := DetailState{Reviews: existing}

	incoming := model.Review{ID: "x", Comment: "new text", Date: "2020-05-12T00:00:00.000Z"}
	next := reduceDetail(state, ReviewMerged{Review: incoming})

	require.Len(t, next.Reviews, 2, "merging an existing id must not grow the collection")
	assert.Equal(t, "new text", next.Reviews[0].Comment)
	assert.Equal(t, "old text", existing[0].Comment, "input must not be mutated")
}

func TestReduceDetail_MergeAppendsNewReview(t *testing.T) {
	state := DetailState{Reviews: []model.Review{
		{ID: "old", Date: "2019-01-01T00:00:00.000Z"},
	}}

	next := reduceDetail(state, ReviewMerged{Review: model.Review{ID: "new", Date: "2024-01-01T00:00:00.000Z"}})

	require.Len(t, next.Reviews, 2)
	assert.Equal(t, "new", next.Reviews[0].ID)
}

func TestReduceDetail_CommentSending(t *testing.T) {
	state := reduceDetail(initialDetail(), SetCommentSending{Sending: true})
	assert.True(t, state.CommentSending)
	state = reduceDetail(state, SetCommentSending{Sending: false})
	assert.False(t, state.CommentSending)
}

func TestReduceDetail_FavoritePatchesOfferAndNear(t *testing.T) {
	offer := model.OfferDetails{Offer: model.Offer{ID: "o1"}}
	state := DetailState{
		Offer:      &offer,
		NearOffers: []model.Offer{{ID: "o1"}, {ID: "o2"}},
	}

	next := reduceDetail(state, FavoriteStatusChanged{Offer: model.Offer{ID: "o1"}, Status: true})

	require.NotNil(t, next.Offer)
	assert.True(t, next.Offer.IsFavorite)
	assert.True(t, next.NearOffers[0].IsFavorite)
	assert.False(t, next.NearOffers[1].IsFavorite)
	assert.False(t, offer.IsFavorite, "previous snapshot must not be mutated")
}

func TestNormalizeReviews_Idempotent(t *testing.T) {
	reviews := []model.Review{
		reviewOn("a", "2021-03-01T00:00:00.000Z"),
		reviewOn("b", "2022-07-15T00:00:00.000Z"),
		reviewOn("c", "2020-11-30T00:00:00.000Z"),
	}

	once := normalizeReviews(reviews)
	twice := normalizeReviews(once)

	assert.Equal(t, once, twice)
}
