package store

import (
	"sort"

	"sixcities/internal/model"
)

// storedReviewLimit caps how many reviews the slice retains. The
// selector applies the same cap when deriving the view, so the two
// stay consistent no matter which side truncated first.
const storedReviewLimit = 10

// DetailState holds the in-progress offer-detail view. Generation is
// bumped by every DetailReset; results stamped with an older generation
// belong to a superseded navigation and are dropped.
type DetailState struct {
	Offer          *model.OfferDetails
	NearOffers     []model.Offer
	Reviews        []model.Review
	Loading        bool
	NotFound       bool
	CommentSending bool
	Generation     uint64
}

func initialDetail() DetailState {
	return DetailState{}
}

func reduceDetail(prev DetailState, action Action) DetailState {
	switch a := action.(type) {
	case DetailReset:
		return DetailState{
			Loading:    true,
			Generation: a.Generation,
		}
	case DetailLoaded:
		if a.Generation < prev.Generation {
			return prev
		}
		offer := a.Offer
		prev.Offer = &offer
		return prev
	case NearOffersLoaded:
		if a.Generation < prev.Generation {
			return prev
		}
		prev.NearOffers = a.Offers
		return prev
	case ReviewsLoaded:
		if a.Generation < prev.Generation {
			return prev
		}
		prev.Reviews = normalizeReviews(a.Reviews)
		return prev
	case DetailNotFound:
		if a.Generation < prev.Generation {
			return prev
		}
		prev.NotFound = true
		return prev
	case DetailLoadingFinished:
		if a.Generation < prev.Generation {
			return prev
		}
		prev.Loading = false
		return prev
	case SetCommentSending:
		prev.CommentSending = a.Sending
		return prev
	case ReviewMerged:
		prev.Reviews = mergeReview(prev.Reviews, a.Review)
		return prev
	case FavoriteStatusChanged:
		if prev.Offer != nil && prev.Offer.ID == a.Offer.ID {
			offer := *prev.Offer
			offer.IsFavorite = a.Status
			prev.Offer = &offer
		}
		prev.NearOffers = patchFavorite(prev.NearOffers, a.Offer.ID, a.Status)
		return prev
	default:
		return prev
	}
}

// normalizeReviews orders newest-first and keeps the most recent ten.
// Idempotent: re-applying it to its own output changes nothing.
func normalizeReviews(reviews []model.Review) []model.Review {
	sorted := append([]model.Review(nil), reviews...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].ParsedDate().After(sorted[j].ParsedDate())
	})
	if len(sorted) > storedReviewLimit {
		sorted = sorted[:storedReviewLimit]
	}
	return sorted
}

// mergeReview replaces the entry with the incoming review's ID, or
// appends when absent, then re-normalizes.
func mergeReview(reviews []model.Review, incoming model.Review) []model.Review {
	merged := append([]model.Review(nil), reviews...)
	replaced := false
	for i := range merged {
		if merged[i].ID == incoming.ID {
			merged[i] = incoming
			replaced = true
			break
		}
	}
	if !replaced {
		merged = append(merged, incoming)
	}
	return normalizeReviews(merged)
}
