// Package adapter translates the server wire shapes into client entities.
// Every function is pure and total: bad input degrades, it never fails.
package adapter

import (
	"sixcities/internal/model"
	"sixcities/pkg/api"
)

// Offer flattens a wire offer: city.name becomes City, the nested
// location becomes Location{Lat, Lng, Zoom}. Unknown offer types are
// coerced to apartment to keep the enum closed.
func Offer(o api.Offer) model.Offer {
	return model.Offer{
		ID:           o.ID,
		Title:        o.Title,
		Type:         offerType(o.Type),
		Price:        o.Price,
		Rating:       o.Rating,
		IsPremium:    o.IsPremium,
		IsFavorite:   o.IsFavorite,
		PreviewImage: o.PreviewImage,
		City:         model.City(o.City.Name),
		Location: model.Location{
			Lat:  o.Location.Latitude,
			Lng:  o.Location.Longitude,
			Zoom: o.Location.Zoom,
		},
	}
}

func Offers(list []api.Offer) []model.Offer {
	offers := make([]model.Offer, 0, len(list))
	for _, o := range list {
		offers = append(offers, Offer(o))
	}
	return offers
}

func OfferDetails(d api.OfferDetails) model.OfferDetails {
	return model.OfferDetails{
		Offer:       Offer(d.Offer),
		Description: d.Description,
		Bedrooms:    d.Bedrooms,
		MaxAdults:   d.MaxAdults,
		Goods:       append([]string(nil), d.Goods...),
		Images:      append([]string(nil), d.Images...),
		Host: model.Host{
			Name:      d.Host.Name,
			AvatarURL: d.Host.AvatarURL,
			IsPro:     d.Host.IsPro,
		},
	}
}

// Review flattens user.name into UserName and user.avatarUrl into the
// optional AvatarURL.
func Review(r api.Review) model.Review {
	return model.Review{
		ID:        r.ID,
		UserName:  r.User.Name,
		AvatarURL: r.User.AvatarURL,
		Rating:    r.Rating,
		Comment:   r.Comment,
		Date:      r.Date,
	}
}

func Reviews(list []api.Review) []model.Review {
	reviews := make([]model.Review, 0, len(list))
	for _, r := range list {
		reviews = append(reviews, Review(r))
	}
	return reviews
}

func User(u api.User) model.User {
	return model.User{
		Name:      u.Name,
		AvatarURL: u.AvatarURL,
		Email:     u.Email,
		IsPro:     u.IsPro,
		Token:     u.Token,
	}
}

func offerType(raw string) model.OfferType {
	t := model.OfferType(raw)
	if !t.Valid() {
		return model.TypeApartment
	}
	return t
}
