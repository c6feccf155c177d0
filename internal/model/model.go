package model

import "time"

// City is one of the six fixed cities offers are grouped by.
type City string

const (
	CityParis      City = "Paris"
	CityCologne    City = "Cologne"
	CityBrussels   City = "Brussels"
	CityAmsterdam  City = "Amsterdam"
	CityHamburg    City = "Hamburg"
	CityDusseldorf City = "Dusseldorf"
)

// DefaultCity is the catalog selection before the user picks anything.
const DefaultCity = CityParis

// Cities returns the fixed city list in display order.
func Cities() []City {
	return []City{
		CityParis,
		CityCologne,
		CityBrussels,
		CityAmsterdam,
		CityHamburg,
		CityDusseldorf,
	}
}

func (c City) Valid() bool {
	switch c {
	case CityParis, CityCologne, CityBrussels, CityAmsterdam, CityHamburg, CityDusseldorf:
		return true
	}
	return false
}

// OfferType is the closed set of housing kinds.
type OfferType string

const (
	TypeApartment OfferType = "apartment"
	TypeRoom      OfferType = "room"
	TypeHouse     OfferType = "house"
	TypeHotel     OfferType = "hotel"
)

func (t OfferType) Valid() bool {
	switch t {
	case TypeApartment, TypeRoom, TypeHouse, TypeHotel:
		return true
	}
	return false
}

// Location frames an offer on the map.
type Location struct {
	Lat  float64
	Lng  float64
	Zoom int
}

// Offer is the summary shape held by catalog, near-offers and favorites.
type Offer struct {
	ID           string
	Title        string
	Type         OfferType
	Price        int
	Rating       float64
	IsPremium    bool
	IsFavorite   bool
	PreviewImage string
	City         City
	Location     Location
}

// Host describes the person behind an offer.
type Host struct {
	Name      string
	AvatarURL string
	IsPro     bool
}

// OfferDetails extends Offer with the detail-page fields.
type OfferDetails struct {
	Offer
	Description string
	Bedrooms    int
	MaxAdults   int
	Goods       []string
	Images      []string
	Host        Host
}

// Review is a single comment left for an offer.
type Review struct {
	ID        string
	UserName  string
	AvatarURL string
	Rating    int
	Comment   string
	Date      string
}

// ParsedDate parses the review timestamp. Unparseable dates sort oldest.
func (r Review) ParsedDate() time.Time {
	t, err := time.Parse(time.RFC3339, r.Date)
	if err != nil {
		return time.Time{}
	}
	return t
}

// User is the authenticated session profile.
type User struct {
	Name      string
	AvatarURL string
	Email     string
	IsPro     bool
	Token     string
}

// AuthorizationStatus is tri-state: Unknown means the check has not
// completed yet and must not be treated as a denial.
type AuthorizationStatus string

const (
	AuthUnknown       AuthorizationStatus = "unknown"
	AuthAuthorized    AuthorizationStatus = "authorized"
	AuthNotAuthorized AuthorizationStatus = "not-authorized"
)

// SortKind selects the catalog ordering.
type SortKind string

const (
	SortPopular    SortKind = "popular"
	SortPriceAsc   SortKind = "price-asc"
	SortPriceDesc  SortKind = "price-desc"
	SortRatingDesc SortKind = "rating-desc"
)
