package api

// Wire shapes exactly as the six-cities server sends them. Field
// flattening into client entities happens in internal/adapter.

type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Zoom      int     `json:"zoom"`
}

type CityRef struct {
	Name     string      `json:"name"`
	Location Coordinates `json:"location"`
}

type Offer struct {
	ID           string      `json:"id"`
	Title        string      `json:"title"`
	Type         string      `json:"type"`
	Price        int         `json:"price"`
	Rating       float64     `json:"rating"`
	IsFavorite   bool        `json:"isFavorite"`
	IsPremium    bool        `json:"isPremium"`
	PreviewImage string      `json:"previewImage"`
	City         CityRef     `json:"city"`
	Location     Coordinates `json:"location"`
}

type HostRef struct {
	Name      string `json:"name"`
	AvatarURL string `json:"avatarUrl"`
	IsPro     bool   `json:"isPro"`
}

type OfferDetails struct {
	Offer
	Description string   `json:"description"`
	Bedrooms    int      `json:"bedrooms"`
	MaxAdults   int      `json:"maxAdults"`
	Goods       []string `json:"goods"`
	Images      []string `json:"images"`
	Host        HostRef  `json:"host"`
}

type UserRef struct {
	Name      string `json:"name"`
	AvatarURL string `json:"avatarUrl"`
	IsPro     bool   `json:"isPro"`
}

type Review struct {
	ID      string  `json:"id"`
	Date    string  `json:"date"`
	User    UserRef `json:"user"`
	Comment string  `json:"comment"`
	Rating  int     `json:"rating"`
}

type User struct {
	Name      string `json:"name"`
	AvatarURL string `json:"avatarUrl"`
	Email     string `json:"email"`
	IsPro     bool   `json:"isPro"`
	Token     string `json:"token"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type CommentRequest struct {
	Comment string `json:"comment"`
	Rating  int    `json:"rating"`
}
