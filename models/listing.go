package models

// SaleMode classifies a listing as offered for sale, for rent, or neither.
// The source data carried an optional boolean here; listings that never
// stated a mode are kept distinct from explicit rentals so call sites can
// decide how to bucket them.
type SaleMode string

const (
	SaleModeUnspecified SaleMode = ""
	SaleModeSale        SaleMode = "sale"
	SaleModeRent        SaleMode = "rent"
)

// SellerType distinguishes professional storefront accounts from individuals.
type SellerType string

const (
	SellerTypeStore      SellerType = "STORE"
	SellerTypeIndividual SellerType = "INDIVIDUAL"
)

// Seller is the party behind a listing.
type Seller struct {
	Type     SellerType `json:"type" bson:"type"`
	Name     string     `json:"name" bson:"name"`
	Verified bool       `json:"isVerifiedSeller" bson:"is_verified_seller"`
	Image    string     `json:"image,omitempty" bson:"image,omitempty"`
	Rating   float64    `json:"rating,omitempty" bson:"rating,omitempty"`
	Reviews  int        `json:"reviews,omitempty" bson:"reviews,omitempty"`
	Phone    string     `json:"phone,omitempty" bson:"phone,omitempty"`
	Email    string     `json:"email,omitempty" bson:"email,omitempty"`
}

// Listing is a single property parcel offered on the marketplace.
type Listing struct {
	ID          int      `json:"id" bson:"id"`
	Subject     string   `json:"subject" bson:"subject"`
	Location    string   `json:"location" bson:"location"`
	Price       Price    `json:"price" bson:"price"`
	Images      []string `json:"images" bson:"images"`
	Seller      Seller   `json:"seller" bson:"seller"`
	Description string   `json:"description,omitempty" bson:"description,omitempty"`
	Area        float64  `json:"area,omitempty" bson:"area,omitempty"`
	AreaUnit    string   `json:"areaUnit,omitempty" bson:"area_unit,omitempty"`
	Featured    bool     `json:"featured,omitempty" bson:"featured,omitempty"`
	SaleStatus  SaleMode `json:"saleStatus,omitempty" bson:"sale_status,omitempty"`
	CreatedAt   string   `json:"createdAt,omitempty" bson:"created_at,omitempty"`
	Features    []string `json:"features,omitempty" bson:"features,omitempty"`
}

// CoverImage returns the first image, the one card views display.
func (l Listing) CoverImage() string {
	if len(l.Images) == 0 {
		return ""
	}
	return l.Images[0]
}

// City returns the city portion of the "City, District" location string.
func (l Listing) City() string {
	for i := 0; i < len(l.Location); i++ {
		if l.Location[i] == ',' {
			return l.Location[:i]
		}
	}
	return l.Location
}
