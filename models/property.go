package models

import "time"

// Property represents a shortlet apartment listing as served by the backend.
type Property struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	City          string    `json:"city"`
	Address       string    `json:"address"`
	Latitude      float64   `json:"latitude,omitempty"`
	Longitude     float64   `json:"longitude,omitempty"`
	PricePerNight float64   `json:"pricePerNight"`
	Currency      string    `json:"currency,omitempty"`
	MaxGuests     int       `json:"maxGuests"`
	Bedrooms      int       `json:"bedrooms,omitempty"`
	Bathrooms     int       `json:"bathrooms,omitempty"`
	Status        string    `json:"status"` // e.g. "active", "unlisted"
	Images        []string  `json:"images,omitempty"`
	Amenities     []Amenity `json:"amenities,omitempty"`
	Rating        float64   `json:"rating,omitempty"`
	ReviewCount   int       `json:"reviewCount,omitempty"`
	CreatedAt     time.Time `json:"createdAt,omitempty"`
}

// Amenity is a feature a property offers (wifi, parking, pool, ...).
type Amenity struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Icon string `json:"icon,omitempty"`
}

// PropertyFilter narrows a property listing request.
type PropertyFilter struct {
	Limit  int    `form:"limit"`
	Status string `form:"status"`
	City   string `form:"city"`
	Guests int    `form:"guests"`
}
