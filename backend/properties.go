package backend

import (
	"context"
	"net/url"
	"strconv"

	"shortlet/models"
)

// ListProperties fetches the property listing with optional filters.
func (c *Client) ListProperties(ctx context.Context, filter models.PropertyFilter) ([]models.Property, error) {
	query := url.Values{}
	if filter.Limit > 0 {
		query.Set("limit", strconv.Itoa(filter.Limit))
	}
	if filter.Status != "" {
		query.Set("status", filter.Status)
	}
	if filter.City != "" {
		query.Set("city", filter.City)
	}
	if filter.Guests > 0 {
		query.Set("guests", strconv.Itoa(filter.Guests))
	}

	var resp struct {
		Properties []models.Property `json:"properties"`
	}
	if err := c.getJSON(ctx, "/properties", query, &resp); err != nil {
		return nil, err
	}
	return resp.Properties, nil
}

// GetProperty fetches a single property by ID, amenities included.
func (c *Client) GetProperty(ctx context.Context, id string) (*models.Property, error) {
	var resp struct {
		Property models.Property `json:"property"`
	}
	if err := c.getJSON(ctx, "/properties/"+url.PathEscape(id), nil, &resp); err != nil {
		return nil, err
	}
	return &resp.Property, nil
}

// ListAmenities fetches the platform-wide amenity catalogue.
func (c *Client) ListAmenities(ctx context.Context) ([]models.Amenity, error) {
	var resp struct {
		Amenities []models.Amenity `json:"amenities"`
	}
	if err := c.getJSON(ctx, "/amenities", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Amenities, nil
}

// CheckAvailability asks the backend whether the date range is free of
// conflicting bookings. Advisory only: the backend re-validates at
// booking-creation time.
func (c *Client) CheckAvailability(ctx context.Context, propertyID, checkIn, checkOut string) (bool, error) {
	query := url.Values{}
	query.Set("checkIn", checkIn)
	query.Set("checkOut", checkOut)

	var resp struct {
		Available bool `json:"available"`
	}
	if err := c.getJSON(ctx, "/properties/"+url.PathEscape(propertyID)+"/availability", query, &resp); err != nil {
		return false, err
	}
	return resp.Available, nil
}
