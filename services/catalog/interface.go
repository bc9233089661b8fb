package catalog

import (
	"context"

	"shortlet/models"
)

// CatalogAPI is the slice of the backend the catalog reads from.
type CatalogAPI interface {
	ListProperties(ctx context.Context, filter models.PropertyFilter) ([]models.Property, error)
	GetProperty(ctx context.Context, id string) (*models.Property, error)
	ListAmenities(ctx context.Context) ([]models.Amenity, error)
}

// CatalogService serves property listing, search and detail data.
type CatalogService interface {
	List(ctx context.Context, filter models.PropertyFilter) ([]models.Property, error)
	Get(ctx context.Context, id string) (*models.Property, error)
	Amenities(ctx context.Context) ([]models.Amenity, error)
}
