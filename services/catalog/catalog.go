package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"shortlet/models"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// Listing pages and the amenity catalogue tolerate short staleness, so they
// are cached briefly. Availability results are never cached anywhere.
const (
	listTTL      = 60 * time.Second
	amenitiesTTL = 10 * time.Minute
)

// DefaultCatalogService reads from the backend with a small Redis cache in
// front of the listing endpoints.
type DefaultCatalogService struct {
	API    CatalogAPI
	Cache  *redis.Client
	Logger *zap.Logger
}

// List returns the filtered property listing, from cache when fresh.
func (s *DefaultCatalogService) List(ctx context.Context, filter models.PropertyFilter) ([]models.Property, error) {
	key := listCacheKey(filter)

	if s.Cache != nil {
		if data, err := s.Cache.Get(ctx, key).Result(); err == nil {
			var cached []models.Property
			if err := json.Unmarshal([]byte(data), &cached); err == nil {
				return cached, nil
			}
		}
	}

	properties, err := s.API.ListProperties(ctx, filter)
	if err != nil {
		return nil, err
	}

	if s.Cache != nil {
		if data, err := json.Marshal(properties); err == nil {
			if err := s.Cache.Set(ctx, key, data, listTTL).Err(); err != nil {
				s.Logger.Debug("failed to cache property listing", zap.Error(err))
			}
		}
	}
	return properties, nil
}

// Get returns a property detail. Always fetched fresh: the detail page feeds
// the booking workflow and must not show stale pricing or guest limits.
func (s *DefaultCatalogService) Get(ctx context.Context, id string) (*models.Property, error) {
	return s.API.GetProperty(ctx, id)
}

// Amenities returns the amenity catalogue, cached.
func (s *DefaultCatalogService) Amenities(ctx context.Context) ([]models.Amenity, error) {
	const key = "catalog:amenities"

	if s.Cache != nil {
		if data, err := s.Cache.Get(ctx, key).Result(); err == nil {
			var cached []models.Amenity
			if err := json.Unmarshal([]byte(data), &cached); err == nil {
				return cached, nil
			}
		}
	}

	amenities, err := s.API.ListAmenities(ctx)
	if err != nil {
		return nil, err
	}

	if s.Cache != nil {
		if data, err := json.Marshal(amenities); err == nil {
			if err := s.Cache.Set(ctx, key, data, amenitiesTTL).Err(); err != nil {
				s.Logger.Debug("failed to cache amenities", zap.Error(err))
			}
		}
	}
	return amenities, nil
}

func listCacheKey(filter models.PropertyFilter) string {
	return fmt.Sprintf("catalog:list:%d:%s:%s:%d", filter.Limit, filter.Status, filter.City, filter.Guests)
}
