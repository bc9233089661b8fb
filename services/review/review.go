// Package review serves property reviews. Persistence lives in the backend;
// this service only shapes and relays.
package review

import (
	"context"

	"shortlet/models"
)

// ReviewAPI is the slice of the backend the review service uses.
type ReviewAPI interface {
	ListReviews(ctx context.Context, propertyID string) ([]models.Review, error)
	CreateReview(ctx context.Context, propertyID, userID string, input models.ReviewInput) (*models.Review, error)
}

// ReviewService lists and submits property reviews.
type ReviewService interface {
	List(ctx context.Context, propertyID string) ([]models.Review, error)
	Create(ctx context.Context, propertyID, userID string, input models.ReviewInput) (*models.Review, error)
}

// DefaultReviewService is the concrete implementation.
type DefaultReviewService struct {
	API ReviewAPI
}

func (s *DefaultReviewService) List(ctx context.Context, propertyID string) ([]models.Review, error) {
	return s.API.ListReviews(ctx, propertyID)
}

func (s *DefaultReviewService) Create(ctx context.Context, propertyID, userID string, input models.ReviewInput) (*models.Review, error) {
	return s.API.CreateReview(ctx, propertyID, userID, input)
}
