package backend

import (
	"context"
	"net/url"

	"shortlet/models"
)

// ListReviews fetches the reviews for a property.
func (c *Client) ListReviews(ctx context.Context, propertyID string) ([]models.Review, error) {
	var resp struct {
		Reviews []models.Review `json:"reviews"`
	}
	if err := c.getJSON(ctx, "/properties/"+url.PathEscape(propertyID)+"/reviews", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Reviews, nil
}

// CreateReview submits a review for a property on behalf of a user.
func (c *Client) CreateReview(ctx context.Context, propertyID, userID string, input models.ReviewInput) (*models.Review, error) {
	body := map[string]any{
		"userId":  userID,
		"rating":  input.Rating,
		"comment": input.Comment,
	}

	var resp struct {
		Review models.Review `json:"review"`
	}
	if err := c.postJSON(ctx, "/properties/"+url.PathEscape(propertyID)+"/reviews", body, &resp); err != nil {
		return nil, err
	}
	return &resp.Review, nil
}
