package backend

import (
	"context"

	"shortlet/models"
)

// InitializePayment requests a hosted-payment initialization for a booking.
// The gateway response may arrive either at the top level or nested under
// "data"; both layouts are in production.
func (c *Client) InitializePayment(ctx context.Context, bookingID, email string) (*models.PaymentInitResult, error) {
	body := map[string]any{
		"bookingId": bookingID,
		"email":     email,
	}

	var resp struct {
		models.PaymentInitResult
		Data *models.PaymentInitResult `json:"data"`
	}
	if err := c.postJSON(ctx, "/payments/initialize", body, &resp); err != nil {
		return nil, err
	}

	result := resp.PaymentInitResult
	if result.AuthorizationURL == "" && resp.Data != nil {
		result = *resp.Data
	}
	return &result, nil
}
