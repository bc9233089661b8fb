package backend

import (
	"context"

	"shortlet/models"
)

// CreateBooking submits a booking intent. The response is returned decoded
// but loosely typed: the backend has shipped at least three identifier
// layouts over time (booking._id, _id, data.booking._id), so callers must
// probe the shapes rather than trust a fixed schema.
func (c *Client) CreateBooking(ctx context.Context, userID string, req models.BookingRequest) (map[string]any, error) {
	body := map[string]any{
		"propertyId":      req.PropertyID,
		"userId":          userID,
		"checkIn":         req.CheckInDate,
		"checkOut":        req.CheckOutDate,
		"guests":          req.GuestCount,
		"specialRequests": req.SpecialRequests,
		"paymentMethod":   string(req.PaymentMethod),
	}

	var resp map[string]any
	if err := c.postJSON(ctx, "/bookings", body, &resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// AttachPaymentProof records an uploaded proof-of-payment URL against a
// bank-transfer booking. Verification happens out-of-band by an operator.
func (c *Client) AttachPaymentProof(ctx context.Context, bookingID, proofURL string) error {
	body := map[string]any{
		"proofUrl": proofURL,
	}
	return c.postJSON(ctx, "/bookings/"+bookingID+"/payment-proof", body, nil)
}
