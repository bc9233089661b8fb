package reservation

import (
	"context"

	"shortlet/models"
)

// BookingAPI is the slice of the backend the reservation workflow drives.
type BookingAPI interface {
	GetProperty(ctx context.Context, id string) (*models.Property, error)
	CreateBooking(ctx context.Context, userID string, req models.BookingRequest) (map[string]any, error)
}

// PaymentChoice is the result of selecting a payment method. Bank transfer
// is a two-step commitment: the first selection returns the account details
// with RequiresConfirmation set, and only a second, explicit confirmation
// commits the method.
type PaymentChoice struct {
	Session              *models.ReservationSession `json:"session"`
	RequiresConfirmation bool                       `json:"requiresConfirmation"`
	BankDetails          *models.BankDetails        `json:"bankDetails,omitempty"`
}

// ReservationService drives one reservation attempt through the workflow:
// availability check, initiation, payment choice, submission, cancellation.
// Every session operation takes the authenticated userID and refuses to act
// on a session opened by someone else.
type ReservationService interface {
	CheckAvailability(ctx context.Context, viewerID, propertyID, checkIn, checkOut string) (AvailabilityStatus, error)
	Initiate(ctx context.Context, userID, email string, req models.BookingRequest) (*models.ReservationSession, error)
	Get(ctx context.Context, userID, sessionID string) (*models.ReservationSession, error)
	SelectPaymentMethod(ctx context.Context, userID, sessionID string, method models.PaymentMethod, confirm bool) (*PaymentChoice, error)
	Submit(ctx context.Context, userID, sessionID string) (*models.PaymentOutcome, error)
	Cancel(ctx context.Context, userID, sessionID string) error
}
