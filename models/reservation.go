package models

import "time"

// PaymentMethod is one of three mutually exclusive settlement paths.
type PaymentMethod string

const (
	PaymentOnlineGateway PaymentMethod = "online_gateway"
	PaymentBankTransfer  PaymentMethod = "bank_transfer"
	PaymentPayOnsite     PaymentMethod = "pay_onsite"
)

// Valid reports whether m is one of the three known payment methods.
func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentOnlineGateway, PaymentBankTransfer, PaymentPayOnsite:
		return true
	}
	return false
}

// BookingRequest is the client-constructed intent to reserve a property for a
// date range and guest count. Constructed fresh per reservation attempt and
// discarded after submission.
type BookingRequest struct {
	PropertyID      string        `json:"propertyId"`
	CheckInDate     string        `json:"checkInDate"`  // YYYY-MM-DD
	CheckOutDate    string        `json:"checkOutDate"` // YYYY-MM-DD
	GuestCount      int           `json:"guestCount"`
	SpecialRequests string        `json:"specialRequests,omitempty"`
	PaymentMethod   PaymentMethod `json:"paymentMethod,omitempty"`
}

// SessionState names a stage of the reservation workflow. There is no
// terminal failed state: failed attempts go back to Idle so the user can
// retry with the dates preserved.
type SessionState string

const (
	StateIdle                  SessionState = "idle"
	StateAwaitingPaymentChoice SessionState = "awaiting_payment_choice"
	StateSubmitting            SessionState = "submitting"
	StateSucceeded             SessionState = "succeeded"
)

// ReservationSession holds one reservation attempt's transient state. It is
// scoped to a single property-detail view and expires with its cache TTL.
// Failed attempts return to Idle with the dates and guest count preserved so
// the user can retry without re-entering them.
type ReservationSession struct {
	SessionID       string         `json:"sessionId"`
	UserID          string         `json:"userId"`
	Email           string         `json:"email"`
	Request         BookingRequest `json:"request"`
	TotalAmount     float64        `json:"totalAmount"`
	Currency        string         `json:"currency,omitempty"`
	State           SessionState   `json:"state"`
	SelectedMethod  PaymentMethod  `json:"selectedMethod,omitempty"`
	MethodConfirmed bool           `json:"methodConfirmed"`
	Loading         bool           `json:"loading"`
	LastError       string         `json:"lastError,omitempty"`
	CreatedAt       time.Time      `json:"createdAt"`
}
