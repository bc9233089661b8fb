package reservation

import "fmt"

// User-facing message constants. Handlers surface these verbatim.
const (
	MsgNotAvailable      = "Property not available for selected dates"
	MsgMissingDates      = "Please select your check-in and check-out dates"
	MsgGatewayDown       = "payment gateway unavailable"
	MsgNoBookingID       = "booking created but no identifier received"
	MsgMethodNotSelected = "select a payment method before submitting"
)

// WorkflowError is a user-recoverable failure in the reservation workflow.
type WorkflowError struct {
	Code    string
	Message string
}

func (e *WorkflowError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewValidationError(msg string) error {
	return &WorkflowError{Code: "validationError", Message: msg}
}

func NewAvailabilityError(msg string) error {
	return &WorkflowError{Code: "availabilityError", Message: msg}
}

func NewContractViolationError(msg string) error {
	return &WorkflowError{Code: "contractViolation", Message: msg}
}

func NewSessionError(msg string) error {
	return &WorkflowError{Code: "sessionError", Message: msg}
}

// ErrNotOwner means the authenticated user is not the one who opened the
// session. Knowing a session ID is not enough to drive its workflow.
var ErrNotOwner = &WorkflowError{Code: "forbidden", Message: "reservation belongs to another user"}

// PaymentInitError means a booking exists but payment initialization failed.
// Booking creation and payment init are not transactional, so this error
// carries the booking ID: the UI must tell the user an unpaid booking may
// already exist rather than implying nothing happened.
type PaymentInitError struct {
	BookingID string
	Err       error
}

func (e *PaymentInitError) Error() string {
	return fmt.Sprintf("payment initialization failed for booking %s: %v", e.BookingID, e.Err)
}

func (e *PaymentInitError) Unwrap() error { return e.Err }
