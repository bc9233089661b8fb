package reservation

import (
	"context"
	"errors"
	"fmt"
	"time"

	"shortlet/models"

	"go.uber.org/zap"
)

// PaymentAPI is the backend call the dispatcher needs.
type PaymentAPI interface {
	InitializePayment(ctx context.Context, bookingID, email string) (*models.PaymentInitResult, error)
}

// gatewayRedirectDelay is the deliberate pause before the UI follows the
// hosted-payment redirect, so in-flight UI updates settle first.
const gatewayRedirectDelay = 1500 * time.Millisecond

// PaymentDispatcher resolves a confirmed reservation into its per-method
// terminal outcome. Booking creation has already happened by the time it
// runs; there is no path that initializes payment before a booking ID exists.
type PaymentDispatcher struct {
	API           PaymentAPI
	Logger        *zap.Logger
	BookingsRoute string
	FallbackBank  models.BankDetails
}

// Dispatch branches on the payment method. The switch is exhaustive over the
// three variants; anything else is rejected rather than silently ignored.
func (d *PaymentDispatcher) Dispatch(ctx context.Context, session *models.ReservationSession, bookingID string, raw map[string]any) (*models.PaymentOutcome, error) {
	switch session.SelectedMethod {
	case models.PaymentOnlineGateway:
		return d.dispatchOnlineGateway(ctx, session, bookingID)
	case models.PaymentBankTransfer:
		return d.dispatchBankTransfer(session, bookingID, raw), nil
	case models.PaymentPayOnsite:
		return d.dispatchPayOnsite(session, bookingID), nil
	default:
		return nil, fmt.Errorf("unsupported payment method: %s", session.SelectedMethod)
	}
}

func (d *PaymentDispatcher) dispatchOnlineGateway(ctx context.Context, session *models.ReservationSession, bookingID string) (*models.PaymentOutcome, error) {
	result, err := d.API.InitializePayment(ctx, bookingID, session.Email)
	if err != nil {
		return nil, &PaymentInitError{BookingID: bookingID, Err: err}
	}
	if result.AuthorizationURL == "" {
		// Hard failure: never attempt a degraded flow without a redirect target.
		return nil, &PaymentInitError{BookingID: bookingID, Err: errors.New(MsgGatewayDown)}
	}

	d.Logger.Info("hosted payment initialized",
		zap.String("bookingID", bookingID),
		zap.String("reference", result.Reference))

	return &models.PaymentOutcome{
		Method:          models.PaymentOnlineGateway,
		BookingID:       bookingID,
		RedirectURL:     result.AuthorizationURL,
		RedirectDelayMs: gatewayRedirectDelay.Milliseconds(),
		Reference:       result.Reference,
	}, nil
}

func (d *PaymentDispatcher) dispatchBankTransfer(session *models.ReservationSession, bookingID string, raw map[string]any) *models.PaymentOutcome {
	details := bankDetailsFromResponse(raw)
	if details == nil {
		fallback := d.FallbackBank
		details = &fallback
	}
	if details.Reference == "" {
		details.Reference = bookingID
	}

	d.Logger.Info("bank transfer pending confirmation",
		zap.String("bookingID", bookingID),
		zap.Float64("amount", session.TotalAmount))

	return &models.PaymentOutcome{
		Method:      models.PaymentBankTransfer,
		BookingID:   bookingID,
		Route:       "/bookings/" + bookingID + "/upload-proof",
		Amount:      session.TotalAmount,
		Currency:    session.Currency,
		BankDetails: details,
		Reference:   details.Reference,
	}
}

func (d *PaymentDispatcher) dispatchPayOnsite(session *models.ReservationSession, bookingID string) *models.PaymentOutcome {
	// No payment initialization: the booking is tentatively confirmed
	// pending in-person settlement.
	d.Logger.Info("pay-onsite booking recorded", zap.String("bookingID", bookingID))

	return &models.PaymentOutcome{
		Method:    models.PaymentPayOnsite,
		BookingID: bookingID,
		Route:     d.BookingsRoute,
	}
}

// bankDetailsFromResponse probes the booking response for bank details, which
// the backend includes for bank-transfer bookings when it can.
func bankDetailsFromResponse(raw map[string]any) *models.BankDetails {
	for _, path := range [][]string{{"bankDetails"}, {"booking", "bankDetails"}, {"data", "booking", "bankDetails"}} {
		if obj, ok := digMap(raw, path...); ok {
			details := &models.BankDetails{}
			details.AccountName, _ = obj["accountName"].(string)
			details.AccountNumber, _ = obj["accountNumber"].(string)
			details.BankName, _ = obj["bankName"].(string)
			details.Reference, _ = obj["reference"].(string)
			if details.AccountNumber != "" {
				return details
			}
		}
	}
	return nil
}

// digMap walks nested maps along path and returns the map leaf, if any.
func digMap(m map[string]any, path ...string) (map[string]any, bool) {
	cur := any(m)
	for _, key := range path {
		obj, ok := cur.(map[string]any)
		if !ok {
			return nil, false
		}
		cur, ok = obj[key]
		if !ok {
			return nil, false
		}
	}
	leaf, ok := cur.(map[string]any)
	return leaf, ok
}
