package reservation

import (
	"context"
	"errors"
	"fmt"
	"time"

	"shortlet/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DefaultReservationService is the concrete workflow implementation.
type DefaultReservationService struct {
	Store      SessionStore
	API        BookingAPI
	Checker    *AvailabilityChecker
	Dispatcher *PaymentDispatcher
	Logger     *zap.Logger

	// Now is an injectable clock; nil means time.Now.
	Now func() time.Time
}

func (s *DefaultReservationService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// CheckAvailability runs a fenced availability check for the given dates,
// scoped to the viewer so concurrent users on one listing never fence each
// other out.
func (s *DefaultReservationService) CheckAvailability(ctx context.Context, viewerID, propertyID, checkIn, checkOut string) (AvailabilityStatus, error) {
	return s.Checker.Check(ctx, viewerID, propertyID, checkIn, checkOut)
}

// Initiate validates dates and availability and opens a reservation session
// awaiting a payment choice. Validation failures happen before any booking
// state is created; the caller stays in Idle.
func (s *DefaultReservationService) Initiate(ctx context.Context, userID, email string, req models.BookingRequest) (*models.ReservationSession, error) {
	// Date checks run before any network call.
	checkIn, checkOut, err := ParseStayDates(req.CheckInDate, req.CheckOutDate)
	if err != nil {
		return nil, err
	}
	if err := ValidateDateOrder(checkIn, checkOut, s.now()); err != nil {
		return nil, err
	}

	property, err := s.API.GetProperty(ctx, req.PropertyID)
	if err != nil {
		return nil, fmt.Errorf("failed to load property: %w", err)
	}

	if err := ValidateGuestCount(req.GuestCount, property.MaxGuests); err != nil {
		return nil, err
	}

	// Availability gate. A negative or failed check blocks the attempt; the
	// backend re-validates at booking time regardless.
	status, err := s.Checker.Check(ctx, userID, req.PropertyID, req.CheckInDate, req.CheckOutDate)
	if err != nil {
		return nil, err
	}
	if !status.Available {
		return nil, NewAvailabilityError(status.Message)
	}

	session := &models.ReservationSession{
		SessionID:   uuid.New().String(),
		UserID:      userID,
		Email:       email,
		Request:     req,
		TotalAmount: float64(Nights(checkIn, checkOut)) * property.PricePerNight,
		Currency:    property.Currency,
		State:       models.StateAwaitingPaymentChoice,
		CreatedAt:   s.now(),
	}

	if err := s.Store.Save(ctx, session, SessionTTL); err != nil {
		return nil, err
	}

	s.Logger.Info("reservation session initiated",
		zap.String("sessionID", session.SessionID),
		zap.String("propertyID", req.PropertyID),
		zap.String("checkIn", req.CheckInDate),
		zap.String("checkOut", req.CheckOutDate))

	return session, nil
}

// Get returns the current session state.
func (s *DefaultReservationService) Get(ctx context.Context, userID, sessionID string) (*models.ReservationSession, error) {
	return s.ownedSession(ctx, userID, sessionID)
}

// ownedSession loads a session and verifies the caller opened it.
func (s *DefaultReservationService) ownedSession(ctx context.Context, userID, sessionID string) (*models.ReservationSession, error) {
	session, err := s.Store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.UserID != userID {
		return nil, ErrNotOwner
	}
	return session, nil
}

// SelectPaymentMethod commits exactly one of the three payment paths for the
// attempt. The method is immutable once confirmed.
func (s *DefaultReservationService) SelectPaymentMethod(ctx context.Context, userID, sessionID string, method models.PaymentMethod, confirm bool) (*PaymentChoice, error) {
	session, err := s.ownedSession(ctx, userID, sessionID)
	if err != nil {
		return nil, err
	}
	if session.State != models.StateAwaitingPaymentChoice {
		return nil, NewSessionError("reservation is not awaiting a payment choice")
	}
	if session.Loading {
		return nil, NewSessionError("submission already in progress")
	}
	if !method.Valid() {
		return nil, NewValidationError(fmt.Sprintf("unknown payment method %q", method))
	}
	if session.SelectedMethod != "" && session.MethodConfirmed && session.SelectedMethod != method {
		return nil, NewSessionError("payment method already selected for this attempt")
	}

	if method == models.PaymentBankTransfer && !confirm {
		// First step: reveal the account details. Nothing is committed until
		// the user has seen the account number and explicitly proceeds.
		session.SelectedMethod = method
		session.MethodConfirmed = false
		if err := s.Store.Save(ctx, session, SessionTTL); err != nil {
			return nil, err
		}
		fallback := s.Dispatcher.FallbackBank
		return &PaymentChoice{
			Session:              session,
			RequiresConfirmation: true,
			BankDetails:          &fallback,
		}, nil
	}

	session.SelectedMethod = method
	session.MethodConfirmed = true
	session.Request.PaymentMethod = method
	if err := s.Store.Save(ctx, session, SessionTTL); err != nil {
		return nil, err
	}

	return &PaymentChoice{Session: session}, nil
}

// submitLockTTL bounds how long a crashed submit can hold its lock.
const submitLockTTL = 2 * time.Minute

// Submit creates the booking and dispatches payment for the selected method.
// Booking creation strictly precedes payment initialization. Whatever the
// outcome, the loading flag and selected method are reset so the UI never
// gets stuck; failures return the session to Idle with dates preserved.
func (s *DefaultReservationService) Submit(ctx context.Context, userID, sessionID string) (outcome *models.PaymentOutcome, submitErr error) {
	// The store-level lock is what actually serializes overlapping submits;
	// the Loading flag below is only the signal surfaced to the UI.
	locked, err := s.Store.AcquireSubmitLock(ctx, sessionID, submitLockTTL)
	if err != nil {
		return nil, err
	}
	if !locked {
		return nil, NewSessionError("submission already in progress")
	}
	defer func() {
		if err := s.Store.ReleaseSubmitLock(ctx, sessionID); err != nil {
			s.Logger.Warn("failed to release submit lock", zap.String("sessionID", sessionID), zap.Error(err))
		}
	}()

	session, err := s.ownedSession(ctx, userID, sessionID)
	if err != nil {
		return nil, err
	}
	if session.Loading {
		return nil, NewSessionError("submission already in progress")
	}
	if session.State != models.StateAwaitingPaymentChoice {
		return nil, NewSessionError("reservation is not ready to submit")
	}
	if !session.MethodConfirmed || !session.SelectedMethod.Valid() {
		return nil, NewValidationError(MsgMethodNotSelected)
	}

	session.Loading = true
	session.State = models.StateSubmitting
	session.LastError = ""
	if err := s.Store.Save(ctx, session, SessionTTL); err != nil {
		return nil, err
	}

	defer func() {
		session.Loading = false
		if submitErr == nil {
			session.State = models.StateSucceeded
			// Attempt complete; the backend is the system of record now.
			if err := s.Store.Delete(ctx, sessionID); err != nil {
				s.Logger.Warn("failed to clear completed session", zap.String("sessionID", sessionID), zap.Error(err))
			}
			return
		}
		session.State = models.StateIdle
		session.SelectedMethod = ""
		session.MethodConfirmed = false
		session.LastError = submitErr.Error()
		if err := s.Store.Save(ctx, session, SessionTTL); err != nil {
			s.Logger.Warn("failed to persist failed attempt", zap.String("sessionID", sessionID), zap.Error(err))
		}
	}()

	raw, err := s.API.CreateBooking(ctx, session.UserID, session.Request)
	if err != nil {
		submitErr = fmt.Errorf("booking creation failed: %w", err)
		return nil, submitErr
	}

	bookingID, err := ExtractBookingID(raw)
	if err != nil {
		// The booking may exist server-side; never proceed with an empty ID.
		submitErr = err
		return nil, submitErr
	}

	outcome, submitErr = s.Dispatcher.Dispatch(ctx, session, bookingID, raw)
	if submitErr != nil {
		var initErr *PaymentInitError
		if errors.As(submitErr, &initErr) {
			s.Logger.Error("booking exists but payment initialization failed",
				zap.String("sessionID", sessionID),
				zap.String("bookingID", initErr.BookingID),
				zap.Error(initErr.Err))
		}
		return nil, submitErr
	}

	s.Logger.Info("reservation completed",
		zap.String("sessionID", sessionID),
		zap.String("bookingID", bookingID),
		zap.String("method", string(outcome.Method)))

	return outcome, nil
}

// Cancel abandons the attempt. No booking has been created at this point, so
// there is nothing to compensate.
func (s *DefaultReservationService) Cancel(ctx context.Context, userID, sessionID string) error {
	if _, err := s.ownedSession(ctx, userID, sessionID); err != nil {
		return err
	}
	return s.Store.Delete(ctx, sessionID)
}
