package reservation

import (
	"fmt"
	"time"
)

// DateLayout is the wire format for stay dates.
const DateLayout = "2006-01-02"

// MinCheckIn returns the earliest selectable check-in date: tomorrow,
// relative to now in now's location.
func MinCheckIn(now time.Time) time.Time {
	y, m, d := now.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, now.Location()).AddDate(0, 0, 1)
}

// MinCheckOut returns the earliest selectable check-out date for a given
// check-in: the next day (minimum one-night stay). Recomputed whenever
// check-in changes.
func MinCheckOut(checkIn time.Time) time.Time {
	return checkIn.AddDate(0, 0, 1)
}

// ParseStayDates parses and orders a check-in/check-out pair.
func ParseStayDates(checkIn, checkOut string) (time.Time, time.Time, error) {
	if checkIn == "" || checkOut == "" {
		return time.Time{}, time.Time{}, NewValidationError(MsgMissingDates)
	}
	in, err := time.Parse(DateLayout, checkIn)
	if err != nil {
		return time.Time{}, time.Time{}, NewValidationError(fmt.Sprintf("invalid check-in date %q", checkIn))
	}
	out, err := time.Parse(DateLayout, checkOut)
	if err != nil {
		return time.Time{}, time.Time{}, NewValidationError(fmt.Sprintf("invalid check-out date %q", checkOut))
	}
	return in, out, nil
}

// ValidateDateOrder enforces the date invariants: check-in no earlier than
// tomorrow, check-out strictly after check-in (minimum one-night stay).
func ValidateDateOrder(checkIn, checkOut time.Time, now time.Time) error {
	if checkIn.Before(MinCheckIn(now)) {
		return NewValidationError("check-in date must be tomorrow or later")
	}
	if !checkOut.After(checkIn) {
		return NewValidationError("check-out date must be after check-in date")
	}
	return nil
}

// ValidateGuestCount bounds the guest count by the property's limit.
// maxGuests <= 0 means the backend stated no cap; it re-validates
// authoritatively either way.
func ValidateGuestCount(guests, maxGuests int) error {
	if guests < 1 {
		return NewValidationError("at least one guest is required")
	}
	if maxGuests > 0 && guests > maxGuests {
		return NewValidationError(fmt.Sprintf("this property sleeps at most %d guests", maxGuests))
	}
	return nil
}

// ValidateStay runs every local stay check. All of these fire before any
// network call is made.
func ValidateStay(checkIn, checkOut string, guests, maxGuests int, now time.Time) error {
	in, out, err := ParseStayDates(checkIn, checkOut)
	if err != nil {
		return err
	}
	if err := ValidateDateOrder(in, out, now); err != nil {
		return err
	}
	return ValidateGuestCount(guests, maxGuests)
}

// Nights returns the stay length in nights for a valid date pair.
func Nights(checkIn, checkOut time.Time) int {
	return int(checkOut.Sub(checkIn).Hours() / 24)
}
