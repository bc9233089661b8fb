package reservation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(s string) time.Time {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestMinCheckIn(t *testing.T) {
	now := time.Date(2025, 6, 1, 14, 30, 0, 0, time.UTC)
	assert.Equal(t, date("2025-06-02"), MinCheckIn(now))

	// Time of day must not matter.
	lateNight := time.Date(2025, 6, 1, 23, 59, 59, 0, time.UTC)
	assert.Equal(t, date("2025-06-02"), MinCheckIn(lateNight))
}

func TestMinCheckOut(t *testing.T) {
	// For any valid check-in, the minimum checkout is exactly the next day.
	for _, in := range []string{"2025-06-02", "2025-06-10", "2025-12-31", "2026-02-28"} {
		assert.Equal(t, date(in).AddDate(0, 0, 1), MinCheckOut(date(in)), "check-in %s", in)
	}
	// Month and year rollovers.
	assert.Equal(t, date("2026-01-01"), MinCheckOut(date("2025-12-31")))
}

func TestValidateStay(t *testing.T) {
	now := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

	require.NoError(t, ValidateStay("2025-06-10", "2025-06-12", 2, 4, now))

	// Missing dates fail fast with the prompt message.
	err := ValidateStay("", "2025-06-12", 2, 4, now)
	require.Error(t, err)
	assert.Contains(t, err.Error(), MsgMissingDates)

	// Check-in before tomorrow.
	assert.Error(t, ValidateStay("2025-06-01", "2025-06-03", 2, 4, now))
	assert.Error(t, ValidateStay("2025-05-20", "2025-05-22", 2, 4, now))

	// Tomorrow itself is allowed.
	assert.NoError(t, ValidateStay("2025-06-02", "2025-06-03", 2, 4, now))

	// Check-out must be strictly after check-in.
	assert.Error(t, ValidateStay("2025-06-10", "2025-06-10", 2, 4, now))
	assert.Error(t, ValidateStay("2025-06-12", "2025-06-10", 2, 4, now))

	// Guest bounds.
	assert.Error(t, ValidateStay("2025-06-10", "2025-06-12", 0, 4, now))
	assert.Error(t, ValidateStay("2025-06-10", "2025-06-12", 5, 4, now))
	// No stated cap means no client-side upper bound.
	assert.NoError(t, ValidateStay("2025-06-10", "2025-06-12", 12, 0, now))

	// Garbage dates.
	assert.Error(t, ValidateStay("not-a-date", "2025-06-12", 2, 4, now))
}

func TestNights(t *testing.T) {
	assert.Equal(t, 2, Nights(date("2025-06-10"), date("2025-06-12")))
	assert.Equal(t, 1, Nights(date("2025-06-10"), date("2025-06-11")))
}
