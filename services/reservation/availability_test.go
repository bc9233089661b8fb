package reservation

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubAvailAPI struct {
	mu        sync.Mutex
	available bool
	err       error
	calls     int
}

func (s *stubAvailAPI) CheckAvailability(ctx context.Context, propertyID, checkIn, checkOut string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	return s.available, s.err
}

func TestAvailabilityCheckerAvailable(t *testing.T) {
	api := &stubAvailAPI{available: true}
	checker := NewAvailabilityChecker(api, zap.NewNop())

	status, err := checker.Check(context.Background(), "user-1", "prop-1", "2025-06-10", "2025-06-12")
	require.NoError(t, err)
	assert.True(t, status.Available)
	assert.Empty(t, status.Message)
}

func TestAvailabilityCheckerNotAvailable(t *testing.T) {
	api := &stubAvailAPI{available: false}
	checker := NewAvailabilityChecker(api, zap.NewNop())

	status, err := checker.Check(context.Background(), "user-1", "prop-1", "2025-06-10", "2025-06-12")
	require.NoError(t, err)
	assert.False(t, status.Available)
	assert.Equal(t, MsgNotAvailable, status.Message)
}

func TestAvailabilityCheckerTransportFailure(t *testing.T) {
	api := &stubAvailAPI{err: errors.New("connection refused")}
	checker := NewAvailabilityChecker(api, zap.NewNop())

	status, err := checker.Check(context.Background(), "user-1", "prop-1", "2025-06-10", "2025-06-12")
	require.NoError(t, err)
	assert.False(t, status.Available)
	assert.Contains(t, status.Message, "connection refused")
}

func TestAvailabilityCheckerRejectsBadDates(t *testing.T) {
	api := &stubAvailAPI{available: true}
	checker := NewAvailabilityChecker(api, zap.NewNop())

	_, err := checker.Check(context.Background(), "user-1", "prop-1", "", "2025-06-12")
	require.Error(t, err)
	assert.Zero(t, api.calls, "no network call for missing dates")
}

func TestAvailabilityCheckerIdempotent(t *testing.T) {
	// Re-running with identical inputs must not change the observed state.
	api := &stubAvailAPI{available: false}
	checker := NewAvailabilityChecker(api, zap.NewNop())

	first, err := checker.Check(context.Background(), "user-1", "prop-1", "2025-06-10", "2025-06-12")
	require.NoError(t, err)
	second, err := checker.Check(context.Background(), "user-1", "prop-1", "2025-06-10", "2025-06-12")
	require.NoError(t, err)
	assert.Equal(t, first, second)

	latest, ok := checker.Latest("user-1", "prop-1")
	require.True(t, ok)
	assert.Equal(t, second, latest)
}

// fencedAPI blocks its first call until released so a second, newer check can
// overtake it.
type fencedAPI struct {
	started chan struct{}
	release chan struct{}
	mu      sync.Mutex
	calls   int
}

func (f *fencedAPI) CheckAvailability(ctx context.Context, propertyID, checkIn, checkOut string) (bool, error) {
	f.mu.Lock()
	f.calls++
	n := f.calls
	f.mu.Unlock()
	if n == 1 {
		close(f.started)
		<-f.release
		return true, nil // stale answer for the old date pair
	}
	return false, nil
}

func TestAvailabilityCheckerDiscardsStaleResponse(t *testing.T) {
	api := &fencedAPI{started: make(chan struct{}), release: make(chan struct{})}
	checker := NewAvailabilityChecker(api, zap.NewNop())

	errCh := make(chan error, 1)
	go func() {
		_, err := checker.Check(context.Background(), "user-1", "prop-1", "2025-06-10", "2025-06-12")
		errCh <- err
	}()
	<-api.started

	// The same user changed dates: their newer check supersedes the in-flight one.
	fresh, err := checker.Check(context.Background(), "user-1", "prop-1", "2025-06-15", "2025-06-17")
	require.NoError(t, err)
	assert.False(t, fresh.Available)

	close(api.release)
	staleErr := <-errCh
	require.Error(t, staleErr)
	assert.ErrorIs(t, staleErr, ErrSuperseded)

	// The fresher result survives.
	latest, ok := checker.Latest("user-1", "prop-1")
	require.True(t, ok)
	assert.Equal(t, "2025-06-15", latest.CheckIn)
	assert.False(t, latest.Available)
}

func TestAvailabilityCheckerScopedPerViewer(t *testing.T) {
	// Two users browsing the same listing must not fence each other: user A's
	// in-flight check survives user B checking the same property.
	api := &fencedAPI{started: make(chan struct{}), release: make(chan struct{})}
	checker := NewAvailabilityChecker(api, zap.NewNop())

	resultCh := make(chan error, 1)
	go func() {
		_, err := checker.Check(context.Background(), "user-a", "prop-1", "2025-06-10", "2025-06-12")
		resultCh <- err
	}()
	<-api.started

	_, err := checker.Check(context.Background(), "user-b", "prop-1", "2025-06-20", "2025-06-22")
	require.NoError(t, err)

	close(api.release)
	require.NoError(t, <-resultCh, "unrelated viewer must not supersede the check")

	// Each viewer keeps their own latest result.
	latestA, ok := checker.Latest("user-a", "prop-1")
	require.True(t, ok)
	assert.Equal(t, "2025-06-10", latestA.CheckIn)
	assert.True(t, latestA.Available)

	latestB, ok := checker.Latest("user-b", "prop-1")
	require.True(t, ok)
	assert.Equal(t, "2025-06-20", latestB.CheckIn)
}
