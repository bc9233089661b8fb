package reservation

import (
	"context"
	"sync"

	"go.uber.org/zap"
)

// AvailabilityAPI is the backend call the checker wraps.
type AvailabilityAPI interface {
	CheckAvailability(ctx context.Context, propertyID, checkIn, checkOut string) (bool, error)
}

// AvailabilityStatus is the outcome of one availability check. Results are
// never cached: each date change triggers a fresh check, and a new result
// supersedes any prior one by the same viewer for the same property.
type AvailabilityStatus struct {
	PropertyID string `json:"propertyId"`
	CheckIn    string `json:"checkIn"`
	CheckOut   string `json:"checkOut"`
	Available  bool   `json:"available"`
	Message    string `json:"message,omitempty"`
}

// ErrSuperseded marks a check whose response arrived after the same viewer
// already issued a newer check for the same property. Its result must be
// discarded.
var ErrSuperseded = NewAvailabilityError("availability check superseded by a newer request")

// checkScope identifies whose view of which property a check belongs to.
// Fencing is per viewer per property: one user changing dates must never
// invalidate another user's in-flight check on the same listing.
type checkScope struct {
	viewer   string
	property string
}

// AvailabilityChecker fences checks with a per-scope generation number so a
// slow stale response cannot overwrite a fresher result.
type AvailabilityChecker struct {
	api    AvailabilityAPI
	logger *zap.Logger

	mu     sync.Mutex
	gens   map[checkScope]uint64
	latest map[checkScope]AvailabilityStatus
}

// NewAvailabilityChecker creates a checker over the given backend API.
func NewAvailabilityChecker(api AvailabilityAPI, logger *zap.Logger) *AvailabilityChecker {
	return &AvailabilityChecker{
		api:    api,
		logger: logger,
		gens:   make(map[checkScope]uint64),
		latest: make(map[checkScope]AvailabilityStatus),
	}
}

// Check verifies the date range against the property's existing bookings on
// behalf of one viewer. Advisory only: the backend re-validates at
// booking-creation time, since another booking may land between check and
// submit.
func (c *AvailabilityChecker) Check(ctx context.Context, viewerID, propertyID, checkIn, checkOut string) (AvailabilityStatus, error) {
	if _, _, err := ParseStayDates(checkIn, checkOut); err != nil {
		return AvailabilityStatus{}, err
	}

	scope := checkScope{viewer: viewerID, property: propertyID}

	c.mu.Lock()
	c.gens[scope]++
	gen := c.gens[scope]
	c.mu.Unlock()

	available, err := c.api.CheckAvailability(ctx, propertyID, checkIn, checkOut)

	status := AvailabilityStatus{
		PropertyID: propertyID,
		CheckIn:    checkIn,
		CheckOut:   checkOut,
		Available:  available,
	}
	if err != nil {
		status.Available = false
		status.Message = "Could not verify availability: " + err.Error()
	} else if !available {
		status.Message = MsgNotAvailable
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if gen != c.gens[scope] {
		// The same viewer issued a newer check while this one was in flight.
		c.logger.Debug("discarding stale availability result",
			zap.String("viewerID", viewerID),
			zap.String("propertyID", propertyID),
			zap.Uint64("gen", gen),
			zap.Uint64("latest", c.gens[scope]))
		return AvailabilityStatus{}, ErrSuperseded
	}
	c.latest[scope] = status
	return status, nil
}

// Latest returns the viewer's most recent non-superseded result for a property.
func (c *AvailabilityChecker) Latest(viewerID, propertyID string) (AvailabilityStatus, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	status, ok := c.latest[checkScope{viewer: viewerID, property: propertyID}]
	return status, ok
}
