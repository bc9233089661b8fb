// Package viewport decides when the floating "Reserve" call-to-action should
// show. The floating button duplicates the booking panel's entry point on
// narrow viewports while the panel itself is below the fold; once the panel
// scrolls into view the duplicate disappears. No booking data crosses this
// boundary.
package viewport

import "sync"

// Metrics is the geometry needed for the visibility decision, as reported by
// the scrolling surface.
type Metrics struct {
	PanelTop       float64 `form:"panelTop" json:"panelTop"` // booking panel's top edge, relative to the viewport
	ViewportHeight float64 `form:"viewportHeight" json:"viewportHeight"`
	ViewportWidth  float64 `form:"viewportWidth" json:"viewportWidth"`
	ButtonHeight   float64 `form:"buttonHeight" json:"buttonHeight"` // height of the floating button
}

// narrowViewportMax is the widest viewport still considered "narrow".
const narrowViewportMax = 768.0

// FloatingCTAVisible reports whether the floating button should show: only
// on narrow viewports, and only until the panel's top edge rises above
// viewportHeight - buttonHeight.
func (m Metrics) FloatingCTAVisible() bool {
	if m.ViewportWidth > narrowViewportMax {
		return false
	}
	return m.PanelTop >= m.ViewportHeight-m.ButtonHeight
}

// Listener receives visibility changes.
type Listener func(visible bool)

// Observer is a subscribe-on-mount / unsubscribe-on-unmount scroll observer.
// Listeners are notified only when the visibility outcome actually changes,
// so repeated updates with the same result are no-ops.
type Observer struct {
	mu        sync.Mutex
	nextID    int
	listeners map[int]Listener
	last      *bool
}

func NewObserver() *Observer {
	return &Observer{listeners: make(map[int]Listener)}
}

// Subscribe registers a listener and returns a handle for Unsubscribe.
func (o *Observer) Subscribe(l Listener) int {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.nextID++
	o.listeners[o.nextID] = l
	return o.nextID
}

// Unsubscribe removes a listener. Safe to call with a stale handle.
func (o *Observer) Unsubscribe(id int) {
	o.mu.Lock()
	defer o.mu.Unlock()
	delete(o.listeners, id)
}

// Update feeds fresh geometry to the observer, notifying listeners if the
// visibility outcome flipped.
func (o *Observer) Update(m Metrics) {
	visible := m.FloatingCTAVisible()

	o.mu.Lock()
	if o.last != nil && *o.last == visible {
		o.mu.Unlock()
		return
	}
	o.last = &visible
	notify := make([]Listener, 0, len(o.listeners))
	for _, l := range o.listeners {
		notify = append(notify, l)
	}
	o.mu.Unlock()

	for _, l := range notify {
		l(visible)
	}
}

// Visible returns the last computed visibility (false before any update).
func (o *Observer) Visible() bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.last != nil && *o.last
}
