package viewport

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFloatingCTAVisible(t *testing.T) {
	// Narrow viewport, panel still below the fold: show the floating button.
	m := Metrics{PanelTop: 900, ViewportHeight: 800, ViewportWidth: 390, ButtonHeight: 56}
	assert.True(t, m.FloatingCTAVisible())

	// Panel's top edge rises above viewportHeight - buttonHeight: hide it.
	m.PanelTop = 700
	assert.False(t, m.FloatingCTAVisible())

	// Exactly at the threshold counts as not yet entered.
	m.PanelTop = 800 - 56
	assert.True(t, m.FloatingCTAVisible())

	// Wide viewports never show the duplicate affordance.
	wide := Metrics{PanelTop: 2000, ViewportHeight: 800, ViewportWidth: 1440, ButtonHeight: 56}
	assert.False(t, wide.FloatingCTAVisible())
}

func TestObserverNotifiesOnChangeOnly(t *testing.T) {
	o := NewObserver()

	var calls []bool
	id := o.Subscribe(func(visible bool) { calls = append(calls, visible) })

	below := Metrics{PanelTop: 900, ViewportHeight: 800, ViewportWidth: 390, ButtonHeight: 56}
	entered := Metrics{PanelTop: 100, ViewportHeight: 800, ViewportWidth: 390, ButtonHeight: 56}

	o.Update(below)
	o.Update(below) // identical outcome: no second notification
	o.Update(entered)
	o.Update(entered)
	o.Update(below)

	assert.Equal(t, []bool{true, false, true}, calls)
	assert.True(t, o.Visible())

	// After unsubscribe the listener hears nothing more.
	o.Unsubscribe(id)
	o.Update(entered)
	assert.Equal(t, []bool{true, false, true}, calls)
	assert.False(t, o.Visible())
}

func TestObserverVisibleBeforeAnyUpdate(t *testing.T) {
	assert.False(t, NewObserver().Visible())
}
