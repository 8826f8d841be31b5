package components

import (
	"time"

	"github.com/automoto/domain-expansion/timeline"
	"github.com/yohamta/donburi"
)

// ExpansionData is the process-wide Expansion Mode (singleton component).
// The renderer reads Active; everything else goes through the methods so at
// most one revert is ever pending.
type ExpansionData struct {
	Active bool

	// Domain ability state. Started is the global latch and stays set from
	// the trigger until the mode reverts.
	Started  bool
	Announce timeline.Sequence
	Owner    donburi.Entity

	StarAngle float64

	revertPending bool
	revertIn      time.Duration
}

// Set changes the mode. Any pending revert is discarded; a positive
// revertAfter with active arms a new one.
func (e *ExpansionData) Set(active bool, revertAfter time.Duration) {
	e.Active = active
	e.revertPending = active && revertAfter > 0
	e.revertIn = 0
	if e.revertPending {
		e.revertIn = revertAfter
	}
}

// PendingRevert reports the time left until the mode reverts.
func (e *ExpansionData) PendingRevert() (time.Duration, bool) {
	return e.revertIn, e.revertPending
}

// Advance counts the pending revert down and reports whether it fired.
func (e *ExpansionData) Advance(dt time.Duration) bool {
	if !e.revertPending {
		return false
	}
	e.revertIn -= dt
	if e.revertIn > 0 {
		return false
	}
	e.Set(false, 0)
	return true
}

var Expansion = donburi.NewComponentType[ExpansionData]()
