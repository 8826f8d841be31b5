package systems

import (
	"time"

	"github.com/automoto/domain-expansion/components"
	cfg "github.com/automoto/domain-expansion/config"
	"github.com/automoto/domain-expansion/logger"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateExpansion counts down a pending revert of Expansion Mode. When it
// fires the domain latch is released and the domain cue stops.
func UpdateExpansion(e *ecs.ECS) {
	entry, ok := components.Expansion.First(e.World)
	if !ok {
		return
	}
	exp := components.Expansion.Get(entry)
	clock := clockOf(e)

	if exp.Advance(clock.Delta) {
		exp.Started = false
		exp.Owner = donburi.Null
		if entry.HasComponent(components.Audio) {
			components.Audio.Get(entry).Stop(cfg.SoundDomain)
		}
		logger.For("expansion").Info("expansion mode off", "at", clock.Elapsed)
	}

	if exp.Active {
		exp.StarAngle += cfg.Expansion.StarSpin * clock.DT()
	}
}

// SetExpansion toggles the mode directly. A positive revertAfter with
// active schedules an automatic revert, replacing any earlier one.
func SetExpansion(w donburi.World, active bool, revertAfter time.Duration) {
	entry, ok := components.Expansion.First(w)
	if !ok {
		return
	}
	components.Expansion.Get(entry).Set(active, revertAfter)
}
