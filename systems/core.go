package systems

import (
	"time"

	"github.com/automoto/domain-expansion/components"
	"github.com/yohamta/donburi/ecs"
)

// AddCoreSystems registers the simulation systems in tick order. Device
// polling and audio output are added by the scene around them.
func AddCoreSystems(e *ecs.ECS) {
	components.LandedEvent.Subscribe(e.World, OnLanded)

	e.AddSystem(UpdateClock)
	e.AddSystem(UpdateInputSnapshot)
	e.AddSystem(UpdatePhysics)
	e.AddSystem(UpdateLanding)
	e.AddSystem(UpdateGroundContact)
	e.AddSystem(UpdateExpansion)
	e.AddSystem(UpdateAbilities)
	e.AddSystem(UpdateLocomotion)
	e.AddSystem(UpdateFacing)
	e.AddSystem(UpdateAnimation)
	e.AddSystem(UpdateEffects)
}

// Tick runs one simulation step of length dt.
func Tick(e *ecs.ECS, dt time.Duration) {
	if entry, ok := components.Clock.First(e.World); ok {
		components.Clock.Get(entry).Delta = dt
	}
	e.Update()
}

func UpdateClock(e *ecs.ECS) {
	entry, ok := components.Clock.First(e.World)
	if !ok {
		return
	}
	c := components.Clock.Get(entry)
	c.Elapsed += c.Delta
	c.Ticks++
}

// UpdateInputSnapshot freezes the live input for this tick.
func UpdateInputSnapshot(e *ecs.ECS) {
	entry, ok := components.Input.First(e.World)
	if !ok {
		return
	}
	components.Input.Get(entry).Capture()
}

func clockOf(e *ecs.ECS) *components.ClockData {
	if entry, ok := components.Clock.First(e.World); ok {
		return components.Clock.Get(entry)
	}
	return &components.ClockData{}
}
