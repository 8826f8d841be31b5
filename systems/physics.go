package systems

import (
	"github.com/automoto/domain-expansion/components"
	"github.com/automoto/domain-expansion/logger"
	"github.com/automoto/domain-expansion/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePhysics steps the physics world and mirrors body positions.
func UpdatePhysics(e *ecs.ECS) {
	entry, ok := components.PhysicsWorld.First(e.World)
	if !ok {
		return
	}
	engine := components.PhysicsWorld.Get(entry).Engine
	engine.Step(clockOf(e).DT())

	tags.Character.Each(e.World, func(c *donburi.Entry) {
		ch := components.Character.Get(c)
		pos, err := engine.Position(ch.Body)
		if err != nil {
			logger.For("physics").Debug("character without body", "entity", c.Entity(), "err", err)
			return
		}
		ch.Position = pos
	})
}

// UpdateLanding delivers landing events queued by the physics step.
func UpdateLanding(e *ecs.ECS) {
	components.LandedEvent.ProcessEvents(e.World)
}

// OnLanded clears the jump latch. Events for removed characters are dropped.
func OnLanded(w donburi.World, ev components.LandedEventData) {
	if !w.Valid(ev.Character) {
		return
	}
	entry := w.Entry(ev.Character)
	if !entry.HasComponent(components.Character) {
		return
	}
	ch := components.Character.Get(entry)
	if ch.InJump {
		ch.InJump = false
		logger.For("physics").Debug("landed", "entity", ev.Character)
	}
}
