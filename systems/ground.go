package systems

import (
	"github.com/automoto/domain-expansion/components"
	cfg "github.com/automoto/domain-expansion/config"
	"github.com/automoto/domain-expansion/physics"
	"github.com/automoto/domain-expansion/tags"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var down = mgl64.Vec3{0, -1, 0}

// UpdateGroundContact casts each character's foot ray and sets its damping.
func UpdateGroundContact(e *ecs.ECS) {
	entry, ok := components.GroundRegistry.First(e.World)
	if !ok {
		return
	}
	registry := components.GroundRegistry.Get(entry)
	engine := components.PhysicsWorld.Get(entry).Engine

	tags.Character.Each(e.World, func(c *donburi.Entry) {
		ch := components.Character.Get(c)

		var candidates []physics.ColliderHandle
		if registry.Len() > 0 {
			probe := components.Object.Get(c).Object
			if probe != nil {
				size := cfg.Ground.ProbeSize
				probe.X = ch.Position.X() + registry.Offset - size/2
				probe.Y = ch.Position.Z() + registry.Offset - size/2
				probe.Update()
			}
			candidates = registry.Candidates(probe)
		}

		ch.Grounded = ResolveGrounded(engine, ch.Position, candidates)

		damping := cfg.Ground.AirborneDamping
		if ch.Grounded {
			damping = cfg.Ground.GroundedDamping
		}
		_ = engine.SetDamping(ch.Body, damping)
	})
}

// ResolveGrounded reports whether a downward ray from just above foot hits
// any collider within the ground threshold. No colliders means airborne.
func ResolveGrounded(engine physics.Engine, foot mgl64.Vec3, colliders []physics.ColliderHandle) bool {
	if len(colliders) == 0 {
		return false
	}
	origin := foot.Add(mgl64.Vec3{0, cfg.Ground.RayOffset, 0})
	for _, hit := range engine.RayIntersect(origin, down, colliders) {
		if hit.Distance < cfg.Ground.Threshold {
			return true
		}
	}
	return false
}
