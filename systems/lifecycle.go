package systems

import (
	"errors"
	"fmt"

	"github.com/automoto/domain-expansion/components"
	cfg "github.com/automoto/domain-expansion/config"
	"github.com/automoto/domain-expansion/logger"
	"github.com/automoto/domain-expansion/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	ErrNotCharacter = errors.New("entity is not a character")
	ErrNotGround    = errors.New("entity is not ground")
)

// DestroyCharacter cancels every running ability of the character, removes
// its effects and physics body, and deletes the entity. A domain announce it
// owns is cancelled and the domain latch released; an Expansion Mode that is
// already on keeps its revert.
func DestroyCharacter(e *ecs.ECS, entity donburi.Entity) error {
	w := e.World
	if !w.Valid(entity) {
		return fmt.Errorf("destroy character %v: %w", entity, ErrNotCharacter)
	}
	c := w.Entry(entity)
	if !c.HasComponent(tags.Character) {
		return fmt.Errorf("destroy character %v: %w", entity, ErrNotCharacter)
	}

	ab := components.Abilities.Get(c)
	ab.Ranged.Cancel()
	ab.Orbit.Cancel()
	ab.Reversal.Cancel()
	removeEffect(w, &ab.Projectile)
	removeEffect(w, &ab.OrbitBall)
	removeEffect(w, &ab.Aura)
	removeEffect(w, &ab.Burst)
	ab.Overriding = false

	if scene, ok := components.Expansion.First(w); ok {
		exp := components.Expansion.Get(scene)
		if exp.Owner == entity && exp.Announce.Running() {
			exp.Announce.Cancel()
			exp.Started = false
			exp.Owner = donburi.Null
			if scene.HasComponent(components.Audio) {
				components.Audio.Get(scene).Stop(cfg.SoundDomain)
			}
		}
	}

	if scene, ok := components.PhysicsWorld.First(w); ok {
		components.PhysicsWorld.Get(scene).Engine.RemoveBody(components.Character.Get(c).Body)
		if scene.HasComponent(components.GroundRegistry) {
			registry := components.GroundRegistry.Get(scene)
			if probe := components.Object.Get(c).Object; probe != nil && registry.Space != nil {
				registry.Space.Remove(probe)
			}
		}
	}

	c.Remove()
	logger.For("lifecycle").Debug("character destroyed", "entity", entity)
	return nil
}

// RemoveGround unregisters a ground collider and deletes its entity. After
// this no ground query can return it.
func RemoveGround(e *ecs.ECS, entity donburi.Entity) error {
	w := e.World
	if !w.Valid(entity) {
		return fmt.Errorf("remove ground %v: %w", entity, ErrNotGround)
	}
	g := w.Entry(entity)
	if !g.HasComponent(components.Ground) {
		return fmt.Errorf("remove ground %v: %w", entity, ErrNotGround)
	}
	ground := components.Ground.Get(g)

	if scene, ok := components.GroundRegistry.First(w); ok {
		// The id may since have been taken over by another collider.
		registry := components.GroundRegistry.Get(scene)
		if registry.Colliders[ground.ID] == ground.Collider {
			registry.Unregister(ground.ID)
		}
		components.PhysicsWorld.Get(scene).Engine.RemoveStaticCollider(ground.Collider)
	}

	g.Remove()
	logger.For("lifecycle").Debug("ground removed", "id", ground.ID)
	return nil
}
