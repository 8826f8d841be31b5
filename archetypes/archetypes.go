package archetypes

import (
	"github.com/automoto/domain-expansion/components"
	cfg "github.com/automoto/domain-expansion/config"
	"github.com/automoto/domain-expansion/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Character = newArchetype(
		tags.Character,
		components.Character,
		components.FollowRig,
		components.State,
		components.Animation,
		components.Abilities,
		components.Object,
	)
	Ground = newArchetype(
		tags.Ground,
		components.Ground,
		components.Object,
	)
	RangedProjectile = newArchetype(
		tags.Projectile,
		components.Projectile,
	)
	OrbitProjectile = newArchetype(
		tags.Projectile,
		components.Projectile,
		components.Tween,
	)
	Aura = newArchetype(
		tags.Aura,
		components.Aura,
	)
	ParticleBurst = newArchetype(
		tags.ParticleBurst,
		components.ParticleBurst,
	)
	Scene = newArchetype(
		components.Clock,
		components.Input,
		components.Camera,
		components.PhysicsWorld,
		components.GroundRegistry,
		components.Expansion,
		components.Audio,
		components.Arena,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
