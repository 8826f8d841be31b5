package factory

import (
	"math"
	"math/rand/v2"

	"github.com/automoto/domain-expansion/archetypes"
	"github.com/automoto/domain-expansion/components"
	cfg "github.com/automoto/domain-expansion/config"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// SpawnRangedProjectile places the held projectile at pos.
func SpawnRangedProjectile(ecs *ecs.ECS, owner donburi.Entity, pos mgl64.Vec3) *donburi.Entry {
	p := archetypes.RangedProjectile.Spawn(ecs)
	components.Projectile.SetValue(p, components.ProjectileData{
		Kind:     components.ProjectileRanged,
		Owner:    owner,
		Position: pos,
	})
	return p
}

// SpawnOrbitProjectile creates the orbiting ball above center. Its height
// settles from the spawn height to the hold height once it starts moving.
func SpawnOrbitProjectile(ecs *ecs.ECS, owner donburi.Entity, center mgl64.Vec3) *donburi.Entry {
	o := cfg.Abilities.Orbit
	p := archetypes.OrbitProjectile.Spawn(ecs)
	components.Projectile.SetValue(p, components.ProjectileData{
		Kind:     components.ProjectileOrbit,
		Owner:    owner,
		Position: center.Add(mgl64.Vec3{o.Radius, o.SpawnHeight, 0}),
		Height:   o.SpawnHeight,
		Moving:   true,
	})
	components.Tween.Set(p, gween.New(float32(o.SpawnHeight), float32(o.HoldHeight), float32(o.Settle.Seconds()), ease.OutQuad))
	return p
}

// SpawnAura creates the reversal aura at unit scale.
func SpawnAura(ecs *ecs.ECS, owner donburi.Entity, pos mgl64.Vec3) *donburi.Entry {
	a := archetypes.Aura.Spawn(ecs)
	components.Aura.SetValue(a, components.AuraData{
		Owner:    owner,
		Position: pos,
		Scale:    1,
	})
	return a
}

// SpawnParticleBurst scatters particles inside a sphere around center.
func SpawnParticleBurst(ecs *ecs.ECS, owner donburi.Entity, center mgl64.Vec3, rng *rand.Rand) *donburi.Entry {
	r := cfg.Abilities.Reversal
	offsets := make([]mgl64.Vec3, r.ParticleCount)
	for i := range offsets {
		// Uniform direction, cube-root radius for uniform volume density.
		z := rng.Float64()*2 - 1
		theta := rng.Float64() * 2 * math.Pi
		s := math.Sqrt(1 - z*z)
		dist := r.ParticleSpread * math.Cbrt(rng.Float64())
		offsets[i] = mgl64.Vec3{s * math.Cos(theta), z, s * math.Sin(theta)}.Mul(dist)
	}

	b := archetypes.ParticleBurst.Spawn(ecs)
	components.ParticleBurst.SetValue(b, components.ParticleBurstData{
		Owner:   owner,
		Center:  center,
		Offsets: offsets,
		Scale:   r.ParticleMin + r.ParticleMax,
	})
	return b
}
