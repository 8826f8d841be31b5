package systems

import (
	"math"

	"github.com/automoto/domain-expansion/components"
	cfg "github.com/automoto/domain-expansion/config"
	"github.com/automoto/domain-expansion/tags"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateEffects moves projectiles and animates auras and particle bursts.
// Effects whose owner no longer exists are destroyed.
func UpdateEffects(e *ecs.ECS) {
	clock := clockOf(e)
	dt := clock.DT()
	w := e.World

	var orphans []donburi.Entity

	tags.Projectile.Each(w, func(p *donburi.Entry) {
		proj := components.Projectile.Get(p)
		owner, ok := ownerOf(w, proj.Owner)
		if !ok {
			orphans = append(orphans, p.Entity())
			return
		}
		switch proj.Kind {
		case components.ProjectileRanged:
			if proj.Moving {
				forward := components.FollowRig.Get(owner).Rotation.Rotate(forwardAxis)
				proj.Position = proj.Position.Add(forward.Mul(cfg.Abilities.Ranged.Speed * dt))
			}
		case components.ProjectileOrbit:
			stepOrbit(p, proj, components.Character.Get(owner).Position, dt)
		}
	})

	tags.Aura.Each(w, func(a *donburi.Entry) {
		aura := components.Aura.Get(a)
		owner, ok := ownerOf(w, aura.Owner)
		if !ok {
			orphans = append(orphans, a.Entity())
			return
		}
		aura.Position = components.Character.Get(owner).Position
		aura.Grown += clock.Delta
		GrowAura(aura)
	})

	tags.ParticleBurst.Each(w, func(b *donburi.Entry) {
		burst := components.ParticleBurst.Get(b)
		if _, ok := ownerOf(w, burst.Owner); !ok {
			orphans = append(orphans, b.Entity())
			return
		}
		burst.Elapsed += clock.Delta
		burst.Scale = ParticleScale(burst.Elapsed.Seconds() / cfg.Abilities.Reversal.ParticlePeriod.Seconds())
	})

	for _, entity := range orphans {
		w.Remove(entity)
	}
}

func stepOrbit(p *donburi.Entry, proj *components.ProjectileData, center mgl64.Vec3, dt float64) {
	o := cfg.Abilities.Orbit
	proj.Angle += o.AngularRate * dt
	if p.HasComponent(components.Tween) {
		h, _ := components.Tween.Get(p).Update(float32(dt))
		proj.Height = float64(h)
	}
	proj.Position = center.Add(mgl64.Vec3{
		math.Cos(proj.Angle) * o.Radius,
		proj.Height,
		math.Sin(proj.Angle) * o.Radius,
	})
}

// GrowAura eases the aura scale toward its growth target. The target rises
// linearly to the maximum scale over the grow time; the aura counts as
// exploded once it gets there.
func GrowAura(aura *components.AuraData) {
	r := cfg.Abilities.Reversal
	progress := 1.0
	if r.GrowFor > 0 {
		progress = math.Min(aura.Grown.Seconds()/r.GrowFor.Seconds(), 1)
	}
	target := 1 + progress*(r.MaxScale-1)
	aura.Scale += (target - aura.Scale) * r.ScaleLerp
	if progress >= 1 {
		aura.Exploded = true
	}
}

// ParticleScale pulses between the minimum and min+max once per period.
func ParticleScale(progress float64) float64 {
	r := cfg.Abilities.Reversal
	return r.ParticleMin + (1-math.Abs(math.Sin(progress*math.Pi)))*r.ParticleMax
}

func ownerOf(w donburi.World, owner donburi.Entity) (*donburi.Entry, bool) {
	entry, ok := entryOf(w, owner)
	if !ok || !entry.HasComponent(components.Character) {
		return nil, false
	}
	return entry, true
}
