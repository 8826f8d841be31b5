package systems

import (
	"math/rand/v2"
	"time"

	"github.com/automoto/domain-expansion/components"
	cfg "github.com/automoto/domain-expansion/config"
	"github.com/automoto/domain-expansion/logger"
	"github.com/automoto/domain-expansion/systems/factory"
	"github.com/automoto/domain-expansion/tags"
	"github.com/automoto/domain-expansion/timeline"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var forwardAxis = mgl64.Vec3{0, 0, 1}

var particleRNG = rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0x5eed))

// UpdateAbilities advances every running ability sequence, then starts the
// ones whose trigger was pressed this tick, then derives each character's
// state override. A sequence started this tick is not advanced until the
// next one.
func UpdateAbilities(e *ecs.ECS) {
	scene, ok := components.Input.First(e.World)
	if !ok {
		return
	}
	in := components.Input.Get(scene)
	audio := components.Audio.Get(scene)
	exp := components.Expansion.Get(scene)
	dt := clockOf(e).Delta
	log := logger.For("abilities")

	advanceDomain(exp, dt)

	var characters []*donburi.Entry
	tags.Character.Each(e.World, func(c *donburi.Entry) {
		characters = append(characters, c)
	})

	for _, c := range characters {
		ab := components.Abilities.Get(c)

		advanceRanged(e, ab, audio, dt)
		advanceOrbit(e, ab, dt)
		advanceReversal(e, c, ab, dt)

		if in.PointerCaptured {
			if in.JustPressed(cfg.KeyR) {
				if triggerRanged(e, c, ab) {
					log.Debug("ranged started", "entity", c.Entity())
				}
			}
			if in.JustPressed(cfg.KeyQ) {
				if triggerOrbit(e, c, ab, audio) {
					log.Debug("orbit started", "entity", c.Entity())
				}
			}
			if in.JustPressed(cfg.KeyE) {
				if ab.Reversal.Start() {
					audio.Play(cfg.SoundRed)
					log.Debug("reversal started", "entity", c.Entity())
				}
			}
			if in.JustPressed(cfg.KeyF) {
				if TriggerDomain(exp, audio, c.Entity()) {
					log.Info("domain expansion started", "entity", c.Entity())
				} else {
					log.Debug("domain expansion rejected", "entity", c.Entity())
				}
			}
		}

		ab.Override, ab.Overriding = abilityOverride(ab, exp, c.Entity())
	}
}

// TriggerDomain starts the domain announce unless one is already in
// progress or Expansion Mode has not yet reverted from the last one.
func TriggerDomain(exp *components.ExpansionData, audio *components.AudioData, owner donburi.Entity) bool {
	if exp.Started {
		return false
	}
	exp.Announce = timeline.New(timeline.Segment{
		Phase:  components.DomainAnnounce,
		Length: cfg.Abilities.Domain.AnnounceFor,
	})
	exp.Announce.Start()
	exp.Started = true
	exp.Owner = owner
	if audio != nil {
		audio.Play(cfg.SoundDomain)
	}
	return true
}

// advanceDomain turns Expansion Mode on when the announce completes. The
// revert countdown absorbs the overshoot so it lands on the exact boundary.
func advanceDomain(exp *components.ExpansionData, dt time.Duration) {
	for _, t := range exp.Announce.Advance(dt) {
		if t.To != timeline.Inactive {
			continue
		}
		exp.Set(true, cfg.Expansion.RevertAfter-t.Overshoot)
		logger.For("expansion").Info("expansion mode on", "revert.after", cfg.Expansion.RevertAfter)
	}
}

func advanceRanged(e *ecs.ECS, ab *components.AbilitiesData, audio *components.AudioData, dt time.Duration) {
	ts := ab.Ranged.Advance(dt)
	if len(ts) == 0 {
		return
	}
	if timeline.Entered(ts, components.RangedPrimed) {
		audio.Play(cfg.SoundHollow)
	}
	if timeline.Entered(ts, components.RangedFlight) {
		if p, ok := entryOf(e.World, ab.Projectile); ok {
			components.Projectile.Get(p).Moving = true
		}
	}
	if timeline.Entered(ts, timeline.Inactive) {
		removeEffect(e.World, &ab.Projectile)
	}
}

func advanceOrbit(e *ecs.ECS, ab *components.AbilitiesData, dt time.Duration) {
	if timeline.Entered(ab.Orbit.Advance(dt), timeline.Inactive) {
		removeEffect(e.World, &ab.OrbitBall)
	}
}

func advanceReversal(e *ecs.ECS, c *donburi.Entry, ab *components.AbilitiesData, dt time.Duration) {
	ts := ab.Reversal.Advance(dt)
	if len(ts) == 0 {
		return
	}
	pos := components.Character.Get(c).Position
	if timeline.Entered(ts, components.ReversalActive) {
		ab.Aura = factory.SpawnAura(e, c.Entity(), pos).Entity()
	}
	if timeline.Entered(ts, components.ReversalBurst) {
		removeEffect(e.World, &ab.Aura)
		ab.Burst = factory.SpawnParticleBurst(e, c.Entity(), pos, particleRNG).Entity()
	}
	if timeline.Entered(ts, timeline.Inactive) {
		removeEffect(e.World, &ab.Aura)
		removeEffect(e.World, &ab.Burst)
	}
}

func triggerRanged(e *ecs.ECS, c *donburi.Entry, ab *components.AbilitiesData) bool {
	if !ab.Ranged.Start() {
		return false
	}
	r := cfg.Abilities.Ranged
	pos := components.Character.Get(c).Position
	forward := components.FollowRig.Get(c).Rotation.Rotate(forwardAxis)
	spawn := pos.Add(forward.Mul(r.SpawnDistance))
	spawn[1] = pos.Y() + r.SpawnHeight
	ab.Projectile = factory.SpawnRangedProjectile(e, c.Entity(), spawn).Entity()
	return true
}

func triggerOrbit(e *ecs.ECS, c *donburi.Entry, ab *components.AbilitiesData, audio *components.AudioData) bool {
	if !ab.Orbit.Start() {
		return false
	}
	audio.Play(cfg.SoundBlue)
	pos := components.Character.Get(c).Position
	ab.OrbitBall = factory.SpawnOrbitProjectile(e, c.Entity(), pos).Entity()
	return true
}

// abilityOverride picks the state an ability forces on its character, if
// any. The domain announce wins over the ranged windows, which win over the
// orbit channel.
func abilityOverride(ab *components.AbilitiesData, exp *components.ExpansionData, self donburi.Entity) (cfg.StateID, bool) {
	switch {
	case exp.Announce.Running() && exp.Owner == self:
		return cfg.DomainExpansion, true
	case ab.Ranged.Phase() == components.RangedFlight && ab.Ranged.InPhase() < cfg.Abilities.Ranged.ReleaseFor:
		return cfg.AbilityRangedProjectileActive, true
	case ab.Ranged.Phase() == components.RangedCharge:
		return cfg.AbilityRangedChannel, true
	case ab.Orbit.Running() && ab.Orbit.Elapsed() < cfg.Abilities.Orbit.ChannelFor:
		return cfg.AbilityOrbitChannel, true
	}
	return cfg.Idle, false
}

func entryOf(w donburi.World, entity donburi.Entity) (*donburi.Entry, bool) {
	if entity == donburi.Null || !w.Valid(entity) {
		return nil, false
	}
	return w.Entry(entity), true
}

// removeEffect destroys an effect entity if it still exists and clears the
// reference.
func removeEffect(w donburi.World, entity *donburi.Entity) {
	if *entity != donburi.Null && w.Valid(*entity) {
		w.Remove(*entity)
	}
	*entity = donburi.Null
}
