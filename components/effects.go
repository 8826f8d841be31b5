package components

import (
	"time"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

type ProjectileKind int

const (
	ProjectileRanged ProjectileKind = iota
	ProjectileOrbit
)

// ProjectileData is a transient ability projectile.
type ProjectileData struct {
	Kind     ProjectileKind
	Owner    donburi.Entity
	Position mgl64.Vec3
	Moving   bool
	Angle    float64 // orbit only
	Height   float64 // orbit only
}

var Projectile = donburi.NewComponentType[ProjectileData]()

// Tween drives a single eased value on an effect, e.g. the orbit height.
var Tween = donburi.NewComponentType[gween.Tween]()

// AuraData is the reversal aura. Scale eases toward the growth target every
// tick; Exploded swaps it to the opaque red look.
type AuraData struct {
	Owner    donburi.Entity
	Position mgl64.Vec3
	Scale    float64
	Exploded bool
	Grown    time.Duration
}

var Aura = donburi.NewComponentType[AuraData]()

// ParticleBurstData is the reversal particle cloud.
type ParticleBurstData struct {
	Owner   donburi.Entity
	Center  mgl64.Vec3
	Offsets []mgl64.Vec3
	Scale   float64
	Elapsed time.Duration
}

var ParticleBurst = donburi.NewComponentType[ParticleBurstData]()
