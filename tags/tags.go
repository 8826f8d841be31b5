package tags

import "github.com/yohamta/donburi"

var (
	Character     = donburi.NewTag().SetName("Character")
	Ground        = donburi.NewTag().SetName("Ground")
	Projectile    = donburi.NewTag().SetName("Projectile")
	Aura          = donburi.NewTag().SetName("Aura")
	ParticleBurst = donburi.NewTag().SetName("ParticleBurst")
)

// Resolv tags for the ground broadphase
const (
	ResolvGround = "ground"
	ResolvProbe  = "probe"
)
