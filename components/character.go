package components

import (
	"github.com/automoto/domain-expansion/physics"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

// CharacterData is the simulation side of an avatar.
type CharacterData struct {
	Body     physics.BodyHandle
	Position mgl64.Vec3 // body position, mirrored after each physics step

	Grounded bool // derived every tick
	InJump   bool // set on jump, cleared by a landing contact

	Sprinting   bool
	InputVector mgl64.Vec3 // camera relative, after the length clamp
	Impulse     mgl64.Vec3 // world space impulse applied this tick
}

var Character = donburi.NewComponentType[CharacterData]()

// FollowRigData is the smoothed visual transform trailing the body.
type FollowRigData struct {
	Position mgl64.Vec3
	Rotation mgl64.Quat
	// Distance between body and rig before this tick's lerp; scales walk playback.
	Traveled float64
}

var FollowRig = donburi.NewComponentType[FollowRigData]()
