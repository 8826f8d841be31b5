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

var up = mgl64.Vec3{0, 1, 0}

// UpdateFacing turns each rig toward its travel direction and pulls it
// toward the body.
func UpdateFacing(e *ecs.ECS) {
	dt := clockOf(e).DT()
	tags.Character.Each(e.World, func(c *donburi.Entry) {
		ch := components.Character.Get(c)
		rig := components.FollowRig.Get(c)
		StepRig(rig, ch.Position, dt)
	})
}

// StepRig advances one rig by a tick. The traveled distance is measured
// before the follow lerp.
func StepRig(rig *components.FollowRigData, body mgl64.Vec3, dt float64) {
	rig.Traveled = body.Sub(rig.Position).Len()

	if rig.Traveled > cfg.Facing.Epsilon {
		if target, ok := HorizontalLookAt(body, rig.Position); ok && !quatAligned(rig.Rotation, target) {
			rig.Rotation = RotateTowards(rig.Rotation, target, cfg.Facing.TurnRate*dt)
		}
	}

	rig.Position = rig.Position.Add(body.Sub(rig.Position).Mul(cfg.Facing.FollowLerp))
}

// HorizontalLookAt is the look-at orientation from eye toward target (local
// -Z facing the target) with its pitch and roll removed.
func HorizontalLookAt(eye, target mgl64.Vec3) (mgl64.Quat, bool) {
	z := eye.Sub(target)
	if z.Len() < 1e-12 {
		return mgl64.QuatIdent(), false
	}
	z = z.Normalize()
	x := up.Cross(z)
	if x.Len() < 1e-12 {
		return mgl64.QuatIdent(), false
	}
	x = x.Normalize()
	y := z.Cross(x)

	m := mgl64.Mat4FromCols(x.Vec4(0), y.Vec4(0), z.Vec4(0), mgl64.Vec4{0, 0, 0, 1})
	q := mgl64.Mat4ToQuat(m)
	q.V[0], q.V[2] = 0, 0
	if q.Len() < 1e-12 {
		return mgl64.QuatIdent(), false
	}
	return q.Normalize(), true
}

// RotateTowards rotates from toward to by at most step radians.
func RotateTowards(from, to mgl64.Quat, step float64) mgl64.Quat {
	d := from.Dot(to)
	if d < 0 {
		to = to.Scale(-1)
		d = -d
	}
	angle := 2 * math.Acos(math.Min(d, 1))
	if angle < 1e-12 {
		return to
	}
	t := math.Min(1, step/angle)
	return mgl64.QuatSlerp(from, to, t).Normalize()
}

func quatAligned(a, b mgl64.Quat) bool {
	return math.Abs(a.Dot(b)) >= 1-1e-12
}
