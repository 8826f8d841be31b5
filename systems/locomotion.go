package systems

import (
	"github.com/automoto/domain-expansion/components"
	cfg "github.com/automoto/domain-expansion/config"
	"github.com/automoto/domain-expansion/input"
	"github.com/automoto/domain-expansion/tags"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Locomotion is the outcome of classifying one tick of input.
type Locomotion struct {
	State  cfg.StateID
	Vector mgl64.Vec3 // camera relative; Y carries the jump impulse
	Sprint bool
	Jump   bool
}

// ClassifyLocomotion turns a snapshot into an Action State and input vector.
// Each axis is set independently before the length clamp, so diagonals keep
// the clamped length rather than a normalized sum. A held guard cancels
// planar movement but not the jump. Ability overrides win,
// then the jump latch, then guards, then Idle/Walk/Run.
func ClassifyLocomotion(in input.Snapshot, grounded, inJump bool, override cfg.StateID, overriding bool, dt float64) Locomotion {
	if overriding {
		return Locomotion{State: override}
	}

	m := cfg.Movement
	loco := Locomotion{State: cfg.Idle, Sprint: in.Held(cfg.ShiftLeft)}
	speed := m.Speed
	length := m.WalkLength
	if loco.Sprint {
		speed = m.SprintSpeed
		length = m.SprintLength
	}

	var v mgl64.Vec3
	if grounded {
		moving := false
		if in.Held(cfg.KeyW) {
			v[2] = -speed * dt
			moving = true
		}
		if in.Held(cfg.KeyS) {
			v[2] = speed * dt
			moving = true
		}
		if in.Held(cfg.KeyA) {
			v[0] = -speed * dt
			moving = true
		}
		if in.Held(cfg.KeyD) {
			v[0] = speed * dt
			moving = true
		}
		if moving {
			loco.State = cfg.Walk
			if loco.Sprint {
				loco.State = cfg.Run
			}
		}
		// Guarding plants the feet.
		if in.Held(cfg.Mouse0) {
			loco.State = cfg.GuardLeft
			v[0], v[2] = 0, 0
		}
		if in.Held(cfg.Mouse2) {
			loco.State = cfg.GuardRight
			v[0], v[2] = 0, 0
		}
	}
	if l := v.Len(); l > 0 {
		v = v.Mul(length / l)
	}

	if grounded && !inJump && in.Held(cfg.Space) {
		v[1] = m.JumpImpulse
		loco.Jump = true
	}
	if loco.Jump || inJump {
		loco.State = cfg.Jump
	}

	loco.Vector = v
	return loco
}

// YawRotation is the camera's rotation about +Y.
func YawRotation(yaw float64) mgl64.Quat {
	return mgl64.QuatRotate(yaw, mgl64.Vec3{0, 1, 0})
}

// UpdateLocomotion classifies every character and applies its impulse.
func UpdateLocomotion(e *ecs.ECS) {
	scene, ok := components.Input.First(e.World)
	if !ok {
		return
	}
	in := components.Input.Get(scene)
	yaw := components.Camera.Get(scene).Yaw
	engine := components.PhysicsWorld.Get(scene).Engine
	clock := clockOf(e)

	snap := in.Current
	if !in.PointerCaptured {
		snap = nil
	}
	rot := YawRotation(yaw)

	tags.Character.Each(e.World, func(c *donburi.Entry) {
		ch := components.Character.Get(c)
		ab := components.Abilities.Get(c)
		state := components.State.Get(c)

		loco := ClassifyLocomotion(snap, ch.Grounded, ch.InJump, ab.Override, ab.Overriding, clock.DT())

		ch.Sprinting = loco.Sprint
		ch.InputVector = loco.Vector
		ch.Impulse = rot.Rotate(loco.Vector)
		if loco.Jump {
			ch.InJump = true
		}
		if in.PointerCaptured && ch.Impulse.Len() > 0 {
			_ = engine.ApplyImpulse(ch.Body, ch.Impulse, mgl64.Vec3{})
		}

		if state.CurrentState != loco.State {
			state.CurrentState = loco.State
			state.StateTimer = 0
		} else {
			state.StateTimer += clock.Delta
		}
	})
}
