package systems

import (
	"math"
	"testing"

	cfg "github.com/automoto/domain-expansion/config"
	"github.com/automoto/domain-expansion/input"
	"github.com/go-gl/mathgl/mgl64"
)

func TestClassifyLocomotion(t *testing.T) {
	cfg.Reset()
	const dt = 0.1

	tests := []struct {
		name       string
		in         input.Snapshot
		grounded   bool
		inJump     bool
		override   cfg.StateID
		overriding bool
		wantState  cfg.StateID
		wantLen    float64
		wantJump   bool
	}{
		{name: "idle", grounded: true, wantState: cfg.Idle},
		{name: "walk forward", in: input.Of(cfg.KeyW), grounded: true, wantState: cfg.Walk, wantLen: 0.3},
		{name: "diagonal keeps clamped length", in: input.Of(cfg.KeyW, cfg.KeyD), grounded: true, wantState: cfg.Walk, wantLen: 0.3},
		{name: "sprint", in: input.Of(cfg.KeyS, cfg.ShiftLeft), grounded: true, wantState: cfg.Run, wantLen: 1},
		{name: "shift alone is idle", in: input.Of(cfg.ShiftLeft), grounded: true, wantState: cfg.Idle},
		{name: "guard left stops walk", in: input.Of(cfg.KeyW, cfg.Mouse0), grounded: true, wantState: cfg.GuardLeft},
		{name: "guard right stops sprint", in: input.Of(cfg.KeyA, cfg.ShiftLeft, cfg.Mouse2), grounded: true, wantState: cfg.GuardRight},
		{name: "guard left stops diagonal sprint", in: input.Of(cfg.KeyW, cfg.KeyD, cfg.ShiftLeft, cfg.Mouse0), grounded: true, wantState: cfg.GuardLeft},
		{name: "jump out of guard", in: input.Of(cfg.KeyW, cfg.Mouse0, cfg.Space), grounded: true, wantState: cfg.Jump, wantLen: 6, wantJump: true},
		{name: "guard right wins", in: input.Of(cfg.Mouse0, cfg.Mouse2), grounded: true, wantState: cfg.GuardRight},
		{name: "airborne ignores movement", in: input.Of(cfg.KeyW, cfg.Mouse0), wantState: cfg.Idle},
		{name: "jump", in: input.Of(cfg.Space), grounded: true, wantState: cfg.Jump, wantLen: 6, wantJump: true},
		{name: "no jump while in jump", in: input.Of(cfg.Space), grounded: true, inJump: true, wantState: cfg.Jump},
		{name: "jump latch beats guard", in: input.Of(cfg.Mouse0), grounded: true, inJump: true, wantState: cfg.Jump},
		{name: "override wins", in: input.Of(cfg.KeyW, cfg.Space), grounded: true, override: cfg.AbilityOrbitChannel, overriding: true, wantState: cfg.AbilityOrbitChannel},
		{name: "nil snapshot", in: nil, grounded: true, wantState: cfg.Idle},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ClassifyLocomotion(tt.in, tt.grounded, tt.inJump, tt.override, tt.overriding, dt)
			if got.State != tt.wantState {
				t.Errorf("state = %v, want %v", got.State, tt.wantState)
			}
			if !approxEqual(got.Vector.Len(), tt.wantLen, 1e-9) {
				t.Errorf("vector length = %v, want %v", got.Vector.Len(), tt.wantLen)
			}
			if got.Jump != tt.wantJump {
				t.Errorf("jump = %v, want %v", got.Jump, tt.wantJump)
			}
		})
	}
}

func TestWalkImpulse(t *testing.T) {
	h := newHarness(t, true)
	h.tick(cfg.KeyW)

	ch := h.character()
	if !ch.Grounded {
		t.Fatal("character should be grounded on the floor")
	}
	if h.state() != cfg.Walk {
		t.Fatalf("state = %v, want Walk", h.state())
	}
	if !vecApprox(ch.Impulse, mgl64.Vec3{0, 0, -0.3}, 1e-9) {
		t.Errorf("impulse = %v, want (0, 0, -0.3)", ch.Impulse)
	}
}

func TestImpulseFollowsCameraYaw(t *testing.T) {
	h := newHarness(t, true)
	h.tick()
	setYaw(h, math.Pi/2)
	h.tick(cfg.KeyW)

	imp := h.character().Impulse
	if !vecApprox(imp, mgl64.Vec3{-0.3, 0, 0}, 1e-9) {
		t.Errorf("impulse = %v, want (-0.3, 0, 0)", imp)
	}
}

func TestGuardCancelsWalkImpulse(t *testing.T) {
	h := newHarness(t, true)
	h.tick(cfg.KeyW)
	moved := h.character().Position.Z()

	h.tick(cfg.KeyW, cfg.ShiftLeft, cfg.Mouse2)
	if h.state() != cfg.GuardRight {
		t.Fatalf("state = %v, want GuardRight", h.state())
	}
	if imp := h.character().Impulse; imp.Len() != 0 {
		t.Errorf("impulse = %v, want zero while guarding", imp)
	}

	for range 10 {
		h.tick(cfg.KeyW, cfg.Mouse0)
	}
	if h.state() != cfg.GuardLeft {
		t.Fatalf("state = %v, want GuardLeft", h.state())
	}
	// Only the walk tick's leftover velocity may still move the body.
	if z := h.character().Position.Z(); z < moved-0.03 {
		t.Errorf("character kept walking while guarding: z went from %v to %v", moved, z)
	}
}

func TestPointerReleasedIgnoresInput(t *testing.T) {
	h := newHarness(t, true)
	capture(h, false)
	h.tick(cfg.KeyW, cfg.KeyR, cfg.KeyF)

	if h.state() != cfg.Idle {
		t.Errorf("state = %v, want Idle", h.state())
	}
	if h.character().Impulse.Len() != 0 {
		t.Errorf("impulse = %v, want zero", h.character().Impulse)
	}
	if h.abilities().Ranged.Running() || h.expansion().Started {
		t.Error("abilities must not trigger without pointer capture")
	}
}

func TestStateTimer(t *testing.T) {
	h := newHarness(t, true)
	h.tick(cfg.KeyW)
	h.tick(cfg.KeyW)
	h.tick(cfg.KeyW)
	if got := stateTimer(h); got != 2*step {
		t.Errorf("state timer = %v, want %v", got, 2*step)
	}
	h.tick()
	if got := stateTimer(h); got != 0 {
		t.Errorf("state timer after change = %v, want 0", got)
	}
}
