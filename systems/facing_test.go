package systems

import (
	"math"
	"testing"

	"github.com/automoto/domain-expansion/components"
	cfg "github.com/automoto/domain-expansion/config"
	"github.com/go-gl/mathgl/mgl64"
)

func quatAngle(a, b mgl64.Quat) float64 {
	return 2 * math.Acos(math.Min(math.Abs(a.Dot(b)), 1))
}

func TestHorizontalLookAt(t *testing.T) {
	tests := []struct {
		name        string
		eye, target mgl64.Vec3
		wantForward mgl64.Vec3
		wantOK      bool
	}{
		{name: "travel along +z", eye: mgl64.Vec3{0, 0, 1}, target: mgl64.Vec3{}, wantForward: mgl64.Vec3{0, 0, 1}, wantOK: true},
		{name: "travel along +x", eye: mgl64.Vec3{2, 0, 0}, target: mgl64.Vec3{}, wantForward: mgl64.Vec3{1, 0, 0}, wantOK: true},
		{name: "pitch removed", eye: mgl64.Vec3{0, 1, -1}, target: mgl64.Vec3{}, wantForward: mgl64.Vec3{0, 0, -1}, wantOK: true},
		{name: "same point", eye: mgl64.Vec3{1, 1, 1}, target: mgl64.Vec3{1, 1, 1}},
		{name: "straight down", eye: mgl64.Vec3{0, -1, 0}, target: mgl64.Vec3{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q, ok := HorizontalLookAt(tt.eye, tt.target)
			if ok != tt.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tt.wantOK)
			}
			if !ok {
				return
			}
			if got := q.Rotate(forwardAxis); !vecApprox(got, tt.wantForward, 1e-9) {
				t.Errorf("forward = %v, want %v", got, tt.wantForward)
			}
		})
	}
}

func TestRotateTowardsLimitsStep(t *testing.T) {
	from := mgl64.QuatIdent()
	to := mgl64.QuatRotate(math.Pi/2, up)

	got := RotateTowards(from, to, 0.1)
	if a := quatAngle(from, got); !approxEqual(a, 0.1, 1e-9) {
		t.Errorf("turned %v rad, want 0.1", a)
	}

	got = RotateTowards(from, to, 10)
	if a := quatAngle(got, to); a > 1e-9 {
		t.Errorf("large step should land on the target, off by %v", a)
	}
}

func TestStepRig(t *testing.T) {
	cfg.Reset()
	rig := components.FollowRigData{Rotation: mgl64.QuatIdent()}
	body := mgl64.Vec3{1, 0, 0}

	StepRig(&rig, body, 0.1)

	if !approxEqual(rig.Traveled, 1, 1e-12) {
		t.Errorf("traveled = %v, want 1", rig.Traveled)
	}
	if !vecApprox(rig.Position, mgl64.Vec3{cfg.Facing.FollowLerp, 0, 0}, 1e-12) {
		t.Errorf("position = %v", rig.Position)
	}
	// 20 rad/s for 0.1s covers the quarter turn.
	if got := rig.Rotation.Rotate(forwardAxis); !vecApprox(got, mgl64.Vec3{1, 0, 0}, 1e-9) {
		t.Errorf("forward = %v, want +x", got)
	}

	still := rig
	StepRig(&still, still.Position, 0.1)
	if still.Rotation != rig.Rotation {
		t.Error("rig turned without moving")
	}
}
