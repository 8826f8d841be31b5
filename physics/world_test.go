package physics

import (
	"errors"
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func approxEqual(a, b, eps float64) bool {
	return math.Abs(a-b) <= eps
}

// groundPatch is a box whose top face sits at y=0.
func groundPatch(w *World) ColliderHandle {
	return w.RegisterStaticCollider(Box(mgl64.Vec3{80, 0.5, 80}, mgl64.Vec3{}), mgl64.Vec3{0, -0.5, 0}, GroundMaterial)
}

func capsule(pos mgl64.Vec3, onCollide func(Contact)) BodyDef {
	return BodyDef{
		Shapes: []Shape{
			Sphere(0.25, mgl64.Vec3{0, 0.25, 0}),
			Sphere(0.25, mgl64.Vec3{0, 0.75, 0}),
			Sphere(0.25, mgl64.Vec3{0, 1.25, 0}),
			Box(mgl64.Vec3{0.2, 0.675, 0.2}, mgl64.Vec3{0, 0.68, 0}),
		},
		Mass:      1,
		Material:  Slippery,
		Position:  pos,
		OnCollide: onCollide,
	}
}

func TestRayIntersectFlatGround(t *testing.T) {
	w := NewWorld(-9.81, 1)
	g := groundPatch(w)

	foot := mgl64.Vec3{3, 0, -2}
	hits := w.RayIntersect(foot.Add(mgl64.Vec3{0, 0.01, 0}), mgl64.Vec3{0, -1, 0}, []ColliderHandle{g})
	if len(hits) != 1 {
		t.Fatalf("got %d hits, want 1", len(hits))
	}
	if !approxEqual(hits[0].Distance, 0.01, 1e-9) {
		t.Errorf("distance = %v, want 0.01", hits[0].Distance)
	}
	if hits[0].Collider != g {
		t.Errorf("collider = %v, want %v", hits[0].Collider, g)
	}
}

func TestRayIntersectShapes(t *testing.T) {
	w := NewWorld(0, 1)
	plane := w.RegisterStaticCollider(Plane(mgl64.Vec3{0, 1, 0}), mgl64.Vec3{0, -2, 0}, GroundMaterial)
	sphere := w.RegisterStaticCollider(Sphere(1, mgl64.Vec3{}), mgl64.Vec3{10, 0, 0}, GroundMaterial)
	box := w.RegisterStaticCollider(Box(mgl64.Vec3{1, 1, 1}, mgl64.Vec3{}), mgl64.Vec3{0, 0, 0}, GroundMaterial)

	tests := []struct {
		name      string
		origin    mgl64.Vec3
		dir       mgl64.Vec3
		colliders []ColliderHandle
		want      []float64
	}{
		{"plane below", mgl64.Vec3{5, 3, 5}, mgl64.Vec3{0, -1, 0}, []ColliderHandle{plane}, []float64{5}},
		{"plane behind", mgl64.Vec3{5, 3, 5}, mgl64.Vec3{0, 1, 0}, []ColliderHandle{plane}, nil},
		{"sphere", mgl64.Vec3{10, 5, 0}, mgl64.Vec3{0, -1, 0}, []ColliderHandle{sphere}, []float64{4}},
		{"inside box", mgl64.Vec3{0, 0, 0}, mgl64.Vec3{0, -1, 0}, []ColliderHandle{box}, []float64{0}},
		{"sorted", mgl64.Vec3{0, 3, 0}, mgl64.Vec3{0, -2, 0}, []ColliderHandle{plane, box}, []float64{2, 5}},
		{"unknown handle", mgl64.Vec3{0, 3, 0}, mgl64.Vec3{0, -1, 0}, []ColliderHandle{999}, nil},
		{"empty set", mgl64.Vec3{0, 3, 0}, mgl64.Vec3{0, -1, 0}, nil, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hits := w.RayIntersect(tt.origin, tt.dir, tt.colliders)
			if len(hits) != len(tt.want) {
				t.Fatalf("got %d hits, want %d", len(hits), len(tt.want))
			}
			for i, d := range tt.want {
				if !approxEqual(hits[i].Distance, d, 1e-9) {
					t.Errorf("hit %d distance = %v, want %v", i, hits[i].Distance, d)
				}
			}
		})
	}
}

func TestBodyRestsOnGround(t *testing.T) {
	w := NewWorld(-9.81, 1)
	groundPatch(w)
	h := w.RegisterDynamicBody(capsule(mgl64.Vec3{0, 0.5, 0}, nil))

	for i := 0; i < 120; i++ {
		w.Step(1.0 / 60)
	}
	pos, err := w.Position(h)
	if err != nil {
		t.Fatal(err)
	}
	if !approxEqual(pos.Y(), 0, 1e-6) {
		t.Errorf("resting height = %v, want 0", pos.Y())
	}
}

func TestCollideCallbackNormalPointsDown(t *testing.T) {
	w := NewWorld(-9.81, 1)
	g := groundPatch(w)

	var got []Contact
	w.RegisterDynamicBody(capsule(mgl64.Vec3{0, 0.2, 0}, func(c Contact) { got = append(got, c) }))
	for i := 0; i < 30 && len(got) == 0; i++ {
		w.Step(1.0 / 60)
	}
	if len(got) == 0 {
		t.Fatal("no contact reported")
	}
	c := got[0]
	if c.Collider != g {
		t.Errorf("collider = %v, want %v", c.Collider, g)
	}
	if down := c.Normal.Dot(mgl64.Vec3{0, -1, 0}); down <= 0.5 {
		t.Errorf("normal %v · down = %v, want > 0.5", c.Normal, down)
	}
}

func TestDamping(t *testing.T) {
	w := NewWorld(0, 1)
	h := w.RegisterDynamicBody(capsule(mgl64.Vec3{0, 10, 0}, nil))

	if err := w.ApplyImpulse(h, mgl64.Vec3{1, 0, 0}, mgl64.Vec3{}); err != nil {
		t.Fatal(err)
	}
	w.Step(1)
	v, _ := w.Velocity(h)
	if !approxEqual(v.X(), 1, 1e-12) {
		t.Errorf("undamped velocity = %v, want 1", v.X())
	}

	if err := w.SetDamping(h, 0.9999999); err != nil {
		t.Fatal(err)
	}
	w.Step(1)
	v, _ = w.Velocity(h)
	if v.X() > 1e-6 {
		t.Errorf("damped velocity = %v, want ~0", v.X())
	}
	if d, _ := w.Damping(h); d != 0.9999999 {
		t.Errorf("Damping() = %v", d)
	}
}

func TestImpulseScalesWithMass(t *testing.T) {
	w := NewWorld(0, 1)
	def := capsule(mgl64.Vec3{}, nil)
	def.Mass = 2
	h := w.RegisterDynamicBody(def)
	_ = w.ApplyImpulse(h, mgl64.Vec3{0, 6, 0}, mgl64.Vec3{})
	v, _ := w.Velocity(h)
	if !approxEqual(v.Y(), 3, 1e-12) {
		t.Errorf("velocity = %v, want 3", v.Y())
	}
}

func TestUnknownHandles(t *testing.T) {
	w := NewWorld(0, 1)
	h := w.RegisterDynamicBody(capsule(mgl64.Vec3{}, nil))
	w.RemoveBody(h)

	if err := w.ApplyImpulse(h, mgl64.Vec3{1, 0, 0}, mgl64.Vec3{}); !errors.Is(err, ErrUnknownBody) {
		t.Errorf("ApplyImpulse on removed body: err = %v", err)
	}
	if err := w.SetDamping(h, 1); !errors.Is(err, ErrUnknownBody) {
		t.Errorf("SetDamping on removed body: err = %v", err)
	}

	c := groundPatch(w)
	w.RemoveStaticCollider(c)
	w.RemoveStaticCollider(c)
	if hits := w.RayIntersect(mgl64.Vec3{0, 1, 0}, mgl64.Vec3{0, -1, 0}, []ColliderHandle{c}); len(hits) != 0 {
		t.Errorf("removed collider still hit: %+v", hits)
	}
}

func TestCallbackMayRemoveBody(t *testing.T) {
	w := NewWorld(-9.81, 1)
	groundPatch(w)
	var h BodyHandle
	calls := 0
	h = w.RegisterDynamicBody(capsule(mgl64.Vec3{0, 0, 0}, func(Contact) {
		calls++
		w.RemoveBody(h)
	}))
	w.Step(1.0 / 60)
	w.Step(1.0 / 60)
	if calls != 1 {
		t.Errorf("callback ran %d times, want 1", calls)
	}
}
