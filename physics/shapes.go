package physics

import "github.com/go-gl/mathgl/mgl64"

type ShapeKind int

const (
	ShapeSphere ShapeKind = iota
	ShapeBox
	ShapePlane
)

// Shape is a collision primitive. Offset is relative to the owning body or
// collider position. Boxes are axis aligned.
type Shape struct {
	Kind        ShapeKind
	Offset      mgl64.Vec3
	Radius      float64    // sphere
	HalfExtents mgl64.Vec3 // box
	Normal      mgl64.Vec3 // plane, unit length
}

func Sphere(radius float64, offset mgl64.Vec3) Shape {
	return Shape{Kind: ShapeSphere, Radius: radius, Offset: offset}
}

func Box(half, offset mgl64.Vec3) Shape {
	return Shape{Kind: ShapeBox, HalfExtents: half, Offset: offset}
}

// Plane is an infinite plane through the collider position.
func Plane(normal mgl64.Vec3) Shape {
	return Shape{Kind: ShapePlane, Normal: normal.Normalize()}
}

// Material holds surface response coefficients.
type Material struct {
	Name        string
	Friction    float64
	Restitution float64
}

var (
	// Slippery is the character material: no friction so walls do not grab.
	Slippery = Material{Name: "slippery", Friction: 0, Restitution: 0.01}
	// GroundMaterial is the default for static colliders.
	GroundMaterial = Material{Name: "ground", Friction: 0.3, Restitution: 0}
)

func combine(a, b Material) (friction, restitution float64) {
	return min(a.Friction, b.Friction), max(a.Restitution, b.Restitution)
}
