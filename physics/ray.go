package physics

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Hit is one ray intersection.
type Hit struct {
	Distance float64
	Collider ColliderHandle
	Point    mgl64.Vec3
}

// rayShape returns the distance along the unit direction dir at which the ray
// enters the shape. A ray starting inside a solid hits at distance 0.
func rayShape(origin, dir mgl64.Vec3, s Shape, pos mgl64.Vec3) (float64, bool) {
	c := pos.Add(s.Offset)
	switch s.Kind {
	case ShapePlane:
		denom := dir.Dot(s.Normal)
		if math.Abs(denom) < 1e-12 {
			return 0, false
		}
		t := c.Sub(origin).Dot(s.Normal) / denom
		return t, t >= 0
	case ShapeBox:
		return rayBox(origin, dir, c, s.HalfExtents)
	case ShapeSphere:
		return raySphere(origin, dir, c, s.Radius)
	}
	return 0, false
}

func rayBox(origin, dir, center, half mgl64.Vec3) (float64, bool) {
	tmin, tmax := math.Inf(-1), math.Inf(1)
	for i := 0; i < 3; i++ {
		lo, hi := center[i]-half[i], center[i]+half[i]
		if math.Abs(dir[i]) < 1e-12 {
			if origin[i] < lo || origin[i] > hi {
				return 0, false
			}
			continue
		}
		t1 := (lo - origin[i]) / dir[i]
		t2 := (hi - origin[i]) / dir[i]
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		tmin = max(tmin, t1)
		tmax = min(tmax, t2)
		if tmin > tmax {
			return 0, false
		}
	}
	if tmax < 0 {
		return 0, false
	}
	return max(tmin, 0), true
}

func raySphere(origin, dir, center mgl64.Vec3, r float64) (float64, bool) {
	oc := origin.Sub(center)
	b := oc.Dot(dir)
	c := oc.Dot(oc) - r*r
	if c <= 0 {
		return 0, true
	}
	disc := b*b - c
	if disc < 0 || b > 0 {
		return 0, false
	}
	return -b - math.Sqrt(disc), true
}
