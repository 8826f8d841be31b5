package physics

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// penetration of a dynamic shape into a static one. Normal points from the
// static shape toward the dynamic one.
type penetration struct {
	normal mgl64.Vec3
	depth  float64
}

func collide(dyn Shape, dynPos mgl64.Vec3, st Shape, stPos mgl64.Vec3) (penetration, bool) {
	a := dynPos.Add(dyn.Offset)
	b := stPos.Add(st.Offset)

	switch {
	case dyn.Kind == ShapeSphere && st.Kind == ShapeBox:
		return sphereBox(a, dyn.Radius, b, st.HalfExtents)
	case dyn.Kind == ShapeSphere && st.Kind == ShapePlane:
		return halfExtentPlane(a, dyn.Radius, b, st.Normal)
	case dyn.Kind == ShapeSphere && st.Kind == ShapeSphere:
		return sphereSphere(a, dyn.Radius, b, st.Radius)
	case dyn.Kind == ShapeBox && st.Kind == ShapeBox:
		return boxBox(a, dyn.HalfExtents, b, st.HalfExtents)
	case dyn.Kind == ShapeBox && st.Kind == ShapePlane:
		n := st.Normal
		r := math.Abs(dyn.HalfExtents.X()*n.X()) + math.Abs(dyn.HalfExtents.Y()*n.Y()) + math.Abs(dyn.HalfExtents.Z()*n.Z())
		return halfExtentPlane(a, r, b, n)
	case dyn.Kind == ShapeBox && st.Kind == ShapeSphere:
		p, ok := sphereBox(b, st.Radius, a, dyn.HalfExtents)
		p.normal = p.normal.Mul(-1)
		return p, ok
	}
	return penetration{}, false
}

func sphereSphere(a mgl64.Vec3, ra float64, b mgl64.Vec3, rb float64) (penetration, bool) {
	d := a.Sub(b)
	dist := d.Len()
	if dist >= ra+rb {
		return penetration{}, false
	}
	n := mgl64.Vec3{0, 1, 0}
	if dist > 1e-12 {
		n = d.Mul(1 / dist)
	}
	return penetration{normal: n, depth: ra + rb - dist}, true
}

func sphereBox(center mgl64.Vec3, r float64, boxCenter, half mgl64.Vec3) (penetration, bool) {
	local := center.Sub(boxCenter)
	closest := mgl64.Vec3{
		mgl64.Clamp(local.X(), -half.X(), half.X()),
		mgl64.Clamp(local.Y(), -half.Y(), half.Y()),
		mgl64.Clamp(local.Z(), -half.Z(), half.Z()),
	}
	d := local.Sub(closest)
	dist := d.Len()
	if dist >= r {
		return penetration{}, false
	}
	if dist > 1e-12 {
		return penetration{normal: d.Mul(1 / dist), depth: r - dist}, true
	}

	// Centre inside the box: leave through the nearest face.
	axis, sign, gap := nearestFace(local, half)
	n := mgl64.Vec3{}
	n[axis] = sign
	return penetration{normal: n, depth: gap + r}, true
}

func boxBox(a, ha, b, hb mgl64.Vec3) (penetration, bool) {
	d := a.Sub(b)
	best := penetration{depth: math.Inf(1)}
	for axis := 0; axis < 3; axis++ {
		overlap := ha[axis] + hb[axis] - math.Abs(d[axis])
		if overlap <= 0 {
			return penetration{}, false
		}
		if overlap < best.depth {
			n := mgl64.Vec3{}
			n[axis] = 1
			if d[axis] < 0 {
				n[axis] = -1
			}
			best = penetration{normal: n, depth: overlap}
		}
	}
	return best, true
}

// halfExtentPlane treats the dynamic shape as reaching r along the plane
// normal from its centre.
func halfExtentPlane(center mgl64.Vec3, r float64, planePoint, n mgl64.Vec3) (penetration, bool) {
	dist := center.Sub(planePoint).Dot(n)
	if dist >= r {
		return penetration{}, false
	}
	return penetration{normal: n, depth: r - dist}, true
}

func nearestFace(local, half mgl64.Vec3) (axis int, sign, gap float64) {
	gap = math.Inf(1)
	for i := 0; i < 3; i++ {
		if g := half[i] - local[i]; g < gap {
			axis, sign, gap = i, 1, g
		}
		if g := half[i] + local[i]; g < gap {
			axis, sign, gap = i, -1, g
		}
	}
	return axis, sign, gap
}
