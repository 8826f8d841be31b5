// Package physics is a small rigid-body world for the character controller.
//
// It simulates translating dynamic bodies against static colliders. Bodies
// never rotate: the character's angular factor is locked to zero and facing
// is owned by the visual rig, so impulse application points are ignored.
package physics

import (
	"errors"
	"fmt"
	"math"
	"slices"

	"github.com/go-gl/mathgl/mgl64"
)

var (
	ErrUnknownBody     = errors.New("physics: unknown body")
	ErrUnknownCollider = errors.New("physics: unknown collider")
)

type BodyHandle int
type ColliderHandle int

// Contact is reported to a body's collide callback once per touching static
// collider per step. Normal points from the body toward the collider.
type Contact struct {
	Body     BodyHandle
	Collider ColliderHandle
	Normal   mgl64.Vec3
	Depth    float64
}

// BodyDef describes a dynamic body.
type BodyDef struct {
	Shapes        []Shape
	Mass          float64
	Material      Material
	Position      mgl64.Vec3
	LinearDamping float64
	OnCollide     func(Contact)
}

// Engine is the contract the simulation consumes.
type Engine interface {
	RegisterDynamicBody(def BodyDef) BodyHandle
	RegisterStaticCollider(shape Shape, position mgl64.Vec3, material Material) ColliderHandle
	RemoveBody(h BodyHandle)
	RemoveStaticCollider(h ColliderHandle)
	ApplyImpulse(h BodyHandle, impulse, point mgl64.Vec3) error
	SetDamping(h BodyHandle, damping float64) error
	Damping(h BodyHandle) (float64, error)
	Position(h BodyHandle) (mgl64.Vec3, error)
	Velocity(h BodyHandle) (mgl64.Vec3, error)
	RayIntersect(origin, direction mgl64.Vec3, colliders []ColliderHandle) []Hit
	Step(dt float64)
}

type body struct {
	def     BodyDef
	pos     mgl64.Vec3
	vel     mgl64.Vec3
	damping float64
}

type collider struct {
	shape    Shape
	pos      mgl64.Vec3
	material Material
}

// World owns every body and collider. It is not safe for concurrent use; the
// game loop is its only caller.
type World struct {
	gravity    mgl64.Vec3
	correction float64

	bodies    map[BodyHandle]*body
	colliders map[ColliderHandle]*collider
	order     []ColliderHandle
	next      int
}

var _ Engine = (*World)(nil)

// NewWorld creates a world with the given vertical gravity. correction is
// the share of penetration resolved per step, in (0, 1].
func NewWorld(gravity, correction float64) *World {
	if correction <= 0 || correction > 1 {
		correction = 1
	}
	return &World{
		gravity:    mgl64.Vec3{0, gravity, 0},
		correction: correction,
		bodies:     make(map[BodyHandle]*body),
		colliders:  make(map[ColliderHandle]*collider),
	}
}

func (w *World) RegisterDynamicBody(def BodyDef) BodyHandle {
	if def.Mass <= 0 {
		def.Mass = 1
	}
	def.Shapes = slices.Clone(def.Shapes)
	w.next++
	h := BodyHandle(w.next)
	w.bodies[h] = &body{def: def, pos: def.Position, damping: def.LinearDamping}
	return h
}

func (w *World) RegisterStaticCollider(shape Shape, position mgl64.Vec3, material Material) ColliderHandle {
	w.next++
	h := ColliderHandle(w.next)
	w.colliders[h] = &collider{shape: shape, pos: position, material: material}
	w.order = append(w.order, h)
	return h
}

func (w *World) RemoveBody(h BodyHandle) {
	delete(w.bodies, h)
}

func (w *World) RemoveStaticCollider(h ColliderHandle) {
	if _, ok := w.colliders[h]; !ok {
		return
	}
	delete(w.colliders, h)
	w.order = slices.DeleteFunc(w.order, func(c ColliderHandle) bool { return c == h })
}

func (w *World) body(h BodyHandle) (*body, error) {
	b, ok := w.bodies[h]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownBody, h)
	}
	return b, nil
}

// ApplyImpulse changes the body velocity by impulse/mass.
func (w *World) ApplyImpulse(h BodyHandle, impulse, _ mgl64.Vec3) error {
	b, err := w.body(h)
	if err != nil {
		return err
	}
	b.vel = b.vel.Add(impulse.Mul(1 / b.def.Mass))
	return nil
}

// SetDamping sets the linear damping d; velocity decays by (1-d)^dt per step.
func (w *World) SetDamping(h BodyHandle, damping float64) error {
	b, err := w.body(h)
	if err != nil {
		return err
	}
	b.damping = mgl64.Clamp(damping, 0, 1)
	return nil
}

func (w *World) Damping(h BodyHandle) (float64, error) {
	b, err := w.body(h)
	if err != nil {
		return 0, err
	}
	return b.damping, nil
}

func (w *World) Position(h BodyHandle) (mgl64.Vec3, error) {
	b, err := w.body(h)
	if err != nil {
		return mgl64.Vec3{}, err
	}
	return b.pos, nil
}

func (w *World) Velocity(h BodyHandle) (mgl64.Vec3, error) {
	b, err := w.body(h)
	if err != nil {
		return mgl64.Vec3{}, err
	}
	return b.vel, nil
}

// Teleport moves a body and clears its velocity.
func (w *World) Teleport(h BodyHandle, pos mgl64.Vec3) error {
	b, err := w.body(h)
	if err != nil {
		return err
	}
	b.pos = pos
	b.vel = mgl64.Vec3{}
	return nil
}

// RayIntersect casts a ray against the given colliders. Hits are ordered by
// distance; unknown handles are skipped.
func (w *World) RayIntersect(origin, direction mgl64.Vec3, colliders []ColliderHandle) []Hit {
	if direction.Len() == 0 {
		return nil
	}
	dir := direction.Normalize()

	var hits []Hit
	for _, h := range colliders {
		c, ok := w.colliders[h]
		if !ok {
			continue
		}
		if t, ok := rayShape(origin, dir, c.shape, c.pos); ok {
			hits = append(hits, Hit{Distance: t, Collider: h, Point: origin.Add(dir.Mul(t))})
		}
	}
	slices.SortFunc(hits, func(a, b Hit) int {
		switch {
		case a.Distance < b.Distance:
			return -1
		case a.Distance > b.Distance:
			return 1
		}
		return 0
	})
	return hits
}

// Step integrates every body by dt seconds and resolves static contacts.
// Collide callbacks run after all bodies have moved.
func (w *World) Step(dt float64) {
	if dt <= 0 {
		return
	}

	handles := make([]BodyHandle, 0, len(w.bodies))
	for h := range w.bodies {
		handles = append(handles, h)
	}
	slices.Sort(handles)

	var contacts []Contact
	for _, h := range handles {
		b := w.bodies[h]
		b.vel = b.vel.Add(w.gravity.Mul(dt))
		b.vel = b.vel.Mul(math.Pow(1-b.damping, dt))
		b.pos = b.pos.Add(b.vel.Mul(dt))

		for _, ch := range w.order {
			c := w.colliders[ch]
			p, ok := w.deepest(b, c)
			if !ok {
				continue
			}
			w.resolve(b, c, p)
			if b.def.OnCollide != nil {
				contacts = append(contacts, Contact{Body: h, Collider: ch, Normal: p.normal.Mul(-1), Depth: p.depth})
			}
		}
	}

	for _, c := range contacts {
		// A callback may remove bodies.
		if b, ok := w.bodies[c.Body]; ok {
			b.def.OnCollide(c)
		}
	}
}

func (w *World) deepest(b *body, c *collider) (penetration, bool) {
	var best penetration
	found := false
	for _, s := range b.def.Shapes {
		p, ok := collide(s, b.pos, c.shape, c.pos)
		if ok && (!found || p.depth > best.depth) {
			best, found = p, true
		}
	}
	return best, found
}

func (w *World) resolve(b *body, c *collider, p penetration) {
	b.pos = b.pos.Add(p.normal.Mul(p.depth * w.correction))

	friction, restitution := combine(b.def.Material, c.material)
	vn := b.vel.Dot(p.normal)
	if vn >= 0 {
		return
	}
	normalVel := p.normal.Mul(vn)
	tangent := b.vel.Sub(normalVel)
	tangent = tangent.Mul(max(0, 1-friction))
	b.vel = tangent.Sub(normalVel.Mul(restitution))
}
