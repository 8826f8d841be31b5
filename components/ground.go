package components

import (
	"slices"

	"github.com/automoto/domain-expansion/physics"
	"github.com/automoto/domain-expansion/tags"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// GroundData is one static collider the character can stand on.
type GroundData struct {
	ID       string
	Collider physics.ColliderHandle
	Shape    physics.Shape
	Position mgl64.Vec3
}

var Ground = donburi.NewComponentType[GroundData]()

// GroundRegistryData maps collider identifiers to handles. Footprints of
// registered colliders live in Space so a probe can narrow the ray query.
type GroundRegistryData struct {
	Colliders  map[string]physics.ColliderHandle
	Footprints map[string]*resolv.Object
	Unbounded  map[physics.ColliderHandle]bool // colliders without a footprint, e.g. planes
	Space      *resolv.Space
	Offset     float64 // added to world X and Z to get space coordinates
}

var GroundRegistry = donburi.NewComponentType[GroundRegistryData]()

// Register adds a collider and its footprint, replacing any collider already
// registered under id. A collider registered without a footprint is returned
// by every candidate query.
func (r *GroundRegistryData) Register(id string, h physics.ColliderHandle, footprint *resolv.Object) {
	if r.Colliders == nil {
		r.Colliders = make(map[string]physics.ColliderHandle)
	}
	if r.Footprints == nil {
		r.Footprints = make(map[string]*resolv.Object)
	}
	if r.Unbounded == nil {
		r.Unbounded = make(map[physics.ColliderHandle]bool)
	}
	r.Unregister(id)

	r.Colliders[id] = h
	if footprint == nil || r.Space == nil {
		r.Unbounded[h] = true
		return
	}
	footprint.Data = h
	r.Footprints[id] = footprint
	r.Space.Add(footprint)
}

// Unregister removes a collider and its footprint.
func (r *GroundRegistryData) Unregister(id string) {
	h, ok := r.Colliders[id]
	if !ok {
		return
	}
	delete(r.Colliders, id)
	delete(r.Unbounded, h)
	if footprint, ok := r.Footprints[id]; ok {
		delete(r.Footprints, id)
		if r.Space != nil {
			r.Space.Remove(footprint)
		}
	}
}

func (r *GroundRegistryData) Len() int {
	return len(r.Colliders)
}

// Handles returns every registered collider in a stable order.
func (r *GroundRegistryData) Handles() []physics.ColliderHandle {
	hs := make([]physics.ColliderHandle, 0, len(r.Colliders))
	for _, h := range r.Colliders {
		hs = append(hs, h)
	}
	slices.Sort(hs)
	return hs
}

// Candidates returns the colliders whose footprint overlaps the probe.
func (r *GroundRegistryData) Candidates(probe *resolv.Object) []physics.ColliderHandle {
	if probe == nil || probe.Space == nil {
		return r.Handles()
	}
	var hs []physics.ColliderHandle
	for h := range r.Unbounded {
		hs = append(hs, h)
	}
	col := probe.Check(0, 0, tags.ResolvGround)
	if col == nil {
		slices.Sort(hs)
		return hs
	}
	for _, o := range col.Objects {
		if h, ok := o.Data.(physics.ColliderHandle); ok {
			hs = append(hs, h)
		}
	}
	slices.Sort(hs)
	return slices.Compact(hs)
}
