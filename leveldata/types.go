// Package leveldata parses TMX arena files into plain arena descriptions.
// It has no dependencies on ebitengine, donburi, or resolv; pure data only.
package leveldata

import (
	"errors"

	"github.com/go-gl/mathgl/mgl64"
)

var (
	ErrNoSpawn  = errors.New("arena has no spawn point")
	ErrNoGround = errors.New("arena has no ground")
)

// Arena is an arena in world units, centred on the origin. Tiled's x axis
// maps to world X and its y axis to world Z.
type Arena struct {
	Name    string
	Width   float64 // along X
	Depth   float64 // along Z
	Spawn   mgl64.Vec3
	Grounds []GroundPatch
	// Floor adds an infinite plane at FloorHeight under everything.
	Floor       bool
	FloorHeight float64
}

// GroundPatch is a box collider the character can stand on.
type GroundPatch struct {
	ID     string
	Center mgl64.Vec3
	Half   mgl64.Vec3
}

// Top is the height of the patch's upper face.
func (g GroundPatch) Top() float64 {
	return g.Center.Y() + g.Half.Y()
}
