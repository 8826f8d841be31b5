package components

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

// ArenaData describes the loaded arena (singleton component).
type ArenaData struct {
	Name   string
	Spawn  mgl64.Vec3
	Width  float64
	Depth  float64
	Origin mgl64.Vec3 // world position of the arena's minimum corner
}

var Arena = donburi.NewComponentType[ArenaData]()
