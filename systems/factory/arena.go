package factory

import (
	"github.com/automoto/domain-expansion/components"
	"github.com/automoto/domain-expansion/leveldata"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi/ecs"
)

// CreateArena mounts every ground patch of the arena and records it on the
// scene. The scene entity must already exist.
func CreateArena(ecs *ecs.ECS, arena *leveldata.Arena) {
	if arena.Floor {
		CreatePlaneGround(ecs, "floor", arena.FloorHeight)
	}
	for _, g := range arena.Grounds {
		CreateGround(ecs, g.ID, g.Center, g.Half)
	}

	scene := components.Arena.MustFirst(ecs.World)
	components.Arena.SetValue(scene, components.ArenaData{
		Name:   arena.Name,
		Spawn:  arena.Spawn,
		Width:  arena.Width,
		Depth:  arena.Depth,
		Origin: mgl64.Vec3{-arena.Width / 2, 0, -arena.Depth / 2},
	})
}
