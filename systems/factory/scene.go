package factory

import (
	"github.com/automoto/domain-expansion/archetypes"
	"github.com/automoto/domain-expansion/components"
	cfg "github.com/automoto/domain-expansion/config"
	"github.com/automoto/domain-expansion/input"
	"github.com/automoto/domain-expansion/physics"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateScene spawns the singleton entity holding world-wide state.
func CreateScene(ecs *ecs.ECS, engine physics.Engine, live *input.State) *donburi.Entry {
	scene := archetypes.Scene.Spawn(ecs)

	if live == nil {
		live = input.NewState()
	}
	components.Input.SetValue(scene, components.InputData{Live: live})
	components.Camera.SetValue(scene, components.CameraData{Sensitivity: cfg.Settings.DefaultSensitivity})
	components.PhysicsWorld.SetValue(scene, components.PhysicsWorldData{Engine: engine})
	components.GroundRegistry.SetValue(scene, components.GroundRegistryData{
		Colliders:  make(map[string]physics.ColliderHandle),
		Footprints: make(map[string]*resolv.Object),
		Unbounded:  make(map[physics.ColliderHandle]bool),
		Space:      resolv.NewSpace(cfg.Ground.SpaceSize, cfg.Ground.SpaceSize, cfg.Ground.SpaceCell, cfg.Ground.SpaceCell),
		Offset:     cfg.Ground.SpaceOffset,
	})
	components.Expansion.SetValue(scene, components.ExpansionData{Owner: donburi.Null})
	components.Audio.SetValue(scene, components.AudioData{SFXVolume: cfg.Audio.DefaultSFXVol})
	components.Arena.SetValue(scene, components.ArenaData{Spawn: cfg.Character.Spawn})

	return scene
}

// NewPhysicsWorld builds the physics engine from the current tuning.
func NewPhysicsWorld() *physics.World {
	return physics.NewWorld(cfg.Physics.Gravity, cfg.Physics.Correction)
}
