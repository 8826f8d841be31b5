package components

import (
	"github.com/automoto/domain-expansion/physics"
	"github.com/yohamta/donburi"
)

// PhysicsWorldData is the singleton holding the physics engine.
type PhysicsWorldData struct {
	Engine physics.Engine
}

var PhysicsWorld = donburi.NewComponentType[PhysicsWorldData]()
