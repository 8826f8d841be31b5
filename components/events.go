package components

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// LandedEventData is published from the physics collide callback when a
// character touches a surface below it. It is consumed at the next tick
// boundary, never during the physics step.
type LandedEventData struct {
	Character donburi.Entity
	Normal    mgl64.Vec3
}

var LandedEvent = events.NewEventType[LandedEventData]()
