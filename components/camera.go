package components

import "github.com/yohamta/donburi"

// CameraData carries the follow camera's yaw, the only camera value the
// simulation reads.
type CameraData struct {
	Yaw         float64 // radians around +Y
	Sensitivity float64
	LastCursorX int
	HasCursor   bool
}

var Camera = donburi.NewComponentType[CameraData]()
