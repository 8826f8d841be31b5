package config

import "github.com/hajimehoshi/ebiten/v2"

// InputID is a logical key or button identifier held in the input snapshot.
type InputID string

const (
	KeyW      InputID = "KeyW"
	KeyA      InputID = "KeyA"
	KeyS      InputID = "KeyS"
	KeyD      InputID = "KeyD"
	Space     InputID = "Space"
	ShiftLeft InputID = "ShiftLeft"
	KeyQ      InputID = "KeyQ"
	KeyE      InputID = "KeyE"
	KeyR      InputID = "KeyR"
	KeyF      InputID = "KeyF"
	Mouse0    InputID = "Mouse0"
	Mouse2    InputID = "Mouse2"
)

// AllInputs lists every identifier the core reads.
var AllInputs = []InputID{KeyW, KeyA, KeyS, KeyD, Space, ShiftLeft, KeyQ, KeyE, KeyR, KeyF, Mouse0, Mouse2}

// InputBinding ties a logical identifier to a physical key or mouse button.
type InputBinding struct {
	Keys         []ebiten.Key
	MouseButtons []ebiten.MouseButton
}

// InputConfig holds all input mappings.
type InputConfig struct {
	Bindings map[InputID]InputBinding
	// Key that releases pointer capture.
	ReleaseKey ebiten.Key
	// Radians of yaw per pixel of pointer motion at sensitivity 1.
	YawPerPixel float64
}

// Input is the global input configuration
var Input InputConfig

func init() {
	Input = InputConfig{
		Bindings: map[InputID]InputBinding{
			KeyW:      {Keys: []ebiten.Key{ebiten.KeyW}},
			KeyA:      {Keys: []ebiten.Key{ebiten.KeyA}},
			KeyS:      {Keys: []ebiten.Key{ebiten.KeyS}},
			KeyD:      {Keys: []ebiten.Key{ebiten.KeyD}},
			Space:     {Keys: []ebiten.Key{ebiten.KeySpace}},
			ShiftLeft: {Keys: []ebiten.Key{ebiten.KeyShiftLeft}},
			KeyQ:      {Keys: []ebiten.Key{ebiten.KeyQ}},
			KeyE:      {Keys: []ebiten.Key{ebiten.KeyE}},
			KeyR:      {Keys: []ebiten.Key{ebiten.KeyR}},
			KeyF:      {Keys: []ebiten.Key{ebiten.KeyF}},
			Mouse0:    {MouseButtons: []ebiten.MouseButton{ebiten.MouseButtonLeft}},
			Mouse2:    {MouseButtons: []ebiten.MouseButton{ebiten.MouseButtonRight}},
		},
		ReleaseKey:  ebiten.KeyEscape,
		YawPerPixel: 0.003,
	}
}
