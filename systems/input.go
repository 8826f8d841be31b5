package systems

import (
	"github.com/automoto/domain-expansion/components"
	cfg "github.com/automoto/domain-expansion/config"
	"github.com/automoto/domain-expansion/logger"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/yohamta/donburi/ecs"
)

// PollDevices copies keyboard and mouse state into the live input map and
// turns horizontal cursor motion into camera yaw. It must run before the
// core systems. Nothing is recorded until the pointer is captured by a click
// in the window; the release key or losing focus gives it back.
func PollDevices(e *ecs.ECS) {
	entry, ok := components.Input.First(e.World)
	if !ok {
		return
	}
	in := components.Input.Get(entry)
	cam := components.Camera.Get(entry)
	if in.Live == nil {
		return
	}

	if !in.PointerCaptured {
		if ebiten.IsFocused() && inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
			ebiten.SetCursorMode(ebiten.CursorModeCaptured)
			in.PointerCaptured = true
			cam.HasCursor = false
			logger.For("input").Debug("pointer captured")
		}
		return
	}

	if inpututil.IsKeyJustPressed(cfg.Input.ReleaseKey) || !ebiten.IsFocused() {
		ReleasePointer(e)
		return
	}

	for id, binding := range cfg.Input.Bindings {
		in.Live.Set(id, bindingHeld(binding))
	}

	x, _ := ebiten.CursorPosition()
	if cam.HasCursor {
		cam.Yaw -= float64(x-cam.LastCursorX) * cfg.Input.YawPerPixel * cam.Sensitivity
	}
	cam.LastCursorX = x
	cam.HasCursor = true
}

// ReleasePointer gives the cursor back and clears every held input.
func ReleasePointer(e *ecs.ECS) {
	entry, ok := components.Input.First(e.World)
	if !ok {
		return
	}
	in := components.Input.Get(entry)
	in.PointerCaptured = false
	if in.Live != nil {
		in.Live.Release()
	}
	components.Camera.Get(entry).HasCursor = false
	ebiten.SetCursorMode(ebiten.CursorModeVisible)
	logger.For("input").Debug("pointer released")
}

func bindingHeld(b cfg.InputBinding) bool {
	for _, k := range b.Keys {
		if ebiten.IsKeyPressed(k) {
			return true
		}
	}
	for _, btn := range b.MouseButtons {
		if ebiten.IsMouseButtonPressed(btn) {
			return true
		}
	}
	return false
}
