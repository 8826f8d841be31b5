package systems

import (
	"github.com/automoto/domain-expansion/components"
	cfg "github.com/automoto/domain-expansion/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/yohamta/donburi/ecs"
)

// UpdateSettingsKeys handles the settings hotkeys: brackets step mouse
// sensitivity, minus and equals step volume, M toggles mute. Changes are
// saved right away.
func UpdateSettingsKeys(e *ecs.ECS) {
	entry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	cam := components.Camera.Get(entry)
	a := components.Audio.Get(entry)
	changed := false

	if dir := keyStep(ebiten.KeyBracketLeft, ebiten.KeyBracketRight); dir != 0 {
		cam.Sensitivity = StepSetting(cfg.Settings.SensitivitySteps, cam.Sensitivity, dir)
		changed = true
	}
	if dir := keyStep(ebiten.KeyMinus, ebiten.KeyEqual); dir != 0 {
		SetSFXVolume(e, StepSetting(cfg.Settings.VolumeSteps, a.SFXVolume, dir))
		changed = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyM) {
		a.Muted = !a.Muted
		if a.Muted {
			a.Stop(cfg.SoundDomain)
		}
		changed = true
	}

	if changed {
		SaveCurrentSettings(e)
	}
}

func keyStep(down, up ebiten.Key) int {
	switch {
	case inpututil.IsKeyJustPressed(down):
		return -1
	case inpututil.IsKeyJustPressed(up):
		return 1
	}
	return 0
}

// StepSetting moves cur to the neighbouring step in dir. A value between
// steps snaps to the nearest step in that direction.
func StepSetting(steps []float64, cur float64, dir int) float64 {
	if len(steps) == 0 {
		return cur
	}
	if dir > 0 {
		for _, s := range steps {
			if s > cur+1e-9 {
				return s
			}
		}
		return steps[len(steps)-1]
	}
	for i := len(steps) - 1; i >= 0; i-- {
		if steps[i] < cur-1e-9 {
			return steps[i]
		}
	}
	return steps[0]
}
