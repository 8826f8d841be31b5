package systems

import (
	"encoding/json"
	"fmt"

	"github.com/automoto/domain-expansion/components"
	cfg "github.com/automoto/domain-expansion/config"
	"github.com/automoto/domain-expansion/logger"
	"github.com/quasilyte/gdata"
	"github.com/yohamta/donburi/ecs"
)

const settingsKey = "settings"

// SavedSettings represents the settings data stored on disk
type SavedSettings struct {
	MouseSensitivity float64 `json:"mouseSensitivity"`
	SFXVolume        float64 `json:"sfxVolume"`
	Muted            bool    `json:"muted"`
}

var gdataManager *gdata.Manager

// InitPersistence opens the per-user data directory.
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: cfg.Settings.AppName,
	})
	if err != nil {
		return fmt.Errorf("open settings storage: %w", err)
	}
	gdataManager = m
	return nil
}

// LoadSettings returns the saved settings, or nil when nothing has been
// saved yet or persistence is unavailable.
func LoadSettings() (*SavedSettings, error) {
	if gdataManager == nil {
		return nil, nil
	}
	data, err := gdataManager.LoadItem(settingsKey)
	if err != nil {
		return nil, fmt.Errorf("load settings: %w", err)
	}
	if len(data) == 0 {
		return nil, nil
	}
	var s SavedSettings
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse settings: %w", err)
	}
	return &s, nil
}

// SaveSettings writes s to disk. It is a no-op without persistence.
func SaveSettings(s *SavedSettings) error {
	if gdataManager == nil {
		return nil
	}
	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("encode settings: %w", err)
	}
	if err := gdataManager.SaveItem(settingsKey, data); err != nil {
		return fmt.Errorf("save settings: %w", err)
	}
	return nil
}

// CurrentSettings reads the persisted fields from the scene.
func CurrentSettings(e *ecs.ECS) SavedSettings {
	s := SavedSettings{
		MouseSensitivity: cfg.Settings.DefaultSensitivity,
		SFXVolume:        cfg.Audio.DefaultSFXVol,
	}
	if entry, ok := components.Camera.First(e.World); ok {
		s.MouseSensitivity = components.Camera.Get(entry).Sensitivity
	}
	if entry, ok := components.Audio.First(e.World); ok {
		a := components.Audio.Get(entry)
		s.SFXVolume = a.SFXVolume
		s.Muted = a.Muted
	}
	return s
}

// SaveCurrentSettings persists the scene's settings, logging failures.
func SaveCurrentSettings(e *ecs.ECS) {
	s := CurrentSettings(e)
	if err := SaveSettings(&s); err != nil {
		logger.For("settings").Warn("could not save settings", "err", err)
	}
}

// ApplySavedSettings copies saved settings into the scene. Out of range
// values fall back to the defaults.
func ApplySavedSettings(e *ecs.ECS, saved *SavedSettings) {
	if saved == nil {
		return
	}
	if entry, ok := components.Camera.First(e.World); ok {
		sens := saved.MouseSensitivity
		if sens <= 0 {
			sens = cfg.Settings.DefaultSensitivity
		}
		components.Camera.Get(entry).Sensitivity = sens
	}
	if entry, ok := components.Audio.First(e.World); ok {
		a := components.Audio.Get(entry)
		a.SFXVolume = saved.SFXVolume
		if a.SFXVolume < 0 || a.SFXVolume > 1 {
			a.SFXVolume = cfg.Audio.DefaultSFXVol
		}
		a.Muted = saved.Muted
	}
}
