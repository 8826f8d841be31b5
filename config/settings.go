package config

// SettingsConfig holds the defaults and limits of player settings that are
// persisted between runs.
type SettingsConfig struct {
	AppName            string
	DefaultSensitivity float64
	SensitivitySteps   []float64
	VolumeSteps        []float64
}

// Settings is the global settings configuration
var Settings SettingsConfig

func init() {
	Settings = SettingsConfig{
		AppName:            "domain-expansion",
		DefaultSensitivity: 1.0,
		SensitivitySteps:   []float64{0.25, 0.5, 1.0, 1.5, 2.0, 3.0},
		VolumeSteps:        []float64{0, 0.25, 0.5, 0.75, 1.0},
	}
}
