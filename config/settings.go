package config

// SettingsConfig contains persisted user settings configuration
type SettingsConfig struct {
	AppName            string
	SettingsKey        string
	VolumeSteps        []float64
	DefaultVolumeIndex int
}

// Settings is the global settings configuration
var Settings SettingsConfig

func init() {
	Settings = SettingsConfig{
		AppName:            "slingshot",
		SettingsKey:        "settings",
		VolumeSteps:        []float64{0, 0.25, 0.5, 0.75, 1.0},
		DefaultVolumeIndex: 4,
	}
}
