package components

import (
	"github.com/yohamta/donburi"
)

// SettingsData stores the persisted user settings
type SettingsData struct {
	VolumeIndex int
	Muted       bool
	Loaded      bool
}

// Settings is the component type for user settings
var Settings = donburi.NewComponentType[SettingsData]()
