package factory

import (
	"github.com/automoto/slingshot/archetypes"
	"github.com/automoto/slingshot/components"
	cfg "github.com/automoto/slingshot/config"
	"github.com/yohamta/donburi"
)

// CreateAudio creates the audio singleton with the given volume.
func CreateAudio(w donburi.World, volume float64, muted bool) *donburi.Entry {
	e := archetypes.Audio.Spawn(w)
	components.Audio.Set(e, &components.AudioData{
		SFXVolume:  volume,
		Muted:      muted,
		PendingSFX: make([]components.SoundCue, 0, 8),
	})
	return e
}

func CreateInput(w donburi.World) *donburi.Entry {
	e := archetypes.Input.Spawn(w)
	components.Input.Set(e, &components.InputData{})
	return e
}

// CreateSettings creates the settings singleton. A negative volume index
// falls back to the default step.
func CreateSettings(w donburi.World, volumeIndex int, muted, loaded bool) *donburi.Entry {
	if volumeIndex < 0 || volumeIndex >= len(cfg.Settings.VolumeSteps) {
		volumeIndex = cfg.Settings.DefaultVolumeIndex
	}
	e := archetypes.Settings.Spawn(w)
	components.Settings.Set(e, &components.SettingsData{
		VolumeIndex: volumeIndex,
		Muted:       muted,
		Loaded:      loaded,
	})
	return e
}

func CreateDebug(w donburi.World, enabled bool) *donburi.Entry {
	e := archetypes.Debug.Spawn(w)
	components.Debug.Set(e, &components.DebugData{Enabled: enabled})
	return e
}

func CreateMenu(w donburi.World, levelNames []string) *donburi.Entry {
	e := archetypes.Menu.Spawn(w)
	components.Menu.Set(e, &components.MenuData{LevelNames: levelNames})
	return e
}
