package systems

import (
	"encoding/json"
	"log"
	"slices"

	"github.com/automoto/slingshot/components"
	cfg "github.com/automoto/slingshot/config"
	"github.com/automoto/slingshot/systems/factory"
	"github.com/quasilyte/gdata"
	"github.com/yohamta/donburi/ecs"
)

const progressKey = "progress"

// SavedSettings represents the settings data stored on disk
type SavedSettings struct {
	SFXVolume float64 `json:"sfxVolume"`
	Muted     bool    `json:"muted"`
}

// SavedProgress lists the levels the player has cleared
type SavedProgress struct {
	Cleared []string `json:"cleared"`
}

var gdataManager *gdata.Manager
var gdataInitialized bool

// InitPersistence initializes the gdata manager for settings storage
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: cfg.Settings.AppName,
	})
	if err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
		return err
	}
	gdataManager = m
	gdataInitialized = true
	return nil
}

// LoadSettings loads settings from disk
func LoadSettings() (*SavedSettings, error) {
	var settings SavedSettings
	ok, err := loadItem(cfg.Settings.SettingsKey, &settings)
	if err != nil || !ok {
		return nil, err
	}
	return &settings, nil
}

// SaveSettings saves settings to disk
func SaveSettings(s *SavedSettings) error {
	return saveItem(cfg.Settings.SettingsKey, s)
}

// SaveCurrentSettings saves the live audio settings
func SaveCurrentSettings(e *ecs.ECS) {
	settings := GetOrCreateSettings(e)
	settings.Muted = globalMuted
	_ = SaveSettings(&SavedSettings{
		SFXVolume: globalSFXVolume,
		Muted:     globalMuted,
	})
}

// ApplySavedSettingsGlobal applies settings without needing an ECS reference
// Used during initial game startup before scenes are created
func ApplySavedSettingsGlobal(saved *SavedSettings) {
	if saved == nil {
		return
	}
	globalSFXVolume = saved.SFXVolume
	globalMuted = saved.Muted
}

// GetOrCreateSettings returns the settings singleton, seeded from the globals.
func GetOrCreateSettings(e *ecs.ECS) *components.SettingsData {
	entry, ok := components.Settings.First(e.World)
	if !ok {
		entry = factory.CreateSettings(e.World, volumeIndex(globalSFXVolume), globalMuted, gdataInitialized)
	}
	return components.Settings.Get(entry)
}

func volumeIndex(v float64) int {
	for i, step := range cfg.Settings.VolumeSteps {
		if v <= step {
			return i
		}
	}
	return -1
}

// LoadProgress returns the cleared levels, empty when nothing was saved.
func LoadProgress() *SavedProgress {
	var progress SavedProgress
	if _, err := loadItem(progressKey, &progress); err != nil {
		return &SavedProgress{}
	}
	return &progress
}

// MarkLevelCleared records a won level. Saving twice is a no-op.
func MarkLevelCleared(name string) {
	if name == "" {
		return
	}
	progress := LoadProgress()
	if slices.Contains(progress.Cleared, name) {
		return
	}
	progress.Cleared = append(progress.Cleared, name)
	_ = saveItem(progressKey, progress)
}

func IsLevelCleared(name string) bool {
	return slices.Contains(LoadProgress().Cleared, name)
}

func loadItem(key string, v any) (bool, error) {
	if !gdataInitialized || gdataManager == nil {
		return false, nil
	}

	data, err := gdataManager.LoadItem(key)
	if err != nil {
		log.Printf("Warning: Could not load %s: %v", key, err)
		return false, nil
	}
	if len(data) == 0 {
		return false, nil
	}

	if err := json.Unmarshal(data, v); err != nil {
		log.Printf("Warning: Could not parse saved %s: %v", key, err)
		return false, err
	}
	return true, nil
}

func saveItem(key string, v any) error {
	if !gdataInitialized || gdataManager == nil {
		return nil
	}

	data, err := json.Marshal(v)
	if err != nil {
		log.Printf("Warning: Could not serialize %s: %v", key, err)
		return err
	}

	if err := gdataManager.SaveItem(key, data); err != nil {
		log.Printf("Warning: Could not save %s: %v", key, err)
		return err
	}
	return nil
}
