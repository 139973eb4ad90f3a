package systems

import (
	"log"
	"sync"

	"github.com/automoto/slingshot/assets"
	"github.com/automoto/slingshot/components"
	cfg "github.com/automoto/slingshot/config"
	"github.com/automoto/slingshot/systems/factory"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/yohamta/donburi/ecs"
)

// Global audio state - created once and shared across all scenes
var (
	globalAudioContext *audio.Context
	globalAudioLoader  *assets.AudioLoader
	globalSFXVolume    float64 = cfg.Audio.DefaultSFXVol
	globalMuted        bool
	audioInitOnce      sync.Once
	audioFailed        bool
)

// initGlobalAudio initializes the global audio context (called once)
func initGlobalAudio() {
	audioInitOnce.Do(func() {
		globalAudioContext = audio.NewContext(cfg.Audio.SampleRate)
		globalAudioLoader = assets.NewAudioLoader(globalAudioContext)
	})
}

// PreloadAllSFX renders every fixed sound effect at startup to avoid lag on
// first play. Impact cues depend on intensity and are rendered on demand.
func PreloadAllSFX() {
	initGlobalAudio()

	for id := range cfg.Sound.Tones {
		if err := globalAudioLoader.PreloadSFX(id); err != nil {
			log.Printf("Warning: Could not preload sound %d: %v", id, err)
		}
	}
}

// UpdateAudio plays the sound effects queued this frame
func UpdateAudio(e *ecs.ECS) {
	initGlobalAudio()

	entry, ok := components.Audio.First(e.World)
	if !ok {
		return
	}
	audioData := components.Audio.Get(entry)
	for _, cue := range audioData.PendingSFX {
		playSFX(cue)
	}
	audioData.PendingSFX = audioData.PendingSFX[:0]
}

func playSFX(cue components.SoundCue) {
	if globalMuted || globalSFXVolume <= 0 || audioFailed {
		return
	}

	player, err := globalAudioLoader.LoadSFX(cue.ID, cue.Intensity)
	if err != nil {
		// Log once and keep the game running silently
		log.Printf("Warning: Could not play sound %d, disabling audio: %v", cue.ID, err)
		audioFailed = true
		return
	}

	volume := globalSFXVolume
	if mult, ok := cfg.Sound.VolumeMultipliers[cue.ID]; ok {
		volume *= mult
	}

	player.SetVolume(volume)
	player.Play()
}

// PlaySFX queues a sound effect to be played
func PlaySFX(e *ecs.ECS, sound cfg.SoundID) {
	queueSFX(e, components.SoundCue{ID: sound})
}

// PlayImpact queues an impact cue; louder and higher for stronger impacts.
func PlayImpact(e *ecs.ECS, intensity float64) {
	queueSFX(e, components.SoundCue{ID: cfg.SoundImpact, Intensity: intensity})
}

func queueSFX(e *ecs.ECS, cue components.SoundCue) {
	audioData := GetOrCreateAudio(e)
	if audioData.Muted {
		return
	}
	audioData.PendingSFX = append(audioData.PendingSFX, cue)
}

// SetSFXVolume changes the SFX volume (0.0 - 1.0)
func SetSFXVolume(e *ecs.ECS, volume float64) {
	globalSFXVolume = volume
	GetOrCreateAudio(e).SFXVolume = volume
}

// SetMuted mutes or unmutes every sound effect
func SetMuted(e *ecs.ECS, muted bool) {
	globalMuted = muted
	audioData := GetOrCreateAudio(e)
	audioData.Muted = muted
	if muted {
		audioData.PendingSFX = audioData.PendingSFX[:0]
	}
}

// ToggleMute flips mute and saves the choice.
func ToggleMute(e *ecs.ECS) {
	SetMuted(e, !globalMuted)
	log.Printf("Sound muted: %v", globalMuted)
	SaveCurrentSettings(e)
}

// IsMuted reports whether sound effects are muted
func IsMuted() bool {
	return globalMuted
}

// GetSFXVolume returns the current SFX volume (0.0 - 1.0)
func GetSFXVolume() float64 {
	return globalSFXVolume
}

// GetOrCreateAudio returns the singleton Audio component for this ECS, creating it if needed
func GetOrCreateAudio(e *ecs.ECS) *components.AudioData {
	entry, ok := components.Audio.First(e.World)
	if !ok {
		entry = factory.CreateAudio(e.World, globalSFXVolume, globalMuted)
	}
	return components.Audio.Get(entry)
}
