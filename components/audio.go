package components

import (
	cfg "github.com/automoto/slingshot/config"
	"github.com/yohamta/donburi"
)

// SoundCue is a sound waiting to be played
type SoundCue struct {
	ID        cfg.SoundID
	Intensity float64 // only used by impact cues
}

// AudioData stores global audio state (singleton component)
type AudioData struct {
	SFXVolume  float64 // 0.0 - 1.0
	Muted      bool
	PendingSFX []SoundCue
}

var Audio = donburi.NewComponentType[AudioData]()
