package assets

import (
	"fmt"
	"math"

	cfg "github.com/automoto/slingshot/config"
	"github.com/automoto/slingshot/shared/synth"
	"github.com/hajimehoshi/ebiten/v2/audio"
)

// impactBuckets quantizes impact intensity so impact cues can be cached.
const impactBuckets = 2

type sfxKey struct {
	id     cfg.SoundID
	bucket int
}

// AudioLoader renders and caches synthesized sound effects
type AudioLoader struct {
	sfxCache map[sfxKey][]byte // Cache rendered PCM bytes per cue
	context  *audio.Context
	renderer *synth.Renderer
}

// NewAudioLoader creates a new audio loader with the given context
func NewAudioLoader(ctx *audio.Context) *AudioLoader {
	r := synth.NewRenderer()
	r.SampleRate = ctx.SampleRate()
	return &AudioLoader{
		sfxCache: make(map[sfxKey][]byte),
		context:  ctx,
		renderer: r,
	}
}

// PreloadSFX renders a sound effect and caches it without creating a player.
// Call this at startup to avoid synthesis lag on first play.
func (l *AudioLoader) PreloadSFX(id cfg.SoundID) error {
	_, err := l.pcm(id, 0)
	return err
}

// LoadSFX returns a new player for the cue. Intensity only affects impact cues.
func (l *AudioLoader) LoadSFX(id cfg.SoundID, intensity float64) (*audio.Player, error) {
	data, err := l.pcm(id, intensity)
	if err != nil {
		return nil, err
	}
	return l.context.NewPlayerFromBytes(data), nil
}

func (l *AudioLoader) pcm(id cfg.SoundID, intensity float64) ([]byte, error) {
	key := sfxKey{id: id}
	var tones []cfg.Tone
	if id == cfg.SoundImpact {
		key.bucket = int(math.Round(intensity * impactBuckets))
		tones = cfg.ImpactTones(float64(key.bucket) / impactBuckets)
	} else {
		var ok bool
		tones, ok = cfg.Sound.Tones[id]
		if !ok {
			return nil, fmt.Errorf("no tones for sound %d", id)
		}
	}

	if cached, ok := l.sfxCache[key]; ok {
		return cached, nil
	}
	data := l.renderer.Render(tones, 1)
	if len(data) == 0 {
		return nil, fmt.Errorf("sound %d rendered no samples", id)
	}
	l.sfxCache[key] = data
	return data, nil
}
