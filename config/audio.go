package config

// SoundID represents a logical sound effect
type SoundID int

const (
	SoundNone SoundID = iota
	SoundLaunch
	SoundImpact
	SoundTargetDestroyed
	SoundBlockDestroyed
	SoundWin
	SoundLose
)

// Waveform selects the oscillator of a synthesized tone
type Waveform int

const (
	WaveSine Waveform = iota
	WaveTriangle
	WaveSquare
	WaveNoise
)

// Tone is one synthesized note of a sound cue
type Tone struct {
	Wave      Waveform
	Frequency float64 // Hz, ignored for noise
	Duration  float64 // seconds
	Volume    float64
	DelayMs   float64 // offset from the start of the cue
}

// AudioConfig contains audio-related configuration values
type AudioConfig struct {
	SampleRate    int
	MasterVolume  float64
	DefaultSFXVol float64

	// Envelope floor reached at the end of every tone
	DecayFloor float64

	// Noise is low-passed at this cutoff and attenuated
	NoiseCutoff float64
	NoiseGain   float64

	// Impact cue scaling with intensity
	ImpactBaseFreq   float64
	ImpactFreqScale  float64
	ImpactDuration   float64
	ImpactVolScale   float64
	ImpactNoiseLen   float64
	ImpactNoiseScale float64
}

// SoundConfig maps sound IDs to their tone sequences
type SoundConfig struct {
	Tones             map[SoundID][]Tone
	VolumeMultipliers map[SoundID]float64
}

var Audio AudioConfig
var Sound SoundConfig

func init() {
	Audio = AudioConfig{
		SampleRate:    44100,
		MasterVolume:  0.3,
		DefaultSFXVol: 1.0,

		DecayFloor: 0.01,

		NoiseCutoff: 1000,
		NoiseGain:   0.5,

		ImpactBaseFreq:   80,
		ImpactFreqScale:  40,
		ImpactDuration:   0.15,
		ImpactVolScale:   0.5,
		ImpactNoiseLen:   0.1,
		ImpactNoiseScale: 0.3,
	}

	Sound = SoundConfig{
		Tones: map[SoundID][]Tone{
			SoundLaunch: {
				{Wave: WaveSine, Frequency: 150, Duration: 0.15, Volume: 0.8},
				{Wave: WaveSine, Frequency: 200, Duration: 0.1, Volume: 0.6, DelayMs: 50},
				{Wave: WaveSine, Frequency: 280, Duration: 0.1, Volume: 0.4, DelayMs: 100},
			},
			SoundBlockDestroyed: {
				{Wave: WaveSquare, Frequency: 800, Duration: 0.05, Volume: 0.3},
				{Wave: WaveSquare, Frequency: 600, Duration: 0.08, Volume: 0.2},
				{Wave: WaveNoise, Duration: 0.15, Volume: 0.4},
			},
			SoundTargetDestroyed: {
				{Wave: WaveSine, Frequency: 400, Duration: 0.1, Volume: 0.5},
				{Wave: WaveSine, Frequency: 300, Duration: 0.15, Volume: 0.4, DelayMs: 80},
				{Wave: WaveSine, Frequency: 200, Duration: 0.2, Volume: 0.3, DelayMs: 180},
			},
			SoundWin: {
				{Wave: WaveSine, Frequency: 523, Duration: 0.15, Volume: 0.6},
				{Wave: WaveSine, Frequency: 659, Duration: 0.15, Volume: 0.6, DelayMs: 150},
				{Wave: WaveSine, Frequency: 784, Duration: 0.3, Volume: 0.7, DelayMs: 300},
			},
			SoundLose: {
				{Wave: WaveSine, Frequency: 400, Duration: 0.2, Volume: 0.5},
				{Wave: WaveSine, Frequency: 350, Duration: 0.2, Volume: 0.4, DelayMs: 200},
				{Wave: WaveSine, Frequency: 300, Duration: 0.4, Volume: 0.3, DelayMs: 400},
			},
		},
		VolumeMultipliers: map[SoundID]float64{},
	}
}

// ImpactTones builds the tone sequence of an impact cue of the given intensity.
func ImpactTones(intensity float64) []Tone {
	vol := intensity * Audio.ImpactVolScale
	if vol > 1 {
		vol = 1
	}
	return []Tone{
		{
			Wave:      WaveTriangle,
			Frequency: Audio.ImpactBaseFreq + intensity*Audio.ImpactFreqScale,
			Duration:  Audio.ImpactDuration,
			Volume:    vol,
		},
		{
			Wave:     WaveNoise,
			Duration: Audio.ImpactNoiseLen,
			Volume:   intensity * Audio.ImpactNoiseScale,
		},
	}
}
