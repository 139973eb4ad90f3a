// Package synth renders tone sequences into PCM sample buffers. It has no
// audio device dependencies so cues can be rendered and tested headless.
//
// Output is the 16-bit little-endian stereo format read by ebiten's audio
// context. That context is the only mixer in the game: every cue becomes its
// own player, and overlapping cues are summed there. Mix only combines the
// tones of a single cue.
package synth

import (
	"encoding/binary"
	"math"
	"math/rand"

	cfg "github.com/automoto/slingshot/config"
)

// BytesPerFrame is one 16-bit little-endian stereo frame.
const BytesPerFrame = 4

// Renderer mixes tones at a fixed sample rate.
type Renderer struct {
	SampleRate int
	Master     float64
	Floor      float64 // envelope level reached at the end of a tone
	Cutoff     float64 // noise low-pass cutoff in Hz
	NoiseGain  float64
	rng        *rand.Rand
}

// NewRenderer returns a renderer configured from the audio config. Noise is
// seeded so the same cue always renders the same bytes.
func NewRenderer() *Renderer {
	return &Renderer{
		SampleRate: cfg.Audio.SampleRate,
		Master:     cfg.Audio.MasterVolume,
		Floor:      cfg.Audio.DecayFloor,
		Cutoff:     cfg.Audio.NoiseCutoff,
		NoiseGain:  cfg.Audio.NoiseGain,
		rng:        rand.New(rand.NewSource(1)),
	}
}

// Length returns the number of frames needed to play every tone to its end.
func (r *Renderer) Length(tones []cfg.Tone) int {
	end := 0.0
	for _, t := range tones {
		end = math.Max(end, t.DelayMs/1000+t.Duration)
	}
	return int(math.Ceil(end * float64(r.SampleRate)))
}

// Mix renders the tones into mono float samples in [-1, 1], scaled by the
// master volume and the given gain.
func (r *Renderer) Mix(tones []cfg.Tone, gain float64) []float64 {
	out := make([]float64, r.Length(tones))
	for _, t := range tones {
		r.addTone(out, t)
	}
	for i, s := range out {
		out[i] = clamp(s * r.Master * gain)
	}
	return out
}

// Render returns the tones as 16-bit little-endian stereo PCM.
func (r *Renderer) Render(tones []cfg.Tone, gain float64) []byte {
	samples := r.Mix(tones, gain)
	buf := make([]byte, len(samples)*BytesPerFrame)
	for i, s := range samples {
		v := uint16(int16(s * math.MaxInt16))
		binary.LittleEndian.PutUint16(buf[i*BytesPerFrame:], v)
		binary.LittleEndian.PutUint16(buf[i*BytesPerFrame+2:], v)
	}
	return buf
}

func (r *Renderer) addTone(out []float64, t cfg.Tone) {
	if t.Volume <= 0 || t.Duration <= 0 {
		return
	}
	rate := float64(r.SampleRate)
	start := int(t.DelayMs / 1000 * rate)
	n := int(t.Duration * rate)

	// one-pole low-pass for noise
	dt := 1 / rate
	rc := 1 / (2 * math.Pi * r.Cutoff)
	alpha := dt / (rc + dt)
	prev := 0.0

	floor := math.Min(r.Floor, t.Volume)
	for i := 0; i < n && start+i < len(out); i++ {
		at := float64(i) / rate
		// exponential ramp from Volume down to the floor
		env := t.Volume * math.Pow(floor/t.Volume, at/t.Duration)

		var s float64
		if t.Wave == cfg.WaveNoise {
			prev += alpha * (r.rng.Float64()*2 - 1 - prev)
			s = prev * r.NoiseGain
		} else {
			s = oscillate(t.Wave, t.Frequency*at)
		}
		out[start+i] += s * env
	}
}

// oscillate samples a periodic waveform at the given phase in cycles.
func oscillate(w cfg.Waveform, cycles float64) float64 {
	_, frac := math.Modf(cycles)
	switch w {
	case cfg.WaveTriangle:
		return 1 - 4*math.Abs(frac-0.5)
	case cfg.WaveSquare:
		if frac < 0.5 {
			return 1
		}
		return -1
	}
	return math.Sin(2 * math.Pi * frac)
}

func clamp(s float64) float64 {
	return math.Max(-1, math.Min(1, s))
}
