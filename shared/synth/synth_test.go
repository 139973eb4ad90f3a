package synth

import (
	"bytes"
	"encoding/binary"
	"math"
	"testing"

	cfg "github.com/automoto/slingshot/config"
)

func TestLengthCoversDelayedTones(t *testing.T) {
	r := NewRenderer()
	tones := []cfg.Tone{
		{Wave: cfg.WaveSine, Frequency: 440, Duration: 0.1, Volume: 1},
		{Wave: cfg.WaveSine, Frequency: 440, Duration: 0.2, Volume: 1, DelayMs: 300},
	}
	want := int(math.Ceil(0.5 * float64(r.SampleRate)))
	if got := r.Length(tones); got != want {
		t.Fatalf("Length = %d, want %d", got, want)
	}
	if got := len(r.Render(tones, 1)); got != want*BytesPerFrame {
		t.Fatalf("Render produced %d bytes, want %d", got, want*BytesPerFrame)
	}
}

func TestMixStaysInRange(t *testing.T) {
	r := NewRenderer()
	r.Master = 1
	loud := []cfg.Tone{
		{Wave: cfg.WaveSquare, Frequency: 200, Duration: 0.05, Volume: 1},
		{Wave: cfg.WaveSquare, Frequency: 200, Duration: 0.05, Volume: 1},
		{Wave: cfg.WaveNoise, Duration: 0.05, Volume: 1},
	}
	for i, s := range r.Mix(loud, 3) {
		if s < -1 || s > 1 {
			t.Fatalf("sample %d = %v out of range", i, s)
		}
	}
}

func TestEnvelopeDecays(t *testing.T) {
	r := NewRenderer()
	samples := r.Mix([]cfg.Tone{{Wave: cfg.WaveSquare, Frequency: 100, Duration: 0.2, Volume: 0.8}}, 1)

	head := math.Abs(samples[0])
	tail := math.Abs(samples[len(samples)-1])
	if head <= tail {
		t.Fatalf("envelope should decay: head %v, tail %v", head, tail)
	}
	if tail > r.Floor*r.Master*1.01 {
		t.Fatalf("tone should end near the floor, got %v", tail)
	}
}

func TestSilentTonesAreSkipped(t *testing.T) {
	r := NewRenderer()
	samples := r.Mix([]cfg.Tone{{Wave: cfg.WaveSine, Frequency: 300, Duration: 0.1, Volume: 0}}, 1)
	for _, s := range samples {
		if s != 0 {
			t.Fatalf("zero volume tone produced sound")
		}
	}
}

func TestNoiseIsDeterministic(t *testing.T) {
	tones := []cfg.Tone{{Wave: cfg.WaveNoise, Duration: 0.05, Volume: 0.5}}
	a := NewRenderer().Render(tones, 1)
	b := NewRenderer().Render(tones, 1)
	if !bytes.Equal(a, b) {
		t.Fatalf("fresh renderers should produce identical noise")
	}
}

func TestOscillators(t *testing.T) {
	tests := []struct {
		name   string
		wave   cfg.Waveform
		cycles float64
		want   float64
	}{
		{"sine quarter", cfg.WaveSine, 0.25, 1},
		{"triangle peak", cfg.WaveTriangle, 0.5, 1},
		{"triangle trough", cfg.WaveTriangle, 1, -1},
		{"square high", cfg.WaveSquare, 0.1, 1},
		{"square low", cfg.WaveSquare, 1.6, -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := oscillate(tt.wave, tt.cycles); math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("oscillate = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRenderIsStereoPCM(t *testing.T) {
	r := NewRenderer()
	tones := []cfg.Tone{{Wave: cfg.WaveSine, Frequency: 440, Duration: 0.05, Volume: 1}}

	buf := r.Render(tones, 1)
	if len(buf) != r.Length(tones)*BytesPerFrame {
		t.Fatalf("Render produced %d bytes, want %d frames of %d bytes", len(buf), r.Length(tones), BytesPerFrame)
	}
	nonZero := false
	for i := 0; i < len(buf); i += BytesPerFrame {
		left := binary.LittleEndian.Uint16(buf[i:])
		right := binary.LittleEndian.Uint16(buf[i+2:])
		if left != right {
			t.Fatalf("frame %d: left %d != right %d", i/BytesPerFrame, left, right)
		}
		nonZero = nonZero || left != 0
	}
	if !nonZero {
		t.Fatalf("rendered tone is silent")
	}
}
