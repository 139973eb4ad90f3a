package fx

import (
	"math/rand"

	"github.com/automoto/slingshot/components"
	cfg "github.com/automoto/slingshot/config"
)

// TriggerShake starts a shake. A weaker shake never overrides a stronger
// one that is still running.
func TriggerShake(s *components.ScreenShakeData, intensity, durationMs float64) {
	if intensity <= s.Intensity {
		return
	}
	if intensity > cfg.Damage.ShakeMaxIntensity {
		intensity = cfg.Damage.ShakeMaxIntensity
	}
	s.Intensity = intensity
	s.DurationMs = durationMs
}

// StepShake decays the shake by one frame.
func StepShake(s *components.ScreenShakeData) {
	if s.DurationMs > 0 {
		s.DurationMs -= cfg.ScreenShake.FrameMs
		s.Intensity *= cfg.ScreenShake.Decay
		return
	}
	s.Intensity = 0
}

// ShakeOffset returns a random draw offset, or zero for a faint shake.
func ShakeOffset(s *components.ScreenShakeData, rng *rand.Rand) (float64, float64) {
	if s.Intensity <= cfg.ScreenShake.MinIntensity {
		return 0, 0
	}
	return (rng.Float64() - 0.5) * s.Intensity, (rng.Float64() - 0.5) * s.Intensity
}

// ResetShake stops any running shake.
func ResetShake(s *components.ScreenShakeData) {
	*s = components.ScreenShakeData{}
}
