package fx

import (
	"math"
	"math/rand"
	"testing"

	"github.com/automoto/slingshot/components"
	cfg "github.com/automoto/slingshot/config"
)

func TestEmitRespectsCap(t *testing.T) {
	p := &components.ParticlesData{}
	em := NewEmitter(1)

	em.Emit(p, cfg.ParticleIce, 100, 100, 150, Explosion())
	em.Emit(p, cfg.ParticleStar, 100, 100, 150, Explosion())

	if len(p.Particles) != cfg.Particles.MaxParticles {
		t.Fatalf("live particles = %d, want cap %d", len(p.Particles), cfg.Particles.MaxParticles)
	}
}

func TestEmitUsesStyle(t *testing.T) {
	p := &components.ParticlesData{}
	NewEmitter(2).Emit(p, cfg.ParticleDust, 10, 20, 30, Burst())

	style := cfg.Particles.Styles[cfg.ParticleDust]
	for _, pt := range p.Particles {
		if pt.Kind != cfg.ParticleDust || pt.X != 10 || pt.Y != 20 {
			t.Fatalf("unexpected particle %+v", pt)
		}
		if pt.Size < style.MinSize || pt.Size > style.MaxSize {
			t.Fatalf("size %v outside the dust range", pt.Size)
		}
		if pt.Life < style.MinLife || pt.Life > style.MaxLife {
			t.Fatalf("life %v outside the dust range", pt.Life)
		}
	}
}

func TestImpactSpraysUpwards(t *testing.T) {
	p := &components.ParticlesData{}
	NewEmitter(3).Emit(p, cfg.ParticleSnow, 0, 0, 50, Impact())

	for _, pt := range p.Particles {
		if pt.VY > 1e-9 {
			t.Fatalf("impact particle moving down: %+v", pt)
		}
	}
}

func TestStepExpiresParticles(t *testing.T) {
	p := &components.ParticlesData{}
	NewEmitter(4).Emit(p, cfg.ParticleStar, 0, 0, 20, Explosion())

	// star lifetime is at most one second
	for i := 0; i < 100; i++ {
		Step(p)
	}
	if len(p.Particles) != 0 {
		t.Fatalf("%d particles outlived their lifetime", len(p.Particles))
	}
}

func TestStepAppliesGravityAndShrinks(t *testing.T) {
	p := &components.ParticlesData{Particles: []components.Particle{{
		Size: 4, InitSize: 4, Life: 1, MaxLife: 1, VX: 2,
	}}}
	Step(p)

	pt := p.Particles[0]
	if pt.X != 2 || pt.Y != 0 {
		t.Fatalf("particle moved to (%v, %v), want (2, 0)", pt.X, pt.Y)
	}
	if math.Abs(pt.VY-cfg.Particles.Gravity*cfg.Particles.TimeStep) > 1e-9 {
		t.Fatalf("gravity not applied: vy=%v", pt.VY)
	}
	if pt.Size >= 4 || math.Abs(pt.VX-2*cfg.Particles.Drag) > 1e-9 {
		t.Fatalf("particle should shrink and slow: %+v", pt)
	}
}

func TestClear(t *testing.T) {
	p := &components.ParticlesData{}
	NewEmitter(5).Emit(p, cfg.ParticleIce, 0, 0, 10, Burst())
	Clear(p)
	if len(p.Particles) != 0 {
		t.Fatalf("Clear left %d particles", len(p.Particles))
	}
}

func TestShakeOnlyStrongerOverrides(t *testing.T) {
	s := &components.ScreenShakeData{}

	TriggerShake(s, 5, 100)
	TriggerShake(s, 3, 500)
	if s.Intensity != 5 || s.DurationMs != 100 {
		t.Fatalf("weaker shake overrode: %+v", s)
	}

	TriggerShake(s, 40, 150)
	if s.Intensity != 15 || s.DurationMs != 150 {
		t.Fatalf("stronger shake should override and cap: %+v", s)
	}
}

func TestShakeDecays(t *testing.T) {
	s := &components.ScreenShakeData{}
	TriggerShake(s, 10, 32)

	StepShake(s)
	if math.Abs(s.Intensity-9) > 1e-9 || s.DurationMs != 16 {
		t.Fatalf("after one frame: %+v", s)
	}
	StepShake(s)
	StepShake(s)
	if s.Intensity != 0 {
		t.Fatalf("expired shake should stop, intensity %v", s.Intensity)
	}
}

func TestShakeOffset(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	faint := &components.ScreenShakeData{Intensity: 0.5, DurationMs: 10}
	if dx, dy := ShakeOffset(faint, rng); dx != 0 || dy != 0 {
		t.Fatalf("faint shake should not move the view")
	}

	strong := &components.ScreenShakeData{Intensity: 10, DurationMs: 10}
	for i := 0; i < 50; i++ {
		dx, dy := ShakeOffset(strong, rng)
		if math.Abs(dx) > 5 || math.Abs(dy) > 5 {
			t.Fatalf("offset (%v, %v) larger than half the intensity", dx, dy)
		}
	}

	ResetShake(strong)
	if strong.Intensity != 0 || strong.DurationMs != 0 {
		t.Fatalf("reset should stop the shake")
	}
}
