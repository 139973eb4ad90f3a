// Package fx holds the cosmetic simulations (particles, screen shake) that
// run inside the game tick. It does not draw; see the systems package.
package fx

import (
	"math"
	"math/rand"

	"github.com/automoto/slingshot/components"
	cfg "github.com/automoto/slingshot/config"
)

// EmitOptions shapes a particle burst. Particles leave at Angle ± Spread/2.
type EmitOptions struct {
	Speed  float64 // velocity scale
	Spread float64
	Angle  float64
}

// Burst is a plain burst in every direction.
func Burst() EmitOptions {
	return EmitOptions{Speed: 1, Spread: math.Pi * 2, Angle: cfg.Particles.DefaultAngle}
}

func Explosion() EmitOptions {
	return EmitOptions{
		Speed:  cfg.Particles.ExplosionSpeed,
		Spread: cfg.Particles.ExplosionSpread,
		Angle:  cfg.Particles.DefaultAngle,
	}
}

// Impact sprays upwards over a half circle.
func Impact() EmitOptions {
	return EmitOptions{
		Speed:  cfg.Particles.ImpactSpeed,
		Spread: cfg.Particles.ImpactSpread,
		Angle:  cfg.Particles.DefaultAngle,
	}
}

// Emitter spawns particles into a ParticlesData.
type Emitter struct {
	rng *rand.Rand
}

func NewEmitter(seed int64) *Emitter {
	return &Emitter{rng: rand.New(rand.NewSource(seed))}
}

// Emit adds up to count particles of the given kind at (x, y). Particles past
// the live cap are dropped.
func (em *Emitter) Emit(p *components.ParticlesData, kind cfg.ParticleKind, x, y float64, count int, opts EmitOptions) {
	style, ok := cfg.Particles.Styles[kind]
	if !ok {
		style = cfg.Particles.Styles[cfg.ParticleIce]
	}

	for i := 0; i < count && len(p.Particles) < cfg.Particles.MaxParticles; i++ {
		angle := opts.Angle + (em.rng.Float64()-0.5)*opts.Spread
		speed := (cfg.Particles.BaseSpeed + em.rng.Float64()*cfg.Particles.RandomSpeed) * opts.Speed
		size := style.MinSize + em.rng.Float64()*(style.MaxSize-style.MinSize)
		life := style.MinLife + em.rng.Float64()*(style.MaxLife-style.MinLife)

		p.Particles = append(p.Particles, components.Particle{
			Kind:     kind,
			X:        x,
			Y:        y,
			VX:       math.Cos(angle) * speed,
			VY:       math.Sin(angle) * speed,
			Size:     size,
			InitSize: size,
			Life:     life,
			MaxLife:  life,
			Color:    style.Colors[em.rng.Intn(len(style.Colors))],
		})
	}
}

// Step advances every particle by one update and drops the dead ones.
func Step(p *components.ParticlesData) {
	dt := cfg.Particles.TimeStep
	live := p.Particles[:0]
	for _, pt := range p.Particles {
		pt.X += pt.VX
		pt.Y += pt.VY
		pt.VY += cfg.Particles.Gravity * dt
		pt.VX *= cfg.Particles.Drag

		pt.Life -= dt
		pt.Size = pt.InitSize * (pt.Life / pt.MaxLife)
		if pt.Life <= 0 || pt.Size < cfg.Particles.MinSize {
			continue
		}
		live = append(live, pt)
	}
	p.Particles = live
}

// Clear drops every particle.
func Clear(p *components.ParticlesData) {
	p.Particles = p.Particles[:0]
}

// Alpha fades a particle out over the last 30% of its life.
func Alpha(pt components.Particle) float64 {
	return math.Min(1, pt.Life/(pt.MaxLife*0.3))
}
