package config

import (
	"image/color"
	"math"
)

// ParticleKind identifies a particle palette
type ParticleKind int

const (
	ParticleIce ParticleKind = iota
	ParticleSnow
	ParticleStar
	ParticleDust
)

func (k ParticleKind) String() string {
	switch k {
	case ParticleSnow:
		return "snow"
	case ParticleStar:
		return "star"
	case ParticleDust:
		return "dust"
	}
	return "ice"
}

// ParticleStyle contains the look of one particle kind
type ParticleStyle struct {
	Colors           []color.RGBA
	MinSize, MaxSize float64
	MinLife, MaxLife float64 // seconds
}

// ParticlesConfig contains particle emitter configuration
type ParticlesConfig struct {
	MaxParticles int
	Gravity      float64 // px/s²
	Drag         float64 // horizontal speed multiplier per update
	TimeStep     float64 // seconds per update

	BaseSpeed   float64
	RandomSpeed float64
	MinSize     float64 // particles below this size are removed

	ExplosionSpeed  float64
	ExplosionSpread float64
	ImpactSpeed     float64
	ImpactSpread    float64
	DefaultAngle    float64

	Styles map[ParticleKind]ParticleStyle
}

var Particles ParticlesConfig

func init() {
	Particles = ParticlesConfig{
		MaxParticles: 200,
		Gravity:      200,
		Drag:         0.99,
		TimeStep:     0.016,

		BaseSpeed:   2,
		RandomSpeed: 4,
		MinSize:     0.5,

		ExplosionSpeed:  1.5,
		ExplosionSpread: math.Pi * 2,
		ImpactSpeed:     0.8,
		ImpactSpread:    math.Pi,
		DefaultAngle:    -math.Pi / 2,

		Styles: map[ParticleKind]ParticleStyle{
			ParticleIce: {
				Colors: []color.RGBA{
					{R: 0xa8, G: 0xd8, B: 0xff, A: 255},
					{R: 0xc8, G: 0xe8, B: 0xff, A: 255},
					{R: 0xff, G: 0xff, B: 0xff, A: 255},
					{R: 0x88, G: 0xc8, B: 0xf8, A: 255},
				},
				MinSize: 3, MaxSize: 8,
				MinLife: 0.5, MaxLife: 1,
			},
			ParticleSnow: {
				Colors: []color.RGBA{
					{R: 0xff, G: 0xff, B: 0xff, A: 255},
					{R: 0xf0, G: 0xf8, B: 0xff, A: 255},
					{R: 0xe8, G: 0xf4, B: 0xff, A: 255},
				},
				MinSize: 2, MaxSize: 5,
				MinLife: 0.8, MaxLife: 1.5,
			},
			ParticleStar: {
				Colors: []color.RGBA{
					{R: 0xff, G: 0xff, B: 0x00, A: 255},
					{R: 0xff, G: 0xcc, B: 0x00, A: 255},
					{R: 0xff, G: 0xff, B: 0xff, A: 255},
				},
				MinSize: 3, MaxSize: 6,
				MinLife: 0.5, MaxLife: 1,
			},
			ParticleDust: {
				Colors: []color.RGBA{
					{R: 0xd4, G: 0xc4, B: 0xa8, A: 255},
					{R: 0xc8, G: 0xb8, B: 0x98, A: 255},
					{R: 0xb8, G: 0xa8, B: 0x88, A: 255},
				},
				MinSize: 2, MaxSize: 4,
				MinLife: 0.3, MaxLife: 0.6,
			},
		},
	}
}
