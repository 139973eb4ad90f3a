package components

import (
	"image/color"

	"github.com/automoto/slingshot/config"
	"github.com/yohamta/donburi"
)

// ScreenShakeData tracks active screen shake effect on the camera
type ScreenShakeData struct {
	Intensity  float64 // max offset in pixels
	DurationMs float64 // time remaining
}

var ScreenShake = donburi.NewComponentType[ScreenShakeData]()

// Particle is a single cosmetic particle.
type Particle struct {
	Kind     config.ParticleKind
	X, Y     float64
	VX, VY   float64
	Size     float64
	InitSize float64
	Life     float64 // seconds remaining
	MaxLife  float64
	Color    color.RGBA
}

// ParticlesData holds every live particle (singleton component)
type ParticlesData struct {
	Particles []Particle
}

var Particles = donburi.NewComponentType[ParticlesData]()
