package systems

import (
	"image/color"
	"math"
	"time"

	"github.com/automoto/slingshot/components"
	cfg "github.com/automoto/slingshot/config"
	"github.com/automoto/slingshot/systems/fx"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

var emitter = fx.NewEmitter(time.Now().UnixNano())

// particleUpdater advances particles from inside the game tick.
type particleUpdater struct {
	ecs *ecs.ECS
}

// NewParticleUpdater returns the particle step as a tick collaborator.
func NewParticleUpdater(e *ecs.ECS) *particleUpdater {
	return &particleUpdater{ecs: e}
}

func (u *particleUpdater) Update() {
	if p := getParticles(u.ecs); p != nil {
		fx.Step(p)
	}
}

// EmitParticles spawns a burst of particles of the given kind.
func EmitParticles(e *ecs.ECS, kind cfg.ParticleKind, x, y float64, count int, opts fx.EmitOptions) {
	if p := getParticles(e); p != nil {
		emitter.Emit(p, kind, x, y, count, opts)
	}
}

func ClearParticles(e *ecs.ECS) {
	if p := getParticles(e); p != nil {
		fx.Clear(p)
	}
}

func getParticles(e *ecs.ECS) *components.ParticlesData {
	entry, ok := components.Particles.First(e.World)
	if !ok {
		return nil
	}
	return components.Particles.Get(entry)
}

// DrawParticles renders particles as fading shards; stars get a star shape.
func DrawParticles(e *ecs.ECS, screen *ebiten.Image) {
	p := getParticles(e)
	if p == nil {
		return
	}
	ox, oy := viewOffset(e)

	for _, pt := range p.Particles {
		c := fade(pt.Color, fx.Alpha(pt))
		x, y := float32(pt.X+ox), float32(pt.Y+oy)
		size := float32(pt.Size)

		if pt.Kind == cfg.ParticleStar {
			drawStar(screen, x, y, size, c)
			continue
		}
		vector.FillRect(screen, x-size/2, y-size/2, size, size*0.6, c, false)
	}
}

func drawStar(screen *ebiten.Image, x, y, size float32, c color.RGBA) {
	const points = 5
	var path vector.Path
	for i := 0; i < points*2; i++ {
		r := size
		if i%2 == 1 {
			r = size / 2
		}
		angle := float64(i)*math.Pi/points - math.Pi/2
		px := x + r*float32(math.Cos(angle))
		py := y + r*float32(math.Sin(angle))
		if i == 0 {
			path.MoveTo(px, py)
		} else {
			path.LineTo(px, py)
		}
	}
	path.Close()
	fillPath(screen, &path, c)
}

// fade scales a colour's alpha, keeping it premultiplied.
func fade(c color.RGBA, alpha float64) color.RGBA {
	a := math.Max(0, math.Min(1, alpha))
	return color.RGBA{
		R: uint8(float64(c.R) * a),
		G: uint8(float64(c.G) * a),
		B: uint8(float64(c.B) * a),
		A: uint8(float64(c.A) * a),
	}
}
