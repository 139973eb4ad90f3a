package systems

import (
	"image"
	"image/color"

	"github.com/automoto/slingshot/components"
	cfg "github.com/automoto/slingshot/config"
	"github.com/automoto/slingshot/core"
	"github.com/automoto/slingshot/physics"
	"github.com/automoto/slingshot/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	skyImage *ebiten.Image

	// whitePixel is the source image for DrawTriangles fills.
	whiteImage = ebiten.NewImage(3, 3)
	whitePixel = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)

	fillVs []ebiten.Vertex
	fillIs []uint16
)

func init() {
	whiteImage.Fill(color.White)
}

// DrawWorld renders the sky, every live body except walls, the slingshot and
// the projectile mounted on it. Particles are drawn between bodies and the
// slingshot.
func DrawWorld(e *ecs.ECS, screen *ebiten.Image) {
	drawSky(screen)

	s, ok := GetSession(e)
	if !ok {
		return
	}
	ox, oy := viewOffset(e)

	for _, body := range s.Game.Space().Bodies() {
		entry, _ := body.Data.(*donburi.Entry)
		if tags.KindOf(entry) == cfg.KindWall {
			continue
		}
		drawBody(screen, body, entry, ox, oy)
	}

	DrawParticles(e, screen)

	view := s.Game.SlingshotView()
	drawSlingshot(screen, view, ox, oy)

	// The mounted projectile sits in front of the bands
	if view.Loaded && s.Game.State() == cfg.GameReady {
		if body := projectileBody(s.Game); body != nil {
			drawBody(screen, body, s.Game.Projectile(), ox, oy)
		}
	}
}

func drawSky(screen *ebiten.Image) {
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	if skyImage == nil || skyImage.Bounds().Dx() != w || skyImage.Bounds().Dy() != h {
		skyImage = ebiten.NewImage(w, h)
		top, bottom := cfg.UI.SkyTop, cfg.UI.SkyBottom
		for y := 0; y < h; y++ {
			t := float64(y) / float64(h-1)
			c := color.RGBA{
				R: lerp8(top.R, bottom.R, t),
				G: lerp8(top.G, bottom.G, t),
				B: lerp8(top.B, bottom.B, t),
				A: 255,
			}
			vector.FillRect(skyImage, 0, float32(y), float32(w), 1, c, false)
		}
	}
	screen.DrawImage(skyImage, nil)
}

func lerp8(a, b uint8, t float64) uint8 {
	return uint8(float64(a) + (float64(b)-float64(a))*t)
}

// bodyColor picks the fill colour of a body from its kind, material and health.
func bodyColor(entry *donburi.Entry) color.RGBA {
	switch tags.KindOf(entry) {
	case cfg.KindProjectile:
		return cfg.UI.Projectile
	case cfg.KindTarget:
		if components.Health.Get(entry).Damaged() {
			return cfg.UI.TargetDamaged
		}
		return cfg.UI.Target
	case cfg.KindBlock:
		return cfg.MaterialFor(components.Block.Get(entry).Material).Color
	case cfg.KindGround:
		return cfg.UI.Ground
	}
	return cfg.UI.Unknown
}

func drawBody(screen *ebiten.Image, body *physics.Body, entry *donburi.Entry, ox, oy float64) {
	c := bodyColor(entry)
	x, y := float32(body.X+ox), float32(body.Y+oy)

	if body.Shape == physics.ShapeCircle {
		r := float32(body.Radius)
		vector.DrawFilledCircle(screen, x, y, r, c, true)
		vector.StrokeCircle(screen, x, y, r, cfg.UI.OutlineWidth, cfg.UI.Outline, true)
		return
	}

	w, h := float32(body.W), float32(body.H)
	vector.FillRect(screen, x-w/2, y-h/2, w, h, c, false)
	vector.StrokeRect(screen, x-w/2, y-h/2, w, h, cfg.UI.OutlineWidth, cfg.UI.Outline, false)
}

func drawSlingshot(screen *ebiten.Image, view core.SlingshotView, ox, oy float64) {
	ax, ay := float32(view.Anchor.X+ox), float32(view.Anchor.Y+oy)
	wood := cfg.UI.Slingshot

	// forks and base
	vector.FillRect(screen, ax-25, ay-60, 8, 70, wood, false)
	vector.FillRect(screen, ax+17, ay-60, 8, 70, wood, false)
	vector.FillRect(screen, ax-15, ay+10, 30, 40, wood, false)

	if !view.Loaded {
		return
	}

	endX, endY := float32(view.BandEnd.X+ox), float32(view.BandEnd.Y+oy)
	for _, band := range []core.Point{view.BandLeft, view.BandRight} {
		vector.StrokeLine(screen, float32(band.X+ox), float32(band.Y+oy), endX, endY,
			cfg.UI.ElasticWidth, cfg.UI.Elastic, true)
	}

	for _, p := range view.Trajectory {
		vector.DrawFilledCircle(screen, float32(p.X+ox), float32(p.Y+oy), float32(p.Radius), cfg.UI.Trajectory, true)
	}
}

func projectileBody(g *core.Game) *physics.Body {
	e := g.Projectile()
	if e == nil || !e.Valid() {
		return nil
	}
	return components.Body.Get(e).Body
}

// fillPath fills a closed path with a solid premultiplied colour.
func fillPath(screen *ebiten.Image, path *vector.Path, c color.RGBA) {
	fillVs, fillIs = path.AppendVerticesAndIndicesForFilling(fillVs[:0], fillIs[:0])
	for i := range fillVs {
		fillVs[i].SrcX, fillVs[i].SrcY = 1, 1
		fillVs[i].ColorR = float32(c.R) / 255
		fillVs[i].ColorG = float32(c.G) / 255
		fillVs[i].ColorB = float32(c.B) / 255
		fillVs[i].ColorA = float32(c.A) / 255
	}
	screen.DrawTriangles(fillVs, fillIs, whitePixel, &ebiten.DrawTrianglesOptions{
		AntiAlias:      true,
		ColorScaleMode: ebiten.ColorScaleModePremultipliedAlpha,
	})
}
