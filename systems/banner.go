package systems

import (
	"image/color"

	"github.com/automoto/slingshot/components"
	cfg "github.com/automoto/slingshot/config"
	"github.com/automoto/slingshot/fonts"
	"github.com/automoto/slingshot/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi/ecs"
)

const bannerDt = 1.0 / 60.0

// ShowBanner pops a message up over the playfield. The banner scales in
// and stays until hidden.
func ShowBanner(e *ecs.ECS, msg string, c color.RGBA) {
	banner := getOrCreateBanner(e)
	banner.Text = msg
	banner.Color = c
	banner.Visible = true
	banner.Scale = 0
	banner.Tween = gween.New(0, 1, float32(cfg.UI.BannerDurationSec), ease.OutBack)
}

func HideBanner(e *ecs.ECS) {
	banner := getOrCreateBanner(e)
	banner.Visible = false
	banner.Tween = nil
}

// UpdateBanner advances the scale-in animation.
func UpdateBanner(e *ecs.ECS) {
	entry, ok := components.Banner.First(e.World)
	if !ok {
		return
	}
	banner := components.Banner.Get(entry)
	if !banner.Visible || banner.Tween == nil {
		return
	}
	v, done := banner.Tween.Update(bannerDt)
	banner.Scale = float64(v)
	if done {
		banner.Scale = 1
		banner.Tween = nil
	}
}

// DrawBanner renders the banner centred on screen with a dim backdrop.
func DrawBanner(e *ecs.ECS, screen *ebiten.Image) {
	entry, ok := components.Banner.First(e.World)
	if !ok {
		return
	}
	banner := components.Banner.Get(entry)
	if !banner.Visible || banner.Scale <= 0 {
		return
	}

	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())

	boxW, boxH := 360*banner.Scale, 80*banner.Scale
	vector.FillRect(screen,
		float32((width-boxW)/2), float32((height-boxH)/2),
		float32(boxW), float32(boxH),
		cfg.BlackOverlay, false)

	// Text only once the box is big enough to hold it
	if banner.Scale < 0.8 {
		return
	}
	face := fonts.Title.Get()
	y := int(height/2) + face.Metrics().Ascent.Ceil()/2
	drawCentered(screen, banner.Text, face, int(width/2), y, banner.Color)
	drawCentered(screen, "R: Restart   Esc: Levels", fonts.Small.Get(), int(width/2), y+28, cfg.White)
}

func getOrCreateBanner(e *ecs.ECS) *components.BannerData {
	entry, ok := components.Banner.First(e.World)
	if !ok {
		entry = factory.CreateBanner(e.World)
	}
	return components.Banner.Get(entry)
}
