package components

import (
	"image/color"

	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// BannerData is the win/lose message shown over the playfield
type BannerData struct {
	Text    string
	Color   color.RGBA
	Visible bool
	Scale   float64
	Tween   *gween.Tween
}

var Banner = donburi.NewComponentType[BannerData]()
