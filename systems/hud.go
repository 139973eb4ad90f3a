package systems

import (
	"fmt"

	cfg "github.com/automoto/slingshot/config"
	"github.com/automoto/slingshot/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

const (
	hudIconRadius = 7
	hudIconGap    = 5
)

// DrawHUD renders the level name and one icon per projectile left in the
// top-left corner.
func DrawHUD(e *ecs.ECS, screen *ebiten.Image) {
	s, ok := GetSession(e)
	if !ok {
		return
	}
	margin := float32(cfg.UI.HUDMargin)

	face := fonts.Regular.Get()
	label := fmt.Sprintf("Level %d: %s", s.LevelIndex+1, s.Game.Level().Name)
	text.Draw(screen, label, face, int(margin), int(margin)+face.Metrics().Ascent.Ceil(), cfg.White)

	iconY := margin + float32(face.Metrics().Height.Ceil()) + hudIconGap + hudIconRadius
	for i := 0; i < s.Game.Store().Remaining(); i++ {
		x := margin + hudIconRadius + float32(i)*(2*hudIconRadius+hudIconGap)
		vector.DrawFilledCircle(screen, x, iconY, hudIconRadius, cfg.UI.Projectile, true)
		vector.StrokeCircle(screen, x, iconY, hudIconRadius, 1, cfg.UI.Outline, true)
	}
}
