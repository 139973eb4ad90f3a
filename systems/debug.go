package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/slingshot/components"
	cfg "github.com/automoto/slingshot/config"
	"github.com/automoto/slingshot/systems/factory"
	"github.com/automoto/slingshot/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// ToggleDebug shows or hides the collision overlay.
func ToggleDebug(e *ecs.ECS) {
	debug := GetOrCreateDebug(e)
	debug.Enabled = !debug.Enabled
}

func GetOrCreateDebug(e *ecs.ECS) *components.DebugData {
	entry, ok := components.Debug.First(e.World)
	if !ok {
		entry = factory.CreateDebug(e.World, cfg.Debug.Overlay)
	}
	return components.Debug.Get(entry)
}

// DrawDebug outlines every body's collision box and prints the session state.
func DrawDebug(e *ecs.ECS, screen *ebiten.Image) {
	if !GetOrCreateDebug(e).Enabled {
		return
	}
	s, ok := GetSession(e)
	if !ok {
		return
	}
	ox, oy := viewOffset(e)

	for _, body := range s.Game.Space().Bodies() {
		entry, _ := body.Data.(*donburi.Entry)

		// Determine color based on tags
		c := color.RGBA{0, 255, 255, 255} // Cyan default
		switch tags.KindOf(entry) {
		case cfg.KindGround, cfg.KindWall:
			c = color.RGBA{100, 100, 100, 255} // Grey
		case cfg.KindProjectile:
			c = color.RGBA{0, 0, 255, 255} // Blue
		case cfg.KindTarget:
			c = color.RGBA{0, 255, 0, 255} // Green
		case cfg.KindBlock:
			c = color.RGBA{255, 0, 0, 255} // Red
		}

		minX, minY, maxX, maxY := body.Bounds()
		vector.StrokeRect(screen,
			float32(minX+ox), float32(minY+oy),
			float32(maxX-minX), float32(maxY-minY),
			1, c, false)
	}

	g := s.Game
	ebitenutil.DebugPrint(screen, fmt.Sprintf(
		"FPS: %0.1f TPS: %0.1f\nlevel: %s state: %s frame: %d\nbodies: %d targets: %d blocks: %d left: %d\nsettle: %.0fms drag: %v",
		ebiten.ActualFPS(), ebiten.ActualTPS(),
		g.Level().Name, g.State(), g.Frame(),
		g.Space().Len(), g.Store().TargetCount(), g.Store().BlockCount(), g.Store().Remaining(),
		g.SettleElapsedMs(), g.Slingshot().Dragging(),
	))
}
