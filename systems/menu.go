package systems

import (
	"fmt"
	"image"
	"image/color"
	"os"

	"github.com/automoto/slingshot/components"
	cfg "github.com/automoto/slingshot/config"
	"github.com/automoto/slingshot/fonts"
	"github.com/automoto/slingshot/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font"
)

// SceneChanger allows systems to trigger scene transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// NewUpdateMenu creates the level select system. createWorldScene builds the
// game scene for the chosen level index.
func NewUpdateMenu(sceneChanger SceneChanger, createWorldScene func(index int) interface{}) ecs.System {
	settled := false
	return func(e *ecs.ECS) {
		menu := GetOrCreateMenu(e)
		input := getOrCreateInput(e)

		// Keys still held from the previous scene read as fresh presses on
		// the first frame
		if !settled {
			settled = true
			return
		}

		// Navigate menu with wrap-around
		numOptions := len(menu.LevelNames)
		if numOptions == 0 {
			return
		}

		if GetAction(input, cfg.ActionMenuLeft).JustPressed {
			menu.SelectedIndex = (menu.SelectedIndex - 1 + numOptions) % numOptions
		}
		if GetAction(input, cfg.ActionMenuRight).JustPressed {
			menu.SelectedIndex = (menu.SelectedIndex + 1) % numOptions
		}
		if GetAction(input, cfg.ActionMute).JustPressed {
			ToggleMute(e)
		}

		// A click on a card selects and starts it
		if p := input.Pointer; p.JustReleased {
			pt := image.Pt(int(p.X), int(p.Y))
			for i := range menu.LevelNames {
				if pt.In(menuCard(i, numOptions, cfg.C.Width)) {
					menu.SelectedIndex = i
					menu.Chosen = true
				}
			}
		}

		if GetAction(input, cfg.ActionMenuSelect).JustPressed {
			menu.Chosen = true
		}

		if menu.Chosen {
			menu.Chosen = false
			sceneChanger.ChangeScene(createWorldScene(menu.SelectedIndex))
			return
		}

		// Allow back/escape to exit
		if GetAction(input, cfg.ActionMenuBack).JustPressed {
			os.Exit(0)
		}
	}
}

// menuCard returns the screen rectangle of the i-th of n level cards.
func menuCard(i, n, width int) image.Rectangle {
	total := float64(n)*cfg.Menu.CardW + float64(n-1)*cfg.Menu.CardGap
	x := (float64(width)-total)/2 + float64(i)*(cfg.Menu.CardW+cfg.Menu.CardGap)
	return image.Rect(int(x), int(cfg.Menu.CardY), int(x+cfg.Menu.CardW), int(cfg.Menu.CardY+cfg.Menu.CardH))
}

// DrawMenu renders the level select screen
func DrawMenu(e *ecs.ECS, screen *ebiten.Image) {
	menu := GetOrCreateMenu(e)

	width := screen.Bounds().Dx()
	height := screen.Bounds().Dy()

	// Draw background
	vector.FillRect(screen, 0, 0, float32(width), float32(height), cfg.Menu.BackgroundColor, false)

	// Draw title
	drawCentered(screen, "SLINGSHOT", fonts.Title.Get(), width/2, int(cfg.Menu.TitleY), cfg.Menu.TitleColor)

	bold := fonts.Bold.Get()
	small := fonts.Small.Get()
	for i, name := range menu.LevelNames {
		r := menuCard(i, len(menu.LevelNames), width)

		c := cfg.Menu.TextColorNormal
		if i == menu.SelectedIndex {
			c = cfg.Menu.TextColorSelected
		}
		vector.StrokeRect(screen, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), 3, c, false)

		cx := r.Min.X + r.Dx()/2
		drawCentered(screen, fmt.Sprintf("%d", i+1), bold, cx, r.Min.Y+r.Dy()/2, c)
		drawCentered(screen, name, small, cx, r.Max.Y-12, c)
		if i < len(menu.Cleared) && menu.Cleared[i] {
			drawCentered(screen, "cleared", small, cx, r.Max.Y+18, cfg.Menu.ClearedColor)
		}
	}

	hint := "Arrows/Click: Choose   Enter: Play   M: Mute   Esc: Quit"
	drawCentered(screen, hint, small, width/2, height-12, cfg.Menu.TextColorNormal)
}

func drawCentered(screen *ebiten.Image, s string, face font.Face, cx, y int, c color.Color) {
	w := font.MeasureString(face, s).Ceil()
	text.Draw(screen, s, face, cx-w/2, y, c)
}

// GetOrCreateMenu returns the singleton Menu component, creating it if needed
func GetOrCreateMenu(e *ecs.ECS) *components.MenuData {
	entry, ok := components.Menu.First(e.World)
	if !ok {
		entry = factory.CreateMenu(e.World, nil)
	}
	return components.Menu.Get(entry)
}
