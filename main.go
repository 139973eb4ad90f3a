package main

import (
	"flag"
	"image"
	"log"

	"github.com/automoto/slingshot/assets"
	"github.com/automoto/slingshot/config"
	"github.com/automoto/slingshot/fonts"
	"github.com/automoto/slingshot/scenes"
	"github.com/automoto/slingshot/shared/leveldata"
	"github.com/automoto/slingshot/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

func NewGame(levels []leveldata.Level, levelIndex int) *Game {
	if err := fonts.LoadDefaults(); err != nil {
		log.Fatalf("Failed to load fonts: %v", err)
	}

	g := &Game{
		bounds: image.Rectangle{},
	}

	if config.Debug.SkipMenu {
		g.scene = scenes.NewWorldScene(g, levels, levelIndex)
	} else {
		g.scene = scenes.NewMenuScene(g, levels, levelIndex)
	}

	return g
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	levelName := flag.String("level", "", "level to start on (name from the levels folder)")
	flag.BoolVar(&config.Debug.SkipMenu, "skip-menu", false, "skip the level select and start playing")
	flag.BoolVar(&config.Debug.Overlay, "debug", false, "start with the collision overlay visible")
	flag.Parse()

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle(config.C.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)

	// Initialize persistence and load saved settings
	if err := systems.InitPersistence(); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	}
	if saved, err := systems.LoadSettings(); err == nil && saved != nil {
		systems.ApplySavedSettingsGlobal(saved)
	}

	levels := assets.NewLevelLoader().LoadLevels()
	levelIndex := 0
	if *levelName != "" {
		if levelIndex = assets.FindLevel(levels, *levelName); levelIndex < 0 {
			log.Printf("Warning: level %q not found, starting on %q", *levelName, levels[0].Name)
			levelIndex = 0
		}
	}

	if err := ebiten.RunGame(NewGame(levels, levelIndex)); err != nil {
		log.Fatal(err)
	}
}
