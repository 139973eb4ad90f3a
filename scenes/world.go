package scenes

import (
	"image/color"
	"sync"

	cfg "github.com/automoto/slingshot/config"
	"github.com/automoto/slingshot/shared/leveldata"
	"github.com/automoto/slingshot/systems"
	"github.com/automoto/slingshot/systems/factory"
	"github.com/automoto/slingshot/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// WorldScene runs one game session on a level.
type WorldScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	levels       []leveldata.Level
	levelIndex   int
	hud          *ui.HudUI
	once         sync.Once
}

// NewWorldScene creates a game scene for levels[index]
func NewWorldScene(sc SceneChanger, levels []leveldata.Level, index int) *WorldScene {
	return &WorldScene{sceneChanger: sc, levels: levels, levelIndex: index}
}

func (ws *WorldScene) Update() {
	ws.once.Do(ws.configure)
	if !systems.IsPaused(ws.ecs) {
		ws.hud.Update()
	}
	ws.ecs.Update()

	if s, ok := systems.GetSession(ws.ecs); ok && s.BackToMenu {
		ws.backToMenu()
	}
}

func (ws *WorldScene) backToMenu() {
	ws.sceneChanger.ChangeScene(NewMenuScene(ws.sceneChanger, ws.levels, ws.levelIndex))
}

func (ws *WorldScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ws.ecs == nil {
		return
	}
	// Buttons sit between the playfield and the overlays
	ws.ecs.DrawLayer(systems.LayerWorld, screen)
	ws.hud.Draw(screen)
	ws.ecs.DrawLayer(systems.LayerHUD, screen)
}

func (ws *WorldScene) configure() {
	// Preload assets to avoid lag on first use (important for WASM)
	systems.PreloadAllSFX()

	e := ecs.NewECS(donburi.NewWorld())

	// Singletons first; the session emits effects while it loads
	factory.CreateCamera(e.World)
	factory.CreateParticles(e.World)
	factory.CreateBanner(e.World)
	factory.CreateInput(e.World)
	factory.CreateAudio(e.World, systems.GetSFXVolume(), systems.IsMuted())
	factory.CreateDebug(e.World, cfg.Debug.Overlay)
	systems.GetOrCreateSettings(e)

	// Audio system (runs first to initialize audio context)
	e.AddSystem(systems.UpdateAudio)
	e.AddSystem(systems.UpdateInput)
	e.AddSystem(systems.UpdatePause)

	// Game systems freeze while paused
	e.AddSystem(systems.WithPauseCheck(systems.UpdateGame))
	e.AddSystem(systems.WithPauseCheck(systems.UpdateCamera))
	e.AddSystem(systems.WithPauseCheck(systems.UpdateBanner))

	e.AddRenderer(systems.LayerWorld, systems.DrawWorld)
	e.AddRenderer(systems.LayerHUD, systems.DrawHUD)
	e.AddRenderer(systems.LayerHUD, systems.DrawBanner)
	e.AddRenderer(systems.LayerHUD, systems.DrawDebug)
	e.AddRenderer(systems.LayerHUD, systems.DrawPause)

	ws.ecs = e
	systems.CreateSession(e, ws.levels, ws.levelIndex)

	ws.hud = ui.NewHudUI(e, func() {
		if s, ok := systems.GetSession(e); ok {
			s.BackToMenu = true
		}
	})
}
