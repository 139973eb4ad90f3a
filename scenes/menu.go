package scenes

import (
	"image/color"
	"sync"

	"github.com/automoto/slingshot/shared/leveldata"
	"github.com/automoto/slingshot/systems"
	"github.com/automoto/slingshot/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// SceneChanger allows scenes to trigger transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// MenuScene displays the level select
type MenuScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	levels       []leveldata.Level
	selected     int
	once         sync.Once
}

// NewMenuScene creates a new menu scene with the given level highlighted
func NewMenuScene(sc SceneChanger, levels []leveldata.Level, selected int) *MenuScene {
	return &MenuScene{sceneChanger: sc, levels: levels, selected: selected}
}

func (ms *MenuScene) Update() {
	ms.once.Do(ms.configure)
	ms.ecs.Update()
}

func (ms *MenuScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ms.ecs == nil {
		return
	}
	ms.ecs.Draw(screen)
}

func (ms *MenuScene) configure() {
	ms.ecs = ecs.NewECS(donburi.NewWorld())

	names := make([]string, len(ms.levels))
	cleared := make([]bool, len(ms.levels))
	for i, level := range ms.levels {
		names[i] = level.Name
		cleared[i] = systems.IsLevelCleared(level.Name)
	}
	menu := systems.GetOrCreateMenu(ms.ecs)
	menu.LevelNames = names
	menu.Cleared = cleared
	if ms.selected >= 0 && ms.selected < len(names) {
		menu.SelectedIndex = ms.selected
	}

	factory.CreateInput(ms.ecs.World)
	factory.CreateAudio(ms.ecs.World, systems.GetSFXVolume(), systems.IsMuted())

	createWorldScene := func(index int) interface{} {
		return NewWorldScene(ms.sceneChanger, ms.levels, index)
	}

	// Audio system (runs first to initialize audio context)
	ms.ecs.AddSystem(systems.UpdateAudio)

	// Minimal systems for menu
	ms.ecs.AddSystem(systems.UpdateInput)
	ms.ecs.AddSystem(systems.NewUpdateMenu(ms.sceneChanger, createWorldScene))

	ms.ecs.AddRenderer(systems.LayerWorld, systems.DrawMenu)
}
