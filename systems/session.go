package systems

import (
	"log"

	"github.com/automoto/slingshot/core"
	"github.com/automoto/slingshot/shared/leveldata"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Layers drawn by the world scene, bottom first.
const (
	LayerWorld ecs.LayerID = iota
	LayerHUD
)

// SessionData is the game session run by the world scene (singleton).
type SessionData struct {
	Game       *core.Game
	Levels     []leveldata.Level
	LevelIndex int

	// BackToMenu is set when the player leaves the level.
	BackToMenu bool
}

var Session = donburi.NewComponentType[SessionData]()

// CreateSession starts a game on levels[index] inside the scene's world.
// The particles singleton must exist before the session is created.
func CreateSession(e *ecs.ECS, levels []leveldata.Level, index int) *SessionData {
	if index < 0 || index >= len(levels) {
		log.Printf("Warning: level index %d out of range, using 0", index)
		index = 0
	}

	g := core.NewGame(levels[index],
		core.WithWorld(e.World),
		core.WithCosmetics(NewParticleUpdater(e)),
	)

	entry := e.World.Entry(e.World.Create(Session))
	Session.SetValue(entry, SessionData{
		Game:       g,
		Levels:     levels,
		LevelIndex: index,
	})

	// Events raised while loading (an empty level resolving at once)
	dispatchEvents(e, g.DrainEvents())
	return Session.Get(entry)
}

// GetSession returns the running session, if the world has one.
func GetSession(e *ecs.ECS) (*SessionData, bool) {
	entry, ok := Session.First(e.World)
	if !ok {
		return nil, false
	}
	return Session.Get(entry), true
}

// RestartGame reloads the current level.
func RestartGame(e *ecs.ECS) {
	s, ok := GetSession(e)
	if !ok {
		return
	}
	s.Game.Restart()
	dispatchEvents(e, s.Game.DrainEvents())
}

// RemainingProjectiles returns the projectile counter of the session.
func RemainingProjectiles(e *ecs.ECS) int {
	s, ok := GetSession(e)
	if !ok {
		return 0
	}
	return s.Game.Store().Remaining()
}
