package systems

import (
	"github.com/automoto/slingshot/components"
	cfg "github.com/automoto/slingshot/config"
	"github.com/automoto/slingshot/core"
	"github.com/yohamta/donburi/ecs"
)

// UpdateGame applies keyboard actions and the pointer to the session, ticks
// it once and dispatches the events it produced. Runs after UpdateInput.
func UpdateGame(e *ecs.ECS) {
	s, ok := GetSession(e)
	if !ok {
		return
	}
	input := getOrCreateInput(e)

	if GetAction(input, cfg.ActionRestart).JustPressed {
		RestartGame(e)
	}
	if GetAction(input, cfg.ActionMute).JustPressed {
		ToggleMute(e)
	}
	if GetAction(input, cfg.ActionDebug).JustPressed {
		ToggleDebug(e)
	}
	if GetAction(input, cfg.ActionMenuBack).JustPressed {
		s.BackToMenu = true
		return
	}

	feedPointer(s.Game, input.Pointer)

	s.Game.Tick()
	dispatchEvents(e, s.Game.DrainEvents())
}

func feedPointer(g *core.Game, p components.PointerData) {
	switch {
	case p.JustPressed:
		g.PointerDown(p.X, p.Y)
	case p.JustReleased:
		g.PointerMove(p.X, p.Y)
		g.PointerUp()
	case p.Pressed:
		g.PointerMove(p.X, p.Y)
	}
}
