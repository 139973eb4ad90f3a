package core

import (
	"testing"

	"github.com/automoto/slingshot/components"
	cfg "github.com/automoto/slingshot/config"
	"github.com/automoto/slingshot/shared/leveldata"
	"github.com/automoto/slingshot/shared/messages"
)

const maxTicks = 5000

// tickUntilDone ticks while the projectile is in flight or settling.
func tickUntilDone(t *testing.T, g *Game) []messages.Event {
	t.Helper()
	var events []messages.Event
	for i := 0; i < maxTicks; i++ {
		g.Tick()
		events = append(events, g.DrainEvents()...)
		if s := g.State(); s != cfg.GameFlying && s != cfg.GameSettling {
			return events
		}
	}
	t.Fatalf("turn did not finish within %d ticks, state %s", maxTicks, g.State())
	return nil
}

// shoot drags from the anchor to (x, y) and releases.
func shoot(g *Game, x, y float64) bool {
	for _, in := range messages.DragGesture(cfg.Slingshot.AnchorX, cfg.Slingshot.AnchorY, x, y, 4) {
		g.HandlePointer(in)
	}
	return g.State() == cfg.GameFlying
}

func singleTargetLevel(projectiles int) leveldata.Level {
	return leveldata.Level{
		Name:        "single",
		Projectiles: projectiles,
		Targets:     []leveldata.TargetSpawn{{X: 700, Y: 428}},
	}
}

func TestNewGameIsReady(t *testing.T) {
	g := NewGame(leveldata.Level01())

	if g.State() != cfg.GameReady {
		t.Fatalf("state = %s, want ready", g.State())
	}
	if g.Projectile() == nil || g.Slingshot().Projectile() != g.Projectile() {
		t.Fatalf("first projectile should be mounted")
	}
	body := components.Body.Get(g.Projectile()).Body
	if x, y := body.Position(); x != 150 || y != 350 || !body.Static {
		t.Fatalf("projectile at (%v, %v) static=%v, want pinned at the anchor", x, y, body.Static)
	}
	if g.Store().Remaining() != 3 || g.Store().TargetCount() != 2 {
		t.Fatalf("unexpected store state: %d projectiles, %d targets", g.Store().Remaining(), g.Store().TargetCount())
	}
}

func TestWeakReleaseStaysReady(t *testing.T) {
	g := NewGame(leveldata.Level01())
	g.DrainEvents()

	if shoot(g, 148, 351) {
		t.Fatalf("weak pull should not launch")
	}
	if g.State() != cfg.GameReady || g.Store().Remaining() != 3 {
		t.Fatalf("weak pull changed the game: state %s, remaining %d", g.State(), g.Store().Remaining())
	}
	for _, ev := range g.DrainEvents() {
		if _, ok := ev.(messages.LaunchEvent); ok {
			t.Fatalf("weak pull emitted a launch")
		}
	}
}

func TestLaunchUsesExactlyOneProjectile(t *testing.T) {
	g := NewGame(leveldata.Level01())
	g.DrainEvents()

	if !shoot(g, 30, 350) {
		t.Fatalf("full pull should launch")
	}
	if g.Store().Remaining() != 2 {
		t.Fatalf("remaining = %d, want 2", g.Store().Remaining())
	}

	launches := 0
	for _, ev := range g.DrainEvents() {
		if l, ok := ev.(messages.LaunchEvent); ok {
			launches++
			if l.Remaining != 2 || l.Particles != 5 {
				t.Errorf("unexpected launch event %+v", l)
			}
		}
	}
	if launches != 1 {
		t.Fatalf("expected one launch event, got %d", launches)
	}

	// pointer input is ignored while flying
	if g.PointerDown(150, 350) || g.PointerUp() {
		t.Fatalf("pointer input must be ignored outside ready")
	}
	if g.Store().Remaining() != 2 {
		t.Fatalf("remaining changed while flying")
	}
}

func TestLostWhenProjectilesRunOut(t *testing.T) {
	g := NewGame(singleTargetLevel(1))

	// straight up, lands back at the slingshot
	if !shoot(g, 150, 470) {
		t.Fatalf("shot should launch")
	}
	events := tickUntilDone(t, g)

	if g.State() != cfg.GameLost {
		t.Fatalf("state = %s, want lost", g.State())
	}
	if countEvents[messages.GameLostEvent](events) != 1 {
		t.Fatalf("expected one lose cue")
	}
	if g.Projectile() != nil {
		t.Fatalf("projectile should be removed after settling")
	}
	if g.Store().Remaining() != 0 {
		t.Fatalf("remaining = %d, want 0", g.Store().Remaining())
	}
}

func TestWonWhenNoTargetsLeft(t *testing.T) {
	g := NewGame(singleTargetLevel(2))
	g.Store().RemoveTarget(g.Store().Targets()[0])

	if !shoot(g, 150, 470) {
		t.Fatalf("shot should launch")
	}
	events := tickUntilDone(t, g)

	if g.State() != cfg.GameWon {
		t.Fatalf("state = %s, want won", g.State())
	}
	if countEvents[messages.GameWonEvent](events) != 1 {
		t.Fatalf("expected one win cue")
	}
}

func TestNextProjectileAfterSettling(t *testing.T) {
	g := NewGame(singleTargetLevel(2))

	if !shoot(g, 150, 470) {
		t.Fatalf("shot should launch")
	}
	// the entity world recycles ids and entry pointers, so compare
	// versioned entities
	first := g.Projectile().Entity()
	events := tickUntilDone(t, g)

	if g.State() != cfg.GameReady {
		t.Fatalf("state = %s, want ready", g.State())
	}
	if g.World().Valid(first) {
		t.Fatalf("settled projectile should be removed from the world")
	}
	if g.Projectile() == nil || g.Projectile().Entity() == first {
		t.Fatalf("a fresh projectile should replace the settled one")
	}
	if countEvents[messages.ProjectileReadyEvent](events) != 1 {
		t.Fatalf("expected a projectile ready event")
	}
	if g.Store().Remaining() != 1 {
		t.Fatalf("remaining = %d, want 1", g.Store().Remaining())
	}
}

func TestSettleWaitsTwoSeconds(t *testing.T) {
	g := NewGame(singleTargetLevel(2))
	shoot(g, 150, 470)

	for i := 0; i < maxTicks && g.State() == cfg.GameFlying; i++ {
		g.Tick()
	}
	if g.State() != cfg.GameSettling {
		t.Fatalf("state = %s, want settling", g.State())
	}

	ticks := 0
	for ticks < maxTicks && g.State() == cfg.GameSettling {
		g.Tick()
		ticks++
	}
	// 2000ms of 1000/60ms frames, give or take float rounding
	if ticks < 120 || ticks > 121 {
		t.Fatalf("settling took %d ticks, want about 120", ticks)
	}
}

func TestZeroProjectileLevelResolvesOnLoad(t *testing.T) {
	lost := NewGame(singleTargetLevel(0))
	if lost.State() != cfg.GameLost {
		t.Fatalf("state = %s, want lost", lost.State())
	}
	if lost.Projectile() != nil {
		t.Fatalf("no projectile should be mounted")
	}

	won := NewGame(leveldata.Level{Name: "empty"})
	if won.State() != cfg.GameWon {
		t.Fatalf("state = %s, want won", won.State())
	}
}

func TestRestartFromAnyState(t *testing.T) {
	g := NewGame(leveldata.Level01())
	freshBodies := g.Space().Len()

	// mid-drag
	g.PointerDown(150, 350)
	g.PointerMove(60, 380)
	g.Restart()
	assertFreshStart(t, g, freshBodies)

	// flying
	shoot(g, 30, 350)
	for i := 0; i < 10; i++ {
		g.Tick()
	}
	g.Restart()
	assertFreshStart(t, g, freshBodies)

	events := g.DrainEvents()
	if len(events) == 0 {
		t.Fatalf("restart should emit events")
	}
	if _, ok := events[0].(messages.RestartEvent); !ok {
		t.Fatalf("first event after restart = %T, want RestartEvent", events[0])
	}
}

func assertFreshStart(t *testing.T, g *Game, bodies int) {
	t.Helper()
	if g.State() != cfg.GameReady {
		t.Fatalf("state = %s after restart, want ready", g.State())
	}
	if g.Slingshot().Dragging() {
		t.Fatalf("drag should be cancelled by restart")
	}
	if g.Store().Remaining() != 3 || g.Store().TargetCount() != 2 || g.Store().BlockCount() != 8 {
		t.Fatalf("store not reset: %d projectiles, %d targets, %d blocks",
			g.Store().Remaining(), g.Store().TargetCount(), g.Store().BlockCount())
	}
	if g.Space().Len() != bodies {
		t.Fatalf("physics world has %d bodies, want %d", g.Space().Len(), bodies)
	}
	if g.SettleElapsedMs() != 0 {
		t.Fatalf("settle timer not cleared")
	}
}

// Two targets and three projectiles: a flat shot knocks out the target on
// the right, a short downward shot crushes the one under the slingshot.
func TestTwoTargetsThreeProjectiles(t *testing.T) {
	level := leveldata.Level{
		Name:        "duo",
		Projectiles: 3,
		Targets: []leveldata.TargetSpawn{
			{X: 150, Y: 428},
			{X: 620, Y: 428},
		},
	}
	g := NewGame(level)

	if !shoot(g, 30, 350) {
		t.Fatalf("first shot should launch")
	}
	tickUntilDone(t, g)
	if g.State() != cfg.GameReady {
		t.Fatalf("state after first shot = %s, want ready", g.State())
	}
	if g.Store().TargetCount() != 1 || g.Store().Remaining() != 2 {
		t.Fatalf("after first shot: %d targets, %d projectiles", g.Store().TargetCount(), g.Store().Remaining())
	}

	if !shoot(g, 150, 300) {
		t.Fatalf("second shot should launch")
	}
	events := tickUntilDone(t, g)

	if g.State() != cfg.GameWon {
		t.Fatalf("state after second shot = %s, want won", g.State())
	}
	if g.Store().Remaining() != 1 {
		t.Fatalf("remaining = %d, want 1", g.Store().Remaining())
	}
	if countEvents[messages.TargetDestroyedEvent](events) != 1 {
		t.Fatalf("second shot should destroy one target")
	}
}
