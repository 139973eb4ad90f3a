// Package core sequences a slingshot game session: the level store, the
// slingshot, collision damage and the turn state machine. It has no
// rendering dependencies, so a session can run headless.
package core

import (
	"log"

	"github.com/automoto/slingshot/components"
	cfg "github.com/automoto/slingshot/config"
	"github.com/automoto/slingshot/physics"
	"github.com/automoto/slingshot/shared/gamemath"
	"github.com/automoto/slingshot/shared/leveldata"
	"github.com/automoto/slingshot/shared/messages"
	"github.com/automoto/slingshot/systems/factory"
	"github.com/yohamta/donburi"
)

// Updater is a cosmetic collaborator advanced once per tick, after physics
// and before the state checks (particles, for example).
type Updater interface {
	Update()
}

// Option configures a Game.
type Option func(*Game)

// WithWorld makes the game create its entities in an existing world.
func WithWorld(w donburi.World) Option {
	return func(g *Game) {
		g.world = w
	}
}

// WithCosmetics registers a collaborator updated every tick.
func WithCosmetics(u Updater) Option {
	return func(g *Game) {
		g.cosmetics = append(g.cosmetics, u)
	}
}

// WithPhysics overrides the physics world settings.
func WithPhysics(c physics.Config) Option {
	return func(g *Game) {
		g.physicsConfig = c
	}
}

// Game is one play session of a level.
type Game struct {
	world         donburi.World
	space         *physics.World
	physicsConfig physics.Config

	store     *LevelStore
	sling     *Slingshot
	resolver  *Resolver
	cosmetics []Updater

	state      cfg.GameStateID
	projectile *donburi.Entry
	settleMs   float64
	frame      int

	events []messages.Event
}

// NewGame creates the session, loads the level and mounts the first
// projectile.
func NewGame(level leveldata.Level, opts ...Option) *Game {
	g := &Game{
		physicsConfig: physics.DefaultConfig(),
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.world == nil {
		g.world = donburi.NewWorld()
	}

	g.space = physics.NewWorld(g.physicsConfig)
	factory.CreateBoundaries(g.world, g.space)

	g.store = NewLevelStore(g.world, g.space, level)
	g.sling = NewSlingshot()
	g.resolver = NewResolver(g.store)

	g.store.Load()
	g.begin()
	return g
}

// begin starts a turn sequence on a freshly loaded level.
func (g *Game) begin() {
	g.warmup()
	g.settleMs = 0

	if g.store.Remaining() == 0 {
		g.finish()
		return
	}
	g.mountProjectile()
}

// warmup lets freshly spawned structures come to rest without tracking damage.
func (g *Game) warmup() {
	for i := 0; i < cfg.Game.WarmupSteps; i++ {
		g.space.Step()
	}
}

// Tick advances the session by one fixed frame: physics and damage, cosmetic
// collaborators, the flight check and the settle check. The host renders
// after Tick returns.
func (g *Game) Tick() {
	g.frame++

	collisions := g.space.Step()
	g.emit(g.resolver.Resolve(collisions)...)

	for _, u := range g.cosmetics {
		u.Update()
	}

	switch g.state {
	case cfg.GameFlying:
		g.checkFlight()
	case cfg.GameSettling:
		g.checkSettle()
	}
}

func (g *Game) checkFlight() {
	body := g.projectileBody()
	if body == nil {
		g.enterSettling()
		return
	}

	x, y := body.Position()
	vx, vy := body.Velocity()
	out := gamemath.OutOfBounds(x, y, g.physicsConfig.Width, g.physicsConfig.Height, cfg.Game.OutOfBoundsMargin)
	stopped := gamemath.Stopped(vx, vy, y, cfg.Game.StopSpeed, cfg.Game.LaunchHeightY)
	if out || stopped {
		g.enterSettling()
	}
}

func (g *Game) enterSettling() {
	g.settleMs = 0
	g.setState(cfg.GameSettling)
}

func (g *Game) checkSettle() {
	g.settleMs += cfg.Physics.FrameMs
	if g.settleMs < cfg.Game.SettleDurationMs {
		return
	}

	g.removeProjectile()

	if g.store.TargetCount() > 0 && g.store.Remaining() > 0 {
		g.mountProjectile()
		return
	}
	g.finish()
}

// finish moves to Won when no targets are left, Lost otherwise.
func (g *Game) finish() {
	if g.store.TargetCount() == 0 {
		g.setState(cfg.GameWon)
		g.emit(messages.GameWonEvent{Remaining: g.store.Remaining()})
		return
	}
	g.setState(cfg.GameLost)
	g.emit(messages.GameLostEvent{TargetsLeft: g.store.TargetCount()})
}

func (g *Game) mountProjectile() {
	g.projectile = factory.CreateProjectile(g.world, g.sling.AnchorX, g.sling.AnchorY)
	g.sling.Bind(g.projectile)
	g.space.Add(components.Body.Get(g.projectile).Body)

	g.setState(cfg.GameReady)
	g.emit(messages.ProjectileReadyEvent{Remaining: g.store.Remaining()})
}

func (g *Game) removeProjectile() {
	if g.projectile == nil {
		return
	}
	if g.projectile.Valid() {
		g.space.Remove(components.Body.Get(g.projectile).Body)
		g.world.Remove(g.projectile.Entity())
	}
	g.projectile = nil
}

func (g *Game) projectileBody() *physics.Body {
	if g.projectile == nil || !g.projectile.Valid() {
		return nil
	}
	return components.Body.Get(g.projectile).Body
}

// Restart reloads the level from any state and mounts a fresh projectile.
// Pending events are dropped.
func (g *Game) Restart() {
	g.sling.Cancel()
	g.removeProjectile()
	g.store.Reset()

	g.events = nil
	g.emit(messages.RestartEvent{})
	log.Printf("Restarting level %s", g.store.Level().Name)

	g.begin()
}

// PointerDown starts a drag. Pointer input is ignored outside Ready.
func (g *Game) PointerDown(x, y float64) bool {
	if g.state != cfg.GameReady {
		return false
	}
	return g.sling.PointerDown(x, y)
}

func (g *Game) PointerMove(x, y float64) {
	if g.state != cfg.GameReady {
		return
	}
	g.sling.PointerMove(x, y)
}

// PointerUp releases a drag. A release that launches moves the game to
// Flying before returning true.
func (g *Game) PointerUp() bool {
	if g.state != cfg.GameReady {
		return false
	}
	launched, ok := g.sling.PointerUp()
	if !ok {
		return false
	}

	remaining, _ := g.store.UseProjectile()
	g.setState(cfg.GameFlying)

	body := components.Body.Get(launched).Body
	x, y := body.Position()
	vx, vy := body.Velocity()
	g.emit(messages.LaunchEvent{
		X:         x,
		Y:         y,
		VelX:      vx,
		VelY:      vy,
		Remaining: remaining,
		Particles: cfg.Damage.LaunchParticles,
	})
	return true
}

// HandlePointer dispatches one pointer sample.
func (g *Game) HandlePointer(in messages.PointerInput) {
	switch in.Action {
	case messages.PointerDown:
		g.PointerDown(in.X, in.Y)
	case messages.PointerMove:
		g.PointerMove(in.X, in.Y)
	case messages.PointerUp:
		g.PointerUp()
	}
}

// DrainEvents returns the events accumulated since the last call.
func (g *Game) DrainEvents() []messages.Event {
	out := g.events
	g.events = nil
	return out
}

func (g *Game) emit(events ...messages.Event) {
	g.events = append(g.events, events...)
}

func (g *Game) setState(s cfg.GameStateID) {
	if g.state == s {
		return
	}
	from := g.state
	g.state = s
	log.Printf("Game state: %s -> %s", from, s)
	g.emit(messages.StateChangeEvent{From: from, To: s})
}

func (g *Game) State() cfg.GameStateID { return g.state }
func (g *Game) Store() *LevelStore { return g.store }
func (g *Game) Slingshot() *Slingshot { return g.sling }
func (g *Game) Space() *physics.World { return g.space }
func (g *Game) World() donburi.World { return g.world }
func (g *Game) Projectile() *donburi.Entry { return g.projectile }
func (g *Game) Frame() int { return g.frame }
func (g *Game) SettleElapsedMs() float64 { return g.settleMs }
func (g *Game) Level() leveldata.Level { return g.store.Level() }
func (g *Game) SlingshotView() SlingshotView { return g.sling.View() }
