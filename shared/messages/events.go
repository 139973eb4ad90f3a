// Package messages holds the typed events the game core hands to its host.
package messages

import "github.com/automoto/slingshot/config"

// Event is anything the core asks the host to react to.
type Event interface {
	EventName() string
}

// LaunchEvent is emitted when a projectile leaves the slingshot
type LaunchEvent struct {
	X, Y       float64
	VelX, VelY float64
	Remaining  int // projectiles left after this one
	Particles  int
}

// ImpactEvent is emitted for a collision strong enough to be felt
type ImpactEvent struct {
	X, Y      float64 // contact midpoint
	Impact    float64
	Particles int
}

// ScreenShakeEvent asks the camera to shake
type ScreenShakeEvent struct {
	Intensity  float64
	DurationMs float64
}

// TargetDestroyedEvent is emitted when a target creature runs out of health
type TargetDestroyedEvent struct {
	X, Y      float64
	Particles int
}

// BlockDestroyedEvent is emitted when a block runs out of health
type BlockDestroyedEvent struct {
	X, Y      float64
	Material  config.MaterialID
	Particles int
}

// StateChangeEvent is emitted on every game state transition
type StateChangeEvent struct {
	From, To config.GameStateID
}

// ProjectileReadyEvent is emitted when a new projectile is mounted
type ProjectileReadyEvent struct {
	Remaining int
}

// GameWonEvent is emitted when the last target is destroyed
type GameWonEvent struct {
	Remaining int // unused projectiles
}

// GameLostEvent is emitted when projectiles run out with targets left
type GameLostEvent struct {
	TargetsLeft int
}

// RestartEvent is emitted when the level is reset
type RestartEvent struct{}

func (LaunchEvent) EventName() string { return "launch" }
func (ImpactEvent) EventName() string { return "impact" }
func (ScreenShakeEvent) EventName() string { return "screen_shake" }
func (TargetDestroyedEvent) EventName() string { return "target_destroyed" }
func (BlockDestroyedEvent) EventName() string { return "block_destroyed" }
func (StateChangeEvent) EventName() string { return "state_change" }
func (ProjectileReadyEvent) EventName() string { return "projectile_ready" }
func (GameWonEvent) EventName() string { return "game_won" }
func (GameLostEvent) EventName() string { return "game_lost" }
func (RestartEvent) EventName() string { return "restart" }
