package config

import "image/color"

// PhysicsConfig contains physics world configuration values
type PhysicsConfig struct {
	// Fixed timestep in milliseconds (one frame at 60fps)
	FrameMs float64

	// Gravity added to vertical speed every step (px/frame²)
	Gravity     float64
	AirFriction float64 // fraction of speed lost per step

	// Speeds below this after a bounce are zeroed so stacks can rest
	RestingSpeed float64

	// Distance at which two bodies count as touching
	ContactSlop float64

	// Spatial hash
	CellSize int

	// Static boundaries
	GroundHeight   float64
	WallThickness  float64
	GroundFriction float64

	// Margin of the collision space around the playfield
	SpaceMargin float64
}

// CircleBodyConfig contains the settings of a round gameplay body
type CircleBodyConfig struct {
	Radius      float64
	Restitution float64
	Friction    float64
	Density     float64
}

// ProjectileConfig contains projectile configuration
type ProjectileConfig struct {
	CircleBodyConfig
}

// TargetConfig contains target creature configuration
type TargetConfig struct {
	CircleBodyConfig
	Health float64
}

// MaterialConfig contains the gameplay values of a block material
type MaterialConfig struct {
	Resistance float64 // starting health
	Density    float64
	Color      color.RGBA
}

// BlockConfig contains block configuration
type BlockConfig struct {
	Restitution float64
	Friction    float64
	Materials   map[MaterialID]MaterialConfig
}

// SlingshotConfig contains launch controller configuration
type SlingshotConfig struct {
	AnchorX, AnchorY float64

	CaptureRadius    float64 // pointer must start this close to the projectile
	MaxDragDistance  float64
	PowerMultiplier  float64
	ReleaseThreshold float64 // minimum launch speed on either axis

	// Elastic band attachment points relative to the anchor
	BandOffsetX float64
	BandOffsetY float64

	// Predicted trajectory overlay
	TrajectoryPoints  int
	TrajectoryStep    float64
	TrajectoryGravity float64
	TrajectoryRadius  float64
	TrajectoryShrink  float64
}

// DamageConfig contains collision damage configuration
type DamageConfig struct {
	Threshold     float64 // impacts below this deal no damage
	TargetDivisor float64
	BlockDivisor  float64

	// Effect decisions
	EffectThreshold     float64 // minor impact cue
	ShakeThreshold      float64 // camera shake cue
	ShakeScale          float64
	ShakeMaxIntensity   float64
	ShakeDurationMs     float64
	ImpactParticleScale float64
	ImpactParticleMax   int

	TargetDestroyedShake     float64
	TargetDestroyedShakeMs   float64
	TargetDestroyedParticles int
	BlockDestroyedParticles  int
	LaunchParticles          int
}

// GameConfig contains turn sequencing configuration
type GameConfig struct {
	SettleDurationMs  float64
	OutOfBoundsMargin float64
	StopSpeed         float64 // both velocity components below this = stopped
	LaunchHeightY     float64 // projectile must be below this line to count as stopped

	// Physics steps run after loading a level, before damage is tracked,
	// so structures can settle onto their supports.
	WarmupSteps int
}

// ScreenShakeConfig contains screen shake effect configuration
type ScreenShakeConfig struct {
	Decay        float64 // intensity multiplier per frame
	FrameMs      float64 // duration consumed per frame
	MinIntensity float64 // below this no offset is applied
}

// UIConfig contains colors and sizes used by the renderer and HUD
type UIConfig struct {
	SkyTop        color.RGBA
	SkyBottom     color.RGBA
	Ground        color.RGBA
	Projectile    color.RGBA
	Target        color.RGBA
	TargetDamaged color.RGBA
	Slingshot     color.RGBA
	Elastic       color.RGBA
	Trajectory    color.RGBA
	Outline       color.RGBA
	Unknown       color.RGBA

	ElasticWidth float32
	OutlineWidth float32

	BannerDurationSec float64
	HUDMargin         float64
}

// MenuConfig contains level select layout and colors
type MenuConfig struct {
	BackgroundColor   color.RGBA
	TitleColor        color.RGBA
	TextColorNormal   color.RGBA
	TextColorSelected color.RGBA
	ClearedColor      color.RGBA

	TitleY  float64
	CardY   float64
	CardW   float64
	CardH   float64
	CardGap float64
}

// PauseConfig contains pause overlay layout and colors
type PauseConfig struct {
	OverlayColor      color.RGBA
	TextColorNormal   color.RGBA
	TextColorSelected color.RGBA
	MenuOptions       []string
	MenuItemHeight    float64
	MenuItemGap       float64
}

// Config holds general game configuration
type Config struct {
	Width  int
	Height int
	Title  string
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	SkipMenu bool // Skip menu and go directly to game
	Overlay  bool // Start with the debug overlay visible
}

// Global configuration instances
var C *Config
var Physics PhysicsConfig
var Projectile ProjectileConfig
var Target TargetConfig
var Block BlockConfig
var Slingshot SlingshotConfig
var Damage DamageConfig
var Game GameConfig
var ScreenShake ScreenShakeConfig
var UI UIConfig
var Menu MenuConfig
var Pause PauseConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Yellow       = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	BrightYellow = color.RGBA{R: 255, G: 255, B: 100, A: 255}
	Red          = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	LightGreen   = color.RGBA{R: 100, G: 255, B: 100, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
	LightBlue    = color.RGBA{R: 100, G: 180, B: 255, A: 255} // Selected menu items
	DarkBlue     = color.RGBA{R: 60, G: 100, B: 160, A: 255}  // Unselected menu items
)

func init() {
	C = &Config{
		Width:  900,
		Height: 500,
		Title:  "Slingshot",
	}

	Physics = PhysicsConfig{
		FrameMs: 1000.0 / 60.0,

		// 1 unit of gravity scaled by 0.001 per ms² over a 16.67ms step
		Gravity:     0.278,
		AirFriction: 0.01,

		RestingSpeed: 0.3,
		ContactSlop:  0.5,

		CellSize: 16,

		GroundHeight:   50,
		WallThickness:  50,
		GroundFriction: 0.1,

		SpaceMargin: 400,
	}

	Projectile = ProjectileConfig{
		CircleBodyConfig: CircleBodyConfig{
			Radius:      20,
			Restitution: 0.4,
			Friction:    0.5,
			Density:     0.004,
		},
	}

	Target = TargetConfig{
		CircleBodyConfig: CircleBodyConfig{
			Radius:      22,
			Restitution: 0.3,
			Friction:    0.8,
			Density:     0.002,
		},
		Health: 2,
	}

	Block = BlockConfig{
		Restitution: 0.1,
		Friction:    0.8,
		Materials: map[MaterialID]MaterialConfig{
			MaterialWood: {
				Resistance: 3,
				Density:    0.002,
				Color:      color.RGBA{R: 139, G: 69, B: 19, A: 255},
			},
			MaterialStone: {
				Resistance: 7,
				Density:    0.005,
				Color:      color.RGBA{R: 105, G: 105, B: 105, A: 255},
			},
			MaterialMetal: {
				Resistance: 15,
				Density:    0.008,
				Color:      color.RGBA{R: 44, G: 62, B: 80, A: 255},
			},
		},
	}

	Slingshot = SlingshotConfig{
		AnchorX: 150,
		AnchorY: 350,

		CaptureRadius:    40,
		MaxDragDistance:  120,
		PowerMultiplier:  0.15,
		ReleaseThreshold: 0.5,

		BandOffsetX: 20,
		BandOffsetY: -55,

		TrajectoryPoints:  15,
		TrajectoryStep:    0.15,
		TrajectoryGravity: 1,
		TrajectoryRadius:  3,
		TrajectoryShrink:  0.15,
	}

	Damage = DamageConfig{
		Threshold:     1.5,
		TargetDivisor: 2,
		BlockDivisor:  1.5,

		EffectThreshold:     1.5,
		ShakeThreshold:      3,
		ShakeScale:          0.5,
		ShakeMaxIntensity:   15,
		ShakeDurationMs:     150,
		ImpactParticleScale: 2,
		ImpactParticleMax:   12,

		TargetDestroyedShake:     5,
		TargetDestroyedShakeMs:   100,
		TargetDestroyedParticles: 12,
		BlockDestroyedParticles:  10,
		LaunchParticles:          5,
	}

	Game = GameConfig{
		SettleDurationMs:  2000,
		OutOfBoundsMargin: 50,
		StopSpeed:         0.5,
		LaunchHeightY:     100,

		WarmupSteps: 90,
	}

	ScreenShake = ScreenShakeConfig{
		Decay:        0.9,
		FrameMs:      16,
		MinIntensity: 0.5,
	}

	UI = UIConfig{
		SkyTop:        color.RGBA{R: 135, G: 206, B: 235, A: 255},
		SkyBottom:     color.RGBA{R: 176, G: 224, B: 230, A: 255},
		Ground:        color.RGBA{R: 139, G: 69, B: 19, A: 255},
		Projectile:    color.RGBA{R: 231, G: 76, B: 60, A: 255},
		Target:        color.RGBA{R: 39, G: 174, B: 96, A: 255},
		TargetDamaged: color.RGBA{R: 243, G: 156, B: 18, A: 255},
		Slingshot:     color.RGBA{R: 93, G: 64, B: 55, A: 255},
		Elastic:       color.RGBA{R: 62, G: 39, B: 35, A: 255},
		Trajectory:    color.RGBA{R: 255, G: 255, B: 255, A: 128},
		Outline:       color.RGBA{R: 0, G: 0, B: 0, A: 77},
		Unknown:       color.RGBA{R: 51, G: 51, B: 51, A: 255},

		ElasticWidth: 4,
		OutlineWidth: 2,

		BannerDurationSec: 0.6,
		HUDMargin:         10,
	}

	Menu = MenuConfig{
		BackgroundColor:   color.RGBA{R: 20, G: 30, B: 48, A: 255},
		TitleColor:        BrightYellow,
		TextColorNormal:   DarkBlue,
		TextColorSelected: LightBlue,
		ClearedColor:      LightGreen,

		TitleY:  120,
		CardY:   200,
		CardW:   140,
		CardH:   100,
		CardGap: 24,
	}

	Pause = PauseConfig{
		OverlayColor:      BlackOverlay,
		TextColorNormal:   White,
		TextColorSelected: Yellow,
		MenuOptions:       []string{"Resume", "Restart", "Levels"},
		MenuItemHeight:    24,
		MenuItemGap:       12,
	}
}
