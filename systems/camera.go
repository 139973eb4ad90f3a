package systems

import (
	"math/rand"
	"time"

	"github.com/automoto/slingshot/components"
	"github.com/automoto/slingshot/systems/fx"
	"github.com/yohamta/donburi/ecs"
)

var shakeRand = rand.New(rand.NewSource(time.Now().UnixNano()))

// UpdateCamera decays the screen shake and picks this frame's view offset.
// Runs after UpdateGame so shakes triggered this frame are applied at once.
func UpdateCamera(e *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)
	shake := components.ScreenShake.Get(cameraEntry)

	fx.StepShake(shake)
	camera.Position.X, camera.Position.Y = fx.ShakeOffset(shake, shakeRand)
}

// TriggerScreenShake starts a screen shake effect
func TriggerScreenShake(e *ecs.ECS, intensity, durationMs float64) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	fx.TriggerShake(components.ScreenShake.Get(cameraEntry), intensity, durationMs)
}

func ResetScreenShake(e *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	fx.ResetShake(components.ScreenShake.Get(cameraEntry))
	components.Camera.Get(cameraEntry).Position.X = 0
	components.Camera.Get(cameraEntry).Position.Y = 0
}

// viewOffset returns the world-to-screen translation of this frame.
func viewOffset(e *ecs.ECS) (float64, float64) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return 0, 0
	}
	camera := components.Camera.Get(cameraEntry)
	return camera.Position.X, camera.Position.Y
}
