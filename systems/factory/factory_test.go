package factory

import (
	"math"
	"testing"

	"github.com/automoto/slingshot/components"
	cfg "github.com/automoto/slingshot/config"
	"github.com/automoto/slingshot/physics"
	"github.com/automoto/slingshot/shared/leveldata"
	"github.com/automoto/slingshot/tags"
	"github.com/yohamta/donburi"
)

func TestCreateProjectile(t *testing.T) {
	w := donburi.NewWorld()
	e := CreateProjectile(w, 150, 350)

	if !e.HasComponent(tags.Projectile) {
		t.Fatalf("projectile is missing its tag")
	}
	body := components.Body.Get(e).Body
	if body.Data != e {
		t.Fatalf("body should link back to its entry")
	}
	if body.InWorld() {
		t.Fatalf("factory must not add bodies to a physics world")
	}
	if body.Shape != physics.ShapeCircle || body.Radius != 20 {
		t.Errorf("projectile should be a circle of radius 20, got shape %d radius %v", body.Shape, body.Radius)
	}
	if body.Restitution != 0.4 || body.Friction != 0.5 || body.Density != 0.004 {
		t.Errorf("unexpected projectile material %+v", body)
	}
	if e.HasComponent(components.Health) {
		t.Errorf("projectiles have no health")
	}
}

func TestCreateTarget(t *testing.T) {
	w := donburi.NewWorld()
	e := CreateTarget(w, 650, 428)

	h := components.Health.Get(e)
	if h.Current != 2 || h.Max != 2 {
		t.Fatalf("target health = %v/%v, want 2/2", h.Current, h.Max)
	}
	body := components.Body.Get(e).Body
	if body.Radius != 22 || body.Label != "target" {
		t.Errorf("unexpected target body radius=%v label=%q", body.Radius, body.Label)
	}
	want := 0.002 * math.Pi * 22 * 22
	if math.Abs(body.Mass()-want) > 1e-9 {
		t.Errorf("target mass = %v, want %v", body.Mass(), want)
	}
}

func TestCreateBlockMaterials(t *testing.T) {
	tests := []struct {
		material   string
		want       cfg.MaterialID
		resistance float64
		density    float64
	}{
		{"wood", cfg.MaterialWood, 3, 0.002},
		{"stone", cfg.MaterialStone, 7, 0.005},
		{"metal", cfg.MaterialMetal, 15, 0.008},
		{"glass", cfg.MaterialWood, 3, 0.002},
		{"", cfg.MaterialWood, 3, 0.002},
	}

	for _, tt := range tests {
		t.Run(tt.material, func(t *testing.T) {
			w := donburi.NewWorld()
			e := CreateBlock(w, 600, 420, 20, 60, tt.material)

			block := components.Block.Get(e)
			if block.Material != tt.want {
				t.Errorf("material = %s, want %s", block.Material, tt.want)
			}
			if h := components.Health.Get(e); h.Current != tt.resistance {
				t.Errorf("health = %v, want %v", h.Current, tt.resistance)
			}
			body := components.Body.Get(e).Body
			if body.Density != tt.density || body.Restitution != 0.1 || body.Friction != 0.8 {
				t.Errorf("unexpected block body %+v", body)
			}
			if body.Shape != physics.ShapeRect || body.W != 20 || body.H != 60 {
				t.Errorf("block should be a 20x60 rectangle")
			}
		})
	}
}

func TestCreateBoundaries(t *testing.T) {
	w := donburi.NewWorld()
	space := physics.NewWorld(physics.DefaultConfig())

	entries := CreateBoundaries(w, space)
	if len(entries) != 3 || space.Len() != 3 {
		t.Fatalf("expected ground and two walls in the world, got %d entries and %d bodies", len(entries), space.Len())
	}

	ground := components.Body.Get(entries[0]).Body
	if !ground.Static || ground.Label != "ground" {
		t.Fatalf("first boundary should be the static ground")
	}
	if _, minY, _, _ := ground.Bounds(); minY != 450 {
		t.Errorf("ground top = %v, want 450", minY)
	}
	for _, e := range entries[1:] {
		if !e.HasComponent(tags.Wall) {
			t.Errorf("side boundary should be tagged as wall")
		}
	}
}

func TestSpawnLevel(t *testing.T) {
	w := donburi.NewWorld()
	level := leveldata.Level01()

	targets, blocks := SpawnLevel(w, &level)
	if len(targets) != 2 || len(blocks) != 8 {
		t.Fatalf("spawned %d targets and %d blocks, want 2 and 8", len(targets), len(blocks))
	}
	stone := 0
	for _, b := range blocks {
		if components.Block.Get(b).Material == cfg.MaterialStone {
			stone++
		}
	}
	if stone != 2 {
		t.Errorf("expected 2 stone blocks, got %d", stone)
	}
}

func TestCreateSingletons(t *testing.T) {
	w := donburi.NewWorld()

	audio := components.Audio.Get(CreateAudio(w, 0.5, true))
	if audio.SFXVolume != 0.5 || !audio.Muted || len(audio.PendingSFX) != 0 {
		t.Errorf("unexpected audio singleton %+v", audio)
	}

	settings := components.Settings.Get(CreateSettings(w, 99, false, true))
	if settings.VolumeIndex != cfg.Settings.DefaultVolumeIndex || !settings.Loaded {
		t.Errorf("out of range volume index should fall back to the default, got %+v", settings)
	}

	menu := components.Menu.Get(CreateMenu(w, []string{"level01", "level02"}))
	if len(menu.LevelNames) != 2 || menu.SelectedIndex != 0 {
		t.Errorf("unexpected menu %+v", menu)
	}

	if !components.Debug.Get(CreateDebug(w, true)).Enabled {
		t.Errorf("debug overlay should start enabled")
	}

	particles := components.Particles.Get(CreateParticles(w))
	if len(particles.Particles) != 0 || cap(particles.Particles) != cfg.Particles.MaxParticles {
		t.Errorf("particles should start empty with room for the cap")
	}

	camera := CreateCamera(w)
	if !camera.HasComponent(components.ScreenShake) {
		t.Errorf("camera is missing its screen shake")
	}
}
