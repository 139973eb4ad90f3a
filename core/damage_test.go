package core

import (
	"math"
	"testing"

	"github.com/automoto/slingshot/components"
	cfg "github.com/automoto/slingshot/config"
	"github.com/automoto/slingshot/physics"
	"github.com/automoto/slingshot/shared/leveldata"
	"github.com/automoto/slingshot/shared/messages"
)

func damageLevel() leveldata.Level {
	return leveldata.Level{
		Name:        "damage",
		Projectiles: 1,
		Targets:     []leveldata.TargetSpawn{{X: 500, Y: 428}},
		Blocks:      []leveldata.BlockSpec{{X: 700, Y: 420, W: 20, H: 60, Material: "wood"}},
	}
}

// hit builds a collision where body moves at speed along x against an
// unlinked static body.
func hit(body *physics.Body, speed, mass float64) physics.Collision {
	wall := physics.NewRect(0, 0, 10, 10, physics.BodyOptions{Static: true})
	return physics.Collision{
		A: physics.BodyState{Body: body, X: body.X, Y: body.Y, VelX: speed, Mass: mass},
		B: physics.BodyState{Body: wall, Mass: math.Inf(1)},
	}
}

func countEvents[T messages.Event](events []messages.Event) int {
	n := 0
	for _, ev := range events {
		if _, ok := ev.(T); ok {
			n++
		}
	}
	return n
}

func TestTargetDamageAndSingleRemoval(t *testing.T) {
	store, _, _ := newTestStore(damageLevel())
	targets, _, _ := store.Load()
	target := targets[0]
	body := components.Body.Get(target).Body
	r := NewResolver(store)

	// impact 3: health 2 -> 0.5
	events := r.Resolve([]physics.Collision{hit(body, 3, 1)})
	if h := components.Health.Get(target).Current; math.Abs(h-0.5) > 1e-9 {
		t.Fatalf("health = %v after impact 3, want 0.5", h)
	}
	if countEvents[messages.ImpactEvent](events) != 1 {
		t.Fatalf("impact above 1.5 should emit an impact cue")
	}
	if countEvents[messages.ScreenShakeEvent](events) != 0 {
		t.Fatalf("impact of exactly 3 must not shake")
	}
	if ev := events[0].(messages.ImpactEvent); ev.Particles != 6 {
		t.Fatalf("particles = %d, want 6", ev.Particles)
	}

	// impact 3 again: health 0.5 -> -1, removed
	events = r.Resolve([]physics.Collision{hit(body, 3, 1), hit(body, 3, 1)})
	if countEvents[messages.TargetDestroyedEvent](events) != 1 {
		t.Fatalf("target must be destroyed exactly once, events: %v", events)
	}
	if store.TargetCount() != 0 || store.HasTarget(target) {
		t.Fatalf("destroyed target still live")
	}
	if countEvents[messages.ScreenShakeEvent](events) != 1 {
		t.Fatalf("destroying a target should shake once")
	}

	// a later batch referencing the removed body is ignored
	if target.Valid() {
		t.Fatalf("destroyed target entry still valid")
	}
	events = r.Resolve([]physics.Collision{hit(body, 10, 1)})
	if countEvents[messages.TargetDestroyedEvent](events) != 0 {
		t.Fatalf("removed target destroyed again")
	}
	if store.TargetCount() != 0 {
		t.Fatalf("target count = %d after a stale hit, want 0", store.TargetCount())
	}
}

func TestWeakImpactsDealNoDamage(t *testing.T) {
	store, _, _ := newTestStore(damageLevel())
	targets, _, _ := store.Load()
	target := targets[0]
	body := components.Body.Get(target).Body
	r := NewResolver(store)

	events := r.Resolve([]physics.Collision{hit(body, 1.4, 1)})
	if len(events) != 0 {
		t.Fatalf("weak impact should not emit events, got %v", events)
	}
	if h := components.Health.Get(target); h.Current != h.Max {
		t.Fatalf("weak impact must not damage, health %v", h.Current)
	}

	// exactly at the threshold: damage but no cue
	events = r.Resolve([]physics.Collision{hit(body, 1.5, 1)})
	if len(events) != 0 {
		t.Fatalf("impact of exactly 1.5 should not emit a cue, got %v", events)
	}
	if h := components.Health.Get(target).Current; math.Abs(h-1.25) > 1e-9 {
		t.Fatalf("health = %v, want 1.25", h)
	}
}

func TestBlockDestroyed(t *testing.T) {
	store, _, _ := newTestStore(damageLevel())
	_, blocks, _ := store.Load()
	block := blocks[0]
	body := components.Body.Get(block).Body
	r := NewResolver(store)

	events := r.Resolve([]physics.Collision{hit(body, 6, 1)})

	if countEvents[messages.BlockDestroyedEvent](events) != 1 {
		t.Fatalf("impact 6 should destroy a wood block")
	}
	var shake messages.ScreenShakeEvent
	for _, ev := range events {
		switch e := ev.(type) {
		case messages.ScreenShakeEvent:
			shake = e
		case messages.BlockDestroyedEvent:
			if e.Material != cfg.MaterialWood || e.Particles != 10 {
				t.Errorf("unexpected block destroyed event %+v", e)
			}
		}
	}
	if shake.Intensity != 3 || shake.DurationMs != 150 {
		t.Fatalf("shake = %+v, want intensity 3 for 150ms", shake)
	}
	if store.BlockCount() != 0 {
		t.Fatalf("block should be removed")
	}
}

func TestHealthNeverIncreases(t *testing.T) {
	store, _, _ := newTestStore(damageLevel())
	_, blocks, _ := store.Load()
	block := blocks[0]
	body := components.Body.Get(block).Body
	r := NewResolver(store)

	prev := components.Health.Get(block).Current
	for _, speed := range []float64{0, 1, 1.6, 0.2, 2} {
		r.Resolve([]physics.Collision{hit(body, speed, 1)})
		cur := components.Health.Get(block).Current
		if cur > prev {
			t.Fatalf("health increased from %v to %v", prev, cur)
		}
		prev = cur
	}
}

func TestShakeCapped(t *testing.T) {
	store, _, _ := newTestStore(damageLevel())
	store.Load()
	r := NewResolver(store)

	a := physics.NewCircle(0, 0, 10, physics.BodyOptions{Density: 1})
	b := physics.NewCircle(0, 0, 10, physics.BodyOptions{Density: 1})
	events := r.Resolve([]physics.Collision{{
		A: physics.BodyState{Body: a, VelX: 100, Mass: 1},
		B: physics.BodyState{Body: b, Mass: 1},
	}})

	for _, ev := range events {
		if s, ok := ev.(messages.ScreenShakeEvent); ok && s.Intensity != 15 {
			t.Fatalf("shake intensity = %v, want cap 15", s.Intensity)
		}
		if i, ok := ev.(messages.ImpactEvent); ok && i.Particles != 12 {
			t.Fatalf("particles = %d, want cap 12", i.Particles)
		}
	}
	if len(events) != 2 {
		t.Fatalf("expected impact and shake events for unlinked bodies, got %d", len(events))
	}
}
