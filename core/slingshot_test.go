package core

import (
	"math"
	"testing"

	"github.com/automoto/slingshot/components"
	"github.com/automoto/slingshot/physics"
	"github.com/automoto/slingshot/systems/factory"
	"github.com/yohamta/donburi"
)

func newBoundSlingshot(t *testing.T) (*Slingshot, *donburi.Entry, *physics.Body) {
	t.Helper()
	w := donburi.NewWorld()
	e := factory.CreateProjectile(w, 400, 100)
	body := components.Body.Get(e).Body
	body.SetVelocity(5, 5)

	s := NewSlingshot()
	s.Bind(e)
	return s, e, body
}

func TestBindMountsProjectile(t *testing.T) {
	s, e, body := newBoundSlingshot(t)

	if s.Projectile() != e {
		t.Fatalf("bound projectile not reported")
	}
	if x, y := body.Position(); x != 150 || y != 350 {
		t.Fatalf("projectile at (%v, %v), want anchor (150, 350)", x, y)
	}
	if !body.Static {
		t.Fatalf("mounted projectile must be static")
	}
	if vx, vy := body.Velocity(); vx != 0 || vy != 0 {
		t.Fatalf("mounted projectile must not move")
	}
}

func TestPointerDownCaptureRadius(t *testing.T) {
	s, _, _ := newBoundSlingshot(t)

	if s.PointerDown(300, 350) {
		t.Fatalf("pointer far from the projectile must not start a drag")
	}
	if s.Dragging() {
		t.Fatalf("state should stay idle")
	}
	if !s.PointerDown(160, 360) {
		t.Fatalf("pointer on the projectile should start a drag")
	}
	if !s.Dragging() {
		t.Fatalf("state should be dragging")
	}
}

func TestPointerDownWithoutProjectile(t *testing.T) {
	s := NewSlingshot()
	if s.PointerDown(150, 350) {
		t.Fatalf("drag must not start without a projectile")
	}
	s.PointerMove(100, 350)
	if _, ok := s.PointerUp(); ok {
		t.Fatalf("release without projectile must not launch")
	}
}

func TestPointerMoveClamps(t *testing.T) {
	s, _, body := newBoundSlingshot(t)

	s.PointerMove(10, 10)
	if x, y := body.Position(); x != 150 || y != 350 {
		t.Fatalf("move without drag must be ignored, projectile at (%v, %v)", x, y)
	}

	s.PointerDown(150, 350)
	s.PointerMove(-500, 350)
	x, y := body.Position()
	if math.Abs(x-30) > 1e-9 || math.Abs(y-350) > 1e-9 {
		t.Fatalf("drag should clamp to 120px, got (%v, %v)", x, y)
	}

	s.PointerMove(400, 300)
	x, _ = body.Position()
	if x > 150 {
		t.Fatalf("drag must not pass the anchor, x=%v", x)
	}
	if !body.Static {
		t.Fatalf("dragged projectile stays static")
	}
}

func TestZeroOffsetReleaseDoesNotLaunch(t *testing.T) {
	s, e, body := newBoundSlingshot(t)

	s.PointerDown(150, 350)
	s.PointerMove(148, 351)
	launched, ok := s.PointerUp()
	if ok || launched != nil {
		t.Fatalf("tiny pull must not launch")
	}
	if s.Dragging() || s.Projectile() != e {
		t.Fatalf("projectile should stay mounted and idle")
	}
	if x, y := body.Position(); x != 150 || y != 350 || !body.Static {
		t.Fatalf("projectile should snap back to the anchor, got (%v, %v) static=%v", x, y, body.Static)
	}
}

func TestReleaseLaunches(t *testing.T) {
	s, e, body := newBoundSlingshot(t)

	s.PointerDown(150, 350)
	s.PointerMove(30, 350)
	launched, ok := s.PointerUp()
	if !ok || launched != e {
		t.Fatalf("full pull should launch the mounted projectile")
	}
	if body.Static {
		t.Fatalf("launched projectile must be dynamic")
	}
	vx, vy := body.Velocity()
	if math.Abs(vx-18) > 1e-9 || math.Abs(vy) > 1e-9 {
		t.Fatalf("launch velocity = (%v, %v), want (18, 0)", vx, vy)
	}
	if s.Projectile() != nil || s.Dragging() {
		t.Fatalf("slingshot should let go of the projectile")
	}
	if _, ok := s.PointerUp(); ok {
		t.Fatalf("a second release must not launch again")
	}
}

func TestCancelDetaches(t *testing.T) {
	s, _, _ := newBoundSlingshot(t)
	s.PointerDown(150, 350)
	s.Cancel()
	if s.Dragging() || s.Projectile() != nil {
		t.Fatalf("Cancel should drop the drag and the projectile")
	}
}

func TestView(t *testing.T) {
	s, _, _ := newBoundSlingshot(t)

	v := s.View()
	if !v.Loaded || v.Dragging || len(v.Trajectory) != 0 {
		t.Fatalf("idle view should be loaded without trajectory: %+v", v)
	}
	if v.BandLeft != (Point{X: 130, Y: 295}) || v.BandRight != (Point{X: 170, Y: 295}) {
		t.Fatalf("unexpected band anchors %+v %+v", v.BandLeft, v.BandRight)
	}
	if v.BandEnd != (Point{X: 150, Y: 350}) {
		t.Fatalf("idle band end should be the projectile, got %+v", v.BandEnd)
	}

	s.PointerDown(150, 350)
	s.PointerMove(90, 380)
	v = s.View()
	if !v.Dragging || len(v.Trajectory) != 15 {
		t.Fatalf("dragging view should carry 15 trajectory points, got %d", len(v.Trajectory))
	}
	if v.BandEnd != (Point{X: 90, Y: 380}) {
		t.Fatalf("band end should follow the drag, got %+v", v.BandEnd)
	}
	if v.Trajectory[1].X <= 90 {
		t.Fatalf("trajectory should head right of the drag point")
	}

	empty := NewSlingshot().View()
	if empty.Loaded {
		t.Fatalf("slingshot without projectile is not loaded")
	}
}
