package core

import (
	"github.com/automoto/slingshot/components"
	cfg "github.com/automoto/slingshot/config"
	"github.com/automoto/slingshot/physics"
	"github.com/automoto/slingshot/shared/gamemath"
	"github.com/yohamta/donburi"
)

// DragState is the gesture state of the slingshot
type DragState int

const (
	DragIdle DragState = iota
	DragDragging
)

// Point is a position on the playfield.
type Point struct {
	X, Y float64
}

// SlingshotView is everything a renderer needs to draw the slingshot.
type SlingshotView struct {
	Anchor     Point
	BandLeft   Point
	BandRight  Point
	BandEnd    Point // where both bands meet
	Loaded     bool  // a projectile is mounted
	Dragging   bool
	Trajectory []gamemath.TrajectoryPoint
}

// Slingshot turns pointer gestures on the mounted projectile into a launch.
type Slingshot struct {
	AnchorX, AnchorY float64

	projectile *donburi.Entry
	state      DragState
	dragX      float64
	dragY      float64
}

func NewSlingshot() *Slingshot {
	return &Slingshot{
		AnchorX: cfg.Slingshot.AnchorX,
		AnchorY: cfg.Slingshot.AnchorY,
	}
}

// Bind mounts a projectile: it is moved to the anchor, stopped and pinned.
func (s *Slingshot) Bind(e *donburi.Entry) {
	s.projectile = e
	s.state = DragIdle
	s.dragX, s.dragY = s.AnchorX, s.AnchorY

	if body := s.body(); body != nil {
		body.SetPosition(s.AnchorX, s.AnchorY)
		body.SetStatic(true)
	}
}

// Projectile returns the mounted projectile, if any.
func (s *Slingshot) Projectile() *donburi.Entry {
	return s.projectile
}

func (s *Slingshot) State() DragState {
	return s.state
}

func (s *Slingshot) Dragging() bool {
	return s.state == DragDragging
}

// PointerDown starts a drag when the pointer lands on the mounted projectile.
func (s *Slingshot) PointerDown(x, y float64) bool {
	if s.state == DragDragging {
		return false
	}
	body := s.body()
	if body == nil {
		return false
	}
	bx, by := body.Position()
	if !gamemath.WithinRadius(x, y, bx, by, cfg.Slingshot.CaptureRadius) {
		return false
	}
	s.state = DragDragging
	s.dragX, s.dragY = bx, by
	return true
}

// PointerMove pulls the projectile, clamped to the maximum drag distance and
// never past the anchor.
func (s *Slingshot) PointerMove(x, y float64) {
	if s.state != DragDragging {
		return
	}
	body := s.body()
	if body == nil {
		s.state = DragIdle
		return
	}
	s.dragX, s.dragY = gamemath.ClampDrag(s.AnchorX, s.AnchorY, x, y, cfg.Slingshot.MaxDragDistance)
	body.SetPosition(s.dragX, s.dragY)
	body.SetVelocity(0, 0)
}

// PointerUp releases the drag. A pull too weak to launch snaps the projectile
// back to the anchor. Otherwise the projectile is released with the launch
// velocity, the slingshot lets go of it and it is returned.
func (s *Slingshot) PointerUp() (*donburi.Entry, bool) {
	if s.state != DragDragging {
		return nil, false
	}
	s.state = DragIdle

	body := s.body()
	if body == nil {
		return nil, false
	}

	vx, vy := s.launchVelocity()
	if !gamemath.ExceedsThreshold(vx, vy, cfg.Slingshot.ReleaseThreshold) {
		s.dragX, s.dragY = s.AnchorX, s.AnchorY
		body.SetPosition(s.AnchorX, s.AnchorY)
		body.SetStatic(true)
		return nil, false
	}

	body.SetStatic(false)
	body.SetVelocity(vx, vy)

	launched := s.projectile
	s.projectile = nil
	return launched, true
}

// Cancel drops any drag and lets go of the projectile without launching.
func (s *Slingshot) Cancel() {
	s.state = DragIdle
	s.projectile = nil
	s.dragX, s.dragY = s.AnchorX, s.AnchorY
}

// DragPosition is the clamped pointer position of the current drag.
func (s *Slingshot) DragPosition() (float64, float64) {
	return s.dragX, s.dragY
}

// View returns the drawing state of the slingshot.
func (s *Slingshot) View() SlingshotView {
	v := SlingshotView{
		Anchor:    Point{X: s.AnchorX, Y: s.AnchorY},
		BandLeft:  Point{X: s.AnchorX - cfg.Slingshot.BandOffsetX, Y: s.AnchorY + cfg.Slingshot.BandOffsetY},
		BandRight: Point{X: s.AnchorX + cfg.Slingshot.BandOffsetX, Y: s.AnchorY + cfg.Slingshot.BandOffsetY},
		BandEnd:   Point{X: s.AnchorX, Y: s.AnchorY},
		Dragging:  s.state == DragDragging,
	}

	body := s.body()
	if body == nil {
		return v
	}
	v.Loaded = true

	if v.Dragging {
		v.BandEnd = Point{X: s.dragX, Y: s.dragY}
		vx, vy := s.launchVelocity()
		v.Trajectory = gamemath.Trajectory(s.dragX, s.dragY, vx, vy,
			cfg.Slingshot.TrajectoryPoints,
			cfg.Slingshot.TrajectoryStep,
			cfg.Slingshot.TrajectoryGravity,
			cfg.Slingshot.TrajectoryRadius,
			cfg.Slingshot.TrajectoryShrink,
		)
	} else {
		x, y := body.Position()
		v.BandEnd = Point{X: x, Y: y}
	}
	return v
}

func (s *Slingshot) launchVelocity() (float64, float64) {
	return gamemath.LaunchVelocity(s.AnchorX, s.AnchorY, s.dragX, s.dragY, cfg.Slingshot.PowerMultiplier)
}

func (s *Slingshot) body() *physics.Body {
	if s.projectile == nil || !s.projectile.Valid() {
		return nil
	}
	return components.Body.Get(s.projectile).Body
}
