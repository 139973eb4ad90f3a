package physics

import (
	"math"

	"github.com/solarlune/resolv"
)

// Shape is the collision shape of a body.
type Shape int

const (
	ShapeRect Shape = iota
	ShapeCircle
)

// BodyOptions are the material settings of a new body.
type BodyOptions struct {
	Restitution float64
	Friction    float64
	Density     float64
	Static      bool
	Label       string
	Tags        []string
}

// Body is a rigid body in a World. Positions are centers in screen pixels and
// velocities are pixels per step. Bodies do not rotate, and circles collide
// as their bounding box.
type Body struct {
	X, Y       float64
	VelX, VelY float64
	W, H       float64
	Radius     float64
	Shape      Shape

	Restitution float64
	Friction    float64
	Density     float64
	Static      bool
	Label       string

	// Data links the body back to its owner (usually a *donburi.Entry).
	Data interface{}

	tags  []string
	id    int
	obj   *resolv.Object
	world *World
}

// NewCircle creates a circular body centered at (x, y).
func NewCircle(x, y, radius float64, opts BodyOptions) *Body {
	b := newBody(x, y, radius*2, radius*2, opts)
	b.Shape = ShapeCircle
	b.Radius = radius
	return b
}

// NewRect creates a rectangular body centered at (x, y).
func NewRect(x, y, w, h float64, opts BodyOptions) *Body {
	return newBody(x, y, w, h, opts)
}

func newBody(x, y, w, h float64, opts BodyOptions) *Body {
	return &Body{
		X:           x,
		Y:           y,
		W:           w,
		H:           h,
		Restitution: opts.Restitution,
		Friction:    opts.Friction,
		Density:     opts.Density,
		Static:      opts.Static,
		Label:       opts.Label,
		tags:        opts.Tags,
	}
}

// Area is the surface of the body's shape.
func (b *Body) Area() float64 {
	if b.Shape == ShapeCircle {
		return math.Pi * b.Radius * b.Radius
	}
	return b.W * b.H
}

// Mass is density times area. Static bodies have infinite mass.
func (b *Body) Mass() float64 {
	if b.Static {
		return math.Inf(1)
	}
	return b.Density * b.Area()
}

func (b *Body) inverseMass() float64 {
	if b.Static {
		return 0
	}
	m := b.Density * b.Area()
	if m <= 0 {
		return 0
	}
	return 1 / m
}

func (b *Body) Position() (float64, float64) {
	return b.X, b.Y
}

// SetPosition teleports the body and refreshes its broad-phase cells.
func (b *Body) SetPosition(x, y float64) {
	b.X, b.Y = x, y
	b.sync()
}

func (b *Body) Velocity() (float64, float64) {
	return b.VelX, b.VelY
}

func (b *Body) SetVelocity(vx, vy float64) {
	b.VelX, b.VelY = vx, vy
}

// Speed is the length of the velocity vector.
func (b *Body) Speed() float64 {
	return math.Hypot(b.VelX, b.VelY)
}

// SetStatic pins or releases the body. Pinning zeroes its velocity.
func (b *Body) SetStatic(static bool) {
	b.Static = static
	if static {
		b.VelX, b.VelY = 0, 0
	}
}

// InWorld reports whether the body is currently part of a world.
func (b *Body) InWorld() bool {
	return b.world != nil
}

// Bounds returns the axis-aligned bounding box of the body.
func (b *Body) Bounds() (minX, minY, maxX, maxY float64) {
	return b.X - b.W/2, b.Y - b.H/2, b.X + b.W/2, b.Y + b.H/2
}

func (b *Body) sync() {
	if b.obj == nil || b.world == nil {
		return
	}
	b.obj.X = b.X - b.W/2 + b.world.cfg.Margin
	b.obj.Y = b.Y - b.H/2 + b.world.cfg.Margin
	b.obj.Update()
}
