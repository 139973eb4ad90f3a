package physics

import (
	"math"
	"sort"

	"github.com/automoto/slingshot/config"
	"github.com/solarlune/resolv"
)

// Every body carries this resolv tag so broad-phase queries only see bodies.
const bodyTag = "body"

// Largest distance a body travels per sub-step. Keeps fast projectiles from
// skipping over thin blocks between broad-phase cells.
const maxMovePerSubstep = 8.0

const epsilon = 1e-6

// Config contains the settings of a physics world.
type Config struct {
	Width, Height float64
	Margin        float64 // extra space around the playfield covered by the broad-phase
	CellSize      int

	Gravity      float64
	AirFriction  float64
	RestingSpeed float64
	ContactSlop  float64
}

// DefaultConfig returns the world settings from the game configuration.
func DefaultConfig() Config {
	return Config{
		Width:        float64(config.C.Width),
		Height:       float64(config.C.Height),
		Margin:       config.Physics.SpaceMargin,
		CellSize:     config.Physics.CellSize,
		Gravity:      config.Physics.Gravity,
		AirFriction:  config.Physics.AirFriction,
		RestingSpeed: config.Physics.RestingSpeed,
		ContactSlop:  config.Physics.ContactSlop,
	}
}

// BodyState is a snapshot of a body taken at the start of a step, before
// any contact impulses were applied.
type BodyState struct {
	Body       *Body
	X, Y       float64
	VelX, VelY float64
	Mass       float64
}

// Collision is a pair of bodies that started touching during a step.
type Collision struct {
	A, B BodyState
}

type pairKey struct {
	a, b int
}

func keyOf(a, b *Body) pairKey {
	if a.id > b.id {
		a, b = b, a
	}
	return pairKey{a: a.id, b: b.id}
}

// World is a rigid-body world. The resolv space is the broad-phase; contacts
// are resolved per axis with restitution and friction impulses.
type World struct {
	cfg      Config
	space    *resolv.Space
	bodies   map[int]*Body
	nextID   int
	contacts map[pairKey]bool
}

func NewWorld(cfg Config) *World {
	if cfg.CellSize <= 0 {
		cfg.CellSize = 16
	}
	w := int(cfg.Width + cfg.Margin*2)
	h := int(cfg.Height + cfg.Margin*2)
	return &World{
		cfg:      cfg,
		space:    resolv.NewSpace(w, h, cfg.CellSize, cfg.CellSize),
		bodies:   make(map[int]*Body),
		contacts: make(map[pairKey]bool),
	}
}

func (w *World) Config() Config {
	return w.cfg
}

// Add inserts bodies into the world. A body that belongs to another world is
// moved; adding a body twice is a no-op.
func (w *World) Add(bodies ...*Body) {
	for _, b := range bodies {
		if b == nil || b.world == w {
			continue
		}
		if b.world != nil {
			b.world.Remove(b)
		}

		w.nextID++
		b.id = w.nextID

		tags := append([]string{bodyTag}, b.tags...)
		obj := resolv.NewObject(b.X-b.W/2+w.cfg.Margin, b.Y-b.H/2+w.cfg.Margin, b.W, b.H, tags...)
		obj.SetShape(resolv.NewRectangle(0, 0, b.W, b.H))
		obj.Data = b

		b.obj = obj
		b.world = w
		w.bodies[b.id] = b
		w.space.Add(obj)
	}
}

// Remove takes a body out of the world. Returns false if it was not present.
func (w *World) Remove(b *Body) bool {
	if b == nil || b.world != w {
		return false
	}
	w.space.Remove(b.obj)
	delete(w.bodies, b.id)
	for k := range w.contacts {
		if k.a == b.id || k.b == b.id {
			delete(w.contacts, k)
		}
	}
	b.obj = nil
	b.world = nil
	return true
}

func (w *World) Contains(b *Body) bool {
	return b != nil && b.world == w
}

// Bodies returns the bodies in insertion order.
func (w *World) Bodies() []*Body {
	out := make([]*Body, 0, len(w.bodies))
	for _, b := range w.bodies {
		out = append(out, b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].id < out[j].id })
	return out
}

func (w *World) Len() int {
	return len(w.bodies)
}

// Clear removes every body.
func (w *World) Clear() {
	for _, b := range w.Bodies() {
		w.Remove(b)
	}
}

// Step advances the world by one fixed step and returns the pairs that
// started touching during it.
func (w *World) Step() []Collision {
	all := w.Bodies()

	var dynamic []*Body
	for _, b := range all {
		if !b.Static {
			dynamic = append(dynamic, b)
		}
	}

	for _, b := range dynamic {
		b.VelY += w.cfg.Gravity
		b.VelX *= 1 - w.cfg.AirFriction
		b.VelY *= 1 - w.cfg.AirFriction
	}

	pre := make(map[int]BodyState, len(all))
	for _, b := range all {
		pre[b.id] = BodyState{Body: b, X: b.X, Y: b.Y, VelX: b.VelX, VelY: b.VelY, Mass: b.Mass()}
	}

	for _, b := range dynamic {
		w.move(b)
	}

	return w.collectStarts(dynamic, pre)
}

func (w *World) move(b *Body) {
	steps := int(math.Ceil(math.Max(math.Abs(b.VelX), math.Abs(b.VelY)) / maxMovePerSubstep))
	if steps < 1 {
		steps = 1
	}
	for i := 0; i < steps; i++ {
		w.moveAxis(b, b.VelX/float64(steps), true)
		w.moveAxis(b, b.VelY/float64(steps), false)
	}
	w.separate(b)
}

// moveAxis moves b by d along one axis, stopping at the first body in the way.
func (w *World) moveAxis(b *Body, d float64, horizontal bool) {
	if d == 0 {
		return
	}

	dx, dy := 0.0, d
	if horizontal {
		dx, dy = d, 0
	}

	allowed := d
	var hit *Body
	if check := b.obj.Check(dx, dy, bodyTag); check != nil {
		minX, minY, maxX, maxY := b.Bounds()
		for _, o := range check.Objects {
			other, ok := o.Data.(*Body)
			if !ok || other == b {
				continue
			}
			oMinX, oMinY, oMaxX, oMaxY := other.Bounds()

			// Near and far edges along the movement axis, cross-axis extents.
			near, far, oNear, oFar := minX, maxX, oMinX, oMaxX
			cMin, cMax, ocMin, ocMax := minY, maxY, oMinY, oMaxY
			if !horizontal {
				near, far, oNear, oFar = minY, maxY, oMinY, oMaxY
				cMin, cMax, ocMin, ocMax = minX, maxX, oMinX, oMaxX
			}
			if cMax <= ocMin+epsilon || cMin >= ocMax-epsilon {
				continue
			}

			var gap float64
			if d > 0 {
				if oNear < far-epsilon {
					continue
				}
				gap = oNear - far
			} else {
				if oFar > near+epsilon {
					continue
				}
				gap = oFar - near
			}
			if math.Abs(gap) <= math.Abs(allowed) {
				allowed = gap
				hit = other
			}
		}
	}

	if (d > 0 && allowed < 0) || (d < 0 && allowed > 0) {
		allowed = 0
	}

	if horizontal {
		b.X += allowed
	} else {
		b.Y += allowed
	}
	b.sync()

	if hit != nil {
		w.resolveContact(b, hit, horizontal, math.Copysign(1, d))
	}
}

// resolveContact applies a normal impulse with restitution and a friction
// impulse along the tangent between a and c.
func (w *World) resolveContact(a, c *Body, horizontal bool, dir float64) {
	ima, imc := a.inverseMass(), c.inverseMass()
	if ima+imc == 0 {
		return
	}

	va, vc, ta, tc := a.VelX, c.VelX, a.VelY, c.VelY
	if !horizontal {
		va, vc, ta, tc = a.VelY, c.VelY, a.VelX, c.VelX
	}

	rel := va - vc
	if rel*dir <= 0 {
		return
	}

	e := math.Max(a.Restitution, c.Restitution)
	mu := math.Min(a.Friction, c.Friction)

	j := -(1 + e) * rel / (ima + imc)
	va += j * ima
	vc -= j * imc

	jt := -(ta - tc) / (ima + imc)
	limit := mu * math.Abs(j)
	jt = math.Max(-limit, math.Min(limit, jt))
	ta += jt * ima
	tc -= jt * imc

	if math.Abs(va) < w.cfg.RestingSpeed {
		va = 0
	}
	if !c.Static && math.Abs(vc) < w.cfg.RestingSpeed {
		vc = 0
	}

	if horizontal {
		a.VelX, c.VelX, a.VelY, c.VelY = va, vc, ta, tc
	} else {
		a.VelY, c.VelY, a.VelX, c.VelX = va, vc, ta, tc
	}
}

// separate pushes b out of any body it still overlaps, for example after a
// teleport into a block.
func (w *World) separate(b *Body) {
	check := b.obj.Check(0, 0, bodyTag)
	if check == nil {
		return
	}
	for _, o := range check.Objects {
		other, ok := o.Data.(*Body)
		if !ok || other == b {
			continue
		}
		minX, minY, maxX, maxY := b.Bounds()
		oMinX, oMinY, oMaxX, oMaxY := other.Bounds()
		ox := math.Min(maxX-oMinX, oMaxX-minX)
		oy := math.Min(maxY-oMinY, oMaxY-minY)
		if ox <= epsilon || oy <= epsilon {
			continue
		}

		share := 1.0
		if !other.Static {
			share = 0.5
		}

		if ox < oy {
			dir := 1.0
			if b.X < other.X {
				dir = -1
			}
			b.X += dir * ox * share
			if b.VelX*dir < 0 {
				b.VelX = 0
			}
			if !other.Static {
				other.X -= dir * ox * share
				other.sync()
			}
		} else {
			dir := -1.0
			if b.Y > other.Y {
				dir = 1
			}
			b.Y += dir * oy * share
			if b.VelY*dir < 0 {
				b.VelY = 0
			}
			if !other.Static {
				other.Y -= dir * oy * share
				other.sync()
			}
		}
		b.sync()
	}
}

func (w *World) collectStarts(dynamic []*Body, pre map[int]BodyState) []Collision {
	s := w.cfg.ContactSlop
	probes := [4][2]float64{{s, 0}, {-s, 0}, {0, s}, {0, -s}}

	current := make(map[pairKey]bool, len(w.contacts))
	var out []Collision

	for _, b := range dynamic {
		if b.world != w {
			continue
		}
		for _, p := range probes {
			check := b.obj.Check(p[0], p[1], bodyTag)
			if check == nil {
				continue
			}
			for _, o := range check.Objects {
				other, ok := o.Data.(*Body)
				if !ok || other == b || !touching(b, other, s) {
					continue
				}
				k := keyOf(b, other)
				if current[k] {
					continue
				}
				current[k] = true
				if w.contacts[k] {
					continue
				}
				sa, okA := pre[k.a]
				sb, okB := pre[k.b]
				if !okA || !okB {
					continue
				}
				out = append(out, Collision{A: sa, B: sb})
			}
		}
	}

	w.contacts = current

	sort.Slice(out, func(i, j int) bool {
		if out[i].A.Body.id != out[j].A.Body.id {
			return out[i].A.Body.id < out[j].A.Body.id
		}
		return out[i].B.Body.id < out[j].B.Body.id
	})
	return out
}

func touching(a, b *Body, slop float64) bool {
	aMinX, aMinY, aMaxX, aMaxY := a.Bounds()
	bMinX, bMinY, bMaxX, bMaxY := b.Bounds()
	gapX := math.Max(bMinX-aMaxX, aMinX-bMaxX)
	gapY := math.Max(bMinY-aMaxY, aMinY-bMaxY)
	return gapX <= slop && gapY <= slop
}
