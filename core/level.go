package core

import (
	"log"
	"slices"
	"sort"

	"github.com/automoto/slingshot/components"
	"github.com/automoto/slingshot/physics"
	"github.com/automoto/slingshot/shared/leveldata"
	"github.com/automoto/slingshot/systems/factory"
	"github.com/yohamta/donburi"
)

// LevelStore owns the live targets and blocks of the current level and the
// remaining projectile counter.
type LevelStore struct {
	world donburi.World
	space *physics.World
	level leveldata.Level

	targets   map[donburi.Entity]*donburi.Entry
	blocks    map[donburi.Entity]*donburi.Entry
	remaining int
}

// NewLevelStore keeps its own copy of the level layout, so later changes to
// the caller's descriptor do not leak into Reset.
func NewLevelStore(w donburi.World, space *physics.World, level leveldata.Level) *LevelStore {
	level.Targets = slices.Clone(level.Targets)
	level.Blocks = slices.Clone(level.Blocks)
	return &LevelStore{
		world:   w,
		space:   space,
		level:   level,
		targets: make(map[donburi.Entity]*donburi.Entry),
		blocks:  make(map[donburi.Entity]*donburi.Entry),
	}
}

func (s *LevelStore) Level() leveldata.Level {
	return s.level
}

// Load creates every target and block of the level, adds their bodies to the
// physics world and resets the projectile counter. Returns the live entries.
func (s *LevelStore) Load() (targets, blocks []*donburi.Entry, remaining int) {
	s.remaining = s.level.Projectiles

	ts, bs := factory.SpawnLevel(s.world, &s.level)
	for _, e := range ts {
		s.space.Add(components.Body.Get(e).Body)
		s.targets[e.Entity()] = e
	}
	for _, e := range bs {
		s.space.Add(components.Body.Get(e).Body)
		s.blocks[e.Entity()] = e
	}

	log.Printf("Loaded level %s: %d targets, %d blocks, %d projectiles",
		s.level.Name, len(ts), len(bs), s.remaining)

	return s.Targets(), s.Blocks(), s.remaining
}

// RemoveTarget removes a live target from the store, the physics world and
// the entity world. Returns false if it was not live.
func (s *LevelStore) RemoveTarget(e *donburi.Entry) bool {
	if e == nil {
		return false
	}
	if _, ok := s.targets[e.Entity()]; !ok {
		return false
	}
	delete(s.targets, e.Entity())
	s.destroy(e)
	return true
}

// RemoveBlock removes a live block. Returns false if it was not live.
func (s *LevelStore) RemoveBlock(e *donburi.Entry) bool {
	if e == nil {
		return false
	}
	if _, ok := s.blocks[e.Entity()]; !ok {
		return false
	}
	delete(s.blocks, e.Entity())
	s.destroy(e)
	return true
}

func (s *LevelStore) destroy(e *donburi.Entry) {
	if !e.Valid() {
		return
	}
	if e.HasComponent(components.Body) {
		s.space.Remove(components.Body.Get(e).Body)
	}
	s.world.Remove(e.Entity())
}

// UseProjectile consumes one projectile and returns the new count. The
// counter never goes below zero; ok is false when nothing was left.
func (s *LevelStore) UseProjectile() (remaining int, ok bool) {
	if s.remaining <= 0 {
		log.Printf("Warning: no projectiles left in level %s", s.level.Name)
		return 0, false
	}
	s.remaining--
	return s.remaining, true
}

// Reset removes every live body and loads the level again.
func (s *LevelStore) Reset() (targets, blocks []*donburi.Entry, remaining int) {
	for ent, e := range s.targets {
		delete(s.targets, ent)
		s.destroy(e)
	}
	for ent, e := range s.blocks {
		delete(s.blocks, ent)
		s.destroy(e)
	}
	return s.Load()
}

// Targets returns the live targets ordered by entity.
func (s *LevelStore) Targets() []*donburi.Entry {
	return sortedEntries(s.targets)
}

// Blocks returns the live blocks ordered by entity.
func (s *LevelStore) Blocks() []*donburi.Entry {
	return sortedEntries(s.blocks)
}

func (s *LevelStore) TargetCount() int { return len(s.targets) }
func (s *LevelStore) BlockCount() int { return len(s.blocks) }
func (s *LevelStore) Remaining() int { return s.remaining }

func (s *LevelStore) HasTarget(e *donburi.Entry) bool {
	if e == nil {
		return false
	}
	_, ok := s.targets[e.Entity()]
	return ok
}

func (s *LevelStore) HasBlock(e *donburi.Entry) bool {
	if e == nil {
		return false
	}
	_, ok := s.blocks[e.Entity()]
	return ok
}

func sortedEntries(m map[donburi.Entity]*donburi.Entry) []*donburi.Entry {
	out := make([]*donburi.Entry, 0, len(m))
	for _, e := range m {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Entity() < out[j].Entity()
	})
	return out
}
