package config

import "strings"

// GameStateID is the turn state of a game session
type GameStateID int

const (
	GameReady GameStateID = iota
	GameFlying
	GameSettling
	GameWon
	GameLost
)

func (s GameStateID) String() string {
	switch s {
	case GameReady:
		return "ready"
	case GameFlying:
		return "flying"
	case GameSettling:
		return "settling"
	case GameWon:
		return "won"
	case GameLost:
		return "lost"
	}
	return "unknown"
}

// Over reports whether the session has reached a terminal state.
func (s GameStateID) Over() bool {
	return s == GameWon || s == GameLost
}

// EntityKind identifies the gameplay variant of a body
type EntityKind int

const (
	KindNone EntityKind = iota
	KindProjectile
	KindTarget
	KindBlock
	KindGround
	KindWall
)

func (k EntityKind) String() string {
	switch k {
	case KindProjectile:
		return "projectile"
	case KindTarget:
		return "target"
	case KindBlock:
		return "block"
	case KindGround:
		return "ground"
	case KindWall:
		return "wall"
	}
	return "none"
}

// MaterialID is the material of a block
type MaterialID int

const (
	MaterialWood MaterialID = iota
	MaterialStone
	MaterialMetal
)

func (m MaterialID) String() string {
	switch m {
	case MaterialStone:
		return "stone"
	case MaterialMetal:
		return "metal"
	}
	return "wood"
}

// ParseMaterial maps a material name to its ID. Unknown names fall back to wood.
func ParseMaterial(name string) (MaterialID, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "wood":
		return MaterialWood, true
	case "stone":
		return MaterialStone, true
	case "metal":
		return MaterialMetal, true
	}
	return MaterialWood, false
}

// MaterialFor returns the config of a material, falling back to wood.
func MaterialFor(m MaterialID) MaterialConfig {
	if mc, ok := Block.Materials[m]; ok {
		return mc
	}
	return Block.Materials[MaterialWood]
}
