package config

// ActionID represents a logical game action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionRestart
	ActionMute
	ActionDebug
	ActionPause
	ActionMenuBack
	ActionMenuUp
	ActionMenuDown
	ActionMenuLeft
	ActionMenuRight
	ActionMenuSelect
	ActionCount // Must be last - used for array sizing
)

// InputBinding represents the keys bound to an action.
// Keys are ebiten key names (see ebiten.Key.String) so the config stays
// free of the rendering backend.
type InputBinding struct {
	Keys []string
}

// InputConfig holds all input mappings
type InputConfig struct {
	Bindings map[ActionID]InputBinding
}

// Input is the global input configuration
var Input InputConfig

func init() {
	Input = InputConfig{
		Bindings: map[ActionID]InputBinding{
			ActionRestart: {
				Keys: []string{"R"},
			},
			ActionMute: {
				Keys: []string{"M"},
			},
			ActionDebug: {
				Keys: []string{"F1"},
			},
			ActionPause: {
				Keys: []string{"P"},
			},
			ActionMenuUp: {
				Keys: []string{"ArrowUp", "W"},
			},
			ActionMenuDown: {
				Keys: []string{"ArrowDown", "S"},
			},
			ActionMenuBack: {
				Keys: []string{"Escape", "Backspace"},
			},
			ActionMenuLeft: {
				Keys: []string{"ArrowLeft", "A"},
			},
			ActionMenuRight: {
				Keys: []string{"ArrowRight", "D"},
			},
			ActionMenuSelect: {
				Keys: []string{"Enter", "Space"},
			},
		},
	}
}
