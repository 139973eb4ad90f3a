package components

import "github.com/yohamta/donburi"

// MenuData stores the current state of the level select menu
type MenuData struct {
	SelectedIndex int
	LevelNames    []string
	Cleared       []bool // read from saved progress when the menu opens
	Chosen        bool
}

// Menu is the component type for level select state
var Menu = donburi.NewComponentType[MenuData]()
