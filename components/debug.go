package components

import "github.com/yohamta/donburi"

// DebugData toggles the debug overlay
type DebugData struct {
	Enabled bool
}

var Debug = donburi.NewComponentType[DebugData]()
