package systems

import (
	"log"

	"github.com/automoto/slingshot/components"
	cfg "github.com/automoto/slingshot/config"
	"github.com/automoto/slingshot/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/yohamta/donburi/ecs"
)

// keyBindings caches the parsed key names of cfg.Input.
var keyBindings map[cfg.ActionID][]ebiten.Key

// Reusable slice for touch IDs to avoid allocations
var touchIDs []ebiten.TouchID

// activeTouch is the touch currently driving the pointer, if any.
var activeTouch ebiten.TouchID
var touchActive bool

func resolveKeyBindings() map[cfg.ActionID][]ebiten.Key {
	if keyBindings != nil {
		return keyBindings
	}
	keyBindings = make(map[cfg.ActionID][]ebiten.Key, len(cfg.Input.Bindings))
	for actionID, binding := range cfg.Input.Bindings {
		for _, name := range binding.Keys {
			var key ebiten.Key
			if err := key.UnmarshalText([]byte(name)); err != nil {
				log.Printf("Warning: unknown key %q bound to action %d: %v", name, actionID, err)
				continue
			}
			keyBindings[actionID] = append(keyBindings[actionID], key)
		}
	}
	return keyBindings
}

// UpdateInput polls raw keyboard, mouse and touch input into the Input
// component. Must run before any system reading actions or the pointer.
func UpdateInput(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)

	// Swap buffers: current becomes previous, then zero out current
	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}

	for actionID, keys := range resolveKeyBindings() {
		for _, key := range keys {
			if ebiten.IsKeyPressed(key) {
				input.Current[actionID] = true
			}
		}
	}

	updatePointer(&input.Pointer)
}

// updatePointer merges the mouse and the first touch into one pointer. A
// touch in progress takes priority over the mouse.
func updatePointer(p *components.PointerData) {
	p.JustPressed = false
	p.JustReleased = false

	if touchActive {
		if inpututil.IsTouchJustReleased(activeTouch) {
			touchActive = false
			p.Pressed = false
			p.JustReleased = true
			return
		}
		x, y := ebiten.TouchPosition(activeTouch)
		p.X, p.Y = float64(x), float64(y)
		return
	}

	touchIDs = inpututil.AppendJustPressedTouchIDs(touchIDs[:0])
	if len(touchIDs) > 0 {
		activeTouch = touchIDs[0]
		touchActive = true
		x, y := ebiten.TouchPosition(activeTouch)
		p.X, p.Y = float64(x), float64(y)
		p.Pressed = true
		p.JustPressed = true
		p.Touch = true
		return
	}

	x, y := ebiten.CursorPosition()
	p.X, p.Y = float64(x), float64(y)
	p.Touch = false
	switch {
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft):
		p.Pressed = true
		p.JustPressed = true
	case inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft):
		p.Pressed = false
		p.JustReleased = true
	default:
		p.Pressed = ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	}
}

func getOrCreateInput(ecs *ecs.ECS) *components.InputData {
	entry, ok := components.Input.First(ecs.World)
	if !ok {
		entry = factory.CreateInput(ecs.World)
	}
	return components.Input.Get(entry)
}

// GetAction returns the full ActionState for an action ID.
// JustPressed/JustReleased are derived from current vs previous frame.
func GetAction(input *components.InputData, id cfg.ActionID) components.ActionState {
	curr := input.Current[id]
	prev := input.Previous[id]
	return components.ActionState{
		Pressed:      curr,
		JustPressed:  curr && !prev,
		JustReleased: !curr && prev,
	}
}
