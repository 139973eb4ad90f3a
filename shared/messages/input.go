package messages

// PointerAction is the phase of a pointer gesture
type PointerAction int

const (
	PointerDown PointerAction = iota
	PointerMove
	PointerUp
)

func (a PointerAction) String() string {
	switch a {
	case PointerDown:
		return "down"
	case PointerMove:
		return "move"
	case PointerUp:
		return "up"
	}
	return "unknown"
}

// PointerInput is one pointer sample in playfield coordinates, produced by the
// mouse/touch adapter or by a scripted shot.
type PointerInput struct {
	Action PointerAction
	X, Y   float64
}

// DragGesture builds the pointer samples of a full drag from (fromX, fromY)
// to (toX, toY) in the given number of moves, ending with a release.
func DragGesture(fromX, fromY, toX, toY float64, moves int) []PointerInput {
	if moves < 1 {
		moves = 1
	}
	out := make([]PointerInput, 0, moves+2)
	out = append(out, PointerInput{Action: PointerDown, X: fromX, Y: fromY})
	for i := 1; i <= moves; i++ {
		f := float64(i) / float64(moves)
		out = append(out, PointerInput{
			Action: PointerMove,
			X:      fromX + (toX-fromX)*f,
			Y:      fromY + (toY-fromY)*f,
		})
	}
	out = append(out, PointerInput{Action: PointerUp, X: toX, Y: toY})
	return out
}
