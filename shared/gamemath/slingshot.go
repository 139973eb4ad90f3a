package gamemath

import "math"

// TrajectoryPoint is one dot of the predicted flight path.
type TrajectoryPoint struct {
	X, Y   float64
	Radius float64
}

// ClampDrag limits a drag position to maxDist from the anchor along the same
// angle, then keeps it from passing the anchor horizontally.
func ClampDrag(anchorX, anchorY, x, y, maxDist float64) (float64, float64) {
	dx, dy := x-anchorX, y-anchorY
	if d := math.Hypot(dx, dy); d > maxDist {
		angle := math.Atan2(dy, dx)
		x = anchorX + math.Cos(angle)*maxDist
		y = anchorY + math.Sin(angle)*maxDist
	}
	if x > anchorX {
		x = anchorX
	}
	return x, y
}

// LaunchVelocity is the pull from the drag position back to the anchor
// scaled by power.
func LaunchVelocity(anchorX, anchorY, dragX, dragY, power float64) (float64, float64) {
	return (anchorX - dragX) * power, (anchorY - dragY) * power
}

// ExceedsThreshold reports whether either velocity component is larger than
// threshold in magnitude.
func ExceedsThreshold(vx, vy, threshold float64) bool {
	return math.Abs(vx) > threshold || math.Abs(vy) > threshold
}

// WithinRadius reports whether (px, py) is strictly closer than r to (x, y).
func WithinRadius(px, py, x, y, r float64) bool {
	return Distance(px, py, x, y) < r
}

// Trajectory predicts n points of a launch from (sx, sy) with velocity
// (vx, vy) given in pixels per frame. Times are in seconds, each point's dot
// shrinks by shrink and points with no radius left are dropped.
func Trajectory(sx, sy, vx, vy float64, n int, step, gravity, radius, shrink float64) []TrajectoryPoint {
	points := make([]TrajectoryPoint, 0, n)
	for i := 0; i < n; i++ {
		r := radius - shrink*float64(i)
		if r <= 0 {
			continue
		}
		frames := float64(i) * step * 60
		points = append(points, TrajectoryPoint{
			X:      sx + vx*frames,
			Y:      sy + vy*frames + 0.5*gravity*frames*frames*0.001,
			Radius: r,
		})
	}
	return points
}
