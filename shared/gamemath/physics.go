package gamemath

import "math"

// ImpactMagnitude is the relative speed of two bodies times the smaller of
// their masses.
func ImpactMagnitude(vax, vay, vbx, vby, massA, massB float64) float64 {
	return math.Hypot(vax-vbx, vay-vby) * math.Min(massA, massB)
}

// ParticleCount converts an impact into a particle count, capped at max.
func ParticleCount(impact, scale float64, max int) int {
	n := int(math.Floor(impact * scale))
	if n > max {
		return max
	}
	if n < 0 {
		return 0
	}
	return n
}

// ShakeIntensity converts an impact into a screen shake intensity, capped at max.
func ShakeIntensity(impact, scale, max float64) float64 {
	return math.Min(max, impact*scale)
}

// Distance returns the euclidean distance between two points.
func Distance(x1, y1, x2, y2 float64) float64 {
	return math.Hypot(x2-x1, y2-y1)
}

// OutOfBounds reports whether a point left the playfield by more than margin
// to the right or below.
func OutOfBounds(x, y, width, height, margin float64) bool {
	return x > width+margin || y > height+margin
}

// Stopped reports whether a body is at rest below the launch line.
func Stopped(vx, vy, y, stopSpeed, launchLineY float64) bool {
	return math.Abs(vx) < stopSpeed && math.Abs(vy) < stopSpeed && y > launchLineY
}
