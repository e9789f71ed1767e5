package vmath

import "math"

// Continuous 2D vector math for the simulation space
// Components are float64; the arena is a continuous plane, not a cell grid

// Magnitude returns vector length
func Magnitude(x, y float64) float64 {
	return math.Sqrt(x*x + y*y)
}

// MagnitudeSq returns squared magnitude without sqrt
// Preferred for range comparisons
func MagnitudeSq(x, y float64) float64 {
	return x*x + y*y
}

// Normalize2D returns the unit vector, zero-safe
func Normalize2D(x, y float64) (nx, ny float64) {
	mag := Magnitude(x, y)
	if mag == 0 {
		return 0, 0
	}
	return x / mag, y / mag
}

// ScaleVector multiplies vector by a scalar factor
func ScaleVector(x, y, factor float64) (sx, sy float64) {
	return x * factor, y * factor
}

// Distance returns the distance between two points
func Distance(x1, y1, x2, y2 float64) float64 {
	return Magnitude(x2-x1, y2-y1)
}

// DistanceSq returns squared distance between two points
func DistanceSq(x1, y1, x2, y2 float64) float64 {
	return MagnitudeSq(x2-x1, y2-y1)
}

// WithinRange reports whether two points are within radius of each other
// Uses squared comparison to avoid sqrt
func WithinRange(x1, y1, x2, y2, radius float64) bool {
	return DistanceSq(x1, y1, x2, y2) <= radius*radius
}

// ClampMagnitude limits vector to maxMag while preserving direction
func ClampMagnitude(x, y, maxMag float64) (cx, cy float64) {
	mag := Magnitude(x, y)
	if mag <= maxMag || mag == 0 {
		return x, y
	}
	scale := maxMag / mag
	return x * scale, y * scale
}

// Clamp limits v to the [lo, hi] interval
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// DotProduct returns x1*x2 + y1*y2
func DotProduct(x1, y1, x2, y2 float64) float64 {
	return x1*x2 + y1*y2
}
