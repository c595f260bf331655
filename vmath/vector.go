package vmath

import "math"

// Vec2 is a point or direction in arena units
type Vec2 struct {
	X, Y float64
}

// Add returns v + o
func (v Vec2) Add(o Vec2) Vec2 { return Vec2{X: v.X + o.X, Y: v.Y + o.Y} }

// Sub returns v - o
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{X: v.X - o.X, Y: v.Y - o.Y} }

// Scale returns v * f
func (v Vec2) Scale(f float64) Vec2 { return Vec2{X: v.X * f, Y: v.Y * f} }

// Len returns the Euclidean length
func (v Vec2) Len() float64 { return math.Hypot(v.X, v.Y) }

// Distance returns the Euclidean distance between two points
func Distance(a, b Vec2) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}

// Normalize returns the unit vector of (x, y)
// ok is false for the zero vector; callers skip movement in that case
func Normalize(x, y float64) (nx, ny float64, ok bool) {
	mag := math.Hypot(x, y)
	if mag == 0 {
		return 0, 0, false
	}
	return x / mag, y / mag, true
}

// Polar returns the velocity of magnitude speed pointing along angle
func Polar(angle, speed float64) Vec2 {
	return Vec2{X: math.Cos(angle) * speed, Y: math.Sin(angle) * speed}
}

// AngleTo returns the heading from one point towards another
func AngleTo(from, to Vec2) float64 {
	return math.Atan2(to.Y-from.Y, to.X-from.X)
}
