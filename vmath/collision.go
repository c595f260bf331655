package vmath

// Circle is the collision shape shared by every arena entity
type Circle struct {
	X, Y float64
	R    float64
}

// Overlaps reports whether two circles intersect
// Touching circles (distance == r1+r2) do not overlap
func Overlaps(a, b Circle) bool {
	dx := a.X - b.X
	dy := a.Y - b.Y
	sum := a.R + b.R
	// Squared compare avoids the sqrt; both sides are non-negative
	return dx*dx+dy*dy < sum*sum
}

// InsideRect reports whether (x, y) lies strictly inside (0, w) x (0, h)
func InsideRect(x, y, w, h float64) bool {
	return x > 0 && x < w && y > 0 && y < h
}
