// Package geometry provides the basic geometric types and tolerance math used
// throughout the analyzer. All helpers are pure functions; degenerate input
// yields a well-defined sentinel instead of an error.
package geometry

import (
	"math"
)

// Point represents a 2D point with floating-point coordinates.
// Points are never compared exactly; use Distance against a tolerance.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// NewPoint creates a new Point.
func NewPoint(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Distance returns the Euclidean distance to another point.
func (p Point) Distance(other Point) float64 {
	dx := p.X - other.X
	dy := p.Y - other.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// Add returns the sum of two points.
func (p Point) Add(other Point) Point {
	return Point{X: p.X + other.X, Y: p.Y + other.Y}
}

// Sub returns the difference of two points.
func (p Point) Sub(other Point) Point {
	return Point{X: p.X - other.X, Y: p.Y - other.Y}
}

// Scale returns the point scaled by a factor.
func (p Point) Scale(factor float64) Point {
	return Point{X: p.X * factor, Y: p.Y * factor}
}

// Midpoint returns the point halfway between p and other.
func (p Point) Midpoint(other Point) Point {
	return Point{X: (p.X + other.X) / 2, Y: (p.Y + other.Y) / 2}
}

// Rect represents an axis-aligned rectangle.
type Rect struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// NewRect creates a new Rect.
func NewRect(x, y, width, height float64) Rect {
	return Rect{X: x, Y: y, Width: width, Height: height}
}

// RectFromCorners creates a Rect spanning two opposite corners in any order.
func RectFromCorners(a, b Point) Rect {
	x0 := math.Min(a.X, b.X)
	y0 := math.Min(a.Y, b.Y)
	return Rect{X: x0, Y: y0, Width: math.Abs(a.X - b.X), Height: math.Abs(a.Y - b.Y)}
}

// Contains returns true if the point is inside the rectangle.
func (r Rect) Contains(p Point) bool {
	return r.ContainsTolerance(p, 0)
}

// ContainsTolerance returns true if the point is inside the rectangle grown
// by tolerance on every side.
func (r Rect) ContainsTolerance(p Point, tolerance float64) bool {
	return p.X >= r.X-tolerance && p.X <= r.X+r.Width+tolerance &&
		p.Y >= r.Y-tolerance && p.Y <= r.Y+r.Height+tolerance
}

// Center returns the center point of the rectangle.
func (r Rect) Center() Point {
	return Point{X: r.X + r.Width/2, Y: r.Y + r.Height/2}
}

// MaxX returns the right edge coordinate.
func (r Rect) MaxX() float64 { return r.X + r.Width }

// MaxY returns the bottom edge coordinate.
func (r Rect) MaxY() float64 { return r.Y + r.Height }

// Area returns the rectangle's area.
func (r Rect) Area() float64 { return r.Width * r.Height }

// Diagonal returns the length of the rectangle's diagonal.
func (r Rect) Diagonal() float64 {
	return math.Sqrt(r.Width*r.Width + r.Height*r.Height)
}

// Intersects returns true if this rectangle intersects with another.
func (r Rect) Intersects(other Rect) bool {
	return r.X < other.MaxX() && r.MaxX() > other.X &&
		r.Y < other.MaxY() && r.MaxY() > other.Y
}

// Intersection returns the overlapping region of two rectangles.
// A zero Rect is returned when they do not overlap.
func (r Rect) Intersection(other Rect) Rect {
	x0 := math.Max(r.X, other.X)
	y0 := math.Max(r.Y, other.Y)
	x1 := math.Min(r.MaxX(), other.MaxX())
	y1 := math.Min(r.MaxY(), other.MaxY())
	if x0 >= x1 || y0 >= y1 {
		return Rect{}
	}
	return Rect{X: x0, Y: y0, Width: x1 - x0, Height: y1 - y0}
}

// Union returns the smallest rectangle containing both rectangles.
func (r Rect) Union(other Rect) Rect {
	x := math.Min(r.X, other.X)
	y := math.Min(r.Y, other.Y)
	x2 := math.Max(r.MaxX(), other.MaxX())
	y2 := math.Max(r.MaxY(), other.MaxY())
	return Rect{X: x, Y: y, Width: x2 - x, Height: y2 - y}
}

// Grow returns the rectangle expanded by pad on every side.
func (r Rect) Grow(pad float64) Rect {
	return Rect{X: r.X - pad, Y: r.Y - pad, Width: r.Width + 2*pad, Height: r.Height + 2*pad}
}

// VectorAngle returns the direction of the vector from a to b in degrees,
// in the range (-180, 180].
func VectorAngle(a, b Point) float64 {
	return NormalizeAngle(math.Atan2(b.Y-a.Y, b.X-a.X) * 180 / math.Pi)
}

// AngleBetween returns the angle between the vectors a1->a2 and b1->b2 in
// degrees, normalized to [0, 180].
func AngleBetween(a1, a2, b1, b2 Point) float64 {
	diff := math.Abs(VectorAngle(a1, a2) - VectorAngle(b1, b2))
	if diff > 180 {
		diff = 360 - diff
	}
	return diff
}

// NormalizeAngle normalizes an angle in degrees to (-180, 180].
func NormalizeAngle(angle float64) float64 {
	for angle > 180 {
		angle -= 360
	}
	for angle <= -180 {
		angle += 360
	}
	return angle
}

// ExtendLine extends the segment start->end past end by length and returns
// the new endpoint. A zero-length segment has no direction, so the original
// endpoint is returned unchanged.
func ExtendLine(start, end Point, length float64) Point {
	dx := end.X - start.X
	dy := end.Y - start.Y
	segLen := math.Sqrt(dx*dx + dy*dy)
	if segLen == 0 {
		return end
	}
	return Point{
		X: end.X + dx/segLen*length,
		Y: end.Y + dy/segLen*length,
	}
}

// PointToSegment returns the shortest distance from p to the segment a->b.
// A degenerate (zero-length) segment falls back to the distance to a.
func PointToSegment(p, a, b Point) float64 {
	apx := p.X - a.X
	apy := p.Y - a.Y
	abx := b.X - a.X
	aby := b.Y - a.Y

	lenSq := abx*abx + aby*aby
	if lenSq == 0 {
		return p.Distance(a)
	}

	t := (apx*abx + apy*aby) / lenSq
	switch {
	case t < 0:
		return p.Distance(a)
	case t > 1:
		return p.Distance(b)
	default:
		return p.Distance(Point{X: a.X + t*abx, Y: a.Y + t*aby})
	}
}

// Parallel reports whether the segments a1->a2 and b1->b2 run parallel or
// antiparallel within angleTolerance degrees.
func Parallel(a1, a2, b1, b2 Point, angleTolerance float64) bool {
	diff := AngleBetween(a1, a2, b1, b2)
	return diff <= angleTolerance || math.Abs(diff-180) <= angleTolerance
}

// MeetsAtAngle reports whether two segments meeting at connection form the
// target angle within tolerance. Each segment is first oriented so that it
// points toward the connection point; the angle is taken between those
// oriented direction vectors.
func MeetsAtAngle(a1, a2, b1, b2, connection Point, targetAngle, tolerance float64) bool {
	v1Start, v1End := a1, a2
	if a1.Distance(connection) < a2.Distance(connection) {
		v1Start, v1End = a2, a1
	}

	v2Start, v2End := b1, b2
	if b1.Distance(connection) < b2.Distance(connection) {
		v2Start, v2End = b2, b1
	}

	angle := AngleBetween(v1Start, v1End, v2Start, v2End)
	return math.Abs(angle-targetAngle) <= tolerance
}

// Centroid computes the centroid (average position) of a set of points.
// An empty set yields the origin.
func Centroid(points []Point) Point {
	if len(points) == 0 {
		return Point{}
	}
	var sumX, sumY float64
	for _, p := range points {
		sumX += p.X
		sumY += p.Y
	}
	n := float64(len(points))
	return Point{X: sumX / n, Y: sumY / n}
}

// BoundingBox computes the axis-aligned bounding box of a set of points.
// An empty set yields the zero Rect.
func BoundingBox(points []Point) Rect {
	if len(points) == 0 {
		return Rect{}
	}
	minX, minY := points[0].X, points[0].Y
	maxX, maxY := minX, minY
	for _, p := range points[1:] {
		if p.X < minX {
			minX = p.X
		}
		if p.X > maxX {
			maxX = p.X
		}
		if p.Y < minY {
			minY = p.Y
		}
		if p.Y > maxY {
			maxY = p.Y
		}
	}
	return Rect{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}
