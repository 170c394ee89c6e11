package geometry

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPointArithmetic(t *testing.T) {
	p := NewPoint(3, 4)
	assert.InDelta(t, 5.0, p.Distance(Point{}), 1e-9)
	assert.Equal(t, p.Distance(Point{X: -2, Y: 7}), Point{X: -2, Y: 7}.Distance(p))
	assert.Equal(t, Point{X: 5, Y: 6}, p.Add(Point{X: 2, Y: 2}))
	assert.Equal(t, Point{X: 1, Y: 2}, p.Sub(Point{X: 2, Y: 2}))
	assert.Equal(t, Point{X: 6, Y: 8}, p.Scale(2))
	assert.Equal(t, Point{X: 1.5, Y: 2}, p.Midpoint(Point{}))
}

func TestRectFromCornersAnyOrder(t *testing.T) {
	r1 := RectFromCorners(Point{X: 10, Y: 20}, Point{X: 2, Y: 5})
	r2 := RectFromCorners(Point{X: 2, Y: 5}, Point{X: 10, Y: 20})
	assert.Equal(t, r1, r2)
	assert.Equal(t, NewRect(2, 5, 8, 15), r1)
}

func TestRectContainsTolerance(t *testing.T) {
	r := NewRect(0, 0, 10, 10)
	assert.True(t, r.Contains(Point{X: 5, Y: 5}))
	assert.False(t, r.Contains(Point{X: 11, Y: 5}))
	assert.True(t, r.ContainsTolerance(Point{X: 11, Y: 5}, 1))
	assert.True(t, r.ContainsTolerance(Point{X: -1, Y: -1}, 1))
	assert.False(t, r.ContainsTolerance(Point{X: 12.1, Y: 5}, 2))
}

func TestRectIntersectionAndUnion(t *testing.T) {
	a := NewRect(0, 0, 10, 10)
	b := NewRect(5, 5, 10, 10)

	assert.True(t, a.Intersects(b))
	assert.Equal(t, NewRect(5, 5, 5, 5), a.Intersection(b))
	assert.Equal(t, NewRect(0, 0, 15, 15), a.Union(b))

	c := NewRect(20, 20, 5, 5)
	assert.False(t, a.Intersects(c))
	assert.Equal(t, Rect{}, a.Intersection(c))
}

func TestRectGrowAndDiagonal(t *testing.T) {
	r := NewRect(2, 2, 3, 4)
	assert.Equal(t, NewRect(1, 1, 5, 6), r.Grow(1))
	assert.InDelta(t, 5.0, r.Diagonal(), 1e-9)
	assert.Equal(t, Point{X: 3.5, Y: 4}, r.Center())
	assert.InDelta(t, 12.0, r.Area(), 1e-9)
}

func TestNormalizeAngle(t *testing.T) {
	assert.InDelta(t, 0.0, NormalizeAngle(360), 1e-9)
	assert.InDelta(t, -170.0, NormalizeAngle(190), 1e-9)
	assert.InDelta(t, 180.0, NormalizeAngle(180), 1e-9)
	assert.InDelta(t, 180.0, NormalizeAngle(-180), 1e-9)
	assert.InDelta(t, 10.0, NormalizeAngle(730), 1e-9)
}

func TestVectorAngle(t *testing.T) {
	assert.InDelta(t, 0.0, VectorAngle(Point{}, Point{X: 1}), 1e-9)
	assert.InDelta(t, 90.0, VectorAngle(Point{}, Point{Y: 1}), 1e-9)
	assert.InDelta(t, 180.0, VectorAngle(Point{}, Point{X: -1}), 1e-9)
	assert.InDelta(t, -45.0, VectorAngle(Point{}, Point{X: 1, Y: -1}), 1e-9)
}

func TestAngleBetweenSymmetry(t *testing.T) {
	a1, a2 := Point{}, Point{X: 1}
	b1, b2 := Point{}, Point{X: 1, Y: 1}
	got := AngleBetween(a1, a2, b1, b2)
	assert.InDelta(t, 45.0, got, 1e-9)
	assert.InDelta(t, got, AngleBetween(b1, b2, a1, a2), 1e-9)

	// Opposite directions fold back into [0, 180].
	assert.InDelta(t, 180.0, AngleBetween(Point{}, Point{X: 1}, Point{}, Point{X: -1}), 1e-9)
}

func TestExtendLine(t *testing.T) {
	got := ExtendLine(Point{}, Point{X: 10}, 5)
	assert.InDelta(t, 15.0, got.X, 1e-9)
	assert.InDelta(t, 0.0, got.Y, 1e-9)

	diag := ExtendLine(Point{}, Point{X: 3, Y: 4}, 5)
	assert.InDelta(t, 6.0, diag.X, 1e-9)
	assert.InDelta(t, 8.0, diag.Y, 1e-9)

	// Zero-length segments have no direction.
	p := Point{X: 7, Y: 7}
	assert.Equal(t, p, ExtendLine(p, p, 10))
}

func TestPointToSegment(t *testing.T) {
	a, b := Point{}, Point{X: 10}

	// Perpendicular foot inside the segment.
	assert.InDelta(t, 3.0, PointToSegment(Point{X: 5, Y: 3}, a, b), 1e-9)
	// Beyond either end the nearest endpoint wins.
	assert.InDelta(t, 5.0, PointToSegment(Point{X: -3, Y: 4}, a, b), 1e-9)
	assert.InDelta(t, 5.0, PointToSegment(Point{X: 13, Y: 4}, a, b), 1e-9)
	// Degenerate segment falls back to point distance.
	assert.InDelta(t, 5.0, PointToSegment(Point{X: 3, Y: 4}, a, a), 1e-9)
}

func TestParallel(t *testing.T) {
	assert.True(t, Parallel(Point{}, Point{X: 10}, Point{Y: 5}, Point{X: 10, Y: 5}, 5))
	// Antiparallel counts as parallel.
	assert.True(t, Parallel(Point{}, Point{X: 10}, Point{X: 10, Y: 5}, Point{Y: 5}, 5))
	// 4 degrees off, within a 5 degree tolerance.
	end := Point{X: 10 * math.Cos(4 * math.Pi / 180), Y: 10 * math.Sin(4 * math.Pi / 180)}
	assert.True(t, Parallel(Point{}, Point{X: 10}, Point{}, end, 5))
	assert.False(t, Parallel(Point{}, Point{X: 10}, Point{}, Point{X: 10, Y: 10}, 5))
}

func TestMeetsAtAngle(t *testing.T) {
	conn := Point{}
	// Horizontal and vertical segments meeting at the origin.
	assert.True(t, MeetsAtAngle(Point{X: 10}, conn, Point{Y: 10}, conn, conn, 90, 1))
	// Orientation of the inputs must not matter.
	assert.True(t, MeetsAtAngle(conn, Point{X: 10}, conn, Point{Y: 10}, conn, 90, 1))
	// Collinear continuation is 180 apart, not 90.
	assert.False(t, MeetsAtAngle(Point{X: -10}, conn, Point{X: 10}, conn, conn, 90, 1))
	// A 45 degree meeting misses a tight 90 degree gate.
	assert.False(t, MeetsAtAngle(Point{X: 10}, conn, Point{X: 10, Y: 10}, conn, conn, 90, 1))
	assert.True(t, MeetsAtAngle(Point{X: 10}, conn, Point{X: 10, Y: 10}, conn, conn, 45, 1))
}

func TestCentroid(t *testing.T) {
	assert.Equal(t, Point{}, Centroid(nil))
	got := Centroid([]Point{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 5, Y: 9}})
	assert.InDelta(t, 5.0, got.X, 1e-9)
	assert.InDelta(t, 3.0, got.Y, 1e-9)
}

func TestBoundingBox(t *testing.T) {
	assert.Equal(t, Rect{}, BoundingBox(nil))

	box := BoundingBox([]Point{{X: 3, Y: 7}, {X: -1, Y: 2}, {X: 5, Y: 4}})
	require.Equal(t, NewRect(-1, 2, 6, 5), box)

	single := BoundingBox([]Point{{X: 2, Y: 3}})
	assert.Equal(t, NewRect(2, 3, 0, 0), single)
}
