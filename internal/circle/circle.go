// Package circle classifies drawing primitives as circular symbols
// (terminals, pins, junction dots) by fitting a center and radius to the
// primitive's points and scoring the fit's roundness.
package circle

import "schematic-tracer/pkg/geometry"

// Classification buckets for a fitted circle.
type Classification int

const (
	// Rejected fits are too irregular to be circles.
	Rejected Classification = iota
	// Potential fits are plausibly circular but not certain.
	Potential
	// Definitive fits are almost perfectly round.
	Definitive
)

func (c Classification) String() string {
	switch c {
	case Definitive:
		return "definitive"
	case Potential:
		return "potential"
	default:
		return "rejected"
	}
}

// Circle is a classified circular primitive. It is created once by the
// classifier and never mutated afterwards.
type Circle struct {
	Index     int            `json:"index"`
	Center    geometry.Point `json:"center"`
	Radius    float64        `json:"radius"`
	Roundness float64        `json:"roundness"` // coefficient of variation; lower = rounder
	Segments  int            `json:"segments"`
	Closed    bool           `json:"closed"`
	Filled    bool           `json:"filled"`
	FillHex   string         `json:"fill_hex,omitempty"`
}

// ContainsPoint reports whether p lies inside the circle grown by tolerance.
func (c Circle) ContainsPoint(p geometry.Point, tolerance float64) bool {
	return c.Center.Distance(p) <= c.Radius+tolerance
}

// FindAt returns the circles that contain p within tolerance.
func FindAt(p geometry.Point, circles []Circle, tolerance float64) []Circle {
	var found []Circle
	for _, c := range circles {
		if c.ContainsPoint(p, tolerance) {
			found = append(found, c)
		}
	}
	return found
}
