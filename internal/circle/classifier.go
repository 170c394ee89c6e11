package circle

import (
	"math"

	"gonum.org/v1/gonum/stat"

	"schematic-tracer/internal/drawing"
	"schematic-tracer/pkg/geometry"
)

// Params controls circle candidate gating and classification.
type Params struct {
	// CVThreshold is the loose roundness bound: fits below it are at least
	// potential circles.
	CVThreshold float64 `json:"cv_threshold"`
	// StrictCVThreshold is the tight roundness bound for definitive circles.
	StrictCVThreshold float64 `json:"strict_cv_threshold"`
	// MinSegments is the minimum command count before a primitive is even
	// considered as a circle candidate.
	MinSegments int `json:"min_segments"`
}

// DefaultParams returns classification defaults tuned for schematic pages in
// PDF units (1 unit = 1/72 inch).
func DefaultParams() Params {
	return Params{
		CVThreshold:       0.3,
		StrictCVThreshold: 0.1,
		MinSegments:       8,
	}
}

// IsCandidate reports whether a primitive is worth fitting: enough segments,
// or a closed path, or any curve commands. Crossing wires and short ticks
// never qualify.
func IsCandidate(prim drawing.Primitive, params Params) bool {
	return prim.SegmentCount() >= params.MinSegments || prim.Closed || prim.HasCurves()
}

// Fit computes the centroid, mean radius and roundness (coefficient of
// variation) for a point set. Empty input yields a zero-radius circle with
// infinite CV, which every downstream consumer rejects.
func Fit(points []geometry.Point) (center geometry.Point, radius, cv float64) {
	if len(points) == 0 {
		return geometry.Point{}, 0, math.Inf(1)
	}

	center = geometry.Centroid(points)

	distances := make([]float64, len(points))
	for i, p := range points {
		distances[i] = center.Distance(p)
	}

	radius = stat.Mean(distances, nil)
	if radius <= 0 {
		return center, radius, math.Inf(1)
	}
	cv = stat.PopStdDev(distances, nil) / radius
	return center, radius, cv
}

// Analyze fits a candidate primitive and returns the resulting Circle with
// its classification. Unclassifiable geometry is absorbed as a rejected
// zero-radius circle; there is no error path.
func Analyze(prim drawing.Primitive, index int, params Params) (Circle, Classification) {
	center, radius, cv := Fit(prim.Points())

	c := Circle{
		Index:     index,
		Center:    center,
		Radius:    radius,
		Roundness: cv,
		Segments:  prim.SegmentCount(),
		Closed:    prim.Closed,
		Filled:    prim.Filled,
		FillHex:   prim.FillHex,
	}
	return c, Classify(c, params)
}

// Classify buckets a fitted circle by its roundness.
func Classify(c Circle, params Params) Classification {
	switch {
	case c.Roundness < params.StrictCVThreshold:
		return Definitive
	case c.Roundness < params.CVThreshold:
		return Potential
	default:
		return Rejected
	}
}

// AnalyzePage scans every primitive on the page and returns the definitive
// and potential circles separately. Rejected fits are dropped.
func AnalyzePage(page drawing.Page, params Params) (definitive, potential []Circle) {
	for i, prim := range page.Primitives {
		if !IsCandidate(prim, params) {
			continue
		}
		c, class := Analyze(prim, i, params)
		switch class {
		case Definitive:
			definitive = append(definitive, c)
		case Potential:
			potential = append(potential, c)
		case Rejected:
		}
	}
	return definitive, potential
}
