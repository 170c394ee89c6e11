package drawing

import "schematic-tracer/pkg/geometry"

// Primitive is one vector drawing element from the page: a tagged command
// sequence plus the fill/close flags the extractor reports.
type Primitive struct {
	Commands []Command `json:"commands"`
	Closed   bool      `json:"closed"`
	Filled   bool      `json:"filled"`
	FillHex  string    `json:"fill_hex,omitempty"`
}

// Page is the input contract for one analysis run: the page dimensions and
// its ordered primitive list. A primitive's position in the slice is its
// index for the whole run.
type Page struct {
	Number     int         `json:"number"`
	Width      float64     `json:"width"`
	Height     float64     `json:"height"`
	Primitives []Primitive `json:"primitives"`
}

// Area returns the page area.
func (p Page) Area() float64 { return p.Width * p.Height }

// SegmentCount returns the number of drawing commands in the primitive.
func (p Primitive) SegmentCount() int { return len(p.Commands) }

// HasCurves reports whether the primitive contains any curve commands.
func (p Primitive) HasCurves() bool {
	for _, cmd := range p.Commands {
		if _, ok := cmd.(CurveTo); ok {
			return true
		}
	}
	return false
}

// Points collects the coordinate points carried by the primitive's commands.
// Used by the circle classifier to fit a center and radius.
func (p Primitive) Points() []geometry.Point {
	var points []geometry.Point
	for _, cmd := range p.Commands {
		switch c := cmd.(type) {
		case MoveTo:
			points = append(points, c.P)
		case LineTo:
			points = append(points, c.From, c.To)
		case CurveTo:
			points = append(points, c.C1, c.C2, c.End)
		case ClosePath, RectShape:
			// Close carries no coordinates; rectangle corners are not
			// fit points.
		}
	}
	return points
}

// Endpoints walks the command sequence and returns the primitive's first and
// last pen positions. An empty primitive yields two origin points.
func (p Primitive) Endpoints() (start, end geometry.Point) {
	var current geometry.Point
	haveStart := false

	for _, cmd := range p.Commands {
		switch c := cmd.(type) {
		case MoveTo:
			current = c.P
			if !haveStart {
				start = current
				haveStart = true
			}
		case LineTo:
			if !haveStart {
				start = c.From
				haveStart = true
			}
			current = c.To
		case CurveTo:
			current = c.End
		case ClosePath:
			current = start
		case RectShape:
			if !haveStart {
				start = c.Min
				haveStart = true
			}
			current = c.Min // a rectangle closes back onto its first corner
		}
	}

	if !haveStart {
		return geometry.Point{}, geometry.Point{}
	}
	return start, current
}

// LongestLine returns the length of the longest straight segment in the
// primitive, or 0 when it draws no straight segments.
func (p Primitive) LongestLine() float64 {
	longest := 0.0
	for _, cmd := range p.Commands {
		if line, ok := cmd.(LineTo); ok {
			if l := line.From.Distance(line.To); l > longest {
				longest = l
			}
		}
	}
	return longest
}
