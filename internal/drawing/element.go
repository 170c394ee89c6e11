package drawing

import "schematic-tracer/pkg/geometry"

// PathElement is one non-circle primitive reduced to its two meaningful
// endpoints. Length and direction are fixed at construction so the value can
// be shared freely afterwards.
type PathElement struct {
	Index    int             `json:"index"`
	Start    geometry.Point  `json:"start"`
	End      geometry.Point  `json:"end"`
	Length   float64         `json:"length"`
	Angle    float64         `json:"angle"` // degrees, (-180, 180]
	Geometry []Command       `json:"-"`     // raw commands, for sub-segment checks
}

// NewPathElement reduces a primitive to a PathElement.
func NewPathElement(index int, prim Primitive) PathElement {
	start, end := prim.Endpoints()
	return PathElement{
		Index:    index,
		Start:    start,
		End:      end,
		Length:   start.Distance(end),
		Angle:    geometry.VectorAngle(start, end),
		Geometry: prim.Commands,
	}
}

// HasLineLongerThan reports whether the element's raw geometry contains a
// straight sub-segment of at least minLength.
func (e PathElement) HasLineLongerThan(minLength float64) bool {
	for _, cmd := range e.Geometry {
		if line, ok := cmd.(LineTo); ok {
			if line.From.Distance(line.To) >= minLength {
				return true
			}
		}
	}
	return false
}

// ExtractPathElements reduces every primitive that is not a classified
// circle to a PathElement, preserving page order.
func ExtractPathElements(page Page, circleIndices map[int]bool) []PathElement {
	paths := make([]PathElement, 0, len(page.Primitives))
	for i, prim := range page.Primitives {
		if circleIndices[i] {
			continue
		}
		if len(prim.Commands) == 0 {
			continue
		}
		paths = append(paths, NewPathElement(i, prim))
	}
	return paths
}
