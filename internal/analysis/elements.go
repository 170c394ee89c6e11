package analysis

import (
	"fmt"

	"schematic-tracer/internal/wire"
	"schematic-tracer/pkg/geometry"
)

// DetectedElement is a generic detected circuit feature with a screen box,
// used for reporting wire breaks and junctions uniformly.
type DetectedElement struct {
	ID         int           `json:"id"`
	Kind       string        `json:"kind"` // "wire_break" or "junction"
	BBox       geometry.Rect `json:"bbox"`
	Confidence float64       `json:"confidence"`
	Label      string        `json:"label"`
}

const (
	breakPadding    = 8.0
	breakMinSize    = 12.0
	junctionBoxSize = 15.0
)

// CreateDetectedElements converts broken connections and wire junctions to
// detected elements. Break boxes pad the gap and are expanded to a minimum
// visible size; junction boxes have a fixed size centered on the junction.
// Junctions with four or more wires score higher than tees.
func CreateDetectedElements(broken []wire.BrokenConnection, junctions []wire.WireJunction) []DetectedElement {
	var elements []DetectedElement

	for _, bc := range broken {
		box := geometry.RectFromCorners(bc.GapStart, bc.GapEnd).Grow(breakPadding)
		if box.Width < breakMinSize {
			expand := (breakMinSize - box.Width) / 2
			box.X -= expand
			box.Width = breakMinSize
		}
		if box.Height < breakMinSize {
			expand := (breakMinSize - box.Height) / 2
			box.Y -= expand
			box.Height = breakMinSize
		}
		id := len(elements)
		elements = append(elements, DetectedElement{
			ID:         id,
			Kind:       "wire_break",
			BBox:       box,
			Confidence: 0.7,
			Label:      fmt.Sprintf("Break-%d", id+1),
		})
	}

	for _, j := range junctions {
		confidence := 0.6
		if j.WireCount >= 4 {
			confidence = 0.8
		}
		id := len(elements)
		elements = append(elements, DetectedElement{
			ID:   id,
			Kind: "junction",
			BBox: geometry.NewRect(
				j.Location.X-junctionBoxSize/2, j.Location.Y-junctionBoxSize/2,
				junctionBoxSize, junctionBoxSize),
			Confidence: confidence,
			Label:      fmt.Sprintf("Junc-%d (%d)", id+1, j.WireCount),
		})
	}

	return elements
}
