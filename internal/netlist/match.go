package netlist

import (
	"fmt"

	"schematic-tracer/internal/wire"
	"schematic-tracer/pkg/geometry"
)

// CircuitComponent is a caller-supplied component footprint to match
// networks against.
type CircuitComponent struct {
	ID    string        `json:"id"`
	Label string        `json:"label"`
	BBox  geometry.Rect `json:"bbox"`
}

// CheckIntersections maps each merged network to the components it touches.
// A network touches a component when any of its connection points lies
// inside the component's bounding box grown by the box tolerance. Networks
// are named "NET-001", "NET-002", ... in input order; networks touching no
// component are left out of the map. Component IDs keep their input order.
func CheckIntersections(networks []wire.StructuralGroup, components []CircuitComponent, params Params) map[string][]string {
	result := make(map[string][]string)
	for i, net := range networks {
		pts := connectionPoints(net)
		var ids []string
		for _, comp := range components {
			if componentTouches(comp, pts, params.BoxTolerance) {
				ids = append(ids, comp.ID)
			}
		}
		if len(ids) == 0 {
			continue
		}
		result[fmt.Sprintf("NET-%03d", i+1)] = ids
	}
	return result
}

func componentTouches(comp CircuitComponent, pts []geometry.Point, tolerance float64) bool {
	for _, p := range pts {
		if comp.BBox.ContainsTolerance(p, tolerance) {
			return true
		}
	}
	return false
}
