package netlist

import (
	"fmt"

	"schematic-tracer/internal/wire"
	"schematic-tracer/pkg/geometry"
)

// NetElementType identifies what kind of element is in a net.
type NetElementType int

const (
	ElementWire      NetElementType = iota // Path element of a wire run
	ElementCircle                          // Terminal or junction circle
	ElementComponent                       // Matched circuit component
)

func (t NetElementType) String() string {
	switch t {
	case ElementWire:
		return "Wire"
	case ElementCircle:
		return "Circle"
	case ElementComponent:
		return "Component"
	default:
		return "Unknown"
	}
}

// NetElement identifies an element in a net with its position.
type NetElement struct {
	Type     NetElementType `json:"type"`
	ID       string         `json:"id"`
	Position geometry.Point `json:"position"`
}

// Net is the reporting view of one merged network: a stable name, the
// elements it is made of, and the component IDs it touches.
type Net struct {
	ID   string `json:"id"`   // "NET-001", "NET-002", ...
	Name string `json:"name"` // display name, defaults to the ID

	GroupID  int          `json:"group_id"`
	Elements []NetElement `json:"elements"`

	ComponentIDs []string `json:"component_ids,omitempty"`

	WireCount   int `json:"wire_count"`
	CircleCount int `json:"circle_count"`
}

// ElementsByType returns the net's elements of one type.
func (n Net) ElementsByType(t NetElementType) []NetElement {
	var result []NetElement
	for _, e := range n.Elements {
		if e.Type == t {
			result = append(result, e)
		}
	}
	return result
}

// BuildNets converts merged networks into named net records. Names follow
// the same "NET-%03d" scheme as CheckIntersections, so matches (its result)
// can be passed straight in; a nil matches map yields nets without
// components.
func BuildNets(networks []wire.StructuralGroup, matches map[string][]string) []Net {
	nets := make([]Net, 0, len(networks))
	for i, g := range networks {
		id := fmt.Sprintf("NET-%03d", i+1)
		net := Net{
			ID:          id,
			Name:        id,
			GroupID:     g.GroupID,
			WireCount:   len(g.Elements),
			CircleCount: len(g.Circles),
		}
		for _, el := range g.Elements {
			net.Elements = append(net.Elements, NetElement{
				Type:     ElementWire,
				ID:       fmt.Sprintf("path-%d", el.Index),
				Position: el.Start.Midpoint(el.End),
			})
		}
		for _, c := range g.Circles {
			net.Elements = append(net.Elements, NetElement{
				Type:     ElementCircle,
				ID:       fmt.Sprintf("circle-%d", c.Index),
				Position: c.Center,
			})
		}
		for _, compID := range matches[id] {
			net.ComponentIDs = append(net.ComponentIDs, compID)
			net.Elements = append(net.Elements, NetElement{
				Type: ElementComponent,
				ID:   compID,
			})
		}
		nets = append(nets, net)
	}
	return nets
}
