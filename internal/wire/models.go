package wire

import (
	"schematic-tracer/internal/circle"
	"schematic-tracer/internal/drawing"
	"schematic-tracer/pkg/geometry"
)

// ContinuousGroup is a maximal set of path elements and circles joined by
// the connectivity passes. It is the raw union-find output, before
// categorization assigns it a role and a color.
type ContinuousGroup struct {
	Paths   []drawing.PathElement `json:"paths"`
	Circles []circle.Circle       `json:"circles"`
}

// Size returns the total number of members, paths and circles alike.
func (g ContinuousGroup) Size() int { return len(g.Paths) + len(g.Circles) }

// BrokenConnection records a bridged gap between two parallel wire
// segments that were drawn as separate primitives.
type BrokenConnection struct {
	Path1Index int            `json:"path1_index"`
	Path2Index int            `json:"path2_index"`
	GapStart   geometry.Point `json:"gap_start"`
	GapEnd     geometry.Point `json:"gap_end"`
	GapLength  float64        `json:"gap_length"`
}

// GroupKind labels the role a group plays in the drawing.
type GroupKind string

const (
	KindStructural GroupKind = "structural"
	KindTextLike   GroupKind = "text_like"
	KindSingle     GroupKind = "single"
)

// StructuralGroup is a categorized continuous group. The bounding box and
// total segment length are computed once at construction and cached.
type StructuralGroup struct {
	GroupID  int                   `json:"group_id"`
	Color    string                `json:"color"`
	Kind     GroupKind             `json:"kind"`
	Elements []drawing.PathElement `json:"elements"`
	Circles  []circle.Circle       `json:"circles"`

	BBox        geometry.Rect `json:"bbox"`
	TotalLength float64       `json:"total_length"`
}

// NewStructuralGroup builds a group and precomputes its cached metrics.
// The bounding box covers every path endpoint and the full extent of every
// member circle.
func NewStructuralGroup(id int, color string, kind GroupKind, g ContinuousGroup) StructuralGroup {
	sg := StructuralGroup{
		GroupID:  id,
		Color:    color,
		Kind:     kind,
		Elements: g.Paths,
		Circles:  g.Circles,
	}
	var pts []geometry.Point
	for _, el := range g.Paths {
		pts = append(pts, el.Start, el.End)
		sg.TotalLength += el.Length
	}
	for _, c := range g.Circles {
		pts = append(pts,
			geometry.Point{X: c.Center.X - c.Radius, Y: c.Center.Y - c.Radius},
			geometry.Point{X: c.Center.X + c.Radius, Y: c.Center.Y + c.Radius},
		)
	}
	sg.BBox = geometry.BoundingBox(pts)
	return sg
}

// Endpoints returns every path endpoint in the group, in element order.
func (g StructuralGroup) Endpoints() []geometry.Point {
	pts := make([]geometry.Point, 0, 2*len(g.Elements))
	for _, el := range g.Elements {
		pts = append(pts, el.Start, el.End)
	}
	return pts
}

// JunctionKind labels a junction by how many wires meet there.
type JunctionKind string

const (
	JunctionTee       JunctionKind = "t_junction"
	JunctionCross     JunctionKind = "cross"
	JunctionMultiWire JunctionKind = "multi_wire"
)

// WireJunction is a location where three or more wire endpoints meet.
type WireJunction struct {
	Location             geometry.Point `json:"location"`
	WireCount            int            `json:"wire_count"`
	ConnectedPathIndices []int          `json:"connected_path_indices"`
	Kind                 JunctionKind   `json:"kind"`
}
