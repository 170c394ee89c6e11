package cluster

import (
	"math"

	"schematic-tracer/internal/wire"
	"schematic-tracer/pkg/geometry"
)

// GapFill is a broken connection that belongs to a structural group and is
// not part of a dotted line. Gap fills are strong component evidence: a
// deliberate break in a wire usually marks a component body.
type GapFill struct {
	Start      geometry.Point `json:"start"`
	End        geometry.Point `json:"end"`
	Color      string         `json:"color"`
	GroupID    int            `json:"group_id"`
	Path1Index int            `json:"path1_index"`
	Path2Index int            `json:"path2_index"`
	GapLength  float64        `json:"gap_length"`
}

// Center returns the midpoint of the gap.
func (g GapFill) Center() geometry.Point { return g.Start.Midpoint(g.End) }

// BBox returns the gap's bounding box padded by 5 units.
func (g GapFill) BBox() geometry.Rect {
	return geometry.RectFromCorners(g.Start, g.End).Grow(5.0)
}

// CirclePin is a circle belonging to a structural group, treated as a
// component pin.
type CirclePin struct {
	Center  geometry.Point `json:"center"`
	Radius  float64        `json:"radius"`
	Color   string         `json:"color"`
	GroupID int            `json:"group_id"`
	Filled  bool           `json:"filled"`
}

// BBox returns the circle's bounding box padded by 2 units.
func (p CirclePin) BBox() geometry.Rect {
	r := p.Radius + 2.0
	return geometry.NewRect(p.Center.X-r, p.Center.Y-r, 2*r, 2*r)
}

// LineEnd is a free wire endpoint: one that does not continue into another
// line, a break, or a circle. Free ends usually terminate at a component.
type LineEnd struct {
	Position  geometry.Point `json:"position"`
	Color     string         `json:"color"`
	GroupID   int            `json:"group_id"`
	PathIndex int            `json:"path_index"`
	IsStart   bool           `json:"is_start"`
}

// BBox returns the endpoint's bounding box padded by 3 units.
func (e LineEnd) BBox() geometry.Rect {
	return geometry.NewRect(e.Position.X-3, e.Position.Y-3, 6, 6)
}

// FilterGapFills keeps the broken connections whose first path belongs to a
// structural group, excluding groups that look like dotted lines. A group is
// a dotted line when its total gap length exceeds dottedThreshold of its
// combined path-plus-gap length; every break of such a group is dropped.
func FilterGapFills(broken []wire.BrokenConnection, groups []wire.StructuralGroup, dottedThreshold float64) []GapFill {
	type membership struct {
		groupID int
		color   string
	}
	elementGroup := make(map[int]membership)
	dottedGroups := make(map[int]bool)

	for _, g := range groups {
		indices := make(map[int]bool, len(g.Elements))
		var pathLength float64
		for _, el := range g.Elements {
			indices[el.Index] = true
			pathLength += el.Length
			elementGroup[el.Index] = membership{groupID: g.GroupID, color: g.Color}
		}
		if pathLength == 0 {
			continue
		}

		var gapLength float64
		for _, bc := range broken {
			if indices[bc.Path1Index] {
				gapLength += bc.GapLength
			}
		}
		if total := pathLength + gapLength; total > 0 && gapLength/total > dottedThreshold {
			dottedGroups[g.GroupID] = true
		}
	}

	var filtered []GapFill
	for _, bc := range broken {
		m, ok := elementGroup[bc.Path1Index]
		if !ok || dottedGroups[m.groupID] {
			continue
		}
		filtered = append(filtered, GapFill{
			Start:      bc.GapStart,
			End:        bc.GapEnd,
			Color:      m.color,
			GroupID:    m.groupID,
			Path1Index: bc.Path1Index,
			Path2Index: bc.Path2Index,
			GapLength:  bc.GapLength,
		})
	}
	return filtered
}

// FilterCirclePins extracts the circles of every structural group as pins,
// inheriting the group's color.
func FilterCirclePins(groups []wire.StructuralGroup) []CirclePin {
	var pins []CirclePin
	for _, g := range groups {
		for _, c := range g.Circles {
			pins = append(pins, CirclePin{
				Center:  c.Center,
				Radius:  c.Radius,
				Color:   g.Color,
				GroupID: g.GroupID,
				Filled:  c.Filled,
			})
		}
	}
	return pins
}

// FilterLineEnds extracts the free endpoints of structural groups: those
// not near a break endpoint, not near a circle center (at twice the
// tolerance, circles are wider than points), and alone at their position
// when rounded to whole units.
func FilterLineEnds(groups []wire.StructuralGroup, broken []wire.BrokenConnection, connectionTolerance float64) []LineEnd {
	type endpoint struct {
		pos       geometry.Point
		groupID   int
		pathIndex int
		isStart   bool
		color     string
	}

	var endpoints []endpoint
	for _, g := range groups {
		for _, el := range g.Elements {
			endpoints = append(endpoints,
				endpoint{pos: el.Start, groupID: g.GroupID, pathIndex: el.Index, isStart: true, color: g.Color},
				endpoint{pos: el.End, groupID: g.GroupID, pathIndex: el.Index, isStart: false, color: g.Color},
			)
		}
	}

	var breakPoints []geometry.Point
	for _, bc := range broken {
		breakPoints = append(breakPoints, bc.GapStart, bc.GapEnd)
	}

	var circleCenters []geometry.Point
	for _, g := range groups {
		for _, c := range g.Circles {
			circleCenters = append(circleCenters, c.Center)
		}
	}

	type gridKey struct{ x, y int64 }
	counts := make(map[gridKey]int)
	roundKey := func(p geometry.Point) gridKey {
		return gridKey{x: int64(math.Round(p.X)), y: int64(math.Round(p.Y))}
	}
	for _, ep := range endpoints {
		counts[roundKey(ep.pos)]++
	}

	anyNear := func(p geometry.Point, candidates []geometry.Point, tol float64) bool {
		for _, c := range candidates {
			if p.Distance(c) <= tol {
				return true
			}
		}
		return false
	}

	var free []LineEnd
	for _, ep := range endpoints {
		if anyNear(ep.pos, breakPoints, connectionTolerance) {
			continue
		}
		if anyNear(ep.pos, circleCenters, 2*connectionTolerance) {
			continue
		}
		if counts[roundKey(ep.pos)] > 1 {
			continue
		}
		free = append(free, LineEnd{
			Position:  ep.pos,
			Color:     ep.color,
			GroupID:   ep.groupID,
			PathIndex: ep.pathIndex,
			IsStart:   ep.isStart,
		})
	}
	return free
}

// ObjectsFromFiltered converts filtered gap fills, circle pins, and line
// ends into cluster objects, in that order.
func ObjectsFromFiltered(gapFills []GapFill, circlePins []CirclePin, lineEnds []LineEnd) []ClusterObject {
	objects := make([]ClusterObject, 0, len(gapFills)+len(circlePins)+len(lineEnds))
	for _, g := range gapFills {
		objects = append(objects, ClusterObject{
			Position:  g.Center(),
			Kind:      ObjectGap,
			Color:     g.Color,
			GroupID:   g.GroupID,
			PathIndex: g.Path1Index,
		})
	}
	for _, p := range circlePins {
		objects = append(objects, ClusterObject{
			Position:  p.Center,
			Kind:      ObjectCircle,
			Color:     p.Color,
			GroupID:   p.GroupID,
			PathIndex: -1,
		})
	}
	for _, e := range lineEnds {
		objects = append(objects, ClusterObject{
			Position:  e.Position,
			Kind:      ObjectLineEnd,
			Color:     e.Color,
			GroupID:   e.GroupID,
			PathIndex: e.PathIndex,
		})
	}
	return objects
}
