// Package netlist merges structural groups into electrical networks and
// matches those networks against component footprints supplied by the
// caller.
package netlist

import (
	"schematic-tracer/internal/wire"
	"schematic-tracer/pkg/geometry"
)

// Params holds the tolerances for network merging and component matching.
type Params struct {
	// PointTolerance is the maximum distance between connection points of
	// two groups for them to belong to the same network.
	PointTolerance float64 `json:"point_tolerance"`
	// BoxTolerance grows a component's bounding box when testing whether a
	// network touches it.
	BoxTolerance float64 `json:"box_tolerance"`
}

// DefaultParams returns the network tolerances matching the wire
// connection tolerance.
func DefaultParams() Params {
	return Params{
		PointTolerance: 2.0,
		BoxTolerance:   5.0,
	}
}

// connectionPoints returns every point through which a group can connect:
// its path endpoints and its circle centers.
func connectionPoints(g wire.StructuralGroup) []geometry.Point {
	pts := g.Endpoints()
	for _, c := range g.Circles {
		pts = append(pts, c.Center)
	}
	return pts
}

// MergeConnectedGroups unions structural groups that share a connection
// point within the point tolerance and returns the merged networks. Lone
// groups come back as single-member networks. The result does not depend on
// input order beyond the numbering of the merged groups, and running the
// merge on its own output changes nothing.
func MergeConnectedGroups(groups []wire.StructuralGroup, params Params) []wire.StructuralGroup {
	uf := wire.NewUnionFind(len(groups))

	points := make([][]geometry.Point, len(groups))
	for i, g := range groups {
		points[i] = connectionPoints(g)
	}

	for i := 0; i < len(groups); i++ {
		for j := i + 1; j < len(groups); j++ {
			if uf.Connected(i, j) {
				continue
			}
			if groupsTouch(points[i], points[j], params.PointTolerance) {
				uf.Union(i, j)
			}
		}
	}

	var merged []wire.StructuralGroup
	for _, members := range uf.Groups() {
		first := groups[members[0]]
		var cg wire.ContinuousGroup
		for _, m := range members {
			cg.Paths = append(cg.Paths, groups[m].Elements...)
			cg.Circles = append(cg.Circles, groups[m].Circles...)
		}
		merged = append(merged,
			wire.NewStructuralGroup(len(merged), first.Color, first.Kind, cg))
	}
	return merged
}

func groupsTouch(a, b []geometry.Point, tolerance float64) bool {
	for _, pa := range a {
		for _, pb := range b {
			if pa.Distance(pb) <= tolerance {
				return true
			}
		}
	}
	return false
}
