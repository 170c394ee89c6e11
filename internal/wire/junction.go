package wire

import (
	"math"
	"sort"

	"schematic-tracer/internal/drawing"
	"schematic-tracer/pkg/geometry"
)

type bucketKey struct {
	X, Y int64
}

func keyFor(p geometry.Point, tolerance float64) bucketKey {
	return bucketKey{
		X: int64(math.Round(p.X / tolerance)),
		Y: int64(math.Round(p.Y / tolerance)),
	}
}

type endpointRef struct {
	Point     geometry.Point
	PathIndex int
}

// FindWireJunctions locates points where three or more wire endpoints meet.
// Endpoints are bucketed on a grid at the connection tolerance; buckets with
// at least three endpoints become junction candidates at their centroid, and
// candidates whose centroids fall within twice the tolerance are deduplicated
// in favor of the one with more wires.
func FindWireJunctions(paths []drawing.PathElement, params Params) []WireJunction {
	tol := params.ConnectionTolerance

	buckets := make(map[bucketKey][]endpointRef)
	for _, p := range paths {
		for _, pt := range []geometry.Point{p.Start, p.End} {
			k := keyFor(pt, tol)
			buckets[k] = append(buckets[k], endpointRef{Point: pt, PathIndex: p.Index})
		}
	}

	keys := make([]bucketKey, 0, len(buckets))
	for k := range buckets {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].X != keys[j].X {
			return keys[i].X < keys[j].X
		}
		return keys[i].Y < keys[j].Y
	})

	var junctions []WireJunction
	for _, k := range keys {
		refs := buckets[k]
		if len(refs) < 3 {
			continue
		}

		pts := make([]geometry.Point, len(refs))
		seen := make(map[int]bool)
		var indices []int
		for i, r := range refs {
			pts[i] = r.Point
			if !seen[r.PathIndex] {
				seen[r.PathIndex] = true
				indices = append(indices, r.PathIndex)
			}
		}
		if len(indices) < 3 {
			continue
		}
		sort.Ints(indices)

		j := WireJunction{
			Location:             geometry.Centroid(pts),
			WireCount:            len(indices),
			ConnectedPathIndices: indices,
			Kind:                 junctionKind(len(indices)),
		}

		if dup := findNearby(junctions, j.Location, 2*tol); dup >= 0 {
			if j.WireCount > junctions[dup].WireCount {
				junctions[dup] = j
			}
			continue
		}
		junctions = append(junctions, j)
	}
	return junctions
}

func junctionKind(wires int) JunctionKind {
	switch wires {
	case 3:
		return JunctionTee
	case 4:
		return JunctionCross
	default:
		return JunctionMultiWire
	}
}

func findNearby(junctions []WireJunction, p geometry.Point, radius float64) int {
	for i := range junctions {
		if junctions[i].Location.Distance(p) <= radius {
			return i
		}
	}
	return -1
}
