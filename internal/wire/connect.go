package wire

import (
	"schematic-tracer/internal/circle"
	"schematic-tracer/internal/drawing"
	"schematic-tracer/pkg/geometry"
)

// Params holds the tolerances for connectivity inference and group
// categorization. Distances are in page units, angles in degrees.
type Params struct {
	// ConnectionTolerance is the maximum endpoint distance treated as a
	// drawn connection.
	ConnectionTolerance float64 `json:"connection_tolerance"`
	// TargetAngle is the meeting angle required for a direct endpoint join.
	TargetAngle float64 `json:"target_angle"`
	// AngleTolerance is the allowed deviation from TargetAngle.
	AngleTolerance float64 `json:"angle_tolerance"`
	// DirectionTolerance is the allowed angular deviation for two segments
	// to count as parallel when bridging broken lines.
	DirectionTolerance float64 `json:"direction_tolerance"`
	// ExtensionLength caps how far a segment is extended past its endpoint
	// when searching for the continuation of a broken line.
	ExtensionLength float64 `json:"extension_length"`
	// LineTolerance is the maximum perpendicular distance from the extended
	// line for a bridged endpoint.
	LineTolerance float64 `json:"line_tolerance"`
	// CircleConnectionTolerance is the reach of a circle when it mediates
	// a connection between paths.
	CircleConnectionTolerance float64 `json:"circle_connection_tolerance"`

	// MinLineLength is the straight-segment length a group must contain to
	// qualify as structural.
	MinLineLength float64 `json:"min_line_length"`
	// MinStructuralGroupSize is the minimum member count of a structural group.
	MinStructuralGroupSize int `json:"min_structural_group_size"`
	// MinTextLikeGroupSize is the minimum member count of a text-like group.
	MinTextLikeGroupSize int `json:"min_text_like_group_size"`
}

// DefaultParams returns the tolerances tuned for schematic pages at their
// native drawing scale.
func DefaultParams() Params {
	return Params{
		ConnectionTolerance:       2.0,
		TargetAngle:               90.0,
		AngleTolerance:            1.0,
		DirectionTolerance:        5.0,
		ExtensionLength:           15.0,
		LineTolerance:             0.5,
		CircleConnectionTolerance: 3.0,
		MinLineLength:             10.0,
		MinStructuralGroupSize:    3,
		MinTextLikeGroupSize:      2,
	}
}

// Builder merges path elements and circles into continuous groups. It runs
// three passes over one shared union-find: direct endpoint joins, parallel
// broken-line bridging, and circle-mediated joins.
type Builder struct {
	params Params
}

// NewBuilder creates a Builder with the given parameters.
func NewBuilder(params Params) *Builder {
	return &Builder{params: params}
}

// Build computes the continuous groups over the given paths and circles and
// returns them together with the broken connections bridged along the way.
// Paths and circles keep their slice order inside each group, and groups are
// ordered by their first member, so the result is deterministic.
func (b *Builder) Build(paths []drawing.PathElement, circles []circle.Circle) ([]ContinuousGroup, []BrokenConnection) {
	uf := NewUnionFind(len(paths) + len(circles))

	for i := 0; i < len(paths); i++ {
		for j := i + 1; j < len(paths); j++ {
			b.joinDirect(uf, paths, circles, i, j)
		}
	}

	var broken []BrokenConnection
	for i := 0; i < len(paths); i++ {
		for j := i + 1; j < len(paths); j++ {
			if bc, bridged := b.bridgeGap(uf, paths, i, j); bridged && bc != nil {
				broken = append(broken, *bc)
			}
		}
	}

	b.joinThroughCircles(uf, paths, circles)

	var groups []ContinuousGroup
	for _, members := range uf.Groups() {
		var g ContinuousGroup
		for _, m := range members {
			if m < len(paths) {
				g.Paths = append(g.Paths, paths[m])
			} else {
				g.Circles = append(g.Circles, circles[m-len(paths)])
			}
		}
		groups = append(groups, g)
	}
	return groups, broken
}

// joinDirect unions two paths whose endpoints coincide within the connection
// tolerance. The first close endpoint pair decides for the whole path pair:
// the join is accepted when a circle covers the meeting point (component
// lead), or when the segments meet at the target angle; otherwise the pair
// stays apart. Remaining endpoint combinations are not examined.
func (b *Builder) joinDirect(uf *UnionFind, paths []drawing.PathElement, circles []circle.Circle, i, j int) {
	for _, p1 := range []geometry.Point{paths[i].Start, paths[i].End} {
		for _, p2 := range []geometry.Point{paths[j].Start, paths[j].End} {
			if p1.Distance(p2) > b.params.ConnectionTolerance {
				continue
			}
			if b.circleAt(circles, p1) || b.circleAt(circles, p2) {
				uf.Union(i, j)
				return
			}
			meeting := p1.Midpoint(p2)
			if geometry.MeetsAtAngle(
				paths[i].Start, paths[i].End,
				paths[j].Start, paths[j].End,
				meeting, b.params.TargetAngle, b.params.AngleTolerance,
			) {
				uf.Union(i, j)
			}
			return
		}
	}
}

// bridgeGap joins two parallel paths when extending one past its endpoint
// reaches an endpoint of the other. It reports whether the pair was bridged;
// a non-nil BrokenConnection is returned only for a real gap, wider than the
// connection tolerance. Touching parallel continuations are unioned silently.
func (b *Builder) bridgeGap(uf *UnionFind, paths []drawing.PathElement, i, j int) (*BrokenConnection, bool) {
	pi, pj := paths[i], paths[j]
	if !geometry.Parallel(pi.Start, pi.End, pj.Start, pj.End, b.params.DirectionTolerance) {
		return nil, false
	}

	ends := [2][2]geometry.Point{
		{pi.End, pi.Start},   // extend past Start
		{pi.Start, pi.End},   // extend past End
	}
	for _, e := range ends {
		from, tip := e[0], e[1]
		extended := geometry.ExtendLine(from, tip, b.params.ExtensionLength)
		for _, p2 := range []geometry.Point{pj.Start, pj.End} {
			if geometry.PointToSegment(p2, tip, extended) > b.params.LineTolerance {
				continue
			}
			gap := tip.Distance(p2)
			if gap > b.params.ExtensionLength {
				continue
			}
			uf.Union(i, j)
			if gap <= b.params.ConnectionTolerance {
				return nil, true
			}
			return &BrokenConnection{
				Path1Index: pi.Index,
				Path2Index: pj.Index,
				GapStart:   tip,
				GapEnd:     p2,
				GapLength:  gap,
			}, true
		}
	}
	return nil, false
}

// joinThroughCircles unions each path with every circle that covers one of
// its endpoints. Paths touching the same circle end up in one group through
// the circle node.
func (b *Builder) joinThroughCircles(uf *UnionFind, paths []drawing.PathElement, circles []circle.Circle) {
	offset := len(paths)
	for i, p := range paths {
		for _, pt := range []geometry.Point{p.Start, p.End} {
			for k := range circles {
				if circles[k].ContainsPoint(pt, b.params.CircleConnectionTolerance) {
					uf.Union(i, offset+k)
				}
			}
		}
	}
}

func (b *Builder) circleAt(circles []circle.Circle, p geometry.Point) bool {
	for k := range circles {
		if circles[k].ContainsPoint(p, b.params.CircleConnectionTolerance) {
			return true
		}
	}
	return false
}
