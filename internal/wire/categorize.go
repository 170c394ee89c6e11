package wire

import (
	"schematic-tracer/internal/drawing"
	"schematic-tracer/pkg/colorutil"
)

// CategorizeResult is the output of group categorization. Group IDs are
// dense per bucket, assigned in input order.
type CategorizeResult struct {
	Structural []StructuralGroup     `json:"structural"`
	TextLike   []StructuralGroup     `json:"text_like"`
	Singles    []drawing.PathElement `json:"singles"`
}

// Categorize buckets continuous groups by their likely role. A group is
// structural when it is large enough and contains at least one straight
// segment of the minimum line length; smaller multi-member groups without
// long lines are text-like; everything else is listed as single elements.
// Structural groups receive distinct colors, text-like groups share a grey.
func Categorize(groups []ContinuousGroup, params Params) CategorizeResult {
	var res CategorizeResult
	for _, g := range groups {
		switch {
		case g.Size() >= params.MinStructuralGroupSize && hasLongLine(g, params.MinLineLength):
			id := len(res.Structural)
			res.Structural = append(res.Structural,
				NewStructuralGroup(id, colorutil.GroupColor(id), KindStructural, g))
		case g.Size() >= params.MinTextLikeGroupSize:
			id := len(res.TextLike)
			res.TextLike = append(res.TextLike,
				NewStructuralGroup(id, colorutil.TextLikeGrey, KindTextLike, g))
		default:
			res.Singles = append(res.Singles, g.Paths...)
		}
	}
	return res
}

func hasLongLine(g ContinuousGroup, minLength float64) bool {
	for _, el := range g.Paths {
		if el.HasLineLongerThan(minLength) {
			return true
		}
	}
	return false
}
