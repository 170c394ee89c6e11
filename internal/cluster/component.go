package cluster

import (
	"math"
	"sort"

	"schematic-tracer/pkg/colorutil"
	"schematic-tracer/pkg/geometry"
)

// ComponentParams controls label-anchored component assembly.
type ComponentParams struct {
	// MaxHorizontalDistance gates element-to-label assignment horizontally.
	MaxHorizontalDistance float64 `json:"max_horizontal_distance"`
	// MaxVerticalDistance gates element-to-label assignment vertically.
	MaxVerticalDistance float64 `json:"max_vertical_distance"`
	// VerticalWeight penalizes vertical distance in the assignment order.
	VerticalWeight float64 `json:"vertical_weight"`
	// MinComponentSize is the minimum side length of a component box.
	MinComponentSize float64 `json:"min_component_size"`
	// Padding grows the component box after expansion.
	Padding float64 `json:"padding"`
	// DottedLineThreshold is the gap ratio above which a group's breaks are
	// treated as a dotted line rather than component evidence.
	DottedLineThreshold float64 `json:"dotted_line_threshold"`
	// ConnectionTolerance is the endpoint tolerance for the line-end filter.
	ConnectionTolerance float64 `json:"connection_tolerance"`
}

// DefaultComponentParams returns the assembly parameters tuned for
// horizontally laid-out schematics.
func DefaultComponentParams() ComponentParams {
	return ComponentParams{
		MaxHorizontalDistance: 100.0,
		MaxVerticalDistance:   40.0,
		VerticalWeight:        3.0,
		MinComponentSize:      20.0,
		Padding:               5.0,
		DottedLineThreshold:   0.10,
		ConnectionTolerance:   3.0,
	}
}

// DetectedComponent is a label together with the circuit elements assigned
// to it and the resulting bounding box.
type DetectedComponent struct {
	ID         int            `json:"id"`
	Label      DetectedLabel  `json:"label"`
	GapFills   []GapFill      `json:"gap_fills,omitempty"`
	CirclePins []CirclePin    `json:"circle_pins,omitempty"`
	LineEnds   []LineEnd      `json:"line_ends,omitempty"`
	BBox       geometry.Rect  `json:"bbox"`
	Confidence float64        `json:"confidence"`
	Color      string         `json:"color"`
}

// Name returns the component's label text.
func (c DetectedComponent) Name() string { return c.Label.Text }

// ElementCount returns the number of elements assigned to the component.
func (c DetectedComponent) ElementCount() int {
	return len(c.GapFills) + len(c.CirclePins) + len(c.LineEnds)
}

// DetectComponents assigns gap fills, circle pins, and line ends to labels
// greedily by weighted distance, closest pair first, each element used once.
// Per label, the box grows over its elements, is expanded to the minimum
// size plus padding, and then shrunk against earlier boxes without ever
// hiding the label. Confidence rises with element count; a bare label gets
// a low constant. Components come back sorted by confidence, highest first.
func DetectComponents(labels []DetectedLabel, gapFills []GapFill, circlePins []CirclePin, lineEnds []LineEnd, params ComponentParams) []DetectedComponent {
	type assignment struct {
		dist float64
		kind ObjectKind
		idx  int
		li   int
	}

	inRange := func(labelCenter, elemCenter geometry.Point) bool {
		return math.Abs(labelCenter.X-elemCenter.X) <= params.MaxHorizontalDistance &&
			math.Abs(labelCenter.Y-elemCenter.Y) <= params.MaxVerticalDistance
	}

	var assignments []assignment
	for li, label := range labels {
		center := label.Center()
		for gi, gap := range gapFills {
			if inRange(center, gap.Center()) {
				assignments = append(assignments, assignment{
					dist: WeightedDistance(center, gap.Center(), params.VerticalWeight),
					kind: ObjectGap, idx: gi, li: li,
				})
			}
		}
		for ci, pin := range circlePins {
			if inRange(center, pin.Center) {
				assignments = append(assignments, assignment{
					dist: WeightedDistance(center, pin.Center, params.VerticalWeight),
					kind: ObjectCircle, idx: ci, li: li,
				})
			}
		}
		for ei, end := range lineEnds {
			if inRange(center, end.Position) {
				assignments = append(assignments, assignment{
					dist: WeightedDistance(center, end.Position, params.VerticalWeight),
					kind: ObjectLineEnd, idx: ei, li: li,
				})
			}
		}
	}
	sort.SliceStable(assignments, func(i, j int) bool {
		return assignments[i].dist < assignments[j].dist
	})

	labelGaps := make(map[int][]GapFill)
	labelPins := make(map[int][]CirclePin)
	labelEnds := make(map[int][]LineEnd)
	usedGaps := make(map[int]bool)
	usedPins := make(map[int]bool)
	usedEnds := make(map[int]bool)

	for _, a := range assignments {
		switch a.kind {
		case ObjectGap:
			if usedGaps[a.idx] {
				continue
			}
			labelGaps[a.li] = append(labelGaps[a.li], gapFills[a.idx])
			usedGaps[a.idx] = true
		case ObjectCircle:
			if usedPins[a.idx] {
				continue
			}
			labelPins[a.li] = append(labelPins[a.li], circlePins[a.idx])
			usedPins[a.idx] = true
		case ObjectLineEnd:
			if usedEnds[a.idx] {
				continue
			}
			labelEnds[a.li] = append(labelEnds[a.li], lineEnds[a.idx])
			usedEnds[a.idx] = true
		}
	}

	var components []DetectedComponent
	var placed []geometry.Rect
	for li, label := range labels {
		gaps := labelGaps[li]
		pins := labelPins[li]
		ends := labelEnds[li]

		elements := len(gaps) + len(pins) + len(ends)
		confidence := 0.3
		if elements > 0 {
			confidence = math.Min(0.95, 0.5+float64(elements)*0.1)
		}

		box := componentBox(label, gaps, pins, ends, params)
		box = shrinkToAvoidOverlap(box, placed, label.BBox)

		color := colorutil.DefaultGreen
		switch {
		case len(gaps) > 0:
			color = gaps[0].Color
		case len(pins) > 0:
			color = pins[0].Color
		case len(ends) > 0:
			color = ends[0].Color
		}

		components = append(components, DetectedComponent{
			ID:         li,
			Label:      label,
			GapFills:   gaps,
			CirclePins: pins,
			LineEnds:   ends,
			BBox:       box,
			Confidence: confidence,
			Color:      color,
		})
		placed = append(placed, box)
	}

	sort.SliceStable(components, func(i, j int) bool {
		return components[i].Confidence > components[j].Confidence
	})
	return components
}

// componentBox covers the label and every assigned element, expanded to the
// minimum component size and padded.
func componentBox(label DetectedLabel, gaps []GapFill, pins []CirclePin, ends []LineEnd, params ComponentParams) geometry.Rect {
	box := label.BBox
	for _, g := range gaps {
		box = box.Union(g.BBox())
	}
	for _, p := range pins {
		box = box.Union(p.BBox())
	}
	for _, e := range ends {
		box = box.Union(e.BBox())
	}

	if box.Width < params.MinComponentSize {
		expand := (params.MinComponentSize - box.Width) / 2
		box.X -= expand
		box.Width = params.MinComponentSize
	}
	if box.Height < params.MinComponentSize {
		expand := (params.MinComponentSize - box.Height) / 2
		box.Y -= expand
		box.Height = params.MinComponentSize
	}
	return box.Grow(params.Padding)
}

// shrinkToAvoidOverlap pulls the box's sides in until it no longer overlaps
// any earlier box, refusing any cut that would clip the label.
func shrinkToAvoidOverlap(box geometry.Rect, placed []geometry.Rect, labelBox geometry.Rect) geometry.Rect {
	x0, y0 := box.X, box.Y
	x1, y1 := box.MaxX(), box.MaxY()
	lx0, ly0 := labelBox.X, labelBox.Y
	lx1, ly1 := labelBox.MaxX(), labelBox.MaxY()

	for _, other := range placed {
		if !geometry.RectFromCorners(geometry.Point{X: x0, Y: y0}, geometry.Point{X: x1, Y: y1}).Intersects(other) {
			continue
		}
		ex0, ey0 := other.X, other.Y
		ex1, ey1 := other.MaxX(), other.MaxY()

		if x0 < ex1 && x1 > ex1 {
			if nx0 := math.Max(x0, ex1+1); nx0 <= lx0 {
				x0 = nx0
				continue
			}
		}
		if x1 > ex0 && x0 < ex0 {
			if nx1 := math.Min(x1, ex0-1); nx1 >= lx1 {
				x1 = nx1
				continue
			}
		}
		if y0 < ey1 && y1 > ey1 {
			if ny0 := math.Max(y0, ey1+1); ny0 <= ly0 {
				y0 = ny0
				continue
			}
		}
		if y1 > ey0 && y0 < ey0 {
			if ny1 := math.Min(y1, ey0-1); ny1 >= ly1 {
				y1 = ny1
			}
		}
	}
	return geometry.RectFromCorners(geometry.Point{X: x0, Y: y0}, geometry.Point{X: x1, Y: y1})
}
