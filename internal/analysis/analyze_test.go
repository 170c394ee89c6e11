package analysis

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"schematic-tracer/internal/cluster"
	"schematic-tracer/internal/drawing"
	"schematic-tracer/internal/netlist"
	"schematic-tracer/internal/wire"
	"schematic-tracer/pkg/geometry"
)

func line(x1, y1, x2, y2 float64) drawing.Primitive {
	start := geometry.Point{X: x1, Y: y1}
	end := geometry.Point{X: x2, Y: y2}
	return drawing.Primitive{Commands: []drawing.Command{
		drawing.MoveTo{P: start},
		drawing.LineTo{From: start, To: end},
	}}
}

func regularPolygon(cx, cy, radius float64, sides int) drawing.Primitive {
	pts := make([]geometry.Point, sides)
	for i := 0; i < sides; i++ {
		angle := 2 * math.Pi * float64(i) / float64(sides)
		pts[i] = geometry.Point{X: cx + radius*math.Cos(angle), Y: cy + radius*math.Sin(angle)}
	}
	cmds := []drawing.Command{drawing.MoveTo{P: pts[0]}}
	for i := 1; i < sides; i++ {
		cmds = append(cmds, drawing.LineTo{From: pts[i-1], To: pts[i]})
	}
	cmds = append(cmds, drawing.LineTo{From: pts[sides-1], To: pts[0]})
	return drawing.Primitive{Commands: cmds, Closed: true}
}

// testPage holds a wire run with one deliberate break, a terminal circle,
// a small text-like pair, and a stray mark.
func testPage() drawing.Page {
	return drawing.Page{
		Number: 1,
		Width:  600,
		Height: 600,
		Primitives: []drawing.Primitive{
			line(0, 0, 50, 0),
			line(50, 0, 50, 40),
			line(50, 40, 100, 40),
			line(105, 40, 150, 40), // broken continuation of the run
			regularPolygon(300, 300, 5, 12),
			line(400, 10, 403, 10),
			line(403, 10, 403, 13),
			line(500, 500, 504, 500),
		},
	}
}

func TestAnalyzePage(t *testing.T) {
	result := NewAnalyzer(DefaultConfig(), nil).AnalyzePage(testPage())

	assert.Equal(t, 1, result.PageInfo.PageNumber)
	assert.Equal(t, 8, result.PageInfo.TotalDrawings)

	require.Len(t, result.StructuralGroups, 1)
	assert.Len(t, result.StructuralGroups[0].Elements, 4)
	assert.Len(t, result.TextLikeGroups, 1)
	assert.Len(t, result.SingleElements, 1)

	require.Len(t, result.BrokenConnections, 1)
	assert.InDelta(t, 5.0, result.BrokenConnections[0].GapLength, 1e-9)

	assert.Equal(t, 1, result.Statistics.DefinitiveCircles)
	assert.Equal(t, 0, result.Statistics.PotentialCircles)
	assert.Equal(t, 4, result.Statistics.LargestGroupSize)
	assert.Equal(t, 7, result.Statistics.TotalPaths)

	// One break element, no junctions on this page.
	require.Len(t, result.DetectedElements, 1)
	assert.Equal(t, "wire_break", result.DetectedElements[0].Kind)
	assert.Equal(t, "Break-1", result.DetectedElements[0].Label)

	assert.Contains(t, result.Summary(), "Page 1")
}

func TestMatchComponents(t *testing.T) {
	analyzer := NewAnalyzer(DefaultConfig(), nil)
	result := analyzer.AnalyzePage(testPage())

	components := []netlist.CircuitComponent{
		{ID: "X1", BBox: geometry.NewRect(-10, -10, 20, 20)},
		{ID: "FAR", BBox: geometry.NewRect(1000, 1000, 10, 10)},
	}
	analyzer.MatchComponents(&result, components)

	require.Len(t, result.Networks, 1)
	assert.Equal(t, []string{"X1"}, result.NetworkComponents["NET-001"])
}

func TestDetectClusters(t *testing.T) {
	analyzer := NewAnalyzer(DefaultConfig(), nil)
	result := analyzer.AnalyzePage(testPage())

	labels := []cluster.DetectedLabel{
		{Text: "-X1", BBox: geometry.NewRect(90, 50, 20, 10)},
	}
	analyzer.DetectClusters(&result, labels)

	require.NotEmpty(t, result.Clusters)
	assert.Empty(t, result.UnmatchedLabels)

	require.Len(t, result.Components, 1)
	assert.Equal(t, "-X1", result.Components[0].Name())
	assert.Greater(t, result.Components[0].ElementCount(), 0)
	assert.Greater(t, result.Components[0].Confidence, 0.5)
}

func TestCreateDetectedElements(t *testing.T) {
	broken := []wire.BrokenConnection{
		{
			Path1Index: 0, Path2Index: 1,
			GapStart: geometry.Point{X: 100, Y: 40}, GapEnd: geometry.Point{X: 105, Y: 40},
			GapLength: 5,
		},
	}
	junctions := []wire.WireJunction{
		{Location: geometry.Point{X: 50, Y: 50}, WireCount: 3, Kind: wire.JunctionTee},
		{Location: geometry.Point{X: 80, Y: 50}, WireCount: 4, Kind: wire.JunctionCross},
	}

	elements := CreateDetectedElements(broken, junctions)
	require.Len(t, elements, 3)

	brk := elements[0]
	assert.Equal(t, "wire_break", brk.Kind)
	assert.InDelta(t, 0.7, brk.Confidence, 1e-9)
	// 5-wide gap plus 8 padding each side makes 21; height expands to the
	// 12-unit minimum.
	assert.InDelta(t, 21.0, brk.BBox.Width, 1e-9)
	assert.InDelta(t, 16.0, brk.BBox.Height, 1e-9)

	tee := elements[1]
	assert.Equal(t, "junction", tee.Kind)
	assert.InDelta(t, 0.6, tee.Confidence, 1e-9)
	assert.Equal(t, "Junc-2 (3)", tee.Label)

	cross := elements[2]
	assert.InDelta(t, 0.8, cross.Confidence, 1e-9)
	assert.InDelta(t, 15.0, cross.BBox.Width, 1e-9)
	assert.Equal(t, geometry.Point{X: 80, Y: 50}, cross.BBox.Center())
}
