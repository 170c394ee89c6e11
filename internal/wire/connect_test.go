package wire

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"schematic-tracer/internal/circle"
	"schematic-tracer/internal/drawing"
	"schematic-tracer/pkg/geometry"
)

func seg(index int, x1, y1, x2, y2 float64) drawing.PathElement {
	start := geometry.Point{X: x1, Y: y1}
	end := geometry.Point{X: x2, Y: y2}
	return drawing.NewPathElement(index, drawing.Primitive{
		Commands: []drawing.Command{
			drawing.MoveTo{P: start},
			drawing.LineTo{From: start, To: end},
		},
	})
}

func TestBuildBridgesBrokenWire(t *testing.T) {
	params := DefaultParams()
	params.ExtensionLength = 10

	paths := []drawing.PathElement{
		seg(0, 0, 0, 50, 0),
		seg(1, 50, 0, 100, 0),
		seg(2, 105, 0, 150, 0),
	}

	groups, broken := NewBuilder(params).Build(paths, nil)

	require.Len(t, groups, 1)
	assert.Equal(t, 3, groups[0].Size())

	require.Len(t, broken, 1)
	assert.Equal(t, 1, broken[0].Path1Index)
	assert.Equal(t, 2, broken[0].Path2Index)
	assert.InDelta(t, 5.0, broken[0].GapLength, 1e-9)
}

func TestBuildTouchingContinuationRecordsNoGap(t *testing.T) {
	paths := []drawing.PathElement{
		seg(0, 0, 0, 50, 0),
		seg(1, 50, 0, 100, 0),
	}

	groups, broken := NewBuilder(DefaultParams()).Build(paths, nil)

	require.Len(t, groups, 1)
	assert.Empty(t, broken, "touching colinear segments are a drawn continuation")
}

func TestBuildJoinsPerpendicularMeeting(t *testing.T) {
	paths := []drawing.PathElement{
		seg(0, 0, 0, 50, 0),
		seg(1, 50, 0, 50, 40),
	}

	groups, broken := NewBuilder(DefaultParams()).Build(paths, nil)

	require.Len(t, groups, 1)
	assert.Empty(t, broken)
}

func TestBuildRejectsObliqueMeeting(t *testing.T) {
	paths := []drawing.PathElement{
		seg(0, 0, 0, 50, 0),
		seg(1, 50, 0, 90, 40),
	}

	groups, _ := NewBuilder(DefaultParams()).Build(paths, nil)

	assert.Len(t, groups, 2, "45 degree meeting is not a wire joint")
}

func TestBuildCircleOverridesAngleGate(t *testing.T) {
	paths := []drawing.PathElement{
		seg(0, 0, 0, 50, 0),
		seg(1, 50, 0, 90, 40),
	}
	circles := []circle.Circle{
		{Index: 7, Center: geometry.Point{X: 50, Y: 0}, Radius: 2},
	}

	groups, _ := NewBuilder(DefaultParams()).Build(paths, circles)

	require.Len(t, groups, 1)
	assert.Len(t, groups[0].Paths, 2)
	assert.Len(t, groups[0].Circles, 1)
}

func TestBuildJoinsThroughCircle(t *testing.T) {
	paths := []drawing.PathElement{
		seg(0, 0, 0, 48, 0),
		seg(1, 50, 2, 50, 40),
	}
	circles := []circle.Circle{
		{Index: 3, Center: geometry.Point{X: 50, Y: 0}, Radius: 1.5},
	}

	groups, broken := NewBuilder(DefaultParams()).Build(paths, circles)

	require.Len(t, groups, 1)
	assert.Equal(t, 3, groups[0].Size())
	assert.Empty(t, broken)
}

func TestBuildLeavesDistantPathsApart(t *testing.T) {
	paths := []drawing.PathElement{
		seg(0, 0, 0, 50, 0),
		seg(1, 0, 100, 50, 100),
	}

	groups, broken := NewBuilder(DefaultParams()).Build(paths, nil)

	assert.Len(t, groups, 2)
	assert.Empty(t, broken)
}
