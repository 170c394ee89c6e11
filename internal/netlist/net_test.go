package netlist

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"schematic-tracer/internal/circle"
	"schematic-tracer/internal/drawing"
	"schematic-tracer/internal/wire"
	"schematic-tracer/pkg/geometry"
)

func TestBuildNets(t *testing.T) {
	networks := []wire.StructuralGroup{
		wire.NewStructuralGroup(0, "#00aa00", wire.KindStructural, wire.ContinuousGroup{
			Paths: []drawing.PathElement{seg(3, 0, 0, 50, 0)},
			Circles: []circle.Circle{
				{Index: 7, Center: geometry.Point{X: 50, Y: 0}, Radius: 2},
			},
		}),
		group(1, seg(8, 0, 200, 50, 200)),
	}
	matches := map[string][]string{"NET-001": {"R1", "C3"}}

	nets := BuildNets(networks, matches)
	require.Len(t, nets, 2)

	first := nets[0]
	assert.Equal(t, "NET-001", first.ID)
	assert.Equal(t, "NET-001", first.Name)
	assert.Equal(t, 1, first.WireCount)
	assert.Equal(t, 1, first.CircleCount)
	assert.Equal(t, []string{"R1", "C3"}, first.ComponentIDs)

	wires := first.ElementsByType(ElementWire)
	require.Len(t, wires, 1)
	assert.Equal(t, "path-3", wires[0].ID)
	assert.Equal(t, geometry.Point{X: 25, Y: 0}, wires[0].Position)

	circles := first.ElementsByType(ElementCircle)
	require.Len(t, circles, 1)
	assert.Equal(t, "circle-7", circles[0].ID)

	second := nets[1]
	assert.Equal(t, "NET-002", second.ID)
	assert.Empty(t, second.ComponentIDs)
	assert.Empty(t, second.ElementsByType(ElementComponent))
}
