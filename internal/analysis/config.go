// Package analysis orchestrates the full page pipeline: circle
// classification, connectivity, categorization, junction detection,
// statistics, and the optional network-matching and clustering stages.
package analysis

import (
	"schematic-tracer/internal/circle"
	"schematic-tracer/internal/cluster"
	"schematic-tracer/internal/netlist"
	"schematic-tracer/internal/wire"
)

// Config aggregates the per-package parameters for one analysis run.
type Config struct {
	Circle    circle.Params           `json:"circle"`
	Wire      wire.Params             `json:"wire"`
	Netlist   netlist.Params          `json:"netlist"`
	Cluster   cluster.Settings        `json:"cluster"`
	Component cluster.ComponentParams `json:"component"`
}

// DefaultConfig returns every package's defaults.
func DefaultConfig() Config {
	return Config{
		Circle:    circle.DefaultParams(),
		Wire:      wire.DefaultParams(),
		Netlist:   netlist.DefaultParams(),
		Cluster:   cluster.DefaultSettings(),
		Component: cluster.DefaultComponentParams(),
	}
}
