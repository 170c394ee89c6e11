package analysis

import (
	"fmt"

	"schematic-tracer/internal/circle"
	"schematic-tracer/internal/cluster"
	"schematic-tracer/internal/drawing"
	"schematic-tracer/internal/netlist"
	"schematic-tracer/internal/wire"
)

// PageInfo describes the analyzed page.
type PageInfo struct {
	PageNumber    int     `json:"page_number"`
	Width         float64 `json:"width"`
	Height        float64 `json:"height"`
	TotalDrawings int     `json:"total_drawings"`
	Area          float64 `json:"area"`
}

// Statistics summarizes one analysis run numerically.
type Statistics struct {
	TotalElements     int `json:"total_elements"`
	TotalCircles      int `json:"total_circles"`
	TotalPaths        int `json:"total_paths"`
	StructuralGroups  int `json:"structural_groups"`
	TextLikeGroups    int `json:"text_like_groups"`
	SingleElements    int `json:"single_elements"`
	BrokenConnections int `json:"broken_connections"`
	TotalGroups       int `json:"total_groups"`

	DefinitiveCircles int     `json:"definitive_circles"`
	PotentialCircles  int     `json:"potential_circles"`
	AverageGroupSize  float64 `json:"average_group_size"`
	LargestGroupSize  int     `json:"largest_group_size"`
	TotalPathLength   float64 `json:"total_path_length"`
	CoverageRatio     float64 `json:"coverage_ratio"`
}

// Result is the complete outcome of a page analysis. The core fields are
// always populated; Networks and NetworkComponents only after component
// matching, and the cluster fields only after cluster detection.
type Result struct {
	PageInfo PageInfo `json:"page_info"`

	Circles []circle.Circle       `json:"circles"`
	Paths   []drawing.PathElement `json:"paths"`

	StructuralGroups []wire.StructuralGroup `json:"structural_groups"`
	TextLikeGroups   []wire.StructuralGroup `json:"text_like_groups"`
	SingleElements   []drawing.PathElement  `json:"single_elements"`

	BrokenConnections []wire.BrokenConnection `json:"broken_connections"`
	WireJunctions     []wire.WireJunction     `json:"wire_junctions"`
	DetectedElements  []DetectedElement       `json:"detected_elements"`

	Networks          []wire.StructuralGroup `json:"networks,omitempty"`
	Nets              []netlist.Net          `json:"nets,omitempty"`
	NetworkComponents map[string][]string    `json:"network_components,omitempty"`

	Clusters        []*cluster.ObjectCluster    `json:"clusters,omitempty"`
	UnmatchedLabels []cluster.DetectedLabel     `json:"unmatched_labels,omitempty"`
	Components      []cluster.DetectedComponent `json:"components,omitempty"`

	Statistics Statistics `json:"statistics"`
	Config     Config     `json:"config"`
	Timestamp  string     `json:"timestamp"`
}

// Summary returns a human-readable digest of the result.
func (r Result) Summary() string {
	s := r.Statistics
	return fmt.Sprintf(`Page %d analysis (%.1f x %.1f):
  total elements: %d
  groups: %d structural, %d text-like, %d single
  broken connections: %d
  circles: %d definitive, %d potential
  wire junctions: %d
  average group size: %.1f
  largest group: %d elements`,
		r.PageInfo.PageNumber, r.PageInfo.Width, r.PageInfo.Height,
		s.TotalElements,
		s.StructuralGroups, s.TextLikeGroups, s.SingleElements,
		s.BrokenConnections,
		s.DefinitiveCircles, s.PotentialCircles,
		len(r.WireJunctions),
		s.AverageGroupSize,
		s.LargestGroupSize)
}
