package cluster

import (
	"math"

	"gonum.org/v1/gonum/stat"

	"schematic-tracer/pkg/colorutil"
	"schematic-tracer/pkg/geometry"
)

// ObjectKind identifies what a cluster object was derived from.
type ObjectKind string

const (
	ObjectGap     ObjectKind = "gap"
	ObjectCircle  ObjectKind = "circle"
	ObjectLineEnd ObjectKind = "line_end"
)

// ClusterObject is a single point-like object fed to the clusterer.
// PathIndex is -1 for circle pins, which have no originating path.
type ClusterObject struct {
	Position  geometry.Point `json:"position"`
	Kind      ObjectKind     `json:"kind"`
	Color     string         `json:"color"`
	GroupID   int            `json:"group_id"`
	PathIndex int            `json:"path_index"`
}

// DetectedLabel is a component designator found on the page, supplied by
// the caller together with its text box.
type DetectedLabel struct {
	Text string        `json:"text"`
	BBox geometry.Rect `json:"bbox"`
}

// Center returns the center of the label's text box.
func (l DetectedLabel) Center() geometry.Point { return l.BBox.Center() }

// ObjectCluster is a group of objects that may form one component. Label is
// set by the matching step; it stays nil for anonymous clusters.
type ObjectCluster struct {
	ID      int             `json:"id"`
	Objects []ClusterObject `json:"objects"`
	Label   *DetectedLabel  `json:"label,omitempty"`
}

const clusterBoxPadding = 5.0

// BBox returns the padded bounding box of the cluster's object positions.
func (c *ObjectCluster) BBox() geometry.Rect {
	if len(c.Objects) == 0 {
		return geometry.Rect{}
	}
	pts := make([]geometry.Point, len(c.Objects))
	for i, o := range c.Objects {
		pts[i] = o.Position
	}
	return geometry.BoundingBox(pts).Grow(clusterBoxPadding)
}

// Center returns the centroid of the cluster's object positions.
func (c *ObjectCluster) Center() geometry.Point {
	pts := make([]geometry.Point, len(c.Objects))
	for i, o := range c.Objects {
		pts[i] = o.Position
	}
	return geometry.Centroid(pts)
}

// PrimaryColor returns the most common object color. Ties go to the color
// seen first; an empty cluster gets the default green.
func (c *ObjectCluster) PrimaryColor() string {
	if len(c.Objects) == 0 {
		return colorutil.DefaultGreen
	}
	counts := make(map[string]int)
	best := ""
	for _, o := range c.Objects {
		counts[o.Color]++
		if best == "" || counts[o.Color] > counts[best] {
			best = o.Color
		}
	}
	return best
}

// AverageInternalSpacing returns the mean nearest-neighbor weighted
// distance between the cluster's objects. Singleton clusters have no
// internal spacing and return +Inf.
func (c *ObjectCluster) AverageInternalSpacing(verticalWeight float64) float64 {
	if len(c.Objects) < 2 {
		return math.Inf(1)
	}
	nn := make([]float64, len(c.Objects))
	for i := range c.Objects {
		closest := math.Inf(1)
		for j := range c.Objects {
			if i == j {
				continue
			}
			d := WeightedDistance(c.Objects[i].Position, c.Objects[j].Position, verticalWeight)
			if d < closest {
				closest = d
			}
		}
		nn[i] = closest
	}
	return stat.Mean(nn, nil)
}

// WeightedDistance is the anisotropic distance between two points, with the
// vertical offset multiplied by verticalWeight.
func WeightedDistance(p1, p2 geometry.Point, verticalWeight float64) float64 {
	dx := p1.X - p2.X
	dy := (p1.Y - p2.Y) * verticalWeight
	return math.Sqrt(dx*dx + dy*dy)
}

// minClusterDistance is the smallest weighted distance between any object
// of a and any object of b.
func minClusterDistance(a, b *ObjectCluster, verticalWeight float64) float64 {
	best := math.Inf(1)
	for _, oa := range a.Objects {
		for _, ob := range b.Objects {
			if d := WeightedDistance(oa.Position, ob.Position, verticalWeight); d < best {
				best = d
			}
		}
	}
	return best
}

// clustersShareColor reports whether any object color occurs in both
// clusters.
func clustersShareColor(a, b *ObjectCluster) bool {
	colors := make(map[string]bool, len(a.Objects))
	for _, o := range a.Objects {
		colors[o.Color] = true
	}
	for _, o := range b.Objects {
		if colors[o.Color] {
			return true
		}
	}
	return false
}
