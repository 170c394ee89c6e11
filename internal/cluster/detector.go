package cluster

import (
	"math"
	"sort"

	"go.uber.org/zap"

	"schematic-tracer/internal/wire"
	"schematic-tracer/pkg/geometry"
)

// Detector runs density-adaptive agglomerative clustering over circuit
// objects and matches labels to the resulting clusters.
type Detector struct {
	settings Settings
	logger   *zap.Logger
}

// NewDetector creates a Detector. A nil logger disables logging.
func NewDetector(settings Settings, logger *zap.Logger) *Detector {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Detector{settings: settings, logger: logger}
}

// DetectClusters runs the full pipeline: filter the inputs down to gap
// fills, circle pins, and free line ends, cluster them, then match labels.
// dottedThreshold and connectionTolerance parameterize the filters.
func (d *Detector) DetectClusters(
	broken []wire.BrokenConnection,
	groups []wire.StructuralGroup,
	labels []DetectedLabel,
	dottedThreshold, connectionTolerance float64,
) ([]*ObjectCluster, []DetectedLabel) {
	gapFills := FilterGapFills(broken, groups, dottedThreshold)
	circlePins := FilterCirclePins(groups)
	lineEnds := FilterLineEnds(groups, broken, connectionTolerance)
	d.logger.Debug("cluster inputs filtered",
		zap.Int("gap_fills", len(gapFills)),
		zap.Int("circle_pins", len(circlePins)),
		zap.Int("line_ends", len(lineEnds)))

	objects := ObjectsFromFiltered(gapFills, circlePins, lineEnds)
	clusters := d.Cluster(objects, labels)
	unmatched := d.MatchLabels(clusters, labels)
	return clusters, unmatched
}

type pairKey struct{ lo, hi int }

func makePairKey(a, b int) pairKey {
	if a > b {
		a, b = b, a
	}
	return pairKey{lo: a, hi: b}
}

// Cluster performs agglomerative clustering. Each object starts as its own
// cluster; the closest pair merges as long as the merge is acceptable.
// A merge that would swallow a label is forbidden for that pair and the
// next closest pair is tried; a merge rejected on distance ends the loop,
// because no closer pair remains.
func (d *Detector) Cluster(objects []ClusterObject, labels []DetectedLabel) []*ObjectCluster {
	if len(objects) == 0 {
		return nil
	}

	clusters := make([]*ObjectCluster, len(objects))
	for i, obj := range objects {
		clusters[i] = &ObjectCluster{ID: i, Objects: []ClusterObject{obj}}
	}

	nextID := len(clusters)
	forbidden := make(map[pairKey]bool)
	merges := 0

	for len(clusters) > 1 {
		bestDist := math.Inf(1)
		bestI, bestJ := -1, -1
		for i := 0; i < len(clusters); i++ {
			for j := i + 1; j < len(clusters); j++ {
				if forbidden[makePairKey(clusters[i].ID, clusters[j].ID)] {
					continue
				}
				if dist := minClusterDistance(clusters[i], clusters[j], d.settings.VerticalWeight); dist < bestDist {
					bestDist = dist
					bestI, bestJ = i, j
				}
			}
		}
		if bestI < 0 {
			break
		}

		a, b := clusters[bestI], clusters[bestJ]

		if len(labels) > 0 && d.settings.LabelSubsumeThreshold < 1.0 &&
			d.mergeWouldSubsumeLabel(a, b, labels) {
			forbidden[makePairKey(a.ID, b.ID)] = true
			continue
		}

		if !d.shouldMerge(a, b, bestDist) {
			break
		}

		merged := &ObjectCluster{
			ID:      nextID,
			Objects: append(append([]ClusterObject{}, a.Objects...), b.Objects...),
		}
		nextID++
		merges++

		remaining := clusters[:0]
		for idx, c := range clusters {
			if idx != bestI && idx != bestJ {
				remaining = append(remaining, c)
			}
		}
		clusters = append(remaining, merged)
	}

	for i, c := range clusters {
		c.ID = i
	}

	d.logger.Debug("clustering finished",
		zap.Int("objects", len(objects)),
		zap.Int("clusters", len(clusters)),
		zap.Int("merges", merges),
		zap.Int("forbidden_pairs", len(forbidden)))
	return clusters
}

// shouldMerge decides a merge on distance and density. Different-color
// clusters see an inflated gap. Very close clusters always merge, gaps over
// MaxGap never do, and in between the gap must be within DensityFactor of
// the tighter cluster's internal spacing. Two singletons have no internal
// spacing and fall back to twice the absolute minimum gap.
func (d *Detector) shouldMerge(a, b *ObjectCluster, gap float64) bool {
	effective := gap
	if !clustersShareColor(a, b) {
		effective *= d.settings.CrossColorPenalty
	}

	if effective <= d.settings.AbsoluteMinGap {
		return true
	}
	if effective > d.settings.MaxGap {
		return false
	}

	spacingA := a.AverageInternalSpacing(d.settings.VerticalWeight)
	spacingB := b.AverageInternalSpacing(d.settings.VerticalWeight)
	if math.IsInf(spacingA, 1) && math.IsInf(spacingB, 1) {
		return effective <= d.settings.AbsoluteMinGap*2
	}

	reference := math.Min(spacingA, spacingB)
	return effective <= reference*d.settings.DensityFactor
}

// mergeWouldSubsumeLabel reports whether merging a and b would cover more
// of a label than the threshold allows, when neither cluster alone already
// does. Only the merging pair is examined; a label already subsumed by one
// side does not block the merge.
func (d *Detector) mergeWouldSubsumeLabel(a, b *ObjectCluster, labels []DetectedLabel) bool {
	boxA := a.BBox()
	boxB := b.BBox()
	mergedBox := boxA.Union(boxB)

	for _, label := range labels {
		ratio := subsumeRatio(mergedBox, label.BBox)
		if ratio <= d.settings.LabelSubsumeThreshold {
			continue
		}
		if subsumeRatio(boxA, label.BBox) <= d.settings.LabelSubsumeThreshold &&
			subsumeRatio(boxB, label.BBox) <= d.settings.LabelSubsumeThreshold {
			return true
		}
	}
	return false
}

// subsumeRatio is the fraction of the label box covered by the cluster box.
func subsumeRatio(clusterBox, labelBox geometry.Rect) float64 {
	labelArea := labelBox.Area()
	if labelArea <= 0 {
		return 0
	}
	return clusterBox.Intersection(labelBox).Area() / labelArea
}

// MatchLabels assigns labels to clusters greedily by weighted distance,
// closest pair first, one label per cluster. Larger clusters accept labels
// further away: the reach grows with the cluster diagonal. The labels left
// unassigned are returned.
func (d *Detector) MatchLabels(clusters []*ObjectCluster, labels []DetectedLabel) []DetectedLabel {
	if len(clusters) == 0 || len(labels) == 0 {
		return labels
	}

	type candidate struct {
		dist float64
		ci   int
		li   int
	}
	var candidates []candidate
	for ci, c := range clusters {
		reach := d.settings.LabelMaxDistance +
			d.settings.LabelClusterSizeFactor*c.BBox().Diagonal()
		center := c.Center()
		for li, label := range labels {
			dist := WeightedDistance(center, label.Center(), d.settings.VerticalWeight)
			if dist <= reach {
				candidates = append(candidates, candidate{dist: dist, ci: ci, li: li})
			}
		}
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].dist < candidates[j].dist
	})

	usedClusters := make(map[int]bool)
	usedLabels := make(map[int]bool)
	for _, cand := range candidates {
		if usedClusters[cand.ci] || usedLabels[cand.li] {
			continue
		}
		label := labels[cand.li]
		clusters[cand.ci].Label = &label
		usedClusters[cand.ci] = true
		usedLabels[cand.li] = true
	}

	var unmatched []DetectedLabel
	for li, label := range labels {
		if !usedLabels[li] {
			unmatched = append(unmatched, label)
		}
	}
	d.logger.Debug("labels matched",
		zap.Int("labeled_clusters", len(usedLabels)),
		zap.Int("unmatched_labels", len(unmatched)))
	return unmatched
}
