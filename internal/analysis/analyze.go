package analysis

import (
	"time"

	"go.uber.org/zap"

	"schematic-tracer/internal/circle"
	"schematic-tracer/internal/cluster"
	"schematic-tracer/internal/drawing"
	"schematic-tracer/internal/netlist"
	"schematic-tracer/internal/wire"
)

// Analyzer runs the page pipeline with one Config.
type Analyzer struct {
	cfg    Config
	logger *zap.Logger
}

// NewAnalyzer creates an Analyzer. A nil logger disables logging.
func NewAnalyzer(cfg Config, logger *zap.Logger) *Analyzer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Analyzer{cfg: cfg, logger: logger}
}

// AnalyzePage runs the core pipeline over one page: circle classification,
// path extraction, connectivity, group categorization, junction detection,
// element reporting, and statistics.
func (a *Analyzer) AnalyzePage(page drawing.Page) Result {
	a.logger.Info("analyzing page",
		zap.Int("page", page.Number),
		zap.Int("primitives", len(page.Primitives)))

	info := PageInfo{
		PageNumber:    page.Number,
		Width:         page.Width,
		Height:        page.Height,
		TotalDrawings: len(page.Primitives),
		Area:          page.Area(),
	}

	definitive, potential := circle.AnalyzePage(page, a.cfg.Circle)
	allCircles := append(append([]circle.Circle{}, definitive...), potential...)
	a.logger.Debug("circles classified",
		zap.Int("definitive", len(definitive)),
		zap.Int("potential", len(potential)))

	circleIndices := make(map[int]bool, len(allCircles))
	for _, c := range allCircles {
		circleIndices[c.Index] = true
	}
	paths := drawing.ExtractPathElements(page, circleIndices)

	// Only definitive circles take part in connectivity; potential ones
	// are reported but conduct nothing.
	builder := wire.NewBuilder(a.cfg.Wire)
	groups, broken := builder.Build(paths, definitive)
	a.logger.Debug("connectivity built",
		zap.Int("groups", len(groups)),
		zap.Int("broken_connections", len(broken)))

	cat := wire.Categorize(groups, a.cfg.Wire)
	junctions := wire.FindWireJunctions(paths, a.cfg.Wire)
	elements := CreateDetectedElements(broken, junctions)

	result := Result{
		PageInfo:          info,
		Circles:           allCircles,
		Paths:             paths,
		StructuralGroups:  cat.Structural,
		TextLikeGroups:    cat.TextLike,
		SingleElements:    cat.Singles,
		BrokenConnections: broken,
		WireJunctions:     junctions,
		DetectedElements:  elements,
		Config:            a.cfg,
		Timestamp:         time.Now().Format(time.RFC3339),
	}
	result.Statistics = computeStatistics(result, definitive, potential, groups)

	a.logger.Info("page analyzed",
		zap.Int("structural_groups", len(cat.Structural)),
		zap.Int("junctions", len(junctions)))
	return result
}

// MatchComponents merges the result's structural groups into networks and
// records which caller components each network touches.
func (a *Analyzer) MatchComponents(result *Result, components []netlist.CircuitComponent) {
	result.Networks = netlist.MergeConnectedGroups(result.StructuralGroups, a.cfg.Netlist)
	result.NetworkComponents = netlist.CheckIntersections(result.Networks, components, a.cfg.Netlist)
	result.Nets = netlist.BuildNets(result.Networks, result.NetworkComponents)
	a.logger.Info("networks matched",
		zap.Int("networks", len(result.Networks)),
		zap.Int("connected_networks", len(result.NetworkComponents)))
}

// DetectClusters runs the clustering stage over the result using caller
// supplied labels, and assembles label-anchored components from the same
// filtered inputs.
func (a *Analyzer) DetectClusters(result *Result, labels []cluster.DetectedLabel) {
	gapFills := cluster.FilterGapFills(result.BrokenConnections, result.StructuralGroups, a.cfg.Component.DottedLineThreshold)
	circlePins := cluster.FilterCirclePins(result.StructuralGroups)
	lineEnds := cluster.FilterLineEnds(result.StructuralGroups, result.BrokenConnections, a.cfg.Component.ConnectionTolerance)

	detector := cluster.NewDetector(a.cfg.Cluster, a.logger)
	objects := cluster.ObjectsFromFiltered(gapFills, circlePins, lineEnds)
	result.Clusters = detector.Cluster(objects, labels)
	result.UnmatchedLabels = detector.MatchLabels(result.Clusters, labels)
	result.Components = cluster.DetectComponents(labels, gapFills, circlePins, lineEnds, a.cfg.Component)

	a.logger.Info("clusters detected",
		zap.Int("clusters", len(result.Clusters)),
		zap.Int("components", len(result.Components)),
		zap.Int("unmatched_labels", len(result.UnmatchedLabels)))
}

func computeStatistics(r Result, definitive, potential []circle.Circle, groups []wire.ContinuousGroup) Statistics {
	stats := Statistics{
		TotalElements:     r.PageInfo.TotalDrawings,
		TotalCircles:      len(r.Circles),
		TotalPaths:        len(r.Paths),
		StructuralGroups:  len(r.StructuralGroups),
		TextLikeGroups:    len(r.TextLikeGroups),
		SingleElements:    len(r.SingleElements),
		BrokenConnections: len(r.BrokenConnections),
		TotalGroups:       len(groups),
		DefinitiveCircles: len(definitive),
		PotentialCircles:  len(potential),
	}

	for _, g := range groups {
		if g.Size() > stats.LargestGroupSize {
			stats.LargestGroupSize = g.Size()
		}
	}
	if len(groups) > 0 {
		total := 0
		for _, g := range groups {
			total += g.Size()
		}
		stats.AverageGroupSize = float64(total) / float64(len(groups))
	}

	for _, p := range r.Paths {
		stats.TotalPathLength += p.Length
	}

	recognized := len(r.StructuralGroups) + len(r.TextLikeGroups) + len(r.SingleElements)
	if r.PageInfo.TotalDrawings > 0 {
		stats.CoverageRatio = float64(recognized) / float64(r.PageInfo.TotalDrawings)
	}
	return stats
}
