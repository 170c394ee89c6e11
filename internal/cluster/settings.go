// Package cluster groups circuit objects (gap fills, circle pins, free line
// ends) into component clusters using density-adaptive agglomerative
// clustering, matches text labels to the clusters, and assembles
// label-anchored detected components.
package cluster

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// Settings controls clustering and label matching. Distances are in page
// units; the weighted distance multiplies vertical offsets by
// VerticalWeight, so clusters prefer horizontal alignment.
type Settings struct {
	// VerticalWeight penalizes vertical distance relative to horizontal.
	VerticalWeight float64 `json:"vertical_weight"`
	// AbsoluteMinGap always merges clusters closer than this.
	AbsoluteMinGap float64 `json:"absolute_min_gap"`
	// DensityFactor merges when the gap is within this multiple of the
	// internal spacing of the denser cluster.
	DensityFactor float64 `json:"density_factor"`
	// MaxGap never merges beyond this weighted distance.
	MaxGap float64 `json:"max_gap"`
	// CrossColorPenalty multiplies the gap for different-color merges.
	CrossColorPenalty float64 `json:"cross_color_penalty"`

	// LabelMaxDistance is the base reach for label-to-cluster matching.
	LabelMaxDistance float64 `json:"label_max_distance"`
	// LabelClusterSizeFactor extends the reach per unit of cluster diagonal.
	LabelClusterSizeFactor float64 `json:"label_cluster_size_factor"`
	// LabelSubsumeThreshold forbids merges that would cover more than this
	// fraction of a label's box. 1.0 disables the guard.
	LabelSubsumeThreshold float64 `json:"label_subsume_threshold"`
}

// DefaultSettings returns clustering settings tuned on schematic pages.
func DefaultSettings() Settings {
	return Settings{
		VerticalWeight:         1.5,
		AbsoluteMinGap:         90.0,
		DensityFactor:          5.5,
		MaxGap:                 270.0,
		CrossColorPenalty:      2.0,
		LabelMaxDistance:       150.0,
		LabelClusterSizeFactor: 0.5,
		LabelSubsumeThreshold:  0.5,
	}
}

// LoadSettings reads settings from a JSON file. A missing file yields the
// defaults without error; unknown keys are ignored by the decoder, and any
// field absent from the file keeps its default value.
func LoadSettings(path string) (Settings, error) {
	settings := DefaultSettings()

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return settings, nil
	}
	if err != nil {
		return settings, fmt.Errorf("read cluster settings: %w", err)
	}
	if err := json.Unmarshal(data, &settings); err != nil {
		return DefaultSettings(), fmt.Errorf("parse cluster settings: %w", err)
	}
	return settings, nil
}

// SaveSettings writes settings to a JSON file.
func SaveSettings(path string, settings Settings) error {
	data, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		return fmt.Errorf("encode cluster settings: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write cluster settings: %w", err)
	}
	return nil
}
