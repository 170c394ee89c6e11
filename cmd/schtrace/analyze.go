package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"schematic-tracer/internal/analysis"
	"schematic-tracer/internal/cluster"
	"schematic-tracer/internal/drawing"
	"schematic-tracer/internal/netlist"
)

func newAnalyzeCmd(verbose *bool) *cobra.Command {
	var (
		outPath       string
		labelsPath    string
		componentPath string
		settingsPath  string
	)

	cmd := &cobra.Command{
		Use:   "analyze <page.json>",
		Short: "Analyze one page of vector drawing primitives",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := newLogger(*verbose)
			if err != nil {
				return fmt.Errorf("init logger: %w", err)
			}
			defer func() { _ = logger.Sync() }()

			var page drawing.Page
			if err := readJSON(args[0], &page); err != nil {
				return err
			}

			cfg := analysis.DefaultConfig()
			if settingsPath != "" {
				settings, err := cluster.LoadSettings(settingsPath)
				if err != nil {
					return fmt.Errorf("load settings: %w", err)
				}
				cfg.Cluster = settings
			}

			analyzer := analysis.NewAnalyzer(cfg, logger)
			result := analyzer.AnalyzePage(page)

			if componentPath != "" {
				var components []netlist.CircuitComponent
				if err := readJSON(componentPath, &components); err != nil {
					return err
				}
				analyzer.MatchComponents(&result, components)
			}

			if labelsPath != "" {
				var labels []cluster.DetectedLabel
				if err := readJSON(labelsPath, &labels); err != nil {
					return err
				}
				analyzer.DetectClusters(&result, labels)
			}

			out, err := json.MarshalIndent(result, "", "  ")
			if err != nil {
				return fmt.Errorf("encode result: %w", err)
			}

			if outPath == "" {
				fmt.Fprintln(cmd.OutOrStdout(), string(out))
				return nil
			}
			if err := os.WriteFile(outPath, out, 0o644); err != nil {
				return fmt.Errorf("write %s: %w", outPath, err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), result.Summary())
			return nil
		},
	}

	cmd.Flags().StringVarP(&outPath, "out", "o", "", "write the result JSON to a file instead of stdout")
	cmd.Flags().StringVar(&labelsPath, "labels", "", "JSON file of detected text labels for component clustering")
	cmd.Flags().StringVar(&componentPath, "components", "", "JSON file of known components for network matching")
	cmd.Flags().StringVar(&settingsPath, "settings", "", "cluster settings JSON file")
	return cmd
}

func readJSON(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	return nil
}
