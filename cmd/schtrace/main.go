// Command schtrace converts vector drawing pages into circuit topology:
// classified circles, wire connectivity, junctions, networks, and detected
// components.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"schematic-tracer/internal/version"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var verbose bool
	cmd := &cobra.Command{
		Use:   "schtrace",
		Short: "Circuit topology analysis for vector schematic pages",
		Version: fmt.Sprintf("%s (commit %s, built %s)",
			version.Version, version.GitCommit, version.BuildTime),
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	cmd.AddCommand(newAnalyzeCmd(&verbose))
	return cmd
}

func newLogger(verbose bool) (*zap.Logger, error) {
	if !verbose {
		return zap.NewNop(), nil
	}
	return zap.NewDevelopment()
}
