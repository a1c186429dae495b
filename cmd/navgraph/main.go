package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "navgraph",
	Short: "Navigation graph benchmarks and configuration",
	Long: `navgraph builds synthetic navigation networks and exercises nearest-node
resolution and band search against them.

Examples:
  navgraph bench --cols 128 --rows 128 --workers 8
  navgraph bench --air-height 300 --walls 3 --visibility
  navgraph config --config navgraph.yaml`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to a YAML configuration file")
	rootCmd.AddCommand(benchCmd)
	rootCmd.AddCommand(configCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "❌ %v\n", err)
		os.Exit(1)
	}
}
