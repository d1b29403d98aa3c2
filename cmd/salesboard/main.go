// Package main provides the salesboard CLI entry point.
package main

import (
	"os"

	"github.com/spf13/cobra"

	_ "github.com/salesboard/salesboard/docs"
)

var version = "1.0.0"

// @title Salesboard API
// @version 1.0
// @description Dashboard and export API over an aggregated sales backend: Plotly chart descriptions, series filters and table downloads.
// @host localhost:8080
// @BasePath /
func main() {
	rootCmd := &cobra.Command{
		Use:     "salesboard",
		Short:   "Sales dashboard server and tooling",
		Version: version,
		Long: `salesboard serves a browser dashboard over an aggregated sales API
and ships one-shot commands for rendering and exporting the same views.`,
	}

	rootCmd.AddCommand(serveCmd(), renderCmd(), exportCmd(), demoCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
