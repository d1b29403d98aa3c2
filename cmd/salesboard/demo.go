package main

import (
	"log"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/salesboard/salesboard/internal/demo"
)

var demoAddr string

func demoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Run only the demo sales backend",
		Long: `demo serves the deterministic built-in sales API on its own, for
pointing a separately running dashboard (or curl) at it.`,
		RunE: runDemo,
	}
	cmd.Flags().StringVar(&demoAddr, "addr", ":9090", "Listen address")
	return cmd
}

func runDemo(cmd *cobra.Command, args []string) error {
	log.Println("✅ Demo sales backend running on", demoAddr)
	return http.ListenAndServe(demoAddr, demo.Handler())
}
