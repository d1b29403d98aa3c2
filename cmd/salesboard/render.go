package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/salesboard/salesboard/internal/chart"
	"github.com/salesboard/salesboard/internal/dashboard"
	"github.com/salesboard/salesboard/internal/loader"
)

var (
	renderQuery   queryFlags
	renderBackend string
	renderDemo    bool
	renderOut     string
	renderPretty  bool
	renderSeries  []string
)

func renderCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render one chart description as JSON",
		Long: `render loads sales rows for the given query and prints the resulting
Plotly trace and layout description without starting a server.`,
		RunE: runRender,
	}
	renderQuery.register(cmd)
	cmd.Flags().StringVar(&renderBackend, "backend-url", "", "Sales backend base URL (overrides configuration)")
	cmd.Flags().BoolVar(&renderDemo, "demo", false, "Load from the built-in demo backend")
	cmd.Flags().StringVarP(&renderOut, "output", "o", "", "Output file path (default: stdout)")
	cmd.Flags().BoolVar(&renderPretty, "pretty", false, "Pretty-print JSON output")
	cmd.Flags().StringSliceVar(&renderSeries, "series", nil, "Series keys to keep (default: all)")
	return cmd
}

func runRender(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(renderBackend, renderQuery.shop, renderDemo)
	if err != nil {
		return err
	}
	q := renderQuery.query(cfg)
	if err := q.Validate(); err != nil {
		return err
	}

	ctrl := dashboard.New(loader.New(cfg.BackendURL, cfg.RequestTimeout), q)
	snap := ctrl.Refresh(cmd.Context())
	if snap.Phase != dashboard.PhaseReady {
		if snap.LastError != "" {
			return fmt.Errorf("load failed: %s", snap.LastError)
		}
		return errors.New(snap.Status)
	}

	if len(renderSeries) > 0 {
		snap = ctrl.Dispatch(cmd.Context(), dashboard.SelectNoSeries{})
		seen := make(map[string]struct{}, len(renderSeries))
		for _, k := range renderSeries {
			if _, dup := seen[k]; dup {
				continue
			}
			seen[k] = struct{}{}
			snap = ctrl.Dispatch(cmd.Context(), dashboard.ToggleSeries{Key: k})
		}
	}

	jsonData, err := marshalDescription(snap.Description, renderPretty)
	if err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}

	if renderOut != "" {
		if err := os.WriteFile(renderOut, jsonData, 0644); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		return nil
	}
	fmt.Println(string(jsonData))
	return nil
}

func marshalDescription(d chart.Description, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(d, "", "  ")
	}
	return json.Marshal(d)
}
