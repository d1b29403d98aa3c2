package main

import (
	"bytes"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/salesboard/salesboard/internal/export"
	"github.com/salesboard/salesboard/internal/loader"
)

var (
	exportQuery   queryFlags
	exportBackend string
	exportDemo    bool
	exportOut     string
	exportFormat  string
)

func exportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export loaded rows as a CSV or Excel table",
		RunE:  runExport,
	}
	exportQuery.register(cmd)
	cmd.Flags().StringVar(&exportBackend, "backend-url", "", "Sales backend base URL (overrides configuration)")
	cmd.Flags().BoolVar(&exportDemo, "demo", false, "Load from the built-in demo backend")
	cmd.Flags().StringVarP(&exportOut, "output", "o", "", "Output file path (default: stdout)")
	cmd.Flags().StringVar(&exportFormat, "format", "csv", "Export format: csv or xlsx")
	return cmd
}

func runExport(cmd *cobra.Command, args []string) error {
	if exportFormat != "csv" && exportFormat != "xlsx" {
		return fmt.Errorf("invalid format: %s (must be csv or xlsx)", exportFormat)
	}

	cfg, err := resolveConfig(exportBackend, exportQuery.shop, exportDemo)
	if err != nil {
		return err
	}
	q := exportQuery.query(cfg)
	if err := q.Validate(); err != nil {
		return err
	}

	res, err := loader.New(cfg.BackendURL, cfg.RequestTimeout).Load(cmd.Context(), q)
	if err != nil {
		return fmt.Errorf("load sales data: %w", err)
	}

	currency := res.Currency
	if currency == "" {
		currency = cfg.FallbackCurrency
	}

	var buf bytes.Buffer
	if exportFormat == "xlsx" {
		err = export.WriteXLSX(&buf, res.Rows, res.Keys, currency)
	} else {
		err = export.WriteCSV(&buf, res.Rows, res.Keys)
	}
	if err != nil {
		return err
	}

	if exportOut != "" {
		if err := os.WriteFile(exportOut, buf.Bytes(), 0644); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		return nil
	}
	_, err = os.Stdout.Write(buf.Bytes())
	return err
}
