package handlers

import (
	"fmt"
	"log"
	"net/http"

	"github.com/salesboard/salesboard/internal/export"
)

// ExportCSVHandler godoc
// @Summary Download the loaded rows as CSV
// @Description Fetches the rows for the query and streams them as a CSV table: one column per series key plus the aggregate columns.
// @Tags export
// @Produce text/csv
// @Param shop query string false "Shop domain; falls back to the configured default"
// @Param start_date query string false "Inclusive start date (YYYY-MM-DD)"
// @Param end_date query string false "Inclusive end date (YYYY-MM-DD)"
// @Param group_by query string false "Aggregation axis: category or date" default(category)
// @Param metric query string false "Aggregated measure: revenue or units" default(revenue)
// @Success 200 {file} file
// @Failure 400 {array} QueryValidationError
// @Failure 502 {string} string "Sales backend unavailable"
// @Router /api/export.csv [get]
func ExportCSVHandler(w http.ResponseWriter, r *http.Request) {
	q, res, ok := loadSales(w, r)
	if !ok {
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="sales_%s_%s.csv"`, q.StartDate, q.EndDate))
	if err := export.WriteCSV(w, res.Rows, res.Keys); err != nil {
		log.Printf("Failed to write CSV export: %v", err)
	}
}

// ExportXLSXHandler godoc
// @Summary Download the loaded rows as an Excel workbook
// @Description Fetches the rows for the query and streams them as a styled workbook with a totals row.
// @Tags export
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param shop query string false "Shop domain; falls back to the configured default"
// @Param start_date query string false "Inclusive start date (YYYY-MM-DD)"
// @Param end_date query string false "Inclusive end date (YYYY-MM-DD)"
// @Param group_by query string false "Aggregation axis: category or date" default(category)
// @Param metric query string false "Aggregated measure: revenue or units" default(revenue)
// @Success 200 {file} file
// @Failure 400 {array} QueryValidationError
// @Failure 502 {string} string "Sales backend unavailable"
// @Router /api/export.xlsx [get]
func ExportXLSXHandler(w http.ResponseWriter, r *http.Request) {
	q, res, ok := loadSales(w, r)
	if !ok {
		return
	}

	currency := res.Currency
	if currency == "" {
		currency = cfg.FallbackCurrency
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="sales_%s_%s.xlsx"`, q.StartDate, q.EndDate))
	if err := export.WriteXLSX(w, res.Rows, res.Keys, currency); err != nil {
		log.Printf("Failed to write XLSX export: %v", err)
	}
}
