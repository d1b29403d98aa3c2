// Package export writes loaded sales rows as downloadable tables.
// Both formats share one column layout: the date, one column per
// series key, then the four aggregate columns.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/xuri/excelize/v2"

	"github.com/salesboard/salesboard/internal/models"
)

const sheetName = "Sales"

func header(keys []string) []string {
	h := make([]string, 0, len(keys)+5)
	h = append(h, "date")
	h = append(h, keys...)
	h = append(h, "total", "orders_total", "units_total", "sales_total")
	return h
}

func record(row models.Row, keys []string) []string {
	rec := make([]string, 0, len(keys)+5)
	rec = append(rec, row.Date)
	for _, k := range keys {
		rec = append(rec, formatNumber(row.Value(k)))
	}
	rec = append(rec,
		formatNumber(row.Totals.Total),
		formatNumber(row.Totals.Orders),
		formatNumber(row.Totals.Units),
		formatNumber(row.Totals.Sales),
	)
	return rec
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// WriteCSV writes the row table as CSV. Rows missing a key get 0 in
// that column, matching how the chart fills sparse series.
func WriteCSV(w io.Writer, rows []models.Row, keys []string) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(header(keys)); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, row := range rows {
		if err := cw.Write(record(row, keys)); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteXLSX writes the row table as an Excel workbook: a styled
// header row, one row per date and a closing totals row. The currency
// labels the totals row when known.
func WriteXLSX(w io.Writer, rows []models.Row, keys []string, currency string) error {
	f := excelize.NewFile()
	defer f.Close()
	f.SetSheetName("Sheet1", sheetName)

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "#FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		return fmt.Errorf("create header style: %w", err)
	}
	totalStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
	})
	if err != nil {
		return fmt.Errorf("create totals style: %w", err)
	}

	cols := header(keys)
	for i, h := range cols {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return err
		}
		f.SetCellValue(sheetName, cell, h)
	}
	lastHeader, _ := excelize.CoordinatesToCellName(len(cols), 1)
	f.SetCellStyle(sheetName, "A1", lastHeader, headerStyle)

	sums := make([]float64, len(cols)-1)
	for i, row := range rows {
		rowNum := i + 2
		cell, _ := excelize.CoordinatesToCellName(1, rowNum)
		f.SetCellValue(sheetName, cell, row.Date)

		values := make([]float64, 0, len(cols)-1)
		for _, k := range keys {
			values = append(values, row.Value(k))
		}
		values = append(values, row.Totals.Total, row.Totals.Orders, row.Totals.Units, row.Totals.Sales)
		for j, v := range values {
			cell, err := excelize.CoordinatesToCellName(j+2, rowNum)
			if err != nil {
				return err
			}
			f.SetCellValue(sheetName, cell, v)
			sums[j] += v
		}
	}

	totalsRow := len(rows) + 2
	label := "Total"
	if currency != "" {
		label = fmt.Sprintf("Total (%s)", currency)
	}
	cell, _ := excelize.CoordinatesToCellName(1, totalsRow)
	f.SetCellValue(sheetName, cell, label)
	for j, sum := range sums {
		cell, err := excelize.CoordinatesToCellName(j+2, totalsRow)
		if err != nil {
			return err
		}
		f.SetCellValue(sheetName, cell, sum)
	}
	lastTotal, _ := excelize.CoordinatesToCellName(len(cols), totalsRow)
	first, _ := excelize.CoordinatesToCellName(1, totalsRow)
	f.SetCellStyle(sheetName, first, lastTotal, totalStyle)

	f.SetColWidth(sheetName, "A", "A", 12)
	if len(cols) > 1 {
		lastCol, err := excelize.ColumnNumberToName(len(cols))
		if err != nil {
			return err
		}
		f.SetColWidth(sheetName, "B", lastCol, 14)
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}
