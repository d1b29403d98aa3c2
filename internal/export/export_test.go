package export_test

import (
	"bytes"
	"encoding/csv"
	"reflect"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/salesboard/salesboard/internal/export"
	"github.com/salesboard/salesboard/internal/models"
)

func sampleRows() []models.Row {
	return []models.Row{
		{
			Date:   "2025-03-01",
			Series: map[string]float64{"Apparel": 5, "Toys": 2},
			Totals: models.Aggregates{Orders: 3, Units: 7, Sales: 120.5, Total: 7},
		},
		{
			Date:   "2025-03-02",
			Series: map[string]float64{"Toys": 4},
			Totals: models.Aggregates{Orders: 1, Units: 4, Sales: 80, Total: 4},
		},
	}
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	if err := export.WriteCSV(&buf, sampleRows(), []string{"Apparel", "Toys"}); err != nil {
		t.Fatalf("WriteCSV failed: %v", err)
	}

	records, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("reading back csv failed: %v", err)
	}

	want := [][]string{
		{"date", "Apparel", "Toys", "total", "orders_total", "units_total", "sales_total"},
		{"2025-03-01", "5", "2", "7", "3", "7", "120.5"},
		{"2025-03-02", "0", "4", "4", "1", "4", "80"},
	}
	if !reflect.DeepEqual(records, want) {
		t.Errorf("expected csv %v, got %v", want, records)
	}
}

func TestWriteCSVEmptyRows(t *testing.T) {
	var buf bytes.Buffer
	if err := export.WriteCSV(&buf, nil, nil); err != nil {
		t.Fatalf("WriteCSV failed: %v", err)
	}

	records, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("reading back csv failed: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("expected header only, got %d records", len(records))
	}
	want := []string{"date", "total", "orders_total", "units_total", "sales_total"}
	if !reflect.DeepEqual(records[0], want) {
		t.Errorf("expected header %v, got %v", want, records[0])
	}
}

func TestWriteXLSX(t *testing.T) {
	var buf bytes.Buffer
	if err := export.WriteXLSX(&buf, sampleRows(), []string{"Apparel", "Toys"}, "EUR"); err != nil {
		t.Fatalf("WriteXLSX failed: %v", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatalf("reopening workbook failed: %v", err)
	}
	t.Cleanup(func() { f.Close() })

	rows, err := f.GetRows("Sales")
	if err != nil {
		t.Fatalf("reading sheet failed: %v", err)
	}
	if len(rows) != 4 {
		t.Fatalf("expected 4 sheet rows (header, 2 data, totals), got %d", len(rows))
	}

	wantHeader := []string{"date", "Apparel", "Toys", "total", "orders_total", "units_total", "sales_total"}
	if !reflect.DeepEqual(rows[0], wantHeader) {
		t.Errorf("expected header %v, got %v", wantHeader, rows[0])
	}

	cases := []struct {
		cell string
		want string
	}{
		{"A2", "2025-03-01"},
		{"B2", "5"},
		{"C2", "2"},
		{"G2", "120.5"},
		{"B3", "0"},
		{"C3", "4"},
		{"A4", "Total (EUR)"},
		{"B4", "5"},
		{"C4", "6"},
		{"E4", "4"},
	}
	for _, tc := range cases {
		got, err := f.GetCellValue("Sales", tc.cell)
		if err != nil {
			t.Fatalf("reading cell %s failed: %v", tc.cell, err)
		}
		if got != tc.want {
			t.Errorf("cell %s: expected %q, got %q", tc.cell, tc.want, got)
		}
	}
}

func TestWriteXLSXWithoutCurrency(t *testing.T) {
	var buf bytes.Buffer
	if err := export.WriteXLSX(&buf, sampleRows(), []string{"Apparel", "Toys"}, ""); err != nil {
		t.Fatalf("WriteXLSX failed: %v", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatalf("reopening workbook failed: %v", err)
	}
	t.Cleanup(func() { f.Close() })

	got, err := f.GetCellValue("Sales", "A4")
	if err != nil {
		t.Fatalf("reading cell A4 failed: %v", err)
	}
	if got != "Total" {
		t.Errorf("expected bare totals label, got %q", got)
	}
}
