package chart_test

import (
	"reflect"
	"testing"

	"github.com/salesboard/salesboard/internal/chart"
	"github.com/salesboard/salesboard/internal/models"
)

func sampleRows() []models.Row {
	return []models.Row{
		{
			Date:   "2024-01-01",
			Series: map[string]float64{"A": 5, "B": 2},
			Totals: models.Aggregates{Orders: 3},
		},
		{
			Date:   "2024-01-02",
			Series: map[string]float64{"A": 0},
			Totals: models.Aggregates{Orders: 1},
		},
	}
}

func barQuery() models.Query {
	return models.Query{
		Shop:      "demo-shop",
		StartDate: "2024-01-01",
		EndDate:   "2024-01-02",
		GroupBy:   models.GroupByCategory,
		Metric:    models.MetricRevenue,
		ChartType: models.ChartBar,
	}
}

func TestBuildStackedBarWithOrders(t *testing.T) {
	q := barQuery()
	q.ShowOrders = true
	sel := map[string]bool{"A": true, "B": true}

	d := chart.Build(sampleRows(), []string{"A", "B"}, sel, q, "EUR")

	if len(d.Traces) != 3 {
		t.Fatalf("expected 3 traces, got %d", len(d.Traces))
	}

	a := d.Traces[0]
	if a.Name != "A" || a.Type != "bar" {
		t.Errorf("expected bar trace A first, got %s trace %q", a.Type, a.Name)
	}
	if want := []string{"2024-01-01", "2024-01-02"}; !reflect.DeepEqual(a.X, want) {
		t.Errorf("expected x values %v, got %v", want, a.X)
	}
	if want := []float64{5, 0}; !reflect.DeepEqual(a.Y, want) {
		t.Errorf("expected A values %v, got %v", want, a.Y)
	}

	// B is absent on the second day and must be filled with 0.
	b := d.Traces[1]
	if want := []float64{2, 0}; !reflect.DeepEqual(b.Y, want) {
		t.Errorf("expected B values %v, got %v", want, b.Y)
	}

	orders := d.Traces[2]
	if orders.Name != "Orders" || orders.YAxis != "y2" {
		t.Errorf("expected Orders trace on y2, got %q on %q", orders.Name, orders.YAxis)
	}
	if orders.Type != "scatter" || orders.Mode != "lines+markers" {
		t.Errorf("expected a line-with-markers orders trace, got type %q mode %q", orders.Type, orders.Mode)
	}
	if want := []float64{3, 1}; !reflect.DeepEqual(orders.Y, want) {
		t.Errorf("expected order counts %v, got %v", want, orders.Y)
	}

	if d.Layout.BarMode != "stack" {
		t.Errorf("expected stacked bars, got barmode %q", d.Layout.BarMode)
	}
	y2 := d.Layout.YAxis2
	if y2 == nil {
		t.Fatal("expected a secondary axis in the layout")
	}
	if y2.Overlaying != "y" || y2.Side != "right" {
		t.Errorf("expected secondary axis overlaying y on the right, got %+v", y2)
	}
	if y2.ShowGrid == nil || *y2.ShowGrid {
		t.Error("expected gridlines disabled on the secondary axis")
	}
}

func TestBuildLineMode(t *testing.T) {
	q := barQuery()
	q.ChartType = models.ChartLine

	d := chart.Build(sampleRows(), []string{"A", "B"}, nil, q, "EUR")

	for _, tr := range d.Traces {
		if tr.Type != "scatter" || tr.Mode != "lines+markers" {
			t.Errorf("expected line traces, got type %q mode %q for %q", tr.Type, tr.Mode, tr.Name)
		}
	}
	if d.Layout.BarMode != "" {
		t.Errorf("expected no barmode for line charts, got %q", d.Layout.BarMode)
	}
	if d.Layout.YAxis2 != nil {
		t.Error("expected no secondary axis without the orders overlay")
	}
}

func TestBuildTraceCountFollowsSelection(t *testing.T) {
	rows := sampleRows()
	keys := []string{"A", "B", "C"}

	d := chart.Build(rows, keys, map[string]bool{"A": true, "C": true}, barQuery(), "")

	if len(d.Traces) != 2 {
		t.Fatalf("expected 2 traces, got %d", len(d.Traces))
	}
	if d.Traces[0].Name != "A" || d.Traces[1].Name != "C" {
		t.Errorf("expected traces in key order [A C], got [%s %s]", d.Traces[0].Name, d.Traces[1].Name)
	}
}

func TestBuildNilSelectionDrawsEveryKey(t *testing.T) {
	d := chart.Build(sampleRows(), []string{"A", "B"}, nil, barQuery(), "")

	if len(d.Traces) != 2 {
		t.Fatalf("expected 2 traces for a hidden filter surface, got %d", len(d.Traces))
	}
}

func TestBuildEmptySelectionKeepsOrders(t *testing.T) {
	q := barQuery()
	q.ShowOrders = true

	d := chart.Build(sampleRows(), []string{"A", "B"}, map[string]bool{}, q, "")

	if len(d.Traces) != 1 {
		t.Fatalf("expected only the orders trace, got %d traces", len(d.Traces))
	}
	if d.Traces[0].Name != "Orders" {
		t.Errorf("expected Orders trace, got %q", d.Traces[0].Name)
	}
}

func TestBuildEmptyRows(t *testing.T) {
	d := chart.Build(nil, nil, nil, barQuery(), "")

	if len(d.Traces) != 0 {
		t.Errorf("expected no traces for an empty dataset, got %d", len(d.Traces))
	}
	if d.Layout.YAxis.Title == "" {
		t.Error("expected layout labels even with no data")
	}
}

func TestBuildAxisTitles(t *testing.T) {
	tests := []struct {
		name     string
		metric   models.Metric
		currency string
		want     string
	}{
		{"revenue with currency", models.MetricRevenue, "EUR", "Revenue (EUR)"},
		{"revenue falls back to USD", models.MetricRevenue, "", "Revenue (USD)"},
		{"units carry no currency", models.MetricUnits, "EUR", "Units"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := barQuery()
			q.Metric = tt.metric
			d := chart.Build(sampleRows(), []string{"A"}, nil, q, tt.currency)
			if d.Layout.YAxis.Title != tt.want {
				t.Errorf("expected axis title %q, got %q", tt.want, d.Layout.YAxis.Title)
			}
		})
	}
}

func TestBuildIsPure(t *testing.T) {
	q := barQuery()
	q.ShowOrders = true
	sel := map[string]bool{"A": true}

	first := chart.Build(sampleRows(), []string{"A", "B"}, sel, q, "EUR")
	for range 3 {
		next := chart.Build(sampleRows(), []string{"A", "B"}, sel, q, "EUR")
		if !reflect.DeepEqual(first, next) {
			t.Fatal("expected identical inputs to produce identical descriptions")
		}
	}
}
