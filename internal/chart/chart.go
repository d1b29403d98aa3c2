// Package chart turns loaded sales rows into the trace and layout
// description consumed by the plotting surface. Build is a pure
// function of its arguments, so identical inputs always produce a
// structurally identical description.
package chart

import (
	"fmt"

	"github.com/salesboard/salesboard/internal/models"
)

// FallbackCurrency labels revenue axes when the backend reports no
// currency for a load.
const FallbackCurrency = "USD"

// ordersName names the secondary-axis trace.
const ordersName = "Orders"

// Trace is one plotted series in the plotting surface's wire format.
type Trace struct {
	Type  string    `json:"type"`
	Mode  string    `json:"mode,omitempty"`
	Name  string    `json:"name"`
	X     []string  `json:"x"`
	Y     []float64 `json:"y"`
	YAxis string    `json:"yaxis,omitempty"`
}

// Axis describes one chart axis.
type Axis struct {
	Title      string `json:"title,omitempty"`
	Overlaying string `json:"overlaying,omitempty"`
	Side       string `json:"side,omitempty"`
	ShowGrid   *bool  `json:"showgrid,omitempty"`
}

// Layout carries chart-wide display settings.
type Layout struct {
	Title   string `json:"title,omitempty"`
	BarMode string `json:"barmode,omitempty"`
	XAxis   Axis   `json:"xaxis"`
	YAxis   Axis   `json:"yaxis"`
	YAxis2  *Axis  `json:"yaxis2,omitempty"`
}

// Description is the complete renderer output: an ordered trace list
// plus the layout. It is plain data, ready to encode.
type Description struct {
	Traces []Trace `json:"traces"`
	Layout Layout  `json:"layout"`
}

// Build renders rows into a chart description.
//
// It walks keys in the order given (callers pass them sorted), keeps
// those present in selection, and emits one trace per kept key. A nil
// selection means the filter surface is hidden and every key is drawn;
// an empty non-nil selection draws no series traces. Values are taken
// positionally per row, with rows missing a key contributing 0 rather
// than a gap, so every trace has exactly one value per row.
//
// With q.ShowOrders set, one extra line trace built from each row's
// order count is appended on a secondary axis that overlays the
// primary one on the right, without gridlines.
func Build(rows []models.Row, keys []string, selection map[string]bool, q models.Query, currency string) Description {
	dates := make([]string, len(rows))
	for i, r := range rows {
		dates[i] = r.Date
	}

	traces := make([]Trace, 0, len(keys)+1)
	for _, k := range keys {
		if selection != nil && !selection[k] {
			continue
		}
		y := make([]float64, len(rows))
		for i, r := range rows {
			y[i] = r.Value(k)
		}
		traces = append(traces, seriesTrace(q.ChartType, k, dates, y))
	}

	title, yTitle := titles(q.Metric, currency)
	layout := Layout{
		Title: title,
		XAxis: Axis{Title: "Date"},
		YAxis: Axis{Title: yTitle},
	}
	if q.ChartType == models.ChartBar {
		layout.BarMode = "stack"
	}

	if q.ShowOrders {
		y := make([]float64, len(rows))
		for i, r := range rows {
			y[i] = r.Totals.Orders
		}
		traces = append(traces, Trace{
			Type:  "scatter",
			Mode:  "lines+markers",
			Name:  ordersName,
			X:     dates,
			Y:     y,
			YAxis: "y2",
		})
		noGrid := false
		layout.YAxis2 = &Axis{
			Title:      ordersName,
			Overlaying: "y",
			Side:       "right",
			ShowGrid:   &noGrid,
		}
	}

	return Description{Traces: traces, Layout: layout}
}

// seriesTrace styles one series: stacked bars for the bar chart type,
// a line with markers otherwise.
func seriesTrace(ct models.ChartType, name string, x []string, y []float64) Trace {
	if ct == models.ChartBar {
		return Trace{Type: "bar", Name: name, X: x, Y: y}
	}
	return Trace{Type: "scatter", Mode: "lines+markers", Name: name, X: x, Y: y}
}

// titles derives the chart and value-axis labels from the metric.
// Revenue carries the currency code; unit counts carry none.
func titles(metric models.Metric, currency string) (title, yTitle string) {
	if metric == models.MetricUnits {
		return "Units sold", "Units"
	}
	if currency == "" {
		currency = FallbackCurrency
	}
	return "Sales revenue", fmt.Sprintf("Revenue (%s)", currency)
}
