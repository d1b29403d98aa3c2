package models

import (
	"encoding/json"
	"fmt"
	"sort"
)

// Reserved field names carry per-row aggregates for axis overlays and status
// text. They are never treated as plottable series.
const (
	reservedTotal       = "total"
	reservedOrdersTotal = "orders_total"
	reservedUnitsTotal  = "units_total"
	reservedSalesTotal  = "sales_total"
)

// Aggregates holds the reserved aggregate fields of a row. A field the
// backend did not send is zero.
type Aggregates struct {
	Total  float64
	Orders float64
	Units  float64
	Sales  float64
}

// Row represents one calendar date's aggregated sales as returned by the
// sales API. Series holds the sparse per-dimension values; only non-reserved
// numeric fields end up there.
type Row struct {
	Date   string
	Series map[string]float64
	Totals Aggregates
}

// Value returns the series value for key, or 0 when the row does not carry
// it. A selected series always contributes one value per row.
func (r Row) Value(key string) float64 {
	return r.Series[key]
}

// UnmarshalJSON decodes the flat wire shape: a "date" string plus an open set
// of numeric fields. The four reserved aggregate names are routed into
// Totals; every other numeric field becomes a series value. Non-numeric
// extras are dropped rather than rejected.
func (r *Row) UnmarshalJSON(data []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}

	r.Date = ""
	r.Series = make(map[string]float64)
	r.Totals = Aggregates{}

	for name, raw := range fields {
		if name == "date" {
			if err := json.Unmarshal(raw, &r.Date); err != nil {
				return fmt.Errorf("row date: %w", err)
			}
			continue
		}
		var v float64
		if err := json.Unmarshal(raw, &v); err != nil {
			continue
		}
		switch name {
		case reservedTotal:
			r.Totals.Total = v
		case reservedOrdersTotal:
			r.Totals.Orders = v
		case reservedUnitsTotal:
			r.Totals.Units = v
		case reservedSalesTotal:
			r.Totals.Sales = v
		default:
			r.Series[name] = v
		}
	}
	return nil
}

// MarshalJSON emits the same flat wire shape the sales API produces.
func (r Row) MarshalJSON() ([]byte, error) {
	flat := make(map[string]any, len(r.Series)+5)
	flat["date"] = r.Date
	for k, v := range r.Series {
		flat[k] = v
	}
	flat[reservedTotal] = r.Totals.Total
	flat[reservedOrdersTotal] = r.Totals.Orders
	flat[reservedUnitsTotal] = r.Totals.Units
	flat[reservedSalesTotal] = r.Totals.Sales
	return json.Marshal(flat)
}

// SeriesKeys returns every distinct series field name observed across rows,
// deduplicated and sorted ascending. The sort order is load-bearing: it fixes
// trace draw order and filter chip order. Reserved names cannot appear
// because rows never admit them into Series.
func SeriesKeys(rows []Row) []string {
	seen := make(map[string]struct{})
	for _, r := range rows {
		for k := range r.Series {
			seen[k] = struct{}{}
		}
	}
	keys := make([]string, 0, len(seen))
	for k := range seen {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
