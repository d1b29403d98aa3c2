// Package demo serves a synthetic sales backend implementing the
// /api/sales contract. Values are derived from a hash of shop, date
// and category, so the same query always returns the same rows.
package demo

import (
	"encoding/json"
	"hash/fnv"
	"io"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/salesboard/salesboard/internal/models"
)

// categories served by the synthetic backend. Not every category
// sells on every date, so consumers see genuinely sparse rows.
var categories = []string{"Apparel", "Books", "Electronics", "Home & Garden", "Toys"}

const (
	currency     = "EUR"
	timezone     = "Europe/Lisbon"
	maxRangeDays = 366
)

// Handler returns the demo backend router.
func Handler() http.Handler {
	r := chi.NewRouter()
	r.Get("/api/sales", SalesHandler)
	return r
}

type salesResponse struct {
	Rows     []models.Row `json:"rows"`
	Currency string       `json:"currency"`
	TZ       string       `json:"tz"`
}

// SalesHandler answers GET /api/sales with synthetic daily rows for
// the requested shop and date range.
func SalesHandler(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	shop := q.Get("shop")
	if shop == "" {
		http.Error(w, "shop is required", http.StatusBadRequest)
		return
	}
	start, err := time.Parse(models.DateFormat, q.Get("start_date"))
	if err != nil {
		http.Error(w, "invalid start_date", http.StatusBadRequest)
		return
	}
	end, err := time.Parse(models.DateFormat, q.Get("end_date"))
	if err != nil {
		http.Error(w, "invalid end_date", http.StatusBadRequest)
		return
	}
	if end.Before(start) {
		http.Error(w, "end_date before start_date", http.StatusBadRequest)
		return
	}
	if end.Sub(start) > maxRangeDays*24*time.Hour {
		http.Error(w, "date range too large", http.StatusBadRequest)
		return
	}
	groupBy := models.GroupBy(q.Get("group_by"))
	if !groupBy.Valid() {
		http.Error(w, "invalid group_by", http.StatusBadRequest)
		return
	}
	metric := models.Metric(q.Get("metric"))
	if !metric.Valid() {
		http.Error(w, "invalid metric", http.StatusBadRequest)
		return
	}

	days := int(end.Sub(start).Hours()/24) + 1
	rows := make([]models.Row, 0, days)
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		rows = append(rows, rowFor(shop, d.Format(models.DateFormat), groupBy, metric))
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(salesResponse{Rows: rows, Currency: currency, TZ: timezone})
}

// rowFor builds one date's aggregates. With by-date grouping the
// per-category breakdown collapses into a single series named after
// the metric.
func rowFor(shop, date string, groupBy models.GroupBy, metric models.Metric) models.Row {
	row := models.Row{Date: date, Series: map[string]float64{}}

	var revenue, units float64
	for _, c := range categories {
		seed := mix(shop, date, c)
		if seed%5 == 0 {
			// no sales for this category on this date
			continue
		}
		catUnits := float64(seed % 37)
		catRevenue := float64(seed%9000) / 10
		if metric == models.MetricUnits {
			row.Series[c] = catUnits
		} else {
			row.Series[c] = catRevenue
		}
		revenue += catRevenue
		units += catUnits
	}

	row.Totals = models.Aggregates{
		Orders: float64(mix(shop, date, "orders") % 50),
		Units:  units,
		Sales:  revenue,
	}
	if metric == models.MetricUnits {
		row.Totals.Total = units
	} else {
		row.Totals.Total = revenue
	}

	if groupBy == models.GroupByDate {
		row.Series = map[string]float64{string(metric): row.Totals.Total}
	}
	return row
}

func mix(parts ...string) uint32 {
	h := fnv.New32a()
	for _, p := range parts {
		io.WriteString(h, p)
		io.WriteString(h, "|")
	}
	return h.Sum32()
}
