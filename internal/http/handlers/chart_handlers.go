package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/salesboard/salesboard/internal/chart"
	"github.com/salesboard/salesboard/internal/dashboard"
	"github.com/salesboard/salesboard/internal/filters"
	"github.com/salesboard/salesboard/internal/loader"
	"github.com/salesboard/salesboard/internal/models"
)

// queryFromRequest builds the dashboard query from the request's URL
// parameters. Anything not supplied keeps the default selection, so a
// bare page load shows the last 30 days of revenue by category.
func queryFromRequest(r *http.Request) models.Query {
	p := r.URL.Query()

	shop := p.Get("shop")
	if shop == "" {
		shop = cfg.DefaultShop
	}
	q := models.DefaultQuery(shop, time.Now())
	if v := p.Get("start_date"); v != "" {
		q.StartDate = v
	}
	if v := p.Get("end_date"); v != "" {
		q.EndDate = v
	}
	if v := p.Get("group_by"); v != "" {
		q.GroupBy = models.GroupBy(v)
	}
	if v := p.Get("metric"); v != "" {
		q.Metric = models.Metric(v)
	}
	if v := p.Get("chart_type"); v != "" {
		q.ChartType = models.ChartType(v)
	}
	if v := p.Get("show_orders"); v != "" {
		q.ShowOrders, _ = strconv.ParseBool(v)
	}
	return q
}

// loadSales validates the request's query and fetches rows for it. On
// failure the error response is already written and ok is false.
func loadSales(w http.ResponseWriter, r *http.Request) (models.Query, *loader.Result, bool) {
	q := queryFromRequest(r)
	if errs := validateQuery(q); len(errs) > 0 {
		writeJSON(w, http.StatusBadRequest, errs)
		return models.Query{}, nil, false
	}

	res, err := salesLoader.Load(r.Context(), q)
	if err != nil {
		var netErr *loader.NetworkError
		if errors.As(err, &netErr) {
			log.Printf("Sales backend request failed: %v", err)
			http.Error(w, "sales backend unavailable", http.StatusBadGateway)
			return models.Query{}, nil, false
		}
		http.Error(w, "could not load sales data", http.StatusInternalServerError)
		return models.Query{}, nil, false
	}
	return q, res, true
}

// seriesRegistry builds the chip registry for a response. Only
// categorical groupings get a visible filter surface; repeated series
// parameters narrow the selection, and their absence keeps every key.
func seriesRegistry(q models.Query, res *loader.Result, wanted []string) *filters.Registry {
	reg := filters.New()
	if !q.GroupBy.IsCategorical() {
		return reg
	}
	reg.Rebuild(res.Keys)
	reg.SetVisible(true)
	if wanted == nil {
		return reg
	}
	reg.SelectNone()
	seen := make(map[string]struct{}, len(wanted))
	for _, k := range wanted {
		if _, dup := seen[k]; dup {
			continue
		}
		seen[k] = struct{}{}
		reg.Toggle(k)
	}
	return reg
}

// GetChartHandler godoc
// @Summary Chart description for a query
// @Description Loads sales rows for the query and renders them as Plotly traces and layout, together with the filter chips and status line the page shows around the chart.
// @Tags chart
// @Produce json
// @Param shop query string false "Shop domain; falls back to the configured default"
// @Param start_date query string false "Inclusive start date (YYYY-MM-DD)"
// @Param end_date query string false "Inclusive end date (YYYY-MM-DD)"
// @Param group_by query string false "Aggregation axis: category or date" default(category)
// @Param metric query string false "Aggregated measure: revenue or units" default(revenue)
// @Param chart_type query string false "Drawing style: bar or line" default(bar)
// @Param show_orders query boolean false "Overlay daily order counts on a second axis"
// @Param series query []string false "Series keys to keep; omit to draw all" collectionFormat(multi)
// @Success 200 {object} ChartResponse
// @Failure 400 {array} QueryValidationError
// @Failure 502 {string} string "Sales backend unavailable"
// @Router /api/chart [get]
func GetChartHandler(w http.ResponseWriter, r *http.Request) {
	q, res, ok := loadSales(w, r)
	if !ok {
		return
	}

	currency := res.Currency
	if currency == "" {
		currency = cfg.FallbackCurrency
	}

	reg := seriesRegistry(q, res, r.URL.Query()["series"])
	desc := chart.Build(res.Rows, res.Keys, reg.EffectiveSelection(), q, currency)

	resp := ChartResponse{
		Query:          queryResponse(q),
		Traces:         desc.Traces,
		Layout:         desc.Layout,
		Keys:           res.Keys,
		Chips:          reg.Chips(),
		FiltersVisible: reg.Visible(),
		RowCount:       len(res.Rows),
		Currency:       currency,
		Timezone:       res.Timezone,
		Status:         dashboard.StatusFor(res),
	}
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		log.Printf("Failed to write JSON response: %v", err)
	}
}
