package models

import (
	"errors"
	"fmt"
	"net/url"
	"time"
)

// DateFormat is the calendar-date layout used on the wire.
const DateFormat = "2006-01-02"

// ErrShopRequired indicates the shop identifier is missing. No request may be
// issued without it; the caller surfaces it as a configuration problem.
var ErrShopRequired = errors.New("shop is required")

// GroupBy selects the backend aggregation axis.
type GroupBy string

const (
	GroupByDate     GroupBy = "date"
	GroupByCategory GroupBy = "category"
)

func (g GroupBy) Valid() bool {
	return g == GroupByDate || g == GroupByCategory
}

// IsCategorical reports whether rows carry a per-dimension breakdown. Only
// categorical groupings get a filter surface.
func (g GroupBy) IsCategorical() bool {
	return g == GroupByCategory
}

// Metric selects what the backend aggregates per day.
type Metric string

const (
	MetricRevenue Metric = "revenue"
	MetricUnits   Metric = "units"
)

func (m Metric) Valid() bool {
	return m == MetricRevenue || m == MetricUnits
}

// ChartType selects how series are drawn. It never affects what is fetched.
type ChartType string

const (
	ChartBar  ChartType = "bar"
	ChartLine ChartType = "line"
)

func (c ChartType) Valid() bool {
	return c == ChartBar || c == ChartLine
}

// Query is the full selection driving one dashboard view: what to ask the
// sales API and how to draw the answer.
type Query struct {
	Shop       string
	StartDate  string // inclusive, YYYY-MM-DD
	EndDate    string // inclusive, YYYY-MM-DD
	GroupBy    GroupBy
	Metric     Metric
	ChartType  ChartType
	ShowOrders bool
}

// DefaultQuery returns the selection a fresh dashboard starts from: the last
// 30 days grouped by category, revenue drawn as stacked bars.
func DefaultQuery(shop string, now time.Time) Query {
	return Query{
		Shop:      shop,
		StartDate: now.AddDate(0, 0, -29).Format(DateFormat),
		EndDate:   now.Format(DateFormat),
		GroupBy:   GroupByCategory,
		Metric:    MetricRevenue,
		ChartType: ChartBar,
	}
}

// Validate checks the query before any request is built. Dimension and
// metric values are validated here, on the producing side; the backend's own
// semantics are trusted.
func (q Query) Validate() error {
	if q.Shop == "" {
		return ErrShopRequired
	}
	start, err := time.Parse(DateFormat, q.StartDate)
	if err != nil {
		return fmt.Errorf("invalid start_date %q", q.StartDate)
	}
	end, err := time.Parse(DateFormat, q.EndDate)
	if err != nil {
		return fmt.Errorf("invalid end_date %q", q.EndDate)
	}
	if end.Before(start) {
		return fmt.Errorf("end_date %q precedes start_date %q", q.EndDate, q.StartDate)
	}
	if !q.GroupBy.Valid() {
		return fmt.Errorf("invalid group_by %q", q.GroupBy)
	}
	if !q.Metric.Valid() {
		return fmt.Errorf("invalid metric %q", q.Metric)
	}
	if !q.ChartType.Valid() {
		return fmt.Errorf("invalid chart type %q", q.ChartType)
	}
	return nil
}

// Values returns the five wire parameters of a sales API request.
func (q Query) Values() url.Values {
	v := url.Values{}
	v.Set("shop", q.Shop)
	v.Set("start_date", q.StartDate)
	v.Set("end_date", q.EndDate)
	v.Set("group_by", string(q.GroupBy))
	v.Set("metric", string(q.Metric))
	return v
}
