package handlers

import (
	"github.com/salesboard/salesboard/internal/chart"
	"github.com/salesboard/salesboard/internal/filters"
	"github.com/salesboard/salesboard/internal/models"
)

type QueryResponse struct {
	Shop       string `json:"shop"`
	StartDate  string `json:"start_date"`
	EndDate    string `json:"end_date"`
	GroupBy    string `json:"group_by"`
	Metric     string `json:"metric"`
	ChartType  string `json:"chart_type"`
	ShowOrders bool   `json:"show_orders"`
}

func queryResponse(q models.Query) QueryResponse {
	return QueryResponse{
		Shop:       q.Shop,
		StartDate:  q.StartDate,
		EndDate:    q.EndDate,
		GroupBy:    string(q.GroupBy),
		Metric:     string(q.Metric),
		ChartType:  string(q.ChartType),
		ShowOrders: q.ShowOrders,
	}
}

type ChartResponse struct {
	Query          QueryResponse  `json:"query"`
	Traces         []chart.Trace  `json:"traces"`
	Layout         chart.Layout   `json:"layout"`
	Keys           []string       `json:"keys"`
	Chips          []filters.Chip `json:"chips"`
	FiltersVisible bool           `json:"filters_visible"`
	RowCount       int            `json:"row_count"`
	Currency       string         `json:"currency,omitempty"`
	Timezone       string         `json:"timezone,omitempty"`
	Status         string         `json:"status"`
}

type HealthResult struct {
	Ok bool `json:"ok"`
}

type DiagResult struct {
	Version     string `json:"version"`
	BackendURL  string `json:"backend_url"`
	DefaultShop string `json:"default_shop,omitempty"`
	Demo        bool   `json:"demo"`
}
