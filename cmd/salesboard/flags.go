package main

import (
	"fmt"
	"log"
	"net"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/salesboard/salesboard/internal/config"
	"github.com/salesboard/salesboard/internal/demo"
	"github.com/salesboard/salesboard/internal/models"
)

const demoShop = "demo.myshopify.com"

// queryFlags is the shared flag set describing one dashboard query.
type queryFlags struct {
	shop      string
	start     string
	end       string
	groupBy   string
	metric    string
	chartType string
	orders    bool
}

func (f *queryFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.shop, "shop", "", "Shop domain (falls back to the configured default)")
	cmd.Flags().StringVar(&f.start, "start", "", "Inclusive start date (YYYY-MM-DD, default 29 days ago)")
	cmd.Flags().StringVar(&f.end, "end", "", "Inclusive end date (YYYY-MM-DD, default today)")
	cmd.Flags().StringVar(&f.groupBy, "group-by", "category", "Aggregation axis: category or date")
	cmd.Flags().StringVar(&f.metric, "metric", "revenue", "Aggregated measure: revenue or units")
	cmd.Flags().StringVar(&f.chartType, "chart-type", "bar", "Drawing style: bar or line")
	cmd.Flags().BoolVar(&f.orders, "show-orders", false, "Overlay daily order counts on a second axis")
}

func (f *queryFlags) query(cfg config.Config) models.Query {
	shop := f.shop
	if shop == "" {
		shop = cfg.DefaultShop
	}
	q := models.DefaultQuery(shop, time.Now())
	if f.start != "" {
		q.StartDate = f.start
	}
	if f.end != "" {
		q.EndDate = f.end
	}
	q.GroupBy = models.GroupBy(f.groupBy)
	q.Metric = models.Metric(f.metric)
	q.ChartType = models.ChartType(f.chartType)
	q.ShowOrders = f.orders
	return q
}

// resolveConfig loads the configuration and applies the overrides every
// command shares. With demo mode on, the built-in sales backend is
// started on an ephemeral local port and wired in as the backend.
func resolveConfig(backendURL, shop string, demoMode bool) (config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return config.Config{}, err
	}
	if backendURL != "" {
		cfg.BackendURL = backendURL
	}
	if shop != "" {
		cfg.DefaultShop = shop
	}
	if demoMode {
		cfg.Demo = true
	}

	if cfg.Demo {
		u, err := startDemoBackend()
		if err != nil {
			return config.Config{}, err
		}
		cfg.BackendURL = u
		if cfg.DefaultShop == "" {
			cfg.DefaultShop = demoShop
		}
		log.Println("✅ Demo sales backend running on", u)
	}

	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

// startDemoBackend serves the demo sales API on an ephemeral local port
// and returns its base URL.
func startDemoBackend() (string, error) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		return "", fmt.Errorf("start demo backend: %w", err)
	}
	go func() {
		if err := http.Serve(ln, demo.Handler()); err != nil {
			log.Fatal("❌ Demo backend failed:", err)
		}
	}()
	return "http://" + ln.Addr().String(), nil
}
