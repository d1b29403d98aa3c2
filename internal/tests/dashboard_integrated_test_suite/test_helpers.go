package dashboard_integrated_test_suite

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"time"

	"github.com/salesboard/salesboard/internal/config"
	"github.com/salesboard/salesboard/internal/demo"
	api "github.com/salesboard/salesboard/internal/http"
	handler "github.com/salesboard/salesboard/internal/http/handlers"
	"github.com/salesboard/salesboard/internal/http/rate_limiter"
	"github.com/salesboard/salesboard/internal/loader"
)

const suiteShop = "suite.myshopify.com"

var (
	backend      *httptest.Server
	salesLoader  *loader.Client
	requestCount atomic.Int64
)

func init() {
	backend = httptest.NewServer(countRequests(demo.Handler()))
	salesLoader = loader.New(backend.URL, 5*time.Second)

	handler.SetLoader(salesLoader)
	handler.SetConfig(config.Config{
		BackendURL:       backend.URL,
		DefaultShop:      suiteShop,
		FallbackCurrency: "USD",
	})

	// The suite hammers /api far beyond the production default.
	rate_limiter.SetLimit(1000, 1000)
}

func countRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestCount.Add(1)
		next.ServeHTTP(w, r)
	})
}

func newRouter() http.Handler {
	return api.NewRouter()
}

func getChart(r http.Handler, target string) (handler.ChartResponse, error) {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		return handler.ChartResponse{}, fmt.Errorf("unexpected status %d: %s", w.Code, w.Body.String())
	}
	var resp handler.ChartResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		return handler.ChartResponse{}, fmt.Errorf("decoding chart response: %w", err)
	}
	return resp, nil
}

func get(r http.Handler, target string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}
