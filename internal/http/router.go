package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	"github.com/salesboard/salesboard/internal/http/handlers"
)

func NewRouter() http.Handler {
	r := chi.NewRouter()

	r.Get("/", handlers.DashboardPageHandler)
	r.Get("/health", handlers.HealthHandler)
	r.Get("/diag", handlers.DiagHandler)

	r.Route("/api", func(api chi.Router) {
		api.Use(RateLimitMiddleware)
		api.Get("/chart", handlers.GetChartHandler)
		api.Get("/export.csv", handlers.ExportCSVHandler)
		api.Get("/export.xlsx", handlers.ExportXLSXHandler)
	})

	r.Get("/swagger/*", httpSwagger.WrapHandler)

	return r
}
