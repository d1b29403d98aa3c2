package handlers

import (
	"embed"
	"html/template"
	"log"
	"net/http"
)

//go:embed templates/dashboard.html
var pageFS embed.FS

var pageTmpl = template.Must(template.ParseFS(pageFS, "templates/dashboard.html"))

// DashboardPageHandler godoc
// @Summary Dashboard page
// @Description Serves the dashboard page. The URL parameters seed the controls; everything shown afterwards is driven by /api/chart.
// @Tags page
// @Produce html
// @Success 200 {string} string "HTML"
// @Router / [get]
func DashboardPageHandler(w http.ResponseWriter, r *http.Request) {
	q := queryFromRequest(r)
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := pageTmpl.Execute(w, struct{ Query QueryResponse }{queryResponse(q)}); err != nil {
		log.Printf("Failed to render dashboard page: %v", err)
	}
}
