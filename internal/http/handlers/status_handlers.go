package handlers

import "net/http"

// HealthHandler godoc
// @Summary Liveness probe
// @Tags status
// @Produce json
// @Success 200 {object} HealthResult
// @Router /health [get]
func HealthHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResult{Ok: true})
}

// DiagHandler godoc
// @Summary Runtime configuration overview
// @Tags status
// @Produce json
// @Success 200 {object} DiagResult
// @Router /diag [get]
func DiagHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, DiagResult{
		Version:     version,
		BackendURL:  cfg.BackendURL,
		DefaultShop: cfg.DefaultShop,
		Demo:        cfg.Demo,
	})
}
