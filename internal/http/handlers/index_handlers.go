package handlers

import "net/http"

const apiVersion = "1.0.0"

var endpoints = []string{
	"GET /health",
	"GET /medicines",
	"GET /medicines/:id",
	"GET /medicines/:id/batches",
	"GET /medicines/low-stock",
	"GET /medicines/expiring-soon",
	"GET /medicines/expiry-summary",
	"GET /transactions",
	"GET /transactions/:id",
}

// IndexHandler godoc
// @Summary API index
// @Tags meta
// @Produce json
// @Success 200 {object} IndexResponse
// @Router / [get]
func (s *Server) IndexHandler(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, IndexResponse{
		Message:   "Medicine Inventory & Expiry Tracking API",
		Version:   apiVersion,
		Endpoints: endpoints,
	})
}

// HealthHandler godoc
// @Summary Liveness probe
// @Tags meta
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /health [get]
func (s *Server) HealthHandler(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, HealthResponse{Status: "ok"})
}
