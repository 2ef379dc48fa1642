package handlers

import (
	"encoding/json"
	"net/http"
)

// NewRootHandler returns a plain-text liveness handler for GET /.
// @Summary Liveness check
// @Tags health
// @Produce plain
// @Success 200 {string} string "gw-auth-service is running"
// @Router / [get]
func NewRootHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("gw-auth-service is running"))
	}
}

// HealthResponse mirrors the actuator health body.
// swagger:model HealthResponse
type HealthResponse struct {
	// Status
	// example: UP
	Status string `json:"status"`
}

// NewHealthHandler returns the actuator-compatible health handler.
// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} handlers.HealthResponse "Service is up"
// @Router /actuator/health [get]
func NewHealthHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(HealthResponse{Status: "UP"})
	}
}
