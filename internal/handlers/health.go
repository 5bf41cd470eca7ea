package handlers

import "net/http"

// Health handles GET /health. It stays deliberately dependency-free so the
// probe works even when the observability pipeline is down.
func Health(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ok"))
}
