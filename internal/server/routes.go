package server

import "net/http"

// registerRoutes sets up all routes on the mux.
func (s *Server) registerRoutes(mux *http.ServeMux) {
	// Dashboard shell
	mux.HandleFunc("/", s.handleIndex)

	// Analysis orchestration
	mux.HandleFunc("/api/analyze", s.handleAnalyze)

	// System
	mux.HandleFunc("/api/health", s.handleHealth)
	mux.HandleFunc("/api/version", s.handleVersion)
	mux.HandleFunc("/api/config", s.handleConfig)
}
