package server

import "net/http"

// setupRoutes configures all HTTP routes.
func (s *Server) setupRoutes() *http.ServeMux {
	mux := http.NewServeMux()

	// Service descriptor (also the fallback for unmatched paths)
	mux.HandleFunc("/", s.indexHandler.ServeHTTP)

	// Service routes
	mux.HandleFunc("/health", s.healthHandler.ServeHTTP)
	mux.HandleFunc("/version", s.versionHandler.ServeHTTP)

	// Tool catalogue and dispatch
	mux.HandleFunc("/tools", func(w http.ResponseWriter, r *http.Request) {
		RouteByMethod(w, r, MethodRouter{"GET": s.toolsHandler.List})
	})
	mux.HandleFunc("/tools/call", func(w http.ResponseWriter, r *http.Request) {
		RouteByMethod(w, r, MethodRouter{"POST": s.toolsHandler.Call})
	})

	// Diagnostics
	mux.HandleFunc("/debug/tools/", s.toolsHandler.Inspect)
	mux.HandleFunc("/debug/registry", s.toolsHandler.Registry)

	return mux
}
