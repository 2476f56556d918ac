package server

import (
	"net/http"
)

// setupRoutes configures all HTTP routes
func (s *Server) setupRoutes() *http.ServeMux {
	mux := http.NewServeMux()

	// API routes - Chat
	mux.HandleFunc("/api/chat", s.app.ChatHandler.ChatHandler)

	// API routes - Initialization
	mux.HandleFunc("/api/init", s.app.InitHandler.InitHandler)        // GET - initialize, reuse persisted index
	mux.HandleFunc("/api/init-rag", s.app.InitHandler.InitRAGHandler) // GET - force index rebuild from PDFs
	mux.HandleFunc("/api/status", s.app.InitHandler.StatusHandler)    // GET - mode and corpus counts

	// API routes - Service info
	mux.HandleFunc("/api/health", s.app.APIHandler.HealthHandler)
	mux.HandleFunc("/api/version", s.app.APIHandler.VersionHandler)

	// Catch-all for unknown API paths
	mux.HandleFunc("/", s.app.APIHandler.NotFoundHandler)

	return mux
}
