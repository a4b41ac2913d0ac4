package server

import (
	"net/http"
	"os"
	"strings"
)

// SPAMiddleware wraps an http.Handler to serve a Single Page Application
// It checks if the request was handled by API routes, and if not, serves the SPA
func SPAMiddleware(next http.Handler, staticPath, indexPath string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// API and metrics endpoints pass through untouched
		if strings.HasPrefix(r.URL.Path, "/api/") || r.URL.Path == "/metrics" {
			next.ServeHTTP(w, r)
			return
		}

		path := staticPath + r.URL.Path

		// Serve index.html for root and client-side routes
		if r.URL.Path == "/" || r.URL.Path == "/dashboard" {
			http.ServeFile(w, r, indexPath)
			return
		}

		// Missing static files fall back to index.html for the client router
		if _, err := os.Stat(path); os.IsNotExist(err) {
			http.ServeFile(w, r, indexPath)
			return
		}

		http.FileServer(http.Dir(staticPath)).ServeHTTP(w, r)
	})
}
