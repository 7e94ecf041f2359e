package server

import (
	"net/http"
	"os"
	"path/filepath"
)

// handleSPA serves the PWA client from dir, falling back to index.html
// for any path that doesn't match a real file (client-side routing,
// e.g. /join/{code} deep links from the QR code).
func handleSPA(dir string) http.HandlerFunc {
	fs := http.Dir(dir)
	fileServer := http.FileServer(fs)

	return func(w http.ResponseWriter, r *http.Request) {
		path := filepath.Join(dir, filepath.Clean(r.URL.Path))
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			fileServer.ServeHTTP(w, r)
			return
		}

		http.ServeFile(w, r, filepath.Join(dir, "index.html"))
	}
}
