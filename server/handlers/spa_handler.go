package handlers

import (
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"
)

const indexFile = "index.html"

// SPAHandler serves the built dashboard. Unknown paths get index.html so
// client-side routes resolve; paths under /api/ never do.
type SPAHandler struct {
	dist string
}

func NewSPAHandler(dist string) *SPAHandler {
	return &SPAHandler{dist: dist}
}

// Available reports whether the dist directory holds an index.html.
func (h *SPAHandler) Available() bool {
	info, err := os.Stat(filepath.Join(h.dist, indexFile))
	return err == nil && !info.IsDir()
}

func (h *SPAHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	clean := path.Clean("/" + r.URL.Path)
	if clean == "/api" || strings.HasPrefix(clean, "/api/") {
		http.NotFound(w, r)
		return
	}

	file := filepath.Join(h.dist, filepath.FromSlash(clean))
	if info, err := os.Stat(file); err == nil && !info.IsDir() {
		http.ServeFile(w, r, file)
		return
	}

	index := filepath.Join(h.dist, indexFile)
	if _, err := os.Stat(index); err != nil {
		http.NotFound(w, r)
		return
	}
	http.ServeFile(w, r, index)
}
