package web

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"
)

// SPAHandler serves the prebuilt single-page frontend bundle. Paths that
// match a real file under the static dir are served directly; everything
// else gets index.html so client-side routing can take over.
type SPAHandler struct {
	staticDir string
}

// NewSPAHandler creates a handler over the given bundle directory
func NewSPAHandler(staticDir string) *SPAHandler {
	return &SPAHandler{staticDir: staticDir}
}

// ServeHTTP implements http.Handler
func (h *SPAHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	relative := strings.TrimPrefix(filepath.Clean("/"+r.URL.Path), "/")
	path := filepath.Join(h.staticDir, relative)

	if info, err := os.Stat(path); err == nil && info.Mode().IsRegular() {
		http.ServeFile(w, r, path)
		return
	}

	index := filepath.Join(h.staticDir, "index.html")
	if _, err := os.Stat(index); err != nil {
		http.NotFound(w, r)
		return
	}
	http.ServeFile(w, r, index)
}
