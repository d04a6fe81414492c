package handler

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/jaiidees/riser-gacha/internal/api/apierr"
	"github.com/jaiidees/riser-gacha/internal/model"
	"github.com/jaiidees/riser-gacha/internal/services/assets"
)

// ImageHandler serves the themed images assigned by plays
type ImageHandler struct {
	catalog *assets.Catalog
}

// NewImageHandler creates a new image handler
func NewImageHandler(catalog *assets.Catalog) *ImageHandler {
	return &ImageHandler{catalog: catalog}
}

// Get handles GET /api/image/{side}/{filename}
func (h *ImageHandler) Get(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	path, err := h.catalog.Resolve(model.Side(vars["side"]), vars["filename"])
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	http.ServeFile(w, r, path)
}
