package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/jaiidees/riser-gacha/internal/api/apierr"
	"github.com/jaiidees/riser-gacha/internal/api/response"
	"github.com/jaiidees/riser-gacha/internal/model"
	"github.com/jaiidees/riser-gacha/internal/services/admin"
)

// AdminHandler handles the shared-secret-guarded admin endpoints
type AdminHandler struct {
	admin  *admin.Service
	logger *slog.Logger
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(admin *admin.Service, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{
		admin:  admin,
		logger: logger,
	}
}

// SystemStatus handles GET /api/admin/system_status
func (h *AdminHandler) SystemStatus(w http.ResponseWriter, r *http.Request) {
	status, err := h.admin.SystemStatus(r.Context())
	if err != nil {
		h.logger.Error("read system status failed", slog.String("error", err.Error()))
		apierr.WriteError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, response.SystemStatusResponse{IsActive: status.IsActive})
}

// ToggleSystem handles POST /api/admin/toggle_system
func (h *AdminHandler) ToggleSystem(w http.ResponseWriter, r *http.Request) {
	status, err := h.admin.ToggleSystem(r.Context())
	if err != nil {
		h.logger.Error("toggle system failed", slog.String("error", err.Error()))
		apierr.WriteError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, response.SystemStatusResponse{IsActive: status.IsActive})
}

// History handles GET /api/admin/history?page=&limit=
func (h *AdminHandler) History(w http.ResponseWriter, r *http.Request) {
	page := queryInt(r, "page", 1)
	limit := queryInt(r, "limit", admin.DefaultPageLimit)

	records, pagination, err := h.admin.History(r.Context(), page, limit)
	if err != nil {
		h.logger.Error("history failed", slog.String("error", err.Error()))
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.HistoryResponse{
		Status:     "success",
		Data:       records,
		Pagination: pagination,
	})
}

// Export handles GET /api/admin/export
func (h *AdminHandler) Export(w http.ResponseWriter, r *http.Request) {
	records, err := h.admin.Export(r.Context())
	if err != nil {
		h.logger.Error("export failed", slog.String("error", err.Error()))
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.ExportResponse{
		Status: "success",
		Data:   records,
	})
}

// Delete handles DELETE /api/admin/delete/{digest}
func (h *AdminHandler) Delete(w http.ResponseWriter, r *http.Request) {
	digest := model.VisitorDigest(mux.Vars(r)["digest"])

	if err := h.admin.Delete(r.Context(), digest); err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.DeleteResponse{Status: "deleted"})
}

func queryInt(r *http.Request, key string, fallback int) int {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return value
}
