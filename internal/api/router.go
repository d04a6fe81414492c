package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/jaiidees/riser-gacha/internal/api/handler"
	apimiddleware "github.com/jaiidees/riser-gacha/internal/api/middleware"
	"github.com/jaiidees/riser-gacha/internal/api/response"
	"github.com/jaiidees/riser-gacha/internal/dependencies/clock"
	"github.com/jaiidees/riser-gacha/internal/middleware"
	"github.com/jaiidees/riser-gacha/internal/services/admin"
	"github.com/jaiidees/riser-gacha/internal/services/assets"
	"github.com/jaiidees/riser-gacha/internal/services/gate"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger         *slog.Logger
	Clock          clock.Clock
	GateController *gate.Controller
	AdminService   *admin.Service
	Catalog        *assets.Catalog
	AdminSecret    string
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	// Create handlers
	playHandler := handler.NewPlayHandler(cfg.GateController, cfg.Logger)
	imageHandler := handler.NewImageHandler(cfg.Catalog)
	adminHandler := handler.NewAdminHandler(cfg.AdminService, cfg.Logger)

	// Create middleware
	adminKeyMiddleware := apimiddleware.AdminKey(cfg.AdminSecret)
	loggingMiddleware := middleware.Logging(cfg.Logger)
	recoveryMiddleware := apimiddleware.Recovery(cfg.Logger)

	// API subrouter with common middleware
	api := r.PathPrefix("/api").Subrouter()
	api.Use(recoveryMiddleware)
	api.Use(loggingMiddleware)

	// Visitor routes (no auth)
	api.HandleFunc("/play", playHandler.Play).Methods(http.MethodPost)
	api.HandleFunc("/image/{side}/{filename}", imageHandler.Get).Methods(http.MethodGet)

	// Liveness probe, also exposed at the root for platform health checks
	health := healthHandler(cfg.Clock)
	api.HandleFunc("/health", health).Methods(http.MethodGet)
	r.HandleFunc("/health", health).Methods(http.MethodGet)

	// Admin routes behind the shared secret
	adminRoutes := api.PathPrefix("/admin").Subrouter()
	adminRoutes.Use(adminKeyMiddleware)
	adminRoutes.HandleFunc("/system_status", adminHandler.SystemStatus).Methods(http.MethodGet)
	adminRoutes.HandleFunc("/toggle_system", adminHandler.ToggleSystem).Methods(http.MethodPost)
	adminRoutes.HandleFunc("/history", adminHandler.History).Methods(http.MethodGet)
	adminRoutes.HandleFunc("/export", adminHandler.Export).Methods(http.MethodGet)
	adminRoutes.HandleFunc("/delete/{digest}", adminHandler.Delete).Methods(http.MethodDelete)

	return r
}

func healthHandler(clk clock.Clock) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		response.JSON(w, http.StatusOK, response.HealthResponse{
			Status:    "alive",
			Timestamp: clk.Now(),
		})
	}
}
