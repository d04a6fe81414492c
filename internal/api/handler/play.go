package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/jaiidees/riser-gacha/internal/api/apierr"
	"github.com/jaiidees/riser-gacha/internal/api/request"
	"github.com/jaiidees/riser-gacha/internal/api/response"
	"github.com/jaiidees/riser-gacha/internal/model"
	"github.com/jaiidees/riser-gacha/internal/services/gate"
)

// PlayHandler handles the visitor-facing play endpoint
type PlayHandler struct {
	gate   *gate.Controller
	logger *slog.Logger
}

// NewPlayHandler creates a new play handler
func NewPlayHandler(gate *gate.Controller, logger *slog.Logger) *PlayHandler {
	return &PlayHandler{
		gate:   gate,
		logger: logger,
	}
}

// Play handles POST /api/play
func (h *PlayHandler) Play(w http.ResponseWriter, r *http.Request) {
	var req request.PlayRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apierr.WriteError(w, apierr.NewInvalidRequestError("invalid request body"))
		return
	}

	outcome, err := h.gate.Play(r.Context(), gate.PlayInput{
		Side:           model.Side(req.Gender),
		DisplayName:    req.Name,
		Language:       model.Language(req.Lang),
		VisitorAddress: request.ClientAddress(r),
	})
	if err != nil {
		h.logger.Error("play failed", slog.String("error", err.Error()))
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.PlayResponseFromOutcome(outcome))
}
