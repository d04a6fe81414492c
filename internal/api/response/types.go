package response

import (
	"fmt"
	"time"

	"github.com/jaiidees/riser-gacha/internal/model"
	"github.com/jaiidees/riser-gacha/internal/services/admin"
	"github.com/jaiidees/riser-gacha/internal/services/gate"
)

// HealthResponse is returned by the liveness endpoint
type HealthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}

// PlayData carries the visitor-facing result of a play
type PlayData struct {
	ImageURL string `json:"image_url"`
	Blessing string `json:"blessing"`
}

// PlayResponse is the response for a play attempt
type PlayResponse struct {
	Status string    `json:"status"`
	Data   *PlayData `json:"data,omitempty"`
}

// PlayResponseFromOutcome converts a gate outcome to the wire format
func PlayResponseFromOutcome(outcome gate.Outcome) PlayResponse {
	resp := PlayResponse{Status: string(outcome.Status)}
	if outcome.Record != nil {
		resp.Data = &PlayData{
			ImageURL: ImageURL(outcome.Record),
			Blessing: outcome.Record.BlessingText,
		}
	}
	return resp
}

// ImageURL builds the serving path for a record's assigned asset
func ImageURL(record *model.PlayRecord) string {
	return fmt.Sprintf("/api/image/%s/%s", record.Side, record.AssetReference)
}

// SystemStatusResponse is the response for admin status endpoints
type SystemStatusResponse struct {
	IsActive bool `json:"is_active"`
}

// HistoryResponse is the paginated admin history listing
type HistoryResponse struct {
	Status     string              `json:"status"`
	Data       []*model.PlayRecord `json:"data"`
	Pagination admin.Pagination    `json:"pagination"`
}

// ExportResponse is the full unpaginated history dump
type ExportResponse struct {
	Status string              `json:"status"`
	Data   []*model.PlayRecord `json:"data"`
}

// DeleteResponse confirms an admin deletion
type DeleteResponse struct {
	Status string `json:"status"`
}
