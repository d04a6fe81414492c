package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
}

// NewOutput creates a new Output formatter
func NewOutput(format string) *Output {
	return &Output{format: format}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintError outputs an error
func (o *Output) PrintError(err error) {
	if o.format == "json" {
		errData := map[string]any{
			"error": map[string]string{
				"message": err.Error(),
			},
		}
		data, _ := json.Marshal(errData)
		fmt.Fprintln(os.Stderr, string(data))
	} else {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == "json" {
		data, _ := json.Marshal(map[string]string{"message": msg})
		fmt.Println(string(data))
	} else {
		fmt.Println(msg)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case HealthResult:
		o.printHealthResult(v)
	case SystemStatusResult:
		o.printSystemStatus(v)
	case HistoryResult:
		o.printHistory(v)
	case ExportResult:
		o.printExport(v)
	case DeleteResult:
		fmt.Printf("Status: %s\n", v.Status)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// HealthResult response type (matches API)
type HealthResult struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}

// SystemStatusResult response type
type SystemStatusResult struct {
	IsActive bool `json:"is_active"`
}

// PlayRecord response type
type PlayRecord struct {
	IdentityDigest string    `json:"identity_digest"`
	Side           string    `json:"side"`
	DisplayName    string    `json:"display_name"`
	AssetReference string    `json:"asset_reference"`
	BlessingText   string    `json:"blessing_text"`
	PlayedAt       time.Time `json:"played_at"`
}

// Pagination response type
type Pagination struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalDocs  int64 `json:"total_docs"`
	TotalPages int64 `json:"total_pages"`
}

// HistoryResult response type
type HistoryResult struct {
	Status     string       `json:"status"`
	Data       []PlayRecord `json:"data"`
	Pagination Pagination   `json:"pagination"`
}

// ExportResult response type
type ExportResult struct {
	Status string       `json:"status"`
	Data   []PlayRecord `json:"data"`
}

// DeleteResult response type
type DeleteResult struct {
	Status string `json:"status"`
}

func (o *Output) printHealthResult(h HealthResult) {
	fmt.Printf("Status: %s\n", h.Status)
	fmt.Printf("Timestamp: %s\n", h.Timestamp.Format(time.RFC3339))
}

func (o *Output) printSystemStatus(s SystemStatusResult) {
	state := "inactive"
	if s.IsActive {
		state = "active"
	}
	fmt.Printf("System: %s\n", state)
}

func (o *Output) printRecord(r PlayRecord) {
	fmt.Printf("  - %s [%s] %s\n", r.DisplayName, r.Side, r.PlayedAt.Format(time.RFC3339))
	fmt.Printf("    digest: %s\n", r.IdentityDigest)
	fmt.Printf("    image: %s\n", r.AssetReference)
	fmt.Printf("    blessing: %s\n", r.BlessingText)
}

func (o *Output) printHistory(h HistoryResult) {
	fmt.Printf("Page %d/%d (%d records total):\n", h.Pagination.Page, h.Pagination.TotalPages, h.Pagination.TotalDocs)
	for _, r := range h.Data {
		o.printRecord(r)
	}
}

func (o *Output) printExport(e ExportResult) {
	fmt.Printf("Records (%d):\n", len(e.Data))
	for _, r := range e.Data {
		o.printRecord(r)
	}
}
