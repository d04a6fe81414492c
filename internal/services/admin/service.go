package admin

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jaiidees/riser-gacha/internal/model"
	"github.com/jaiidees/riser-gacha/internal/storage"
)

// DefaultPageLimit is used when a history request gives no usable limit
const DefaultPageLimit = 100

// Pagination describes one page of history results
type Pagination struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalDocs  int64 `json:"total_docs"`
	TotalPages int64 `json:"total_pages"`
}

// Service exposes the administrative surface: availability toggling,
// history inspection/export, and record deletion.
type Service struct {
	storage storage.Storage
	logger  *slog.Logger
}

// New creates a new admin service
func New(storage storage.Storage, logger *slog.Logger) *Service {
	return &Service{
		storage: storage,
		logger:  logger,
	}
}

// SystemStatus returns the current availability flag
func (s *Service) SystemStatus(ctx context.Context) (*model.SystemStatus, error) {
	return s.storage.GetSystemStatus(ctx)
}

// ToggleSystem flips the availability flag and returns the new value
func (s *Service) ToggleSystem(ctx context.Context) (*model.SystemStatus, error) {
	current, err := s.storage.GetSystemStatus(ctx)
	if err != nil {
		return nil, fmt.Errorf("read system status: %w", err)
	}

	next := &model.SystemStatus{IsActive: !current.IsActive}
	if err := s.storage.SaveSystemStatus(ctx, next); err != nil {
		return nil, fmt.Errorf("save system status: %w", err)
	}

	s.logger.Info("system status toggled", slog.Bool("is_active", next.IsActive))
	return next, nil
}

// History returns one page of play records, most recent first, plus
// pagination metadata.
func (s *Service) History(ctx context.Context, page, limit int) ([]*model.PlayRecord, Pagination, error) {
	if page < 1 {
		page = 1
	}
	if limit <= 0 {
		limit = DefaultPageLimit
	}

	total, err := s.storage.CountPlayRecords(ctx)
	if err != nil {
		return nil, Pagination{}, fmt.Errorf("count play records: %w", err)
	}

	records, err := s.storage.ListPlayRecords(ctx, (page-1)*limit, limit)
	if err != nil {
		return nil, Pagination{}, fmt.Errorf("list play records: %w", err)
	}

	totalPages := (total + int64(limit) - 1) / int64(limit)
	return records, Pagination{
		Page:       page,
		Limit:      limit,
		TotalDocs:  total,
		TotalPages: totalPages,
	}, nil
}

// Export returns every play record, most recent first
func (s *Service) Export(ctx context.Context) ([]*model.PlayRecord, error) {
	return s.storage.ListPlayRecords(ctx, 0, 0)
}

// Delete removes a play record by identity digest, letting the visitor
// play again. Returns model.ErrRecordNotFound if no record exists.
func (s *Service) Delete(ctx context.Context, digest model.VisitorDigest) error {
	if err := s.storage.DeletePlayRecord(ctx, digest); err != nil {
		return err
	}
	s.logger.Info("play record deleted", slog.String("identity_digest", string(digest)))
	return nil
}
