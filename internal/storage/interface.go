package storage

import (
	"context"

	"github.com/jaiidees/riser-gacha/internal/model"
)

// Storage defines the interface for data persistence
type Storage interface {
	// Play record operations.
	//
	// InsertPlayRecord must enforce the at-most-one-record-per-digest
	// invariant: it returns model.ErrRecordExists when a record with the
	// same identity digest is already present, without overwriting it.
	GetPlayRecord(ctx context.Context, digest model.VisitorDigest) (*model.PlayRecord, error)
	InsertPlayRecord(ctx context.Context, record *model.PlayRecord) error
	DeletePlayRecord(ctx context.Context, digest model.VisitorDigest) error

	// ListPlayRecords returns records ordered most recent first.
	// A limit <= 0 returns everything from offset onward.
	ListPlayRecords(ctx context.Context, offset, limit int) ([]*model.PlayRecord, error)
	CountPlayRecords(ctx context.Context) (int64, error)

	// System status operations.
	//
	// EnsureSystemStatus creates the inactive singleton if absent; it is
	// a no-op when the status already exists.
	GetSystemStatus(ctx context.Context) (*model.SystemStatus, error)
	SaveSystemStatus(ctx context.Context, status *model.SystemStatus) error
	EnsureSystemStatus(ctx context.Context) error
}
