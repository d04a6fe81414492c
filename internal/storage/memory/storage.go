package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/jaiidees/riser-gacha/internal/model"
	"github.com/jaiidees/riser-gacha/internal/storage"
)

// Storage is an in-memory implementation of the storage interface
type Storage struct {
	mu sync.RWMutex

	records map[model.VisitorDigest]*model.PlayRecord
	status  *model.SystemStatus
}

// New creates a new in-memory storage instance
func New() *Storage {
	return &Storage{
		records: make(map[model.VisitorDigest]*model.PlayRecord),
	}
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// Play record operations

func (s *Storage) GetPlayRecord(ctx context.Context, digest model.VisitorDigest) (*model.PlayRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	record, ok := s.records[digest]
	if !ok {
		return nil, model.ErrRecordNotFound
	}
	return record, nil
}

func (s *Storage) InsertPlayRecord(ctx context.Context, record *model.PlayRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.records[record.IdentityDigest]; ok {
		return model.ErrRecordExists
	}
	s.records[record.IdentityDigest] = record
	return nil
}

func (s *Storage) DeletePlayRecord(ctx context.Context, digest model.VisitorDigest) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.records[digest]; !ok {
		return model.ErrRecordNotFound
	}
	delete(s.records, digest)
	return nil
}

func (s *Storage) ListPlayRecords(ctx context.Context, offset, limit int) ([]*model.PlayRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	records := make([]*model.PlayRecord, 0, len(s.records))
	for _, record := range s.records {
		records = append(records, record)
	}
	sort.Slice(records, func(i, j int) bool {
		return records[i].PlayedAt.After(records[j].PlayedAt)
	})

	if offset >= len(records) {
		return []*model.PlayRecord{}, nil
	}
	records = records[offset:]
	if limit > 0 && limit < len(records) {
		records = records[:limit]
	}
	return records, nil
}

func (s *Storage) CountPlayRecords(ctx context.Context) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return int64(len(s.records)), nil
}

// System status operations

func (s *Storage) GetSystemStatus(ctx context.Context) (*model.SystemStatus, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.status == nil {
		return nil, model.ErrStatusNotFound
	}
	return s.status, nil
}

func (s *Storage) SaveSystemStatus(ctx context.Context, status *model.SystemStatus) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.status = status
	return nil
}

func (s *Storage) EnsureSystemStatus(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.status == nil {
		s.status = &model.SystemStatus{IsActive: false}
	}
	return nil
}
