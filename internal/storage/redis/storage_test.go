package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	"github.com/jaiidees/riser-gacha/internal/model"
)

type StorageSuite struct {
	suite.Suite
	mini    *miniredis.Miniredis
	storage *Storage
	ctx     context.Context
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	s.mini = miniredis.RunT(s.T())

	client := redis.NewClient(&redis.Options{
		Addr: s.mini.Addr(),
	})

	s.storage = NewWithClient(client, DefaultConfig())
	s.ctx = context.Background()
}

func (s *StorageSuite) TearDownTest() {
	if s.storage != nil {
		_ = s.storage.Close()
	}
	if s.mini != nil {
		s.mini.Close()
	}
}

func (s *StorageSuite) record(digest string, playedAt time.Time) *model.PlayRecord {
	return &model.PlayRecord{
		IdentityDigest: model.VisitorDigest(digest),
		Side:           model.SideMale,
		DisplayName:    "Ann",
		AssetReference: "a.png",
		BlessingText:   "have a lovely concert",
		PlayedAt:       playedAt,
	}
}

// Play record tests

func (s *StorageSuite) TestInsertAndGetPlayRecord() {
	record := s.record("digest-1", time.Date(2025, 11, 20, 18, 0, 0, 0, time.UTC))

	err := s.storage.InsertPlayRecord(s.ctx, record)
	s.Require().NoError(err)

	retrieved, err := s.storage.GetPlayRecord(s.ctx, "digest-1")
	s.Require().NoError(err)
	s.Equal(record.IdentityDigest, retrieved.IdentityDigest)
	s.Equal(record.AssetReference, retrieved.AssetReference)
	s.Equal(record.BlessingText, retrieved.BlessingText)
	s.True(record.PlayedAt.Equal(retrieved.PlayedAt))
}

func (s *StorageSuite) TestGetPlayRecordNotFound() {
	_, err := s.storage.GetPlayRecord(s.ctx, "nonexistent")
	s.ErrorIs(err, model.ErrRecordNotFound)
}

func (s *StorageSuite) TestInsertDuplicateDigestRejected() {
	first := s.record("digest-1", time.Date(2025, 11, 20, 18, 0, 0, 0, time.UTC))
	s.Require().NoError(s.storage.InsertPlayRecord(s.ctx, first))

	second := s.record("digest-1", time.Date(2025, 11, 20, 18, 0, 1, 0, time.UTC))
	second.AssetReference = "b.png"

	err := s.storage.InsertPlayRecord(s.ctx, second)
	s.ErrorIs(err, model.ErrRecordExists)

	// The winner is untouched
	retrieved, err := s.storage.GetPlayRecord(s.ctx, "digest-1")
	s.Require().NoError(err)
	s.Equal("a.png", retrieved.AssetReference)

	count, err := s.storage.CountPlayRecords(s.ctx)
	s.Require().NoError(err)
	s.Equal(int64(1), count)
}

func (s *StorageSuite) TestDeletePlayRecord() {
	record := s.record("digest-1", time.Now())
	s.Require().NoError(s.storage.InsertPlayRecord(s.ctx, record))

	err := s.storage.DeletePlayRecord(s.ctx, "digest-1")
	s.Require().NoError(err)

	_, err = s.storage.GetPlayRecord(s.ctx, "digest-1")
	s.ErrorIs(err, model.ErrRecordNotFound)

	count, err := s.storage.CountPlayRecords(s.ctx)
	s.Require().NoError(err)
	s.Equal(int64(0), count)
}

func (s *StorageSuite) TestLosingInsertLeavesIndexUntouched() {
	base := time.Date(2025, 11, 20, 18, 0, 0, 0, time.UTC)
	s.Require().NoError(s.storage.InsertPlayRecord(s.ctx, s.record("d-1", base)))
	s.Require().NoError(s.storage.InsertPlayRecord(s.ctx, s.record("d-2", base.Add(time.Minute))))

	// A rejected duplicate with a later timestamp must not bump the
	// winner's position in the recency index
	late := s.record("d-1", base.Add(time.Hour))
	s.ErrorIs(s.storage.InsertPlayRecord(s.ctx, late), model.ErrRecordExists)

	records, err := s.storage.ListPlayRecords(s.ctx, 0, 0)
	s.Require().NoError(err)
	s.Require().Len(records, 2)
	s.Equal(model.VisitorDigest("d-2"), records[0].IdentityDigest)
	s.Equal(model.VisitorDigest("d-1"), records[1].IdentityDigest)
}

func (s *StorageSuite) TestDeleteRemovesIndexEntry() {
	base := time.Date(2025, 11, 20, 18, 0, 0, 0, time.UTC)
	s.Require().NoError(s.storage.InsertPlayRecord(s.ctx, s.record("d-1", base)))
	s.Require().NoError(s.storage.InsertPlayRecord(s.ctx, s.record("d-2", base.Add(time.Minute))))

	s.Require().NoError(s.storage.DeletePlayRecord(s.ctx, "d-1"))

	// No stale index member survives the delete
	records, err := s.storage.ListPlayRecords(s.ctx, 0, 0)
	s.Require().NoError(err)
	s.Require().Len(records, 1)
	s.Equal(model.VisitorDigest("d-2"), records[0].IdentityDigest)
}

func (s *StorageSuite) TestDeletePlayRecordNotFound() {
	err := s.storage.DeletePlayRecord(s.ctx, "nonexistent")
	s.ErrorIs(err, model.ErrRecordNotFound)
}

func (s *StorageSuite) TestListPlayRecordsMostRecentFirst() {
	base := time.Date(2025, 11, 20, 18, 0, 0, 0, time.UTC)
	for i, digest := range []string{"d-1", "d-2", "d-3"} {
		record := s.record(digest, base.Add(time.Duration(i)*time.Minute))
		s.Require().NoError(s.storage.InsertPlayRecord(s.ctx, record))
	}

	records, err := s.storage.ListPlayRecords(s.ctx, 0, 0)
	s.Require().NoError(err)
	s.Require().Len(records, 3)
	s.Equal(model.VisitorDigest("d-3"), records[0].IdentityDigest)
	s.Equal(model.VisitorDigest("d-2"), records[1].IdentityDigest)
	s.Equal(model.VisitorDigest("d-1"), records[2].IdentityDigest)
}

func (s *StorageSuite) TestListPlayRecordsPagination() {
	base := time.Date(2025, 11, 20, 18, 0, 0, 0, time.UTC)
	for i, digest := range []string{"d-1", "d-2", "d-3", "d-4", "d-5"} {
		record := s.record(digest, base.Add(time.Duration(i)*time.Minute))
		s.Require().NoError(s.storage.InsertPlayRecord(s.ctx, record))
	}

	page, err := s.storage.ListPlayRecords(s.ctx, 2, 2)
	s.Require().NoError(err)
	s.Require().Len(page, 2)
	s.Equal(model.VisitorDigest("d-3"), page[0].IdentityDigest)
	s.Equal(model.VisitorDigest("d-2"), page[1].IdentityDigest)
}

func (s *StorageSuite) TestListPlayRecordsEmpty() {
	records, err := s.storage.ListPlayRecords(s.ctx, 0, 10)
	s.Require().NoError(err)
	s.Empty(records)
}

// System status tests

func (s *StorageSuite) TestGetSystemStatusBeforeInit() {
	_, err := s.storage.GetSystemStatus(s.ctx)
	s.ErrorIs(err, model.ErrStatusNotFound)
}

func (s *StorageSuite) TestEnsureSystemStatusInitializesInactive() {
	s.Require().NoError(s.storage.EnsureSystemStatus(s.ctx))

	status, err := s.storage.GetSystemStatus(s.ctx)
	s.Require().NoError(err)
	s.False(status.IsActive)
}

func (s *StorageSuite) TestEnsureSystemStatusKeepsExisting() {
	s.Require().NoError(s.storage.SaveSystemStatus(s.ctx, &model.SystemStatus{IsActive: true}))
	s.Require().NoError(s.storage.EnsureSystemStatus(s.ctx))

	status, err := s.storage.GetSystemStatus(s.ctx)
	s.Require().NoError(err)
	s.True(status.IsActive)
}

func (s *StorageSuite) TestSaveSystemStatusToggles() {
	s.Require().NoError(s.storage.EnsureSystemStatus(s.ctx))
	s.Require().NoError(s.storage.SaveSystemStatus(s.ctx, &model.SystemStatus{IsActive: true}))

	status, err := s.storage.GetSystemStatus(s.ctx)
	s.Require().NoError(err)
	s.True(status.IsActive)
}
