package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/jaiidees/riser-gacha/internal/model"
	"github.com/jaiidees/riser-gacha/internal/storage"
)

// Storage is a Redis-backed implementation of the storage interface
type Storage struct {
	client *redis.Client
	cfg    Config
}

// New creates a new Redis storage instance
func New(cfg Config) (*Storage, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, err
	}

	opts.PoolSize = cfg.PoolSize
	opts.MinIdleConns = cfg.MinIdleConns

	client := redis.NewClient(opts)

	// Verify connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &Storage{
		client: client,
		cfg:    cfg,
	}, nil
}

// NewWithClient creates a Redis storage with an existing client (for testing)
func NewWithClient(client *redis.Client, cfg Config) *Storage {
	return &Storage{
		client: client,
		cfg:    cfg,
	}
}

// Close closes the Redis connection
func (s *Storage) Close() error {
	return s.client.Close()
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// Play record operations

func (s *Storage) GetPlayRecord(ctx context.Context, digest model.VisitorDigest) (*model.PlayRecord, error) {
	data, err := s.client.Get(ctx, playKey(digest)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrRecordNotFound
		}
		return nil, err
	}

	var record model.PlayRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, err
	}
	return &record, nil
}

// InsertPlayRecord writes a record with SETNX so Redis itself enforces
// the one-play-per-digest invariant. A losing concurrent insert sees
// model.ErrRecordExists rather than clobbering the winner.
func (s *Storage) InsertPlayRecord(ctx context.Context, record *model.PlayRecord) error {
	data, err := json.Marshal(record)
	if err != nil {
		return err
	}

	// Record and index move together in one MULTI/EXEC so a crash can
	// never leave a record that dedups but is invisible to listings.
	// ZAddNX keeps a losing insert from touching the winner's score.
	pipe := s.client.TxPipeline()
	setCmd := pipe.SetNX(ctx, playKey(record.IdentityDigest), data, 0)
	pipe.ZAddNX(ctx, playedAtIndexKey(), redis.Z{
		Score:  float64(record.PlayedAt.UnixNano()),
		Member: string(record.IdentityDigest),
	})
	if _, err := pipe.Exec(ctx); err != nil {
		return err
	}
	if !setCmd.Val() {
		return model.ErrRecordExists
	}
	return nil
}

func (s *Storage) DeletePlayRecord(ctx context.Context, digest model.VisitorDigest) error {
	pipe := s.client.TxPipeline()
	delCmd := pipe.Del(ctx, playKey(digest))
	pipe.ZRem(ctx, playedAtIndexKey(), string(digest))
	if _, err := pipe.Exec(ctx); err != nil {
		return err
	}
	if delCmd.Val() == 0 {
		return model.ErrRecordNotFound
	}
	return nil
}

func (s *Storage) ListPlayRecords(ctx context.Context, offset, limit int) ([]*model.PlayRecord, error) {
	stop := int64(-1)
	if limit > 0 {
		stop = int64(offset + limit - 1)
	}

	digests, err := s.client.ZRevRange(ctx, playedAtIndexKey(), int64(offset), stop).Result()
	if err != nil {
		return nil, err
	}
	if len(digests) == 0 {
		return []*model.PlayRecord{}, nil
	}

	keys := make([]string, len(digests))
	for i, digest := range digests {
		keys[i] = playKey(model.VisitorDigest(digest))
	}

	values, err := s.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, err
	}

	records := make([]*model.PlayRecord, 0, len(values))
	for _, val := range values {
		if val == nil {
			continue // Deleted between index read and fetch
		}
		var record model.PlayRecord
		if err := json.Unmarshal([]byte(val.(string)), &record); err != nil {
			continue // Skip invalid data
		}
		records = append(records, &record)
	}

	return records, nil
}

func (s *Storage) CountPlayRecords(ctx context.Context) (int64, error) {
	return s.client.ZCard(ctx, playedAtIndexKey()).Result()
}

// System status operations

func (s *Storage) GetSystemStatus(ctx context.Context) (*model.SystemStatus, error) {
	data, err := s.client.Get(ctx, systemStatusKey()).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrStatusNotFound
		}
		return nil, err
	}

	var status model.SystemStatus
	if err := json.Unmarshal(data, &status); err != nil {
		return nil, err
	}
	return &status, nil
}

func (s *Storage) SaveSystemStatus(ctx context.Context, status *model.SystemStatus) error {
	data, err := json.Marshal(status)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, systemStatusKey(), data, 0).Err()
}

func (s *Storage) EnsureSystemStatus(ctx context.Context) error {
	data, err := json.Marshal(&model.SystemStatus{IsActive: false})
	if err != nil {
		return err
	}
	// SETNX keeps an already-toggled status intact across restarts
	return s.client.SetNX(ctx, systemStatusKey(), data, 0).Err()
}
