package redis

import (
	"fmt"

	"github.com/jaiidees/riser-gacha/internal/model"
)

// Key prefix for all gacha data
const keyPrefix = "gacha"

// playKey returns the Redis key for a PlayRecord
func playKey(digest model.VisitorDigest) string {
	return fmt.Sprintf("%s:play:%s", keyPrefix, digest)
}

// playedAtIndexKey returns the Redis key for the ZSET ordering plays by time
func playedAtIndexKey() string {
	return fmt.Sprintf("%s:idx:played_at", keyPrefix)
}

// systemStatusKey returns the Redis key for the SystemStatus singleton
func systemStatusKey() string {
	return fmt.Sprintf("%s:system_status", keyPrefix)
}
