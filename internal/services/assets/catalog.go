package assets

import (
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/jaiidees/riser-gacha/internal/dependencies/random"
	"github.com/jaiidees/riser-gacha/internal/model"
)

// Catalog serves the per-side themed image buckets. Buckets are read from
// the primary (watermarked) directory, falling back to the raw asset
// directory when the primary is absent. Directory listings are cached for
// the process lifetime; repeats across visitors are expected.
type Catalog struct {
	primaryDir  string
	fallbackDir string
	random      random.Random
	logger      *slog.Logger

	mu      sync.RWMutex
	buckets map[model.Side][]string
}

// New creates a Catalog over the given directories
func New(primaryDir, fallbackDir string, random random.Random, logger *slog.Logger) *Catalog {
	return &Catalog{
		primaryDir:  primaryDir,
		fallbackDir: fallbackDir,
		random:      random,
		logger:      logger,
		buckets:     make(map[model.Side][]string),
	}
}

// Pick selects one filename uniformly at random from the side's bucket.
// Returns model.ErrAssetsUnavailable when neither directory has images
// for the side — a deployment defect, not user error.
func (c *Catalog) Pick(side model.Side) (string, error) {
	bucket, err := c.bucket(side)
	if err != nil {
		return "", err
	}
	return bucket[c.random.Intn(len(bucket))], nil
}

// Resolve returns the on-disk path for a previously assigned asset,
// checking the primary then the fallback directory.
func (c *Catalog) Resolve(side model.Side, filename string) (string, error) {
	// Path components must be bare names; anything else is a traversal attempt
	if !safeComponent(string(side)) || !safeComponent(filename) {
		return "", model.ErrAssetNotFound
	}

	for _, dir := range []string{c.primaryDir, c.fallbackDir} {
		path := filepath.Join(dir, string(side), filename)
		if info, err := os.Stat(path); err == nil && info.Mode().IsRegular() {
			return path, nil
		}
	}
	return "", model.ErrAssetNotFound
}

// bucket returns the cached listing for a side, scanning on first use
func (c *Catalog) bucket(side model.Side) ([]string, error) {
	c.mu.RLock()
	bucket, ok := c.buckets[side]
	c.mu.RUnlock()
	if ok {
		return bucket, nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if bucket, ok := c.buckets[side]; ok {
		return bucket, nil
	}

	bucket, err := c.scan(side)
	if err != nil {
		return nil, err
	}
	c.buckets[side] = bucket
	return bucket, nil
}

func (c *Catalog) scan(side model.Side) ([]string, error) {
	if !safeComponent(string(side)) {
		return nil, model.ErrAssetsUnavailable
	}

	dir := filepath.Join(c.primaryDir, string(side))
	entries, err := os.ReadDir(dir)
	if err != nil {
		dir = filepath.Join(c.fallbackDir, string(side))
		entries, err = os.ReadDir(dir)
		if err != nil {
			c.logger.Error("no asset directory for side",
				slog.String("side", string(side)),
				slog.String("primary", c.primaryDir),
				slog.String("fallback", c.fallbackDir),
			)
			return nil, model.ErrAssetsUnavailable
		}
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if isImageFile(entry.Name()) {
			files = append(files, entry.Name())
		}
	}
	if len(files) == 0 {
		return nil, model.ErrAssetsUnavailable
	}

	// Stable order so random indexes are reproducible under test
	sort.Strings(files)

	c.logger.Info("asset bucket loaded",
		slog.String("side", string(side)),
		slog.String("dir", dir),
		slog.Int("count", len(files)),
	)
	return files, nil
}

func isImageFile(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".png", ".jpg", ".jpeg":
		return true
	}
	return false
}

func safeComponent(name string) bool {
	if name == "" || name == "." || name == ".." {
		return false
	}
	return !strings.ContainsAny(name, `/\`)
}
