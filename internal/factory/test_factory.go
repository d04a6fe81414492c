package factory

import (
	"context"
	"time"

	"github.com/jaiidees/riser-gacha/internal/dependencies/mocks"
	"github.com/jaiidees/riser-gacha/internal/services/blessing"
	"github.com/jaiidees/riser-gacha/internal/storage/memory"
	"github.com/jaiidees/riser-gacha/internal/testutil"
)

// TestApp extends App with test-specific helpers
type TestApp struct {
	*App

	// Mocks for test control
	MockClock  *mocks.MockClock
	MockRandom *mocks.MockRandom
}

// TestConfig holds the parts of the wiring tests commonly vary
type TestConfig struct {
	// ImageDir / AssetDir point the catalog at test fixture directories
	ImageDir string
	AssetDir string
	// BlessingProvider is usually nil in tests so blessings come from
	// the deterministic fallback pool
	BlessingProvider blessing.Provider
}

// NewTestApp creates an App configured for testing with mocked dependencies
// and in-memory storage
func NewTestApp(cfg TestConfig) *TestApp {
	store := memory.New()
	mockClock := mocks.NewMockClock(time.Date(2025, 11, 22, 18, 0, 0, 0, time.UTC))
	mockRandom := mocks.NewMockRandom()

	app := newWithDependencies(store, mockClock, mockRandom, Config{
		ImageDir:         cfg.ImageDir,
		AssetDir:         cfg.AssetDir,
		BlessingProvider: cfg.BlessingProvider,
	}, testutil.NopLogger())

	// Mirror production boot: the status record exists before any request
	if err := store.EnsureSystemStatus(context.Background()); err != nil {
		panic(err)
	}

	return &TestApp{
		App:        app,
		MockClock:  mockClock,
		MockRandom: mockRandom,
	}
}
