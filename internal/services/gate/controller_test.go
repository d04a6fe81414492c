package gate

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/jaiidees/riser-gacha/internal/dependencies/clock"
	"github.com/jaiidees/riser-gacha/internal/dependencies/mocks"
	"github.com/jaiidees/riser-gacha/internal/dependencies/random"
	"github.com/jaiidees/riser-gacha/internal/model"
	"github.com/jaiidees/riser-gacha/internal/services/assets"
	"github.com/jaiidees/riser-gacha/internal/services/blessing"
	"github.com/jaiidees/riser-gacha/internal/storage"
	"github.com/jaiidees/riser-gacha/internal/storage/memory"
	"github.com/jaiidees/riser-gacha/internal/testutil"
)

type ControllerSuite struct {
	suite.Suite
	storage       *memory.Storage
	catalog       *assets.Catalog
	generator     *blessing.Generator
	clock         *mocks.MockClock
	catalogRandom *mocks.MockRandom
	poolRandom    *mocks.MockRandom
	controller    *Controller
	ctx           context.Context
}

func TestControllerSuite(t *testing.T) {
	suite.Run(t, new(ControllerSuite))
}

func (s *ControllerSuite) SetupTest() {
	primary := s.T().TempDir()
	s.writeAssets(filepath.Join(primary, "male"), "a.png", "b.png")
	s.writeAssets(filepath.Join(primary, "female"), "c.png", "d.png")

	s.storage = memory.New()
	s.clock = mocks.NewMockClock(time.Date(2025, 11, 22, 18, 0, 0, 0, time.UTC))
	s.catalogRandom = mocks.NewMockRandom()
	s.poolRandom = mocks.NewMockRandom()
	s.catalog = assets.New(primary, s.T().TempDir(), s.catalogRandom, testutil.NopLogger())
	s.generator = blessing.New(nil, s.poolRandom, blessing.DefaultConfig(), testutil.NopLogger())
	s.controller = s.newController(s.storage, s.catalog, s.generator, s.clock)
	s.ctx = context.Background()
}

func (s *ControllerSuite) newController(store storage.Storage, catalog *assets.Catalog, generator *blessing.Generator, clk clock.Clock) *Controller {
	return NewController(store, catalog, generator, clk, DefaultConfig(), testutil.NopLogger())
}

func (s *ControllerSuite) writeAssets(dir string, names ...string) {
	s.Require().NoError(os.MkdirAll(dir, 0o755))
	for _, name := range names {
		s.Require().NoError(os.WriteFile(filepath.Join(dir, name), []byte("img"), 0o644))
	}
}

func (s *ControllerSuite) activate() {
	s.Require().NoError(s.storage.SaveSystemStatus(s.ctx, &model.SystemStatus{IsActive: true}))
}

func (s *ControllerSuite) input(address string) PlayInput {
	return PlayInput{
		Side:           model.SideMale,
		DisplayName:    "Ann",
		Language:       model.LanguageEnglish,
		VisitorAddress: address,
	}
}

// Closed gate

func (s *ControllerSuite) TestClosedGateWritesNothing() {
	s.Require().NoError(s.storage.EnsureSystemStatus(s.ctx))

	outcome, err := s.controller.Play(s.ctx, s.input("1.2.3.4"))
	s.Require().NoError(err)
	s.Equal(StatusClosed, outcome.Status)
	s.Nil(outcome.Record)

	count, err := s.storage.CountPlayRecords(s.ctx)
	s.Require().NoError(err)
	s.Equal(int64(0), count)
}

func (s *ControllerSuite) TestClosedGateRepeatsStayClosed() {
	s.Require().NoError(s.storage.EnsureSystemStatus(s.ctx))

	for i := 0; i < 3; i++ {
		outcome, err := s.controller.Play(s.ctx, s.input("1.2.3.4"))
		s.Require().NoError(err)
		s.Equal(StatusClosed, outcome.Status)
	}

	count, _ := s.storage.CountPlayRecords(s.ctx)
	s.Equal(int64(0), count)
}

// First play

func (s *ControllerSuite) TestFirstPlaySucceeds() {
	s.activate()
	s.catalogRandom.QueueIntn(1) // -> b.png
	s.poolRandom.QueueIntn(2)

	outcome, err := s.controller.Play(s.ctx, s.input("1.2.3.4"))
	s.Require().NoError(err)

	s.Equal(StatusSuccess, outcome.Status)
	s.Require().NotNil(outcome.Record)
	s.Equal("b.png", outcome.Record.AssetReference)
	s.Equal(model.DigestAddress("1.2.3.4"), outcome.Record.IdentityDigest)
	s.Equal("Ann", outcome.Record.DisplayName)
	s.Equal(blessing.FallbackPool(model.LanguageEnglish)[2], outcome.Record.BlessingText)
	s.True(s.clock.CurrentTime.Equal(outcome.Record.PlayedAt))

	stored, err := s.storage.GetPlayRecord(s.ctx, outcome.Record.IdentityDigest)
	s.Require().NoError(err)
	s.Equal(outcome.Record, stored)
}

func (s *ControllerSuite) TestEmptyNameDefaults() {
	s.activate()
	in := s.input("1.2.3.4")
	in.DisplayName = ""

	outcome, err := s.controller.Play(s.ctx, in)
	s.Require().NoError(err)
	s.Equal(model.DefaultDisplayName, outcome.Record.DisplayName)
}

func (s *ControllerSuite) TestUnknownLanguageTakesThaiPool() {
	s.activate()
	in := s.input("1.2.3.4")
	in.Language = model.Language("fr")

	outcome, err := s.controller.Play(s.ctx, in)
	s.Require().NoError(err)
	s.Contains(blessing.FallbackPool(model.LanguageThai), outcome.Record.BlessingText)
}

func (s *ControllerSuite) TestSideSelectsOwnBucket() {
	s.activate()

	in := s.input("1.2.3.4")
	in.Side = model.SideFemale
	outcome, err := s.controller.Play(s.ctx, in)
	s.Require().NoError(err)
	s.Contains([]string{"c.png", "d.png"}, outcome.Record.AssetReference)

	in = s.input("5.6.7.8")
	in.Side = model.SideMale
	outcome, err = s.controller.Play(s.ctx, in)
	s.Require().NoError(err)
	s.Contains([]string{"a.png", "b.png"}, outcome.Record.AssetReference)
}

func (s *ControllerSuite) TestUnrecognizedSideFailsAssetLookup() {
	s.activate()
	in := s.input("1.2.3.4")
	in.Side = model.Side("robot")

	_, err := s.controller.Play(s.ctx, in)
	s.ErrorIs(err, model.ErrAssetsUnavailable)

	count, _ := s.storage.CountPlayRecords(s.ctx)
	s.Equal(int64(0), count)
}

// Idempotent repeat

func (s *ControllerSuite) TestRepeatPlayReturnsSameRecord() {
	s.activate()
	s.catalogRandom.QueueIntn(0)

	first, err := s.controller.Play(s.ctx, s.input("1.2.3.4"))
	s.Require().NoError(err)
	s.Equal(StatusSuccess, first.Status)

	for i := 0; i < 3; i++ {
		repeat, err := s.controller.Play(s.ctx, s.input("1.2.3.4"))
		s.Require().NoError(err)
		s.Equal(StatusAlreadyPlayed, repeat.Status)
		s.Equal(first.Record.AssetReference, repeat.Record.AssetReference)
		s.Equal(first.Record.BlessingText, repeat.Record.BlessingText)
	}

	count, _ := s.storage.CountPlayRecords(s.ctx)
	s.Equal(int64(1), count)
}

func (s *ControllerSuite) TestDistinctAddressesGetDistinctRecords() {
	s.activate()

	first, err := s.controller.Play(s.ctx, s.input("1.2.3.4"))
	s.Require().NoError(err)
	second, err := s.controller.Play(s.ctx, s.input("5.6.7.8"))
	s.Require().NoError(err)

	s.Equal(StatusSuccess, first.Status)
	s.Equal(StatusSuccess, second.Status)
	s.NotEqual(first.Record.IdentityDigest, second.Record.IdentityDigest)

	count, _ := s.storage.CountPlayRecords(s.ctx)
	s.Equal(int64(2), count)
}

// Race contract

// conflictStorage simulates losing the check-then-insert race: a winner
// record for the same digest lands between the lookup and the insert.
type conflictStorage struct {
	*memory.Storage
	winner *model.PlayRecord
}

func (c *conflictStorage) InsertPlayRecord(ctx context.Context, record *model.PlayRecord) error {
	_ = c.Storage.InsertPlayRecord(ctx, c.winner)
	return c.Storage.InsertPlayRecord(ctx, record)
}

func (s *ControllerSuite) TestInsertConflictResolvesToWinner() {
	winner := &model.PlayRecord{
		IdentityDigest: model.DigestAddress("1.2.3.4"),
		Side:           model.SideMale,
		DisplayName:    "Ann",
		AssetReference: "winner.png",
		BlessingText:   "the first one through",
		PlayedAt:       s.clock.CurrentTime,
	}
	store := &conflictStorage{Storage: s.storage, winner: winner}
	controller := s.newController(store, s.catalog, s.generator, s.clock)
	s.activate()

	outcome, err := controller.Play(s.ctx, s.input("1.2.3.4"))
	s.Require().NoError(err)

	s.Equal(StatusAlreadyPlayed, outcome.Status)
	s.Equal("winner.png", outcome.Record.AssetReference)
	s.Equal("the first one through", outcome.Record.BlessingText)

	count, _ := s.storage.CountPlayRecords(s.ctx)
	s.Equal(int64(1), count)
}

func (s *ControllerSuite) TestConcurrentDuplicatesYieldOneRecord() {
	s.activate()

	// Real randomness and clock so goroutines genuinely interleave
	catalog := assets.New(s.catalogDir(), s.T().TempDir(), random.New(), testutil.NopLogger())
	generator := blessing.New(nil, random.New(), blessing.DefaultConfig(), testutil.NopLogger())
	controller := s.newController(s.storage, catalog, generator, clock.New())

	const attempts = 8
	outcomes := make([]Outcome, attempts)
	errs := make([]error, attempts)

	var wg sync.WaitGroup
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			outcomes[i], errs[i] = controller.Play(s.ctx, s.input("1.2.3.4"))
		}(i)
	}
	wg.Wait()

	successes := 0
	var record *model.PlayRecord
	for i := 0; i < attempts; i++ {
		s.Require().NoError(errs[i])
		s.Require().NotNil(outcomes[i].Record)
		if outcomes[i].Status == StatusSuccess {
			successes++
		} else {
			s.Equal(StatusAlreadyPlayed, outcomes[i].Status)
		}
		if record == nil {
			record = outcomes[i].Record
		}
		s.Equal(record.AssetReference, outcomes[i].Record.AssetReference)
		s.Equal(record.BlessingText, outcomes[i].Record.BlessingText)
	}

	s.Equal(1, successes)
	count, _ := s.storage.CountPlayRecords(s.ctx)
	s.Equal(int64(1), count)
}

// catalogDir rebuilds an asset dir for tests that need a fresh catalog
func (s *ControllerSuite) catalogDir() string {
	dir := s.T().TempDir()
	s.writeAssets(filepath.Join(dir, "male"), "a.png", "b.png")
	return dir
}
