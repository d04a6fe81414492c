package gate

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jaiidees/riser-gacha/internal/dependencies/clock"
	"github.com/jaiidees/riser-gacha/internal/model"
	"github.com/jaiidees/riser-gacha/internal/services/assets"
	"github.com/jaiidees/riser-gacha/internal/services/blessing"
	"github.com/jaiidees/riser-gacha/internal/storage"
)

// Status is the wire-visible outcome of a play attempt
type Status string

const (
	StatusClosed        Status = "closed"
	StatusAlreadyPlayed Status = "already_played"
	StatusSuccess       Status = "success"
)

// PlayInput carries one visitor's play attempt
type PlayInput struct {
	Side           model.Side
	DisplayName    string
	Language       model.Language
	VisitorAddress string
}

// Outcome is the result of a play attempt. Record is nil when Status
// is StatusClosed.
type Outcome struct {
	Status Status
	Record *model.PlayRecord
}

// Config holds tuning for the play gate
type Config struct {
	// StoreTimeout bounds each individual store operation.
	StoreTimeout time.Duration
}

// DefaultConfig returns default gate configuration
func DefaultConfig() Config {
	return Config{
		StoreTimeout: 3 * time.Second,
	}
}

// Controller runs the single-play gacha flow: closed-gate check, identity
// deduplication, asset draw, blessing generation, and the uniqueness-
// enforced record insert.
type Controller struct {
	storage  storage.Storage
	catalog  *assets.Catalog
	blessing *blessing.Generator
	clock    clock.Clock
	cfg      Config
	logger   *slog.Logger
}

// NewController creates a new play gate controller
func NewController(
	storage storage.Storage,
	catalog *assets.Catalog,
	blessing *blessing.Generator,
	clock clock.Clock,
	cfg Config,
	logger *slog.Logger,
) *Controller {
	if cfg.StoreTimeout == 0 {
		cfg.StoreTimeout = DefaultConfig().StoreTimeout
	}
	return &Controller{
		storage:  storage,
		catalog:  catalog,
		blessing: blessing,
		clock:    clock,
		cfg:      cfg,
		logger:   logger,
	}
}

// Play processes one play attempt. At most one record is ever written per
// visitor identity: the insert relies on the store's uniqueness guarantee,
// and a losing concurrent duplicate re-resolves to the winner's record.
func (c *Controller) Play(ctx context.Context, input PlayInput) (Outcome, error) {
	status, err := c.getSystemStatus(ctx)
	if err != nil {
		return Outcome{}, fmt.Errorf("read system status: %w", err)
	}
	if !status.IsActive {
		return Outcome{Status: StatusClosed}, nil
	}

	digest := model.DigestAddress(input.VisitorAddress)

	existing, err := c.getRecord(ctx, digest)
	if err == nil {
		return Outcome{Status: StatusAlreadyPlayed, Record: existing}, nil
	}
	if !errors.Is(err, model.ErrRecordNotFound) {
		return Outcome{}, fmt.Errorf("look up play record: %w", err)
	}

	asset, err := c.catalog.Pick(input.Side)
	if err != nil {
		return Outcome{}, err
	}

	name := input.DisplayName
	if name == "" {
		name = model.DefaultDisplayName
	}
	lang := model.NormalizeLanguage(string(input.Language))

	// Never fails; degrades to the curated pool internally.
	text := c.blessing.Generate(ctx, name, input.Side, lang)

	record := &model.PlayRecord{
		IdentityDigest: digest,
		Side:           input.Side,
		DisplayName:    name,
		AssetReference: asset,
		BlessingText:   text,
		PlayedAt:       c.clock.Now(),
	}

	if err := c.insertRecord(ctx, record); err != nil {
		if errors.Is(err, model.ErrRecordExists) {
			// Lost the race: another request with the same identity
			// inserted first. Its record is the play.
			winner, err := c.getRecord(ctx, digest)
			if err != nil {
				return Outcome{}, fmt.Errorf("re-resolve winning record: %w", err)
			}
			c.logger.Info("duplicate play resolved to existing record",
				slog.String("identity_digest", string(digest)),
			)
			return Outcome{Status: StatusAlreadyPlayed, Record: winner}, nil
		}
		return Outcome{}, fmt.Errorf("insert play record: %w", err)
	}

	c.logger.Info("play recorded",
		slog.String("identity_digest", string(digest)),
		slog.String("side", string(input.Side)),
		slog.String("asset", asset),
	)

	return Outcome{Status: StatusSuccess, Record: record}, nil
}

// Store calls carry their own bound so a stalled store surfaces as a
// transient failure instead of a hung request.

func (c *Controller) getSystemStatus(ctx context.Context) (*model.SystemStatus, error) {
	ctx, cancel := context.WithTimeout(ctx, c.cfg.StoreTimeout)
	defer cancel()
	return c.storage.GetSystemStatus(ctx)
}

func (c *Controller) getRecord(ctx context.Context, digest model.VisitorDigest) (*model.PlayRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, c.cfg.StoreTimeout)
	defer cancel()
	return c.storage.GetPlayRecord(ctx, digest)
}

func (c *Controller) insertRecord(ctx context.Context, record *model.PlayRecord) error {
	ctx, cancel := context.WithTimeout(ctx, c.cfg.StoreTimeout)
	defer cancel()
	return c.storage.InsertPlayRecord(ctx, record)
}
