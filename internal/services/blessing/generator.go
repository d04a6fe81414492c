package blessing

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/jaiidees/riser-gacha/internal/dependencies/random"
	"github.com/jaiidees/riser-gacha/internal/model"
)

// Provider is a remote text-generation backend. Implementations must
// honor ctx cancellation on a best-effort basis; the Generator does not
// wait for a provider that ignores it.
type Provider interface {
	GenerateText(ctx context.Context, prompt string, temperature float64) (string, error)
}

// Config holds tuning for the generator
type Config struct {
	// Timeout bounds a single provider attempt; no retries follow.
	Timeout time.Duration
	// Temperature is passed through to the provider.
	Temperature float64
}

// DefaultConfig returns default generator configuration
func DefaultConfig() Config {
	return Config{
		Timeout:     5 * time.Second,
		Temperature: 0.8,
	}
}

// Generator produces a blessing for a visitor. It prefers the remote
// provider and degrades to the curated fallback pool on any failure, so
// Generate never fails and never blocks past the timeout.
type Generator struct {
	provider Provider
	random   random.Random
	cfg      Config
	logger   *slog.Logger
}

// New creates a Generator. A nil provider disables remote generation and
// every call serves from the fallback pool.
func New(provider Provider, random random.Random, cfg Config, logger *slog.Logger) *Generator {
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultConfig().Timeout
	}
	if cfg.Temperature == 0 {
		cfg.Temperature = DefaultConfig().Temperature
	}
	return &Generator{
		provider: provider,
		random:   random,
		cfg:      cfg,
		logger:   logger,
	}
}

type providerResult struct {
	text string
	err  error
}

// Generate returns a blessing for the visitor. Always returns non-empty
// text; the caller cannot tell a fallback pick from a short remote reply.
func (g *Generator) Generate(ctx context.Context, name string, side model.Side, lang model.Language) string {
	if g.provider == nil {
		return g.pickFallback(lang)
	}

	prompt := BuildPrompt(name, side, lang)

	ctx, cancel := context.WithTimeout(ctx, g.cfg.Timeout)
	defer cancel()

	// Race the provider against the deadline. If the provider ignores
	// cancellation the goroutine is abandoned, not awaited.
	resultCh := make(chan providerResult, 1)
	go func() {
		text, err := g.provider.GenerateText(ctx, prompt, g.cfg.Temperature)
		resultCh <- providerResult{text: text, err: err}
	}()

	select {
	case result := <-resultCh:
		if result.err != nil {
			g.logger.Warn("blessing provider failed, using fallback pool",
				slog.String("lang", string(lang)),
				slog.String("error", result.err.Error()),
			)
			return g.pickFallback(lang)
		}
		text := strings.TrimSpace(result.text)
		if text == "" {
			g.logger.Warn("blessing provider returned empty text, using fallback pool",
				slog.String("lang", string(lang)),
			)
			return g.pickFallback(lang)
		}
		return text
	case <-ctx.Done():
		g.logger.Warn("blessing provider timed out, using fallback pool",
			slog.String("lang", string(lang)),
			slog.Duration("timeout", g.cfg.Timeout),
		)
		return g.pickFallback(lang)
	}
}

func (g *Generator) pickFallback(lang model.Language) string {
	pool := FallbackPool(lang)
	return pool[g.random.Intn(len(pool))]
}
