package keepalive

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"
)

// Config holds self-ping settings
type Config struct {
	// SelfURL is the service's own base URL; empty disables pinging.
	SelfURL string
	// InitialDelay waits for the server to come up before the first ping.
	InitialDelay time.Duration
	// Interval between pings.
	Interval time.Duration
	// RequestTimeout bounds each ping request.
	RequestTimeout time.Duration
}

// DefaultConfig returns the standard keepalive cadence
func DefaultConfig() Config {
	return Config{
		InitialDelay:   10 * time.Second,
		Interval:       5 * time.Minute,
		RequestTimeout: 10 * time.Second,
	}
}

// Pinger periodically hits the service's own health endpoint so a
// free-tier host does not idle the process out. Failures are logged and
// otherwise ignored.
type Pinger struct {
	cfg    Config
	client *http.Client
	logger *slog.Logger
}

// New creates a Pinger
func New(cfg Config, logger *slog.Logger) *Pinger {
	if cfg.InitialDelay == 0 {
		cfg.InitialDelay = DefaultConfig().InitialDelay
	}
	if cfg.Interval == 0 {
		cfg.Interval = DefaultConfig().Interval
	}
	if cfg.RequestTimeout == 0 {
		cfg.RequestTimeout = DefaultConfig().RequestTimeout
	}
	return &Pinger{
		cfg:    cfg,
		client: &http.Client{Timeout: cfg.RequestTimeout},
		logger: logger,
	}
}

// Run pings until ctx is cancelled. Returns immediately when no SelfURL
// is configured.
func (p *Pinger) Run(ctx context.Context) {
	if p.cfg.SelfURL == "" {
		p.logger.Info("keepalive disabled, no self URL configured")
		return
	}

	select {
	case <-time.After(p.cfg.InitialDelay):
	case <-ctx.Done():
		return
	}

	target := fmt.Sprintf("%s/api/health", p.cfg.SelfURL)
	p.logger.Info("keepalive started", slog.String("url", target))

	ticker := time.NewTicker(p.cfg.Interval)
	defer ticker.Stop()

	p.ping(ctx, target)
	for {
		select {
		case <-ticker.C:
			p.ping(ctx, target)
		case <-ctx.Done():
			p.logger.Info("keepalive stopped")
			return
		}
	}
}

func (p *Pinger) ping(ctx context.Context, target string) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		p.logger.Warn("keepalive request build failed", slog.String("error", err.Error()))
		return
	}

	resp, err := p.client.Do(req)
	if err != nil {
		p.logger.Warn("keepalive ping failed", slog.String("error", err.Error()))
		return
	}
	defer resp.Body.Close()

	p.logger.Debug("keepalive ping ok", slog.Int("status", resp.StatusCode))
}
