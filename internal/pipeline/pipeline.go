package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"stocker/internal/cache"
	"stocker/internal/calculator"
	"stocker/internal/clock"
	"stocker/internal/collector"
	"stocker/internal/config"
	"stocker/internal/customerrors"
	"stocker/internal/model"
	"stocker/internal/quote"
	"stocker/internal/rotation"
	"stocker/internal/strategy"
)

// Pipeline runs one selection, fetch and classification pass.
type Pipeline struct {
	Config    *config.Config
	Collector *collector.Collector
	Clock     clock.Clock
	logger    zerolog.Logger
}

// New creates a Pipeline.
func New(cfg *config.Config, col *collector.Collector, c clock.Clock) *Pipeline {
	return &Pipeline{
		Config:    cfg,
		Collector: col,
		Clock:     c,
		logger:    log.With().Str("component", "pipeline").Logger(),
	}
}

// Run selects the ticker for the current rotation window, loads its quote
// from cache or the API, and classifies the price change.
func (p *Pipeline) Run(ctx context.Context) (*model.Result, error) {
	cfg := p.Config

	ticker, err := rotation.SelectTicker(cfg.Tickers, cfg.RotationSeconds, p.Clock.Now())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", customerrors.ErrConfigValidation, err)
	}

	maxAge := cache.EffectiveMaxAge(clock.LocalWeekday(p.Clock), cfg.CacheMaxAge, cfg.WeekendCacheMaxAge)
	p.logger.Debug().Str("ticker", ticker).Uint64("max_age", maxAge).Msg("ticker selected")

	payload, err := p.Collector.Collect(ctx, ticker, cache.Seconds(maxAge))
	if err != nil {
		return nil, err
	}

	q, err := quote.Parse(payload.Body)
	if err != nil {
		return nil, err
	}

	pct, err := calculator.CalculateChangePct(q.LastPrice, q.PrevClose)
	if err != nil {
		return nil, fmt.Errorf("ticker %s: %w", ticker, err)
	}

	return &model.Result{
		Ticker:                 ticker,
		LastPrice:              q.LastPrice,
		PriceChangePct:         pct,
		CacheAgeSeconds:        uint64(payload.Age / time.Second),
		EffectiveMaxAgeSeconds: maxAge,
		Class:                  strategy.Classify(pct, cfg.Thresholds),
	}, nil
}
