package collector

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"stocker/internal/cache"
	"stocker/internal/model"
)

// MockFetcher returns a fixed payload for development and testing.
type MockFetcher struct {
	Payload []byte
	Err     error
	Calls   int
}

func (m *MockFetcher) Name() string { return "mock" }

func (m *MockFetcher) FetchQuote(_ context.Context, _ string) ([]byte, error) {
	m.Calls++
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Payload, nil
}

// Collector serves quote payloads from the file cache when fresh and from
// the fetcher otherwise.
type Collector struct {
	Fetcher QuoteFetcher
	Cache   *cache.Store
	logger  zerolog.Logger
}

// NewCollector creates a new Collector.
func NewCollector(fetcher QuoteFetcher, store *cache.Store) *Collector {
	return &Collector{
		Fetcher: fetcher,
		Cache:   store,
		logger:  log.With().Str("component", "collector").Logger(),
	}
}

// Collect returns the payload for ticker. A fetched payload is written to the
// cache before it is returned; a failed write aborts the run.
func (c *Collector) Collect(ctx context.Context, ticker string, maxAge time.Duration) (*model.CachedPayload, error) {
	p := &model.CachedPayload{Ticker: ticker}

	if c.Cache.IsFresh(ticker, maxAge) {
		body, err := c.Cache.Read(ticker)
		if err != nil {
			return nil, err
		}
		c.logger.Debug().Str("ticker", ticker).Msg("cache hit")
		p.Body = body
		p.FromCache = true
	} else {
		c.logger.Debug().Str("ticker", ticker).Str("source", c.Fetcher.Name()).Msg("cache miss, fetching")
		body, err := c.Fetcher.FetchQuote(ctx, ticker)
		if err != nil {
			return nil, fmt.Errorf("fetch quote %s: %w", ticker, err)
		}
		if err := c.Cache.Write(ticker, body); err != nil {
			return nil, err
		}
		p.Body = body
	}

	age, err := c.Cache.Age(ticker)
	if err != nil {
		return nil, err
	}
	p.Age = age
	return p, nil
}
