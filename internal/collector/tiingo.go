package collector

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"stocker/internal/customerrors"
)

// TiingoFetcher implements QuoteFetcher against the Tiingo IEX endpoint.
type TiingoFetcher struct {
	BaseURL string
	client  *resty.Client
	logger  zerolog.Logger
}

// NewTiingoFetcher creates a fetcher with optional proxy support. The
// client makes one attempt per call and sets no timeout of its own.
func NewTiingoFetcher(baseURL, apiKey, proxyURL string) *TiingoFetcher {
	logger := log.With().Str("component", "collector").Logger()
	client := resty.New().
		SetHeader("Content-Type", "application/json").
		SetAuthScheme("Token").
		SetAuthToken(apiKey).
		SetRetryCount(0).
		SetLogger(restyLogger{logger})
	if proxyURL != "" {
		client.SetProxy(proxyURL)
	}
	return &TiingoFetcher{
		BaseURL: strings.TrimRight(baseURL, "/"),
		client:  client,
		logger:  logger,
	}
}

func (f *TiingoFetcher) Name() string { return "tiingo" }

// QuoteURL returns the endpoint for ticker.
func (f *TiingoFetcher) QuoteURL(ticker string) string {
	return fmt.Sprintf("%s/iex/%s", f.BaseURL, url.PathEscape(ticker))
}

// FetchQuote performs a single GET and returns the response body unchanged.
func (f *TiingoFetcher) FetchQuote(ctx context.Context, ticker string) ([]byte, error) {
	u := f.QuoteURL(ticker)
	f.logger.Debug().Str("url", u).Msg("fetching quote")

	resp, err := f.client.R().SetContext(ctx).Get(u)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", customerrors.ErrNetwork, u, err)
	}
	if !resp.IsSuccess() {
		return nil, &customerrors.HTTPStatusError{URL: u, StatusCode: resp.StatusCode()}
	}
	return resp.Body(), nil
}

// restyLogger routes resty's internal messages into zerolog at debug level.
// Request failures are returned to the caller, which logs them.
type restyLogger struct {
	l zerolog.Logger
}

func (r restyLogger) Errorf(format string, v ...interface{}) {
	r.l.Debug().Msgf(strings.TrimSpace(format), v...)
}

func (r restyLogger) Warnf(format string, v ...interface{}) {
	r.l.Debug().Msgf(strings.TrimSpace(format), v...)
}

func (r restyLogger) Debugf(format string, v ...interface{}) {
	r.l.Debug().Msgf(strings.TrimSpace(format), v...)
}
