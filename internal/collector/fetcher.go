package collector

import "context"

// QuoteFetcher defines the interface for fetching a raw quote payload.
type QuoteFetcher interface {
	FetchQuote(ctx context.Context, ticker string) ([]byte, error)
	Name() string
}
