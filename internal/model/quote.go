package model

import "time"

// QuoteSnapshot holds the two fields read from the first element of a quote response.
type QuoteSnapshot struct {
	LastPrice float64
	PrevClose float64
}

// CachedPayload is a raw API response together with where it came from.
type CachedPayload struct {
	Ticker    string
	Body      []byte
	FromCache bool
	Age       time.Duration // time since the cache file was last modified
}
