package customerrors

import (
	"errors"
	"fmt"
)

var (
	ErrConfigRead       = errors.New("config read error")
	ErrConfigParse      = errors.New("config parse error")
	ErrConfigValidation = errors.New("config validation error")

	ErrCacheRead  = errors.New("cache read error")
	ErrCacheWrite = errors.New("cache write error")

	ErrNetwork    = errors.New("network error")
	ErrHTTPStatus = errors.New("http status error")

	ErrInvalidResponseShape = errors.New("invalid API response")
	ErrMissingField         = errors.New("missing or invalid field")
	ErrDivisionByZero       = errors.New("previous close is zero")

	ErrSerialization = errors.New("serialization error")
)

// HTTPStatusError is returned when the quote API answers with a non-2xx status.
type HTTPStatusError struct {
	URL        string
	StatusCode int
}

func (e *HTTPStatusError) Error() string {
	return fmt.Sprintf("failed to fetch data from: %s (status %d)", e.URL, e.StatusCode)
}

// Is lets errors.Is match HTTPStatusError against ErrHTTPStatus.
func (e *HTTPStatusError) Is(target error) bool {
	return target == ErrHTTPStatus
}
