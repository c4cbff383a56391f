package rotation

import (
	"errors"
	"time"
)

// SelectIndex returns (unixSeconds / rotationSeconds) mod n. Clocks set
// before the Unix epoch are treated as second zero.
func SelectIndex(unixSeconds int64, rotationSeconds uint64, n int) (int, error) {
	if rotationSeconds == 0 {
		return 0, errors.New("rotation period must be positive")
	}
	if n <= 0 {
		return 0, errors.New("no tickers to rotate through")
	}
	if unixSeconds < 0 {
		unixSeconds = 0
	}
	return int((uint64(unixSeconds) / rotationSeconds) % uint64(n)), nil
}

// SelectTicker picks the ticker for the rotation window containing now.
func SelectTicker(tickers []string, rotationSeconds uint64, now time.Time) (string, error) {
	idx, err := SelectIndex(now.Unix(), rotationSeconds, len(tickers))
	if err != nil {
		return "", err
	}
	return tickers[idx], nil
}
