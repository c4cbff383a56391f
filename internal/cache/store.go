package cache

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"stocker/internal/clock"
	"stocker/internal/customerrors"
)

var fileNameReplacer = strings.NewReplacer("/", "_", `\`, "_")

// Store keeps one file per ticker holding the last raw API response. The file
// modification time is the only freshness signal.
type Store struct {
	dir    string
	clock  clock.Clock
	logger zerolog.Logger
}

// NewStore creates a Store rooted at dir.
func NewStore(dir string, c clock.Clock) *Store {
	return &Store{
		dir:    dir,
		clock:  c,
		logger: log.With().Str("component", "cache").Logger(),
	}
}

// Path returns the cache file for ticker.
func (s *Store) Path(ticker string) string {
	return filepath.Join(s.dir, "cache_"+fileNameReplacer.Replace(ticker)+".json")
}

// IsFresh reports whether the cache file exists and was modified less than
// maxAge ago. Any stat failure, and any modification time in the future,
// counts as stale.
func (s *Store) IsFresh(ticker string, maxAge time.Duration) bool {
	info, err := os.Stat(s.Path(ticker))
	if err != nil {
		s.logger.Debug().Err(err).Str("ticker", ticker).Msg("cache not usable")
		return false
	}
	elapsed := s.clock.Now().Sub(info.ModTime())
	return elapsed >= 0 && elapsed < maxAge
}

// Read returns the cached payload byte for byte.
func (s *Store) Read(ticker string) ([]byte, error) {
	path := s.Path(ticker)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read cache file '%s': %v", customerrors.ErrCacheRead, path, err)
	}
	return data, nil
}

// Write replaces the cached payload for ticker.
func (s *Store) Write(ticker string, payload []byte) error {
	path := s.Path(ticker)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("%w: failed to write cache file '%s': %v", customerrors.ErrCacheWrite, path, err)
	}
	if err := os.WriteFile(path, payload, 0o644); err != nil {
		return fmt.Errorf("%w: failed to write cache file '%s': %v", customerrors.ErrCacheWrite, path, err)
	}
	return nil
}

// Age returns the time since the cache file was modified, never negative.
func (s *Store) Age(ticker string) (time.Duration, error) {
	path := s.Path(ticker)
	info, err := os.Stat(path)
	if err != nil {
		return 0, fmt.Errorf("%w: failed to stat cache file '%s': %v", customerrors.ErrCacheRead, path, err)
	}
	age := s.clock.Now().Sub(info.ModTime())
	if age < 0 {
		age = 0
	}
	return age, nil
}

// EffectiveMaxAge picks the weekend limit on Saturday and Sunday and the
// weekday limit otherwise. All values are in seconds.
func EffectiveMaxAge(day time.Weekday, weekdayMaxAge, weekendMaxAge uint64) uint64 {
	if day == time.Saturday || day == time.Sunday {
		return weekendMaxAge
	}
	return weekdayMaxAge
}

// Seconds converts a second count to a Duration, saturating instead of
// overflowing.
func Seconds(secs uint64) time.Duration {
	if secs > uint64(math.MaxInt64/int64(time.Second)) {
		return time.Duration(math.MaxInt64)
	}
	return time.Duration(secs) * time.Second
}
