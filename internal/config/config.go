package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"stocker/internal/customerrors"
	"stocker/internal/model"
)

const (
	DefaultPath     = "config.toml"
	DefaultBaseURL  = "https://api.tiingo.com"
	DefaultCacheDir = "."
	DefaultLogLevel = "info"
)

// Config holds all application configuration.
type Config struct {
	APIKey             string
	Tickers            []string
	RotationSeconds    uint64
	CacheMaxAge        uint64 // seconds, Monday to Friday
	WeekendCacheMaxAge uint64 // seconds, Saturday and Sunday
	Thresholds         model.Thresholds

	BaseURL  string
	CacheDir string
	Proxy    string
	LogLevel string
}

// fileConfig mirrors the on-disk layout. Pointers distinguish a missing key
// from a zero value.
type fileConfig struct {
	APIKey             *string   `toml:"api_key" yaml:"api_key"`
	Tickers            *[]string `toml:"tickers" yaml:"tickers"`
	RotationSeconds    *uint64   `toml:"rotation_seconds" yaml:"rotation_seconds"`
	CacheMaxAge        *uint64   `toml:"cache_max_age" yaml:"cache_max_age"`
	WeekendCacheMaxAge *uint64   `toml:"weekend_cache_max_age" yaml:"weekend_cache_max_age"`
	Thresholds         *struct {
		CritDown any `toml:"critdown" yaml:"critdown"`
		Down     any `toml:"down" yaml:"down"`
		WayUp    any `toml:"wayup" yaml:"wayup"`
	} `toml:"thresholds" yaml:"thresholds"`

	BaseURL  string `toml:"base_url" yaml:"base_url"`
	CacheDir string `toml:"cache_dir" yaml:"cache_dir"`
	Proxy    string `toml:"proxy" yaml:"proxy"`
	LogLevel string `toml:"log_level" yaml:"log_level"`
}

// Load reads config from a TOML file (or YAML, by extension), then applies
// environment variable overrides.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: could not read config file '%s': %v", customerrors.ErrConfigRead, path, err)
	}

	var fc fileConfig
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &fc)
	default:
		err = toml.Unmarshal(data, &fc)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: could not parse config file '%s': %v", customerrors.ErrConfigParse, path, err)
	}

	cfg, err := fc.resolve()
	if err != nil {
		return nil, fmt.Errorf("%w: could not parse config file '%s': %v", customerrors.ErrConfigParse, path, err)
	}

	// Environment variable overrides
	if v := os.Getenv("TIINGO_API_KEY"); v != "" {
		cfg.APIKey = v
	}
	if v := os.Getenv("HTTPS_PROXY"); v != "" {
		cfg.Proxy = v
	}
	if v := os.Getenv("STOCKER_CACHE_DIR"); v != "" {
		cfg.CacheDir = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}

	// Defaults
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.CacheDir == "" {
		cfg.CacheDir = DefaultCacheDir
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = DefaultLogLevel
	}

	return cfg, nil
}

func (fc *fileConfig) resolve() (*Config, error) {
	switch {
	case fc.APIKey == nil:
		return nil, missingField("api_key")
	case fc.Tickers == nil:
		return nil, missingField("tickers")
	case fc.RotationSeconds == nil:
		return nil, missingField("rotation_seconds")
	case fc.CacheMaxAge == nil:
		return nil, missingField("cache_max_age")
	case fc.WeekendCacheMaxAge == nil:
		return nil, missingField("weekend_cache_max_age")
	case fc.Thresholds == nil:
		return nil, missingField("thresholds")
	}

	critDown, err := number("thresholds.critdown", fc.Thresholds.CritDown)
	if err != nil {
		return nil, err
	}
	down, err := number("thresholds.down", fc.Thresholds.Down)
	if err != nil {
		return nil, err
	}
	wayUp, err := number("thresholds.wayup", fc.Thresholds.WayUp)
	if err != nil {
		return nil, err
	}

	return &Config{
		APIKey:             *fc.APIKey,
		Tickers:            *fc.Tickers,
		RotationSeconds:    *fc.RotationSeconds,
		CacheMaxAge:        *fc.CacheMaxAge,
		WeekendCacheMaxAge: *fc.WeekendCacheMaxAge,
		Thresholds:         model.Thresholds{CritDown: critDown, Down: down, WayUp: wayUp},
		BaseURL:            fc.BaseURL,
		CacheDir:           fc.CacheDir,
		Proxy:              fc.Proxy,
		LogLevel:           fc.LogLevel,
	}, nil
}

func missingField(name string) error {
	return fmt.Errorf("missing field `%s`", name)
}

// number accepts integer or float values, since "down = -2" is a natural way
// to write a threshold.
func number(name string, v any) (float64, error) {
	switch n := v.(type) {
	case nil:
		return 0, missingField(name)
	case float64:
		return n, nil
	case float32:
		return float64(n), nil
	case int64:
		return float64(n), nil
	case int:
		return float64(n), nil
	case uint64:
		return float64(n), nil
	default:
		return 0, fmt.Errorf("invalid type for `%s`: expected a number, got %T", name, v)
	}
}

// Validate checks that all required fields are usable.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.APIKey) == "" {
		return fmt.Errorf("%w: API key empty", customerrors.ErrConfigValidation)
	}
	if len(c.Tickers) == 0 {
		return fmt.Errorf("%w: no tickers", customerrors.ErrConfigValidation)
	}
	if c.RotationSeconds == 0 {
		return fmt.Errorf("%w: rotation_seconds must be positive", customerrors.ErrConfigValidation)
	}
	return nil
}
