package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"stocker/internal/cache"
	"stocker/internal/clock"
	"stocker/internal/collector"
	"stocker/internal/config"
	"stocker/internal/pipeline"
	"stocker/internal/widget"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr}).Level(zerolog.InfoLevel)

	if err := run(os.Args[1:], os.Stdout); err != nil {
		log.Fatal().Err(err).Msg("stocker")
	}
}

// run executes one pass. args are the command-line arguments without the
// program name. stdout receives the widget JSON only when err is nil.
func run(args []string, stdout io.Writer) error {
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg(".env file not found, relying on actual environment variables")
	}

	// Load config
	cfgPath := config.DefaultPath
	if len(args) > 0 {
		cfgPath = args[0]
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return err
	}
	if lvl, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		log.Logger = log.Logger.Level(lvl)
	} else {
		log.Warn().Str("log_level", cfg.LogLevel).Msg("unknown log level, using info")
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("config file '%s': %w", cfgPath, err)
	}

	c := clock.System{}
	fetcher := collector.NewTiingoFetcher(cfg.BaseURL, cfg.APIKey, cfg.Proxy)
	col := collector.NewCollector(fetcher, cache.NewStore(cfg.CacheDir, c))

	res, err := pipeline.New(cfg, col, c).Run(context.Background())
	if err != nil {
		return err
	}

	return widget.Emit(stdout, widget.Format(res))
}
