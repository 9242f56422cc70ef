// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"

	"github.com/lgbarn/chesscore-go/internal/config"
	"github.com/lgbarn/chesscore-go/internal/engine"
	"github.com/lgbarn/chesscore-go/internal/errors"
	"github.com/lgbarn/chesscore-go/internal/game"
)

var (
	// Configuration
	configFile = flag.String("config", "", "YAML configuration file")
	startFEN   = flag.String("fen", "", "Starting position (default: initial position)")
	rulesName  = flag.String("rules", "", "Move generator: bounded or legacy")
	strictFEN  = flag.Bool("strict-fen", false, "Reject malformed FEN placements")
	lenientFEN = flag.Bool("lenient-fen", false, "Truncate malformed FEN ranks instead of failing")

	// Move handling
	ignoreIllegal = flag.Bool("ignore-illegal", false, "Skip moves the generator does not offer")

	// Batch replay
	batchFile  = flag.String("batch", "", "Replay positions from file (lines: FEN|move move ...)")
	workers    = flag.Int("workers", 0, "Batch worker count (0 = config value)")
	jsonOutput = flag.Bool("J", false, "Write batch results as JSON")
	dedupe     = flag.Bool("D", false, "Mark batch jobs whose final position repeats an earlier job")
	failFast   = flag.Bool("fail-fast", false, "Stop the batch after the first failed job")

	// Display
	colour = flag.Bool("color", false, "Colour the board")
	coords = flag.Bool("coords", false, "Print rank and file labels")

	// Logging
	logLevel  = flag.String("loglevel", "", "Log level: debug, info, warn, error")
	logFormat = flag.String("logformat", "", "Log format: console, json, legacy")

	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")
)

// applyFlags overlays command-line flags onto cfg. Unset flags leave the
// configured value alone.
func applyFlags(cfg *config.Config) error {
	if *startFEN != "" {
		cfg.StartFEN = *startFEN
	}
	if *rulesName != "" {
		r, err := engine.ParseRules(*rulesName)
		if err != nil {
			return err
		}
		cfg.Rules = r
	}
	switch {
	case *strictFEN && *lenientFEN:
		return errors.Wrap(errors.ErrInvalidConfig, "-strict-fen and -lenient-fen are mutually exclusive")
	case *strictFEN:
		cfg.FENPolicy = engine.FENStrict
	case *lenientFEN:
		cfg.FENPolicy = engine.FENLenient
	}
	if *ignoreIllegal {
		cfg.IllegalMoves = game.IgnoreIllegal
	}
	if *workers > 0 {
		cfg.Workers = *workers
	}
	if *logLevel != "" {
		cfg.Log.Level = *logLevel
	}
	if *logFormat != "" {
		cfg.Log.Format = *logFormat
	}
	return cfg.Validate()
}
