// Package config provides configuration for chesscore.
//
// Values are layered: defaults, then an optional YAML file, then
// environment variables, then command-line flags applied by the caller.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/lgbarn/chesscore-go/internal/engine"
	"github.com/lgbarn/chesscore-go/internal/errors"
	"github.com/lgbarn/chesscore-go/internal/game"
)

// MaxWorkers caps the batch worker pool.
const MaxWorkers = 256

// Config holds all program configuration.
type Config struct {
	// StartFEN is the position a session starts from.
	StartFEN string

	// Rules selects the candidate generator.
	Rules engine.Rules

	// FENPolicy selects how malformed placements are decoded.
	FENPolicy engine.FENPolicy

	// IllegalMoves decides whether moves the generator refuses are errors.
	IllegalMoves game.IllegalMovePolicy

	// Workers is the batch replay pool size.
	Workers int

	Log *LogConfig
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		StartFEN:     engine.InitialFEN,
		Rules:        engine.RulesBounded,
		FENPolicy:    engine.FENStrict,
		IllegalMoves: game.RejectIllegal,
		Workers:      1,
		Log:          NewLogConfig(),
	}
}

// fileConfig is the YAML shape of Config. Enumerations are names.
type fileConfig struct {
	StartFEN     string    `yaml:"start_fen"`
	Rules        string    `yaml:"rules"`
	FENPolicy    string    `yaml:"fen_policy"`
	IllegalMoves string    `yaml:"illegal_moves"`
	Workers      int       `yaml:"workers"`
	Log          LogConfig `yaml:"log"`
}

func (c *Config) toFile() fileConfig {
	log := NewLogConfig()
	if c.Log != nil {
		log = c.Log
	}
	return fileConfig{
		StartFEN:     c.StartFEN,
		Rules:        c.Rules.String(),
		FENPolicy:    c.FENPolicy.String(),
		IllegalMoves: c.IllegalMoves.String(),
		Workers:      c.Workers,
		Log:          *log,
	}
}

func (c *Config) fromFile(fc fileConfig) error {
	rules, err := engine.ParseRules(fc.Rules)
	if err != nil {
		return err
	}
	policy, err := engine.ParseFENPolicy(fc.FENPolicy)
	if err != nil {
		return err
	}
	illegal, err := game.ParseIllegalMovePolicy(fc.IllegalMoves)
	if err != nil {
		return err
	}
	c.StartFEN = fc.StartFEN
	c.Rules = rules
	c.FENPolicy = policy
	c.IllegalMoves = illegal
	c.Workers = fc.Workers
	log := fc.Log
	c.Log = &log
	return nil
}

// Load returns the defaults overlaid with the YAML file at path (if any)
// and then the environment. The result is validated.
func Load(path string) (*Config, error) {
	cfg := NewConfig()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if err := cfg.DecodeYAML(data); err != nil {
			return nil, err
		}
	}
	if err := cfg.ApplyEnv(os.LookupEnv); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// DecodeYAML overlays the YAML document data onto c. Keys that are
// absent keep their current values.
func (c *Config) DecodeYAML(data []byte) error {
	fc := c.toFile()
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return fmt.Errorf("parse config: %v: %w", err, errors.ErrInvalidConfig)
	}
	return c.fromFile(fc)
}

// EncodeYAML renders c in the config file format.
func (c *Config) EncodeYAML() ([]byte, error) {
	return yaml.Marshal(c.toFile())
}

// ApplyEnv overlays environment variables read through lookup.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	fc := c.toFile()
	set := func(key string, dst *string) {
		if v, ok := lookup(key); ok && strings.TrimSpace(v) != "" {
			*dst = v
		}
	}
	set("CHESS_START_FEN", &fc.StartFEN)
	set("CHESS_RULES", &fc.Rules)
	set("CHESS_FEN_POLICY", &fc.FENPolicy)
	set("CHESS_ILLEGAL_MOVES", &fc.IllegalMoves)
	set("LOG_LEVEL", &fc.Log.Level)
	set("LOG_FORMAT", &fc.Log.Format)
	set("LOG_FILE", &fc.Log.File)

	if v, ok := lookup("CHESS_WORKERS"); ok && strings.TrimSpace(v) != "" {
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("CHESS_WORKERS=%q: %w", v, errors.ErrInvalidConfig)
		}
		fc.Workers = n
	}
	return c.fromFile(fc)
}

// Validate checks value ranges that parsing cannot.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.StartFEN) == "" {
		return errors.Wrap(errors.ErrInvalidConfig, "start_fen is empty")
	}
	if c.Workers < 1 || c.Workers > MaxWorkers {
		return errors.Wrapf(errors.ErrInvalidConfig, "workers %d outside 1..%d", c.Workers, MaxWorkers)
	}
	if c.Log == nil {
		return errors.Wrap(errors.ErrInvalidConfig, "log section missing")
	}
	return c.Log.Validate()
}

// EngineOptions returns the engine options described by c.
func (c *Config) EngineOptions() []engine.Option {
	return []engine.Option{
		engine.WithRules(c.Rules),
		engine.WithFENPolicy(c.FENPolicy),
	}
}
