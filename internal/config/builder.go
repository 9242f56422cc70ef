package config

import (
	"github.com/lgbarn/chesscore-go/internal/engine"
	"github.com/lgbarn/chesscore-go/internal/game"
)

// ConfigBuilder provides a fluent API for building Config instances.
type ConfigBuilder struct {
	cfg *Config
}

// NewConfigBuilder creates a new ConfigBuilder with default values.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{
		cfg: NewConfig(),
	}
}

// From starts the builder from a copy of cfg instead of the defaults. A
// missing log section is replaced with the log defaults.
func (b *ConfigBuilder) From(cfg *Config) *ConfigBuilder {
	if cfg != nil {
		clone := *cfg
		if cfg.Log != nil {
			log := *cfg.Log
			clone.Log = &log
		} else {
			clone.Log = NewLogConfig()
		}
		b.cfg = &clone
	}
	return b
}

// Build returns the built Config.
func (b *ConfigBuilder) Build() *Config {
	return b.cfg
}

// WithStartFEN sets the starting position.
func (b *ConfigBuilder) WithStartFEN(fen string) *ConfigBuilder {
	b.cfg.StartFEN = fen
	return b
}

// WithRules sets the candidate generator.
func (b *ConfigBuilder) WithRules(r engine.Rules) *ConfigBuilder {
	b.cfg.Rules = r
	return b
}

// WithFENPolicy sets the placement decoding policy.
func (b *ConfigBuilder) WithFENPolicy(p engine.FENPolicy) *ConfigBuilder {
	b.cfg.FENPolicy = p
	return b
}

// WithIllegalMoves sets the illegal move policy.
func (b *ConfigBuilder) WithIllegalMoves(p game.IllegalMovePolicy) *ConfigBuilder {
	b.cfg.IllegalMoves = p
	return b
}

// WithWorkers sets the batch pool size.
func (b *ConfigBuilder) WithWorkers(n int) *ConfigBuilder {
	b.cfg.Workers = n
	return b
}

// WithLogLevel sets the log level name.
func (b *ConfigBuilder) WithLogLevel(level string) *ConfigBuilder {
	b.cfg.Log.Level = level
	return b
}
