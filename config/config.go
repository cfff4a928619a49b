package config

import (
	"fmt"

	"go.uber.org/zap/zapcore"

	"github.com/spacemeshos/packvec/packed"
)

const (
	MinBitWidth = packed.MinBitWidth
	MaxBitWidth = packed.MaxBitWidth
)

const (
	DefaultBitWidth = 1
	DefaultMSBFirst = true
	DefaultLogLevel = "info"
)

type Config struct {
	BitWidth uint `mapstructure:"width"`

	// MSBFirst renders storage bytes with the most-significant bit on the left.
	MSBFirst bool   `mapstructure:"msb-first"`
	LogLevel string `mapstructure:"log-level"`
}

func (cfg *Config) Validate() error {
	if cfg.BitWidth < MinBitWidth {
		return fmt.Errorf("invalid `BitWidth`; expected: >= %d, given: %d", MinBitWidth, cfg.BitWidth)
	}

	if cfg.BitWidth > MaxBitWidth {
		return fmt.Errorf("invalid `BitWidth`; expected: <= %d, given: %d", MaxBitWidth, cfg.BitWidth)
	}

	if _, err := zapcore.ParseLevel(cfg.LogLevel); err != nil {
		return fmt.Errorf("invalid `LogLevel`: %w", err)
	}

	return nil
}

// Level returns the parsed log level. Call Validate first.
func (cfg *Config) Level() zapcore.Level {
	lvl, err := zapcore.ParseLevel(cfg.LogLevel)
	if err != nil {
		return zapcore.InfoLevel
	}
	return lvl
}

// MaxTag returns the largest tag value representable in BitWidth bits.
func (cfg *Config) MaxTag() uint64 {
	return 1<<cfg.BitWidth - 1
}

func DefaultConfig() *Config {
	return &Config{
		BitWidth: DefaultBitWidth,
		MSBFirst: DefaultMSBFirst,
		LogLevel: DefaultLogLevel,
	}
}
