package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/spacemeshos/packvec/config"
)

const envPrefix = "PACKVEC"

func setFlags(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.PersistentFlags()

	flags.String("config", "", "Path to configuration file")
	flags.Bool("print-config", false, "Print the effective config before running")

	flags.UintVar(&cfg.BitWidth, "width",
		cfg.BitWidth, fmt.Sprintf("Element width in bits (%d..%d)", config.MinBitWidth, config.MaxBitWidth))

	flags.BoolVar(&cfg.MSBFirst, "msb-first",
		cfg.MSBFirst, "Render storage bytes with the most-significant bit on the left")

	flags.StringVar(&cfg.LogLevel, "log-level",
		cfg.LogLevel, "Log level (debug, info, warn, error)")
}

// loadConfig merges, from lowest to highest priority, the defaults, the
// config file, PACKVEC_* environment variables and explicitly set flags.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	vip := viper.New()
	vip.SetEnvPrefix(envPrefix)
	vip.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	vip.AutomaticEnv()

	if err := bindFlags(vip, cmd.Flags()); err != nil {
		return nil, err
	}

	if file := vip.GetString("config"); file != "" {
		vip.SetConfigFile(file)
		if err := vip.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	cfg := config.DefaultConfig()
	if err := vip.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func bindFlags(vip *viper.Viper, flags *pflag.FlagSet) error {
	var err error
	flags.VisitAll(func(f *pflag.Flag) {
		if err != nil {
			return
		}
		err = vip.BindPFlag(f.Name, f)
	})
	return err
}

func newLogger(cfg *config.Config) (*zap.Logger, error) {
	zapCfg := zap.Config{
		Level:    zap.NewAtomicLevelAt(cfg.Level()),
		Encoding: "console",
		EncoderConfig: zapcore.EncoderConfig{
			TimeKey:        "T",
			LevelKey:       "L",
			NameKey:        "N",
			MessageKey:     "M",
			LineEnding:     zapcore.DefaultLineEnding,
			EncodeLevel:    zapcore.CapitalLevelEncoder,
			EncodeTime:     zapcore.ISO8601TimeEncoder,
			EncodeDuration: zapcore.StringDurationEncoder,
		},
		OutputPaths:      []string{"stderr"},
		ErrorOutputPaths: []string{"stderr"},
	}
	return zapCfg.Build()
}
