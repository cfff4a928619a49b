package cmd

import (
	"fmt"
	"os"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/spacemeshos/packvec/config"
)

var (
	// Version is the version of the binary.
	Version = "0.0.0"

	// Commit is the commit hash of the binary.
	Commit = ""
)

// state is shared by the root command and its subcommands.
type state struct {
	cfg    *config.Config
	logger *zap.Logger
}

// NewRootCmd returns the packcli root command with all subcommands attached.
func NewRootCmd() *cobra.Command {
	s := &state{
		cfg:    config.DefaultConfig(),
		logger: zap.NewNop(),
	}

	rootCmd := &cobra.Command{
		Use:   "packcli",
		Short: "Inspect bit-packed vectors",
		Long: `packcli packs small-domain values into bytes, 1 to 7 bits each,
and shows how the elements are laid out in storage.`,
		Version:       fmt.Sprintf("%s (%s)", Version, Commit),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			s.cfg = cfg

			if printConfig, _ := cmd.Flags().GetBool("print-config"); printConfig {
				spew.Fdump(cmd.ErrOrStderr(), cfg)
			}

			logger, err := newLogger(cfg)
			if err != nil {
				return fmt.Errorf("failed to initialize zap logger: %w", err)
			}
			s.logger = logger
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = s.logger.Sync()
		},
	}

	setFlags(rootCmd, s.cfg)

	rootCmd.AddCommand(newDemoCmd(s))
	rootCmd.AddCommand(newPackCmd(s))

	return rootCmd
}

// Execute runs the root command and exits on failure.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "packcli:", err)
		os.Exit(1)
	}
}
