package cmd

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/spacemeshos/packvec/packed"
)

var ErrTagOutOfRange = errors.New("tag out of range")

func newPackCmd(s *state) *cobra.Command {
	return &cobra.Command{
		Use:   "pack <tag>...",
		Short: "Pack numeric tags at --width bits each and show the storage layout",
		Example: `  packcli pack --width 3 1 2 1 1 4
  PACKVEC_WIDTH=2 packcli pack 1 2 1 2 1`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tags, err := parseTags(args, s.cfg.MaxTag())
			if err != nil {
				return err
			}

			v, err := packed.New[uint8](packed.Enum[uint8](s.cfg.BitWidth),
				packed.WithLogger(s.logger.Named("packed")),
				packed.WithCapacity(len(tags)),
			)
			if err != nil {
				return err
			}
			v.Extend(tags)

			fmt.Fprintln(cmd.OutOrStdout(), v)
			return report(cmd.OutOrStdout(), s, v)
		},
	}
}

func parseTags(args []string, maxTag uint64) ([]uint8, error) {
	tags := make([]uint8, 0, len(args))
	for _, arg := range args {
		tag, err := strconv.ParseUint(arg, 0, 8)
		if err != nil {
			return nil, fmt.Errorf("invalid tag %q: %w", arg, err)
		}
		if tag > maxTag {
			return nil, fmt.Errorf("%w; expected: <= %d, given: %d", ErrTagOutOfRange, maxTag, tag)
		}
		tags = append(tags, uint8(tag))
	}
	return tags, nil
}
