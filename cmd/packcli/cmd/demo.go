package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/spacemeshos/packvec/packed"
)

func newDemoCmd(s *state) *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Pack four true values and read them back",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := packed.New(packed.Bool, packed.WithLogger(s.logger.Named("packed")))
			if err != nil {
				return err
			}

			v.Push(true)
			v.Push(true)
			v.Push(true)
			v.Push(true)

			out := cmd.OutOrStdout()
			for i := 0; i < 4; i++ {
				val, err := v.Get(i)
				if err != nil {
					return err
				}
				fmt.Fprintln(out, val)
			}

			return report(out, s, v)
		},
	}
}
