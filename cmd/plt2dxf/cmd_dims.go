package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newDimsCmd() *cobra.Command {
	var in inputFlags

	cmd := &cobra.Command{
		Use:   "dims [file]",
		Short: "Print the design width and height in millimetres",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := in.converter(args, cmd.InOrStdin())
			if err != nil {
				return err
			}
			s, warnings, err := c.Dimensions()
			if err != nil {
				return fmt.Errorf("dims: %w", err)
			}
			reportWarnings(cmd.ErrOrStderr(), warnings)
			_, err = s.WriteTo(cmd.OutOrStdout())
			return err
		},
	}

	cmd.Flags().BoolVar(&in.float, "float", false, "read coordinates as decimals")

	return cmd
}
