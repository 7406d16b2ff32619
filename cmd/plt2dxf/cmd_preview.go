package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tsawler/hpgl/format"
)

func newPreviewCmd() *cobra.Command {
	var (
		in      inputFlags
		outPath string
		size    int
	)

	cmd := &cobra.Command{
		Use:   "preview [file]",
		Short: "Render a PNG preview of a plotter file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if outPath == "" {
				if len(args) == 0 {
					return fmt.Errorf("-o is required when reading from stdin")
				}
				outPath = format.ReplaceExtension(args[0], format.PNG)
			}
			if err := checkOutput(outPath, format.PNG); err != nil {
				return err
			}

			c, err := in.converter(args, cmd.InOrStdin())
			if err != nil {
				return err
			}
			warnings, err := c.PreviewSize(size).WritePreview(outPath)
			if err != nil {
				return fmt.Errorf("preview: %w", err)
			}
			reportWarnings(cmd.ErrOrStderr(), warnings)
			fmt.Fprintf(cmd.OutOrStdout(), "Preview: %s\n", outPath)
			return nil
		},
	}

	cmd.Flags().BoolVar(&in.float, "float", false, "read coordinates as decimals")
	cmd.Flags().StringVarP(&outPath, "output", "o", "", "PNG output path (default: input name with .png)")
	cmd.Flags().IntVar(&size, "size", 300, "preview size in pixels")

	return cmd
}
