package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tsawler/hpgl/format"
)

func newConvertCmd() *cobra.Command {
	var (
		in          inputFlags
		outPath     string
		summaryPath string
		previewPath string
		previewSize int
		lines       bool
		layer       string
	)

	cmd := &cobra.Command{
		Use:   "convert [file]",
		Short: "Convert a plotter file to DXF and write its dimensions",
		Long: `Convert a plotter command file to a DXF drawing.

By default the DXF is written next to the input with a .dxf extension,
and the design dimensions go to dimensions.txt in the same directory.
If no file is provided, commands are read from stdin and -o is required.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 && outPath == "" {
				return fmt.Errorf("-o is required when reading from stdin")
			}
			if err := checkOutput(outPath, format.DXF); err != nil {
				return err
			}
			if err := checkOutput(previewPath, format.PNG); err != nil {
				return err
			}

			c, err := in.converter(args, cmd.InOrStdin())
			if err != nil {
				return err
			}
			if lines {
				c = c.Lines()
			}
			c = c.Layer(layer).PreviewSize(previewSize)
			if previewPath != "" {
				c = c.Preview(previewPath)
			}

			res, err := c.Convert(outPath, summaryPath)
			if err != nil {
				return fmt.Errorf("convert: %w", err)
			}

			out := cmd.OutOrStdout()
			reportWarnings(cmd.ErrOrStderr(), res.Warnings)
			fmt.Fprint(out, res.Summary)
			fmt.Fprintf(out, "DXF: %s (%d entities)\n", res.DXFPath, res.Entities)
			fmt.Fprintf(out, "Dimensions: %s\n", res.SummaryPath)
			if res.PreviewPath != "" {
				fmt.Fprintf(out, "Preview: %s\n", res.PreviewPath)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&in.float, "float", false, "read coordinates as decimals")
	cmd.Flags().StringVarP(&outPath, "output", "o", "", "DXF output path")
	cmd.Flags().StringVar(&summaryPath, "summary", "", "dimensions report path (default dimensions.txt next to the DXF)")
	cmd.Flags().StringVar(&previewPath, "preview", "", "also write a PNG preview to this path")
	cmd.Flags().IntVar(&previewSize, "size", 300, "preview size in pixels")
	cmd.Flags().BoolVar(&lines, "lines", false, "write one LINE per segment instead of polylines")
	cmd.Flags().StringVar(&layer, "layer", "PLOT", "DXF layer name")

	return cmd
}
