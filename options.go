package hpgl

import (
	"github.com/tsawler/hpgl/command"
	"github.com/tsawler/hpgl/dxf"
	"github.com/tsawler/hpgl/preview"
)

// ConvertOptions holds configuration for a conversion.
type ConvertOptions struct {
	// Argument parsing
	precision command.Precision

	// DXF output
	mode  dxf.EntityMode
	layer string

	// Preview output; an empty path disables the preview in Convert
	previewPath string
	previewSize int
}

// defaultOptions returns the default conversion options.
func defaultOptions() ConvertOptions {
	return ConvertOptions{
		precision:   command.Integer,
		mode:        dxf.Polyline,
		layer:       dxf.DefaultLayer,
		previewPath: "",
		previewSize: preview.DefaultOptions().Size,
	}
}

// clone creates a copy of ConvertOptions.
func (o ConvertOptions) clone() ConvertOptions {
	return o
}

func (o ConvertOptions) dxfOptions() dxf.Options {
	return dxf.Options{Mode: o.mode, Layer: o.layer}
}

func (o ConvertOptions) previewOptions() preview.Options {
	opts := preview.DefaultOptions()
	opts.Size = o.previewSize
	return opts
}
