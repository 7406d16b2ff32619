// Package hpgl provides a fluent API for converting plotter command
// streams (HPGL) into DXF drawings, dimension reports and previews.
//
// Basic usage:
//
//	res, err := hpgl.Open("design.plt").Convert("", "")
//	if err != nil {
//	    // handle error
//	}
//	fmt.Print(res.Summary)
//	if len(res.Warnings) > 0 {
//	    log.Println("Warnings:", hpgl.FormatWarnings(res.Warnings))
//	}
//
// With options:
//
//	_, err := hpgl.Open("design.plt").
//	    Float().
//	    Lines().
//	    Layer("CUT").
//	    WriteDXF("design.dxf")
//
// For lower-level access, the command, plotter, summary and dxf
// packages can be used directly.
package hpgl

import "io"

// Open returns a Converter reading the named command file. The file is
// read when the first terminal operation runs.
//
// Example:
//
//	s, warnings, err := hpgl.Open("design.plt").Dimensions()
func Open(filename string) *Converter {
	return &Converter{
		filename: filename,
		options:  defaultOptions(),
	}
}

// FromString returns a Converter over an in-memory command stream.
//
// Example:
//
//	d, _, err := hpgl.FromString("PU0,0;PD10,0,10,10;PU;").Drawing()
func FromString(text string) *Converter {
	return &Converter{
		text:    text,
		loaded:  true,
		options: defaultOptions(),
	}
}

// FromReader returns a Converter reading the command stream from r.
// The reader is consumed once, by the first terminal operation; later
// operations on the same Converter reuse the text.
func FromReader(r io.Reader) *Converter {
	return &Converter{
		reader:  r,
		options: defaultOptions(),
	}
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
//
// Example:
//
//	res := hpgl.Must(hpgl.Open("design.plt").Convert("", ""))
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}

// MustWarn is a helper that wraps a call to Drawing() or Dimensions()
// and panics if the error is non-nil. It discards warnings and returns
// just the value.
//
// Example:
//
//	s := hpgl.MustWarn(hpgl.FromString(stream).Dimensions())
func MustWarn[T any](val T, _ []Warning, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}
