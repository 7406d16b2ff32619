package hpgl

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/tliron/commonlog"

	"github.com/tsawler/hpgl/command"
	"github.com/tsawler/hpgl/dxf"
	"github.com/tsawler/hpgl/format"
	"github.com/tsawler/hpgl/model"
	"github.com/tsawler/hpgl/plotter"
	"github.com/tsawler/hpgl/preview"
	"github.com/tsawler/hpgl/summary"
)

var (
	// ErrNoInput is returned when a Converter has neither a file nor a reader
	ErrNoInput = errors.New("hpgl: no input specified")
	// ErrUnsupportedFormat is returned when the input is not a command stream
	ErrUnsupportedFormat = errors.New("hpgl: input is not a plotter command stream")
)

// SummaryFilename is the name of the dimensions report written next to
// the DXF output by default.
const SummaryFilename = "dimensions.txt"

func logger() commonlog.Logger {
	return commonlog.GetLogger("hpgl")
}

// Converter provides a fluent interface for converting command streams.
// Each configuration method returns a new Converter instance, making it
// safe to branch a configuration and allowing method chaining.
type Converter struct {
	// Source
	filename string
	reader   io.Reader

	// Loaded command text
	text   string
	loaded bool

	// Configuration
	options ConvertOptions

	// Accumulated error (fail-fast)
	err error
}

// Result describes a completed conversion.
type Result struct {
	Drawing     *model.Drawing
	Summary     summary.Summary
	DXFPath     string
	SummaryPath string
	PreviewPath string
	Entities    int
	Warnings    []Warning
}

// clone creates a shallow copy of the Converter with a copy of options.
func (c *Converter) clone() *Converter {
	return &Converter{
		filename: c.filename,
		reader:   c.reader,
		text:     c.text,
		loaded:   c.loaded,
		options:  c.options.clone(),
		err:      c.err,
	}
}

// ============================================================================
// Configuration Methods (return new Converter instance)
// ============================================================================

// Precision selects how numeric arguments are read.
//
// Example:
//
//	d, _, err := hpgl.Open("design.plt").Precision(command.Float).Drawing()
func (c *Converter) Precision(p command.Precision) *Converter {
	n := c.clone()
	n.options.precision = p
	return n
}

// Float reads arguments as signed decimals. It is equivalent to
// Precision(command.Float).
func (c *Converter) Float() *Converter {
	return c.Precision(command.Float)
}

// Lines writes one LINE entity per segment instead of one LWPOLYLINE
// per path.
func (c *Converter) Lines() *Converter {
	n := c.clone()
	n.options.mode = dxf.Lines
	return n
}

// Layer sets the DXF layer entities are placed on.
func (c *Converter) Layer(name string) *Converter {
	n := c.clone()
	if name == "" {
		n.err = errors.New("hpgl: empty layer name")
		return n
	}
	n.options.layer = name
	return n
}

// Preview makes Convert also write a PNG preview to path.
func (c *Converter) Preview(path string) *Converter {
	n := c.clone()
	n.options.previewPath = path
	return n
}

// PreviewSize sets the preview canvas size in pixels.
func (c *Converter) PreviewSize(px int) *Converter {
	n := c.clone()
	if px <= 0 {
		n.err = fmt.Errorf("hpgl: invalid preview size %d", px)
		return n
	}
	n.options.previewSize = px
	return n
}

// ============================================================================
// Terminal Operations
// ============================================================================

// Drawing parses the input and returns the assembled drawing. Warnings
// list every command that was skipped.
//
// Example:
//
//	d, warnings, err := hpgl.Open("design.plt").Drawing()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(d.PathCount(), "paths")
func (c *Converter) Drawing() (*model.Drawing, []Warning, error) {
	return c.parse()
}

// Dimensions parses the input and returns its physical size.
//
// Example:
//
//	s, _, err := hpgl.Open("design.plt").Dimensions()
//	fmt.Print(s) // Design Width: ... mm
func (c *Converter) Dimensions() (summary.Summary, []Warning, error) {
	d, warnings, err := c.parse()
	if err != nil {
		return summary.Summary{}, warnings, err
	}
	s, err := summary.Of(d)
	return s, warnings, err
}

// WriteDXF parses the input and writes the DXF document to path.
func (c *Converter) WriteDXF(path string) ([]Warning, error) {
	d, warnings, err := c.parse()
	if err != nil {
		return warnings, err
	}
	doc, err := dxf.Encode(d, c.options.dxfOptions())
	if err != nil {
		return warnings, err
	}
	if err := doc.Save(path); err != nil {
		return warnings, err
	}
	logger().Infof("wrote %d entities to %s", doc.Entities(), path)
	return warnings, nil
}

// WriteSummary parses the input and writes the dimensions report to path.
func (c *Converter) WriteSummary(path string) ([]Warning, error) {
	s, warnings, err := c.Dimensions()
	if err != nil {
		return warnings, err
	}
	if err := s.Save(path); err != nil {
		return warnings, err
	}
	logger().Infof("wrote dimensions to %s", path)
	return warnings, nil
}

// WritePreview parses the input and writes a PNG preview to path.
func (c *Converter) WritePreview(path string) ([]Warning, error) {
	d, warnings, err := c.parse()
	if err != nil {
		return warnings, err
	}
	if err := preview.Save(d, path, c.options.previewOptions()); err != nil {
		return warnings, err
	}
	logger().Infof("wrote preview to %s", path)
	return warnings, nil
}

// Convert parses the input once and writes the DXF document and the
// dimensions report. An empty DXF path is derived from the input
// filename with DefaultOutputs; an empty report path puts the report
// in the DXF's directory. Nothing is written when the input cannot be
// parsed or encoded.
//
// Example:
//
//	res, err := hpgl.Open("design.plt").Convert("", "")
//	// writes design.dxf and dimensions.txt next to design.plt
func (c *Converter) Convert(dxfPath, txtPath string) (*Result, error) {
	if dxfPath == "" {
		if c.filename == "" {
			return nil, fmt.Errorf("hpgl: output path required for in-memory input")
		}
		dxfPath, _ = DefaultOutputs(c.filename)
	}
	if txtPath == "" {
		txtPath = filepath.Join(filepath.Dir(dxfPath), SummaryFilename)
	}

	d, warnings, err := c.parse()
	if err != nil {
		return nil, err
	}
	s, err := summary.Of(d)
	if err != nil {
		return nil, err
	}
	doc, err := dxf.Encode(d, c.options.dxfOptions())
	if err != nil {
		return nil, err
	}

	res := &Result{
		Drawing:  d,
		Summary:  s,
		Entities: doc.Entities(),
		Warnings: warnings,
	}

	if err := doc.Save(dxfPath); err != nil {
		return nil, err
	}
	res.DXFPath = dxfPath
	logger().Infof("wrote %d entities to %s", doc.Entities(), dxfPath)

	if err := s.Save(txtPath); err != nil {
		return nil, err
	}
	res.SummaryPath = txtPath
	logger().Infof("wrote dimensions to %s", txtPath)

	if p := c.options.previewPath; p != "" {
		if err := preview.Save(d, p, c.options.previewOptions()); err != nil {
			return nil, err
		}
		res.PreviewPath = p
		logger().Infof("wrote preview to %s", p)
	}

	return res, nil
}

// DefaultOutputs returns the default output paths for an input file:
// the DXF next to the input with the extension replaced, and the
// dimensions report in the same directory.
func DefaultOutputs(input string) (dxfPath, txtPath string) {
	dxfPath = format.ReplaceExtension(input, format.DXF)
	txtPath = filepath.Join(filepath.Dir(dxfPath), SummaryFilename)
	return dxfPath, txtPath
}

// ============================================================================
// Internals
// ============================================================================

// ensureText loads the command text if not already loaded.
func (c *Converter) ensureText() error {
	if c.loaded {
		return nil
	}

	switch {
	case c.reader != nil:
		data, err := io.ReadAll(c.reader)
		if err != nil {
			return fmt.Errorf("failed to read input: %w", err)
		}
		c.text = string(data)

	case c.filename != "":
		data, err := os.ReadFile(c.filename)
		if err != nil {
			return fmt.Errorf("failed to open input: %w", err)
		}
		if f := format.Detect(c.filename); f != format.PLT {
			if sniffed := format.DetectFromMagic(data); sniffed != format.PLT && f != format.Unknown {
				return fmt.Errorf("%w: %s (%s)", ErrUnsupportedFormat, c.filename, f)
			}
		}
		c.text = string(data)

	default:
		return ErrNoInput
	}

	c.loaded = true
	return nil
}

// parse runs the interpreter over the loaded text.
func (c *Converter) parse() (*model.Drawing, []Warning, error) {
	if c.err != nil {
		return nil, nil, c.err
	}
	if err := c.ensureText(); err != nil {
		return nil, nil, err
	}

	log := logger()
	var warnings []Warning
	d, _, err := plotter.Parse(c.text,
		plotter.WithPrecision(c.options.precision),
		plotter.WithSkipHandler(func(s command.Skip) {
			log.Debugf("skipped %s", s)
			warnings = append(warnings, warningFromSkip(s))
		}),
	)
	if err != nil {
		return nil, warnings, err
	}
	log.Debugf("parsed %d paths, %d points", d.PathCount(), d.PointCount())
	return d, warnings, nil
}
