package main

import (
	"fmt"
	"io"
	"os"

	"github.com/tliron/commonlog"

	"github.com/tsawler/hpgl"
	"github.com/tsawler/hpgl/format"
)

func logger() commonlog.Logger {
	return commonlog.GetLogger("plt2dxf")
}

// inputFlags are shared by every command reading a command stream.
type inputFlags struct {
	float bool
}

// converter opens the file named in args, or stdin when args is empty.
func (f inputFlags) converter(args []string, stdin io.Reader) (*hpgl.Converter, error) {
	var c *hpgl.Converter
	if len(args) == 0 {
		c = hpgl.FromReader(stdin)
	} else {
		name := args[0]
		if _, err := os.Stat(name); err != nil {
			return nil, fmt.Errorf("input: %w", err)
		}
		if ft := format.Detect(name); ft != format.PLT {
			logger().Warningf("%s: extension does not look like a plotter file (%s)", name, ft)
		}
		c = hpgl.Open(name)
	}
	if f.float {
		c = c.Float()
	}
	return c, nil
}

// reportWarnings logs skipped commands and prints a one-line count.
func reportWarnings(w io.Writer, warnings []hpgl.Warning) {
	if len(warnings) == 0 {
		return
	}
	log := logger()
	for _, warn := range warnings {
		log.Debugf("%s", warn)
	}
	fmt.Fprintf(w, "skipped %d command(s)\n", len(warnings))
}

// checkOutput rejects output names whose extension contradicts want.
func checkOutput(path string, want format.Format) error {
	if path == "" {
		return nil
	}
	if got := format.Detect(path); got != want && got != format.Unknown {
		return fmt.Errorf("output %s: expected %s file, got %s", path, want, got)
	}
	return nil
}
