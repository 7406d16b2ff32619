package plotter

import (
	"fmt"

	"github.com/tsawler/hpgl/model"
)

// CoordinateMode selects how coordinate pairs are applied to the
// current position.
type CoordinateMode int

const (
	// Absolute pairs replace the position
	Absolute CoordinateMode = iota
	// Relative pairs are added to the position
	Relative
)

// String returns the mode name
func (m CoordinateMode) String() string {
	switch m {
	case Absolute:
		return "absolute"
	case Relative:
		return "relative"
	default:
		return fmt.Sprintf("CoordinateMode(%d)", int(m))
	}
}

// ParserState is the state of one interpretation run. It starts at the
// origin with the pen up in absolute mode.
type ParserState struct {
	Position model.Point
	PenDown  bool
	Mode     CoordinateMode

	paths *Assembler
}

// NewParserState creates a state at the origin feeding a fresh assembler
func NewParserState() *ParserState {
	return &ParserState{
		Mode:  Absolute,
		paths: NewAssembler(),
	}
}

// Assembler returns the assembler receiving recorded points
func (s *ParserState) Assembler() *Assembler {
	return s.paths
}

// advance applies one coordinate pair under the current mode and
// returns the new position.
func (s *ParserState) advance(x, y float64) model.Point {
	d := model.Pt(x, y)
	if s.Mode == Relative {
		s.Position = s.Position.Add(d)
	} else {
		s.Position = d
	}
	return s.Position
}

// move handles a PA or PR pair. With the pen down the position is
// recorded; with the pen up it starts the next path.
func (s *ParserState) move(x, y float64) {
	p := s.advance(x, y)
	if s.PenDown {
		s.paths.Append(p)
	} else {
		s.paths.Begin(p)
	}
}

// String returns a one-line description for diagnostics
func (s *ParserState) String() string {
	pen := "up"
	if s.PenDown {
		pen = "down"
	}
	return fmt.Sprintf("pos=(%g, %g) pen=%s mode=%s", s.Position.X, s.Position.Y, pen, s.Mode)
}
